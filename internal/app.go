package internal

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	token_adapter "palais-immobilier-api/internal/adapters/jwt"
	logger_adapter "palais-immobilier-api/internal/adapters/logger"
	"palais-immobilier-api/internal/adapters/memstore"
	"palais-immobilier-api/internal/adapters/rest"
	"palais-immobilier-api/internal/configs"
	"palais-immobilier-api/internal/core/port"
	"palais-immobilier-api/internal/core/usecase"
	fluentlogger "palais-immobilier-api/pkg/fluentlogger"
	"strings"
	"syscall"
	"time"

	"github.com/fluent/fluent-logger-golang/fluent"
)

// App - the application structure.
type App struct {
	config       *configs.AppConfig
	apiServer    *rest.Server
	fluentClient *fluent.Fluent
	logger       port.LoggerPort
}

// NewApp creates the application instance. This is the composition root where
// every dependency is created and wired together.
func NewApp() (*App, error) {
	appConfig, err := configs.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("error loading application configuration: %w", err)
	}

	// --- 1. Logger initialization ---
	var activeLoggers []port.LoggerPort

	slogCfg := logger_adapter.SlogConfig{
		Level:    parseLogLevel(appConfig.StdoutLogger.Level),
		IsJSON:   false,
		UseColor: true,
	}
	stdoutLogger := logger_adapter.NewSlogAdapter(slogCfg)
	activeLoggers = append(activeLoggers, stdoutLogger)

	var fluentClient *fluent.Fluent
	if appConfig.FluentBit.Enabled {
		fluentClient, err = fluentlogger.NewClient(fluentlogger.Config{
			Host:      appConfig.FluentBit.Host,
			Port:      appConfig.FluentBit.Port,
			TagPrefix: appConfig.AppName,
		})
		if err != nil {
			stdoutLogger.Error("Failed to create fluentbit client", err, nil)
			return nil, fmt.Errorf("failed to create fluentbit client: %w", err)
		}

		fluentAdapter, err := logger_adapter.NewFluentLoggerAdapter(fluentClient, parseLogLevel(appConfig.FluentBit.Level))
		if err != nil {
			stdoutLogger.Error("Failed to create fluentbit adapter", err, nil)
			fluentClient.Close()
			return nil, err
		}
		activeLoggers = append(activeLoggers, fluentAdapter)
	}

	multiLogger, err := logger_adapter.NewMultiloggerAdapter(activeLoggers...)
	if err != nil {
		return nil, fmt.Errorf("failed to create multi-logger: %w", err)
	}

	baseLogger := multiLogger.WithFields(port.Fields{
		"service_name": appConfig.AppName,
	})

	appLogger := baseLogger.WithFields(port.Fields{"component": "app"})
	appLogger.Info("Logger system initialized", port.Fields{
		"active_loggers": len(activeLoggers), "fluent_enabled": appConfig.FluentBit.Enabled,
	})

	// --- 2. Outgoing adapters: in-memory stores and the token service ---
	propertyCatalog := memstore.NewPropertyCatalog(memstore.SeedProperties())
	userRepository := memstore.NewUserRepository(memstore.SeedUsers())
	siteConfigStore := memstore.NewSiteConfigStore(time.Duration(appConfig.SiteConfig.SaveDelayMs) * time.Millisecond)

	tokenService, err := token_adapter.NewTokenService(appConfig.Auth.JWTSigningKey)
	if err != nil {
		appLogger.Error("Failed to create token service", err, nil)
		return nil, fmt.Errorf("failed to create token service: %w", err)
	}
	appLogger.Info("In-memory stores seeded and token service initialized.", nil)

	// --- 3. Use cases ---
	tokenTTL := time.Duration(appConfig.Auth.TokenTTLMin) * time.Minute
	loginUserUseCase := usecase.NewLoginUserUseCase(userRepository, tokenService, tokenTTL)
	validateTokenUseCase := usecase.NewValidateTokenUseCase(tokenService)
	listUsersUseCase := usecase.NewListUsersUseCase(userRepository)
	getUserByIDUseCase := usecase.NewGetUserByIDUseCase(userRepository)

	findPropertiesUseCase := usecase.NewFindPropertiesUseCase(propertyCatalog)
	getPropertyDetailsUseCase := usecase.NewGetPropertyDetailsUseCase(propertyCatalog)
	getNearbyPropertiesUseCase := usecase.NewGetNearbyPropertiesUseCase(propertyCatalog)
	recordViewUseCase := usecase.NewRecordViewUseCase(propertyCatalog)
	createPropertyUseCase := usecase.NewCreatePropertyUseCase(propertyCatalog)
	updatePropertyUseCase := usecase.NewUpdatePropertyUseCase(propertyCatalog)
	deletePropertyUseCase := usecase.NewDeletePropertyUseCase(propertyCatalog)
	approvePropertyUseCase := usecase.NewApprovePropertyUseCase(propertyCatalog)
	getAgentPropertiesUseCase := usecase.NewGetAgentPropertiesUseCase(propertyCatalog)

	getSiteConfigUseCase := usecase.NewGetSiteConfigUseCase(siteConfigStore)
	toggleEditModeUseCase := usecase.NewToggleEditModeUseCase(siteConfigStore)
	saveSiteConfigUseCase := usecase.NewSaveSiteConfigUseCase(siteConfigStore)
	addHeroImageUseCase := usecase.NewAddHeroImageUseCase(siteConfigStore)
	updateHeroImageUseCase := usecase.NewUpdateHeroImageUseCase(siteConfigStore)
	removeHeroImageUseCase := usecase.NewRemoveHeroImageUseCase(siteConfigStore)
	updateSocialLinkUseCase := usecase.NewUpdateSocialLinkUseCase(siteConfigStore)
	setLegalPageUseCase := usecase.NewSetLegalPageUseCase(siteConfigStore)
	updateCookieConsentUseCase := usecase.NewUpdateCookieConsentUseCase(siteConfigStore)
	setSectionEnabledUseCase := usecase.NewSetSectionEnabledUseCase(siteConfigStore)

	appLogger.Info("All use cases initialized.", nil)

	// --- 4. REST API server ---
	authMiddleware := rest.NewAuthMiddleware(validateTokenUseCase)
	authHandlers := rest.NewAuthHandlers(loginUserUseCase, validateTokenUseCase, getUserByIDUseCase)
	propertyHandlers := rest.NewPropertyHandlers(
		findPropertiesUseCase,
		getPropertyDetailsUseCase,
		getNearbyPropertiesUseCase,
		recordViewUseCase,
		createPropertyUseCase,
		updatePropertyUseCase,
		deletePropertyUseCase,
		approvePropertyUseCase,
		getAgentPropertiesUseCase)
	userHandlers := rest.NewUserHandlers(listUsersUseCase, getUserByIDUseCase)
	siteConfigHandlers := rest.NewSiteConfigHandlers(
		getSiteConfigUseCase,
		toggleEditModeUseCase,
		saveSiteConfigUseCase,
		addHeroImageUseCase,
		updateHeroImageUseCase,
		removeHeroImageUseCase,
		updateSocialLinkUseCase,
		setLegalPageUseCase,
		updateCookieConsentUseCase,
		setSectionEnabledUseCase)

	apiServer := rest.NewServer(appConfig, authMiddleware, authHandlers, propertyHandlers, userHandlers, siteConfigHandlers, baseLogger)
	appLogger.Info("REST API server configured.", nil)

	application := &App{
		config:       appConfig,
		apiServer:    apiServer,
		fluentClient: fluentClient,
		logger:       appLogger,
	}

	return application, nil
}

// Run starts the application components and manages their lifecycle.
func (a *App) Run() error {
	defer func() {
		a.logger.Info("Shutdown sequence initiated...", nil)

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if a.apiServer != nil {
			if err := a.apiServer.Stop(shutdownCtx); err != nil {
				a.logger.Error("Error during API server shutdown", err, nil)
			}
		}

		a.logger.Info("Application shut down gracefully.", nil)

		if a.fluentClient != nil {
			if err := a.fluentClient.Close(); err != nil {
				// Stdout only, the fluent endpoint may already be gone.
				fmt.Printf("ERROR: Error closing fluent client: %v\n", err)
			}
		}
	}()

	a.logger.Info("Application is starting...", nil)

	errorsCh := make(chan error, 1)

	go func() {
		a.logger.Info("Starting HTTP server...", port.Fields{"port": a.config.Rest.PORT})
		if err := a.apiServer.Start(); err != nil && err != http.ErrServerClosed {
			errorsCh <- fmt.Errorf("failed to start HTTP server: %w", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	a.logger.Info("Application running. Waiting for signals or server error...", nil)
	select {
	case receivedSignal := <-quit:
		a.logger.Warn("Received OS signal, shutting down...", port.Fields{"signal": receivedSignal.String()})
	case err := <-errorsCh:
		a.logger.Error("A critical component failed, shutting down", err, nil)
	}

	return nil
}

func parseLogLevel(levelStr string) slog.Level {
	switch strings.ToLower(levelStr) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		log.Printf("Warning: Unknown log level '%s'. Defaulting to 'info'.", levelStr)
		return slog.LevelInfo
	}
}
