package rest

import (
	"context"
	"net/http"
	"palais-immobilier-api/internal/configs"
	"palais-immobilier-api/internal/core/domain"
	core_port "palais-immobilier-api/internal/core/port"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

type Server struct {
	httpServer *http.Server
	logger     core_port.LoggerPort
}

// NewServer builds the router and wires every endpoint group.
func NewServer(cfg *configs.AppConfig,
	authMiddleware *AuthMiddleware,
	authHandlers *AuthHandlers,
	propertyHandlers *PropertyHandlers,
	userHandlers *UserHandlers,
	siteConfigHandlers *SiteConfigHandlers,
	baseLogger core_port.LoggerPort) *Server {

	r := chi.NewRouter()

	r.Use(middleware.RealIP, LoggerMiddleware(baseLogger), middleware.Recoverer)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.Rest.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Trace-ID"},
		AllowCredentials: true,
		// Preflight answers may be cached for 5 minutes.
		MaxAge: 300,
	}))

	r.Route("/api/v1", func(r chi.Router) {
		// Public routes.
		r.Group(func(r chi.Router) {
			r.Post("/auth/login", authHandlers.Login)
			r.Post("/auth/validate", authHandlers.ValidateToken)

			r.Get("/properties", propertyHandlers.FindProperties)
			r.With(authMiddleware.WithOptionalClaims).
				Get("/properties/{propertyID}", propertyHandlers.GetPropertyDetails)
			r.Get("/properties/{propertyID}/nearby", propertyHandlers.GetNearbyProperties)
			r.Post("/properties/{propertyID}/view", propertyHandlers.RecordView)

			r.Get("/site-config", siteConfigHandlers.GetSiteConfig)
		})

		// Routes for any authenticated user.
		r.Group(func(r chi.Router) {
			r.Use(authMiddleware.Authenticate)
			r.Get("/auth/me", authHandlers.Me)
		})

		// Listing management for agents and admins.
		r.Group(func(r chi.Router) {
			r.Use(authMiddleware.Authenticate)
			r.Use(authMiddleware.RequireAnyRole(domain.RoleAgent, domain.RoleAdmin))

			r.Post("/properties", propertyHandlers.CreateProperty)
			r.Put("/properties/{propertyID}", propertyHandlers.UpdateProperty)
			r.Delete("/properties/{propertyID}", propertyHandlers.DeleteProperty)
			r.Get("/agent/properties", propertyHandlers.GetAgentProperties)
		})

		// Admin-only routes.
		r.Group(func(r chi.Router) {
			r.Use(authMiddleware.Authenticate)
			r.Use(authMiddleware.RequireAnyRole(domain.RoleAdmin))

			r.Post("/properties/{propertyID}/approve", propertyHandlers.ApproveProperty)

			r.Get("/users", userHandlers.ListUsers)
			r.Get("/users/{userID}", userHandlers.GetUser)

			r.Post("/site-config/edit-mode", siteConfigHandlers.ToggleEditMode)
			r.Post("/site-config/save", siteConfigHandlers.SaveSiteConfig)
			r.Post("/site-config/hero-images", siteConfigHandlers.AddHeroImage)
			r.Patch("/site-config/hero-images/{imageID}", siteConfigHandlers.UpdateHeroImage)
			r.Delete("/site-config/hero-images/{imageID}", siteConfigHandlers.RemoveHeroImage)
			r.Patch("/site-config/social-links/{linkID}", siteConfigHandlers.UpdateSocialLink)
			r.Put("/site-config/legal-pages/{pageKey}", siteConfigHandlers.SetLegalPage)
			r.Put("/site-config/cookie-consent", siteConfigHandlers.UpdateCookieConsent)
			r.Put("/site-config/sections/{sectionID}", siteConfigHandlers.SetSectionEnabled)
		})
	})

	// Dashboard pages. A wrong role is not an error here: the visitor is
	// redirected to their own dashboard, an anonymous visitor to /login.
	r.Route("/dashboard", func(r chi.Router) {
		r.With(authMiddleware.RequireDashboardRole(domain.RoleAdmin)).
			Get("/admin", dashboardPage("admin"))
		r.With(authMiddleware.RequireDashboardRole(domain.RoleAgent)).
			Get("/agent", dashboardPage("agent"))
		r.With(authMiddleware.RequireDashboardRole(domain.RoleUser)).
			Get("/user", dashboardPage("user"))
	})

	return &Server{
		httpServer: &http.Server{
			Addr:    ":" + cfg.Rest.PORT,
			Handler: r,
		},
		logger: baseLogger,
	}
}

// dashboardPage answers a minimal marker payload for an authorized visitor.
// The real dashboard is rendered by the frontend; this endpoint exists so the
// role guard has a server-side surface.
func dashboardPage(role string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		RespondWithJSON(w, http.StatusOK, map[string]string{"dashboard": role})
	}
}

func (s *Server) Start() error {
	s.logger.Info("Starting REST server", core_port.Fields{"address": s.httpServer.Addr})
	return s.httpServer.ListenAndServe()
}

func (s *Server) Stop(ctx context.Context) error {
	s.logger.Info("Stopping REST server...", nil)
	return s.httpServer.Shutdown(ctx)
}
