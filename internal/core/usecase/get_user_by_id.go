package usecase

import (
	"context"
	"palais-immobilier-api/internal/contextkeys"
	"palais-immobilier-api/internal/core/domain"
	"palais-immobilier-api/internal/core/port"
)

type GetUserByIDUseCase struct {
	userRepo port.UserRepositoryPort
}

func NewGetUserByIDUseCase(userRepo port.UserRepositoryPort) *GetUserByIDUseCase {
	return &GetUserByIDUseCase{userRepo: userRepo}
}

func (uc *GetUserByIDUseCase) Execute(ctx context.Context, userID string) (*domain.User, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case": "GetUserByID",
		"user_id":  userID,
	})

	ucLogger.Info("Use case started", nil)

	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		ucLogger.Warn("User not found", port.Fields{"error": err.Error()})
		return nil, err
	}

	ucLogger.Info("Use case finished successfully", nil)
	return user, nil
}
