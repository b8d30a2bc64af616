package services

import (
	"context"

	"go.uber.org/zap"

	"gema-backend/internal/repositories"
)

type EnumService struct {
	repository repositories.EnumRepositoryInterface
	logger     *zap.Logger
}

func NewEnumService(repository repositories.EnumRepositoryInterface, logger *zap.Logger) *EnumService {
	return &EnumService{
		repository: repository,
		logger:     logger,
	}
}

func (s *EnumService) ListValues(ctx context.Context, name string) ([]string, error) {
	s.logger.Debug("listing enum values", zap.String("enum", name))
	return s.repository.ListValues(ctx, name)
}
