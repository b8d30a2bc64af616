package services

import (
	"context"

	"go.uber.org/zap"

	"gema-backend/internal/repositories"
)

type CrudServiceInterface[T any] interface {
	Create(ctx context.Context, entity T) (T, error)
	GetByPK(ctx context.Context, pk map[string]interface{}) (T, error)
	GetAll(ctx context.Context) ([]T, error)
	Update(ctx context.Context, pk map[string]interface{}, entity T) (T, error)
	Delete(ctx context.Context, pk map[string]interface{}) (T, error)
}

// CrudService wraps a generic repository with the diagnostic logging every
// operation carries: entity name, operation and the identifiers involved.
type CrudService[T any] struct {
	repository repositories.CrudRepositoryInterface[T]
	entityName string
	logger     *zap.Logger
}

func NewCrudService[T any](repository repositories.CrudRepositoryInterface[T], entityName string, logger *zap.Logger) *CrudService[T] {
	return &CrudService[T]{
		repository: repository,
		entityName: entityName,
		logger:     logger,
	}
}

func (s *CrudService[T]) Create(ctx context.Context, entity T) (T, error) {
	created, err := s.repository.Insert(ctx, entity)
	if err != nil {
		s.logger.Error("insert failed", zap.String("entity", s.entityName), zap.Error(err))
		return created, err
	}
	s.logger.Info("record created", zap.String("entity", s.entityName))
	return created, nil
}

func (s *CrudService[T]) GetByPK(ctx context.Context, pk map[string]interface{}) (T, error) {
	s.logger.Debug("lookup by primary key", zap.String("entity", s.entityName), zap.Any("pk", pk))
	return s.repository.GetByPK(ctx, pk)
}

func (s *CrudService[T]) GetAll(ctx context.Context) ([]T, error) {
	s.logger.Debug("list all", zap.String("entity", s.entityName))
	return s.repository.GetAll(ctx)
}

func (s *CrudService[T]) Update(ctx context.Context, pk map[string]interface{}, entity T) (T, error) {
	updated, err := s.repository.Update(ctx, pk, entity)
	if err != nil {
		s.logger.Error("update failed", zap.String("entity", s.entityName), zap.Any("pk", pk), zap.Error(err))
		return updated, err
	}
	s.logger.Info("record updated", zap.String("entity", s.entityName), zap.Any("pk", pk))
	return updated, nil
}

func (s *CrudService[T]) Delete(ctx context.Context, pk map[string]interface{}) (T, error) {
	deleted, err := s.repository.Delete(ctx, pk)
	if err != nil {
		s.logger.Error("delete failed", zap.String("entity", s.entityName), zap.Any("pk", pk), zap.Error(err))
		return deleted, err
	}
	s.logger.Info("record deleted", zap.String("entity", s.entityName), zap.Any("pk", pk))
	return deleted, nil
}
