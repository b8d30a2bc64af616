package services

import (
	"context"

	"go.uber.org/zap"

	"gema-backend/internal/dto"
	"gema-backend/internal/entities"
	"gema-backend/internal/repositories"

	"github.com/aarondl/null/v8"
)

// DeriveTechnicalCode joins a parent code and a suffix with a literal hyphen.
// Collisions are left to the primary key constraint on technical_code.
func DeriveTechnicalCode(parentTechnicalCode, code string) string {
	return parentTechnicalCode + "-" + code
}

type TechnicalLocationService struct {
	*CrudService[entities.TechnicalLocation]
	repository repositories.TechnicalLocationRepositoryInterface
	logger     *zap.Logger
}

func NewTechnicalLocationService(repository repositories.TechnicalLocationRepositoryInterface, logger *zap.Logger) *TechnicalLocationService {
	return &TechnicalLocationService{
		CrudService: NewCrudService[entities.TechnicalLocation](repository, "TechnicalLocation", logger),
		repository:  repository,
		logger:      logger,
	}
}

// CreateWithDerivedCode builds the location's identity from its parent code
// and the caller-supplied suffix, then delegates to the plain insert. This is
// the only entity-specific identity rule in the system.
func (s *TechnicalLocationService) CreateWithDerivedCode(ctx context.Context, payload dto.CreateDerivedLocationDTO) (entities.TechnicalLocation, error) {
	location := entities.TechnicalLocation{
		TechnicalCode:       DeriveTechnicalCode(payload.ParentTechnicalCode, payload.Code),
		Name:                payload.Name,
		TypeID:              payload.TypeID,
		ParentTechnicalCode: null.StringFrom(payload.ParentTechnicalCode),
	}

	s.logger.Info("creating location with derived code",
		zap.String("technical_code", location.TechnicalCode),
		zap.String("parent", payload.ParentTechnicalCode),
	)
	return s.Create(ctx, location)
}

func (s *TechnicalLocationService) GetChildren(ctx context.Context, technicalCode string) ([]entities.TechnicalLocation, error) {
	s.logger.Debug("listing children", zap.String("technical_code", technicalCode))
	return s.repository.GetChildren(ctx, technicalCode)
}
