package services

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"gema-backend/internal/entities"
	"gema-backend/internal/repositories"
	apperrors "gema-backend/pkg/errors"
)

type EquipmentService struct {
	*CrudService[entities.Equipment]
	repository  repositories.EquipmentRepositoryInterface
	assignments repositories.CrudRepositoryInterface[entities.EquipmentOperationalLocation]
	logger      *zap.Logger
}

func NewEquipmentService(
	repository repositories.EquipmentRepositoryInterface,
	assignments repositories.CrudRepositoryInterface[entities.EquipmentOperationalLocation],
	logger *zap.Logger,
) *EquipmentService {
	return &EquipmentService{
		CrudService: NewCrudService[entities.Equipment](repository, "Equipment", logger),
		repository:  repository,
		assignments: assignments,
		logger:      logger,
	}
}

// AssignTechnicalLocation overwrites the equipment's current technical
// location. Repeating the call with the same arguments is idempotent. The
// referenced location is not pre-checked here; the foreign key reports a
// missing one.
func (s *EquipmentService) AssignTechnicalLocation(ctx context.Context, equipmentUUID, locationCode string) error {
	s.logger.Info("assigning technical location",
		zap.String("equipment_uuid", equipmentUUID),
		zap.String("location", locationCode),
	)
	return s.repository.SetLocationField(ctx, equipmentUUID, "technical_location", locationCode)
}

// SetTransfer overwrites the equipment's transfer location, with the same
// semantics as AssignTechnicalLocation.
func (s *EquipmentService) SetTransfer(ctx context.Context, equipmentUUID, locationCode string) error {
	s.logger.Info("setting transfer location",
		zap.String("equipment_uuid", equipmentUUID),
		zap.String("location", locationCode),
	)
	return s.repository.SetLocationField(ctx, equipmentUUID, "transfer_location", locationCode)
}

// AssignOperationalLocation inserts a join row for the pair. An existing pair
// is a conflict, not a second row. The pre-check gives the friendly conflict
// path; the composite primary key on the join table closes the race between
// the check and the insert.
func (s *EquipmentService) AssignOperationalLocation(ctx context.Context, equipmentUUID, locationCode string) (entities.EquipmentOperationalLocation, error) {
	var assignment entities.EquipmentOperationalLocation

	pk := map[string]interface{}{
		"equipment_uuid":          equipmentUUID,
		"location_technical_code": locationCode,
	}

	existing, err := s.assignments.GetByPK(ctx, pk)
	if err == nil {
		s.logger.Warn("operational location already assigned",
			zap.String("equipment_uuid", equipmentUUID),
			zap.String("location", locationCode),
		)
		return existing, fmt.Errorf("%w: equipment already assigned to operational location", apperrors.ErrConflict)
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		return assignment, err
	}

	assignment, err = s.assignments.Insert(ctx, entities.EquipmentOperationalLocation{
		EquipmentUUID:         equipmentUUID,
		LocationTechnicalCode: locationCode,
	})
	if err != nil {
		s.logger.Error("operational location assignment failed",
			zap.String("equipment_uuid", equipmentUUID),
			zap.String("location", locationCode),
			zap.Error(err),
		)
		return assignment, err
	}

	s.logger.Info("operational location assigned",
		zap.String("equipment_uuid", equipmentUUID),
		zap.String("location", locationCode),
	)
	return assignment, nil
}

func (s *EquipmentService) ListOperationalLocations(ctx context.Context, equipmentUUID string) ([]string, error) {
	s.logger.Debug("listing operational locations", zap.String("equipment_uuid", equipmentUUID))
	return s.repository.ListOperationalLocations(ctx, equipmentUUID)
}
