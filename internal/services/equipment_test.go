package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"gema-backend/internal/entities"
	apperrors "gema-backend/pkg/errors"
)

type fakeEquipmentRepository struct {
	locationFields map[string]map[string]string // uuid -> column -> code
	known          map[string]bool
}

func newFakeEquipmentRepository(uuids ...string) *fakeEquipmentRepository {
	known := map[string]bool{}
	for _, id := range uuids {
		known[id] = true
	}
	return &fakeEquipmentRepository{
		locationFields: map[string]map[string]string{},
		known:          known,
	}
}

func (f *fakeEquipmentRepository) Insert(_ context.Context, e entities.Equipment) (entities.Equipment, error) {
	f.known[e.UUID] = true
	return e, nil
}

func (f *fakeEquipmentRepository) GetByPK(_ context.Context, pk map[string]interface{}) (entities.Equipment, error) {
	id, _ := pk["uuid"].(string)
	if !f.known[id] {
		return entities.Equipment{}, apperrors.ErrNotFound
	}
	return entities.Equipment{UUID: id}, nil
}

func (f *fakeEquipmentRepository) GetAll(_ context.Context) ([]entities.Equipment, error) {
	return nil, nil
}

func (f *fakeEquipmentRepository) Update(_ context.Context, pk map[string]interface{}, e entities.Equipment) (entities.Equipment, error) {
	return e, nil
}

func (f *fakeEquipmentRepository) Delete(_ context.Context, pk map[string]interface{}) (entities.Equipment, error) {
	return entities.Equipment{}, apperrors.ErrNotFound
}

func (f *fakeEquipmentRepository) SetLocationField(_ context.Context, equipmentUUID, column, locationCode string) error {
	if !f.known[equipmentUUID] {
		return apperrors.ErrNotFound
	}
	fields, ok := f.locationFields[equipmentUUID]
	if !ok {
		fields = map[string]string{}
		f.locationFields[equipmentUUID] = fields
	}
	fields[column] = locationCode
	return nil
}

func (f *fakeEquipmentRepository) ListOperationalLocations(_ context.Context, equipmentUUID string) ([]string, error) {
	return nil, nil
}

type fakeAssignmentRepository struct {
	rows map[[2]string]entities.EquipmentOperationalLocation
}

func newFakeAssignmentRepository() *fakeAssignmentRepository {
	return &fakeAssignmentRepository{rows: map[[2]string]entities.EquipmentOperationalLocation{}}
}

func (f *fakeAssignmentRepository) key(pk map[string]interface{}) [2]string {
	uuid, _ := pk["equipment_uuid"].(string)
	code, _ := pk["location_technical_code"].(string)
	return [2]string{uuid, code}
}

func (f *fakeAssignmentRepository) Insert(_ context.Context, e entities.EquipmentOperationalLocation) (entities.EquipmentOperationalLocation, error) {
	key := [2]string{e.EquipmentUUID, e.LocationTechnicalCode}
	if _, exists := f.rows[key]; exists {
		return entities.EquipmentOperationalLocation{}, apperrors.ErrConflict
	}
	f.rows[key] = e
	return e, nil
}

func (f *fakeAssignmentRepository) GetByPK(_ context.Context, pk map[string]interface{}) (entities.EquipmentOperationalLocation, error) {
	row, ok := f.rows[f.key(pk)]
	if !ok {
		return entities.EquipmentOperationalLocation{}, apperrors.ErrNotFound
	}
	return row, nil
}

func (f *fakeAssignmentRepository) GetAll(_ context.Context) ([]entities.EquipmentOperationalLocation, error) {
	return nil, nil
}

func (f *fakeAssignmentRepository) Update(_ context.Context, pk map[string]interface{}, e entities.EquipmentOperationalLocation) (entities.EquipmentOperationalLocation, error) {
	return e, nil
}

func (f *fakeAssignmentRepository) Delete(_ context.Context, pk map[string]interface{}) (entities.EquipmentOperationalLocation, error) {
	row, ok := f.rows[f.key(pk)]
	if !ok {
		return entities.EquipmentOperationalLocation{}, apperrors.ErrNotFound
	}
	delete(f.rows, f.key(pk))
	return row, nil
}

func newEquipmentServiceForTest(uuids ...string) (*EquipmentService, *fakeEquipmentRepository, *fakeAssignmentRepository) {
	equipmentRepo := newFakeEquipmentRepository(uuids...)
	assignmentRepo := newFakeAssignmentRepository()
	return NewEquipmentService(equipmentRepo, assignmentRepo, zap.NewNop()), equipmentRepo, assignmentRepo
}

func TestAssignTechnicalLocationOverwrites(t *testing.T) {
	svc, repo, _ := newEquipmentServiceForTest("eq-1")
	ctx := context.Background()

	require.NoError(t, svc.AssignTechnicalLocation(ctx, "eq-1", "BQ-A1"))
	assert.Equal(t, "BQ-A1", repo.locationFields["eq-1"]["technical_location"])

	// A second call replaces the value rather than failing.
	require.NoError(t, svc.AssignTechnicalLocation(ctx, "eq-1", "BQ-A2"))
	assert.Equal(t, "BQ-A2", repo.locationFields["eq-1"]["technical_location"])

	// Repeating an identical call is idempotent.
	require.NoError(t, svc.AssignTechnicalLocation(ctx, "eq-1", "BQ-A2"))
	assert.Equal(t, "BQ-A2", repo.locationFields["eq-1"]["technical_location"])
}

func TestAssignTechnicalLocationUnknownEquipment(t *testing.T) {
	svc, _, _ := newEquipmentServiceForTest("eq-1")

	err := svc.AssignTechnicalLocation(context.Background(), "eq-missing", "BQ-A1")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestSetTransferUsesItsOwnColumn(t *testing.T) {
	svc, repo, _ := newEquipmentServiceForTest("eq-1")
	ctx := context.Background()

	require.NoError(t, svc.SetTransfer(ctx, "eq-1", "BQ-A9"))
	assert.Equal(t, "BQ-A9", repo.locationFields["eq-1"]["transfer_location"])
	assert.Empty(t, repo.locationFields["eq-1"]["technical_location"])
}

func TestAssignOperationalLocation(t *testing.T) {
	svc, _, assignments := newEquipmentServiceForTest("eq-1")
	ctx := context.Background()

	created, err := svc.AssignOperationalLocation(ctx, "eq-1", "BQ-A1")
	require.NoError(t, err)
	assert.Equal(t, "eq-1", created.EquipmentUUID)
	assert.Equal(t, "BQ-A1", created.LocationTechnicalCode)
	assert.Len(t, assignments.rows, 1)

	// The same pair again is a conflict, not a second row.
	_, err = svc.AssignOperationalLocation(ctx, "eq-1", "BQ-A1")
	assert.ErrorIs(t, err, apperrors.ErrConflict)
	assert.Len(t, assignments.rows, 1)

	// A different location for the same equipment is a new assignment.
	_, err = svc.AssignOperationalLocation(ctx, "eq-1", "BQ-A2")
	require.NoError(t, err)
	assert.Len(t, assignments.rows, 2)
}
