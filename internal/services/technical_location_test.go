package services

import (
	"context"
	"testing"

	"github.com/aarondl/null/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"gema-backend/internal/dto"
	"gema-backend/internal/entities"
	apperrors "gema-backend/pkg/errors"
)

// fakeLocationRepository keeps locations in a map keyed by technical code.
type fakeLocationRepository struct {
	rows map[string]entities.TechnicalLocation
}

func newFakeLocationRepository() *fakeLocationRepository {
	return &fakeLocationRepository{rows: map[string]entities.TechnicalLocation{}}
}

func (f *fakeLocationRepository) Insert(_ context.Context, entity entities.TechnicalLocation) (entities.TechnicalLocation, error) {
	if _, exists := f.rows[entity.TechnicalCode]; exists {
		return entities.TechnicalLocation{}, apperrors.ErrConflict
	}
	f.rows[entity.TechnicalCode] = entity
	return entity, nil
}

func (f *fakeLocationRepository) GetByPK(_ context.Context, pk map[string]interface{}) (entities.TechnicalLocation, error) {
	code, _ := pk["technical_code"].(string)
	row, ok := f.rows[code]
	if !ok {
		return entities.TechnicalLocation{}, apperrors.ErrNotFound
	}
	return row, nil
}

func (f *fakeLocationRepository) GetAll(_ context.Context) ([]entities.TechnicalLocation, error) {
	all := make([]entities.TechnicalLocation, 0, len(f.rows))
	for _, row := range f.rows {
		all = append(all, row)
	}
	return all, nil
}

func (f *fakeLocationRepository) Update(_ context.Context, pk map[string]interface{}, entity entities.TechnicalLocation) (entities.TechnicalLocation, error) {
	code, _ := pk["technical_code"].(string)
	if _, ok := f.rows[code]; !ok {
		return entities.TechnicalLocation{}, apperrors.ErrNotFound
	}
	entity.TechnicalCode = code
	f.rows[code] = entity
	return entity, nil
}

func (f *fakeLocationRepository) Delete(_ context.Context, pk map[string]interface{}) (entities.TechnicalLocation, error) {
	code, _ := pk["technical_code"].(string)
	row, ok := f.rows[code]
	if !ok {
		return entities.TechnicalLocation{}, apperrors.ErrNotFound
	}
	delete(f.rows, code)
	return row, nil
}

func (f *fakeLocationRepository) GetChildren(_ context.Context, technicalCode string) ([]entities.TechnicalLocation, error) {
	children := make([]entities.TechnicalLocation, 0)
	for _, row := range f.rows {
		if row.ParentTechnicalCode.String == technicalCode && row.TechnicalCode != technicalCode {
			children = append(children, row)
		}
	}
	return children, nil
}

func TestDeriveTechnicalCode(t *testing.T) {
	assert.Equal(t, "BQ-A1", DeriveTechnicalCode("BQ", "A1"))
	assert.Equal(t, "BQ-A1-R2", DeriveTechnicalCode("BQ-A1", "R2"))
}

func TestCreateWithDerivedCode(t *testing.T) {
	repo := newFakeLocationRepository()
	svc := NewTechnicalLocationService(repo, zap.NewNop())

	created, err := svc.CreateWithDerivedCode(context.Background(), dto.CreateDerivedLocationDTO{
		ParentTechnicalCode: "BQ",
		Code:                "A1",
		Name:                "Wing A1",
		TypeID:              1,
	})
	require.NoError(t, err)
	assert.Equal(t, "BQ-A1", created.TechnicalCode)
	assert.Equal(t, "BQ", created.ParentTechnicalCode.String)

	// The derived code is the identity, so the same parent/suffix pair
	// collides.
	_, err = svc.CreateWithDerivedCode(context.Background(), dto.CreateDerivedLocationDTO{
		ParentTechnicalCode: "BQ",
		Code:                "A1",
		Name:                "Duplicate",
		TypeID:              1,
	})
	assert.ErrorIs(t, err, apperrors.ErrConflict)
}

func TestGetChildrenNeverReturnsTheParentItself(t *testing.T) {
	repo := newFakeLocationRepository()
	svc := NewTechnicalLocationService(repo, zap.NewNop())

	ctx := context.Background()
	for _, payload := range []dto.CreateDerivedLocationDTO{
		{ParentTechnicalCode: "BQ", Code: "A1", Name: "Wing A1", TypeID: 1},
		{ParentTechnicalCode: "BQ", Code: "A2", Name: "Wing A2", TypeID: 1},
		{ParentTechnicalCode: "BQ-A1", Code: "R1", Name: "Room 1", TypeID: 2},
	} {
		_, err := svc.CreateWithDerivedCode(ctx, payload)
		require.NoError(t, err)
	}

	// A row whose parent code equals its own code stays out of its child
	// list.
	repo.rows["BQ"] = entities.TechnicalLocation{
		TechnicalCode:       "BQ",
		Name:                "Headquarters",
		TypeID:              1,
		ParentTechnicalCode: null.StringFrom("BQ"),
	}

	children, err := svc.GetChildren(ctx, "BQ")
	require.NoError(t, err)
	require.Len(t, children, 2)
	for _, child := range children {
		assert.NotEqual(t, "BQ", child.TechnicalCode)
	}

	children, err = svc.GetChildren(ctx, "BQ-A1-R1")
	require.NoError(t, err)
	assert.Empty(t, children)
}
