package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	validatorlib "github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"gema-backend/internal/dto"
	"gema-backend/internal/entities"
	"gema-backend/pkg/customvalidator"
	apperrors "gema-backend/pkg/errors"
	"gema-backend/pkg/utils"
)

// fakeBrandService returns canned results so the handler logic can be
// exercised without a database.
type fakeBrandService struct {
	brands map[int]entities.Brand
	nextID int
}

func newFakeBrandService() *fakeBrandService {
	return &fakeBrandService{brands: map[int]entities.Brand{}, nextID: 1}
}

func (f *fakeBrandService) Create(_ context.Context, brand entities.Brand) (entities.Brand, error) {
	for _, existing := range f.brands {
		if existing.Name == brand.Name {
			return entities.Brand{}, apperrors.ErrConflict
		}
	}
	brand.ID = f.nextID
	f.nextID++
	f.brands[brand.ID] = brand
	return brand, nil
}

func (f *fakeBrandService) GetByPK(_ context.Context, pk map[string]interface{}) (entities.Brand, error) {
	id, _ := pk["id"].(int)
	brand, ok := f.brands[id]
	if !ok {
		return entities.Brand{}, apperrors.ErrNotFound
	}
	return brand, nil
}

func (f *fakeBrandService) GetAll(_ context.Context) ([]entities.Brand, error) {
	all := make([]entities.Brand, 0, len(f.brands))
	for _, brand := range f.brands {
		all = append(all, brand)
	}
	return all, nil
}

func (f *fakeBrandService) Update(_ context.Context, pk map[string]interface{}, brand entities.Brand) (entities.Brand, error) {
	id, _ := pk["id"].(int)
	if _, ok := f.brands[id]; !ok {
		return entities.Brand{}, apperrors.ErrNotFound
	}
	brand.ID = id
	f.brands[id] = brand
	return brand, nil
}

func (f *fakeBrandService) Delete(_ context.Context, pk map[string]interface{}) (entities.Brand, error) {
	id, _ := pk["id"].(int)
	brand, ok := f.brands[id]
	if !ok {
		return entities.Brand{}, apperrors.ErrNotFound
	}
	delete(f.brands, id)
	return brand, nil
}

func newTestEcho() *echo.Echo {
	e := echo.New()
	v := validatorlib.New()
	customvalidator.RegisterCustomValidations(v)
	e.Validator = utils.NewValidator(v)
	return e
}

func newBrandController(svc *fakeBrandService) *CrudController[entities.Brand, dto.CreateBrandDTO] {
	return NewCrudController[entities.Brand, dto.CreateBrandDTO](svc, PathPKInt("id", "id"), zap.NewNop())
}

func decodeResponse(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestCreateReturnsCreatedRecord(t *testing.T) {
	e := newTestEcho()
	ctrl := newBrandController(newFakeBrandService())

	req := httptest.NewRequest(http.MethodPost, "/api/brands", strings.NewReader(`{"name":"Siemens"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	require.NoError(t, ctrl.Create(e.NewContext(req, rec)))
	assert.Equal(t, http.StatusCreated, rec.Code)

	body := decodeResponse(t, rec)
	assert.Equal(t, true, body["status"])
	assert.Equal(t, "Siemens", body["body"].(map[string]interface{})["name"])
}

func TestCreateValidationFailureListsEveryViolation(t *testing.T) {
	e := newTestEcho()
	svc := newFakeBrandService()
	ctrl := newBrandController(svc)

	req := httptest.NewRequest(http.MethodPost, "/api/brands", strings.NewReader(`{}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	require.NoError(t, ctrl.Create(e.NewContext(req, rec)))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	body := decodeResponse(t, rec)
	assert.Equal(t, false, body["status"])
	violations := body["body"].([]interface{})
	require.NotEmpty(t, violations)
	first := violations[0].(map[string]interface{})
	assert.Equal(t, "Name", first["field"])
	assert.Equal(t, "required", first["rule"])

	// Nothing was persisted.
	assert.Empty(t, svc.brands)
}

func TestGetByPKNotFound(t *testing.T) {
	e := newTestEcho()
	ctrl := newBrandController(newFakeBrandService())

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	ctx := e.NewContext(req, rec)
	ctx.SetParamNames("id")
	ctx.SetParamValues("42")

	require.NoError(t, ctrl.GetByPK(ctx))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGetByPKRejectsNonNumericID(t *testing.T) {
	e := newTestEcho()
	ctrl := newBrandController(newFakeBrandService())

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	ctx := e.NewContext(req, rec)
	ctx.SetParamNames("id")
	ctx.SetParamValues("abc")

	require.NoError(t, ctrl.GetByPK(ctx))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreateDuplicateIsConflict(t *testing.T) {
	e := newTestEcho()
	svc := newFakeBrandService()
	ctrl := newBrandController(svc)

	for i, wantCode := range []int{http.StatusCreated, http.StatusConflict} {
		req := httptest.NewRequest(http.MethodPost, "/api/brands", strings.NewReader(`{"name":"Siemens"}`))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		rec := httptest.NewRecorder()

		require.NoError(t, ctrl.Create(e.NewContext(req, rec)))
		assert.Equal(t, wantCode, rec.Code, "request %d", i+1)
	}
}

func TestUpdateRevalidatesTheFullPayload(t *testing.T) {
	e := newTestEcho()
	svc := newFakeBrandService()
	_, err := svc.Create(context.Background(), entities.Brand{Name: "Siemens"})
	require.NoError(t, err)
	ctrl := newBrandController(svc)

	req := httptest.NewRequest(http.MethodPut, "/", strings.NewReader(`{}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	ctx := e.NewContext(req, rec)
	ctx.SetParamNames("id")
	ctx.SetParamValues("1")

	require.NoError(t, ctrl.Update(ctx))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Siemens", svc.brands[1].Name)
}

func TestCompositePKMergesPathParams(t *testing.T) {
	e := newTestEcho()
	extract := CompositePK(
		PathPK("equipment_uuid", "equipmentUuid"),
		PathPK("location_technical_code", "locationTechnicalCode"),
	)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	ctx := e.NewContext(req, httptest.NewRecorder())
	ctx.SetParamNames("equipmentUuid", "locationTechnicalCode")
	ctx.SetParamValues("eq-1", "BQ-A1")

	pk, err := extract(ctx)
	require.NoError(t, err)
	assert.Equal(t, map[string]interface{}{
		"equipment_uuid":          "eq-1",
		"location_technical_code": "BQ-A1",
	}, pk)
}
