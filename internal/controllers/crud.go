package controllers

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"gema-backend/internal/services"
	apperrors "gema-backend/pkg/errors"
	"gema-backend/pkg/utils"
)

// PKExtractor pulls the primary key values for one entity out of the request
// path. Composite keys merge several extractors.
type PKExtractor func(echo.Context) (map[string]interface{}, error)

func PathPK(column, param string) PKExtractor {
	return func(ctx echo.Context) (map[string]interface{}, error) {
		value := ctx.Param(param)
		if value == "" {
			return nil, apperrors.NewHttpError(http.StatusBadRequest, "missing identifier in path", nil)
		}
		return map[string]interface{}{column: value}, nil
	}
}

func PathPKInt(column, param string) PKExtractor {
	return func(ctx echo.Context) (map[string]interface{}, error) {
		id, err := strconv.Atoi(ctx.Param(param))
		if err != nil {
			return nil, apperrors.NewHttpError(http.StatusBadRequest, "invalid identifier format", err)
		}
		return map[string]interface{}{column: id}, nil
	}
}

func CompositePK(extractors ...PKExtractor) PKExtractor {
	return func(ctx echo.Context) (map[string]interface{}, error) {
		pk := make(map[string]interface{}, len(extractors))
		for _, extract := range extractors {
			part, err := extract(ctx)
			if err != nil {
				return nil, err
			}
			for column, value := range part {
				pk[column] = value
			}
		}
		return pk, nil
	}
}

// EntityPayload is the request body for an entity: it validates through the
// echo validator and converts itself into the stored shape.
type EntityPayload[T any] interface {
	ToEntity() T
}

// CrudController turns one entity's service into the five REST handlers.
// Instantiated once per entity at route-mounting time.
type CrudController[T any, P EntityPayload[T]] struct {
	service    services.CrudServiceInterface[T]
	pkFromPath PKExtractor
	logger     *zap.Logger
}

func NewCrudController[T any, P EntityPayload[T]](
	service services.CrudServiceInterface[T],
	pkFromPath PKExtractor,
	logger *zap.Logger,
) *CrudController[T, P] {
	return &CrudController[T, P]{
		service:    service,
		pkFromPath: pkFromPath,
		logger:     logger,
	}
}

func (c *CrudController[T, P]) GetAll(ctx echo.Context) error {
	records, err := c.service.GetAll(ctx.Request().Context())
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, records, "Successfully", http.StatusOK)
}

func (c *CrudController[T, P]) GetByPK(ctx echo.Context) error {
	pk, err := c.pkFromPath(ctx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	record, err := c.service.GetByPK(ctx.Request().Context(), pk)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, record, "Successfully", http.StatusOK)
}

func (c *CrudController[T, P]) Create(ctx echo.Context) error {
	var payload P
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewHttpError(http.StatusBadRequest, "invalid request body", err), c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	created, err := c.service.Create(ctx.Request().Context(), payload.ToEntity())
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, created, "Successfully created", http.StatusCreated)
}

func (c *CrudController[T, P]) Update(ctx echo.Context) error {
	pk, err := c.pkFromPath(ctx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	var payload P
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewHttpError(http.StatusBadRequest, "invalid request body", err), c.logger)
	}
	// The full schema is re-validated on update; there is no partial payload.
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	updated, err := c.service.Update(ctx.Request().Context(), pk, payload.ToEntity())
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, updated, "Successfully updated", http.StatusOK)
}

func (c *CrudController[T, P]) Delete(ctx echo.Context) error {
	pk, err := c.pkFromPath(ctx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	deleted, err := c.service.Delete(ctx.Request().Context(), pk)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, deleted, "Successfully deleted", http.StatusOK)
}
