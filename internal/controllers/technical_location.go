package controllers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"gema-backend/internal/dto"
	"gema-backend/internal/entities"
	"gema-backend/internal/services"
	apperrors "gema-backend/pkg/errors"
	"gema-backend/pkg/utils"
)

// TechnicalLocationController extends the generic handlers with derived-code
// creation and child listing for the location tree.
type TechnicalLocationController struct {
	*CrudController[entities.TechnicalLocation, dto.CreateTechnicalLocationDTO]
	service *services.TechnicalLocationService
	logger  *zap.Logger
}

func NewTechnicalLocationController(service *services.TechnicalLocationService, logger *zap.Logger) *TechnicalLocationController {
	return &TechnicalLocationController{
		CrudController: NewCrudController[entities.TechnicalLocation, dto.CreateTechnicalLocationDTO](
			service, PathPK("technical_code", "technicalCode"), logger,
		),
		service: service,
		logger:  logger,
	}
}

// CreateWithDerivedCode replaces the plain create: the technical code is
// always derived from the parent code and the supplied suffix.
func (c *TechnicalLocationController) CreateWithDerivedCode(ctx echo.Context) error {
	var payload dto.CreateDerivedLocationDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewHttpError(http.StatusBadRequest, "invalid request body", err), c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	created, err := c.service.CreateWithDerivedCode(ctx.Request().Context(), payload)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, created, "Successfully created", http.StatusCreated)
}

// GetChildren lists the direct children of a location. No children is a
// normal outcome: an empty list, not an error.
func (c *TechnicalLocationController) GetChildren(ctx echo.Context) error {
	technicalCode := ctx.Param("technicalCode")

	children, err := c.service.GetChildren(ctx.Request().Context(), technicalCode)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, children, "Successfully", http.StatusOK)
}
