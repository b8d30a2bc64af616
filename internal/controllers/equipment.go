package controllers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"gema-backend/internal/dto"
	"gema-backend/internal/entities"
	"gema-backend/internal/services"
	"gema-backend/pkg/utils"
)

// EquipmentController extends the generic handlers with the location
// assignment operations.
type EquipmentController struct {
	*CrudController[entities.Equipment, dto.CreateEquipmentDTO]
	service *services.EquipmentService
	logger  *zap.Logger
}

func NewEquipmentController(service *services.EquipmentService, logger *zap.Logger) *EquipmentController {
	return &EquipmentController{
		CrudController: NewCrudController[entities.Equipment, dto.CreateEquipmentDTO](
			service, PathPK("uuid", "uuid"), logger,
		),
		service: service,
		logger:  logger,
	}
}

func (c *EquipmentController) AssignTechnicalLocation(ctx echo.Context) error {
	equipmentID := ctx.Param("equipmentId")
	locationID := ctx.Param("technicalLocationId")

	if err := c.service.AssignTechnicalLocation(ctx.Request().Context(), equipmentID, locationID); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, nil, "Equipment assigned to technical location", http.StatusOK)
}

func (c *EquipmentController) AssignOperationalLocation(ctx echo.Context) error {
	equipmentID := ctx.Param("equipmentId")
	locationID := ctx.Param("operationalLocationId")

	assignment, err := c.service.AssignOperationalLocation(ctx.Request().Context(), equipmentID, locationID)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, assignment, "Equipment assigned to operational location", http.StatusCreated)
}

func (c *EquipmentController) SetTransfer(ctx echo.Context) error {
	equipmentID := ctx.Param("equipmentId")
	locationID := ctx.Param("transferLocationId")

	if err := c.service.SetTransfer(ctx.Request().Context(), equipmentID, locationID); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, nil, "Transfer location updated", http.StatusOK)
}

func (c *EquipmentController) ListOperationalLocations(ctx echo.Context) error {
	equipmentID := ctx.Param("uuid")

	locations, err := c.service.ListOperationalLocations(ctx.Request().Context(), equipmentID)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, locations, "Successfully", http.StatusOK)
}
