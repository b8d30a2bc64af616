package controllers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"gema-backend/internal/services"
	"gema-backend/pkg/utils"
)

type EnumController struct {
	service *services.EnumService
	logger  *zap.Logger
}

func NewEnumController(service *services.EnumService, logger *zap.Logger) *EnumController {
	return &EnumController{
		service: service,
		logger:  logger,
	}
}

func (c *EnumController) ListValues(ctx echo.Context) error {
	values, err := c.service.ListValues(ctx.Request().Context(), ctx.Param("name"))
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, values, "Successfully", http.StatusOK)
}
