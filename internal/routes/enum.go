package routes

import (
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"gema-backend/internal/controllers"
	"gema-backend/internal/repositories"
	"gema-backend/internal/services"
)

func runEnumRouter(api *echo.Group, dbConn *pgxpool.Pool, logger *zap.Logger) {
	enumRepository := repositories.NewEnumRepository(dbConn)
	enumService := services.NewEnumService(enumRepository, logger)
	enumCtrl := controllers.NewEnumController(enumService, logger)

	api.GET("/enums/:name", enumCtrl.ListValues)
}
