package routes

import (
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"gema-backend/internal/controllers"
	"gema-backend/internal/dto"
	"gema-backend/internal/entities"
	"gema-backend/internal/repositories"
	"gema-backend/internal/services"
)

func runReportUpdateRouter(api *echo.Group, dbConn *pgxpool.Pool, logger *zap.Logger) {
	updateRepository := repositories.NewReportUpdateRepository(dbConn)
	updateService := services.NewCrudService[entities.ReportUpdate](updateRepository, "ReportUpdate", logger)
	updateCtrl := controllers.NewCrudController[entities.ReportUpdate, dto.CreateReportUpdateDTO](
		updateService, controllers.PathPKInt("id", "id"), logger,
	)

	updates := api.Group("/report-updates")
	updates.GET("", updateCtrl.GetAll)
	updates.GET("/:id", updateCtrl.GetByPK)
	updates.POST("", updateCtrl.Create)
	updates.PUT("/:id", updateCtrl.Update)
	updates.DELETE("/:id", updateCtrl.Delete)
}
