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

func runReportRouter(api *echo.Group, dbConn *pgxpool.Pool, logger *zap.Logger) {
	reportRepository := repositories.NewReportRepository(dbConn)
	reportService := services.NewCrudService[entities.Report](reportRepository, "Report", logger)
	reportCtrl := controllers.NewCrudController[entities.Report, dto.CreateReportDTO](
		reportService, controllers.PathPKInt("id", "id"), logger,
	)

	reports := api.Group("/reports")
	reports.GET("", reportCtrl.GetAll)
	reports.GET("/:id", reportCtrl.GetByPK)
	reports.POST("", reportCtrl.Create)
	reports.PUT("/:id", reportCtrl.Update)
	reports.DELETE("/:id", reportCtrl.Delete)
}
