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

func runReportOriginRouter(api *echo.Group, dbConn *pgxpool.Pool, logger *zap.Logger) {
	originRepository := repositories.NewReportOriginRepository(dbConn)
	originService := services.NewCrudService[entities.ReportOrigin](originRepository, "ReportOrigin", logger)
	originCtrl := controllers.NewCrudController[entities.ReportOrigin, dto.CreateReportOriginDTO](
		originService, controllers.PathPKInt("id", "id"), logger,
	)

	origins := api.Group("/report-origins")
	origins.GET("", originCtrl.GetAll)
	origins.GET("/:id", originCtrl.GetByPK)
	origins.POST("", originCtrl.Create)
	origins.PUT("/:id", originCtrl.Update)
	origins.DELETE("/:id", originCtrl.Delete)
}
