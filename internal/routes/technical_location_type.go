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

func runTechnicalLocationTypeRouter(api *echo.Group, dbConn *pgxpool.Pool, logger *zap.Logger) {
	typeRepository := repositories.NewTechnicalLocationTypeRepository(dbConn)
	typeService := services.NewCrudService[entities.TechnicalLocationType](typeRepository, "TechnicalLocationType", logger)
	typeCtrl := controllers.NewCrudController[entities.TechnicalLocationType, dto.CreateTechnicalLocationTypeDTO](
		typeService, controllers.PathPKInt("id", "id"), logger,
	)

	types := api.Group("/technical-location-types")
	types.GET("", typeCtrl.GetAll)
	types.GET("/:id", typeCtrl.GetByPK)
	types.POST("", typeCtrl.Create)
	types.PUT("/:id", typeCtrl.Update)
	types.DELETE("/:id", typeCtrl.Delete)
}
