package routes

import (
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"gema-backend/internal/controllers"
	"gema-backend/internal/repositories"
	"gema-backend/internal/services"
)

func runTechnicalLocationRouter(api *echo.Group, dbConn *pgxpool.Pool, logger *zap.Logger) {
	locationRepository := repositories.NewTechnicalLocationRepository(dbConn)
	locationService := services.NewTechnicalLocationService(locationRepository, logger)
	locationCtrl := controllers.NewTechnicalLocationController(locationService, logger)

	locations := api.Group("/technical-locations")
	locations.GET("", locationCtrl.GetAll)
	locations.GET("/:technicalCode", locationCtrl.GetByPK)
	// Creation always derives the code from the parent and the suffix.
	locations.POST("", locationCtrl.CreateWithDerivedCode)
	locations.PUT("/:technicalCode", locationCtrl.Update)
	locations.DELETE("/:technicalCode", locationCtrl.Delete)
	locations.GET("/:technicalCode/children", locationCtrl.GetChildren)
}
