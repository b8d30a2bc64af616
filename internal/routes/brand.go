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

func runBrandRouter(api *echo.Group, dbConn *pgxpool.Pool, logger *zap.Logger) {
	brandRepository := repositories.NewBrandRepository(dbConn)
	brandService := services.NewCrudService[entities.Brand](brandRepository, "Brand", logger)
	brandCtrl := controllers.NewCrudController[entities.Brand, dto.CreateBrandDTO](
		brandService, controllers.PathPKInt("id", "id"), logger,
	)

	brands := api.Group("/brands")
	brands.GET("", brandCtrl.GetAll)
	brands.GET("/:id", brandCtrl.GetByPK)
	brands.POST("", brandCtrl.Create)
	brands.PUT("/:id", brandCtrl.Update)
	brands.DELETE("/:id", brandCtrl.Delete)
}
