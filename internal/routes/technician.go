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

func runTechnicianRouter(api *echo.Group, dbConn *pgxpool.Pool, logger *zap.Logger) {
	technicianRepository := repositories.NewTechnicianRepository(dbConn)
	technicianService := services.NewCrudService[entities.Technician](technicianRepository, "Technician", logger)
	technicianCtrl := controllers.NewCrudController[entities.Technician, dto.CreateTechnicianDTO](
		technicianService, controllers.PathPK("uuid", "uuid"), logger,
	)

	technicians := api.Group("/technicians")
	technicians.GET("", technicianCtrl.GetAll)
	technicians.GET("/:uuid", technicianCtrl.GetByPK)
	technicians.POST("", technicianCtrl.Create)
	technicians.PUT("/:uuid", technicianCtrl.Update)
	technicians.DELETE("/:uuid", technicianCtrl.Delete)
}
