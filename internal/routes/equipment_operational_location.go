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

func runEquipmentOperationalLocationRouter(api *echo.Group, dbConn *pgxpool.Pool, logger *zap.Logger) {
	assignmentRepository := repositories.NewEquipmentOperationalLocationRepository(dbConn)
	assignmentService := services.NewCrudService[entities.EquipmentOperationalLocation](
		assignmentRepository, "EquipmentOperationalLocation", logger,
	)
	assignmentCtrl := controllers.NewCrudController[entities.EquipmentOperationalLocation, dto.CreateEquipmentOperationalLocationDTO](
		assignmentService,
		controllers.CompositePK(
			controllers.PathPK("equipment_uuid", "equipmentUuid"),
			controllers.PathPK("location_technical_code", "locationTechnicalCode"),
		),
		logger,
	)

	assignments := api.Group("/equipment-operational-locations")
	assignments.GET("", assignmentCtrl.GetAll)
	assignments.GET("/:equipmentUuid/:locationTechnicalCode", assignmentCtrl.GetByPK)
	assignments.POST("", assignmentCtrl.Create)
	assignments.PUT("/:equipmentUuid/:locationTechnicalCode", assignmentCtrl.Update)
	assignments.DELETE("/:equipmentUuid/:locationTechnicalCode", assignmentCtrl.Delete)
}
