package routes

import (
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"gema-backend/internal/controllers"
	"gema-backend/internal/repositories"
	"gema-backend/internal/services"
)

func runEquipmentRouter(api *echo.Group, dbConn *pgxpool.Pool, logger *zap.Logger) {
	equipmentRepository := repositories.NewEquipmentRepository(dbConn)
	assignmentRepository := repositories.NewEquipmentOperationalLocationRepository(dbConn)
	equipmentService := services.NewEquipmentService(equipmentRepository, assignmentRepository, logger)
	equipmentCtrl := controllers.NewEquipmentController(equipmentService, logger)

	equipment := api.Group("/equipment")
	equipment.GET("", equipmentCtrl.GetAll)
	equipment.GET("/:uuid", equipmentCtrl.GetByPK)
	equipment.POST("", equipmentCtrl.Create)
	equipment.PUT("/:uuid", equipmentCtrl.Update)
	equipment.DELETE("/:uuid", equipmentCtrl.Delete)

	equipment.GET("/:uuid/operational-locations", equipmentCtrl.ListOperationalLocations)
	equipment.PUT("/assign/technical-location/:equipmentId/:technicalLocationId", equipmentCtrl.AssignTechnicalLocation)
	equipment.POST("/assign/operational-location/:equipmentId/:operationalLocationId", equipmentCtrl.AssignOperationalLocation)
	equipment.PUT("/transfer/:equipmentId/:transferLocationId", equipmentCtrl.SetTransfer)
}
