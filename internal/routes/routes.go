package routes

import (
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// InitRouter mounts every REST resource under /api. Each entity gets the
// collection+item endpoint pair; the location tree and equipment add their
// extension endpoints on top.
func InitRouter(e *echo.Echo, dbConn *pgxpool.Pool, logger *zap.Logger) {
	api := e.Group("/api")

	runUserRouter(api, dbConn, logger)
	runTechnicianRouter(api, dbConn, logger)
	runTechnicalTeamRouter(api, dbConn, logger)
	runTechnicalLocationRouter(api, dbConn, logger)
	runTechnicalLocationTypeRouter(api, dbConn, logger)
	runBrandRouter(api, dbConn, logger)
	runEquipmentRouter(api, dbConn, logger)
	runEquipmentOperationalLocationRouter(api, dbConn, logger)
	runReportOriginRouter(api, dbConn, logger)
	runReportRouter(api, dbConn, logger)
	runReportUpdateRouter(api, dbConn, logger)
	runEnumRouter(api, dbConn, logger)
}
