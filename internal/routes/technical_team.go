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

func runTechnicalTeamRouter(api *echo.Group, dbConn *pgxpool.Pool, logger *zap.Logger) {
	teamRepository := repositories.NewTechnicalTeamRepository(dbConn)
	teamService := services.NewCrudService[entities.TechnicalTeam](teamRepository, "TechnicalTeam", logger)
	teamCtrl := controllers.NewCrudController[entities.TechnicalTeam, dto.CreateTechnicalTeamDTO](
		teamService, controllers.PathPKInt("id", "id"), logger,
	)

	teams := api.Group("/technical-teams")
	teams.GET("", teamCtrl.GetAll)
	teams.GET("/:id", teamCtrl.GetByPK)
	teams.POST("", teamCtrl.Create)
	teams.PUT("/:id", teamCtrl.Update)
	teams.DELETE("/:id", teamCtrl.Delete)
}
