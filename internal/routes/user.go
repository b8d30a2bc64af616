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

func runUserRouter(api *echo.Group, dbConn *pgxpool.Pool, logger *zap.Logger) {
	userRepository := repositories.NewUserRepository(dbConn)
	userService := services.NewCrudService[entities.User](userRepository, "User", logger)
	userCtrl := controllers.NewCrudController[entities.User, dto.CreateUserDTO](
		userService, controllers.PathPK("uuid", "uuid"), logger,
	)

	users := api.Group("/users")
	users.GET("", userCtrl.GetAll)
	users.GET("/:uuid", userCtrl.GetByPK)
	users.POST("", userCtrl.Create)
	users.PUT("/:uuid", userCtrl.Update)
	users.DELETE("/:uuid", userCtrl.Delete)
}
