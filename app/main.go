package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	"gema-backend/internal/routes"
	"gema-backend/pkg/config"
	"gema-backend/pkg/customvalidator"
	"gema-backend/pkg/database/postgresql"
	"gema-backend/pkg/logger"
	custommw "gema-backend/pkg/middleware"
	"gema-backend/pkg/utils"
)

func main() {
	cfg := config.New()

	log := logger.NewLogger(cfg.Env)
	defer log.Sync()

	dbConn := postgresql.ConnectDB(cfg.Postgres.DSN)
	defer dbConn.Close()

	e := echo.New()
	e.HideBanner = true

	e.Use(middleware.Recover())
	e.Use(middleware.CORS())
	e.Use(custommw.RequestLogger(log))

	v := validator.New()
	customvalidator.RegisterCustomValidations(v)
	e.Validator = utils.NewValidator(v)

	// Raw error details in responses only outside production.
	utils.SetErrorVerbosity(!cfg.IsProduction())

	routes.InitRouter(e, dbConn, log)

	go func() {
		addr := ":" + cfg.Server.Port
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			log.Fatal("server stopped", zap.Error(err))
		}
	}()
	log.Info("server started", zap.String("port", cfg.Server.Port), zap.String("env", cfg.Env))

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		log.Error("shutdown failed", zap.Error(err))
	}
	log.Info("server stopped")
}
