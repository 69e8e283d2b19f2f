package main

import (
	"context"
	"net/http"

	"gym-admin/internal/gymapi"
	"gym-admin/internal/routes"
	"gym-admin/pkg/config"
	"gym-admin/pkg/customvalidator"
	apperrors "gym-admin/pkg/errors"
	applogger "gym-admin/pkg/logger"
	appmiddleware "gym-admin/pkg/middleware"
	"gym-admin/pkg/utils"

	"github.com/go-playground/validator/v10"
	"github.com/go-redis/redis/v8"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"
)

func main() {
	e := echo.New()
	logger := applogger.NewLogger()

	cfg := config.New()

	e.Use(appmiddleware.RequestLogger(logger))
	e.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{
		DisableStackAll: true,
		StackSize:       1 << 10,
		LogErrorFunc: func(c echo.Context, err error, stack []byte) error {
			logger.Error("panic recovered",
				zap.String("method", c.Request().Method),
				zap.String("uri", c.Request().RequestURI),
				zap.Error(err),
				zap.String("stack", string(stack)),
			)
			if !c.Response().Committed {
				httpErr := apperrors.NewHttpError(http.StatusInternalServerError, "Internal server error", err, nil)
				utils.ErrorResponse(c, httpErr, logger)
			}
			return err
		},
	}))

	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     []string{"http://localhost:5173"},
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowHeaders:     []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept},
		AllowCredentials: true,
		// The cost report endpoints send file downloads.
		ExposeHeaders: []string{"Content-Disposition"},
	}))

	v := validator.New()
	if err := customvalidator.RegisterCustomValidations(v); err != nil {
		logger.Fatal("failed to register custom validation rules", zap.Error(err))
	}
	e.Validator = utils.NewValidator(v)

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Address,
		Password: cfg.Redis.Password,
		DB:       0,
	})
	if _, err := redisClient.Ping(context.Background()).Result(); err != nil {
		// List snapshots and cached reports are an optimization; the
		// dashboard stays functional without them.
		logger.Warn("redis is unreachable, running without cache",
			zap.Error(err), zap.String("address", cfg.Redis.Address))
		redisClient = nil
	}

	backend := gymapi.NewClient(cfg.Upstream.BaseURL, cfg.Upstream.Timeout, logger)

	routes.InitRouter(e, backend, redisClient, logger, cfg)

	logger.Info("🚀 Server listening on :"+cfg.Server.Port,
		zap.String("backend", cfg.Upstream.BaseURL))
	if err := e.Start(":" + cfg.Server.Port); err != nil {
		logger.Fatal("server failed to start", zap.Error(err))
	}
}
