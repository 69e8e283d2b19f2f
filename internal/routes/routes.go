package routes

import (
	"github.com/go-redis/redis/v8"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"gym-admin/internal/gymapi"
	"gym-admin/internal/repositories"
	"gym-admin/internal/services"
	"gym-admin/pkg/config"
)

// InitRouter wires one service per screen and mounts its routes. Screen
// state lives in the services, so every screen gets exactly one instance.
func InitRouter(e *echo.Echo, backend *gymapi.Client, redisClient *redis.Client, logger *zap.Logger, cfg *config.Config) {
	api := e.Group("/api")

	var cache repositories.CacheRepositoryInterface
	if redisClient != nil {
		cache = repositories.NewRedisCacheRepository(redisClient)
	}

	equipmentService := services.NewEquipmentService(backend, cache, cfg.Cache.ListTTL, logger)
	maintenanceService := services.NewMaintenanceService(backend, cache, cfg.Cache.ListTTL, logger)
	ticketService := services.NewTicketService(backend, cache, cfg.Cache.ListTTL, logger)
	costService := services.NewCostService(backend, cache, cfg.Cache.ListTTL, logger)
	reportService := services.NewReportService(backend, cache, cfg.Cache.ReportTTL, logger)

	runEquipmentRouter(api, equipmentService, logger)
	runMaintenanceRouter(api, maintenanceService, logger)
	runTicketRouter(api, ticketService, logger)
	runCostRouter(api, costService, reportService, logger)
}
