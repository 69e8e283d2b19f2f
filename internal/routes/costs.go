package routes

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"gym-admin/internal/controllers"
	"gym-admin/internal/services"
)

func runCostRouter(g *echo.Group, service *services.CostService, reports services.ReportServiceInterface, logger *zap.Logger) {
	ctrl := controllers.NewCostController(service, logger)
	reportCtrl := controllers.NewReportController(reports, logger)

	g.GET("/monthly-costs", ctrl.View)
	g.POST("/monthly-costs/refresh", ctrl.Recalculate)
	g.POST("/monthly-costs/sort", ctrl.Sort)
	g.GET("/monthly-costs/yearly", ctrl.YearlyBreakdown)
	g.DELETE("/monthly-costs/toast", ctrl.DismissToast)

	g.GET("/monthly-costs/export/xlsx", reportCtrl.MonthlyCostXLSX)
	g.GET("/monthly-costs/export/csv", reportCtrl.MonthlyCostCSV)
}
