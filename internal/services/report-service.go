package services

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/csv"
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"gym-admin/internal/repositories"
)

const costReportCacheKey = "report:costs:xlsx"

type ReportServiceInterface interface {
	MonthlyCostXLSX(ctx context.Context) ([]byte, string, error)
	MonthlyCostCSV(ctx context.Context) ([]byte, string, error)
}

// reportService renders the monthly maintenance spend as downloadable
// files. The spreadsheet is cached because regenerating it walks the full
// cost table on every export.
type reportService struct {
	costs     CostAPI
	cache     repositories.CacheRepositoryInterface
	reportTTL time.Duration
	logger    *zap.Logger
}

func NewReportService(costs CostAPI,
	cache repositories.CacheRepositoryInterface,
	reportTTL time.Duration,
	logger *zap.Logger,
) ReportServiceInterface {
	return &reportService{
		costs:     costs,
		cache:     cache,
		reportTTL: reportTTL,
		logger:    logger,
	}
}

var costReportHeaders = []interface{}{"Month", "Total Cost"}

func (s *reportService) MonthlyCostXLSX(ctx context.Context) ([]byte, string, error) {
	fileName := fmt.Sprintf("monthly_costs_%s.xlsx", time.Now().Format("2006-01-02"))

	if s.cache != nil {
		if raw, err := s.cache.Get(ctx, costReportCacheKey); err == nil && raw != "" {
			if data, err := base64.StdEncoding.DecodeString(raw); err == nil {
				return data, fileName, nil
			}
			_ = s.cache.Del(ctx, costReportCacheKey)
		}
	}

	costs, err := s.costs.MonthlyCosts(ctx)
	if err != nil {
		return nil, "", err
	}

	f := excelize.NewFile()
	sheet := "Monthly Costs"
	f.SetSheetName("Sheet1", sheet)
	f.SetSheetRow(sheet, "A1", &costReportHeaders)
	style, _ := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	f.SetCellStyle(sheet, "A1", "B1", style)

	for i, c := range costs {
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		row := []interface{}{c.Month, c.TotalCost.InexactFloat64()}
		f.SetSheetRow(sheet, cell, &row)
	}
	f.SetColWidth(sheet, "A", "A", 14)
	f.SetColWidth(sheet, "B", "B", 16)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, "", err
	}

	if s.cache != nil {
		encoded := base64.StdEncoding.EncodeToString(buf.Bytes())
		if err := s.cache.Set(ctx, costReportCacheKey, encoded, s.reportTTL); err != nil {
			s.logger.Warn("report cache set failed", zap.Error(err))
		}
	}
	return buf.Bytes(), fileName, nil
}

func (s *reportService) MonthlyCostCSV(ctx context.Context) ([]byte, string, error) {
	costs, err := s.costs.MonthlyCosts(ctx)
	if err != nil {
		return nil, "", err
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	_ = w.Write([]string{"month", "totalCost"})
	for _, c := range costs {
		_ = w.Write([]string{c.Month, c.TotalCost.String()})
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, "", err
	}

	fileName := fmt.Sprintf("monthly_costs_%s.csv", time.Now().Format("2006-01-02"))
	return buf.Bytes(), fileName, nil
}
