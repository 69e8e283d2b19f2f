package dto

import (
	"github.com/shopspring/decimal"

	"gym-admin/internal/entities"
)

// CostFilterDTO holds at most one of Month ("2006-01") or Year ("2006").
// The formats are checked before any request reaches the backend.
type CostFilterDTO struct {
	Month  string `query:"month" validate:"omitempty,month_format"`
	Year   string `query:"year" validate:"omitempty,year_format"`
	SortBy string `query:"sortBy"`
	Order  string `query:"order"`
	Page   int    `query:"page"`
}

// YearCostGroupDTO is one year's slice of the cost viewer: its months in
// order plus the yearly total.
type YearCostGroupDTO struct {
	Year   string                 `json:"year"`
	Months []entities.MonthlyCost `json:"months"`
	Total  decimal.Decimal        `json:"total"`
}

type CostByTypeDTO struct {
	Type  string          `json:"type"`
	Total decimal.Decimal `json:"total"`
	Count int             `json:"count"`
}

// CostSummaryDTO mirrors the dashboard's summary card: headline figures
// over the visible schedules plus per-type and per-month breakdowns.
type CostSummaryDTO struct {
	TotalCost   decimal.Decimal        `json:"totalCost"`
	AverageCost decimal.Decimal        `json:"averageCost"`
	HighestCost decimal.Decimal        `json:"highestCost"`
	LowestCost  decimal.Decimal        `json:"lowestCost"`
	CostByType  []CostByTypeDTO        `json:"costByType"`
	CostByMonth []entities.MonthlyCost `json:"costByMonth"`
}
