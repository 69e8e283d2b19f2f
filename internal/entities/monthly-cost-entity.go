package entities

import (
	"github.com/shopspring/decimal"
)

// MonthlyCost is one aggregated row of maintenance spend. Month is either
// "2006-01" for a month bucket or "2006" for a year bucket.
type MonthlyCost struct {
	Month     string          `json:"month"`
	TotalCost decimal.Decimal `json:"totalCost"`
}
