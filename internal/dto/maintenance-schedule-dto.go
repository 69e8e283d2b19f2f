package dto

import (
	"github.com/shopspring/decimal"
)

// CreateMaintenanceScheduleDTO is the payload assembled by the two-stage
// schedule wizard: the details stage validates the bound fields, the review
// stage submits them unchanged.
type CreateMaintenanceScheduleDTO struct {
	EquipmentID            uint64          `json:"equipmentId" validate:"required,gt=0"`
	MaintenanceType        string          `json:"maintenanceType" validate:"required"`
	MaintenanceDescription string          `json:"maintenanceDescription,omitempty"`
	MaintenanceDate        string          `json:"maintenanceDate" validate:"required,date_format"`
	MaintenanceCost        decimal.Decimal `json:"maintenanceCost"`
	Technician             string          `json:"technician,omitempty"`
	Status                 string          `json:"status,omitempty" validate:"omitempty,maintenance_status"`
}

type UpdateMaintenanceStatusDTO struct {
	Status string `json:"status" validate:"required,maintenance_status"`
}

// MaintenanceQueryDTO is the schedule screen's control set. All criteria
// are optional and AND-combined; cost bounds are decimal strings and the
// date bounds are inclusive.
type MaintenanceQueryDTO struct {
	Search      string `query:"search"`
	Status      string `query:"status"`
	Type        string `query:"type"`
	EquipmentID uint64 `query:"equipmentId"`
	MinCost     string `query:"minCost"`
	MaxCost     string `query:"maxCost"`
	StartDate   string `query:"startDate" validate:"omitempty,date_format"`
	EndDate     string `query:"endDate" validate:"omitempty,date_format"`
	SortBy      string `query:"sortBy"`
	Order       string `query:"order"`
	Page        int    `query:"page"`
}
