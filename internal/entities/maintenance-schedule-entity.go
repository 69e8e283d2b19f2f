package entities

import (
	"github.com/shopspring/decimal"
)

const (
	MaintenanceStatusScheduled  = "SCHEDULED"
	MaintenanceStatusInProgress = "INPROGRESS"
	MaintenanceStatusCompleted  = "COMPLETED"
	MaintenanceStatusCanceled   = "CANCELED"
)

// MaintenanceTypes is the closed set of types the schedule wizard offers.
var MaintenanceTypes = []string{
	"Preventive", "Corrective", "Predictive", "Routine",
	"Emergency", "Condition-based", "Breakdown",
}

type MaintenanceSchedule struct {
	ScheduleID             uint64          `json:"scheduleId"`
	EquipmentID            uint64          `json:"equipmentId"`
	MaintenanceType        string          `json:"maintenanceType"`
	MaintenanceDescription string          `json:"maintenanceDescription"`
	MaintenanceDate        string          `json:"maintenanceDate"`
	MaintenanceCost        decimal.Decimal `json:"maintenanceCost"`
	Technician             string          `json:"technician"`
	Status                 string          `json:"status"`
}
