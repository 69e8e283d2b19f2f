package services

import (
	"context"

	"github.com/shopspring/decimal"

	"gym-admin/internal/dto"
	"gym-admin/internal/entities"
)

// The services talk to the gym backend through these interfaces so tests
// can substitute fakes. *gymapi.Client satisfies all of them.

type EquipmentAPI interface {
	AddEquipment(ctx context.Context, payload dto.CreateEquipmentDTO) (*entities.Equipment, error)
	ListEquipment(ctx context.Context) ([]entities.Equipment, error)
	AllEquipment(ctx context.Context) ([]entities.Equipment, error)
	GetEquipment(ctx context.Context, id uint64) (*entities.Equipment, error)
	DeleteEquipment(ctx context.Context, id uint64) error
	UpdateEquipmentStatus(ctx context.Context, id uint64, status string) error
	UpdateEquipmentMaintenanceDate(ctx context.Context, id uint64, maintenanceDate string) error
	SearchEquipment(ctx context.Context, search string) ([]entities.Equipment, error)
	FilterEquipmentByStatus(ctx context.Context, status string) ([]entities.Equipment, error)
}

type MaintenanceAPI interface {
	AddMaintenanceSchedule(ctx context.Context, payload dto.CreateMaintenanceScheduleDTO) (*entities.MaintenanceSchedule, error)
	ListMaintenanceSchedules(ctx context.Context) ([]entities.MaintenanceSchedule, error)
	GetMaintenanceSchedule(ctx context.Context, id uint64) (*entities.MaintenanceSchedule, error)
	DeleteMaintenanceSchedule(ctx context.Context, id uint64) error
	SearchMaintenanceSchedules(ctx context.Context, search string) ([]entities.MaintenanceSchedule, error)
	UpdateMaintenanceDate(ctx context.Context, id uint64, date string) error
	UpdateMaintenanceStatus(ctx context.Context, id uint64, status string) error
	UpdateMaintenanceCost(ctx context.Context, id uint64, cost decimal.Decimal) error
	UpdateMaintenanceTechnician(ctx context.Context, id uint64, technician string) error
	UpdateMaintenanceDescription(ctx context.Context, id uint64, description string) error
	FilterMaintenanceByStatus(ctx context.Context, status string) ([]entities.MaintenanceSchedule, error)
	FilterMaintenanceByType(ctx context.Context, maintenanceType string) ([]entities.MaintenanceSchedule, error)
	FilterMaintenanceByEquipmentID(ctx context.Context, equipmentID uint64) ([]entities.MaintenanceSchedule, error)
}

type TicketAPI interface {
	ListTickets(ctx context.Context) ([]entities.Ticket, error)
	SearchTicketsByID(ctx context.Context, ticketID uint64) ([]entities.Ticket, error)
	AddTicket(ctx context.Context, payload dto.CreateTicketDTO) (*entities.Ticket, error)
	AssignTicket(ctx context.Context, ticketID, staffID uint64) (*entities.Ticket, error)
	UpdateTicketStatus(ctx context.Context, ticketID uint64, status string) (*entities.Ticket, error)
	TicketsAssignedToStaff(ctx context.Context, staffID uint64) ([]entities.Ticket, error)
	FilterTicketsByStatus(ctx context.Context, status string) ([]entities.Ticket, error)
	FilterTicketsByPriority(ctx context.Context, priority string) ([]entities.Ticket, error)
}

type CostAPI interface {
	MonthlyCosts(ctx context.Context) ([]entities.MonthlyCost, error)
	RecalculateMonthlyCosts(ctx context.Context) error
	FilterCostsByMonth(ctx context.Context, month string) ([]entities.MonthlyCost, error)
	FilterCostsByYear(ctx context.Context, year string) ([]entities.MonthlyCost, error)
}
