package dto

// CreateTicketDTO must carry exactly one of UserID or StaffID; the service
// rejects payloads with both or neither, and an AssigneeType that names
// the unset one. Status and Priority fall back to OPEN and MEDIUM when
// omitted, AssigneeType to whichever raiser is present.
type CreateTicketDTO struct {
	Type         string  `json:"type" validate:"required"`
	Description  string  `json:"description" validate:"required"`
	Status       string  `json:"status,omitempty" validate:"omitempty,ticket_status"`
	Priority     string  `json:"priority,omitempty" validate:"omitempty,ticket_priority"`
	AssigneeType string  `json:"assigneeType,omitempty" validate:"omitempty,oneof=USER STAFF"`
	UserID       *uint64 `json:"userId,omitempty" validate:"omitempty,gt=0"`
	StaffID      *uint64 `json:"staffId,omitempty" validate:"omitempty,gt=0"`
}

// TicketQueryDTO is the ticket board's control set. StaffID narrows to the
// tickets assigned to one staff member.
type TicketQueryDTO struct {
	Search   string `query:"search"`
	Status   string `query:"status"`
	Priority string `query:"priority"`
	StaffID  uint64 `query:"staffId"`
	SortBy   string `query:"sortBy"`
	Order    string `query:"order"`
	Page     int    `query:"page"`
}

type AssignTicketDTO struct {
	StaffID uint64 `json:"staffId" validate:"required,gt=0"`
}

type UpdateTicketStatusDTO struct {
	Status string `json:"status" validate:"required,ticket_status"`
}
