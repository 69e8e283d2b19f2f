package entities

const (
	TicketStatusOpen       = "OPEN"
	TicketStatusInProgress = "IN_PROGRESS"
	TicketStatusResolved   = "RESOLVED"
	TicketStatusClosed     = "CLOSED"
)

const (
	TicketPriorityLow    = "LOW"
	TicketPriorityMedium = "MEDIUM"
	TicketPriorityHigh   = "HIGH"
)

const (
	TicketRaisedByUser  = "USER"
	TicketRaisedByStaff = "STAFF"
)

// Ticket is raised by exactly one of a member (UserID) or a staff member
// (StaffID), selected by AssigneeType; the other pointer stays nil. The
// backend resolves the raiser and assignee into the denormalized
// RaisedBy*/AssignedTo* fields on read.
type Ticket struct {
	ID             uint64  `json:"id"`
	Type           string  `json:"type"`
	Description    string  `json:"description"`
	Status         string  `json:"status"`
	Priority       string  `json:"priority"`
	AssigneeType   string  `json:"assigneeType,omitempty"`
	UserID         *uint64 `json:"userId,omitempty"`
	StaffID        *uint64 `json:"staffId,omitempty"`
	RaisedByID     uint64  `json:"raisedById,omitempty"`
	RaisedByName   string  `json:"raisedByName,omitempty"`
	RaisedByType   string  `json:"raisedByType,omitempty"`
	AssignedToID   uint64  `json:"assignedToId,omitempty"`
	AssignedToName string  `json:"assignedToName,omitempty"`
	CreatedAt      string  `json:"createdAt,omitempty"`
	UpdatedAt      string  `json:"updatedAt,omitempty"`
}
