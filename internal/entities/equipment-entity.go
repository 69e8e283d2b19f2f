package entities

// Equipment statuses as the backend reports them.
const (
	EquipmentStatusAvailable        = "AVAILABLE"
	EquipmentStatusUnavailable      = "UNAVAILABLE"
	EquipmentStatusUnderMaintenance = "UNDER_MAINTENANCE"
	EquipmentStatusOutOfOrder       = "OUT_OF_ORDER"
)

type Equipment struct {
	ID                  uint64 `json:"id"`
	Name                string `json:"name"`
	Category            string `json:"category"`
	Status              string `json:"status"`
	PurchaseDate        string `json:"purchaseDate"`
	LastMaintenanceDate string `json:"lastMaintenanceDate,omitempty"`
	WarrantyExpiry      string `json:"warrantyExpiry,omitempty"`
}
