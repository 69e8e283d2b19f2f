package dto

type CreateEquipmentDTO struct {
	Name                string `json:"name" validate:"required"`
	Category            string `json:"category" validate:"required"`
	Status              string `json:"status" validate:"required,equipment_status"`
	PurchaseDate        string `json:"purchaseDate" validate:"required,date_format"`
	LastMaintenanceDate string `json:"lastMaintenanceDate,omitempty" validate:"omitempty,date_format"`
	WarrantyExpiry      string `json:"warrantyExpiry,omitempty" validate:"omitempty,date_format"`
}

type UpdateEquipmentStatusDTO struct {
	Status string `json:"status" validate:"required,equipment_status"`
}

type UpdateEquipmentMaintenanceDateDTO struct {
	MaintenanceDate string `json:"maintenanceDate" validate:"required,date_format"`
}
