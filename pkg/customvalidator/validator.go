package customvalidator

import (
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

var (
	monthRegex = regexp.MustCompile(`^\d{4}-\d{2}$`)
	yearRegex  = regexp.MustCompile(`^\d{4}$`)
	dateRegex  = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
)

// RegisterCustomValidations wires the dashboard's validation rules into the
// shared validator instance.
func RegisterCustomValidations(v *validator.Validate) error {
	if err := v.RegisterValidation("equipment_status", isEquipmentStatus); err != nil {
		return err
	}
	if err := v.RegisterValidation("maintenance_status", isMaintenanceStatus); err != nil {
		return err
	}
	if err := v.RegisterValidation("ticket_status", isTicketStatus); err != nil {
		return err
	}
	if err := v.RegisterValidation("ticket_priority", isTicketPriority); err != nil {
		return err
	}
	if err := v.RegisterValidation("date_format", isDateFormat); err != nil {
		return err
	}
	if err := v.RegisterValidation("month_format", isMonthFormat); err != nil {
		return err
	}
	if err := v.RegisterValidation("year_format", isYearFormat); err != nil {
		return err
	}
	return nil
}

func isEquipmentStatus(fl validator.FieldLevel) bool {
	switch strings.ToUpper(fl.Field().String()) {
	case "AVAILABLE", "UNAVAILABLE", "UNDER_MAINTENANCE", "OUT_OF_ORDER":
		return true
	}
	return false
}

func isMaintenanceStatus(fl validator.FieldLevel) bool {
	switch strings.ToUpper(fl.Field().String()) {
	case "SCHEDULED", "INPROGRESS", "COMPLETED", "CANCELED":
		return true
	}
	return false
}

func isTicketStatus(fl validator.FieldLevel) bool {
	switch strings.ToUpper(fl.Field().String()) {
	case "OPEN", "IN_PROGRESS", "RESOLVED", "CLOSED":
		return true
	}
	return false
}

func isTicketPriority(fl validator.FieldLevel) bool {
	switch strings.ToUpper(fl.Field().String()) {
	case "LOW", "MEDIUM", "HIGH":
		return true
	}
	return false
}

// isDateFormat accepts YYYY-MM-DD, the format every date input on the
// dashboard submits.
func isDateFormat(fl validator.FieldLevel) bool {
	return dateRegex.MatchString(fl.Field().String())
}

// The monthly-cost filters are strictly YYYY or YYYY-MM, validated before
// any request is dispatched.
func isMonthFormat(fl validator.FieldLevel) bool {
	return monthRegex.MatchString(fl.Field().String())
}

func isYearFormat(fl validator.FieldLevel) bool {
	return yearRegex.MatchString(fl.Field().String())
}

// IsYear reports whether s is a bare YYYY filter.
func IsYear(s string) bool { return yearRegex.MatchString(s) }

// IsMonth reports whether s is a YYYY-MM filter.
func IsMonth(s string) bool { return monthRegex.MatchString(s) }
