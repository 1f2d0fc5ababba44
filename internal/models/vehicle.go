package models

import (
	"time"

	"github.com/shopspring/decimal"
)

func init() {
	// money fields go over the wire as JSON numbers, not strings
	decimal.MarshalJSONWithoutQuotes = true
}

type ProcessStatus = string

const (
	StatusPending    ProcessStatus = "Pending"
	StatusProcessing ProcessStatus = "Processing"
	StatusCompleted  ProcessStatus = "Completed"
	StatusOnHold     ProcessStatus = "On Hold"
	StatusCancelled  ProcessStatus = "Cancelled"
)

// Vehicle is one service-job record. The service date is kept as an
// ISO "YYYY-MM-DD" string so that range filters stay plain lexicographic
// comparisons on every supported driver.
type Vehicle struct {
	ID                uint            `gorm:"primaryKey" json:"id"`
	ClientID          uint            `gorm:"index;not null" json:"client_id"`
	VehicleNumber     string          `gorm:"size:10;not null" json:"vehicle_number"`
	VehicleModel      string          `gorm:"size:100" json:"vehicle_model"`
	ManufacturingYear *int            `json:"manufacturing_year"`
	WorkType          WorkTypes       `gorm:"type:text" json:"work_type"`
	ServiceDate       string          `gorm:"column:date;size:10;not null" json:"date"`
	ProcessStatus     string          `gorm:"size:50;not null;default:Pending" json:"process_status"`
	MoneyPaid         decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"money_paid"`
	TotalCharges      decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"total_charges"`
	Notes             string          `gorm:"type:text" json:"notes"`
	CreatedAt         time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt         time.Time       `gorm:"autoUpdateTime" json:"updated_at"`
}
