package store

import (
	"context"
	"strings"
	"time"

	"garage-desk/internal/models"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type VehicleStore struct {
	db *gorm.DB
}

func NewVehicleStore(db *gorm.DB) *VehicleStore {
	return &VehicleStore{db: db}
}

type VehicleInput struct {
	ClientID          uint             `json:"client_id" validate:"required"`
	VehicleNumber     string           `json:"vehicle_number" validate:"required,vehiclenum"`
	VehicleModel      string           `json:"vehicle_model"`
	ManufacturingYear *int             `json:"manufacturing_year"`
	WorkType          models.WorkTypes `json:"work_type"`
	Date              string           `json:"date" validate:"required,dateiso"`
	ProcessStatus     string           `json:"process_status" validate:"omitempty,oneof=Pending Processing Completed 'On Hold' Cancelled"`
	MoneyPaid         *decimal.Decimal `json:"money_paid"`
	TotalCharges      *decimal.Decimal `json:"total_charges"`
	Notes             string           `json:"notes"`
}

// VehicleRow is a vehicle joined with its owning client plus the derived
// pending amount and document count. pending_amount is computed in the
// query on every read, never stored.
type VehicleRow struct {
	ID                uint             `json:"id"`
	ClientID          uint             `json:"client_id"`
	VehicleNumber     string           `json:"vehicle_number"`
	VehicleModel      string           `json:"vehicle_model"`
	ManufacturingYear *int             `json:"manufacturing_year"`
	WorkType          models.WorkTypes `gorm:"column:work_type" json:"work_type"`
	ServiceDate       string           `gorm:"column:date" json:"date"`
	ProcessStatus     string           `json:"process_status"`
	MoneyPaid         decimal.Decimal  `json:"money_paid"`
	TotalCharges      decimal.Decimal  `json:"total_charges"`
	Notes             string           `json:"notes"`
	CreatedAt         time.Time        `json:"created_at"`
	UpdatedAt         time.Time        `json:"updated_at"`
	ClientName        string           `json:"client_name"`
	ClientPhone       string           `json:"client_phone"`
	PendingAmount     decimal.Decimal  `json:"pending_amount"`
	DocumentCount     int64            `json:"document_count"`
}

type VehicleFilter struct {
	Search    string
	Status    string
	ClientID  uint
	StartDate string
	EndDate   string
	SortBy    string
	SortOrder string
}

// sortColumns is the allow-list for user-supplied sort fields. Anything
// else falls back to the service date and never reaches the query.
var sortColumns = map[string]string{
	"date":          "v.date",
	"money_paid":    "v.money_paid",
	"total_charges": "v.total_charges",
	"id":            "v.id",
}

const vehicleColumns = `v.id, v.client_id, v.vehicle_number, v.vehicle_model, v.manufacturing_year,
	v.work_type, v.date, v.process_status, v.money_paid, v.total_charges, v.notes,
	v.created_at, v.updated_at,
	c.name AS client_name, c.phone AS client_phone,
	(v.total_charges - v.money_paid) AS pending_amount,
	(SELECT COUNT(*) FROM documents d WHERE d.vehicle_id = v.id) AS document_count`

func (s *VehicleStore) joined(ctx context.Context) *gorm.DB {
	return s.db.WithContext(ctx).
		Table("vehicles AS v").
		Select(vehicleColumns).
		Joins("JOIN clients c ON c.id = v.client_id")
}

func (s *VehicleStore) List(ctx context.Context, f VehicleFilter) ([]VehicleRow, error) {
	q := s.joined(ctx)

	if f.Search != "" {
		pattern := "%" + strings.ToLower(f.Search) + "%"
		q = q.Where("(LOWER(c.name) LIKE ? OR LOWER(v.vehicle_number) LIKE ?)", pattern, pattern)
	}
	if f.Status != "" {
		q = q.Where("v.process_status = ?", f.Status)
	}
	if f.ClientID != 0 {
		q = q.Where("v.client_id = ?", f.ClientID)
	}
	if f.StartDate != "" {
		q = q.Where("v.date >= ?", f.StartDate)
	}
	if f.EndDate != "" {
		q = q.Where("v.date <= ?", f.EndDate)
	}

	column, ok := sortColumns[f.SortBy]
	if !ok {
		column = "v.date"
	}
	direction := "DESC"
	if strings.EqualFold(f.SortOrder, "ASC") {
		direction = "ASC"
	}
	q = q.Order(column + " " + direction)

	rows := []VehicleRow{}
	if err := q.Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (s *VehicleStore) Get(ctx context.Context, id uint) (*VehicleRow, error) {
	var row VehicleRow
	res := s.joined(ctx).Where("v.id = ?", id).Scan(&row)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, NotFound("Vehicle not found")
	}
	return &row, nil
}

func validateVehicleInput(in VehicleInput) error {
	failures := fieldFailures(in)
	if failures != nil {
		if failures["ClientID"] == "required" ||
			failures["VehicleNumber"] == "required" ||
			failures["Date"] == "required" {
			return Invalid("Client ID, vehicle number, and date are required")
		}
		if failures["VehicleNumber"] == "vehiclenum" {
			return Invalid("Vehicle number must be exactly 10 alphanumeric characters (uppercase, no spaces)")
		}
		if failures["Date"] == "dateiso" {
			return Invalid("Date must be in YYYY-MM-DD format")
		}
		return Invalid("Invalid process status")
	}
	if in.MoneyPaid != nil && in.MoneyPaid.IsNegative() {
		return Invalid("money_paid must not be negative")
	}
	if in.TotalCharges != nil && in.TotalCharges.IsNegative() {
		return Invalid("total_charges must not be negative")
	}
	return nil
}

func amountOrZero(d *decimal.Decimal) decimal.Decimal {
	if d == nil {
		return decimal.Zero
	}
	return *d
}

func (s *VehicleStore) clientExists(ctx context.Context, id uint) error {
	var count int64
	if err := s.db.WithContext(ctx).Model(&models.Client{}).
		Where("id = ?", id).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return Invalid("Client does not exist")
	}
	return nil
}

func (s *VehicleStore) Create(ctx context.Context, in VehicleInput) (*VehicleRow, error) {
	if err := validateVehicleInput(in); err != nil {
		return nil, err
	}
	if err := s.clientExists(ctx, in.ClientID); err != nil {
		return nil, err
	}

	status := in.ProcessStatus
	if status == "" {
		status = models.StatusPending
	}
	workType := in.WorkType
	if workType == nil {
		workType = models.WorkTypes{}
	}

	vehicle := models.Vehicle{
		ClientID:          in.ClientID,
		VehicleNumber:     in.VehicleNumber,
		VehicleModel:      in.VehicleModel,
		ManufacturingYear: in.ManufacturingYear,
		WorkType:          workType,
		ServiceDate:       in.Date,
		ProcessStatus:     status,
		MoneyPaid:         amountOrZero(in.MoneyPaid),
		TotalCharges:      amountOrZero(in.TotalCharges),
		Notes:             in.Notes,
	}
	if err := s.db.WithContext(ctx).Create(&vehicle).Error; err != nil {
		return nil, err
	}
	return s.Get(ctx, vehicle.ID)
}

func (s *VehicleStore) Update(ctx context.Context, id uint, in VehicleInput) (*VehicleRow, error) {
	if err := validateVehicleInput(in); err != nil {
		return nil, err
	}

	var vehicle models.Vehicle
	err := s.db.WithContext(ctx).First(&vehicle, id).Error
	if err == gorm.ErrRecordNotFound {
		return nil, NotFound("Vehicle not found")
	}
	if err != nil {
		return nil, err
	}

	if in.ClientID != vehicle.ClientID {
		if err := s.clientExists(ctx, in.ClientID); err != nil {
			return nil, err
		}
	}

	status := in.ProcessStatus
	if status == "" {
		status = models.StatusPending
	}
	workType := in.WorkType
	if workType == nil {
		workType = models.WorkTypes{}
	}

	vehicle.ClientID = in.ClientID
	vehicle.VehicleNumber = in.VehicleNumber
	vehicle.VehicleModel = in.VehicleModel
	vehicle.ManufacturingYear = in.ManufacturingYear
	vehicle.WorkType = workType
	vehicle.ServiceDate = in.Date
	vehicle.ProcessStatus = status
	vehicle.MoneyPaid = amountOrZero(in.MoneyPaid)
	vehicle.TotalCharges = amountOrZero(in.TotalCharges)
	vehicle.Notes = in.Notes

	if err := s.db.WithContext(ctx).Save(&vehicle).Error; err != nil {
		return nil, err
	}
	return s.Get(ctx, id)
}

// Delete removes the vehicle's document rows and the vehicle row in one
// transaction. Backing bytes are the caller's concern: they live outside
// the database and are cleaned up best-effort before this runs.
func (s *VehicleStore) Delete(ctx context.Context, id uint) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("vehicle_id = ?", id).
			Delete(&models.Document{}).Error; err != nil {
			return err
		}
		res := tx.Delete(&models.Vehicle{}, id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return NotFound("Vehicle not found")
		}
		return nil
	})
}

type PaymentSummary struct {
	TotalVehicles    int64           `json:"total_vehicles"`
	TotalCharges     decimal.Decimal `json:"total_charges"`
	TotalPaid        decimal.Decimal `json:"total_paid"`
	TotalPending     decimal.Decimal `json:"total_pending"`
	UnpaidCount      int64           `json:"unpaid_count"`
	PartialPaidCount int64           `json:"partial_paid_count"`
	FullyPaidCount   int64           `json:"fully_paid_count"`
}

// PaymentSummary aggregates payment state across all vehicles. The three
// counts partition the row set exactly: a row is unpaid only when something
// is actually owed, so a 0-charge job counts as fully paid.
func (s *VehicleStore) PaymentSummary(ctx context.Context) (*PaymentSummary, error) {
	const query = `
SELECT
  COUNT(*) AS total_vehicles,
  COALESCE(SUM(total_charges), 0) AS total_charges,
  COALESCE(SUM(money_paid), 0) AS total_paid,
  COALESCE(SUM(total_charges - money_paid), 0) AS total_pending,
  COALESCE(SUM(CASE WHEN money_paid = 0 AND total_charges > 0 THEN 1 ELSE 0 END), 0) AS unpaid_count,
  COALESCE(SUM(CASE WHEN money_paid > 0 AND money_paid < total_charges THEN 1 ELSE 0 END), 0) AS partial_paid_count,
  COALESCE(SUM(CASE WHEN money_paid >= total_charges THEN 1 ELSE 0 END), 0) AS fully_paid_count
FROM vehicles`

	var summary PaymentSummary
	if err := s.db.WithContext(ctx).Raw(query).Scan(&summary).Error; err != nil {
		return nil, err
	}
	return &summary, nil
}
