package export

import (
	"fmt"
	"strings"

	"garage-desk/internal/models"
	"garage-desk/internal/store"

	"github.com/xuri/excelize/v2"
)

var clientHeaders = []interface{}{"ID", "Name", "Phone", "Comments", "Created At"}

var vehicleHeaders = []interface{}{
	"ID", "Client Name", "Client Phone", "Vehicle Number", "Vehicle Model",
	"Manufacturing Year", "Work Type", "Date", "Process Status",
	"Money Paid", "Total Charges", "Pending Amount",
}

// Workbook builds the two-sheet export: one sheet per entity, header row
// bold on a gray fill to stand apart from the data rows.
func Workbook(clients []models.Client, vehicles []store.VehicleRow) (*excelize.File, error) {
	f := excelize.NewFile()

	if _, err := f.NewSheet("Clients"); err != nil {
		return nil, err
	}
	if _, err := f.NewSheet("Vehicles"); err != nil {
		return nil, err
	}
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, err
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"D3D3D3"}},
	})
	if err != nil {
		return nil, err
	}

	if err := f.SetSheetRow("Clients", "A1", &clientHeaders); err != nil {
		return nil, err
	}
	for i, c := range clients {
		cell := fmt.Sprintf("A%d", i+2)
		row := []interface{}{c.ID, c.Name, c.Phone, c.Comments, c.CreatedAt.Format("2006-01-02 15:04:05")}
		if err := f.SetSheetRow("Clients", cell, &row); err != nil {
			return nil, err
		}
	}

	if err := f.SetSheetRow("Vehicles", "A1", &vehicleHeaders); err != nil {
		return nil, err
	}
	for i, v := range vehicles {
		cell := fmt.Sprintf("A%d", i+2)
		row := []interface{}{
			v.ID, v.ClientName, v.ClientPhone, v.VehicleNumber, v.VehicleModel,
			yearOrEmpty(v.ManufacturingYear), strings.Join(v.WorkType, ", "),
			v.ServiceDate, v.ProcessStatus,
			v.MoneyPaid.InexactFloat64(), v.TotalCharges.InexactFloat64(),
			v.PendingAmount.InexactFloat64(),
		}
		if err := f.SetSheetRow("Vehicles", cell, &row); err != nil {
			return nil, err
		}
	}

	if err := f.SetCellStyle("Clients", "A1", "E1", headerStyle); err != nil {
		return nil, err
	}
	if err := f.SetCellStyle("Vehicles", "A1", "L1", headerStyle); err != nil {
		return nil, err
	}

	index, err := f.GetSheetIndex("Vehicles")
	if err != nil {
		return nil, err
	}
	f.SetActiveSheet(index)
	return f, nil
}

func yearOrEmpty(year *int) interface{} {
	if year == nil {
		return ""
	}
	return *year
}
