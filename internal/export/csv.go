package export

import (
	"encoding/csv"
	"io"
	"strconv"
	"strings"

	"garage-desk/internal/store"
)

var csvHeader = []string{
	"id", "client_name", "client_phone", "vehicle_number", "vehicle_model",
	"manufacturing_year", "work_type", "date", "process_status",
	"money_paid", "total_charges", "pending_amount",
}

// WriteCSV streams the vehicle+client join as delimited text. encoding/csv
// takes care of quoting embedded delimiters and quotes.
func WriteCSV(w io.Writer, vehicles []store.VehicleRow) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return err
	}

	for _, v := range vehicles {
		year := ""
		if v.ManufacturingYear != nil {
			year = strconv.Itoa(*v.ManufacturingYear)
		}
		record := []string{
			strconv.FormatUint(uint64(v.ID), 10),
			v.ClientName,
			v.ClientPhone,
			v.VehicleNumber,
			v.VehicleModel,
			year,
			strings.Join(v.WorkType, ", "),
			v.ServiceDate,
			v.ProcessStatus,
			v.MoneyPaid.String(),
			v.TotalCharges.String(),
			v.PendingAmount.String(),
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}
