package export

import (
	"fmt"
	"io"
	"strings"
	"time"

	"garage-desk/internal/store"

	"github.com/jung-kurt/gofpdf"
)

const (
	companyName    = "MEER ENTERPRISES"
	companyTagline = "Professional Fleet Management & Car Care"
	companyAddress = "123 Business Road, Corporate Hub | +91 9876543210"
)

// WriteInvoice renders the printable per-vehicle invoice: itemized work,
// total charges, amount paid and the derived balance due.
func WriteInvoice(w io.Writer, v *store.VehicleRow) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(fmt.Sprintf("Invoice INV-%05d", v.ID), false)
	pdf.AddPage()

	// header band
	pdf.SetFillColor(15, 23, 42)
	pdf.Rect(0, 0, 210, 36, "F")
	pdf.SetTextColor(255, 255, 255)
	pdf.SetFont("Helvetica", "B", 20)
	pdf.SetXY(12, 10)
	pdf.CellFormat(0, 10, companyName, "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 9)
	pdf.SetTextColor(148, 163, 184)
	pdf.SetX(12)
	pdf.CellFormat(0, 5, companyTagline, "", 1, "L", false, 0, "")
	pdf.SetX(12)
	pdf.CellFormat(0, 5, companyAddress, "", 1, "L", false, 0, "")

	// invoice meta
	pdf.SetTextColor(30, 41, 59)
	pdf.SetFont("Helvetica", "B", 24)
	pdf.SetXY(12, 46)
	pdf.CellFormat(0, 12, "INVOICE", "", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	pdf.SetTextColor(100, 116, 139)
	pdf.SetX(12)
	pdf.CellFormat(60, 6, "Invoice Number", "", 0, "L", false, 0, "")
	pdf.CellFormat(60, 6, "Date Issued", "", 0, "L", false, 0, "")
	pdf.CellFormat(0, 6, "Bill To", "", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "B", 11)
	pdf.SetTextColor(30, 41, 59)
	pdf.SetX(12)
	pdf.CellFormat(60, 6, fmt.Sprintf("INV-%05d", v.ID), "", 0, "L", false, 0, "")
	pdf.CellFormat(60, 6, time.Now().Format("2 January 2006"), "", 0, "L", false, 0, "")
	pdf.CellFormat(0, 6, v.ClientName, "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.SetTextColor(100, 116, 139)
	pdf.SetX(132)
	pdf.CellFormat(0, 6, v.ClientPhone, "", 1, "L", false, 0, "")

	// item table
	pdf.SetY(90)
	pdf.SetFillColor(30, 41, 59)
	pdf.SetTextColor(255, 255, 255)
	pdf.SetFont("Helvetica", "B", 10)
	pdf.SetX(12)
	pdf.CellFormat(126, 9, "  ITEM & DESCRIPTION", "", 0, "L", true, 0, "")
	pdf.CellFormat(60, 9, "TOTAL  ", "", 1, "R", true, 0, "")

	work := strings.Join(v.WorkType, ", ")
	if work == "" {
		work = "General Service"
	}
	model := v.VehicleModel
	if model == "" {
		model = "Standard Model"
	}

	pdf.SetTextColor(30, 41, 59)
	pdf.SetFont("Helvetica", "B", 11)
	pdf.SetX(12)
	pdf.CellFormat(126, 10, "  "+work, "", 0, "L", false, 0, "")
	pdf.CellFormat(60, 10, fmt.Sprintf("Rs. %s  ", v.TotalCharges.StringFixed(2)), "", 1, "R", false, 0, "")

	pdf.SetFont("Helvetica", "", 9)
	pdf.SetTextColor(100, 116, 139)
	pdf.SetX(12)
	pdf.CellFormat(0, 5, fmt.Sprintf("  Vehicle: %s (%s)", v.VehicleNumber, model), "", 1, "L", false, 0, "")
	if v.ManufacturingYear != nil {
		pdf.SetX(12)
		pdf.CellFormat(0, 5, fmt.Sprintf("  Year: %d", *v.ManufacturingYear), "", 1, "L", false, 0, "")
	}

	// totals
	pdf.Ln(10)
	pdf.SetFont("Helvetica", "", 10)
	pdf.SetX(102)
	pdf.CellFormat(48, 7, "Subtotal", "", 0, "L", false, 0, "")
	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(48, 7, "Rs. "+v.TotalCharges.StringFixed(2), "", 1, "R", false, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	pdf.SetX(102)
	pdf.CellFormat(48, 7, "Amount Paid", "", 0, "L", false, 0, "")
	pdf.SetFont("Helvetica", "B", 10)
	pdf.SetTextColor(5, 150, 105)
	pdf.CellFormat(48, 7, "Rs. "+v.MoneyPaid.StringFixed(2), "", 1, "R", false, 0, "")

	due := v.PendingAmount
	if due.IsPositive() {
		pdf.SetFillColor(255, 241, 242)
		pdf.SetTextColor(225, 29, 72)
	} else {
		pdf.SetFillColor(240, 253, 244)
		pdf.SetTextColor(22, 101, 52)
	}
	pdf.SetFont("Helvetica", "B", 12)
	pdf.SetX(102)
	pdf.CellFormat(48, 12, "  BALANCE DUE", "", 0, "L", true, 0, "")
	pdf.CellFormat(48, 12, "Rs. "+due.StringFixed(2)+"  ", "", 1, "R", true, 0, "")

	// footer
	pdf.SetY(-40)
	pdf.SetDrawColor(37, 99, 235)
	pdf.SetLineWidth(0.8)
	pdf.Line(12, pdf.GetY(), 50, pdf.GetY())
	pdf.Ln(4)
	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetTextColor(30, 41, 59)
	pdf.SetX(12)
	pdf.CellFormat(0, 5, "THANK YOU FOR YOUR BUSINESS", "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 8)
	pdf.SetTextColor(100, 116, 139)
	pdf.SetX(12)
	pdf.CellFormat(0, 5, "Payment is due within 15 days of invoice date. Please quote the invoice number for reference.", "", 1, "L", false, 0, "")

	return pdf.Output(w)
}
