package pdf

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/jung-kurt/gofpdf"

	"github.com/shiftpay-app/shiftpay-backend-go/internal/domain/invoice"
	"github.com/shiftpay-app/shiftpay-backend-go/internal/domain/payperiod"
)

// RenderPayslip renders a settled or in-flight invoice as a one-page A4
// payslip and returns the PDF bytes.
func RenderPayslip(inv invoice.Invoice, period payperiod.PayPeriod) ([]byte, error) {
	doc := gofpdf.New("P", "mm", "A4", "")
	doc.AddPage()

	doc.SetFont("Helvetica", "B", 16)
	doc.Cell(40, 10, "Payslip")
	doc.Ln(12)

	doc.SetFont("Helvetica", "", 12)
	name := inv.UserID
	if inv.EmployeeName != nil && *inv.EmployeeName != "" {
		name = *inv.EmployeeName
	}
	doc.Cell(0, 8, fmt.Sprintf("Employee: %s", name))
	doc.Ln(7)
	if inv.EmployeeCode != nil && *inv.EmployeeCode != "" {
		doc.Cell(0, 8, fmt.Sprintf("Employee code: %s", *inv.EmployeeCode))
		doc.Ln(7)
	}
	doc.Cell(0, 8, fmt.Sprintf("Period: %s to %s",
		period.StartDate.Format("2006-01-02"), period.EndDate.Format("2006-01-02")))
	doc.Ln(7)
	doc.Cell(0, 8, fmt.Sprintf("Status: %s", strings.ToUpper(string(inv.Status))))
	doc.Ln(10)

	doc.Cell(0, 8, fmt.Sprintf("Regular earnings: %s %s", inv.RegularAmount.StringFixed(2), inv.Currency))
	doc.Ln(7)
	doc.Cell(0, 8, fmt.Sprintf("Overtime earnings: %s %s", inv.OvertimeAmount.StringFixed(2), inv.Currency))
	doc.Ln(7)
	doc.Cell(0, 8, fmt.Sprintf("Gross: %s %s", inv.GrossAmount.StringFixed(2), inv.Currency))
	doc.Ln(7)
	doc.Cell(0, 8, fmt.Sprintf("Deductions: %s %s", inv.Deductions.StringFixed(2), inv.Currency))
	doc.Ln(7)

	doc.SetFont("Helvetica", "B", 12)
	doc.Cell(0, 8, fmt.Sprintf("Net pay: %s %s", inv.NetAmount.StringFixed(2), inv.Currency))

	if inv.PaidAt != nil {
		doc.Ln(10)
		doc.SetFont("Helvetica", "I", 10)
		doc.Cell(0, 8, fmt.Sprintf("Paid at %s", inv.PaidAt.Format("2006-01-02 15:04 MST")))
	}

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render payslip pdf: %w", err)
	}

	return buf.Bytes(), nil
}
