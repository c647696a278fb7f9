// Package invoice renders a priced framing order into a printable PDF.
package invoice

import (
	"bytes"
	"fmt"
	"time"

	"github.com/jung-kurt/gofpdf"

	"github.com/framecraft/framepos/internal/pricing"
)

// Customer identifies who the invoice is billed to.
type Customer struct {
	Name  string
	Phone string
	Email string
}

// Invoice holds everything printed on the document.
type Invoice struct {
	Number    string
	CreatedAt time.Time
	Customer  Customer
	Notes     string
	Breakdown pricing.Breakdown
	Currency  string
}

type line struct {
	label  string
	amount float64
}

// Render produces the PDF bytes for an invoice.
func Render(inv Invoice) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Framing Invoice", false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, "Framing Invoice")
	pdf.Ln(8)

	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 6, fmt.Sprintf("No. %s, %s", inv.Number, inv.CreatedAt.Format("Jan 2, 2006")))
	pdf.Ln(6)

	if inv.Customer.Name != "" || inv.Customer.Phone != "" {
		pdf.Cell(0, 6, fmt.Sprintf("Customer: %s %s", inv.Customer.Name, inv.Customer.Phone))
		pdf.Ln(6)
	}
	if inv.Notes != "" {
		pdf.Cell(0, 6, inv.Notes)
		pdf.Ln(6)
	}

	pdf.Ln(4)
	pdf.SetFont("Helvetica", "B", 11)
	pdf.Cell(140, 7, "Item")
	pdf.Cell(30, 7, "Amount")
	pdf.Ln(8)

	pdf.SetFont("Helvetica", "", 10)
	for _, ln := range componentLines(inv.Breakdown) {
		pdf.Cell(140, 6, ln.label)
		pdf.Cell(30, 6, money(ln.amount, inv.Currency))
		pdf.Ln(6)
	}

	pdf.Ln(2)
	pdf.SetFont("Helvetica", "", 10)
	if inv.Breakdown.DiscountAmount > 0 {
		pdf.Cell(140, 6, "Discount")
		pdf.Cell(30, 6, "-"+money(inv.Breakdown.DiscountAmount, inv.Currency))
		pdf.Ln(6)
	}
	pdf.Cell(140, 6, "Subtotal")
	pdf.Cell(30, 6, money(inv.Breakdown.Subtotal, inv.Currency))
	pdf.Ln(6)
	pdf.Cell(140, 6, "Tax")
	pdf.Cell(30, 6, money(inv.Breakdown.Tax, inv.Currency))
	pdf.Ln(8)

	pdf.SetFont("Helvetica", "B", 11)
	pdf.Cell(0, 7, fmt.Sprintf("Total: %s", money(inv.Breakdown.Total, inv.Currency)))
	pdf.Ln(6)

	pdf.SetFont("Helvetica", "", 9)
	pdf.Cell(0, 5, fmt.Sprintf("Generated: %s", time.Now().Format(time.RFC3339)))

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("write invoice pdf: %w", err)
	}
	return buf.Bytes(), nil
}

// componentLines lists only the components the job actually has; a metal
// print with no mat should not show a $0.00 mat line.
func componentLines(bd pricing.Breakdown) []line {
	all := []line{
		{"Frame moulding", bd.FrameTotal},
		{"Mat boards", bd.MatTotal},
		{"Glazing", bd.GlassTotal},
		{"Backing", bd.BackingTotal},
		{"Labor", bd.LaborTotal},
		{"Special services", bd.ServicesTotal},
		{"Other charges", bd.MiscTotal},
	}

	lines := make([]line, 0, len(all))
	for _, ln := range all {
		if ln.amount != 0 {
			lines = append(lines, ln)
		}
	}
	return lines
}

func money(amount float64, currency string) string {
	if currency == "" {
		currency = "USD"
	}
	return fmt.Sprintf("%.2f %s", amount, currency)
}
