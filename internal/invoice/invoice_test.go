package invoice

import (
	"bytes"
	"testing"
	"time"

	"github.com/framecraft/framepos/internal/pricing"
)

func testInvoice() Invoice {
	return Invoice{
		Number:    "FP-1042",
		CreatedAt: time.Date(2025, 3, 14, 10, 0, 0, 0, time.UTC),
		Customer:  Customer{Name: "Dana Whitfield", Phone: "555-0134"},
		Currency:  "USD",
		Breakdown: pricing.Breakdown{
			FrameTotal:   30.80,
			MatTotal:     11.20,
			GlassTotal:   43.20,
			BackingTotal: 14.40,
			LaborTotal:   60,
			Subtotal:     159.60,
			Tax:          13.167,
			Total:        172.767,
		},
	}
}

func TestRenderProducesPDF(t *testing.T) {
	data, err := Render(testInvoice())
	if err != nil {
		t.Fatalf("Render returned error: %v", err)
	}
	if !bytes.HasPrefix(data, []byte("%PDF-")) {
		t.Fatalf("output does not look like a PDF, starts with %q", data[:min(len(data), 8)])
	}
}

func TestRenderSkipsZeroComponents(t *testing.T) {
	bd := pricing.Breakdown{LaborTotal: 50, Subtotal: 50, Total: 50}
	lines := componentLines(bd)
	if len(lines) != 1 || lines[0].label != "Labor" {
		t.Fatalf("expected only the labor line, got %+v", lines)
	}
}

func TestMoneyFormatting(t *testing.T) {
	if got := money(172.767, "USD"); got != "172.77 USD" {
		t.Fatalf("money(172.767) = %q", got)
	}
	if got := money(10, ""); got != "10.00 USD" {
		t.Fatalf("money with empty currency = %q", got)
	}
}
