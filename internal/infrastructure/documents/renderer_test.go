package documents

import (
	"bytes"
	"testing"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/SGK112/crm-backend/internal/domain/entities"
)

func sampleEstimate() entities.Estimate {
	e := entities.Estimate{
		ID:     "est-1",
		Number: "EST-ABCD1234",
		Status: entities.EstimateStatusSent,
		Items: []entities.EstimateItem{
			{Description: "Countertop install", Quantity: 2, BaseCost: 10, SellPrice: 15, Taxable: true},
		},
		DiscountType:  entities.DiscountTypePercent,
		DiscountValue: 10,
		TaxRate:       8,
		CreatedAt:     time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC),
	}
	e.Recalculate()
	return e
}

func TestRenderer_RenderEstimatePDF(t *testing.T) {
	r := NewRenderer()

	got, err := r.RenderEstimatePDF(sampleEstimate(), entities.Client{FirstName: "Ann", LastName: "Lee"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) == 0 {
		t.Fatalf("expected pdf bytes")
	}
	if !bytes.HasPrefix(got, []byte("%PDF")) {
		t.Fatalf("expected pdf header, got %q", got[:8])
	}
}

func TestRenderer_RenderInvoicePDF(t *testing.T) {
	r := NewRenderer()

	inv := entities.InvoiceFromEstimate(sampleEstimate(), time.Date(2026, 8, 2, 0, 0, 0, 0, time.UTC))
	inv.ID = "inv-1"
	inv.Number = "INV-ABCD1234"

	got, err := r.RenderInvoicePDF(inv, entities.Client{Company: "Acme"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !bytes.HasPrefix(got, []byte("%PDF")) {
		t.Fatalf("expected pdf header")
	}
}

func TestRenderer_RenderEstimateBookXLSX(t *testing.T) {
	r := NewRenderer()

	got, err := r.RenderEstimateBookXLSX([]entities.Estimate{sampleEstimate()})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	f, err := excelize.OpenReader(bytes.NewReader(got))
	if err != nil {
		t.Fatalf("expected valid workbook: %v", err)
	}
	defer f.Close()

	for _, sheet := range []string{"estimates", "items"} {
		if idx, err := f.GetSheetIndex(sheet); err != nil || idx < 0 {
			t.Fatalf("expected sheet %q, err=%v idx=%d", sheet, err, idx)
		}
	}

	number, err := f.GetCellValue("estimates", "A2")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if number != "EST-ABCD1234" {
		t.Fatalf("expected estimate number in summary, got %q", number)
	}

	desc, err := f.GetCellValue("items", "B2")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if desc != "Countertop install" {
		t.Fatalf("expected flattened item row, got %q", desc)
	}
}

func TestRenderer_RenderEstimateBookXLSX_Empty(t *testing.T) {
	r := NewRenderer()

	got, err := r.RenderEstimateBookXLSX(nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := excelize.OpenReader(bytes.NewReader(got)); err != nil {
		t.Fatalf("expected valid empty workbook: %v", err)
	}
}
