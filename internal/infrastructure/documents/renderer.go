package documents

import (
	"bytes"
	"fmt"
	"time"

	"github.com/jung-kurt/gofpdf"
	"github.com/xuri/excelize/v2"

	"github.com/SGK112/crm-backend/internal/domain/entities"
	"github.com/SGK112/crm-backend/internal/usecase/interfaces"
)

// Renderer produces printable PDFs and spreadsheet exports from domain
// documents. Output is deterministic for a given input except for the
// generation timestamp line.
type Renderer struct{}

var _ interfaces.IDocumentRenderer = (*Renderer)(nil)

func NewRenderer() *Renderer {
	return &Renderer{}
}

func (r *Renderer) RenderEstimatePDF(e entities.Estimate, client entities.Client) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetFont("Arial", "", 12)
	pdf.AddPage()

	pdf.Cell(0, 8, fmt.Sprintf("Estimate %s", e.Number))
	pdf.Ln(10)
	pdf.SetFont("Arial", "", 10)
	if name := client.DisplayName(); name != "" {
		pdf.Cell(0, 6, fmt.Sprintf("Client: %s", name))
		pdf.Ln(5)
	}
	pdf.Cell(0, 6, fmt.Sprintf("Status: %s", e.Status.Badge().Label))
	pdf.Ln(5)
	pdf.Cell(0, 6, fmt.Sprintf("Created: %s", e.CreatedAt.Format("2006-01-02")))
	pdf.Ln(8)

	renderItemsTable(pdf, e.Items)

	pdf.Ln(4)
	pdf.Cell(0, 6, fmt.Sprintf("Subtotal: %.2f", e.SubtotalSell))
	pdf.Ln(5)
	if e.DiscountAmount > 0 {
		pdf.Cell(0, 6, fmt.Sprintf("Discount: -%.2f", e.DiscountAmount))
		pdf.Ln(5)
	}
	if e.TaxAmount > 0 {
		pdf.Cell(0, 6, fmt.Sprintf("Tax (%.2f%%): %.2f", e.TaxRate, e.TaxAmount))
		pdf.Ln(5)
	}
	pdf.SetFont("Arial", "B", 11)
	pdf.Cell(0, 7, fmt.Sprintf("Total: %.2f", e.Total))
	pdf.Ln(8)
	pdf.SetFont("Arial", "", 8)
	pdf.Cell(0, 5, fmt.Sprintf("Generated: %s", time.Now().UTC().Format(time.RFC3339)))

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (r *Renderer) RenderInvoicePDF(inv entities.Invoice, client entities.Client) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetFont("Arial", "", 12)
	pdf.AddPage()

	pdf.Cell(0, 8, fmt.Sprintf("Invoice %s", inv.Number))
	pdf.Ln(10)
	pdf.SetFont("Arial", "", 10)
	if name := client.DisplayName(); name != "" {
		pdf.Cell(0, 6, fmt.Sprintf("Client: %s", name))
		pdf.Ln(5)
	}
	pdf.Cell(0, 6, fmt.Sprintf("Status: %s", inv.Status))
	pdf.Ln(5)
	pdf.Cell(0, 6, fmt.Sprintf("Issued: %s", inv.CreatedAt.Format("2006-01-02")))
	pdf.Ln(8)

	renderItemsTable(pdf, inv.Items)

	pdf.Ln(4)
	pdf.Cell(0, 6, fmt.Sprintf("Subtotal: %.2f", inv.Subtotal))
	pdf.Ln(5)
	if inv.Discount > 0 {
		pdf.Cell(0, 6, fmt.Sprintf("Discount: -%.2f", inv.Discount))
		pdf.Ln(5)
	}
	if inv.Tax > 0 {
		pdf.Cell(0, 6, fmt.Sprintf("Tax: %.2f", inv.Tax))
		pdf.Ln(5)
	}
	pdf.SetFont("Arial", "B", 11)
	pdf.Cell(0, 7, fmt.Sprintf("Total due: %.2f", inv.Total))

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func renderItemsTable(pdf *gofpdf.Fpdf, items []entities.EstimateItem) {
	pdf.SetFont("Arial", "B", 10)
	pdf.CellFormat(80, 6, "Description", "1", 0, "L", false, 0, "")
	pdf.CellFormat(20, 6, "Qty", "1", 0, "C", false, 0, "")
	pdf.CellFormat(40, 6, "Unit Price", "1", 0, "C", false, 0, "")
	pdf.CellFormat(40, 6, "Line Total", "1", 0, "C", false, 0, "")
	pdf.Ln(-1)
	pdf.SetFont("Arial", "", 10)
	for _, item := range items {
		pdf.CellFormat(80, 6, item.Description, "1", 0, "L", false, 0, "")
		pdf.CellFormat(20, 6, fmt.Sprintf("%d", item.Quantity), "1", 0, "C", false, 0, "")
		pdf.CellFormat(40, 6, fmt.Sprintf("%.2f", item.SellPrice), "1", 0, "R", false, 0, "")
		pdf.CellFormat(40, 6, fmt.Sprintf("%.2f", item.LineTotal()), "1", 0, "R", false, 0, "")
		pdf.Ln(-1)
	}
}

// RenderEstimateBookXLSX produces a two-sheet workbook: a summary row per
// estimate and a flattened line-item sheet.
func (r *Renderer) RenderEstimateBookXLSX(estimates []entities.Estimate) ([]byte, error) {
	f := excelize.NewFile()
	summarySheet := "estimates"
	itemsSheet := "items"
	f.SetSheetName("Sheet1", summarySheet)
	if _, err := f.NewSheet(itemsSheet); err != nil {
		return nil, err
	}

	summaryHeaders := []string{"Number", "Status", "Subtotal", "Discount", "Tax", "Total", "Margin %", "Created"}
	for i, h := range summaryHeaders {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(summarySheet, cell, h)
	}

	_ = f.SetCellValue(itemsSheet, "A1", "Estimate")
	_ = f.SetCellValue(itemsSheet, "B1", "Description")
	_ = f.SetCellValue(itemsSheet, "C1", "Qty")
	_ = f.SetCellValue(itemsSheet, "D1", "Unit Price")
	_ = f.SetCellValue(itemsSheet, "E1", "Line Total")

	itemRow := 2
	for i, e := range estimates {
		row := i + 2
		_ = f.SetCellValue(summarySheet, fmt.Sprintf("A%d", row), e.Number)
		_ = f.SetCellValue(summarySheet, fmt.Sprintf("B%d", row), e.Status.Badge().Label)
		_ = f.SetCellValue(summarySheet, fmt.Sprintf("C%d", row), e.SubtotalSell)
		_ = f.SetCellValue(summarySheet, fmt.Sprintf("D%d", row), e.DiscountAmount)
		_ = f.SetCellValue(summarySheet, fmt.Sprintf("E%d", row), e.TaxAmount)
		_ = f.SetCellValue(summarySheet, fmt.Sprintf("F%d", row), e.Total)
		_ = f.SetCellValue(summarySheet, fmt.Sprintf("G%d", row), e.MarginPercent())
		_ = f.SetCellValue(summarySheet, fmt.Sprintf("H%d", row), e.CreatedAt.Format("2006-01-02"))

		for _, item := range e.Items {
			_ = f.SetCellValue(itemsSheet, fmt.Sprintf("A%d", itemRow), e.Number)
			_ = f.SetCellValue(itemsSheet, fmt.Sprintf("B%d", itemRow), item.Description)
			_ = f.SetCellValue(itemsSheet, fmt.Sprintf("C%d", itemRow), item.Quantity)
			_ = f.SetCellValue(itemsSheet, fmt.Sprintf("D%d", itemRow), item.SellPrice)
			_ = f.SetCellValue(itemsSheet, fmt.Sprintf("E%d", itemRow), item.LineTotal())
			itemRow++
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
