package export

import (
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/duanbtco-star/giaotuyet-api/internal/quote"
)

const sheetName = "Quote"

// QuoteDocument is the read-only snapshot handed to the exporter: the
// computed line items, fee lines and totals of one quote. The exporter
// never mutates engine state.
type QuoteDocument struct {
	Reference    string
	CustomerName string
	EventDate    time.Time
	TableCount   int

	Items       []*quote.LineItem
	Fees        *quote.FeeSet
	Totals      quote.ExportTotals
	Adjustments quote.ExportAdjustments
}

// QuoteWorkbook renders a quote into an xlsx workbook. With
// ShowIndividualPrices set, every row carries its own price; otherwise
// only dish names plus the per-table price appear, keeping per-item
// margins off the customer copy.
func QuoteWorkbook(doc *QuoteDocument) (*excelize.File, error) {
	f := excelize.NewFile()
	f.SetSheetName("Sheet1", sheetName)

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, fmt.Errorf("failed to create header style: %w", err)
	}

	setCell := func(col, row int, value interface{}) {
		cell, _ := excelize.CoordinatesToCellName(col, row)
		f.SetCellValue(sheetName, cell, value)
	}
	setBold := func(col, row int, value interface{}) {
		cell, _ := excelize.CoordinatesToCellName(col, row)
		f.SetCellValue(sheetName, cell, value)
		f.SetCellStyle(sheetName, cell, cell, bold)
	}

	setBold(1, 1, "Quotation "+doc.Reference)
	setCell(1, 2, "Customer")
	setCell(2, 2, doc.CustomerName)
	setCell(1, 3, "Event date")
	setCell(2, 3, doc.EventDate.Format("2006-01-02"))
	setCell(1, 4, "Tables")
	setCell(2, 4, doc.TableCount)

	row := 6
	if doc.Adjustments.ShowIndividualPrices {
		row = writeItemized(setCell, setBold, doc, row)
	} else {
		row = writePerTable(setCell, setBold, doc, row)
	}

	if doc.Adjustments.VATPct > 0 {
		setCell(1, row, fmt.Sprintf("VAT %.0f%%", doc.Adjustments.VATPct))
		setCell(4, row, doc.Totals.VATAmount)
		row++
		setBold(1, row, "Total incl. VAT")
		setBold(4, row, doc.Totals.GrandTotal+doc.Totals.VATAmount)
	}

	f.SetColWidth(sheetName, "A", "A", 32)
	f.SetColWidth(sheetName, "B", "D", 14)
	return f, nil
}

func writeItemized(setCell, setBold func(col, row int, value interface{}), doc *QuoteDocument, row int) int {
	setBold(1, row, "Item")
	setBold(2, row, "Unit")
	setBold(3, row, "Qty")
	setBold(4, row, "Price")
	setBold(5, row, "Total")
	row++

	for _, item := range doc.Items {
		setCell(1, row, item.Name)
		setCell(2, row, item.Unit)
		setCell(3, row, item.Quantity)
		setCell(4, row, item.Price.Effective())
		setCell(5, row, item.Total)
		row++
	}

	feeTotals := map[quote.FeeCategory]float64{
		quote.FeeTableRental:  doc.Totals.TableTotal,
		quote.FeeStaffService: doc.Totals.StaffTotal,
		quote.FeeFrameRental:  doc.Totals.FrameTotal,
	}
	feeLabels := map[quote.FeeCategory]string{
		quote.FeeTableRental:  "Table rental",
		quote.FeeStaffService: "Service staff",
		quote.FeeFrameRental:  "Frame rental",
	}
	for _, fee := range doc.Fees.Lines() {
		if fee.Quantity == 0 {
			continue
		}
		if doc.Adjustments.CustomerHandlesStaff && fee.Category == quote.FeeStaffService {
			continue
		}
		setCell(1, row, feeLabels[fee.Category])
		setCell(3, row, fee.Quantity)
		setCell(4, row, fee.Price.Effective())
		setCell(5, row, feeTotals[fee.Category])
		row++
	}

	row++
	setCell(1, row, "Subtotal")
	setCell(5, row, doc.Totals.Subtotal)
	row++
	if doc.Adjustments.OrderDiscountPct > 0 {
		setCell(1, row, fmt.Sprintf("Discount %.0f%%", doc.Adjustments.OrderDiscountPct))
		row++
	}
	setBold(1, row, "Grand total")
	setBold(5, row, doc.Totals.GrandTotal)
	return row + 1
}

func writePerTable(setCell, setBold func(col, row int, value interface{}), doc *QuoteDocument, row int) int {
	setBold(1, row, "Menu")
	row++
	for _, item := range doc.Items {
		setCell(1, row, item.Name)
		row++
	}

	row++
	setCell(1, row, "Price per table")
	setCell(4, row, doc.Totals.PricePerTable)
	row++
	setBold(1, row, fmt.Sprintf("Total (%d tables)", doc.TableCount))
	setBold(4, row, doc.Totals.GrandTotal)
	return row + 1
}
