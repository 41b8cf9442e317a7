package services

import (
	"fmt"
	"io"
	"strings"

	"github.com/ShakirChaya0/IPP-Prototype/models"
	"github.com/ShakirChaya0/IPP-Prototype/utils"
	"github.com/go-pdf/fpdf"
)

const receiptShopName = "MiCafe"

// RenderReceipt writes the digital receipt of a confirmed order as a PDF.
// Amounts come from the order snapshot, never from the live catalog.
func RenderReceipt(order *models.Order, w io.Writer) error {
	pdf := fpdf.New("P", "mm", "A5", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetTitle(fmt.Sprintf("Receipt %s", order.ReceiptNumber), true)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 10, receiptShopName, "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(0, 6, tr(fmt.Sprintf("Receipt #%s", order.ReceiptNumber)), "", 1, "C", false, 0, "")
	pdf.CellFormat(0, 6, order.CreatedAt.Format("2006-01-02 15:04"), "", 1, "C", false, 0, "")
	pdf.CellFormat(0, 6, tr(fmt.Sprintf("Customer: %s", order.CustomerName)), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 6, tr(fmt.Sprintf("Order type: %s", order.OrderType)), "", 1, "L", false, 0, "")
	pdf.Ln(2)

	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(12, 7, "Qty", "B", 0, "L", false, 0, "")
	pdf.CellFormat(78, 7, "Item", "B", 0, "L", false, 0, "")
	pdf.CellFormat(38, 7, "Amount", "B", 1, "R", false, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	for _, line := range order.Items {
		name := line.ProductName
		if len(line.Extras) > 0 {
			var extras []string
			for _, e := range line.Extras {
				extras = append(extras, e.Name)
			}
			name += " (" + strings.Join(extras, ", ") + ")"
		}
		pdf.CellFormat(12, 7, fmt.Sprintf("%dx", line.Quantity), "", 0, "L", false, 0, "")
		pdf.CellFormat(78, 7, tr(name), "", 0, "L", false, 0, "")
		pdf.CellFormat(38, 7, utils.FormatCurrency(OrderLineTotal(line)), "", 1, "R", false, 0, "")
	}

	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(90, 8, "Total", "T", 0, "L", false, 0, "")
	pdf.CellFormat(38, 8, utils.FormatCurrency(order.Total), "T", 1, "R", false, 0, "")

	pdf.SetFont("Helvetica", "I", 9)
	pdf.CellFormat(0, 8, tr(fmt.Sprintf("Status: %s", order.Status)), "", 1, "L", false, 0, "")

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("render receipt %s: %w", order.ReceiptNumber, err)
	}
	return nil
}
