package services

import (
	"fmt"
	"io"

	"github.com/ShakirChaya0/IPP-Prototype/models"
	"github.com/shopspring/decimal"
	"github.com/tealeg/xlsx"
	"github.com/wcharczuk/go-chart/v2"
)

var orderExportHeaders = []string{
	"Receipt", "Order ID", "Customer", "Type", "Status", "Items", "Total", "Created At", "Completed At",
}

// ExportOrders writes the order log as an xlsx workbook.
func ExportOrders(orders []models.Order, w io.Writer) error {
	file := xlsx.NewFile()
	sheet, err := file.AddSheet("Orders")
	if err != nil {
		return fmt.Errorf("export orders: %w", err)
	}

	headerRow := sheet.AddRow()
	for _, h := range orderExportHeaders {
		headerRow.AddCell().SetValue(h)
	}

	for _, o := range orders {
		items := 0
		for _, line := range o.Items {
			items += line.Quantity
		}

		row := sheet.AddRow()
		row.AddCell().SetValue(o.ReceiptNumber)
		row.AddCell().SetValue(o.ID)
		row.AddCell().SetValue(o.CustomerName)
		row.AddCell().SetValue(string(o.OrderType))
		row.AddCell().SetValue(string(o.Status))
		row.AddCell().SetValue(items)
		row.AddCell().SetFloatWithFormat(o.Total.InexactFloat64(), "0.00")
		row.AddCell().SetValue(o.CreatedAt.Format("2006-01-02 15:04:05"))
		completed := ""
		if o.CompletedAt != nil {
			completed = o.CompletedAt.Format("2006-01-02 15:04:05")
		}
		row.AddCell().SetValue(completed)
	}

	if err := file.Write(w); err != nil {
		return fmt.Errorf("export orders: %w", err)
	}
	return nil
}

const (
	chartBarWidth   = 60
	chartBarSpacing = 40
)

// RenderSalesChart draws sales per category as a PNG bar chart.
func RenderSalesChart(orders []models.Order, w io.Writer) error {
	sales := SalesByCategory(orders)

	peak := decimal.Zero
	bars := make([]chart.Value, 0, len(sales))
	for _, s := range sales {
		if s.Total.GreaterThan(peak) {
			peak = s.Total
		}
		bars = append(bars, chart.Value{Label: s.Category, Value: s.Total.InexactFloat64()})
	}
	if len(bars) == 0 || !peak.IsPositive() {
		return ErrNoSalesData
	}

	width := len(bars)*(chartBarWidth+chartBarSpacing) + 160
	if width < 640 {
		width = 640
	}

	graph := chart.BarChart{
		Title: "Sales by category",
		Background: chart.Style{
			Padding: chart.Box{Top: 40},
		},
		Height:     400,
		Width:      width,
		BarWidth:   chartBarWidth,
		BarSpacing: chartBarSpacing,
		YAxis: chart.YAxis{
			Range: &chart.ContinuousRange{Min: 0, Max: peak.InexactFloat64() * 1.1},
		},
		Bars: bars,
	}

	if err := graph.Render(chart.PNG, w); err != nil {
		return fmt.Errorf("render sales chart: %w", err)
	}
	return nil
}
