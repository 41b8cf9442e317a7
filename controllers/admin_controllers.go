package controllers

import (
	"bytes"
	"fmt"
	"net/http"
	"strconv"

	"github.com/ShakirChaya0/IPP-Prototype/services"
	"github.com/ShakirChaya0/IPP-Prototype/utils"
	"github.com/gin-gonic/gin"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type AdminController struct {
	App *services.App
}

func NewAdminController(app *services.App) *AdminController {
	return &AdminController{App: app}
}

// GetDashboardStats returns sales figures and the latest orders.
func (ac *AdminController) GetDashboardStats(c *gin.Context) {
	stats, err := ac.App.Orders.Stats()
	if err != nil {
		respondServiceError(c, err)
		return
	}
	recent, err := ac.App.Orders.Recent(services.DefaultRecentLimit)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	all, err := ac.App.Orders.All()
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Dashboard stats", gin.H{
		"stats":                 stats,
		"total_sales_formatted": utils.FormatCurrency(stats.TotalSales),
		"sales_by_category":     services.SalesByCategory(all),
		"recent_orders":         recent,
	})
}

// GetOrders lists the newest orders, ?limit= of them (20 by default).
func (ac *AdminController) GetOrders(c *gin.Context) {
	limit := services.DefaultRecentLimit
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			utils.RespondError(c, http.StatusBadRequest, fmt.Errorf("limit must be a positive number"))
			return
		}
		limit = n
	}

	orders, err := ac.App.Orders.Recent(limit)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Orders retrieved", orders)
}

// ExportOrders downloads every order as a spreadsheet.
func (ac *AdminController) ExportOrders(c *gin.Context) {
	orders, err := ac.App.Orders.All()
	if err != nil {
		respondServiceError(c, err)
		return
	}

	var buf bytes.Buffer
	if err := services.ExportOrders(orders, &buf); err != nil {
		respondServiceError(c, err)
		return
	}

	c.Header("Content-Disposition", "attachment; filename=orders.xlsx")
	c.Data(http.StatusOK, xlsxContentType, buf.Bytes())
}

// SalesChart renders sales per category as a PNG bar chart.
func (ac *AdminController) SalesChart(c *gin.Context) {
	orders, err := ac.App.Orders.All()
	if err != nil {
		respondServiceError(c, err)
		return
	}

	var buf bytes.Buffer
	if err := services.RenderSalesChart(orders, &buf); err != nil {
		respondServiceError(c, err)
		return
	}
	c.Data(http.StatusOK, "image/png", buf.Bytes())
}
