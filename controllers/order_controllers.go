package controllers

import (
	"bytes"
	"fmt"
	"net/http"

	"github.com/ShakirChaya0/IPP-Prototype/middlewares"
	"github.com/ShakirChaya0/IPP-Prototype/models"
	"github.com/ShakirChaya0/IPP-Prototype/services"
	"github.com/ShakirChaya0/IPP-Prototype/utils"
	"github.com/gin-gonic/gin"
)

type OrderController struct {
	App *services.App
}

func NewOrderController(app *services.App) *OrderController {
	return &OrderController{App: app}
}

// CreateOrder confirms the caller's cart as a pending order.
func (oc *OrderController) CreateOrder(c *gin.Context) {
	var req struct {
		OrderType models.OrderType `json:"order_type" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	userID := c.GetString(middlewares.ContextUserID)
	customer, err := oc.App.Auth.GetUser(userID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	var order *models.Order
	err = oc.App.Sessions.WithCart(userID, func(cart *services.Cart) error {
		confirmed, err := oc.App.Orders.Confirm(cart, customer, req.OrderType)
		if err != nil {
			return err
		}
		order = confirmed
		return nil
	})
	if err != nil {
		if services.IsValidation(err) {
			oc.App.Notifications.Error(userID, err.Error())
		}
		respondServiceError(c, err)
		return
	}

	oc.App.Notifications.Success(userID, fmt.Sprintf("Order #%s confirmed!", order.ReceiptNumber))
	utils.RespondJSON(c, http.StatusCreated, "Order confirmed", order)
}

// GetOrderHistory lists the caller's own orders, newest first.
func (oc *OrderController) GetOrderHistory(c *gin.Context) {
	orders, err := oc.App.Orders.History(c.GetString(middlewares.ContextUserID))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Order history", orders)
}

// GetPendingOrders is the staff queue.
func (oc *OrderController) GetPendingOrders(c *gin.Context) {
	orders, err := oc.App.Orders.Pending()
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Pending orders", orders)
}

func (oc *OrderController) CompleteOrder(c *gin.Context) {
	order, err := oc.App.Orders.MarkCompleted(c.Param("order_id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	oc.App.Notifications.Info(c.GetString(middlewares.ContextUserID), fmt.Sprintf("Order #%s marked as completed.", order.ReceiptNumber))
	oc.App.Notifications.Info(order.CustomerID, fmt.Sprintf("Your order #%s is ready!", order.ReceiptNumber))
	utils.RespondJSON(c, http.StatusOK, "Order completed", order)
}

// DownloadReceipt streams the order's PDF receipt to its customer or to staff.
func (oc *OrderController) DownloadReceipt(c *gin.Context) {
	order, err := oc.App.Orders.Get(c.Param("order_id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	role := models.Role(c.GetString(middlewares.ContextRole))
	if role == models.RoleClient && order.CustomerID != c.GetString(middlewares.ContextUserID) {
		respondServiceError(c, errForbidden)
		return
	}

	var buf bytes.Buffer
	if err := services.RenderReceipt(order, &buf); err != nil {
		respondServiceError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=receipt-%s.pdf", order.ReceiptNumber))
	c.Data(http.StatusOK, "application/pdf", buf.Bytes())
}
