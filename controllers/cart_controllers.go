package controllers

import (
	"fmt"
	"net/http"

	"github.com/ShakirChaya0/IPP-Prototype/middlewares"
	"github.com/ShakirChaya0/IPP-Prototype/models"
	"github.com/ShakirChaya0/IPP-Prototype/services"
	"github.com/ShakirChaya0/IPP-Prototype/utils"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type CartController struct {
	App *services.App
}

func NewCartController(app *services.App) *CartController {
	return &CartController{App: app}
}

type cartLineView struct {
	models.CartLine
	LineTotal decimal.Decimal `json:"line_total"`
}

type cartView struct {
	Items          []cartLineView  `json:"items"`
	ItemCount      int             `json:"item_count"`
	Total          decimal.Decimal `json:"total"`
	TotalFormatted string          `json:"total_formatted"`
}

func newCartView(cart *services.Cart) cartView {
	lines := cart.Lines()
	view := cartView{
		Items:          make([]cartLineView, 0, len(lines)),
		ItemCount:      cart.ItemCount(),
		Total:          cart.Total(),
		TotalFormatted: utils.FormatCurrency(cart.Total()),
	}
	for _, l := range lines {
		view.Items = append(view.Items, cartLineView{CartLine: l, LineTotal: services.LineTotal(l)})
	}
	return view
}

func (cc *CartController) GetCart(c *gin.Context) {
	var view cartView
	err := cc.App.Sessions.WithCart(c.GetString(middlewares.ContextUserID), func(cart *services.Cart) error {
		view = newCartView(cart)
		return nil
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Cart retrieved", view)
}

// AddItem puts a product with its chosen extras into the cart.
func (cc *CartController) AddItem(c *gin.Context) {
	var req struct {
		ProductID string   `json:"product_id" binding:"required"`
		Quantity  *int     `json:"quantity" binding:"omitempty,max=999"`
		ExtraIDs  []string `json:"extra_ids"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}
	quantity := 1
	if req.Quantity != nil {
		quantity = *req.Quantity
	}

	userID := c.GetString(middlewares.ContextUserID)
	product, err := cc.App.Catalog.Get(req.ProductID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	if !product.Available {
		cc.App.Notifications.Error(userID, fmt.Sprintf("%s is not available right now.", product.Name))
		respondServiceError(c, services.ErrProductUnavailable)
		return
	}
	extras, err := services.SelectExtras(*product, req.ExtraIDs)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	var (
		line models.CartLine
		view cartView
	)
	err = cc.App.Sessions.WithCart(userID, func(cart *services.Cart) error {
		added, err := cart.Add(*product, quantity, extras)
		if err != nil {
			return err
		}
		line = added
		view = newCartView(cart)
		return nil
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}

	cc.App.Notifications.Success(userID, fmt.Sprintf("%dx %s added to cart.", quantity, product.Name))
	utils.RespondJSON(c, http.StatusCreated, "Item added to cart", gin.H{
		"line": cartLineView{CartLine: line, LineTotal: services.LineTotal(line)},
		"cart": view,
	})
}

// UpdateItem sets a line's quantity; zero or less removes it.
func (cc *CartController) UpdateItem(c *gin.Context) {
	var req struct {
		Quantity *int `json:"quantity" binding:"required,max=999"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	var view cartView
	err := cc.App.Sessions.WithCart(c.GetString(middlewares.ContextUserID), func(cart *services.Cart) error {
		if !cart.UpdateQuantity(c.Param("line_id"), *req.Quantity) {
			return services.ErrLineNotFound
		}
		view = newCartView(cart)
		return nil
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Cart updated", view)
}

func (cc *CartController) RemoveItem(c *gin.Context) {
	var view cartView
	err := cc.App.Sessions.WithCart(c.GetString(middlewares.ContextUserID), func(cart *services.Cart) error {
		if !cart.Remove(c.Param("line_id")) {
			return services.ErrLineNotFound
		}
		view = newCartView(cart)
		return nil
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Item removed from cart", view)
}
