package controllers

import (
	"net/http"

	"github.com/ShakirChaya0/IPP-Prototype/middlewares"
	"github.com/ShakirChaya0/IPP-Prototype/services"
	"github.com/ShakirChaya0/IPP-Prototype/utils"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type MenuController struct {
	App *services.App
}

func NewMenuController(app *services.App) *MenuController {
	return &MenuController{App: app}
}

type productRequest struct {
	Name        string          `json:"name" binding:"required"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	ImageURL    string          `json:"image_url"`
	Category    string          `json:"category" binding:"required"`
	PrepTime    int             `json:"prep_time"`
	Available   *bool           `json:"available"`
	ExtraIDs    []string        `json:"extra_ids"`
}

func (r productRequest) input() services.ProductInput {
	available := true
	if r.Available != nil {
		available = *r.Available
	}
	return services.ProductInput{
		Name:        r.Name,
		Description: r.Description,
		Price:       r.Price,
		ImageURL:    r.ImageURL,
		Category:    r.Category,
		PrepTime:    r.PrepTime,
		Available:   available,
		ExtraIDs:    r.ExtraIDs,
	}
}

// GetCategories returns the menu tabs, "all" first.
func (mc *MenuController) GetCategories(c *gin.Context) {
	categories, err := mc.App.Catalog.Categories()
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Categories retrieved", append([]string{services.AllCategories}, categories...))
}

// GetProducts lists the catalog filtered by ?category= and ?search=.
func (mc *MenuController) GetProducts(c *gin.Context) {
	products, err := mc.App.Catalog.List(services.ProductFilter{
		Category: c.Query("category"),
		Search:   c.Query("search"),
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Products retrieved", products)
}

func (mc *MenuController) GetProductByID(c *gin.Context) {
	product, err := mc.App.Catalog.Get(c.Param("product_id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Product retrieved", product)
}

func (mc *MenuController) GetExtras(c *gin.Context) {
	extras, err := mc.App.Catalog.Extras()
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Extras retrieved", extras)
}

// CreateProduct adds a product at the top of the menu.
func (mc *MenuController) CreateProduct(c *gin.Context) {
	var req productRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	product, err := mc.App.Catalog.Create(req.input())
	if err != nil {
		respondServiceError(c, err)
		return
	}

	mc.App.Notifications.Success(c.GetString(middlewares.ContextUserID), "Product created successfully!")
	utils.RespondJSON(c, http.StatusCreated, "Product created", product)
}

func (mc *MenuController) UpdateProduct(c *gin.Context) {
	var req productRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	product, err := mc.App.Catalog.Update(c.Param("product_id"), req.input())
	if err != nil {
		respondServiceError(c, err)
		return
	}

	mc.App.Notifications.Success(c.GetString(middlewares.ContextUserID), "Product updated successfully!")
	utils.RespondJSON(c, http.StatusOK, "Product updated", product)
}
