package controllers

import (
	"net/http"

	"github.com/ShakirChaya0/IPP-Prototype/middlewares"
	"github.com/ShakirChaya0/IPP-Prototype/models"
	"github.com/ShakirChaya0/IPP-Prototype/services"
	"github.com/ShakirChaya0/IPP-Prototype/utils"
	"github.com/gin-gonic/gin"
)

type NavigationController struct {
	App *services.App
}

func NewNavigationController(app *services.App) *NavigationController {
	return &NavigationController{App: app}
}

// Navigate resolves ?page= for the caller's role. A page outside the role's
// view silently becomes the role's landing page.
func (nc *NavigationController) Navigate(c *gin.Context) {
	role := models.Role(c.GetString(middlewares.ContextRole))
	requested := models.Page(c.Query("page"))
	view := services.ViewFor(role)
	page := services.Navigate(requested, role)

	utils.RespondJSON(c, http.StatusOK, "Navigation resolved", gin.H{
		"requested":  requested,
		"page":       page,
		"redirected": page != requested,
		"pages":      view.Pages(),
	})
}

// GetCurrentNotification returns the caller's live toast, if any.
func (nc *NavigationController) GetCurrentNotification(c *gin.Context) {
	n, ok := nc.App.Notifications.Current(c.GetString(middlewares.ContextUserID))
	if !ok {
		utils.RespondJSON(c, http.StatusOK, "No notification", nil)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Current notification", n)
}

func (nc *NavigationController) DismissNotification(c *gin.Context) {
	nc.App.Notifications.Dismiss(c.GetString(middlewares.ContextUserID))
	utils.RespondJSON(c, http.StatusOK, "Notification dismissed", nil)
}
