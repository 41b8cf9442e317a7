package controllers

import (
	"net/http"

	"github.com/ShakirChaya0/IPP-Prototype/middlewares"
	"github.com/ShakirChaya0/IPP-Prototype/services"
	"github.com/ShakirChaya0/IPP-Prototype/utils"
	"github.com/gin-gonic/gin"
)

type UserController struct {
	App *services.App
}

func NewUserController(app *services.App) *UserController {
	return &UserController{App: app}
}

// Register creates a client account and signs it in.
func (uc *UserController) Register(c *gin.Context) {
	var req struct {
		Name     string `json:"name" binding:"required"`
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	user, err := uc.App.Auth.Register(req.Name, req.Email, req.Password)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	token, err := uc.App.Tokens.GenerateToken(user.ID, string(user.Role))
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	uc.App.Notifications.Success(user.ID, "Welcome, "+user.Name+"!")
	utils.RespondJSON(c, http.StatusCreated, "User registered", gin.H{
		"token":   token,
		"user":    user,
		"landing": services.ViewFor(user.Role).Landing(),
	})
}

// Login verifies credentials and returns a session token. Any failure gets the
// same message so callers cannot tell which emails exist.
func (uc *UserController) Login(c *gin.Context) {
	var input struct {
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	user, err := uc.App.Auth.Login(input.Email, input.Password)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	token, err := uc.App.Tokens.GenerateToken(user.ID, string(user.Role))
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	uc.App.Notifications.Success(user.ID, "Welcome back, "+user.Name+"!")
	utils.RespondJSON(c, http.StatusOK, "Login successful", gin.H{
		"token":   token,
		"user":    user,
		"landing": services.ViewFor(user.Role).Landing(),
	})
}

// Logout revokes the token and throws away the caller's cart. The revoked
// token cannot poll for notifications, so the farewell is returned inline.
func (uc *UserController) Logout(c *gin.Context) {
	userID := c.GetString(middlewares.ContextUserID)
	uc.App.Tokens.Revoke(c.GetString(middlewares.ContextToken))
	uc.App.Sessions.Drop(userID)
	farewell := uc.App.Notifications.Info(userID, "Signed out successfully.")

	utils.InfoLogger.Printf("User %s logged out", userID)
	utils.RespondJSON(c, http.StatusOK, "Logout successful", gin.H{
		"notification": farewell,
	})
}

func (uc *UserController) Profile(c *gin.Context) {
	user, err := uc.App.Auth.GetUser(c.GetString(middlewares.ContextUserID))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "User profile", user)
}
