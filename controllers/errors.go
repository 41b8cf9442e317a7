package controllers

import (
	"errors"
	"net/http"

	"github.com/ShakirChaya0/IPP-Prototype/services"
	"github.com/ShakirChaya0/IPP-Prototype/utils"
	"github.com/gin-gonic/gin"
)

var errForbidden = errors.New("you are not allowed to access this resource")

// statusFor maps service errors onto HTTP status codes.
func statusFor(err error) int {
	switch {
	case services.IsValidation(err):
		return http.StatusBadRequest
	case errors.Is(err, services.ErrInvalidCredentials):
		return http.StatusUnauthorized
	case errors.Is(err, errForbidden):
		return http.StatusForbidden
	case errors.Is(err, services.ErrOrderNotFound),
		errors.Is(err, services.ErrProductNotFound),
		errors.Is(err, services.ErrLineNotFound),
		errors.Is(err, services.ErrUserNotFound),
		errors.Is(err, services.ErrNoSalesData):
		return http.StatusNotFound
	case errors.Is(err, services.ErrEmailTaken):
		return http.StatusConflict
	}
	return http.StatusInternalServerError
}

func respondServiceError(c *gin.Context, err error) {
	code := statusFor(err)
	if code == http.StatusInternalServerError {
		utils.ErrorLogger.Errorf("%s %s: %v", c.Request.Method, c.FullPath(), err)
	}
	utils.RespondError(c, code, err)
}
