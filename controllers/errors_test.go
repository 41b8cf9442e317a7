package controllers

import (
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ShakirChaya0/IPP-Prototype/services"
	"github.com/ShakirChaya0/IPP-Prototype/utils"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func captureErrorLog(t *testing.T) *bytes.Buffer {
	t.Helper()
	utils.InitLogger("info")
	var buf bytes.Buffer
	utils.ErrorLogger.SetOutput(&buf)
	t.Cleanup(utils.SilenceLoggers)
	return &buf
}

func serviceErrorRecorder(err error) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/orders/history", nil)
	respondServiceError(c, err)
	return w
}

func TestRespondServiceErrorLogsInternalErrors(t *testing.T) {
	logs := captureErrorLog(t)

	w := serviceErrorRecorder(errors.New("database is locked"))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, logs.String(), "database is locked")
	assert.Contains(t, logs.String(), "level=error")
}

func TestRespondServiceErrorSkipsClientErrors(t *testing.T) {
	logs := captureErrorLog(t)

	w := serviceErrorRecorder(services.ErrOrderNotFound)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Empty(t, logs.String())
}
