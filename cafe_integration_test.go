package main

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/ShakirChaya0/IPP-Prototype/config"
	"github.com/ShakirChaya0/IPP-Prototype/database"
	"github.com/ShakirChaya0/IPP-Prototype/router"
	"github.com/ShakirChaya0/IPP-Prototype/services"
	"github.com/ShakirChaya0/IPP-Prototype/utils"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	utils.SilenceLoggers()
	os.Exit(m.Run())
}

// TestEndToEndIntegration walks the main flow:
// 1. client logs in, fills the cart and confirms an order
// 2. staff sees it in the queue and completes it
// 3. admin sees the sale on the dashboard
// 4. client logs out and the token stops working
func TestEndToEndIntegration(t *testing.T) {
	r, app := setupTestRouter(t)

	clientToken := loginTest(t, r, "client@mail.com")
	staffToken := loginTest(t, r, "staff@mail.com")
	adminToken := loginTest(t, r, "admin@mail.com")

	orderID := createOrderTest(t, r, clientToken)
	completeOrderTest(t, r, orderID, staffToken)
	dashboardTest(t, r, adminToken)

	w := perform(t, r, http.MethodPost, "/logout", clientToken, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 0, app.Sessions.Active())
	w = perform(t, r, http.MethodGet, "/orders/history", clientToken, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func setupTestRouter(t *testing.T) (*gin.Engine, *services.App) {
	env := map[string]string{
		"DATABASE_DSN":          database.InMemoryDSN("integration"),
		"JWT_SECRET":            "integration-secret",
		"LOGIN_RATE_PER_MINUTE": "100",
		"REQUEST_RATE":          "1000",
	}
	cfg, err := config.FromEnv(func(key string) string { return env[key] })
	require.NoError(t, err)

	db, err := config.InitDB(cfg)
	require.NoError(t, err)
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})

	app := services.NewApp(db, services.Options{
		Receipts:        services.NewSequenceReceipts(42),
		JWTSecret:       cfg.JWTSecret,
		TokenTTL:        cfg.TokenTTL,
		NotificationTTL: cfg.NotificationTTL,
	})
	return router.SetupRouter(cfg, app), app
}

func perform(t *testing.T, r http.Handler, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var payload bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&payload).Encode(body))
	}
	req, err := http.NewRequest(method, path, &payload)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeData(t *testing.T, w *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	var resp utils.JSONResponse
	resp.Data = out
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
}

func loginTest(t *testing.T, r http.Handler, email string) string {
	w := perform(t, r, http.MethodPost, "/login", "", gin.H{"email": email, "password": "123"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var data struct {
		Token string `json:"token"`
	}
	decodeData(t, w, &data)
	require.NotEmpty(t, data.Token)
	return data.Token
}

func createOrderTest(t *testing.T, r http.Handler, token string) string {
	w := perform(t, r, http.MethodPost, "/cart/items", token, gin.H{"product_id": "p2", "extra_ids": []string{"e1"}})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	w = perform(t, r, http.MethodPost, "/cart/items", token, gin.H{"product_id": "p3", "quantity": 2})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = perform(t, r, http.MethodPost, "/orders", token, gin.H{"order_type": "takeaway"})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var order struct {
		ID            string `json:"id"`
		Total         string `json:"total"`
		Status        string `json:"status"`
		ReceiptNumber string `json:"receipt_number"`
	}
	decodeData(t, w, &order)
	assert.Equal(t, "7.5", order.Total)
	assert.Equal(t, "pending", order.Status)
	assert.Equal(t, "000042", order.ReceiptNumber)
	return order.ID
}

func completeOrderTest(t *testing.T, r http.Handler, orderID, token string) {
	var queue []struct {
		ID string `json:"id"`
	}
	w := perform(t, r, http.MethodGet, "/staff/orders", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	decodeData(t, w, &queue)
	require.Len(t, queue, 1)
	assert.Equal(t, orderID, queue[0].ID)

	w = perform(t, r, http.MethodPost, "/staff/orders/"+orderID+"/complete", token, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var order struct {
		Status string `json:"status"`
	}
	decodeData(t, w, &order)
	assert.Equal(t, "completed", order.Status)
}

func dashboardTest(t *testing.T, r http.Handler, token string) {
	w := perform(t, r, http.MethodGet, "/admin/dashboard", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var data struct {
		TotalSalesFormatted string `json:"total_sales_formatted"`
		Stats               struct {
			CompletedOrders int `json:"completed_orders"`
		} `json:"stats"`
	}
	decodeData(t, w, &data)
	assert.Equal(t, "$7.50", data.TotalSalesFormatted)
	assert.Equal(t, 1, data.Stats.CompletedOrders)
}
