package controllers_test

import (
	"bytes"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type orderJSON struct {
	ID            string `json:"id"`
	Number        int64  `json:"number"`
	CustomerID    string `json:"customer_id"`
	Total         string `json:"total"`
	Status        string `json:"status"`
	OrderType     string `json:"order_type"`
	ReceiptNumber string `json:"receipt_number"`
	Items         []struct {
		ProductName string `json:"product_name"`
		Quantity    int    `json:"quantity"`
	} `json:"items"`
}

// placeScenarioOrder buys a Latte with almond milk and two croissants.
func placeScenarioOrder(s *testServer, token string) orderJSON {
	s.t.Helper()
	s.decode(s.do(http.MethodPost, "/cart/items", token, gin.H{"product_id": "p2", "extra_ids": []string{"e1"}}), http.StatusCreated, nil)
	s.decode(s.do(http.MethodPost, "/cart/items", token, gin.H{"product_id": "p3", "quantity": 2}), http.StatusCreated, nil)

	var order orderJSON
	s.decode(s.do(http.MethodPost, "/orders", token, gin.H{"order_type": "dine-in"}), http.StatusCreated, &order)
	return order
}

func TestConfirmOrder(t *testing.T) {
	s := setupTestServer(t)
	token := s.login("client@mail.com")

	order := placeScenarioOrder(s, token)
	assert.Equal(t, "7.5", order.Total)
	assert.Equal(t, "pending", order.Status)
	assert.Equal(t, "dine-in", order.OrderType)
	assert.Equal(t, "000001", order.ReceiptNumber)
	assert.Equal(t, "u1", order.CustomerID)
	require.Len(t, order.Items, 2)
	assert.Equal(t, "Order #000001 confirmed!", s.currentNotification(token))

	var cart cartJSON
	s.decode(s.do(http.MethodGet, "/cart", token, nil), http.StatusOK, &cart)
	assert.Empty(t, cart.Items)

	var history []orderJSON
	s.decode(s.do(http.MethodGet, "/orders/history", token, nil), http.StatusOK, &history)
	require.Len(t, history, 1)
	assert.Equal(t, order.ID, history[0].ID)
}

func TestConfirmEmptyCart(t *testing.T) {
	s := setupTestServer(t)
	token := s.login("client@mail.com")

	env := s.decode(s.do(http.MethodPost, "/orders", token, gin.H{"order_type": "takeaway"}), http.StatusBadRequest, nil)
	assert.Equal(t, "your cart is empty", env.Message)
	assert.Equal(t, "your cart is empty", s.currentNotification(token))

	var history []orderJSON
	s.decode(s.do(http.MethodGet, "/orders/history", token, nil), http.StatusOK, &history)
	assert.Empty(t, history)
}

func TestConfirmInvalidOrderTypeKeepsCart(t *testing.T) {
	s := setupTestServer(t)
	token := s.login("client@mail.com")
	s.decode(s.do(http.MethodPost, "/cart/items", token, gin.H{"product_id": "p1"}), http.StatusCreated, nil)

	assert.Equal(t, http.StatusBadRequest, s.do(http.MethodPost, "/orders", token, gin.H{"order_type": "delivery"}).Code)

	var cart cartJSON
	s.decode(s.do(http.MethodGet, "/cart", token, nil), http.StatusOK, &cart)
	assert.Len(t, cart.Items, 1)
}

func TestStaffCompletesOrders(t *testing.T) {
	s := setupTestServer(t)
	client := s.login("client@mail.com")
	staff := s.login("staff@mail.com")
	order := placeScenarioOrder(s, client)

	var queue []orderJSON
	s.decode(s.do(http.MethodGet, "/staff/orders", staff, nil), http.StatusOK, &queue)
	require.Len(t, queue, 1)
	assert.Equal(t, order.ID, queue[0].ID)

	var completed orderJSON
	s.decode(s.do(http.MethodPost, "/staff/orders/"+order.ID+"/complete", staff, nil), http.StatusOK, &completed)
	assert.Equal(t, "completed", completed.Status)
	assert.Equal(t, "Order #000001 marked as completed.", s.currentNotification(staff))
	assert.Equal(t, "Your order #000001 is ready!", s.currentNotification(client))

	s.decode(s.do(http.MethodPost, "/staff/orders/"+order.ID+"/complete", staff, nil), http.StatusOK, &completed)
	assert.Equal(t, "completed", completed.Status)

	s.decode(s.do(http.MethodGet, "/staff/orders", staff, nil), http.StatusOK, &queue)
	assert.Empty(t, queue)

	assert.Equal(t, http.StatusNotFound, s.do(http.MethodPost, "/staff/orders/missing/complete", staff, nil).Code)
	assert.Equal(t, http.StatusForbidden, s.do(http.MethodPost, "/staff/orders/"+order.ID+"/complete", client, nil).Code)
	assert.Equal(t, http.StatusForbidden, s.do(http.MethodGet, "/staff/orders", s.login("admin@mail.com"), nil).Code)
}

func TestDownloadReceipt(t *testing.T) {
	s := setupTestServer(t)
	client := s.login("client@mail.com")
	order := placeScenarioOrder(s, client)

	w := s.do(http.MethodGet, "/orders/"+order.ID+"/receipt", client, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/pdf", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Header().Get("Content-Disposition"), "receipt-000001.pdf")
	assert.True(t, bytes.HasPrefix(w.Body.Bytes(), []byte("%PDF")))

	assert.Equal(t, http.StatusOK, s.do(http.MethodGet, "/orders/"+order.ID+"/receipt", s.login("staff@mail.com"), nil).Code)
	assert.Equal(t, http.StatusOK, s.do(http.MethodGet, "/orders/"+order.ID+"/receipt", s.login("admin@mail.com"), nil).Code)

	s.decode(s.do(http.MethodPost, "/register", "", gin.H{"name": "Other", "email": "other@mail.com", "password": "pw"}), http.StatusCreated, nil)
	var data struct {
		Token string `json:"token"`
	}
	s.decode(s.do(http.MethodPost, "/login", "", gin.H{"email": "other@mail.com", "password": "pw"}), http.StatusOK, &data)
	assert.Equal(t, http.StatusForbidden, s.do(http.MethodGet, "/orders/"+order.ID+"/receipt", data.Token, nil).Code)

	assert.Equal(t, http.StatusNotFound, s.do(http.MethodGet, "/orders/missing/receipt", client, nil).Code)
}
