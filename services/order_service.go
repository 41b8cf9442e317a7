package services

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/ShakirChaya0/IPP-Prototype/models"
	"github.com/ShakirChaya0/IPP-Prototype/utils"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

const (
	maxReceiptAttempts = 20
	DefaultRecentLimit = 20
)

type OrderService struct {
	DB       *gorm.DB
	IDs      IDGenerator
	Receipts ReceiptGenerator
	Now      func() time.Time

	mu sync.Mutex
}

func NewOrderService(db *gorm.DB, ids IDGenerator, receipts ReceiptGenerator, now func() time.Time) *OrderService {
	return &OrderService{DB: db, IDs: ids, Receipts: receipts, Now: now}
}

type OrderStats struct {
	TotalSales      decimal.Decimal `json:"total_sales"`
	TotalOrders     int             `json:"total_orders"`
	PendingOrders   int             `json:"pending_orders"`
	CompletedOrders int             `json:"completed_orders"`
}

// Confirm turns the cart into a pending order. The cart is cleared only when
// the order has been stored; on any error both are left as they were.
func (s *OrderService) Confirm(cart *Cart, customer *models.User, orderType models.OrderType) (*models.Order, error) {
	if customer == nil || cart == nil || cart.Len() == 0 {
		return nil, ErrEmptyCart
	}
	if !orderType.Valid() {
		return nil, ErrInvalidOrderType
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	lines := cart.Lines()
	now := s.Now()
	order := models.Order{
		ID:           s.IDs.NewID("o"),
		CustomerID:   customer.ID,
		CustomerName: customer.Name,
		Items:        snapshotLines(lines),
		Total:        CartTotal(lines),
		Status:       models.OrderPending,
		OrderType:    orderType,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var maxNumber int64
		if err := tx.Model(&models.Order{}).Select("COALESCE(MAX(number), 0)").Scan(&maxNumber).Error; err != nil {
			return err
		}
		order.Number = maxNumber + 1

		receipt, err := s.allocateReceipt(tx)
		if err != nil {
			return err
		}
		order.ReceiptNumber = receipt

		return tx.Create(&order).Error
	})
	if err != nil {
		return nil, fmt.Errorf("confirm order: %w", err)
	}

	cart.Clear()

	utils.InfoLogger.WithFields(logrus.Fields{
		"order_id": order.ID,
		"receipt":  order.ReceiptNumber,
		"customer": order.CustomerID,
		"total":    order.Total.StringFixed(2),
	}).Info("Order confirmed")
	return &order, nil
}

func (s *OrderService) allocateReceipt(tx *gorm.DB) (string, error) {
	for attempt := 0; attempt < maxReceiptAttempts; attempt++ {
		code := s.Receipts.NextReceipt()
		var count int64
		if err := tx.Model(&models.Order{}).Where("receipt_number = ?", code).Count(&count).Error; err != nil {
			return "", err
		}
		if count == 0 {
			return code, nil
		}
	}
	return "", ErrReceiptExhausted
}

func snapshotLines(lines []models.CartLine) []models.OrderLine {
	items := make([]models.OrderLine, 0, len(lines))
	for i, l := range lines {
		items = append(items, models.OrderLine{
			Position:        i,
			LineID:          l.ID,
			ProductID:       l.Product.ID,
			ProductName:     l.Product.Name,
			ProductCategory: l.Product.Category,
			UnitPrice:       l.Product.Price,
			Quantity:        l.Quantity,
			Extras:          append([]models.Extra{}, l.SelectedExtras...),
		})
	}
	return items
}

// MarkCompleted moves a pending order to completed. Completing an order that
// is already completed changes nothing and is not an error.
func (s *OrderService) MarkCompleted(id string) (*models.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var order *models.Order
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		o, err := getOrder(tx, id)
		if err != nil {
			return err
		}
		order = o
		if o.IsCompleted() {
			return nil
		}

		now := s.Now()
		o.Status = models.OrderCompleted
		o.CompletedAt = &now
		o.UpdatedAt = now
		return tx.Model(&models.Order{}).Where("id = ? AND status = ?", o.ID, models.OrderPending).
			Updates(map[string]interface{}{
				"status":       o.Status,
				"completed_at": now,
				"updated_at":   now,
			}).Error
	})
	if errors.Is(err, ErrOrderNotFound) {
		return nil, ErrOrderNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("complete order %s: %w", id, err)
	}

	utils.InfoLogger.WithFields(logrus.Fields{
		"order_id": order.ID,
		"receipt":  order.ReceiptNumber,
	}).Info("Order completed")
	return order, nil
}

func (s *OrderService) Get(id string) (*models.Order, error) {
	return getOrder(s.DB, id)
}

// History lists a customer's orders, newest first.
func (s *OrderService) History(customerID string) ([]models.Order, error) {
	return s.find(s.DB.Where("customer_id = ?", customerID).Order("number desc"))
}

// Pending is the staff queue, oldest first.
func (s *OrderService) Pending() ([]models.Order, error) {
	return s.find(s.DB.Where("status = ?", models.OrderPending).Order("number asc"))
}

// Recent returns up to limit orders, newest first.
func (s *OrderService) Recent(limit int) ([]models.Order, error) {
	if limit <= 0 {
		limit = DefaultRecentLimit
	}
	return s.find(s.DB.Order("number desc").Limit(limit))
}

// All returns every order in confirmation order.
func (s *OrderService) All() ([]models.Order, error) {
	return s.find(s.DB.Order("number asc"))
}

func (s *OrderService) Stats() (*OrderStats, error) {
	orders, err := s.All()
	if err != nil {
		return nil, err
	}
	stats := &OrderStats{
		TotalSales:  SalesTotal(orders),
		TotalOrders: len(orders),
	}
	for _, o := range orders {
		if o.IsCompleted() {
			stats.CompletedOrders++
		} else {
			stats.PendingOrders++
		}
	}
	return stats, nil
}

func (s *OrderService) find(query *gorm.DB) ([]models.Order, error) {
	var orders []models.Order
	if err := query.Preload("Items", orderLinesByPosition).Find(&orders).Error; err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	return orders, nil
}

func getOrder(db *gorm.DB, id string) (*models.Order, error) {
	var order models.Order
	err := db.Preload("Items", orderLinesByPosition).Where("id = ?", id).First(&order).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrOrderNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get order %s: %w", id, err)
	}
	return &order, nil
}

func orderLinesByPosition(db *gorm.DB) *gorm.DB {
	return db.Order("position asc")
}
