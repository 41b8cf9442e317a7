package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type OrderStatus string

const (
	OrderPending   OrderStatus = "pending"
	OrderCompleted OrderStatus = "completed"
)

type OrderType string

const (
	OrderDineIn   OrderType = "dine-in"
	OrderTakeaway OrderType = "takeaway"
)

func (t OrderType) Valid() bool {
	return t == OrderDineIn || t == OrderTakeaway
}

type Order struct {
	ID            string          `gorm:"primaryKey;type:varchar(40)" json:"id"`
	Number        int64           `gorm:"uniqueIndex;not null" json:"number"`
	CustomerID    string          `gorm:"type:varchar(40);index;not null" json:"customer_id"`
	CustomerName  string          `gorm:"type:varchar(255);not null" json:"customer_name"`
	Items         []OrderLine     `gorm:"foreignKey:OrderID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"items"`
	Total         decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"total"`
	Status        OrderStatus     `gorm:"type:varchar(20);index;not null;default:'pending'" json:"status"`
	OrderType     OrderType       `gorm:"type:varchar(20);not null" json:"order_type"`
	ReceiptNumber string          `gorm:"type:varchar(20);uniqueIndex;not null" json:"receipt_number"`
	CreatedAt     time.Time       `gorm:"not null" json:"created_at"`
	UpdatedAt     time.Time       `gorm:"not null" json:"updated_at"`
	CompletedAt   *time.Time      `json:"completed_at,omitempty"`
}

// OrderLine is the frozen copy of a cart line taken at confirmation time.
type OrderLine struct {
	ID              uint            `gorm:"primaryKey" json:"-"`
	OrderID         string          `gorm:"type:varchar(40);index;not null" json:"-"`
	Position        int             `gorm:"not null" json:"-"`
	LineID          string          `gorm:"type:varchar(40);not null" json:"id"`
	ProductID       string          `gorm:"type:varchar(40);not null" json:"product_id"`
	ProductName     string          `gorm:"type:varchar(255);not null" json:"product_name"`
	ProductCategory string          `gorm:"type:varchar(100)" json:"product_category"`
	UnitPrice       decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"unit_price"`
	Quantity        int             `gorm:"not null" json:"quantity"`
	Extras          []Extra         `gorm:"serializer:json;type:text" json:"extras"`
}

func (o *Order) IsCompleted() bool {
	return o.Status == OrderCompleted
}
