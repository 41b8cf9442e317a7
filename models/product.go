package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type Product struct {
	ID            string          `gorm:"primaryKey;type:varchar(40)" json:"id"`
	Name          string          `gorm:"type:varchar(255);not null" json:"name"`
	Description   string          `gorm:"type:text" json:"description"`
	Price         decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"price"`
	ImageURL      string          `gorm:"type:varchar(255)" json:"image_url"`
	Category      string          `gorm:"type:varchar(100);index;not null" json:"category"`
	PrepTime      int             `gorm:"not null" json:"prep_time"`
	Available     bool            `gorm:"not null" json:"available"`
	AllowedExtras []Extra         `gorm:"many2many:product_extras;" json:"allowed_extras"`
	Position      int64           `gorm:"index;not null" json:"-"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// AllowsExtra reports whether the extra id is in the product's allowed list.
func (p *Product) AllowsExtra(id string) bool {
	for _, e := range p.AllowedExtras {
		if e.ID == id {
			return true
		}
	}
	return false
}

// Clone returns a deep copy so later catalog edits cannot leak into it.
func (p Product) Clone() Product {
	p.AllowedExtras = append([]Extra(nil), p.AllowedExtras...)
	return p
}
