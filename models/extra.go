package models

import "github.com/shopspring/decimal"

// Extra is an optional customization a product may allow (milk type, syrup...).
// Every extra currently costs zero.
type Extra struct {
	ID    string          `gorm:"primaryKey;type:varchar(40)" json:"id"`
	Name  string          `gorm:"type:varchar(100);not null" json:"name"`
	Price decimal.Decimal `gorm:"type:decimal(10,2);not null;default:0" json:"price"`
}

// ExtraIDs returns the identifiers of extras in the given order.
func ExtraIDs(extras []Extra) []string {
	ids := make([]string, 0, len(extras))
	for _, e := range extras {
		ids = append(ids, e.ID)
	}
	return ids
}
