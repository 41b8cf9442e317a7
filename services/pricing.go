package services

import (
	"github.com/ShakirChaya0/IPP-Prototype/models"
	"github.com/shopspring/decimal"
)

// UnitTotal is the price of one unit with its extras.
func UnitTotal(price decimal.Decimal, extras []models.Extra) decimal.Decimal {
	total := price
	for _, e := range extras {
		total = total.Add(e.Price)
	}
	return total
}

func LineTotal(line models.CartLine) decimal.Decimal {
	return UnitTotal(line.Product.Price, line.SelectedExtras).Mul(decimal.NewFromInt(int64(line.Quantity)))
}

func CartTotal(lines []models.CartLine) decimal.Decimal {
	total := decimal.Zero
	for _, l := range lines {
		total = total.Add(LineTotal(l))
	}
	return total
}

func OrderLineTotal(line models.OrderLine) decimal.Decimal {
	return UnitTotal(line.UnitPrice, line.Extras).Mul(decimal.NewFromInt(int64(line.Quantity)))
}

// SalesTotal sums the recorded totals of orders regardless of status.
func SalesTotal(orders []models.Order) decimal.Decimal {
	total := decimal.Zero
	for _, o := range orders {
		total = total.Add(o.Total)
	}
	return total
}

type CategorySales struct {
	Category string          `json:"category"`
	Total    decimal.Decimal `json:"total"`
}

// SalesByCategory groups order line totals by the category captured in the
// snapshot, in order of first appearance.
func SalesByCategory(orders []models.Order) []CategorySales {
	var out []CategorySales
	index := make(map[string]int)
	for _, o := range orders {
		for _, line := range o.Items {
			category := line.ProductCategory
			if category == "" {
				category = "Other"
			}
			i, ok := index[category]
			if !ok {
				i = len(out)
				index[category] = i
				out = append(out, CategorySales{Category: category, Total: decimal.Zero})
			}
			out[i].Total = out[i].Total.Add(OrderLineTotal(line))
		}
	}
	return out
}
