package services

import (
	"fmt"
	"math"
	"slices"

	"github.com/ShakirChaya0/IPP-Prototype/models"
	"github.com/shopspring/decimal"
)

// Cart aggregates a customer's selections. Additions of the same product with
// the same set of extras are merged into one line.
type Cart struct {
	ids   IDGenerator
	lines []models.CartLine
}

func NewCart(ids IDGenerator) *Cart {
	return &Cart{ids: ids}
}

// Add merges into an existing line or appends a new one and returns the
// resulting line. Extras are not checked against the product here; see
// SelectExtras.
func (c *Cart) Add(product models.Product, quantity int, extras []models.Extra) (models.CartLine, error) {
	if quantity < 1 {
		return models.CartLine{}, ErrInvalidQuantity
	}

	key := extraKey(extras)
	for i := range c.lines {
		line := &c.lines[i]
		if line.Product.ID == product.ID && slices.Equal(extraKey(line.SelectedExtras), key) {
			if quantity > math.MaxInt-line.Quantity {
				return models.CartLine{}, ErrInvalidQuantity
			}
			line.Quantity += quantity
			return line.Clone(), nil
		}
	}

	line := models.CartLine{
		ID:             c.ids.NewID("c"),
		Product:        product.Clone(),
		Quantity:       quantity,
		SelectedExtras: append([]models.Extra(nil), extras...),
	}
	c.lines = append(c.lines, line)
	return line.Clone(), nil
}

// UpdateQuantity sets a line's quantity; anything below 1 removes the line.
// It reports whether the line existed.
func (c *Cart) UpdateQuantity(lineID string, quantity int) bool {
	if quantity < 1 {
		return c.Remove(lineID)
	}
	for i := range c.lines {
		if c.lines[i].ID == lineID {
			c.lines[i].Quantity = quantity
			return true
		}
	}
	return false
}

// Remove deletes a line. Unknown ids are ignored.
func (c *Cart) Remove(lineID string) bool {
	for i := range c.lines {
		if c.lines[i].ID == lineID {
			c.lines = slices.Delete(c.lines, i, i+1)
			return true
		}
	}
	return false
}

func (c *Cart) Line(lineID string) (models.CartLine, bool) {
	for _, l := range c.lines {
		if l.ID == lineID {
			return l.Clone(), true
		}
	}
	return models.CartLine{}, false
}

// Lines returns a deep copy of the cart contents.
func (c *Cart) Lines() []models.CartLine {
	out := make([]models.CartLine, 0, len(c.lines))
	for _, l := range c.lines {
		out = append(out, l.Clone())
	}
	return out
}

func (c *Cart) Len() int {
	return len(c.lines)
}

// ItemCount is the number of units across all lines.
func (c *Cart) ItemCount() int {
	n := 0
	for _, l := range c.lines {
		n += l.Quantity
	}
	return n
}

func (c *Cart) Total() decimal.Decimal {
	return CartTotal(c.lines)
}

func (c *Cart) Clear() {
	c.lines = nil
}

func extraKey(extras []models.Extra) []string {
	ids := models.ExtraIDs(extras)
	slices.Sort(ids)
	return slices.Compact(ids)
}

// SelectExtras resolves requested extra ids against what the product allows.
// Duplicates are collapsed; order follows the product's allowed list.
func SelectExtras(product models.Product, ids []string) ([]models.Extra, error) {
	wanted := make(map[string]bool, len(ids))
	for _, id := range ids {
		if !product.AllowsExtra(id) {
			return nil, fmt.Errorf("%w: %s", ErrExtraNotAllowed, id)
		}
		wanted[id] = true
	}

	selected := make([]models.Extra, 0, len(wanted))
	for _, e := range product.AllowedExtras {
		if wanted[e.ID] {
			selected = append(selected, e)
		}
	}
	return selected, nil
}
