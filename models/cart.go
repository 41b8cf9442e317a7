package models

// CartLine is one grouped entry of a customer's cart. Lines live only in
// memory and are never persisted.
type CartLine struct {
	ID             string  `json:"id"`
	Product        Product `json:"product"`
	Quantity       int     `json:"quantity"`
	SelectedExtras []Extra `json:"selected_extras"`
}

func (l CartLine) Clone() CartLine {
	l.Product = l.Product.Clone()
	l.SelectedExtras = append([]Extra(nil), l.SelectedExtras...)
	return l
}
