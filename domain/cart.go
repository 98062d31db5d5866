package domain

import "github.com/samber/lo"

// CartLine holds a chosen product and how many of it. Quantity is
// always >= 1: a line that would drop to zero is removed, never stored.
type CartLine struct {
	Product  Product `json:"product"`
	Quantity int     `json:"quantity"`
}

// Cart is the ordered sequence of lines awaiting checkout, at most one
// line per product ID. Totals are derived on every read and never cached.
type Cart struct {
	Lines []CartLine `json:"lines"`
}

func (c Cart) Total() int64 {
	return lo.SumBy(c.Lines, func(l CartLine) int64 {
		return l.Product.Price * int64(l.Quantity)
	})
}

func (c Cart) ItemCount() int {
	return lo.SumBy(c.Lines, func(l CartLine) int {
		return l.Quantity
	})
}

func (c Cart) IsEmpty() bool {
	return len(c.Lines) == 0
}

// Line returns the line for a product ID, if any.
func (c Cart) Line(productID string) (CartLine, bool) {
	return lo.Find(c.Lines, func(l CartLine) bool {
		return l.Product.ID == productID
	})
}
