package models

// Quantity bounds enforced client-side by the stepper. Steps outside the
// range are no-ops and must not reach the network.
const (
	MinQuantity = 1
	MaxQuantity = 9
)

// CartItem is one persisted cart line: a product reference and a count.
// The server owns the persisted quantity.
type CartItem struct {
	ProductID int `json:"productId"`
	Quantity  int `json:"quantity"`
}

type Cart struct {
	ID         string     `json:"id"`
	UserID     string     `json:"userId"`
	Products   []CartItem `json:"products"`
	TotalItems int        `json:"totalItems"`
}

// CartLine is a cart item merged with its catalog record, priced for
// display. Missing marks lines whose product is no longer resolvable;
// they render with a zero price and contribute nothing to the total.
type CartLine struct {
	Product
	Quantity   int
	TotalPrice float64
	Missing    bool
}

// MergeCart joins cart items with their catalog products. Every cart item
// produces a line, resolvable or not, so the cart stays renderable after
// a product is deleted from the catalog.
func MergeCart(items []CartItem, products []Product) []CartLine {
	byID := make(map[int]Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}

	lines := make([]CartLine, 0, len(items))
	for _, item := range items {
		line := CartLine{Quantity: item.Quantity}
		if p, ok := byID[item.ProductID]; ok {
			line.Product = p
			line.TotalPrice = p.Price * float64(item.Quantity)
		} else {
			line.Product = Product{ID: item.ProductID}
			line.Missing = true
		}
		lines = append(lines, line)
	}
	return lines
}

// CartTotal sums line totals. Missing lines carry a zero TotalPrice, so
// the sum covers resolvable lines only.
func CartTotal(lines []CartLine) float64 {
	var total float64
	for _, l := range lines {
		total += l.TotalPrice
	}
	return total
}

// ClampQuantity reports the stepped quantity and whether the step is
// allowed. Steps that would leave [MinQuantity, MaxQuantity] return the
// input unchanged with ok=false.
func ClampQuantity(current, delta int) (int, bool) {
	next := current + delta
	if next < MinQuantity || next > MaxQuantity {
		return current, false
	}
	return next, true
}
