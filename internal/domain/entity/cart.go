package entity

import "github.com/shopspring/decimal"

// CartItem is one line of the cart. Quantity is always at least 1.
type CartItem struct {
	Product  Product `json:"product"`
	Quantity int     `json:"quantity"`
}

// Subtotal returns price × quantity for the line.
func (i CartItem) Subtotal() decimal.Decimal {
	return i.Product.Price.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// Cart is the ordered list of lines, at most one line per product.
// There is no server-side cart: it is turned into an order payload at checkout.
type Cart struct {
	Items []CartItem `json:"items"`
}

// Total returns Σ price × quantity over all lines.
func (c Cart) Total() decimal.Decimal {
	total := decimal.Zero
	for _, item := range c.Items {
		total = total.Add(item.Subtotal())
	}

	return total
}

// ItemCount returns the number of units in the cart.
func (c Cart) ItemCount() int {
	count := 0
	for _, item := range c.Items {
		count += item.Quantity
	}

	return count
}

// IsEmpty reports whether the cart has no lines.
func (c Cart) IsEmpty() bool {
	return len(c.Items) == 0
}

// OrderLines projects the cart onto order lines, keeping cart order.
func (c Cart) OrderLines() []OrderLine {
	lines := make([]OrderLine, 0, len(c.Items))
	for _, item := range c.Items {
		lines = append(lines, OrderLine{ProductID: item.Product.ID, Quantity: item.Quantity})
	}

	return lines
}

// Without returns the cart minus the quantities of lines. Lines that drop to
// zero are removed; units added on top of them stay.
func (c Cart) Without(lines []OrderLine) Cart {
	ordered := make(map[int64]int, len(lines))
	for _, line := range lines {
		ordered[line.ProductID] += line.Quantity
	}

	rest := Cart{Items: make([]CartItem, 0, len(c.Items))}
	for _, item := range c.Items {
		item.Quantity -= ordered[item.Product.ID]
		if item.Quantity > 0 {
			rest.Items = append(rest.Items, item)
		}
	}

	return rest
}
