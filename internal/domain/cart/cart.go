// Package cart implements the cart aggregation engine as pure state
// transitions. Every operation takes a cart value and returns a new
// one with the total recomputed; callers replace their stored state
// wholesale, so a single cart is never mutated in place.
//
// Lines are keyed by (productID, size). After any transition no line
// has a quantity <= 0 and Total equals the sum of UnitPrice*Quantity.
package cart

import "app/internal/domain/model"

// Snapshot is the denormalized product data copied onto a line at add
// time. It is deliberately not re-synced with later product edits.
type Snapshot struct {
	ProductID string
	Name      string
	UnitPrice int64
	Image     string
}

// Add merges qty of (snapshot, size) into the cart: an existing line
// with the same (productID, size) key has its quantity incremented,
// otherwise a new line is appended. qty <= 0 is a no-op — callers are
// expected to commit only positive selections.
func Add(c model.Cart, snap Snapshot, size string, qty int64) model.Cart {
	if qty <= 0 {
		return c
	}

	lines := make([]model.CartLine, len(c.Lines))
	copy(lines, c.Lines)

	merged := false
	for i := range lines {
		if lines[i].ProductID == snap.ProductID && lines[i].Size == size {
			lines[i].Quantity += qty
			merged = true
			break
		}
	}
	if !merged {
		lines = append(lines, model.CartLine{
			ProductID: snap.ProductID,
			Size:      size,
			Name:      snap.Name,
			UnitPrice: snap.UnitPrice,
			Image:     snap.Image,
			Quantity:  qty,
		})
	}

	return model.Cart{Lines: lines, Total: total(lines)}
}

// Remove deletes the line matching exactly (productID, size). An empty
// size removes every line of the product regardless of size. Removing
// an absent line is a no-op, so Remove is idempotent.
func Remove(c model.Cart, productID string, size string) model.Cart {
	lines := make([]model.CartLine, 0, len(c.Lines))
	for _, ln := range c.Lines {
		if ln.ProductID == productID && (size == "" || ln.Size == size) {
			continue
		}
		lines = append(lines, ln)
	}
	return model.Cart{Lines: lines, Total: total(lines)}
}

// UpdateQuantity sets the quantity of the line keyed by (productID,
// size) — the same composite key Add and Remove use. A quantity <= 0
// deletes the line instead of storing it. Updating an absent line is
// a no-op.
func UpdateQuantity(c model.Cart, productID string, size string, qty int64) model.Cart {
	if qty <= 0 {
		return Remove(c, productID, size)
	}

	lines := make([]model.CartLine, len(c.Lines))
	copy(lines, c.Lines)
	for i := range lines {
		if lines[i].ProductID == productID && lines[i].Size == size {
			lines[i].Quantity = qty
			break
		}
	}
	return model.Cart{Lines: lines, Total: total(lines)}
}

// Clear empties the cart.
func Clear(model.Cart) model.Cart {
	return model.Cart{Lines: []model.CartLine{}, Total: 0}
}

// Group is the aggregated view of all lines sharing a product name:
// the size rows of one product rendered together with their summed
// quantity and subtotal.
type Group struct {
	Name     string           `json:"name"`
	Lines    []model.CartLine `json:"items"`
	Quantity int64            `json:"quantity"`
	Subtotal int64            `json:"subtotal"`
}

// GroupByName partitions the current lines by display name, keeping
// first-seen order. Purely derived; recomputed on every call.
func GroupByName(c model.Cart) []Group {
	index := make(map[string]int)
	groups := make([]Group, 0)
	for _, ln := range c.Lines {
		i, ok := index[ln.Name]
		if !ok {
			i = len(groups)
			index[ln.Name] = i
			groups = append(groups, Group{Name: ln.Name})
		}
		groups[i].Lines = append(groups[i].Lines, ln)
		groups[i].Quantity += ln.Quantity
		groups[i].Subtotal += ln.UnitPrice * ln.Quantity
	}
	return groups
}

// Quantity returns the current quantity of the (productID, size) line,
// or 0 when the line is absent.
func Quantity(c model.Cart, productID string, size string) int64 {
	for _, ln := range c.Lines {
		if ln.ProductID == productID && ln.Size == size {
			return ln.Quantity
		}
	}
	return 0
}

func total(lines []model.CartLine) int64 {
	var sum int64
	for _, ln := range lines {
		sum += ln.UnitPrice * ln.Quantity
	}
	return sum
}
