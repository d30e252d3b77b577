// Package pricing computes display prices for discounted products.
//
// The stored product price is already the sale price; the pre-discount
// price is derived from it when a discount tag has to be rendered.
package pricing

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// OriginalPrice derives the pre-discount price from the stored sale
// price: floor(price / (1 - percent/100)), computed in integer
// arithmetic. ok is false when no discount applies (percent is zero,
// out of range, or the price is negative) — callers then render the
// sale price alone, without a strikethrough original.
func OriginalPrice(price int64, discountPercent int64) (int64, bool) {
	if price < 0 || discountPercent <= 0 || discountPercent >= 100 {
		return 0, false
	}
	return price * 100 / (100 - discountPercent), true
}

var vi = message.NewPrinter(language.Vietnamese)

// FormatPrice renders an amount in đồng for display, with Vietnamese
// thousands separators. Presentation only; stored and compared values
// stay plain integers.
func FormatPrice(price int64) string {
	return vi.Sprintf("%v ₫", number.Decimal(price))
}
