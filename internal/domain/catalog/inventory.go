package catalog

import "app/internal/domain/model"

// TotalStock sums the per-size stock of a product. A product without
// size entries has nothing to sell, so it counts as zero.
func TotalStock(p model.Product) int64 {
	var total int64
	for _, s := range p.Sizes {
		if s.InStock > 0 {
			total += s.InStock
		}
	}
	return total
}

// IsAvailable reports coarse-grained availability for listing badges.
func IsAvailable(p model.Product) bool {
	return TotalStock(p) > 0
}

// FindSize returns the stock entry for one size of the product.
func FindSize(p model.Product, size string) (model.SizeStock, bool) {
	for _, s := range p.Sizes {
		if s.Size == size {
			return s, true
		}
	}
	return model.SizeStock{}, false
}

// QuantityOptions enumerates the selectable quantities for one size:
// 0 up to and including its own stock. Selecting from this range is
// what caps a request at per-size availability.
func QuantityOptions(s model.SizeStock) []int64 {
	if s.InStock < 0 {
		return []int64{0}
	}
	opts := make([]int64, 0, s.InStock+1)
	for i := int64(0); i <= s.InStock; i++ {
		opts = append(opts, i)
	}
	return opts
}
