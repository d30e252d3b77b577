package pricing_test

import (
	"testing"

	"app/internal/domain/pricing"

	"github.com/stretchr/testify/assert"
)

func TestOriginalPrice_DerivesPreDiscountPrice(t *testing.T) {
	// 350000 at 15% off was floor(350000 / 0.85) = 411764
	got, ok := pricing.OriginalPrice(350000, 15)
	assert.True(t, ok)
	assert.Equal(t, int64(411764), got)
}

func TestOriginalPrice_FloorsTowardZero(t *testing.T) {
	got, ok := pricing.OriginalPrice(100, 30)
	assert.True(t, ok)
	assert.Equal(t, int64(142), got) // 10000/70 = 142.857...
}

func TestOriginalPrice_NoDiscountNoOriginal(t *testing.T) {
	_, ok := pricing.OriginalPrice(350000, 0)
	assert.False(t, ok)
}

func TestOriginalPrice_RejectsOutOfRangePercent(t *testing.T) {
	_, ok := pricing.OriginalPrice(350000, 100)
	assert.False(t, ok)

	_, ok = pricing.OriginalPrice(350000, -5)
	assert.False(t, ok)

	_, ok = pricing.OriginalPrice(-1, 15)
	assert.False(t, ok)
}

func TestFormatPrice_VietnameseGrouping(t *testing.T) {
	assert.Equal(t, "350.000 ₫", pricing.FormatPrice(350000))
	assert.Equal(t, "0 ₫", pricing.FormatPrice(0))
}
