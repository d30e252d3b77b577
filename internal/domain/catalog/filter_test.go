package catalog_test

import (
	"testing"

	"app/internal/domain/catalog"
	"app/internal/domain/model"

	"github.com/stretchr/testify/assert"
)

func fixture() []model.Product {
	return []model.Product{
		{
			ID: "2", Name: "Áo Thun Bé Trai Siêu Nhân", Price: 180000, Brand: "Nhà Bơ",
			Description: "Áo thun in hình siêu nhân cho bé trai, chất liệu mềm mại.",
			Sizes:       []model.SizeStock{{Size: "1", InStock: 15}},
		},
		{
			ID: "3", Name: "Bộ Đồ Chơi Xếp Hình", Price: 250000, Brand: "Nhà Bơ",
			Description: "Bộ xếp hình thông minh giúp phát triển tư duy cho bé.",
			Sizes:       []model.SizeStock{{Size: "1", InStock: 20}},
		},
		{
			ID: "10", Name: "Bộ Xếp Hình LEGO", Price: 450000, Brand: "LEGO",
			Description: "Bộ xếp hình LEGO chính hãng.",
			Sizes:       []model.SizeStock{{Size: "1", InStock: 0}},
		},
	}
}

func names(ps []model.Product) []string {
	out := make([]string, 0, len(ps))
	for _, p := range ps {
		out = append(out, p.Name)
	}
	return out
}

func TestFilterAndSort_EmptyFilterMatchesEverything(t *testing.T) {
	got := catalog.FilterAndSort(fixture(), catalog.Filter{})
	assert.Len(t, got, 3)
}

func TestFilterAndSort_SearchMatchesDescriptionCaseInsensitive(t *testing.T) {
	got := catalog.FilterAndSort(fixture(), catalog.Filter{Search: "SIÊU NHÂN"})

	assert.Len(t, got, 1)
	assert.Equal(t, "Áo Thun Bé Trai Siêu Nhân", got[0].Name)
}

func TestFilterAndSort_BrandExactMatch(t *testing.T) {
	got := catalog.FilterAndSort(fixture(), catalog.Filter{Brand: "LEGO"})

	assert.Len(t, got, 1)
	assert.Equal(t, "10", got[0].ID)
}

func TestFilterAndSort_InStockOnlyUsesAggregateStock(t *testing.T) {
	got := catalog.FilterAndSort(fixture(), catalog.Filter{InStockOnly: true})

	assert.Len(t, got, 2)
	for _, p := range got {
		assert.True(t, catalog.IsAvailable(p))
	}
}

func TestFilterAndSort_PredicatesCombineWithAnd(t *testing.T) {
	got := catalog.FilterAndSort(fixture(), catalog.Filter{
		Search:      "xếp hình",
		Brand:       "Nhà Bơ",
		InStockOnly: true,
	})

	assert.Len(t, got, 1)
	assert.Equal(t, "Bộ Đồ Chơi Xếp Hình", got[0].Name)
}

func TestFilterAndSort_PriceLow(t *testing.T) {
	got := catalog.FilterAndSort(fixture(), catalog.Filter{Sort: catalog.SortPriceLow})

	assert.Equal(t, []string{
		"Áo Thun Bé Trai Siêu Nhân",
		"Bộ Đồ Chơi Xếp Hình",
		"Bộ Xếp Hình LEGO",
	}, names(got))
}

func TestFilterAndSort_PriceHigh(t *testing.T) {
	got := catalog.FilterAndSort(fixture(), catalog.Filter{Sort: catalog.SortPriceHigh})

	assert.Equal(t, []string{
		"Bộ Xếp Hình LEGO",
		"Bộ Đồ Chơi Xếp Hình",
		"Áo Thun Bé Trai Siêu Nhân",
	}, names(got))
}

// Default sort is by name with Vietnamese collation: Á sorts with A,
// before B.
func TestFilterAndSort_DefaultNameSortHandlesDiacritics(t *testing.T) {
	got := catalog.FilterAndSort(fixture(), catalog.Filter{})

	assert.Equal(t, "Áo Thun Bé Trai Siêu Nhân", got[0].Name)
	assert.Equal(t, "Bộ Đồ Chơi Xếp Hình", got[1].Name)
}

func TestFilterAndSort_StableOnEqualPrices(t *testing.T) {
	products := []model.Product{
		{ID: "a", Name: "A", Price: 100},
		{ID: "b", Name: "B", Price: 100},
		{ID: "c", Name: "C", Price: 100},
	}

	got := catalog.FilterAndSort(products, catalog.Filter{Sort: catalog.SortPriceLow})
	assert.Equal(t, []string{"A", "B", "C"}, names(got))
}

func TestFilterAndSort_DoesNotModifyInput(t *testing.T) {
	products := fixture()
	_ = catalog.FilterAndSort(products, catalog.Filter{Sort: catalog.SortPriceHigh})

	assert.Equal(t, "2", products[0].ID)
	assert.Equal(t, "3", products[1].ID)
	assert.Equal(t, "10", products[2].ID)
}

func TestValidSort(t *testing.T) {
	assert.True(t, catalog.ValidSort(""))
	assert.True(t, catalog.ValidSort(catalog.SortName))
	assert.True(t, catalog.ValidSort(catalog.SortPriceLow))
	assert.True(t, catalog.ValidSort(catalog.SortPriceHigh))
	assert.False(t, catalog.ValidSort("newest"))
}

func TestBrands_DistinctFirstSeenOrder(t *testing.T) {
	assert.Equal(t, []string{"Nhà Bơ", "LEGO"}, catalog.Brands(fixture()))
}
