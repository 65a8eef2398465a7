package model

import (
	"testing"

	"github.com/muhammadheryan/sanitary-shop/constant"
	"github.com/stretchr/testify/assert"
)

func ids(c Catalog) []string {
	out := make([]string, len(c))
	for i, p := range c {
		out[i] = p.ID
	}
	return out
}

func TestCatalog_Filter(t *testing.T) {
	catalog := Catalog{
		{ID: "a", Name: "Bồn cầu", Code: "BC-1", Price: 300, Category: constant.CategoryToilet},
		{ID: "b", Name: "Lavabo", Code: "LV-1", Price: 100, Category: constant.CategoryLavabo, IsPopular: true},
		{ID: "c", Name: "Vòi sen", Code: "SC-1", Price: 200, Category: constant.CategoryShower},
		{ID: "d", Name: "Bồn cầu thông minh", Code: "BC-2", Price: 900, Category: constant.CategoryToilet, IsPopular: true},
	}

	tests := []struct {
		name   string
		filter ProductFilter
		want   []string
	}{
		{name: "default puts popular first keeping order", filter: ProductFilter{}, want: []string{"b", "d", "a", "c"}},
		{name: "search name case-insensitive", filter: ProductFilter{Search: "BỒN CẦU"}, want: []string{"d", "a"}},
		{name: "search code", filter: ProductFilter{Search: "sc-"}, want: []string{"c"}},
		{name: "category", filter: ProductFilter{Category: constant.CategoryToilet, Sort: constant.SortPriceAsc}, want: []string{"a", "d"}},
		{name: "price asc", filter: ProductFilter{Sort: constant.SortPriceAsc}, want: []string{"b", "c", "a", "d"}},
		{name: "price desc", filter: ProductFilter{Sort: constant.SortPriceDesc}, want: []string{"d", "a", "c", "b"}},
		{name: "price bounds", filter: ProductFilter{MinPrice: 150, MaxPrice: 300, Sort: constant.SortPriceAsc}, want: []string{"c", "a"}},
		{name: "no match", filter: ProductFilter{Search: "gương"}, want: []string{}},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ids(catalog.Filter(tt.filter)))
		})
	}
}

func TestCatalog_Transitions(t *testing.T) {
	base := Catalog{{ID: "1", Name: "one"}, {ID: "2", Name: "two"}}

	created := base.WithCreated(Product{ID: "3", Name: "three", Images: []string{"x.jpg"}})
	assert.Equal(t, []string{"3", "1", "2"}, ids(created))
	assert.Equal(t, "x.jpg", created[0].Image)
	assert.Equal(t, []string{"1", "2"}, ids(base))

	updated, ok := base.WithUpdated(Product{ID: "2", Name: "TWO"})
	assert.True(t, ok)
	assert.Equal(t, "TWO", updated[1].Name)
	assert.Equal(t, "two", base[1].Name)

	same, ok := base.WithUpdated(Product{ID: "9"})
	assert.False(t, ok)
	assert.Equal(t, base, same)

	deleted, ok := base.WithDeleted("1")
	assert.True(t, ok)
	assert.Equal(t, []string{"2"}, ids(deleted))
	assert.Len(t, base, 2)

	_, ok = base.WithDeleted("9")
	assert.False(t, ok)
}

func TestCatalog_Stats(t *testing.T) {
	stats := SeedProducts().Stats()
	assert.Equal(t, 8, stats.TotalProducts)
	assert.Equal(t, 7, stats.InStockProducts)
	assert.Equal(t, 1, stats.OutOfStockProducts)
	assert.Equal(t, 4, stats.PopularProducts)
	assert.Equal(t, 2, stats.ByCategory[constant.CategoryToilet])
	assert.Equal(t, 2, stats.ByCategory[constant.CategoryAccessory])
}

func TestProduct_Thumbnail(t *testing.T) {
	tests := []struct {
		name    string
		product Product
		want    string
	}{
		{name: "gallery first", product: Product{Image: "old.jpg", Images: []string{"a.jpg", "b.jpg"}}, want: "a.jpg"},
		{name: "fallback to image", product: Product{Image: "old.jpg"}, want: "old.jpg"},
		{name: "empty", product: Product{}, want: ""},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.product.Thumbnail())
			assert.Equal(t, tt.want, tt.product.Normalize().Image)
		})
	}
}

func TestProduct_DiscountPercent(t *testing.T) {
	assert.Equal(t, 20, Product{Price: 800, OriginalPrice: 1000}.DiscountPercent())
	assert.Equal(t, 0, Product{Price: 1000, OriginalPrice: 800}.DiscountPercent())
	assert.Equal(t, 0, Product{Price: 1000}.DiscountPercent())
}

func TestProduct_Detail(t *testing.T) {
	got := Product{ID: "1", Price: 2500000, OriginalPrice: 3800000}.Detail()
	assert.Equal(t, 34, got.DiscountPercent)
	assert.Equal(t, int64(1300000), got.Savings)
	assert.Equal(t, "1", got.ID)

	got = Product{ID: "4", Price: 450000}.Detail()
	assert.Zero(t, got.DiscountPercent)
	assert.Zero(t, got.Savings)
}
