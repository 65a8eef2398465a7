package model

import (
	"sort"
	"strings"

	"github.com/muhammadheryan/sanitary-shop/constant"
)

// Catalog is an ordered product list. Its methods never modify the receiver;
// each returns the next state.
type Catalog []Product

func (c Catalog) Clone() Catalog {
	out := make(Catalog, len(c))
	for i, p := range c {
		out[i] = p.Normalize()
	}
	return out
}

func (c Catalog) IndexOf(id string) int {
	for i := range c {
		if c[i].ID == id {
			return i
		}
	}
	return -1
}

func (c Catalog) Contains(id string) bool {
	return c.IndexOf(id) >= 0
}

// WithCreated prepends p.
func (c Catalog) WithCreated(p Product) Catalog {
	out := make(Catalog, 0, len(c)+1)
	out = append(out, p.Normalize())
	return append(out, c...)
}

// WithUpdated replaces the product sharing p's id. The bool is false when no
// such product exists, in which case the receiver is returned unchanged.
func (c Catalog) WithUpdated(p Product) (Catalog, bool) {
	idx := c.IndexOf(p.ID)
	if idx < 0 {
		return c, false
	}
	out := make(Catalog, len(c))
	copy(out, c)
	out[idx] = p.Normalize()
	return out, true
}

func (c Catalog) WithDeleted(id string) (Catalog, bool) {
	idx := c.IndexOf(id)
	if idx < 0 {
		return c, false
	}
	out := make(Catalog, 0, len(c)-1)
	out = append(out, c[:idx]...)
	return append(out, c[idx+1:]...), true
}

// Filter applies search, category and price bounds, then orders the result.
// Popular ordering keeps catalog order among equally popular products.
func (c Catalog) Filter(f ProductFilter) Catalog {
	search := strings.ToLower(strings.TrimSpace(f.Search))
	out := make(Catalog, 0, len(c))
	for _, p := range c {
		if search != "" &&
			!strings.Contains(strings.ToLower(p.Name), search) &&
			!strings.Contains(strings.ToLower(p.Code), search) {
			continue
		}
		if f.Category != "" && p.Category != f.Category {
			continue
		}
		if f.MinPrice > 0 && p.Price < f.MinPrice {
			continue
		}
		if f.MaxPrice > 0 && p.Price > f.MaxPrice {
			continue
		}
		out = append(out, p)
	}

	switch f.Sort {
	case constant.SortPriceAsc:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Price < out[j].Price })
	case constant.SortPriceDesc:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Price > out[j].Price })
	default:
		sort.SliceStable(out, func(i, j int) bool { return out[i].IsPopular && !out[j].IsPopular })
	}
	return out
}

func (c Catalog) Stats() DashboardStats {
	stats := DashboardStats{
		TotalProducts: len(c),
		ByCategory:    make(map[constant.Category]int),
	}
	for _, p := range c {
		if p.InStock {
			stats.InStockProducts++
		} else {
			stats.OutOfStockProducts++
		}
		if p.IsPopular {
			stats.PopularProducts++
		}
		stats.ByCategory[p.Category]++
	}
	return stats
}
