package model

import (
	"math"

	"github.com/muhammadheryan/sanitary-shop/constant"
)

// Product is a catalog entry. Field names follow the persisted products_data
// layout so existing snapshots keep loading.
type Product struct {
	ID            string            `json:"id" csv:"id"`
	Name          string            `json:"name" csv:"name"`
	Code          string            `json:"code" csv:"code"`
	Price         int64             `json:"price" csv:"price"`
	OriginalPrice int64             `json:"originalPrice,omitempty" csv:"original_price"`
	Category      constant.Category `json:"category" csv:"category"`
	Description   string            `json:"description" csv:"description"`
	Image         string            `json:"image" csv:"image"`
	Images        []string          `json:"images,omitempty" csv:"-"`
	IsPopular     bool              `json:"isPopular,omitempty" csv:"is_popular"`
	InStock       bool              `json:"inStock" csv:"in_stock"`
}

// Thumbnail returns the first gallery image, falling back to Image.
func (p Product) Thumbnail() string {
	if len(p.Images) > 0 {
		return p.Images[0]
	}
	return p.Image
}

// Normalize pins Image to the gallery thumbnail.
func (p Product) Normalize() Product {
	p.Image = p.Thumbnail()
	if len(p.Images) > 0 {
		p.Images = append([]string(nil), p.Images...)
	}
	return p
}

func (p Product) HasDiscount() bool {
	return p.OriginalPrice > p.Price
}

func (p Product) DiscountPercent() int {
	if !p.HasDiscount() || p.OriginalPrice == 0 {
		return 0
	}
	return int(math.Round((1 - float64(p.Price)/float64(p.OriginalPrice)) * 100))
}

// ProductDetailResponse is a product plus the discount badge shown on its page.
type ProductDetailResponse struct {
	Product
	DiscountPercent int   `json:"discountPercent,omitempty"`
	Savings         int64 `json:"savings,omitempty"`
}

func (p Product) Detail() ProductDetailResponse {
	res := ProductDetailResponse{Product: p}
	if p.HasDiscount() {
		res.DiscountPercent = p.DiscountPercent()
		res.Savings = p.OriginalPrice - p.Price
	}
	return res
}

// ProductInput is a product without an identifier, as accepted by create.
type ProductInput struct {
	Name          string
	Code          string
	Price         int64
	OriginalPrice int64
	Category      constant.Category
	Description   string
	Image         string
	Images        []string
	IsPopular     bool
	InStock       bool
}

func (in ProductInput) WithID(id string) Product {
	return Product{
		ID:            id,
		Name:          in.Name,
		Code:          in.Code,
		Price:         in.Price,
		OriginalPrice: in.OriginalPrice,
		Category:      in.Category,
		Description:   in.Description,
		Image:         in.Image,
		Images:        in.Images,
		IsPopular:     in.IsPopular,
		InStock:       in.InStock,
	}.Normalize()
}

// ProductRequest is the admin create/update payload. Keys match Product so a
// listed product can be sent back as is.
type ProductRequest struct {
	Name          string            `json:"name" validate:"required"`
	Code          string            `json:"code"`
	Price         *int64            `json:"price" validate:"required,gte=0,lte=1000000000000"`
	OriginalPrice int64             `json:"originalPrice" validate:"gte=0,lte=1000000000000"`
	Category      constant.Category `json:"category" validate:"required,category"`
	Description   string            `json:"description"`
	Image         string            `json:"image"`
	Images        []string          `json:"images" validate:"omitempty,dive,required"`
	IsPopular     bool              `json:"isPopular"`
	InStock       bool              `json:"inStock"`
}

func (r ProductRequest) Input() ProductInput {
	var price int64
	if r.Price != nil {
		price = *r.Price
	}
	return ProductInput{
		Name:          r.Name,
		Code:          r.Code,
		Price:         price,
		OriginalPrice: r.OriginalPrice,
		Category:      r.Category,
		Description:   r.Description,
		Image:         r.Image,
		Images:        r.Images,
		IsPopular:     r.IsPopular,
		InStock:       r.InStock,
	}
}

// ProductFilter narrows and orders a catalog listing.
type ProductFilter struct {
	Search   string            `validate:"max=200"`
	Category constant.Category `validate:"omitempty,category"`
	MinPrice int64             `validate:"gte=0"`
	MaxPrice int64             `validate:"gte=0"`
	Sort     string            `validate:"omitempty,oneof=popular asc desc"`
}

type ProductListResponse struct {
	Items      []Product `json:"items"`
	TotalCount int       `json:"total_count"`
}

type UpdateProductResponse struct {
	Updated bool `json:"updated"`
}

type DashboardStats struct {
	TotalProducts      int                       `json:"total_products"`
	InStockProducts    int                       `json:"in_stock_products"`
	OutOfStockProducts int                       `json:"out_of_stock_products"`
	PopularProducts    int                       `json:"popular_products"`
	ByCategory         map[constant.Category]int `json:"by_category"`
}
