package validatorx

import (
	"testing"

	"github.com/muhammadheryan/sanitary-shop/constant"
	"github.com/muhammadheryan/sanitary-shop/model"
	"github.com/stretchr/testify/assert"
)

func price(v int64) *int64 { return &v }

func TestValidateStruct_ProductRequest(t *testing.T) {
	tests := []struct {
		name    string
		req     model.ProductRequest
		wantErr bool
	}{
		{
			name: "valid",
			req:  model.ProductRequest{Name: "Lavabo", Price: price(0), Category: constant.CategoryLavabo},
		},
		{
			name:    "missing name",
			req:     model.ProductRequest{Price: price(100), Category: constant.CategoryLavabo},
			wantErr: true,
		},
		{
			name:    "missing price",
			req:     model.ProductRequest{Name: "Lavabo", Category: constant.CategoryLavabo},
			wantErr: true,
		},
		{
			name:    "negative price",
			req:     model.ProductRequest{Name: "Lavabo", Price: price(-1), Category: constant.CategoryLavabo},
			wantErr: true,
		},
		{
			name:    "price above ceiling",
			req:     model.ProductRequest{Name: "Lavabo", Price: price(1_000_000_000_001), Category: constant.CategoryLavabo},
			wantErr: true,
		},
		{
			name:    "unknown category",
			req:     model.ProductRequest{Name: "Lavabo", Price: price(100), Category: "Sofa"},
			wantErr: true,
		},
		{
			name:    "empty gallery entry",
			req:     model.ProductRequest{Name: "Lavabo", Price: price(100), Category: constant.CategoryLavabo, Images: []string{"a.jpg", ""}},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateStruct(&tt.req)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateStruct_ProductFilter(t *testing.T) {
	assert.NoError(t, ValidateStruct(&model.ProductFilter{}))
	assert.NoError(t, ValidateStruct(&model.ProductFilter{Category: constant.CategoryCombo, Sort: constant.SortPriceDesc}))
	assert.Error(t, ValidateStruct(&model.ProductFilter{Sort: "newest"}))
	assert.Error(t, ValidateStruct(&model.ProductFilter{MinPrice: -5}))
}

func TestValidateStruct_UpdateCartItemRequest(t *testing.T) {
	qty := func(v int) *int { return &v }

	tests := []struct {
		name    string
		req     model.UpdateCartItemRequest
		wantErr bool
	}{
		{name: "zero removes the line", req: model.UpdateCartItemRequest{Quantity: qty(0)}},
		{name: "at the cap", req: model.UpdateCartItemRequest{Quantity: qty(model.MaxItemQuantity)}},
		{name: "above the cap", req: model.UpdateCartItemRequest{Quantity: qty(model.MaxItemQuantity + 1)}, wantErr: true},
		{name: "missing quantity", req: model.UpdateCartItemRequest{}, wantErr: true},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateStruct(&tt.req)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
