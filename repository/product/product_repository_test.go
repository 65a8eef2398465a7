package product_test

import (
	"context"
	"testing"

	"github.com/muhammadheryan/sanitary-shop/constant"
	"github.com/muhammadheryan/sanitary-shop/model"
	productrepo "github.com/muhammadheryan/sanitary-shop/repository/product"
	"github.com/muhammadheryan/sanitary-shop/repository/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProductRepository_Load(t *testing.T) {
	tests := []struct {
		name    string
		stored  *string
		want    model.Catalog
		wantErr error
	}{
		{
			name:    "error: nothing persisted",
			wantErr: productrepo.ErrNoSnapshot,
		},
		{
			name:    "error: malformed json",
			stored:  strPtr(`[{"id":`),
			wantErr: productrepo.ErrCorruptSnapshot,
		},
		{
			name:    "error: wrong shape",
			stored:  strPtr(`{"id":"1"}`),
			wantErr: productrepo.ErrCorruptSnapshot,
		},
		{
			name:    "error: json null",
			stored:  strPtr(`null`),
			wantErr: productrepo.ErrCorruptSnapshot,
		},
		{
			name:   "success: empty catalog",
			stored: strPtr(`[]`),
			want:   model.Catalog{},
		},
		{
			name:   "success: original field names",
			stored: strPtr(`[{"id":"9","name":"Vòi","code":"V-9","price":100,"originalPrice":200,"category":"Faucet","description":"","image":"a.jpg","images":["a.jpg"],"isPopular":true,"inStock":true}]`),
			want: model.Catalog{{
				ID: "9", Name: "Vòi", Code: "V-9", Price: 100, OriginalPrice: 200,
				Category: constant.CategoryFaucet, Image: "a.jpg", Images: []string{"a.jpg"},
				IsPopular: true, InStock: true,
			}},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			store := storage.NewMemoryStorage()
			if tt.stored != nil {
				require.NoError(t, store.Set(context.Background(), constant.ProductsDataKey, *tt.stored))
			}

			got, err := productrepo.NewProductRepository(store).Load(context.Background())
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestProductRepository_SaveAndClear(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemoryStorage()
	repo := productrepo.NewProductRepository(store)

	require.NoError(t, repo.Save(ctx, model.SeedProducts()))
	got, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, model.SeedProducts(), got)

	require.NoError(t, repo.Save(ctx, nil))
	raw, err := store.Get(ctx, constant.ProductsDataKey)
	require.NoError(t, err)
	assert.Equal(t, "[]", raw)

	require.NoError(t, repo.Clear(ctx))
	_, err = store.Get(ctx, constant.ProductsDataKey)
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func strPtr(s string) *string { return &s }
