package cart_test

import (
	"context"
	"errors"
	"net/url"
	"strings"
	"testing"

	appcart "github.com/muhammadheryan/sanitary-shop/application/cart"
	"github.com/muhammadheryan/sanitary-shop/cmd/config"
	"github.com/muhammadheryan/sanitary-shop/constant"
	cartmocks "github.com/muhammadheryan/sanitary-shop/mocks/repository/cart"
	"github.com/muhammadheryan/sanitary-shop/model"
	cartrepo "github.com/muhammadheryan/sanitary-shop/repository/cart"
	"github.com/muhammadheryan/sanitary-shop/repository/storage"
	cerr "github.com/muhammadheryan/sanitary-shop/utils/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var shop = config.ShopConfig{
	Name:   "Kho Tổng Vệ Sinh Việt",
	Phone:  "0912345678",
	ZaloID: "0912345678",
}

func newApp() appcart.CartApp {
	return appcart.NewCartApp(shop, cartrepo.NewCartRepository(storage.NewMemoryStorage()))
}

func toilet() model.Product {
	return model.Product{ID: "1", Name: "Bồn cầu 1 khối", Code: "BC-001", Price: 2500000, InStock: true}
}

func TestCartApp_QuoteScenario(t *testing.T) {
	ctx := context.Background()
	app := newApp()

	got, err := app.Get(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, 0, got.TotalItems)
	assert.Equal(t, int64(0), got.TotalAmount)

	got, err = app.AddItem(ctx, "s1", toilet())
	require.NoError(t, err)
	assert.Equal(t, 1, got.TotalItems)
	assert.Equal(t, int64(2500000), got.TotalAmount)

	got, err = app.AddItem(ctx, "s1", toilet())
	require.NoError(t, err)
	require.Len(t, got.Items, 1)
	assert.Equal(t, 2, got.TotalItems)
	assert.Equal(t, int64(5000000), got.TotalAmount)

	got, err = app.UpdateQuantity(ctx, "s1", "1", 5)
	require.NoError(t, err)
	assert.Equal(t, 5, got.Items[0].Quantity)
	assert.Equal(t, int64(12500000), got.TotalAmount)
}

func TestCartApp_PriceSnapshot(t *testing.T) {
	ctx := context.Background()
	app := newApp()

	p := toilet()
	_, err := app.AddItem(ctx, "s1", p)
	require.NoError(t, err)

	p.Price = 9999999
	got, err := app.AddItem(ctx, "s1", p)
	require.NoError(t, err)
	assert.Equal(t, int64(2500000), got.Items[0].Price)
	assert.Equal(t, int64(5000000), got.TotalAmount)
}

func TestCartApp_ZeroQuantityEqualsRemove(t *testing.T) {
	ctx := context.Background()
	other := model.Product{ID: "8", Name: "Vòi xịt", Price: 150000}

	viaUpdate := newApp()
	viaRemove := newApp()
	for _, app := range []appcart.CartApp{viaUpdate, viaRemove} {
		_, err := app.AddItem(ctx, "s1", toilet())
		require.NoError(t, err)
		_, err = app.AddItem(ctx, "s1", other)
		require.NoError(t, err)
	}

	a, err := viaUpdate.UpdateQuantity(ctx, "s1", "1", 0)
	require.NoError(t, err)
	b, err := viaRemove.RemoveItem(ctx, "s1", "1")
	require.NoError(t, err)

	assert.Equal(t, b, a)
	assert.Equal(t, 1, a.TotalItems)
}

func TestCartApp_UnknownIDIsNoop(t *testing.T) {
	ctx := context.Background()
	app := newApp()
	_, err := app.AddItem(ctx, "s1", toilet())
	require.NoError(t, err)

	got, err := app.UpdateQuantity(ctx, "s1", "missing", 3)
	require.NoError(t, err)
	assert.Equal(t, 1, got.TotalItems)

	got, err = app.RemoveItem(ctx, "s1", "missing")
	require.NoError(t, err)
	assert.Equal(t, 1, got.TotalItems)
}

func TestCartApp_SessionsAreIsolated(t *testing.T) {
	ctx := context.Background()
	app := newApp()

	_, err := app.AddItem(ctx, "s1", toilet())
	require.NoError(t, err)

	got, err := app.Get(ctx, "s2")
	require.NoError(t, err)
	assert.Empty(t, got.Items)

	require.NoError(t, app.Clear(ctx, "s1"))
	got, err = app.Get(ctx, "s1")
	require.NoError(t, err)
	assert.Empty(t, got.Items)
}

func TestCartApp_Toggle(t *testing.T) {
	ctx := context.Background()
	app := newApp()

	got, err := app.Toggle(ctx, "s1")
	require.NoError(t, err)
	assert.True(t, got.IsOpen)

	got, err = app.Toggle(ctx, "s1")
	require.NoError(t, err)
	assert.False(t, got.IsOpen)
}

func TestCartApp_Quote(t *testing.T) {
	ctx := context.Background()
	app := newApp()

	_, err := app.Quote(ctx, "s1")
	assert.True(t, cerr.Is(err, constant.ErrEmptyCart))

	_, err = app.AddItem(ctx, "s1", toilet())
	require.NoError(t, err)
	_, err = app.UpdateQuantity(ctx, "s1", "1", 2)
	require.NoError(t, err)

	got, err := app.Quote(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, int64(5000000), got.Total)
	assert.Contains(t, got.Message, "Chào Kho Tổng Vệ Sinh Việt")
	assert.Contains(t, got.Message, "1. Bồn cầu 1 khối (BC-001)\n   SL: 2 x 2.500.000 ₫")
	assert.Contains(t, got.Message, "Tổng dự toán: 5.000.000 ₫")
	assert.Equal(t, "tel:0912345678", got.PhoneLink)

	require.True(t, strings.HasPrefix(got.ZaloLink, "https://zalo.me/0912345678?text="))
	assert.NotContains(t, got.ZaloLink, "+")
	assert.Contains(t, got.ZaloLink, "%20(BC-001)%0A")
	u, err := url.Parse(got.ZaloLink)
	require.NoError(t, err)
	assert.Equal(t, got.Message, u.Query().Get("text"))
}

func TestCartApp_RepositoryErrors(t *testing.T) {
	type fields struct {
		cartRepo *cartmocks.CartRepository
	}
	tests := []struct {
		name     string
		fields   fields
		mockCall func(f fields)
		errCode  constant.ErrorType
		wantErr  bool
		want     int
	}{
		{
			name:   "error: storage read failure",
			fields: fields{cartRepo: cartmocks.NewCartRepository(t)},
			mockCall: func(f fields) {
				f.cartRepo.On("Get", mock.Anything, "s1").Return(nil, errors.New("io")).Once()
			},
			wantErr: true,
			errCode: constant.ErrInternal,
		},
		{
			name:   "error: storage write failure",
			fields: fields{cartRepo: cartmocks.NewCartRepository(t)},
			mockCall: func(f fields) {
				f.cartRepo.On("Get", mock.Anything, "s1").Return(&model.Cart{}, nil).Once()
				f.cartRepo.On("Save", mock.Anything, "s1", mock.Anything).Return(errors.New("quota")).Once()
			},
			wantErr: true,
			errCode: constant.ErrStorage,
		},
		{
			name:   "success: corrupt cart starts empty",
			fields: fields{cartRepo: cartmocks.NewCartRepository(t)},
			mockCall: func(f fields) {
				f.cartRepo.On("Get", mock.Anything, "s1").Return(nil, cartrepo.ErrCorruptCart).Once()
				f.cartRepo.On("Save", mock.Anything, "s1", mock.MatchedBy(func(c *model.Cart) bool {
					return len(c.Items) == 1 && c.Items[0].Quantity == 1
				})).Return(nil).Once()
			},
			want: 1,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			tt.mockCall(tt.fields)
			app := appcart.NewCartApp(shop, tt.fields.cartRepo)

			got, err := app.AddItem(context.Background(), "s1", toilet())
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, cerr.Is(err, tt.errCode), "error = %v", err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.TotalItems)
		})
	}
}
