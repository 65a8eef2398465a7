package cart

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"sync"

	"github.com/muhammadheryan/sanitary-shop/cmd/config"
	"github.com/muhammadheryan/sanitary-shop/constant"
	"github.com/muhammadheryan/sanitary-shop/model"
	cartRepo "github.com/muhammadheryan/sanitary-shop/repository/cart"
	"github.com/muhammadheryan/sanitary-shop/utils/currency"
	cerr "github.com/muhammadheryan/sanitary-shop/utils/errors"
	"github.com/muhammadheryan/sanitary-shop/utils/logger"
	"go.uber.org/zap"
)

// CartApp keeps one quote cart per shopping session. It knows nothing about
// the catalog: callers pass the product snapshot to add.
type CartApp interface {
	Get(ctx context.Context, sessionID string) (*model.CartResponse, error)
	AddItem(ctx context.Context, sessionID string, product model.Product) (*model.CartResponse, error)
	UpdateQuantity(ctx context.Context, sessionID, productID string, quantity int) (*model.CartResponse, error)
	RemoveItem(ctx context.Context, sessionID, productID string) (*model.CartResponse, error)
	Toggle(ctx context.Context, sessionID string) (*model.CartResponse, error)
	Clear(ctx context.Context, sessionID string) error
	Quote(ctx context.Context, sessionID string) (*model.QuoteResponse, error)
}

type cartAppImpl struct {
	shop     config.ShopConfig
	cartRepo cartRepo.CartRepository

	mu sync.Mutex
}

func NewCartApp(shop config.ShopConfig, cartRepo cartRepo.CartRepository) CartApp {
	return &cartAppImpl{shop: shop, cartRepo: cartRepo}
}

func (s *cartAppImpl) Get(ctx context.Context, sessionID string) (*model.CartResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cart, err := s.loadLocked(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return cart.View(), nil
}

func (s *cartAppImpl) AddItem(ctx context.Context, sessionID string, product model.Product) (*model.CartResponse, error) {
	return s.mutate(ctx, "AddItem", sessionID, func(c *model.Cart) { c.AddItem(product) })
}

func (s *cartAppImpl) UpdateQuantity(ctx context.Context, sessionID, productID string, quantity int) (*model.CartResponse, error) {
	return s.mutate(ctx, "UpdateQuantity", sessionID, func(c *model.Cart) { c.UpdateQuantity(productID, quantity) })
}

func (s *cartAppImpl) RemoveItem(ctx context.Context, sessionID, productID string) (*model.CartResponse, error) {
	return s.mutate(ctx, "RemoveItem", sessionID, func(c *model.Cart) { c.RemoveItem(productID) })
}

func (s *cartAppImpl) Toggle(ctx context.Context, sessionID string) (*model.CartResponse, error) {
	return s.mutate(ctx, "Toggle", sessionID, func(c *model.Cart) { c.Toggle() })
}

func (s *cartAppImpl) Clear(ctx context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.cartRepo.Delete(ctx, sessionID); err != nil {
		logger.Error("[ClearCart] error cartRepo.Delete", zap.String("error", err.Error()))
		return cerr.SetCustomError(constant.ErrStorage)
	}
	return nil
}

// Quote renders the cart as the message sent to the shop over Zalo.
func (s *cartAppImpl) Quote(ctx context.Context, sessionID string) (*model.QuoteResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cart, err := s.loadLocked(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if len(cart.Items) == 0 {
		return nil, cerr.SetCustomError(constant.ErrEmptyCart)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Chào %s, tôi muốn xin báo giá chi tiết đơn hàng dự toán:\n\n", s.shop.Name)
	for i, item := range cart.Items {
		fmt.Fprintf(&b, "%d. %s (%s)\n   SL: %d x %s\n", i+1, item.Name, item.Code, item.Quantity, currency.FormatVND(item.Price))
	}
	total := cart.TotalAmount()
	fmt.Fprintf(&b, "\nTổng dự toán: %s", currency.FormatVND(total))
	b.WriteString("\n\nTôi đang quan tâm các sản phẩm này, vui lòng tư vấn thêm.")

	msg := b.String()
	return &model.QuoteResponse{
		Message:   msg,
		ZaloLink:  fmt.Sprintf("https://zalo.me/%s?text=%s", s.shop.ZaloID, encodeURIComponent(msg)),
		PhoneLink: "tel:" + s.shop.Phone,
		Total:     total,
	}, nil
}

// mutate applies fn to the session cart and writes the result back before
// returning the recomputed view.
func (s *cartAppImpl) mutate(ctx context.Context, op, sessionID string, fn func(*model.Cart)) (*model.CartResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cart, err := s.loadLocked(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	fn(cart)

	if err := s.cartRepo.Save(ctx, sessionID, cart); err != nil {
		logger.Error("["+op+"] error cartRepo.Save", zap.String("error", err.Error()))
		return nil, cerr.SetCustomError(constant.ErrStorage)
	}
	return cart.View(), nil
}

func (s *cartAppImpl) loadLocked(ctx context.Context, sessionID string) (*model.Cart, error) {
	cart, err := s.cartRepo.Get(ctx, sessionID)
	if err != nil {
		if errors.Is(err, cartRepo.ErrCorruptCart) {
			logger.Warn("[LoadCart] unreadable cart, starting empty", zap.String("session", sessionID), zap.String("error", err.Error()))
			return &model.Cart{}, nil
		}
		logger.Error("[LoadCart] error cartRepo.Get", zap.String("error", err.Error()))
		return nil, cerr.SetCustomError(constant.ErrInternal)
	}
	return cart, nil
}

// uriUnreserved undoes QueryEscape where encodeURIComponent leaves the
// character alone.
var uriUnreserved = strings.NewReplacer(
	"+", "%20",
	"%21", "!",
	"%27", "'",
	"%28", "(",
	"%29", ")",
	"%2A", "*",
)

// encodeURIComponent escapes s the way the browser function of the same name
// does: spaces become %20 and !'()* stay literal.
func encodeURIComponent(s string) string {
	return uriUnreserved.Replace(url.QueryEscape(s))
}
