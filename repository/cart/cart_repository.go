package cart

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/muhammadheryan/sanitary-shop/constant"
	"github.com/muhammadheryan/sanitary-shop/model"
	"github.com/muhammadheryan/sanitary-shop/repository/storage"
)

var ErrCorruptCart = errors.New("cart data corrupt")

type CartRepository interface {
	// Get returns an empty cart when the session has none.
	Get(ctx context.Context, sessionID string) (*model.Cart, error)
	Save(ctx context.Context, sessionID string, cart *model.Cart) error
	Delete(ctx context.Context, sessionID string) error
}

type repo struct {
	store storage.Storage
}

func NewCartRepository(store storage.Storage) CartRepository {
	return &repo{store: store}
}

func key(sessionID string) string {
	return constant.CartDataKeyPrefix + sessionID
}

func (r *repo) Get(ctx context.Context, sessionID string) (*model.Cart, error) {
	raw, err := r.store.Get(ctx, key(sessionID))
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return &model.Cart{}, nil
		}
		return nil, err
	}

	var cart model.Cart
	if err := json.Unmarshal([]byte(raw), &cart); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorruptCart, err)
	}
	return &cart, nil
}

func (r *repo) Save(ctx context.Context, sessionID string, cart *model.Cart) error {
	data, err := json.Marshal(cart)
	if err != nil {
		return fmt.Errorf("marshal cart: %w", err)
	}
	return r.store.Set(ctx, key(sessionID), string(data))
}

func (r *repo) Delete(ctx context.Context, sessionID string) error {
	return r.store.Remove(ctx, key(sessionID))
}
