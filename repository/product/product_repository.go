package product

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/muhammadheryan/sanitary-shop/constant"
	"github.com/muhammadheryan/sanitary-shop/model"
	"github.com/muhammadheryan/sanitary-shop/repository/storage"
)

var (
	// ErrNoSnapshot means nothing has been persisted yet.
	ErrNoSnapshot = errors.New("catalog snapshot not found")
	// ErrCorruptSnapshot means the persisted value is not a product array.
	ErrCorruptSnapshot = errors.New("catalog snapshot corrupt")
)

// ProductRepository persists the whole catalog as one JSON document under
// products_data.
type ProductRepository interface {
	Load(ctx context.Context) (model.Catalog, error)
	Save(ctx context.Context, catalog model.Catalog) error
	Clear(ctx context.Context) error
}

type snapshot struct {
	store storage.Storage
}

func NewProductRepository(store storage.Storage) ProductRepository {
	return &snapshot{store: store}
}

func (s *snapshot) Load(ctx context.Context) (model.Catalog, error) {
	raw, err := s.store.Get(ctx, constant.ProductsDataKey)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, ErrNoSnapshot
		}
		return nil, err
	}

	var catalog model.Catalog
	if err := json.Unmarshal([]byte(raw), &catalog); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorruptSnapshot, err)
	}
	if catalog == nil {
		// "null" decodes without error but is not a catalog
		return nil, ErrCorruptSnapshot
	}
	return catalog, nil
}

func (s *snapshot) Save(ctx context.Context, catalog model.Catalog) error {
	if catalog == nil {
		catalog = model.Catalog{}
	}
	data, err := json.Marshal(catalog)
	if err != nil {
		return fmt.Errorf("marshal catalog: %w", err)
	}
	return s.store.Set(ctx, constant.ProductsDataKey, string(data))
}

func (s *snapshot) Clear(ctx context.Context) error {
	return s.store.Remove(ctx, constant.ProductsDataKey)
}
