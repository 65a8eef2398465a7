package product

import (
	"context"
	"errors"
	"io"
	"sync"

	"github.com/gocarina/gocsv"
	"github.com/google/uuid"
	"github.com/muhammadheryan/sanitary-shop/constant"
	"github.com/muhammadheryan/sanitary-shop/model"
	productRepo "github.com/muhammadheryan/sanitary-shop/repository/product"
	cerr "github.com/muhammadheryan/sanitary-shop/utils/errors"
	"github.com/muhammadheryan/sanitary-shop/utils/logger"
	"go.uber.org/zap"
)

// ProductApp owns the in-process catalog. It is loaded from the repository
// once and written back in full after every mutation.
type ProductApp interface {
	Load(ctx context.Context) error
	List(ctx context.Context) ([]model.Product, error)
	Search(ctx context.Context, filter model.ProductFilter) (*model.ProductListResponse, error)
	Get(ctx context.Context, id string) (*model.Product, error)
	Create(ctx context.Context, input model.ProductInput) (*model.Product, error)
	Update(ctx context.Context, product model.Product) (bool, error)
	Delete(ctx context.Context, id string) (bool, error)
	Reset(ctx context.Context) error
	Stats(ctx context.Context) (*model.DashboardStats, error)
	ExportCSV(ctx context.Context, w io.Writer) error
}

type Option func(*productAppImpl)

// WithIDGenerator replaces uuid-based id generation.
func WithIDGenerator(fn func() string) Option {
	return func(s *productAppImpl) { s.newID = fn }
}

type productAppImpl struct {
	productRepo productRepo.ProductRepository
	newID       func() string

	mu       sync.Mutex
	loaded   bool
	products model.Catalog
}

func NewProductApp(productRepo productRepo.ProductRepository, opts ...Option) ProductApp {
	s := &productAppImpl{
		productRepo: productRepo,
		newID:       uuid.NewString,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *productAppImpl) Load(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loadLocked(ctx)
}

// loadLocked populates the working set the first time it is called. Missing or
// unreadable snapshots fall back to the seed set, which is not persisted.
func (s *productAppImpl) loadLocked(ctx context.Context) error {
	if s.loaded {
		return nil
	}

	products, err := s.productRepo.Load(ctx)
	switch {
	case err == nil:
		s.products = products
	case errors.Is(err, productRepo.ErrNoSnapshot):
		logger.Info("[LoadProducts] no saved catalog, using seed data")
		s.products = model.SeedProducts()
	case errors.Is(err, productRepo.ErrCorruptSnapshot):
		logger.Warn("[LoadProducts] saved catalog unreadable, using seed data", zap.String("error", err.Error()))
		s.products = model.SeedProducts()
	default:
		logger.Error("[LoadProducts] error productRepo.Load", zap.String("error", err.Error()))
		return cerr.SetCustomError(constant.ErrInternal)
	}

	s.loaded = true
	return nil
}

func (s *productAppImpl) List(ctx context.Context) ([]model.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.loadLocked(ctx); err != nil {
		return nil, err
	}
	return s.products.Clone(), nil
}

func (s *productAppImpl) Search(ctx context.Context, filter model.ProductFilter) (*model.ProductListResponse, error) {
	products, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	items := model.Catalog(products).Filter(filter)
	return &model.ProductListResponse{
		Items:      items,
		TotalCount: len(items),
	}, nil
}

func (s *productAppImpl) Get(ctx context.Context, id string) (*model.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.loadLocked(ctx); err != nil {
		return nil, err
	}

	idx := s.products.IndexOf(id)
	if idx < 0 {
		return nil, cerr.SetCustomError(constant.ErrNotFound)
	}
	p := s.products[idx].Normalize()
	return &p, nil
}

func (s *productAppImpl) Create(ctx context.Context, input model.ProductInput) (*model.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.loadLocked(ctx); err != nil {
		return nil, err
	}

	id := s.newID()
	for s.products.Contains(id) {
		id = s.newID()
	}
	created := input.WithID(id)

	if err := s.commitLocked(ctx, s.products.WithCreated(created)); err != nil {
		logger.Error("[CreateProduct] error persist", zap.String("error", err.Error()))
		return nil, cerr.SetCustomError(constant.ErrStorage)
	}
	return &created, nil
}

func (s *productAppImpl) Update(ctx context.Context, product model.Product) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.loadLocked(ctx); err != nil {
		return false, err
	}

	next, ok := s.products.WithUpdated(product)
	if !ok {
		return false, nil
	}
	if err := s.commitLocked(ctx, next); err != nil {
		logger.Error("[UpdateProduct] error persist", zap.String("id", product.ID), zap.String("error", err.Error()))
		return false, cerr.SetCustomError(constant.ErrStorage)
	}
	return true, nil
}

func (s *productAppImpl) Delete(ctx context.Context, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.loadLocked(ctx); err != nil {
		return false, err
	}

	next, ok := s.products.WithDeleted(id)
	if !ok {
		return false, nil
	}
	if err := s.commitLocked(ctx, next); err != nil {
		logger.Error("[DeleteProduct] error persist", zap.String("id", id), zap.String("error", err.Error()))
		return false, cerr.SetCustomError(constant.ErrStorage)
	}
	return true, nil
}

// Reset drops the persisted catalog and restores the seed set. Callers are
// expected to have obtained confirmation.
func (s *productAppImpl) Reset(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.productRepo.Clear(ctx); err != nil {
		logger.Error("[ResetProducts] error productRepo.Clear", zap.String("error", err.Error()))
		return cerr.SetCustomError(constant.ErrStorage)
	}
	s.products = model.SeedProducts()
	s.loaded = true
	logger.Info("[ResetProducts] catalog restored to seed data")
	return nil
}

func (s *productAppImpl) Stats(ctx context.Context) (*model.DashboardStats, error) {
	products, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	stats := model.Catalog(products).Stats()
	return &stats, nil
}

func (s *productAppImpl) ExportCSV(ctx context.Context, w io.Writer) error {
	products, err := s.List(ctx)
	if err != nil {
		return err
	}
	if err := gocsv.Marshal(products, w); err != nil {
		logger.Error("[ExportProducts] error gocsv.Marshal", zap.String("error", err.Error()))
		return cerr.SetCustomError(constant.ErrInternal)
	}
	return nil
}

// commitLocked persists next and swaps it in only once the write succeeded.
func (s *productAppImpl) commitLocked(ctx context.Context, next model.Catalog) error {
	if err := s.productRepo.Save(ctx, next); err != nil {
		return err
	}
	s.products = next
	return nil
}
