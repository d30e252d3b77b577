package repository

import (
	"context"
	"sync"

	"app/internal/domain/model"
	repo "app/internal/repository"
)

// ProductMemoryRepository is the dev-mode catalog: a process-wide
// slice guarded by a mutex, seeded with the storefront's fixture
// products. All reads return deep copies so callers can never reach
// the shared state.
type ProductMemoryRepository struct {
	mu       sync.RWMutex
	products []model.Product
}

func NewProductMemoryRepository(seed []model.Product) *ProductMemoryRepository {
	r := &ProductMemoryRepository{}
	for _, p := range seed {
		r.products = append(r.products, cloneProduct(p))
	}
	return r
}

func (r *ProductMemoryRepository) List(ctx context.Context) ([]model.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]model.Product, 0, len(r.products))
	for _, p := range r.products {
		out = append(out, cloneProduct(p))
	}
	return out, nil
}

func (r *ProductMemoryRepository) FindByID(ctx context.Context, id string) (model.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, p := range r.products {
		if p.ID == id {
			return cloneProduct(p), nil
		}
	}
	return model.Product{}, repo.ErrNotFound
}

func (r *ProductMemoryRepository) Create(ctx context.Context, p model.Product) (model.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.products {
		if existing.ID == p.ID {
			return model.Product{}, repo.ErrConflict
		}
	}
	r.products = append(r.products, cloneProduct(p))
	return p, nil
}

func (r *ProductMemoryRepository) Update(ctx context.Context, p model.Product) (model.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, existing := range r.products {
		if existing.ID != p.ID {
			continue
		}
		// nil sizes keeps the stored entries
		if p.Sizes == nil {
			p.Sizes = existing.Sizes
		}
		p.CreatedAt = existing.CreatedAt
		r.products[i] = cloneProduct(p)
		return cloneProduct(p), nil
	}
	return model.Product{}, repo.ErrNotFound
}

func (r *ProductMemoryRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, existing := range r.products {
		if existing.ID == id {
			r.products = append(r.products[:i], r.products[i+1:]...)
			return nil
		}
	}
	return repo.ErrNotFound
}

func cloneProduct(p model.Product) model.Product {
	c := p
	c.Sizes = make([]model.SizeStock, len(p.Sizes))
	copy(c.Sizes, p.Sizes)
	return c
}
