package repository

import (
	"context"
	"errors"

	"app/internal/domain/model"
)

var (
	ErrNotFound = errors.New("not found")
	ErrConflict = errors.New("conflict")
)

// ProductRepository persists the product collection. Listing returns
// the whole collection; filtering and sorting happen in the catalog
// pipeline on top of it.
type ProductRepository interface {
	List(ctx context.Context) ([]model.Product, error)
	FindByID(ctx context.Context, id string) (model.Product, error)

	Create(ctx context.Context, p model.Product) (model.Product, error)
	Update(ctx context.Context, p model.Product) (model.Product, error)
	Delete(ctx context.Context, id string) error
}
