package repository

import (
	"context"

	"app/internal/domain/model"
)

// CartRepository stores one cart per user. The cart is written back
// wholesale after every mutation — no partial updates.
type CartRepository interface {
	// Get returns the stored cart, or an empty cart when none exists.
	Get(ctx context.Context, userID string) (model.Cart, error)
	Save(ctx context.Context, userID string, c model.Cart) error
	Delete(ctx context.Context, userID string) error
}
