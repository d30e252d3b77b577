package repository

import (
	"context"

	"app/internal/domain/model"
)

type UserRepository interface {
	FindByEmail(ctx context.Context, email string) (model.User, error)
	// Create returns ErrConflict when the email is already registered.
	Create(ctx context.Context, u model.User) (model.User, error)
}
