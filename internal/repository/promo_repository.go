package repository

import (
	"context"

	"app/internal/domain/model"
)

type PromoRepository interface {
	List(ctx context.Context) ([]model.Promo, error)
}
