package repository

import (
	"context"

	"app/internal/domain/model"
)

// PromoMemoryRepository serves the static promo list.
type PromoMemoryRepository struct {
	promos []model.Promo
}

func NewPromoMemoryRepository(seed []model.Promo) *PromoMemoryRepository {
	return &PromoMemoryRepository{promos: seed}
}

func (r *PromoMemoryRepository) List(ctx context.Context) ([]model.Promo, error) {
	out := make([]model.Promo, len(r.promos))
	copy(out, r.promos)
	return out, nil
}
