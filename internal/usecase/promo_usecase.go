package usecase

import (
	"context"
	"net/http"

	"app/internal/domain/model"
	repo "app/internal/repository"
)

type PromoUsecase struct {
	promoRepo repo.PromoRepository
}

// DI
func NewPromoUsecase(promoRepo repo.PromoRepository) *PromoUsecase {
	return &PromoUsecase{promoRepo: promoRepo}
}

// ListPromos returns all promos, optionally filtered by active state.
func (u *PromoUsecase) ListPromos(ctx context.Context, active *bool) ([]model.Promo, error) {
	promos, err := u.promoRepo.List(ctx)
	if err != nil {
		return nil, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	if active == nil {
		return promos, nil
	}

	out := make([]model.Promo, 0, len(promos))
	for _, p := range promos {
		if p.IsActive == *active {
			out = append(out, p)
		}
	}
	return out, nil
}
