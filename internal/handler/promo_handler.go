package handler

import (
	"net/http"

	"app/internal/usecase"

	"github.com/labstack/echo/v4"
)

type PromoHandler struct {
	uc *usecase.PromoUsecase
}

// DI
func NewPromoHandler(uc *usecase.PromoUsecase) *PromoHandler {
	return &PromoHandler{uc: uc}
}

func (h *PromoHandler) RegisterRoutes(e *echo.Echo) {
	e.GET("/promos", h.list)
}

func (h *PromoHandler) list(c echo.Context) error {
	var active *bool
	if v := c.QueryParam("active"); v != "" {
		b := v == "true"
		active = &b
	}

	out, err := h.uc.ListPromos(c.Request().Context(), active)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}
