package server

import (
	"net/http"

	"app/internal/config"
	"app/internal/handler"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
)

// New assembles the echo instance and registers every route group.
func New(
	cfg config.Config,
	productH *handler.ProductHandler,
	adminProductH *handler.AdminProductHandler,
	cartH *handler.CartHandler,
	authH *handler.AuthHandler,
	promoH *handler.PromoHandler,
) *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	e.Use(echomw.Logger())
	e.Use(echomw.Recover())
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins: []string{cfg.FEURL},
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete},
	}))

	productH.RegisterRoutes(e)
	adminProductH.RegisterRoutes(e, cfg)
	cartH.RegisterRoutes(e, cfg)
	authH.RegisterRoutes(e)
	promoH.RegisterRoutes(e)

	return e
}

// Start blocks serving on addr.
func Start(e *echo.Echo, addr string) error {
	return e.Start(addr)
}
