package server

import (
	"app/internal/handler"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

func Start(
	addr string,
	productH *handler.ProductHandler,
	cartH *handler.CartHandler,
	favoritesH *handler.FavoritesHandler,
	checkoutH *handler.CheckoutHandler,
) error {
	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Recover())

	RegisterRoutes(e, productH, cartH, favoritesH, checkoutH)
	return e.Start(addr)
}
