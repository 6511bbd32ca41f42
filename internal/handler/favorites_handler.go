package handler

import (
	"net/http"
	"strconv"

	"app/internal/usecase"

	"github.com/labstack/echo/v4"
)

// /favoritesのHTTP
type FavoritesHandler struct {
	uc *usecase.FavoritesUsecase
}

// DI
func NewFavoritesHandler(uc *usecase.FavoritesUsecase) *FavoritesHandler {
	return &FavoritesHandler{uc: uc}
}

func (h *FavoritesHandler) RegisterRoutes(e *echo.Echo) {
	g := e.Group("/favorites")

	g.GET("", h.list)
	g.POST("/:id/toggle", h.toggle)
	g.DELETE("", h.clear)
}

func (h *FavoritesHandler) list(c echo.Context) error {
	page := 1
	if v := c.QueryParam("page"); v != "" {
		p, err := strconv.Atoi(v)
		if err != nil {
			return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid page"})
		}
		page = p
	}

	sort := c.QueryParam("sort")

	var minPrice *int64
	if v := c.QueryParam("min_price"); v != "" {
		x, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid min_price"})
		}
		minPrice = &x
	}

	var maxPrice *int64
	if v := c.QueryParam("max_price"); v != "" {
		x, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid max_price"})
		}
		maxPrice = &x
	}

	out, err := h.uc.ListFavorites(c.Request().Context(), usecase.ListFavoritesInput{
		Page:     page,
		MinPrice: minPrice,
		MaxPrice: maxPrice,
		Sort:     sort,
	})
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, out)
}

func (h *FavoritesHandler) toggle(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}

	out, err := h.uc.ToggleFavorite(c.Request().Context(), id)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, out)
}

func (h *FavoritesHandler) clear(c echo.Context) error {
	h.uc.ClearFavorites(c.Request().Context())
	return c.NoContent(http.StatusNoContent)
}
