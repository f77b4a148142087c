package controller

import (
	"errors"
	"net/http"
	"net/url"
	"strings"

	"github.com/labstack/echo/v4"

	"go-weather/internal/domain/gateway/file"
	"go-weather/internal/domain/model"
	"go-weather/internal/domain/usecase/favorite"
	"go-weather/pkg/msg"
)

type FavoriteController struct {
	api     *echo.Group
	useCase favorite.UseCase
}

func NewFavoriteController(api *echo.Group, useCase favorite.UseCase) *FavoriteController {
	return &FavoriteController{api: api, useCase: useCase}
}

// InitFavoriteRoutes initializes favorite city routes
func (controller *FavoriteController) InitFavoriteRoutes() {
	controller.api.GET("/favorites", controller.ListFavorites)
	controller.api.GET("/favorites/top", controller.TopFavorite)
	controller.api.POST("/favorites", controller.AddFavorite)
	controller.api.DELETE("/favorites/:city", controller.RemoveFavorite)
}

// ListFavorites godoc
// @Summary List favorite cities
// @Tags favorites
// @Produce json
// @Success 200 {object} model.FavoritesResponse "Favorite cities in insertion order"
// @Router /favorites [get]
func (controller *FavoriteController) ListFavorites(c echo.Context) error {
	return c.JSON(http.StatusOK, model.FavoritesResponse{Cities: controller.useCase.ListFavorites()})
}

// TopFavorite godoc
// @Summary Get the top favorite city
// @Tags favorites
// @Produce json
// @Success 200 {object} map[string]string "Top favorite city"
// @Failure 404 {object} map[string]string "No favorite cities"
// @Router /favorites/top [get]
func (controller *FavoriteController) TopFavorite(c echo.Context) error {
	city, ok := controller.useCase.TopFavorite()
	if !ok {
		return c.JSON(http.StatusNotFound, map[string]string{"error": msg.GetMessage("favorite.empty-list")})
	}
	return c.JSON(http.StatusOK, map[string]string{"city": city})
}

// AddFavorite godoc
// @Summary Add a favorite city
// @Description Adds the city unless it already is a favorite
// @Tags favorites
// @Accept json
// @Produce json
// @Param city body model.AddFavoriteDTO true "City to add"
// @Success 201 {object} map[string]string "City added"
// @Success 200 {object} map[string]string "City already a favorite"
// @Failure 400 {object} map[string]string "Invalid request body or empty city"
// @Failure 500 {object} map[string]string "Favorites could not be saved"
// @Router /favorites [post]
func (controller *FavoriteController) AddFavorite(c echo.Context) error {
	var dto model.AddFavoriteDTO
	if err := c.Bind(&dto); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
	}

	city := strings.TrimSpace(dto.City)
	added, err := controller.useCase.AddFavorite(city)
	if errors.Is(err, file.ErrEmptyCity) {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": msg.GetMessage("favorite.empty-city")})
	}
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}

	if !added {
		return c.JSON(http.StatusOK, map[string]string{"message": msg.GetMessage("favorite.already-exists", city)})
	}
	return c.JSON(http.StatusCreated, map[string]string{"message": msg.GetMessage("favorite.added", city)})
}

// RemoveFavorite godoc
// @Summary Remove a favorite city
// @Tags favorites
// @Param city path string true "City name"
// @Success 204 "City removed"
// @Failure 400 {object} map[string]string "Malformed city escaping"
// @Failure 404 {object} map[string]string "City is not a favorite"
// @Failure 500 {object} map[string]string "Favorites could not be saved"
// @Router /favorites/{city} [delete]
func (controller *FavoriteController) RemoveFavorite(c echo.Context) error {
	city, err := pathParam(c, "city")
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid city"})
	}

	err = controller.useCase.RemoveFavorite(city)
	if errors.Is(err, file.ErrFavoriteNotFound) {
		return c.JSON(http.StatusNotFound, map[string]string{"error": msg.GetMessage("favorite.not-found", city)})
	}
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.NoContent(http.StatusNoContent)
}

// pathParam returns the decoded path parameter. echo routes on the raw path when it holds
// non-default escapes such as %2C or %2F and then hands back still-escaped values.
func pathParam(c echo.Context, name string) (string, error) {
	value := c.Param(name)
	if c.Request().URL.RawPath != "" {
		unescaped, err := url.PathUnescape(value)
		if err != nil {
			return "", err
		}
		value = unescaped
	}
	return strings.TrimSpace(value), nil
}
