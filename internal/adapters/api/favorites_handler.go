package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"weatherdash.app/internal/core/favorites"
	"weatherdash.app/internal/ports"
	"weatherdash.app/pkg/errors"
)

type addFavoriteRequest struct {
	City string `json:"city" binding:"required,city"`
}

// FavoritesResponse carries the list after a read or a mutation
type FavoritesResponse struct {
	Favorites []string `json:"favorites"`
	Result    string   `json:"result,omitempty"`
	Message   string   `json:"message,omitempty"`
}

// listFavorites handles GET /api/favorites requests
func (s *HTTPServerAdapter) listFavorites(c *gin.Context) {
	c.JSON(http.StatusOK, FavoritesResponse{
		Favorites: s.favoritesUseCase.List(c.Request.Context()),
	})
}

// addFavorite handles POST /api/favorites requests
func (s *HTTPServerAdapter) addFavorite(c *gin.Context) {
	var req addFavoriteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.handleError(c, errors.NewValidationError("city is required"))
		return
	}

	ctx := c.Request.Context()
	result := s.favoritesUseCase.Add(ctx, req.City, s.weatherUseCase.ValidateCity)
	s.logger.Info("Favorite add processed", ports.F("city", req.City), ports.F("result", result.String()))

	c.JSON(addStatusCode(result), FavoritesResponse{
		Favorites: s.favoritesUseCase.List(ctx),
		Result:    result.String(),
		Message:   addMessage(result),
	})
}

// removeFavorite handles DELETE /api/favorites/:city requests. Removing a
// city that is not stored is not an error; the list is simply unchanged.
func (s *HTTPServerAdapter) removeFavorite(c *gin.Context) {
	ctx := c.Request.Context()
	city := c.Param("city")

	result := "missing"
	if s.favoritesUseCase.Remove(ctx, city) {
		result = "removed"
	}

	c.JSON(http.StatusOK, FavoritesResponse{
		Favorites: s.favoritesUseCase.List(ctx),
		Result:    result,
	})
}

func addStatusCode(result favorites.AddResult) int {
	switch result {
	case favorites.Added:
		return http.StatusCreated
	case favorites.AlreadyExists:
		return http.StatusOK
	default:
		return http.StatusUnprocessableEntity
	}
}

func addMessage(result favorites.AddResult) string {
	switch result {
	case favorites.Added:
		return "Added to favorites"
	case favorites.AlreadyExists:
		return "Already in favorites"
	case favorites.InvalidAndRemoved:
		return "City not found; removed from favorites"
	default:
		return "City not found"
	}
}
