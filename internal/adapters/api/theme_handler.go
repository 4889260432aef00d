package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"weatherdash.app/internal/core/theme"
)

// getTheme handles GET /api/theme requests
func (s *HTTPServerAdapter) getTheme(c *gin.Context) {
	c.JSON(http.StatusOK, s.CurrentTheme())
}

// toggleTheme handles POST /api/theme/toggle requests
func (s *HTTPServerAdapter) toggleTheme(c *gin.Context) {
	c.JSON(http.StatusOK, s.swapTheme())
}

func (s *HTTPServerAdapter) swapTheme() theme.Theme {
	for {
		current := s.theme.Load()
		next := current.Toggle()
		if s.theme.CompareAndSwap(current, &next) {
			return next
		}
	}
}
