package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"weatherdash.app/internal/ports"
)

// SettingsResponse reports the provider key state after a reload
type SettingsResponse struct {
	APIKeyConfigured bool `json:"api_key_configured"`
}

// reloadSettings handles POST /api/settings/reload requests
func (s *HTTPServerAdapter) reloadSettings(c *gin.Context) {
	configured, err := s.settings.ReloadAPIKey(c.Request.Context())
	if err != nil {
		s.logger.Warn("Settings reload failed", ports.F("error", err))
		s.handleError(c, err)
		return
	}

	s.logger.Info("Settings reloaded", ports.F("api_key_configured", configured))
	c.JSON(http.StatusOK, SettingsResponse{APIKeyConfigured: configured})
}
