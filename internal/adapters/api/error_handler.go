package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"weatherdash.app/internal/core/weather"
	"weatherdash.app/internal/ports"
	errorspkg "weatherdash.app/pkg/errors"
)

// ErrorResponse represents an error message structure for API responses
type ErrorResponse struct {
	Error  string `json:"error"`
	Title  string `json:"title"`
	Status string `json:"status"`
}

// handleError maps application errors to a status code and the user-facing message
func (s *HTTPServerAdapter) handleError(c *gin.Context, err error) {
	msg := weather.Describe(err)
	statusCode := statusCodeFor(err)

	if statusCode >= http.StatusInternalServerError && s.logger != nil {
		s.logger.Error("Request failed",
			ports.F("path", c.FullPath()),
			ports.F("status", statusCode),
			ports.F("error", err))
	}

	c.JSON(statusCode, ErrorResponse{
		Error:  msg.Message,
		Title:  msg.Title,
		Status: msg.Status,
	})
}

func statusCodeFor(err error) int {
	var appErr *errorspkg.AppError
	if !errors.As(err, &appErr) {
		return http.StatusInternalServerError
	}

	switch appErr.Type {
	case errorspkg.ValidationError:
		return http.StatusBadRequest
	case errorspkg.NotFoundError:
		return http.StatusNotFound
	case errorspkg.AlreadyExistsError:
		return http.StatusConflict
	case errorspkg.ConfigurationError, errorspkg.ExternalAPIError:
		return http.StatusServiceUnavailable
	case errorspkg.AuthenticationError, errorspkg.HTTPError, errorspkg.MalformedResponseError:
		return http.StatusBadGateway
	case errorspkg.NetworkError:
		return http.StatusGatewayTimeout
	default:
		return http.StatusInternalServerError
	}
}
