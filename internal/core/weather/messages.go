package weather

import (
	"fmt"

	"weatherdash.app/pkg/errors"
)

// Terse status indicators shown next to a failed fetch
const (
	StatusError         = "Error"
	StatusNetworkError  = "Network error"
	StatusAPIKeyMissing = "API key missing"
	StatusInputRequired = "Input required"
)

// UserMessage is a fetch failure rendered for the user
type UserMessage struct {
	Title   string
	Message string
	Status  string
}

// Describe converts a fetch-path error into a user-visible message. It never fails.
func Describe(err error) UserMessage {
	if err == nil {
		return UserMessage{}
	}

	switch errors.TypeOf(err) {
	case errors.ValidationError:
		return UserMessage{
			Title:   "Input Required",
			Message: "Please enter a city name (e.g., London, Tokyo).",
			Status:  StatusInputRequired,
		}
	case errors.ConfigurationError:
		return UserMessage{
			Title:   "API Key",
			Message: "API key not set. Configure OPENWEATHERMAP_API_KEY with your OpenWeatherMap API key.",
			Status:  StatusAPIKeyMissing,
		}
	case errors.NetworkError:
		return UserMessage{
			Title:   "Network",
			Message: fmt.Sprintf("Network error: %v", err),
			Status:  StatusNetworkError,
		}
	case errors.NotFoundError, errors.AuthenticationError, errors.HTTPError:
		return UserMessage{
			Title:   "API Error",
			Message: fmt.Sprintf("Failed to get data: %v", err),
			Status:  StatusError,
		}
	default:
		return UserMessage{
			Title:   "Error",
			Message: fmt.Sprintf("Unexpected error: %v", err),
			Status:  StatusError,
		}
	}
}
