package weather

import (
	"encoding/json"
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"weatherdash.app/pkg/errors"
)

// FromPayloads builds a Snapshot from a raw current-conditions body and an
// optional forecast body. Every nested field has a default; only a current
// payload that is not a JSON object fails, with a MalformedResponseError.
func FromPayloads(current, forecast json.RawMessage, fetchedAt time.Time) (Snapshot, error) {
	root, err := decodeObject(current)
	if err != nil {
		return Snapshot{}, err
	}

	main := objectAt(root, "main")
	wind := objectAt(root, "wind")
	sys := objectAt(root, "sys")
	condition := firstObject(root, "weather")

	visibility, visibilityKnown := numberAt(root, "visibility")

	snapshot := Snapshot{
		City:            stringAt(root, "name", "Unknown"),
		Country:         stringAt(sys, "country", ""),
		Temperature:     numberOrZero(main, "temp"),
		FeelsLike:       numberOrZero(main, "feels_like"),
		Humidity:        numberOrZero(main, "humidity"),
		Pressure:        numberOrZero(main, "pressure"),
		WindSpeed:       numberOrZero(wind, "speed"),
		Visibility:      visibility,
		VisibilityKnown: visibilityKnown,
		Category:        strings.ToLower(stringAt(condition, "main", "")),
		Description:     cases.Title(language.Und).String(stringAt(condition, "description", "")),
		Raw:             cloneRaw(current),
		FetchedAt:       fetchedAt,
	}

	if len(forecast) > 0 {
		if _, err := decodeObject(forecast); err == nil {
			snapshot.Forecast = cloneRaw(forecast)
		}
	}

	return snapshot, nil
}

func decodeObject(payload json.RawMessage) (map[string]interface{}, error) {
	if len(payload) == 0 {
		return nil, errors.NewMalformedResponseError("response body is empty", nil)
	}

	var decoded interface{}
	if err := json.Unmarshal(payload, &decoded); err != nil {
		return nil, errors.NewMalformedResponseError("response body is not valid JSON", err)
	}

	object, ok := decoded.(map[string]interface{})
	if !ok {
		return nil, errors.NewMalformedResponseError("response body is not a JSON object", nil)
	}
	return object, nil
}

func objectAt(m map[string]interface{}, key string) map[string]interface{} {
	if m == nil {
		return nil
	}
	if v, ok := m[key].(map[string]interface{}); ok {
		return v
	}
	return nil
}

func firstObject(m map[string]interface{}, key string) map[string]interface{} {
	if m == nil {
		return nil
	}
	list, ok := m[key].([]interface{})
	if !ok || len(list) == 0 {
		return nil
	}
	if v, ok := list[0].(map[string]interface{}); ok {
		return v
	}
	return nil
}

func stringAt(m map[string]interface{}, key, fallback string) string {
	if m == nil {
		return fallback
	}
	if v, ok := m[key].(string); ok {
		return v
	}
	return fallback
}

func numberAt(m map[string]interface{}, key string) (float64, bool) {
	if m == nil {
		return 0, false
	}
	v, ok := m[key].(float64)
	return v, ok
}

func numberOrZero(m map[string]interface{}, key string) float64 {
	v, _ := numberAt(m, key)
	return v
}

func cloneRaw(raw json.RawMessage) json.RawMessage {
	if raw == nil {
		return nil
	}
	out := make(json.RawMessage, len(raw))
	copy(out, raw)
	return out
}
