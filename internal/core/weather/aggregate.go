package weather

import (
	"encoding/json"
	"sort"
	"strings"
)

// ForecastSample is one 3-hour point of the provider's forecast feed.
// Temperature is nil when the sample carried no usable reading.
type ForecastSample struct {
	Timestamp   string
	Temperature *float64
}

// Date returns the calendar date portion of the timestamp ("YYYY-MM-DD HH:MM:SS" -> "YYYY-MM-DD")
func (s ForecastSample) Date() string {
	date, _, _ := strings.Cut(s.Timestamp, " ")
	return date
}

// AggregateForecast reduces samples to one min/max record per date, sorted
// ascending by date. Samples without a date or temperature are skipped; with
// no usable samples the result is empty, never nil.
func AggregateForecast(samples []ForecastSample) []ForecastDay {
	byDate := make(map[string]*ForecastDay)

	for _, sample := range samples {
		date := sample.Date()
		if date == "" || sample.Temperature == nil {
			continue
		}
		temp := *sample.Temperature

		day, ok := byDate[date]
		if !ok {
			byDate[date] = &ForecastDay{Date: date, Min: temp, Max: temp}
			continue
		}
		if temp < day.Min {
			day.Min = temp
		}
		if temp > day.Max {
			day.Max = temp
		}
	}

	days := make([]ForecastDay, 0, len(byDate))
	for _, day := range byDate {
		days = append(days, *day)
	}
	sort.Slice(days, func(i, j int) bool {
		return days[i].Date < days[j].Date
	})

	return days
}

// ParseForecastSamples extracts samples from a raw forecast body
// ({"list": [{"dt_txt": ..., "main": {"temp": ...}}]}). Entries of the wrong
// shape become samples with no temperature so the aggregator skips them.
func ParseForecastSamples(payload json.RawMessage) ([]ForecastSample, error) {
	root, err := decodeObject(payload)
	if err != nil {
		return nil, err
	}

	list, _ := root["list"].([]interface{})
	samples := make([]ForecastSample, 0, len(list))
	for _, entry := range list {
		item, _ := entry.(map[string]interface{})
		sample := ForecastSample{Timestamp: stringAt(item, "dt_txt", "")}
		if temp, ok := numberAt(objectAt(item, "main"), "temp"); ok {
			sample.Temperature = &temp
		}
		samples = append(samples, sample)
	}

	return samples, nil
}

// AggregateForecastPayload parses and aggregates a raw forecast body. A missing
// or malformed body yields an empty result, which callers treat as "forecast unavailable".
func AggregateForecastPayload(payload json.RawMessage) []ForecastDay {
	if len(payload) == 0 {
		return []ForecastDay{}
	}
	samples, err := ParseForecastSamples(payload)
	if err != nil {
		return []ForecastDay{}
	}
	return AggregateForecast(samples)
}

// TruncateDays keeps at most n leading days of an aggregated forecast
func TruncateDays(days []ForecastDay, n int) []ForecastDay {
	if n < 0 {
		n = 0
	}
	if len(days) <= n {
		return days
	}
	return days[:n]
}
