package weather

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	mocks "weatherdash.app/internal/mocks"
	"weatherdash.app/pkg/errors"
)

const parisForecast = `{"list": [
	{"dt_txt": "2024-01-01 00:00:00", "main": {"temp": 10}},
	{"dt_txt": "2024-01-01 03:00:00", "main": {"temp": 12}},
	{"dt_txt": "2024-01-02 00:00:00", "main": {"temp": 8}},
	{"dt_txt": "2024-01-03 00:00:00", "main": {"temp": 7}}
]}`

const parisCurrent = `{
	"name": "Paris",
	"sys": {"country": "FR"},
	"main": {"temp": 11.3, "feels_like": 10.2, "humidity": 80, "pressure": 1009},
	"wind": {"speed": 3.1},
	"weather": [{"main": "Rain", "description": "light rain"}]
}`

func newTestUseCase(t *testing.T, client *mocks.WeatherClient, days int) *UseCase {
	t.Helper()

	fixed := time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)
	uc, err := NewUseCase(UseCaseDependencies{
		WeatherClient: client,
		Logger:        mocks.AllowAnyLogs(mocks.NewLogger(t)),
		ForecastDays:  days,
		Clock:         func() time.Time { return fixed },
	})
	require.NoError(t, err)
	return uc
}

func TestNewUseCase_MissingDependencies(t *testing.T) {
	tests := []struct {
		name string
		deps UseCaseDependencies
	}{
		{name: "no client", deps: UseCaseDependencies{Logger: mocks.NewLogger(t)}},
		{name: "no logger", deps: UseCaseDependencies{WeatherClient: mocks.NewWeatherClient(t)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc, err := NewUseCase(tt.deps)
			assert.Nil(t, uc)
			assert.True(t, errors.IsValidationError(err))
		})
	}
}

func TestNewUseCase_DefaultForecastDays(t *testing.T) {
	uc := newTestUseCase(t, mocks.NewWeatherClient(t), 0)
	assert.Equal(t, DefaultForecastDays, uc.ForecastDays())
}

func TestUseCase_Search_Success(t *testing.T) {
	client := mocks.NewWeatherClient(t)
	client.EXPECT().FetchCurrent(mock.Anything, "Paris").Return(json.RawMessage(parisCurrent), nil)
	client.EXPECT().FetchForecast(mock.Anything, "Paris").Return(json.RawMessage(parisForecast), nil)

	uc := newTestUseCase(t, client, 7)

	dashboard, err := uc.Search(context.Background(), SearchRequest{City: "  Paris  "})
	require.NoError(t, err)
	require.NotNil(t, dashboard)

	assert.Equal(t, "Paris", dashboard.Snapshot.City)
	assert.Equal(t, "FR", dashboard.Snapshot.Country)
	assert.Equal(t, "🌧️", dashboard.Snapshot.Icon())
	assert.Equal(t, "Light Rain", dashboard.Snapshot.Description)
	assert.Equal(t, time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC), dashboard.Snapshot.FetchedAt)
	assert.True(t, dashboard.ForecastAvailable)
	assert.Equal(t, []ForecastDay{
		{Date: "2024-01-01", Min: 10, Max: 12},
		{Date: "2024-01-02", Min: 8, Max: 8},
		{Date: "2024-01-03", Min: 7, Max: 7},
	}, dashboard.Days)
	assert.Equal(t, "Loaded data for Paris, FR", dashboard.Status)
}

func TestUseCase_Search_TruncatesForecastWindow(t *testing.T) {
	client := mocks.NewWeatherClient(t)
	client.EXPECT().FetchCurrent(mock.Anything, "Paris").Return(json.RawMessage(parisCurrent), nil)
	client.EXPECT().FetchForecast(mock.Anything, "Paris").Return(json.RawMessage(parisForecast), nil)

	uc := newTestUseCase(t, client, 2)

	dashboard, err := uc.Search(context.Background(), SearchRequest{City: "Paris"})
	require.NoError(t, err)
	assert.Len(t, dashboard.Days, 2)
	assert.Equal(t, "2024-01-02", dashboard.Days[1].Date)
}

func TestUseCase_Search_EmptyForecast(t *testing.T) {
	client := mocks.NewWeatherClient(t)
	client.EXPECT().FetchCurrent(mock.Anything, "Paris").Return(json.RawMessage(parisCurrent), nil)
	client.EXPECT().FetchForecast(mock.Anything, "Paris").Return(json.RawMessage(`{"list": []}`), nil)

	uc := newTestUseCase(t, client, 7)

	dashboard, err := uc.Search(context.Background(), SearchRequest{City: "Paris"})
	require.NoError(t, err)
	assert.False(t, dashboard.ForecastAvailable)
	assert.Empty(t, dashboard.Days)
}

func TestUseCase_Search_EmptyCity(t *testing.T) {
	client := mocks.NewWeatherClient(t)
	uc := newTestUseCase(t, client, 7)

	dashboard, err := uc.Search(context.Background(), SearchRequest{City: "   "})
	assert.Nil(t, dashboard)
	assert.True(t, errors.IsValidationError(err))
	client.AssertNotCalled(t, "FetchCurrent", mock.Anything, mock.Anything)
}

func TestUseCase_Search_CurrentFails(t *testing.T) {
	client := mocks.NewWeatherClient(t)
	client.EXPECT().FetchCurrent(mock.Anything, "Atlantis").Return(nil, errors.NewHTTPError(404, "city not found"))

	uc := newTestUseCase(t, client, 7)

	dashboard, err := uc.Search(context.Background(), SearchRequest{City: "Atlantis"})
	assert.Nil(t, dashboard)
	require.Error(t, err)
	assert.True(t, errors.IsNotFoundError(err))
	assert.Contains(t, err.Error(), "Atlantis")
	client.AssertNotCalled(t, "FetchForecast", mock.Anything, mock.Anything)
}

func TestUseCase_Search_ForecastFails(t *testing.T) {
	client := mocks.NewWeatherClient(t)
	client.EXPECT().FetchCurrent(mock.Anything, "Paris").Return(json.RawMessage(parisCurrent), nil)
	client.EXPECT().FetchForecast(mock.Anything, "Paris").Return(nil, errors.NewNetworkError("timeout", nil))

	uc := newTestUseCase(t, client, 7)

	dashboard, err := uc.Search(context.Background(), SearchRequest{City: "Paris"})
	assert.Nil(t, dashboard)
	assert.True(t, errors.IsNetworkError(err))
}

func TestUseCase_Search_MalformedCurrent(t *testing.T) {
	client := mocks.NewWeatherClient(t)
	client.EXPECT().FetchCurrent(mock.Anything, "Paris").Return(json.RawMessage(`[]`), nil)
	client.EXPECT().FetchForecast(mock.Anything, "Paris").Return(json.RawMessage(parisForecast), nil)

	uc := newTestUseCase(t, client, 7)

	dashboard, err := uc.Search(context.Background(), SearchRequest{City: "Paris"})
	assert.Nil(t, dashboard)
	assert.True(t, errors.IsMalformedResponseError(err))
}

func TestUseCase_ValidateCity(t *testing.T) {
	client := mocks.NewWeatherClient(t)
	client.EXPECT().IsValidCity(mock.Anything, "Paris").Return(true)
	client.EXPECT().IsValidCity(mock.Anything, "Atlantis").Return(false)

	uc := newTestUseCase(t, client, 7)

	assert.True(t, uc.ValidateCity(context.Background(), "Paris"))
	assert.False(t, uc.ValidateCity(context.Background(), "Atlantis"))
}
