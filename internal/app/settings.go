package app

import (
	"context"

	"weatherdash.app/internal/adapters/external"
	"weatherdash.app/internal/config"
	"weatherdash.app/internal/ports"
)

// apiKeyReloader swaps the provider key for the one currently in the
// environment, so a key added after startup takes effect without a restart
type apiKeyReloader struct {
	provider *external.OpenWeatherMapClient
	logger   ports.Logger
}

func newAPIKeyReloader(provider *external.OpenWeatherMapClient, logger ports.Logger) *apiKeyReloader {
	return &apiKeyReloader{provider: provider, logger: logger}
}

func (r *apiKeyReloader) ReloadAPIKey(ctx context.Context) (bool, error) {
	weatherCfg, err := config.LoadWeatherConfig()
	if err != nil {
		return r.provider.HasAPIKey(), err
	}

	had := r.provider.HasAPIKey()
	r.provider.SetAPIKey(weatherCfg.APIKey)
	has := r.provider.HasAPIKey()

	if had != has {
		r.logger.Info("Weather API key changed", ports.F("api_key_configured", has))
	}
	return has, nil
}
