package favorites

import (
	"context"
	"strings"
	"sync"

	"weatherdash.app/internal/ports"
	"weatherdash.app/pkg/errors"
)

// UseCase maintains the ordered favorites list. Every operation reads the
// stored list and every successful mutation writes the whole list back.
type UseCase struct {
	storage ports.FavoritesStorage
	logger  ports.Logger
	metrics ports.MetricsCollector

	mu sync.Mutex
}

type UseCaseDependencies struct {
	Storage ports.FavoritesStorage
	Logger  ports.Logger
	Metrics ports.MetricsCollector
}

func NewUseCase(deps UseCaseDependencies) (*UseCase, error) {
	if deps.Storage == nil {
		return nil, errors.NewValidationError("favorites storage is required")
	}
	if deps.Logger == nil {
		return nil, errors.NewValidationError("logger is required")
	}

	return &UseCase{
		storage: deps.Storage,
		logger:  deps.Logger,
		metrics: deps.Metrics,
	}, nil
}

// List returns the stored favorites in insertion order
func (uc *UseCase) List(ctx context.Context) []string {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	return uc.load(ctx)
}

// Add trims the city and stores it if the validator accepts it. An empty
// city is Invalid without consulting the validator, and so is any city when
// no validator is given; neither touches storage. A rejected city goes
// through ReconcileOnAdd.
func (uc *UseCase) Add(ctx context.Context, city string, validator ports.CityValidator) AddResult {
	city = strings.TrimSpace(city)
	if city == "" {
		uc.record(ctx, ActionAdd, Invalid.String())
		return Invalid
	}

	if validator == nil {
		uc.logger.Warn("Favorite add without a city validator", ports.F("city", city))
		uc.record(ctx, ActionAdd, Invalid.String())
		return Invalid
	}
	if !validator(ctx, city) {
		return uc.ReconcileOnAdd(ctx, city)
	}

	uc.mu.Lock()
	defer uc.mu.Unlock()

	cities := uc.load(ctx)
	if indexOf(cities, city) >= 0 {
		uc.record(ctx, ActionAdd, AlreadyExists.String())
		return AlreadyExists
	}

	cities = append(cities, city)
	uc.save(ctx, cities)
	uc.logger.Info("Favorite added", ports.F("city", city), ports.F("count", len(cities)))
	uc.record(ctx, ActionAdd, Added.String())
	return Added
}

// ReconcileOnAdd handles a city that failed validation during Add: an existing
// entry is dropped and reported as InvalidAndRemoved, otherwise the result is Invalid.
func (uc *UseCase) ReconcileOnAdd(ctx context.Context, city string) AddResult {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	cities := uc.load(ctx)
	i := indexOf(cities, city)
	if i < 0 {
		uc.logger.Debug("Rejected invalid favorite", ports.F("city", city))
		uc.record(ctx, ActionAdd, Invalid.String())
		return Invalid
	}

	uc.save(ctx, without(cities, i))
	uc.logger.Warn("Removed favorite that no longer validates", ports.F("city", city))
	uc.record(ctx, ActionAdd, InvalidAndRemoved.String())
	return InvalidAndRemoved
}

// Remove deletes the exact entry and reports whether it was present. A miss
// leaves storage untouched.
func (uc *UseCase) Remove(ctx context.Context, city string) bool {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	cities := uc.load(ctx)
	i := indexOf(cities, city)
	if i < 0 {
		uc.record(ctx, ActionRemove, "missing")
		return false
	}

	uc.save(ctx, without(cities, i))
	uc.logger.Info("Favorite removed", ports.F("city", city))
	uc.record(ctx, ActionRemove, "removed")
	return true
}

// StorageName identifies the backing store, for health reporting
func (uc *UseCase) StorageName() string {
	return uc.storage.GetStorageName()
}

// Ping verifies the backing store can be read
func (uc *UseCase) Ping(ctx context.Context) error {
	_, err := uc.storage.Load(ctx)
	return err
}

func (uc *UseCase) load(ctx context.Context) []string {
	cities, err := uc.storage.Load(ctx)
	if err != nil {
		uc.logger.Warn("Failed to load favorites, using empty list",
			ports.F("storage", uc.storage.GetStorageName()),
			ports.F("error", err))
		return []string{}
	}
	if cities == nil {
		return []string{}
	}
	return cities
}

func (uc *UseCase) save(ctx context.Context, cities []string) {
	if err := uc.storage.Save(ctx, cities); err != nil {
		uc.logger.Error("Failed to persist favorites",
			ports.F("storage", uc.storage.GetStorageName()),
			ports.F("count", len(cities)),
			ports.F("error", err))
	}
}

func (uc *UseCase) record(ctx context.Context, action, result string) {
	if uc.metrics != nil {
		uc.metrics.RecordFavoritesMutation(ctx, action, result)
	}
}
