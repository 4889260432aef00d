package ports

import "context"

// FavoritesStorage persists the ordered favorites list as a whole.
// Load on an absent store returns an empty list and no error.
type FavoritesStorage interface {
	Load(ctx context.Context) ([]string, error)
	Save(ctx context.Context, cities []string) error
	GetStorageName() string
}
