package database

import (
	"context"

	"gorm.io/gorm"
	"weatherdash.app/pkg/errors"
)

// FavoriteModel is one row of the ordered favorites list
type FavoriteModel struct {
	ID       uint   `gorm:"primaryKey"`
	Position int    `gorm:"index;not null"`
	City     string `gorm:"uniqueIndex;not null"`
}

func (FavoriteModel) TableName() string {
	return "favorites"
}

// FavoritesRepositoryAdapter implements the FavoritesStorage port using GORM.
// Save replaces the whole table in one transaction.
type FavoritesRepositoryAdapter struct {
	db *gorm.DB
}

func NewFavoritesRepositoryAdapter(db *gorm.DB) *FavoritesRepositoryAdapter {
	return &FavoritesRepositoryAdapter{db: db}
}

func (r *FavoritesRepositoryAdapter) Load(ctx context.Context) ([]string, error) {
	var models []FavoriteModel
	if err := r.db.WithContext(ctx).Order("position asc").Find(&models).Error; err != nil {
		return nil, errors.NewDatabaseError("failed to load favorites", err)
	}

	cities := make([]string, 0, len(models))
	for _, m := range models {
		cities = append(cities, m.City)
	}
	return cities, nil
}

func (r *FavoritesRepositoryAdapter) Save(ctx context.Context, cities []string) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&FavoriteModel{}).Error; err != nil {
			return err
		}
		if len(cities) == 0 {
			return nil
		}

		models := make([]FavoriteModel, 0, len(cities))
		for i, city := range cities {
			models = append(models, FavoriteModel{Position: i, City: city})
		}
		return tx.Create(&models).Error
	})
	if err != nil {
		return errors.NewDatabaseError("failed to save favorites", err)
	}
	return nil
}

func (r *FavoritesRepositoryAdapter) GetStorageName() string {
	return "database"
}
