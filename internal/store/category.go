package store

import (
	"context"
	"errors"

	"moneystats/internal/domain"

	"gorm.io/gorm" // GORM ORM library
)

// GormCategoryStore is the MySQL-backed CategoryStore.
type GormCategoryStore struct {
	db *gorm.DB
}

// NewGormCategoryStore returns a CategoryStore backed by db.
func NewGormCategoryStore(db *gorm.DB) *GormCategoryStore {
	return &GormCategoryStore{db: db}
}

func (s *GormCategoryStore) FindByID(ctx context.Context, id uint) (*domain.Category, error) {
	var category domain.Category
	err := s.db.WithContext(ctx).First(&category, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil // No matching record
	}
	if err != nil {
		return nil, err
	}
	return &category, nil
}

func (s *GormCategoryStore) FindAll(ctx context.Context) ([]domain.Category, error) {
	var categories []domain.Category
	if err := s.db.WithContext(ctx).Order("id asc").Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}
