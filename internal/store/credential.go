package store

import (
	"context"
	"errors"

	"moneystats/internal/domain"

	"gorm.io/gorm" // GORM ORM library
)

// GormCredentialStore is the MySQL-backed CredentialStore.
type GormCredentialStore struct {
	db *gorm.DB
}

// NewGormCredentialStore returns a CredentialStore backed by db.
func NewGormCredentialStore(db *gorm.DB) *GormCredentialStore {
	return &GormCredentialStore{db: db}
}

func (s *GormCredentialStore) FindByUsername(ctx context.Context, username string) (*domain.User, error) {
	var user domain.User
	err := s.db.WithContext(ctx).Where("username = ?", username).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil // No matching record
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *GormCredentialStore) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	var user domain.User
	err := s.db.WithContext(ctx).Where("email = ?", email).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil // No matching record
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *GormCredentialStore) Insert(ctx context.Context, user *domain.User) error {
	return s.db.WithContext(ctx).Create(user).Error
}

func (s *GormCredentialStore) Update(ctx context.Context, user *domain.User) error {
	return s.db.WithContext(ctx).Save(user).Error
}

func (s *GormCredentialStore) UpdatePassword(ctx context.Context, username, hash string) error {
	return s.db.WithContext(ctx).Model(&domain.User{}).
		Where("username = ?", username).
		Update("password", hash).Error
}

func (s *GormCredentialStore) List(ctx context.Context) ([]domain.User, error) {
	var users []domain.User
	if err := s.db.WithContext(ctx).Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}
