package store

import (
	"context"
	"errors"

	"moneystats/internal/domain"

	"gorm.io/gorm" // GORM ORM library
)

// GormWalletStore is the MySQL-backed WalletStore.
type GormWalletStore struct {
	db *gorm.DB
}

// NewGormWalletStore returns a WalletStore backed by db.
func NewGormWalletStore(db *gorm.DB) *GormWalletStore {
	return &GormWalletStore{db: db}
}

func (s *GormWalletStore) FindByID(ctx context.Context, id uint) (*domain.Wallet, error) {
	var wallet domain.Wallet
	err := s.db.WithContext(ctx).Preload("Category").First(&wallet, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil // No matching record
	}
	if err != nil {
		return nil, err
	}
	return &wallet, nil
}

func (s *GormWalletStore) FindAllByUserID(ctx context.Context, userID uint) ([]domain.Wallet, error) {
	var wallets []domain.Wallet
	err := s.db.WithContext(ctx).Preload("Category").
		Where("user_id = ?", userID).
		Order("id asc").
		Find(&wallets).Error
	if err != nil {
		return nil, err
	}
	return wallets, nil
}

// Save inserts the wallet when it has no id yet, updates it otherwise.
func (s *GormWalletStore) Save(ctx context.Context, wallet *domain.Wallet) error {
	return s.db.WithContext(ctx).Save(wallet).Error
}

func (s *GormWalletStore) DeleteByID(ctx context.Context, id uint) error {
	return s.db.WithContext(ctx).Delete(&domain.Wallet{}, id).Error
}
