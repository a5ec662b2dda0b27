package store

import (
	"context"

	"moneystats/internal/domain"

	"gorm.io/gorm" // GORM ORM library
)

// GormStatementStore is the MySQL-backed StatementStore.
type GormStatementStore struct {
	db *gorm.DB
}

// NewGormStatementStore returns a StatementStore backed by db.
func NewGormStatementStore(db *gorm.DB) *GormStatementStore {
	return &GormStatementStore{db: db}
}

func (s *GormStatementStore) Save(ctx context.Context, statement *domain.Statement) error {
	return s.db.WithContext(ctx).Create(statement).Error
}

// DistinctDates returns the user's unique statement dates newest first.
// Dates are stored as YYYY-MM-DD strings, so ordering by the column gives
// chronological order.
func (s *GormStatementStore) DistinctDates(ctx context.Context, userID uint) ([]string, error) {
	var dates []string
	err := s.db.WithContext(ctx).Model(&domain.Statement{}).
		Where("user_id = ?", userID).
		Distinct("date").
		Order("date desc").
		Pluck("date", &dates).Error
	if err != nil {
		return nil, err
	}
	return dates, nil
}

func (s *GormStatementStore) FindByUserIDAndDate(ctx context.Context, userID uint, date string) ([]domain.Statement, error) {
	var statements []domain.Statement
	err := s.db.WithContext(ctx).
		Where("user_id = ? AND date = ?", userID, date).
		Order("wallet_id asc").
		Find(&statements).Error
	if err != nil {
		return nil, err
	}
	return statements, nil
}

func (s *GormStatementStore) FindByWalletID(ctx context.Context, walletID uint) ([]domain.Statement, error) {
	var statements []domain.Statement
	err := s.db.WithContext(ctx).
		Where("wallet_id = ?", walletID).
		Order("date asc").
		Find(&statements).Error
	if err != nil {
		return nil, err
	}
	return statements, nil
}
