// Package store defines the persistence contracts the services depend on,
// together with their GORM implementations. Services only ever see the
// interfaces, so tests swap in in-memory fakes.
package store

import (
	"context"

	"moneystats/internal/domain"
)

// CredentialStore holds user records. Lookups return (nil, nil) when no
// record matches.
type CredentialStore interface {
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	Insert(ctx context.Context, user *domain.User) error
	Update(ctx context.Context, user *domain.User) error
	UpdatePassword(ctx context.Context, username, hash string) error
	List(ctx context.Context) ([]domain.User, error)
}

// CategoryStore reads the pre-seeded wallet categories.
type CategoryStore interface {
	FindByID(ctx context.Context, id uint) (*domain.Category, error)
	FindAll(ctx context.Context) ([]domain.Category, error)
}

// WalletStore persists wallets.
type WalletStore interface {
	FindByID(ctx context.Context, id uint) (*domain.Wallet, error)
	FindAllByUserID(ctx context.Context, userID uint) ([]domain.Wallet, error)
	Save(ctx context.Context, wallet *domain.Wallet) error
	DeleteByID(ctx context.Context, id uint) error
}

// StatementStore persists statements. Statements are append-only.
type StatementStore interface {
	Save(ctx context.Context, statement *domain.Statement) error
	// DistinctDates returns the unique statement dates recorded for the
	// user, newest first. Descending order is part of the contract:
	// dashboard assembly takes the first element as the latest date.
	DistinctDates(ctx context.Context, userID uint) ([]string, error)
	// FindByUserIDAndDate returns the user's statements on the given
	// canonical date, ordered by wallet id ascending.
	FindByUserIDAndDate(ctx context.Context, userID uint, date string) ([]domain.Statement, error)
	FindByWalletID(ctx context.Context, walletID uint) ([]domain.Statement, error)
}
