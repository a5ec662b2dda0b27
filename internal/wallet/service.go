// Package wallet owns wallet lifecycle operations and the dashboard
// assembly that pairs a user's wallets with their latest statements.
package wallet

import (
	"context"
	"strings"

	"moneystats/internal/apperr"
	"moneystats/internal/auth"
	"moneystats/internal/domain"
	"moneystats/internal/store"

	"github.com/sirupsen/logrus" // Logging library
)

// AddInput is the payload for creating a wallet.
type AddInput struct {
	Name       string // Wallet name, non-blank
	CategoryID uint   // Category the wallet belongs to
}

// EditInput is the payload for renaming/recategorizing a wallet.
type EditInput struct {
	WalletID   uint   // Target wallet
	Name       string // New name, non-blank
	CategoryID uint   // New category
}

// Dashboard pairs the user's full wallet list with the statements of the
// most recent recorded date: current balances across all wallets. It is
// rebuilt on every call, never cached.
type Dashboard struct {
	Wallets    []domain.Wallet    `json:"wallets"`    // All wallets owned by the user
	Statements []domain.Statement `json:"statements"` // Statements on the latest date, by wallet id
}

// Service implements the wallet operations. Every public method resolves
// the caller through the guard before touching any store.
type Service struct {
	guard      *auth.Guard          // Authorization checkpoint
	wallets    store.WalletStore    // Wallet persistence
	categories store.CategoryStore  // Category reference data
	statements store.StatementStore // Statement queries
	log        logrus.FieldLogger   // Injected logger
}

// NewService wires the wallet service from its collaborators.
func NewService(guard *auth.Guard, wallets store.WalletStore, categories store.CategoryStore, statements store.StatementStore, log logrus.FieldLogger) *Service {
	return &Service{guard: guard, wallets: wallets, categories: categories, statements: statements, log: log}
}

// List returns all wallets owned by the caller. An empty result is an
// error, not an empty list: WALLET_NOT_FOUND.
func (s *Service) List(ctx context.Context, accessToken string) ([]domain.Wallet, error) {
	user, err := s.guard.Resolve(ctx, accessToken)
	if err != nil {
		return nil, err
	}
	wallets, err := s.wallets.FindAllByUserID(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	if len(wallets) == 0 {
		return nil, apperr.New(apperr.CodeWalletNotFound, "no wallets for user")
	}
	return wallets, nil
}

// Add creates a wallet owned by the caller. Input shape is validated
// before any store call, so an invalid request has no side effects.
func (s *Service) Add(ctx context.Context, accessToken string, in AddInput) error {
	if strings.TrimSpace(in.Name) == "" || in.CategoryID == 0 {
		return apperr.New(apperr.CodeInvalidWalletInput, "wallet name and category are required")
	}
	user, err := s.guard.Resolve(ctx, accessToken)
	if err != nil {
		return err
	}
	category, err := s.categories.FindByID(ctx, in.CategoryID)
	if err != nil {
		return err
	}
	if category == nil {
		return apperr.New(apperr.CodeCategoryNotFound, "category not found")
	}
	wallet := domain.Wallet{
		Name:       in.Name,
		UserID:     user.ID, // Owner comes from the session, never the request
		CategoryID: category.ID,
	}
	if err := s.wallets.Save(ctx, &wallet); err != nil {
		return err
	}
	s.log.WithFields(logrus.Fields{
		"user_id":   user.ID,
		"wallet_id": wallet.ID,
		"category":  category.Name,
	}).Info("Wallet created")
	return nil
}

// Edit renames and recategorizes one of the caller's wallets. A wallet id
// that is absent or owned by someone else fails with WALLET_NOT_FOUND
// either way, so foreign ids are indistinguishable from missing ones.
func (s *Service) Edit(ctx context.Context, accessToken string, in EditInput) error {
	if strings.TrimSpace(in.Name) == "" || in.WalletID == 0 || in.CategoryID == 0 {
		return apperr.New(apperr.CodeInvalidWalletInput, "wallet id, name and category are required")
	}
	user, err := s.guard.Resolve(ctx, accessToken)
	if err != nil {
		return err
	}
	wallet, err := s.ownedWallet(ctx, user, in.WalletID)
	if err != nil {
		return err
	}
	category, err := s.categories.FindByID(ctx, in.CategoryID)
	if err != nil {
		return err
	}
	if category == nil {
		return apperr.New(apperr.CodeCategoryNotFound, "category not found")
	}
	wallet.Name = in.Name
	wallet.CategoryID = category.ID
	wallet.Category = *category
	if err := s.wallets.Save(ctx, wallet); err != nil {
		return err
	}
	s.log.WithFields(logrus.Fields{"user_id": user.ID, "wallet_id": wallet.ID}).Info("Wallet updated")
	return nil
}

// Delete removes one of the caller's wallets. Deletion is blocked while
// the wallet still has statements: they are append-only history and must
// not disappear with a cascade.
func (s *Service) Delete(ctx context.Context, accessToken string, walletID uint) error {
	user, err := s.guard.Resolve(ctx, accessToken)
	if err != nil {
		return err
	}
	wallet, err := s.ownedWallet(ctx, user, walletID)
	if err != nil {
		return err
	}
	statements, err := s.statements.FindByWalletID(ctx, wallet.ID)
	if err != nil {
		return err
	}
	if len(statements) > 0 {
		return apperr.New(apperr.CodeWalletHasStatements, "wallet has recorded statements")
	}
	if err := s.wallets.DeleteByID(ctx, wallet.ID); err != nil {
		return err
	}
	s.log.WithFields(logrus.Fields{"user_id": user.ID, "wallet_id": wallet.ID}).Info("Wallet deleted")
	return nil
}

// GetByID fetches a single wallet by id.
func (s *Service) GetByID(ctx context.Context, accessToken string, walletID uint) (*domain.Wallet, error) {
	if _, err := s.guard.Resolve(ctx, accessToken); err != nil {
		return nil, err
	}
	wallet, err := s.wallets.FindByID(ctx, walletID)
	if err != nil {
		return nil, err
	}
	if wallet == nil {
		return nil, apperr.New(apperr.CodeWalletNotFound, "wallet not found")
	}
	return wallet, nil
}

// GetDashboard assembles the caller's wallets with the statements of the
// most recent recorded date. Three independent failure points, each with
// its own kind: no recorded dates, no wallets, no statements on the
// latest date.
func (s *Service) GetDashboard(ctx context.Context, accessToken string) (*Dashboard, error) {
	user, err := s.guard.Resolve(ctx, accessToken)
	if err != nil {
		return nil, err
	}
	dates, err := s.statements.DistinctDates(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	if len(dates) == 0 {
		return nil, apperr.New(apperr.CodeListStatementDateNotFound, "no statement dates for user")
	}
	wallets, err := s.wallets.FindAllByUserID(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	if len(wallets) == 0 {
		return nil, apperr.New(apperr.CodeWalletNotFound, "no wallets for user")
	}
	// DistinctDates guarantees descending order, so the first element is
	// the latest recorded date.
	latest := dates[0]
	statements, err := s.statements.FindByUserIDAndDate(ctx, user.ID, latest)
	if err != nil {
		return nil, err
	}
	if len(statements) == 0 {
		return nil, apperr.New(apperr.CodeStatementNotFound, "no statements on latest date")
	}
	return &Dashboard{Wallets: wallets, Statements: statements}, nil
}

// ownedWallet resolves a wallet id and checks it belongs to user.
func (s *Service) ownedWallet(ctx context.Context, user *domain.User, walletID uint) (*domain.Wallet, error) {
	wallet, err := s.wallets.FindByID(ctx, walletID)
	if err != nil {
		return nil, err
	}
	if wallet == nil || wallet.UserID != user.ID {
		return nil, apperr.New(apperr.CodeWalletNotFound, "wallet not found")
	}
	return wallet, nil
}
