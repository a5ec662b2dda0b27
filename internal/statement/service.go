// Package statement records dated balance snapshots and serves the
// date-partitioned queries the dashboard is built from.
package statement

import (
	"context"
	"regexp"
	"strings"

	"moneystats/internal/apperr"
	"moneystats/internal/auth"
	"moneystats/internal/domain"
	"moneystats/internal/store"

	"github.com/sirupsen/logrus" // Logging library
)

// Input dates arrive as DD-MM-YYYY and are stored as YYYY-MM-DD.
var inputDateRe = regexp.MustCompile(`^\d{2}-\d{2}-\d{4}$`)

// AddInput is the payload for recording a statement.
type AddInput struct {
	Value    *float64 // Balance value; pointer so zero is distinguishable from missing
	Date     string   // Calendar day in DD-MM-YYYY form
	WalletID uint     // Wallet the snapshot belongs to
}

// Service implements the statement operations. Every public method
// resolves the caller through the guard before touching any store.
type Service struct {
	guard      *auth.Guard          // Authorization checkpoint
	wallets    store.WalletStore    // Wallet resolution
	statements store.StatementStore // Statement persistence
	log        logrus.FieldLogger   // Injected logger
}

// NewService wires the statement service from its collaborators.
func NewService(guard *auth.Guard, wallets store.WalletStore, statements store.StatementStore, log logrus.FieldLogger) *Service {
	return &Service{guard: guard, wallets: wallets, statements: statements, log: log}
}

// Add records a statement for one of the caller's wallets. Input shape is
// validated before any store call; the owning user is taken from the
// session, never from the request, so a statement's user always equals
// its wallet's user.
func (s *Service) Add(ctx context.Context, accessToken string, in AddInput) error {
	if in.Value == nil || in.WalletID == 0 || !inputDateRe.MatchString(in.Date) {
		return apperr.New(apperr.CodeInvalidStatementInput, "value, date (DD-MM-YYYY) and wallet id are required")
	}
	user, err := s.guard.Resolve(ctx, accessToken)
	if err != nil {
		return err
	}
	wallet, err := s.wallets.FindByID(ctx, in.WalletID)
	if err != nil {
		return err
	}
	if wallet == nil || wallet.UserID != user.ID {
		return apperr.New(apperr.CodeWalletNotFound, "wallet not found")
	}
	statement := domain.Statement{
		Date:     ReformatDate(in.Date),
		Value:    *in.Value,
		UserID:   user.ID, // Owner comes from the session
		WalletID: wallet.ID,
	}
	if err := s.statements.Save(ctx, &statement); err != nil {
		return err
	}
	s.log.WithFields(logrus.Fields{
		"user_id":   user.ID,
		"wallet_id": wallet.ID,
		"date":      statement.Date,
	}).Info("Statement recorded")
	return nil
}

// ListDates returns the caller's distinct statement dates, newest first.
func (s *Service) ListDates(ctx context.Context, accessToken string) ([]string, error) {
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
	return dates, nil
}

// ListByDate returns the caller's statements on one canonical date,
// ordered by wallet id ascending.
func (s *Service) ListByDate(ctx context.Context, accessToken, date string) ([]domain.Statement, error) {
	user, err := s.guard.Resolve(ctx, accessToken)
	if err != nil {
		return nil, err
	}
	statements, err := s.statements.FindByUserIDAndDate(ctx, user.ID, date)
	if err != nil {
		return nil, err
	}
	if len(statements) == 0 {
		return nil, apperr.New(apperr.CodeStatementNotFound, "no statements on date")
	}
	return statements, nil
}

// ReformatDate converts DD-MM-YYYY to the canonical YYYY-MM-DD form by
// reversing the segments. The transform is its own inverse.
func ReformatDate(date string) string {
	parts := strings.Split(date, "-")
	if len(parts) != 3 {
		return date
	}
	return parts[2] + "-" + parts[1] + "-" + parts[0]
}
