package statement

import (
	"context"
	"io"
	"testing"

	"moneystats/internal/apperr"
	"moneystats/internal/auth"
	"moneystats/internal/domain"
	"moneystats/internal/token"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const wellFormedToken = "header.payload.signature"

type stubParser struct {
	identity *token.Identity
}

func (s stubParser) Parse(string) (*token.Identity, error) { return s.identity, nil }

type stubCreds struct {
	user *domain.User
}

func (s stubCreds) FindByUsername(context.Context, string) (*domain.User, error) {
	return s.user, nil
}
func (s stubCreds) FindByEmail(context.Context, string) (*domain.User, error) { return nil, nil }
func (s stubCreds) Insert(context.Context, *domain.User) error                { return nil }
func (s stubCreds) Update(context.Context, *domain.User) error                { return nil }
func (s stubCreds) UpdatePassword(context.Context, string, string) error      { return nil }
func (s stubCreds) List(context.Context) ([]domain.User, error)               { return nil, nil }

type stubWallets struct {
	wallets map[uint]domain.Wallet
}

func (s stubWallets) FindByID(_ context.Context, id uint) (*domain.Wallet, error) {
	if w, ok := s.wallets[id]; ok {
		return &w, nil
	}
	return nil, nil
}
func (s stubWallets) FindAllByUserID(context.Context, uint) ([]domain.Wallet, error) {
	return nil, nil
}
func (s stubWallets) Save(context.Context, *domain.Wallet) error { return nil }
func (s stubWallets) DeleteByID(context.Context, uint) error     { return nil }

type recordingStatements struct {
	saved  []domain.Statement
	dates  []string
	byDate map[string][]domain.Statement
}

func (r *recordingStatements) Save(_ context.Context, statement *domain.Statement) error {
	r.saved = append(r.saved, *statement)
	return nil
}

func (r *recordingStatements) DistinctDates(context.Context, uint) ([]string, error) {
	return r.dates, nil
}

func (r *recordingStatements) FindByUserIDAndDate(_ context.Context, _ uint, date string) ([]domain.Statement, error) {
	return r.byDate[date], nil
}

func (r *recordingStatements) FindByWalletID(context.Context, uint) ([]domain.Statement, error) {
	return nil, nil
}

func newTestService(user *domain.User, wallets map[uint]domain.Wallet) (*Service, *recordingStatements) {
	log := logrus.New()
	log.SetOutput(io.Discard)
	identity := &token.Identity{}
	if user != nil {
		identity.Username = user.Username
		identity.Role = user.Role
	}
	guard := auth.NewGuard(stubParser{identity: identity}, stubCreds{user: user}, log)
	statements := &recordingStatements{byDate: map[string][]domain.Statement{}}
	return NewService(guard, stubWallets{wallets: wallets}, statements, log), statements
}

func alice() *domain.User {
	return &domain.User{ID: 1, Username: "alice", Role: domain.RoleUser}
}

func value(v float64) *float64 { return &v }

func TestReformatDate(t *testing.T) {
	assert.Equal(t, "2021-07-21", ReformatDate("21-07-2021"))
	// The transform is its own inverse.
	assert.Equal(t, "21-07-2021", ReformatDate(ReformatDate("21-07-2021")))
}

func TestAdd_PersistsCanonicalDateAndSessionOwner(t *testing.T) {
	svc, statements := newTestService(alice(), map[uint]domain.Wallet{
		3: {ID: 3, Name: "Main", UserID: 1, CategoryID: 1},
	})

	err := svc.Add(context.Background(), wellFormedToken, AddInput{Value: value(420.5), Date: "21-07-2021", WalletID: 3})
	require.NoError(t, err)
	require.Len(t, statements.saved, 1)

	saved := statements.saved[0]
	assert.Equal(t, "2021-07-21", saved.Date, "date must be stored in canonical form")
	assert.Equal(t, uint(1), saved.UserID, "owner must come from the session")
	assert.Equal(t, uint(3), saved.WalletID)
	assert.Equal(t, 420.5, saved.Value)
}

func TestAdd_ZeroValueIsValid(t *testing.T) {
	svc, statements := newTestService(alice(), map[uint]domain.Wallet{
		3: {ID: 3, UserID: 1},
	})

	err := svc.Add(context.Background(), wellFormedToken, AddInput{Value: value(0), Date: "01-01-2021", WalletID: 3})
	require.NoError(t, err)
	require.Len(t, statements.saved, 1)
	assert.Equal(t, 0.0, statements.saved[0].Value)
}

func TestAdd_InvalidInputHasNoSideEffects(t *testing.T) {
	cases := map[string]AddInput{
		"missing value":  {Date: "21-07-2021", WalletID: 3},
		"missing wallet": {Value: value(10), Date: "21-07-2021"},
		"bad date":       {Value: value(10), Date: "2021-07-21T00:00", WalletID: 3},
		"iso date":       {Value: value(10), Date: "2021-07-21", WalletID: 3},
	}
	for name, in := range cases {
		t.Run(name, func(t *testing.T) {
			svc, statements := newTestService(alice(), map[uint]domain.Wallet{
				3: {ID: 3, UserID: 1},
			})
			err := svc.Add(context.Background(), wellFormedToken, in)
			require.Error(t, err)
			assert.Equal(t, apperr.CodeInvalidStatementInput, apperr.CodeOf(err))
			assert.Empty(t, statements.saved)
		})
	}
}

func TestAdd_UnknownWallet(t *testing.T) {
	svc, statements := newTestService(alice(), map[uint]domain.Wallet{})

	err := svc.Add(context.Background(), wellFormedToken, AddInput{Value: value(10), Date: "21-07-2021", WalletID: 9})
	assert.Equal(t, apperr.CodeWalletNotFound, apperr.CodeOf(err))
	assert.Empty(t, statements.saved)
}

func TestAdd_ForeignWalletLooksAbsent(t *testing.T) {
	svc, statements := newTestService(alice(), map[uint]domain.Wallet{
		9: {ID: 9, UserID: 77},
	})

	err := svc.Add(context.Background(), wellFormedToken, AddInput{Value: value(10), Date: "21-07-2021", WalletID: 9})
	assert.Equal(t, apperr.CodeWalletNotFound, apperr.CodeOf(err))
	assert.Empty(t, statements.saved)
}

func TestListDates_EmptyIsAnError(t *testing.T) {
	svc, _ := newTestService(alice(), nil)

	_, err := svc.ListDates(context.Background(), wellFormedToken)
	assert.Equal(t, apperr.CodeListStatementDateNotFound, apperr.CodeOf(err))
}

func TestListDates_NewestFirstPassthrough(t *testing.T) {
	svc, statements := newTestService(alice(), nil)
	statements.dates = []string{"2021-07-21", "2021-01-01"}

	dates, err := svc.ListDates(context.Background(), wellFormedToken)
	require.NoError(t, err)
	assert.Equal(t, []string{"2021-07-21", "2021-01-01"}, dates)
}

func TestListByDate_EmptyIsAnError(t *testing.T) {
	svc, _ := newTestService(alice(), nil)

	_, err := svc.ListByDate(context.Background(), wellFormedToken, "2021-01-01")
	assert.Equal(t, apperr.CodeStatementNotFound, apperr.CodeOf(err))
}

func TestListByDate_ReturnsStatements(t *testing.T) {
	svc, statements := newTestService(alice(), nil)
	statements.byDate["2021-01-01"] = []domain.Statement{
		{ID: 1, Date: "2021-01-01", Value: 10, UserID: 1, WalletID: 1},
		{ID: 2, Date: "2021-01-01", Value: 20, UserID: 1, WalletID: 2},
	}

	got, err := svc.ListByDate(context.Background(), wellFormedToken, "2021-01-01")
	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestOperations_RequireToken(t *testing.T) {
	svc, _ := newTestService(alice(), nil)

	err := svc.Add(context.Background(), "", AddInput{Value: value(10), Date: "21-07-2021", WalletID: 1})
	assert.Equal(t, apperr.CodeTokenRequired, apperr.CodeOf(err))

	_, err = svc.ListDates(context.Background(), "")
	assert.Equal(t, apperr.CodeTokenRequired, apperr.CodeOf(err))

	_, err = svc.ListByDate(context.Background(), "", "2021-01-01")
	assert.Equal(t, apperr.CodeTokenRequired, apperr.CodeOf(err))
}
