package auth

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"moneystats/internal/apperr"
	"moneystats/internal/domain"
	"moneystats/internal/token"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "guard-test-secret"

// fakeCredentialStore is an in-memory CredentialStore shared by the
// guard and service tests.
type fakeCredentialStore struct {
	users      []domain.User
	insertErr  error
	lookupErr  error
	insertCall int
}

func (f *fakeCredentialStore) FindByUsername(_ context.Context, username string) (*domain.User, error) {
	if f.lookupErr != nil {
		return nil, f.lookupErr
	}
	for i := range f.users {
		if f.users[i].Username == username {
			return &f.users[i], nil
		}
	}
	return nil, nil
}

func (f *fakeCredentialStore) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	for i := range f.users {
		if f.users[i].Email == email {
			return &f.users[i], nil
		}
	}
	return nil, nil
}

func (f *fakeCredentialStore) Insert(_ context.Context, user *domain.User) error {
	f.insertCall++
	if f.insertErr != nil {
		return f.insertErr
	}
	user.ID = uint(len(f.users) + 1)
	f.users = append(f.users, *user)
	return nil
}

func (f *fakeCredentialStore) Update(_ context.Context, user *domain.User) error {
	for i := range f.users {
		if f.users[i].ID == user.ID {
			f.users[i] = *user
		}
	}
	return nil
}

func (f *fakeCredentialStore) UpdatePassword(_ context.Context, username, hash string) error {
	for i := range f.users {
		if f.users[i].Username == username {
			f.users[i].Password = hash
		}
	}
	return nil
}

func (f *fakeCredentialStore) List(_ context.Context) ([]domain.User, error) {
	return f.users, nil
}

func testLogger() logrus.FieldLogger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func newTestGuard(t *testing.T, users ...domain.User) (*Guard, *token.Service) {
	t.Helper()
	tokens := token.NewService(testSecret)
	creds := &fakeCredentialStore{users: users}
	return NewGuard(tokens, creds, testLogger()), tokens
}

func TestGuardResolve_EmptyToken(t *testing.T) {
	guard, _ := newTestGuard(t)

	for _, tok := range []string{"", "   ", "\t"} {
		_, err := guard.Resolve(context.Background(), tok)
		require.Error(t, err)
		// Blank tokens are TOKEN_REQUIRED, never INVALID_TOKEN.
		assert.Equal(t, apperr.CodeTokenRequired, apperr.CodeOf(err))
	}
}

func TestGuardResolve_MalformedToken(t *testing.T) {
	guard, _ := newTestGuard(t)

	for _, tok := range []string{"garbage", "a.b", "a.b.c.d"} {
		_, err := guard.Resolve(context.Background(), tok)
		require.Error(t, err)
		assert.Equal(t, apperr.CodeInvalidToken, apperr.CodeOf(err), "token %q", tok)
	}
}

func TestGuardResolve_RejectedToken(t *testing.T) {
	guard, _ := newTestGuard(t)

	// Well-shaped but signed with a different secret.
	other := token.NewService("some-other-secret")
	tok, err := other.Generate("alice", domain.RoleUser)
	require.NoError(t, err)

	_, err = guard.Resolve(context.Background(), tok)
	require.Error(t, err)
	assert.Equal(t, apperr.CodeUnauthorized, apperr.CodeOf(err))
}

func TestGuardResolve_UserNotFound(t *testing.T) {
	guard, tokens := newTestGuard(t) // no users registered

	tok, err := tokens.Generate("ghost", domain.RoleUser)
	require.NoError(t, err)

	_, err = guard.Resolve(context.Background(), tok)
	require.Error(t, err)
	assert.Equal(t, apperr.CodeUserNotFound, apperr.CodeOf(err))
}

func TestGuardResolve_ReturnsOwningUser(t *testing.T) {
	alice := domain.User{ID: 7, Username: "alice", Email: "alice@example.com", Role: domain.RoleUser}
	guard, tokens := newTestGuard(t, alice)

	tok, err := tokens.Generate("alice", domain.RoleUser)
	require.NoError(t, err)

	user, err := guard.Resolve(context.Background(), tok)
	require.NoError(t, err)
	assert.Equal(t, uint(7), user.ID)
	assert.Equal(t, "alice", user.Username)
}

func TestGuardResolve_StoreErrorPassesThrough(t *testing.T) {
	tokens := token.NewService(testSecret)
	creds := &fakeCredentialStore{lookupErr: errors.New("connection refused")}
	guard := NewGuard(tokens, creds, testLogger())

	tok, err := tokens.Generate("alice", domain.RoleUser)
	require.NoError(t, err)

	_, err = guard.Resolve(context.Background(), tok)
	require.Error(t, err)
	assert.Equal(t, apperr.Code(""), apperr.CodeOf(err))
	assert.True(t, strings.Contains(err.Error(), "connection refused"))
}
