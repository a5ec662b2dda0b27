package auth

import (
	"context"
	"regexp"
	"strings"

	"moneystats/internal/apperr"
	"moneystats/internal/domain"
	"moneystats/internal/store"

	"github.com/sirupsen/logrus" // Logging library
	"golang.org/x/crypto/bcrypt" // Password hashing
)

// TokenIssuer signs tokens for authenticated users. Implemented by
// token.Service.
type TokenIssuer interface {
	Generate(username, role string) (string, error)
}

var (
	usernameRe = regexp.MustCompile(`^[A-Za-z0-9]+$`)             // Alphanumeric usernames only
	emailRe    = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`) // Minimal email shape check
)

// SignUpInput is the payload for registering a new user.
type SignUpInput struct {
	FirstName   string // First name
	LastName    string // Last name
	DateOfBirth string // Date of birth
	Email       string // Email, unique
	Username    string // Username, unique
	Password    string // Plaintext password, hashed before storage
}

// Credentials is the payload for logging in.
type Credentials struct {
	Username string // Username
	Password string // Plaintext password
}

// UpdateInput is the payload for editing the current user's profile.
// Username names the account being edited and must match the token
// subject; neither the username nor the password can be changed here.
type UpdateInput struct {
	Username    string // Account being edited, must equal the token subject
	FirstName   string // New first name
	LastName    string // New last name
	DateOfBirth string // New date of birth
	Email       string // New email
}

// ChangePasswordInput is the payload for rotating the current user's
// password.
type ChangePasswordInput struct {
	OldPassword        string // Current password, checked against the stored hash
	NewPassword        string // Replacement password
	ConfirmNewPassword string // Must equal NewPassword
}

// Service owns signup, login and user listing.
type Service struct {
	creds  store.CredentialStore // User records
	tokens TokenIssuer           // Issues tokens on login
	guard  *Guard                // Authorization checkpoint
	log    logrus.FieldLogger    // Injected logger
}

// NewService wires the credential service from its collaborators.
func NewService(creds store.CredentialStore, tokens TokenIssuer, guard *Guard, log logrus.FieldLogger) *Service {
	return &Service{creds: creds, tokens: tokens, guard: guard, log: log}
}

// SignUp registers a new user with role USER. The username and email must
// both be free; the password is bcrypt-hashed before it is stored.
func (s *Service) SignUp(ctx context.Context, in SignUpInput) error {
	if err := validateSignUpInput(in); err != nil {
		return err
	}
	username := strings.ToLower(in.Username)
	existing, err := s.creds.FindByUsername(ctx, username)
	if err != nil {
		return err
	}
	if existing != nil {
		return apperr.New(apperr.CodeUserPresent, "username already taken")
	}
	existing, err = s.creds.FindByEmail(ctx, in.Email)
	if err != nil {
		return err
	}
	if existing != nil {
		return apperr.New(apperr.CodeEmailPresent, "email already taken")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	user := domain.User{
		FirstName:   in.FirstName,
		LastName:    in.LastName,
		DateOfBirth: in.DateOfBirth,
		Email:       in.Email,
		Username:    username,
		Password:    string(hash),
		Role:        domain.RoleUser, // Signup never creates admins
	}
	if err := s.creds.Insert(ctx, &user); err != nil {
		return err
	}
	s.log.WithFields(logrus.Fields{"username": username}).Info("User registered")
	return nil
}

// Login checks the credentials and returns a signed access token. A
// missing user and a wrong password are indistinguishable to the caller.
func (s *Service) Login(ctx context.Context, in Credentials) (string, error) {
	if in.Username == "" || in.Password == "" {
		return "", apperr.New(apperr.CodeWrongCredential, "invalid credentials")
	}
	user, err := s.creds.FindByUsername(ctx, strings.ToLower(in.Username))
	if err != nil {
		return "", err
	}
	if user == nil {
		return "", apperr.New(apperr.CodeWrongCredential, "invalid credentials")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(in.Password)); err != nil {
		return "", apperr.New(apperr.CodeWrongCredential, "invalid credentials")
	}
	tok, err := s.tokens.Generate(user.Username, user.Role)
	if err != nil {
		return "", err
	}
	s.log.WithFields(logrus.Fields{"username": user.Username}).Info("User logged in")
	return tok, nil
}

// CurrentUser resolves the token and returns the acting user.
func (s *Service) CurrentUser(ctx context.Context, accessToken string) (*domain.User, error) {
	return s.guard.Resolve(ctx, accessToken)
}

// UpdateUser edits the caller's profile. The input names the account by
// username and must match the token subject: editing anyone else fails
// with USER_NOT_MATCH.
func (s *Service) UpdateUser(ctx context.Context, accessToken string, in UpdateInput) error {
	if strings.TrimSpace(in.FirstName) == "" || strings.TrimSpace(in.LastName) == "" {
		return apperr.New(apperr.CodeInvalidCredentialInput, "first and last name are required")
	}
	if !emailRe.MatchString(in.Email) {
		return apperr.New(apperr.CodeInvalidCredentialInput, "email is not valid")
	}
	user, err := s.guard.Resolve(ctx, accessToken)
	if err != nil {
		return err
	}
	if !strings.EqualFold(in.Username, user.Username) {
		return apperr.New(apperr.CodeUserNotMatch, "username does not match the token subject")
	}
	user.FirstName = in.FirstName
	user.LastName = in.LastName
	user.DateOfBirth = in.DateOfBirth
	user.Email = in.Email
	if err := s.creds.Update(ctx, user); err != nil {
		return err
	}
	s.log.WithFields(logrus.Fields{"username": user.Username}).Info("User updated")
	return nil
}

// UpdatePassword rotates the caller's password. The new password must be
// confirmed and the old one must match the stored hash; only then is the
// new hash written.
func (s *Service) UpdatePassword(ctx context.Context, accessToken string, in ChangePasswordInput) error {
	if in.OldPassword == "" || len(in.NewPassword) < 8 {
		return apperr.New(apperr.CodeInvalidCredentialInput, "old password and a new password of at least 8 characters are required")
	}
	if in.NewPassword != in.ConfirmNewPassword {
		return apperr.New(apperr.CodePasswordNotMatch, "new and confirm passwords do not match")
	}
	user, err := s.guard.Resolve(ctx, accessToken)
	if err != nil {
		return err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(in.OldPassword)); err != nil {
		return apperr.New(apperr.CodeWrongCredential, "old password does not match")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	if err := s.creds.UpdatePassword(ctx, user.Username, string(hash)); err != nil {
		return err
	}
	s.log.WithFields(logrus.Fields{"username": user.Username}).Info("Password updated")
	return nil
}

// ListUsers returns every registered user. Admin only.
func (s *Service) ListUsers(ctx context.Context, accessToken string) ([]domain.User, error) {
	user, err := s.guard.Resolve(ctx, accessToken)
	if err != nil {
		return nil, err
	}
	if user.Role != domain.RoleAdmin {
		return nil, apperr.New(apperr.CodeNotAllowed, "admin role required")
	}
	return s.creds.List(ctx)
}

func validateSignUpInput(in SignUpInput) error {
	if strings.TrimSpace(in.Username) == "" || !usernameRe.MatchString(in.Username) {
		return apperr.New(apperr.CodeInvalidCredentialInput, "username must be alphanumeric")
	}
	if !emailRe.MatchString(in.Email) {
		return apperr.New(apperr.CodeInvalidCredentialInput, "email is not valid")
	}
	if len(in.Password) < 8 {
		return apperr.New(apperr.CodeInvalidCredentialInput, "password must be at least 8 characters")
	}
	return nil
}
