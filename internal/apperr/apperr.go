// Package apperr defines the service error taxonomy. Every failure a
// service can report carries one of the codes below; the HTTP layer maps
// codes to status codes and never inspects message text.
package apperr

import "errors"

// Code identifies one failure kind.
type Code string

// Authentication codes
const (
	CodeTokenRequired   Code = "TOKEN_REQUIRED"   // Token is empty or blank
	CodeInvalidToken    Code = "INVALID_TOKEN"    // Token is structurally malformed
	CodeUnauthorized    Code = "UNAUTHORIZED"     // Token rejected by the token service
	CodeUserNotFound    Code = "USER_NOT_FOUND"   // Token subject has no credential record
	CodeWrongCredential Code = "WRONG_CREDENTIAL" // Login username/password mismatch
	CodeUserPresent     Code = "USER_PRESENT"     // Signup username already taken
	CodeEmailPresent    Code = "EMAIL_PRESENT"    // Signup email already taken
	CodeNotAllowed      Code = "NOT_ALLOWED"      // Caller lacks the required role

	CodeInvalidCredentialInput Code = "INVALID_CREDENTIAL_INPUT" // Malformed signup/update fields
	CodeUserNotMatch           Code = "USER_NOT_MATCH"           // Update target is not the token subject
	CodePasswordNotMatch       Code = "PASSWORD_NOT_MATCH"       // New and confirm passwords differ
)

// Wallet codes
const (
	CodeInvalidWalletInput  Code = "INVALID_WALLET_INPUT"  // Missing/blank wallet fields
	CodeWalletNotFound      Code = "WALLET_NOT_FOUND"      // No wallet, or not owned by the caller
	CodeWalletHasStatements Code = "WALLET_HAS_STATEMENTS" // Deletion blocked by recorded statements
	CodeCategoryNotFound    Code = "CATEGORY_NOT_FOUND"    // Unknown category id
)

// Statement codes
const (
	CodeInvalidStatementInput     Code = "INVALID_STATEMENT_INPUT"       // Missing value/date/wallet id
	CodeStatementNotFound         Code = "STATEMENT_NOT_FOUND"           // No statements for the given date
	CodeListStatementDateNotFound Code = "LIST_STATEMENT_DATE_NOT_FOUND" // User has no recorded dates
)

// Error is the single error type raised by the services.
type Error struct {
	Code Code   // Failure kind
	Msg  string // Human-readable detail
	Err  error  // Optional underlying cause
}

func (e *Error) Error() string {
	if e.Msg == "" {
		return string(e.Code)
	}
	return string(e.Code) + ": " + e.Msg
}

func (e *Error) Unwrap() error { return e.Err }

// New builds an Error with the given code and message.
func New(code Code, msg string) *Error {
	return &Error{Code: code, Msg: msg}
}

// Wrap builds an Error that keeps the underlying cause for logging.
func Wrap(code Code, msg string, err error) *Error {
	return &Error{Code: code, Msg: msg, Err: err}
}

// CodeOf extracts the failure code from err, or "" if err does not carry
// one (unexpected errors, mapped to 500 at the boundary).
func CodeOf(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// Is reports whether err carries the given code.
func Is(err error, code Code) bool {
	return CodeOf(err) == code
}
