// Package api exposes the services over HTTP with gin. Handlers bind and
// shape requests; all domain rules, including authorization, live in the
// services.
package api

import (
	"net/http" // HTTP status codes

	"moneystats/internal/apperr"

	"github.com/gin-gonic/gin" // Gin web framework
)

// statusOf maps an error code to its HTTP status.
func statusOf(code apperr.Code) int {
	switch code {
	case apperr.CodeTokenRequired,
		apperr.CodeInvalidCredentialInput,
		apperr.CodePasswordNotMatch,
		apperr.CodeInvalidWalletInput,
		apperr.CodeInvalidStatementInput:
		return http.StatusBadRequest
	case apperr.CodeInvalidToken,
		apperr.CodeUnauthorized,
		apperr.CodeWrongCredential:
		return http.StatusUnauthorized
	case apperr.CodeNotAllowed,
		apperr.CodeUserNotMatch:
		return http.StatusForbidden
	case apperr.CodeUserNotFound,
		apperr.CodeWalletNotFound,
		apperr.CodeCategoryNotFound,
		apperr.CodeStatementNotFound,
		apperr.CodeListStatementDateNotFound:
		return http.StatusNotFound
	case apperr.CodeUserPresent,
		apperr.CodeEmailPresent,
		apperr.CodeWalletHasStatements:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// respondError writes a service error as {"error": CODE} with the mapped
// status. Errors without a code are reported as INTERNAL_SERVER_ERROR.
func respondError(c *gin.Context, err error) {
	code := apperr.CodeOf(err)
	if code == "" {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "INTERNAL_SERVER_ERROR"})
		return
	}
	c.JSON(statusOf(code), gin.H{"error": string(code)})
}
