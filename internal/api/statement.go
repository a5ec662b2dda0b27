package api

import (
	"net/http" // HTTP status codes

	"moneystats/internal/middleware"
	"moneystats/internal/statement"

	"github.com/gin-gonic/gin" // Gin web framework
)

// AddStatementRequest is the statement creation payload.
type AddStatementRequest struct {
	Value    *float64 `json:"value" binding:"required"`    // Balance value; pointer keeps zero valid
	Date     string   `json:"date" binding:"required"`     // Calendar day, DD-MM-YYYY
	WalletID uint     `json:"walletId" binding:"required"` // Wallet id must be provided
}

// AddStatementHandler records a statement for one of the caller's wallets.
func AddStatementHandler(svc *statement.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req AddStatementRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		in := statement.AddInput{Value: req.Value, Date: req.Date, WalletID: req.WalletID}
		if err := svc.Add(c.Request.Context(), middleware.Token(c), in); err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusCreated, gin.H{"message": "Statement added successfully"})
	}
}

// ListDatesHandler returns the caller's distinct statement dates, newest
// first.
func ListDatesHandler(svc *statement.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		dates, err := svc.ListDates(c.Request.Context(), middleware.Token(c))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"dates": dates})
	}
}

// ListByDateHandler returns the caller's statements on one canonical
// YYYY-MM-DD date.
func ListByDateHandler(svc *statement.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		statements, err := svc.ListByDate(c.Request.Context(), middleware.Token(c), c.Param("date"))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"statements": statements})
	}
}
