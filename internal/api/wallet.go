package api

import (
	"net/http" // HTTP status codes
	"strconv"  // String conversion
	"time"     // Cache TTL

	"moneystats/internal/apperr"
	"moneystats/internal/domain"
	"moneystats/internal/middleware"
	"moneystats/internal/store"
	"moneystats/internal/utils"
	"moneystats/internal/wallet"

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Logging library
)

// categoriesCacheKey is the redis key for the category reference list.
// Categories are read-only, so a stale entry is harmless.
const categoriesCacheKey = "categories:all"

// AddWalletRequest is the wallet creation payload.
type AddWalletRequest struct {
	Name       string `json:"name" binding:"required"`       // Wallet name must be provided
	CategoryID uint   `json:"categoryId" binding:"required"` // Category id must be provided
}

// EditWalletRequest is the wallet update payload.
type EditWalletRequest struct {
	WalletID   uint   `json:"walletId" binding:"required"`   // Target wallet id
	Name       string `json:"name" binding:"required"`       // New name
	CategoryID uint   `json:"categoryId" binding:"required"` // New category id
}

// ListWalletsHandler returns the caller's wallets.
func ListWalletsHandler(svc *wallet.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		wallets, err := svc.List(c.Request.Context(), middleware.Token(c))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"wallets": wallets})
	}
}

// AddWalletHandler creates a wallet for the caller.
func AddWalletHandler(svc *wallet.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req AddWalletRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		in := wallet.AddInput{Name: req.Name, CategoryID: req.CategoryID}
		if err := svc.Add(c.Request.Context(), middleware.Token(c), in); err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusCreated, gin.H{"message": "Wallet added successfully"})
	}
}

// EditWalletHandler renames/recategorizes one of the caller's wallets.
func EditWalletHandler(svc *wallet.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req EditWalletRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		in := wallet.EditInput{WalletID: req.WalletID, Name: req.Name, CategoryID: req.CategoryID}
		if err := svc.Edit(c.Request.Context(), middleware.Token(c), in); err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Wallet updated successfully"})
	}
}

// DeleteWalletHandler deletes one of the caller's wallets.
func DeleteWalletHandler(svc *wallet.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param("id"), 10, 32)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid wallet id"})
			return
		}
		if err := svc.Delete(c.Request.Context(), middleware.Token(c), uint(id)); err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Wallet deleted successfully"})
	}
}

// GetWalletHandler fetches a single wallet by id.
func GetWalletHandler(svc *wallet.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param("id"), 10, 32)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid wallet id"})
			return
		}
		w, err := svc.GetByID(c.Request.Context(), middleware.Token(c), uint(id))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"wallet": w})
	}
}

// DashboardHandler assembles the caller's wallets with their most recent
// statements. The composite is rebuilt on every call and never cached.
func DashboardHandler(svc *wallet.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		dashboard, err := svc.GetDashboard(c.Request.Context(), middleware.Token(c))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, dashboard)
	}
}

// ListCategoriesHandler returns the wallet categories through a 60s
// read-through redis cache.
func ListCategoriesHandler(categories store.CategoryStore, cache *utils.Cache, log logrus.FieldLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		var cached []domain.Category
		found, err := cache.Get(ctx, categoriesCacheKey, &cached)
		if err == nil && found {
			c.JSON(http.StatusOK, gin.H{"categories": cached, "cached": true})
			return
		}
		list, err := categories.FindAll(ctx)
		if err != nil {
			respondError(c, err)
			return
		}
		if len(list) == 0 {
			respondError(c, apperr.New(apperr.CodeCategoryNotFound, "no categories seeded"))
			return
		}
		if err := cache.Set(ctx, categoriesCacheKey, list, 60*time.Second); err != nil {
			log.WithFields(logrus.Fields{"error": err.Error()}).Warn("Category cache write failed")
		}
		c.JSON(http.StatusOK, gin.H{"categories": list, "cached": false})
	}
}
