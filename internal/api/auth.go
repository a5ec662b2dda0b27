package api

import (
	"net/http" // HTTP status codes

	"moneystats/internal/auth"
	"moneystats/internal/middleware"

	"github.com/gin-gonic/gin" // Gin web framework
)

// SignUpRequest is the registration payload.
type SignUpRequest struct {
	FirstName   string `json:"firstName" binding:"required"`   // First name must be provided
	LastName    string `json:"lastName" binding:"required"`    // Last name must be provided
	DateOfBirth string `json:"dateOfBirth"`                    // Optional date of birth
	Email       string `json:"email" binding:"required,email"` // Email must be provided and valid
	Username    string `json:"username" binding:"required"`    // Username must be provided
	Password    string `json:"password" binding:"required"`    // Password must be provided
}

// LoginRequest is the login payload.
type LoginRequest struct {
	Username string `json:"username" binding:"required"` // Username must be provided
	Password string `json:"password" binding:"required"` // Password must be provided
}

// UpdateUserRequest is the profile update payload.
type UpdateUserRequest struct {
	Username    string `json:"username" binding:"required"`    // Account being edited
	FirstName   string `json:"firstName" binding:"required"`   // New first name
	LastName    string `json:"lastName" binding:"required"`    // New last name
	DateOfBirth string `json:"dateOfBirth"`                    // Optional date of birth
	Email       string `json:"email" binding:"required,email"` // New email
}

// ChangePasswordRequest is the password rotation payload.
type ChangePasswordRequest struct {
	OldPassword        string `json:"oldPassword" binding:"required"`        // Current password
	NewPassword        string `json:"newPassword" binding:"required"`        // Replacement password
	ConfirmNewPassword string `json:"confirmNewPassword" binding:"required"` // Must match newPassword
}

// TokenResponse carries the issued access token.
type TokenResponse struct {
	AccessToken string `json:"accessToken"` // Signed JWT
}

// SignUpHandler registers a new user.
func SignUpHandler(svc *auth.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req SignUpRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		err := svc.SignUp(c.Request.Context(), auth.SignUpInput{
			FirstName:   req.FirstName,
			LastName:    req.LastName,
			DateOfBirth: req.DateOfBirth,
			Email:       req.Email,
			Username:    req.Username,
			Password:    req.Password,
		})
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusCreated, gin.H{"message": "User registered successfully"})
	}
}

// LoginHandler authenticates a user and returns an access token.
func LoginHandler(svc *auth.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req LoginRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		tok, err := svc.Login(c.Request.Context(), auth.Credentials{Username: req.Username, Password: req.Password})
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, TokenResponse{AccessToken: tok})
	}
}

// CurrentUserHandler returns the user the token resolves to.
func CurrentUserHandler(svc *auth.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, err := svc.CurrentUser(c.Request.Context(), middleware.Token(c))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"user": user})
	}
}

// UpdateUserHandler edits the caller's profile.
func UpdateUserHandler(svc *auth.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req UpdateUserRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		err := svc.UpdateUser(c.Request.Context(), middleware.Token(c), auth.UpdateInput{
			Username:    req.Username,
			FirstName:   req.FirstName,
			LastName:    req.LastName,
			DateOfBirth: req.DateOfBirth,
			Email:       req.Email,
		})
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "User updated successfully"})
	}
}

// UpdatePasswordHandler rotates the caller's password.
func UpdatePasswordHandler(svc *auth.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req ChangePasswordRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		err := svc.UpdatePassword(c.Request.Context(), middleware.Token(c), auth.ChangePasswordInput{
			OldPassword:        req.OldPassword,
			NewPassword:        req.NewPassword,
			ConfirmNewPassword: req.ConfirmNewPassword,
		})
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Password updated successfully"})
	}
}

// ListUsersHandler returns every registered user. Admin only.
func ListUsersHandler(svc *auth.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		users, err := svc.ListUsers(c.Request.Context(), middleware.Token(c))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"users": users})
	}
}
