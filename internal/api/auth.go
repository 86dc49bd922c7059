package api

import (
	"encoding/json" // JSON decoding with per-field control
	"net/http"      // HTTP status codes

	"github.com/mogzealio/rest-api-v3-heroku/internal/domain" // Domain models
	"github.com/mogzealio/rest-api-v3-heroku/internal/utils"  // JWT utility functions

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Structured logging
	"golang.org/x/crypto/bcrypt" // Password hashing
	"gorm.io/gorm"               // GORM ORM library
)

// CredentialsRequest carries a username/password pair. Pointer fields so a
// missing field can be told apart from an empty string and reported
// per-field.
type CredentialsRequest struct {
	Username *string `json:"username"` // Username must be provided
	Password *string `json:"password"` // Password must be provided
}

// AuthResponse is the token-issuance response body
type AuthResponse struct {
	AccessToken string `json:"access_token"` // Signed JWT
}

// bindCredentials decodes the request body and reports the first missing
// required field. Returns the field name when validation fails.
func bindCredentials(c *gin.Context) (*CredentialsRequest, string) {
	var req CredentialsRequest
	if err := json.NewDecoder(c.Request.Body).Decode(&req); err != nil {
		if ute, ok := err.(*json.UnmarshalTypeError); ok && ute.Field != "" {
			return nil, ute.Field
		}
		return nil, "username"
	}
	if req.Username == nil {
		return nil, "username"
	}
	if req.Password == nil {
		return nil, "password"
	}
	return &req, ""
}

// RegisterHandler creates a new user account
func RegisterHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		req, missing := bindCredentials(c)
		if missing != "" {
			// Field-specific message, matching the item payload contract
			c.JSON(http.StatusBadRequest, gin.H{"message": gin.H{missing: "This field cannot be left blank."}})
			return
		}
		// Check the username is free before inserting; uniqueness is
		// application-level, there is no database constraint backing it
		existing, err := domain.FindUserByUsername(db, *req.Username)
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"username": *req.Username,
				"error":    err.Error(),
			}).Error("Registration lookup failed")
			c.JSON(http.StatusInternalServerError, gin.H{"message": "An error occurred creating the user."})
			return
		}
		if existing != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "A user with that username already exists."})
			return
		}
		// Hash the password before storage
		hash, err := bcrypt.GenerateFromPassword([]byte(*req.Password), bcrypt.DefaultCost)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "An error occurred creating the user."})
			return
		}
		user := domain.User{Username: *req.Username, Password: string(hash)}
		if err := user.Save(db); err != nil {
			logrus.WithFields(logrus.Fields{
				"username": *req.Username,
				"error":    err.Error(),
			}).Error("Failed to create user")
			c.JSON(http.StatusInternalServerError, gin.H{"message": "An error occurred creating the user."})
			return
		}
		c.JSON(http.StatusCreated, gin.H{"message": "User created successfully."})
	}
}

// AuthHandler authenticates a username/password pair and issues a JWT whose
// identity claim is the user's ID
func AuthHandler(db *gorm.DB, jwtSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		req, missing := bindCredentials(c)
		if missing != "" {
			c.JSON(http.StatusBadRequest, gin.H{"message": gin.H{missing: "This field cannot be left blank."}})
			return
		}
		user, err := domain.FindUserByUsername(db, *req.Username)
		if err != nil || user == nil {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid credentials"})
			return
		}
		// Constant-time comparison against the stored hash
		if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(*req.Password)); err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid credentials"})
			return
		}
		token, err := utils.GenerateJWT(user.ID, jwtSecret)
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"user_id": user.ID,
				"error":   err.Error(),
			}).Error("Failed to generate token")
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to generate token"})
			return
		}
		c.JSON(http.StatusOK, AuthResponse{AccessToken: token})
	}
}
