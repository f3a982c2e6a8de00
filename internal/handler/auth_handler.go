package handler

import (
	"crypto/subtle"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/tripfolio/tripstats-backend-go/internal/middleware"
	"github.com/tripfolio/tripstats-backend-go/pkg/response"
)

// AuthHandler issues access tokens for the mutating endpoints
type AuthHandler struct {
	jwtSecret string
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(jwtSecret string) *AuthHandler {
	return &AuthHandler{jwtSecret: jwtSecret}
}

// tokenRequest is the POST body for token issuance; the shared secret is the
// deployment's JWT secret.
type tokenRequest struct {
	Secret  string `json:"secret" binding:"required"`
	Subject string `json:"subject"`
}

// Token handles POST /api/v1/auth/token
func (h *AuthHandler) Token(c *gin.Context) {
	var req tokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	if subtle.ConstantTimeCompare([]byte(req.Secret), []byte(h.jwtSecret)) != 1 {
		response.Error(c, http.StatusUnauthorized, "Invalid secret", nil)
		return
	}

	subject := req.Subject
	if subject == "" {
		subject = "default"
	}

	token, err := middleware.IssueToken(h.jwtSecret, subject)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "Failed to issue token", err)
		return
	}

	response.Success(c, gin.H{
		"token":     token,
		"expiresIn": int(middleware.TokenTTL.Seconds()),
	})
}
