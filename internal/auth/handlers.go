package auth

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// AuthHandler exposes the token endpoints
type AuthHandler struct {
	service *AuthService
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(service *AuthService) *AuthHandler {
	return &AuthHandler{service: service}
}

// TokenRequest represents the request for issuing a token
type TokenRequest struct {
	SubjectID uuid.UUID `json:"subject_id" binding:"required"`
	Email     string    `json:"email" binding:"required,email"`
	Role      string    `json:"role" binding:"required"`
}

// TokenResponse represents the response for the token endpoint
type TokenResponse struct {
	AccessToken string    `json:"access_token"`
	TokenType   string    `json:"token_type" example:"bearer"`
	ExpiresAt   time.Time `json:"expires_at"`
}

// ValidateResponse represents the response from the token validation endpoint
type ValidateResponse struct {
	Valid  bool        `json:"valid" example:"true"`
	Claims *AuthClaims `json:"claims,omitempty"`
}

// IssueToken godoc
// @Summary Issue an access token
// @Description Issues a signed JWT for the given subject and role
// @Tags auth
// @Accept json
// @Produce json
// @Param request body TokenRequest true "Token request"
// @Success 200 {object} TokenResponse
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /auth/token [post]
func (h *AuthHandler) IssueToken(c *gin.Context) {
	var req TokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if !ValidRole(req.Role) {
		c.JSON(http.StatusForbidden, gin.H{"error": "unknown role"})
		return
	}

	token, expiresAt, err := h.service.IssueToken(req.SubjectID, req.Email, req.Role)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to issue token"})
		return
	}

	c.JSON(http.StatusOK, TokenResponse{
		AccessToken: token,
		TokenType:   "bearer",
		ExpiresAt:   expiresAt,
	})
}

// Validate godoc
// @Summary Validate an access token
// @Description Parses the bearer token and returns its claims
// @Tags auth
// @Produce json
// @Success 200 {object} ValidateResponse
// @Failure 401 {object} ValidateResponse
// @Router /auth/validate [get]
func (h *AuthHandler) Validate(c *gin.Context) {
	claims, exists := c.Get("auth_claims")
	if !exists {
		c.JSON(http.StatusUnauthorized, ValidateResponse{Valid: false})
		return
	}

	authClaims, ok := claims.(*AuthClaims)
	if !ok {
		c.JSON(http.StatusUnauthorized, ValidateResponse{Valid: false})
		return
	}

	c.JSON(http.StatusOK, ValidateResponse{Valid: true, Claims: authClaims})
}
