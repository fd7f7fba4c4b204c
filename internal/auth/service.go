package auth

import (
	"errors"
	"fmt"
	"time"

	apperrors "hospogo-backend/internal/errors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Role names carried in token claims. Hub owners manage templates and
// shifts, professionals book themselves onto shifts, admins can do both.
const (
	RoleHubOwner     = "hub_owner"
	RoleProfessional = "professional"
	RoleAdmin        = "admin"
)

// AuthClaims represents JWT token claims
type AuthClaims struct {
	SubjectID uuid.UUID `json:"subject_id"`
	Email     string    `json:"email" example:"jo@example.com"`
	Role      string    `json:"role" example:"hub_owner"`
	jwt.RegisteredClaims
}

// AuthService issues and validates the bearer tokens used by the API
type AuthService struct {
	secret []byte
	ttl    time.Duration
	issuer string
}

// NewAuthService creates a new authentication service
func NewAuthService(secret string, ttl time.Duration) (*AuthService, error) {
	if secret == "" {
		return nil, errors.New("jwt secret is required")
	}
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &AuthService{
		secret: []byte(secret),
		ttl:    ttl,
		issuer: "hospogo-backend",
	}, nil
}

// IssueToken generates a signed JWT for the given subject
func (s *AuthService) IssueToken(subjectID uuid.UUID, email, role string) (string, time.Time, error) {
	if !ValidRole(role) {
		return "", time.Time{}, apperrors.ErrRoleForbidden
	}

	now := time.Now()
	expiresAt := now.Add(s.ttl)
	claims := &AuthClaims{
		SubjectID: subjectID,
		Email:     email,
		Role:      role,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    s.issuer,
			Subject:   subjectID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to sign token: %w", err)
	}

	return signed, expiresAt, nil
}

// ValidateJWT parses and validates a token string and returns its claims
func (s *AuthService) ValidateJWT(tokenString string) (*AuthClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &AuthClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, apperrors.ErrTokenExpired
		}
		return nil, apperrors.ErrInvalidToken
	}

	claims, ok := token.Claims.(*AuthClaims)
	if !ok || !token.Valid {
		return nil, apperrors.ErrInvalidToken
	}
	return claims, nil
}

// ValidRole reports whether the role name is one the API knows
func ValidRole(role string) bool {
	switch role {
	case RoleHubOwner, RoleProfessional, RoleAdmin:
		return true
	}
	return false
}
