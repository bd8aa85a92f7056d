package dto

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// LoginRequest identifies a researcher by email. The API has no
// password credentials; identification is sufficient for the trusted
// deployments it targets.
type LoginRequest struct {
	Email *string `json:"email"`
}

// LogoutRequest records which researcher ended a session.
type LogoutRequest struct {
	ResearcherID *int `json:"researcher_id"`
}

// AuthResponse is returned on a successful login.
type AuthResponse struct {
	Message    string             `json:"message"`
	Researcher ResearcherResponse `json:"researcher"`
	Token      string             `json:"token"`
	ExpiresAt  time.Time          `json:"expires_at"`
}

// TokenClaims are the session token claims.
type TokenClaims struct {
	ResearcherID int    `json:"researcher_id"`
	Email        string `json:"email"`
	jwt.RegisteredClaims
}
