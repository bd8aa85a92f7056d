package services

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"

	"github.com/qslrm-api/config"
	"github.com/qslrm-api/dto"
	"github.com/qslrm-api/models"
	"github.com/qslrm-api/repositories"
	"github.com/qslrm-api/validation"
)

// AuthService issues session tokens and records the access trail.
// Researchers identify themselves by email; the API carries no password
// credentials and targets trusted deployments.
type AuthService struct {
	researchers *repositories.ResearcherRepository
	accessLogs  *repositories.AccessLogRepository
	secret      []byte
	tokenTTL    time.Duration
	logger      *zap.Logger
}

// NewAuthService creates an auth service from the runtime config.
func NewAuthService(
	researchers *repositories.ResearcherRepository,
	accessLogs *repositories.AccessLogRepository,
	cfg *config.Config,
	logger *zap.Logger,
) *AuthService {
	return &AuthService{
		researchers: researchers,
		accessLogs:  accessLogs,
		secret:      []byte(cfg.JWTSecret),
		tokenTTL:    time.Duration(cfg.TokenTTLHrs) * time.Hour,
		logger:      logger,
	}
}

// Login identifies a researcher by email and issues a session token.
// The login is appended to the access trail.
func (s *AuthService) Login(p *dto.LoginRequest, ip, userAgent string) (*dto.AuthResponse, error) {
	if err := validation.Required(map[string]bool{"email": p.Email != nil}, []string{"email"}); err != nil {
		return nil, err
	}
	if err := validation.Email(*p.Email); err != nil {
		return nil, err
	}

	researcher, err := s.researchers.FindByEmail(*p.Email)
	if err != nil {
		return nil, err
	}

	expiresAt := time.Now().UTC().Add(s.tokenTTL)
	claims := dto.TokenClaims{
		ResearcherID: researcher.ResearcherID,
		Email:        researcher.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(time.Now().UTC()),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return nil, err
	}

	s.record(researcher.ResearcherID, "login", ip, userAgent)
	s.logger.Info("researcher logged in",
		zap.Int("researcher_id", researcher.ResearcherID),
		zap.String("email", researcher.Email))

	return &dto.AuthResponse{
		Message:    "Login successful",
		Researcher: dto.FromResearcher(researcher),
		Token:      token,
		ExpiresAt:  expiresAt,
	}, nil
}

// Logout records the end of a session in the access trail.
func (s *AuthService) Logout(p *dto.LogoutRequest, ip, userAgent string) error {
	if err := validation.Required(map[string]bool{"researcher_id": p.ResearcherID != nil}, []string{"researcher_id"}); err != nil {
		return err
	}
	if _, err := s.researchers.FindByID(*p.ResearcherID); err != nil {
		return err
	}
	s.record(*p.ResearcherID, "logout", ip, userAgent)
	return nil
}

// Me resolves the researcher behind a verified token.
func (s *AuthService) Me(researcherID int) (*dto.ResearcherResponse, error) {
	researcher, err := s.researchers.FindByID(researcherID)
	if err != nil {
		return nil, err
	}
	resp := dto.FromResearcher(researcher)
	return &resp, nil
}

// ParseToken verifies a session token and returns its claims.
func (s *AuthService) ParseToken(token string) (*dto.TokenClaims, error) {
	claims := &dto.TokenClaims{}
	_, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		return s.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, err
	}
	return claims, nil
}

// record appends to the access trail. Trail failures are logged and
// swallowed so they never fail the auth action itself.
func (s *AuthService) record(researcherID int, action, ip, userAgent string) {
	entry := models.AccessLog{
		ResearcherID: researcherID,
		ActionType:   action,
		Timestamp:    time.Now().UTC(),
	}
	if ip != "" {
		entry.IPAddress = &ip
	}
	if userAgent != "" {
		entry.UserAgent = &userAgent
	}
	if err := s.accessLogs.Append(&entry); err != nil {
		s.logger.Warn("access log append failed", zap.Error(err))
	}
}
