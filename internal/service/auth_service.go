package service

import (
	"strings"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// AuthService canjea una API key por un token de acceso. La key se valida contra un hash bcrypt.
type AuthService struct {
	logger     *zap.Logger
	jwt        *JWTService
	apiKeyHash []byte
}

func NewAuthService(logger *zap.Logger, jwtSvc *JWTService, apiKeyHash string) *AuthService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AuthService{
		logger:     logger,
		jwt:        jwtSvc,
		apiKeyHash: []byte(strings.TrimSpace(apiKeyHash)),
	}
}

// Enabled indica si la API exige autenticación.
func (s *AuthService) Enabled() bool {
	return s != nil && s.jwt.Enabled()
}

func (s *AuthService) Login(operator, apiKey string) (AccessToken, error) {
	if !s.Enabled() || len(s.apiKeyHash) == 0 {
		return AccessToken{}, ErrAuthDisabled
	}
	operator = strings.TrimSpace(operator)
	if operator == "" || apiKey == "" {
		return AccessToken{}, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword(s.apiKeyHash, []byte(apiKey)); err != nil {
		s.logger.Warn("api key rejected", zap.String("operator", operator))
		return AccessToken{}, ErrInvalidCredentials
	}
	return s.jwt.Generate(operator)
}

// HashAPIKey genera el hash bcrypt a guardar en API_KEY_HASH.
func HashAPIKey(apiKey string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(apiKey), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}
