package auth

import (
	"crypto/subtle"
	"errors"
)

// Errors
var (
	ErrInvalidToken    = errors.New("invalid or missing API token")
	ErrInvalidAdminKey = errors.New("invalid admin key")
)

// Config holds the configured secrets
type Config struct {
	// APIKey is the bearer token required by the registry endpoints
	APIKey string
	// AdminKey is the body credential required by the manage endpoint
	AdminKey string
}

// Service validates caller credentials. Tokens are compared by exact match
// against the configured secrets; comparison is constant-time so response
// latency does not leak prefix information.
type Service struct {
	apiKey   []byte
	adminKey []byte
}

// New creates a new auth service
func New(cfg Config) *Service {
	return &Service{
		apiKey:   []byte(cfg.APIKey),
		adminKey: []byte(cfg.AdminKey),
	}
}

// ValidateToken checks a bearer token against the configured API key
func (s *Service) ValidateToken(token string) error {
	if len(s.apiKey) == 0 {
		return ErrInvalidToken
	}
	if subtle.ConstantTimeCompare([]byte(token), s.apiKey) != 1 {
		return ErrInvalidToken
	}
	return nil
}

// ValidateAdminKey checks a request-body admin key
func (s *Service) ValidateAdminKey(key string) error {
	if len(s.adminKey) == 0 {
		return ErrInvalidAdminKey
	}
	if subtle.ConstantTimeCompare([]byte(key), s.adminKey) != 1 {
		return ErrInvalidAdminKey
	}
	return nil
}
