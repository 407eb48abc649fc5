package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func newTestService() *Service {
	return New(Config{
		APIKey:   "secret-token",
		AdminKey: "admin-secret",
	})
}

func TestValidateTokenSucceeds(t *testing.T) {
	s := newTestService()
	assert.NoError(t, s.ValidateToken("secret-token"))
}

func TestValidateTokenRejectsMismatch(t *testing.T) {
	s := newTestService()
	assert.ErrorIs(t, s.ValidateToken("wrong"), ErrInvalidToken)
}

func TestValidateTokenRejectsEmpty(t *testing.T) {
	s := newTestService()
	assert.ErrorIs(t, s.ValidateToken(""), ErrInvalidToken)
}

func TestValidateTokenRejectsPrefix(t *testing.T) {
	s := newTestService()
	assert.ErrorIs(t, s.ValidateToken("secret-token-extra"), ErrInvalidToken)
}

func TestUnconfiguredKeyNeverAuthorizes(t *testing.T) {
	s := New(Config{})
	assert.ErrorIs(t, s.ValidateToken(""), ErrInvalidToken)
	assert.ErrorIs(t, s.ValidateAdminKey(""), ErrInvalidAdminKey)
}

func TestValidateAdminKey(t *testing.T) {
	s := newTestService()
	assert.NoError(t, s.ValidateAdminKey("admin-secret"))
	assert.ErrorIs(t, s.ValidateAdminKey("secret-token"), ErrInvalidAdminKey)
}
