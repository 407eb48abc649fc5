package factory

import (
	"time"

	"hwidstore/internal/dependencies/mocks"
	"hwidstore/internal/services/auth"
	"hwidstore/internal/storage/memory"
)

// TestApp extends App with test-specific helpers
type TestApp struct {
	*App

	// Mocks for test control
	MockClock *mocks.MockClock
	Memory    *memory.Storage
}

// TestAuthConfig is the credential pair used by NewTestApp
var TestAuthConfig = auth.Config{
	APIKey:   "test-api-key",
	AdminKey: "test-admin-key",
}

// NewTestApp creates an App configured for testing with an in-memory store
// and a mocked clock
func NewTestApp() *TestApp {
	store := memory.New()
	mockClock := mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))

	app := newWithDependencies(store, mockClock, TestAuthConfig)

	return &TestApp{
		App:       app,
		MockClock: mockClock,
		Memory:    store,
	}
}
