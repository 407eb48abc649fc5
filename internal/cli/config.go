package cli

import "os"

// Config holds CLI configuration
type Config struct {
	ServerURL string
	Token     string
	AdminKey  string
	Output    string
}

// DefaultConfig returns a Config with default values
func DefaultConfig() *Config {
	return &Config{
		ServerURL: getEnvOrDefault("HWIDCTL_SERVER", "http://localhost:8080"),
		Token:     os.Getenv("HWIDCTL_TOKEN"),
		AdminKey:  os.Getenv("HWIDCTL_ADMIN_KEY"),
		Output:    "text",
	}
}

func getEnvOrDefault(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}
