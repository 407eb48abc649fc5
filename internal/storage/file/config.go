package file

// Config holds file storage settings
type Config struct {
	// Path is the registry snapshot file
	Path string
	// AllowlistPath is the flat allow-list file
	AllowlistPath string
}

// DefaultConfig returns sensible defaults for file storage
func DefaultConfig() Config {
	return Config{
		Path:          "hwid_database.json",
		AllowlistPath: "hwid_allowlist.json",
	}
}
