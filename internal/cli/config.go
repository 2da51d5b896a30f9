package cli

import "os"

// Config holds CLI configuration
type Config struct {
	ServerURL  string
	AdminToken string
	UserID     string
	Output     string
	Verbose    bool
}

// DefaultConfig returns a Config with default values
func DefaultConfig() *Config {
	return &Config{
		ServerURL:  getEnvOrDefault("LIKEBOT_SERVER", "http://localhost:8080"),
		AdminToken: os.Getenv("LIKEBOT_ADMIN_TOKEN"),
		UserID:     os.Getenv("LIKEBOT_USER_ID"),
		Output:     "text",
		Verbose:    false,
	}
}

func getEnvOrDefault(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}
