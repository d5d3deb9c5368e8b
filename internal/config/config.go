package config

import "os"

// Get returns the value of an environment variable, or fallback when unset
// or empty. Binaries load .env via godotenv before reading configuration.
func Get(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
