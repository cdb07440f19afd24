package utils

import "os"

// Getenv returns the value of the environment variable named by key,
// falling back to the provided default when the variable is unset or empty.
func Getenv(key, fallback string) string {
	value := os.Getenv(key)
	if len(value) == 0 {
		return fallback
	}
	return value
}
