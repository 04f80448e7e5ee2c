// Package tools carries small helpers with no home elsewhere.
package tools

import "os"

// GetenvDefault returns the value of the environment variable, or the
// default when it is unset or empty.
func GetenvDefault(key string, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
