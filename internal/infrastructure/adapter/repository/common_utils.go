package repository

import (
	"strings"
)

// ErrorClassifier provides utilities for classifying database errors
type ErrorClassifier struct {
	duplicateKeyPatterns []string
	connectionPatterns   []string
	transientPatterns    []string
}

// NewErrorClassifier creates a classifier seeded with the PostgreSQL
// error message fragments GORM surfaces.
func NewErrorClassifier() *ErrorClassifier {
	return &ErrorClassifier{
		duplicateKeyPatterns: []string{
			"duplicate key",
			"unique constraint",
			"unique violation",
			"23505",
		},
		connectionPatterns: []string{
			"connection refused",
			"connection reset",
			"broken pipe",
			"no connection",
			"connection timed out",
		},
		transientPatterns: []string{
			"deadlock detected",
			"could not serialize access",
			"40001",
			"40P01",
		},
	}
}

// IsDuplicateKeyError checks if an error is related to a duplicate key violation
func (c *ErrorClassifier) IsDuplicateKeyError(err error) bool {
	return c.matches(err, c.duplicateKeyPatterns)
}

// IsConnectionError checks if an error is related to database connectivity
func (c *ErrorClassifier) IsConnectionError(err error) bool {
	return c.matches(err, c.connectionPatterns)
}

// IsTransientError checks if an error is worth retrying (serialization
// failures, deadlocks).
func (c *ErrorClassifier) IsTransientError(err error) bool {
	return c.matches(err, c.transientPatterns)
}

func (c *ErrorClassifier) matches(err error, patterns []string) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	for _, p := range patterns {
		if strings.Contains(msg, strings.ToLower(p)) {
			return true
		}
	}
	return false
}
