package utils

import (
	"github.com/google/uuid"
)

// GenerateInstanceID returns a new unique identifier for this
// installation, minted once and persisted.
func GenerateInstanceID() string {
	return uuid.New().String()
}
