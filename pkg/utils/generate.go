package utils

import (
	"github.com/google/uuid"
)

// ==================== UUID ====================

func GenerateUUIDString() string {
	return uuid.New().String()
}

// FormatUUIDBytes formats the raw 16-byte uuid form some drivers return.
func FormatUUIDBytes(b [16]byte) string {
	return uuid.UUID(b).String()
}
