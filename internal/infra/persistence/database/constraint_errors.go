package database

import (
	"strings"

	"nativoseo/internal/errors"

	"gorm.io/gorm"
)

// isUniqueConstraintViolation covers gorm's translated error and the raw driver messages.
func isUniqueConstraintViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}

	errMsg := strings.ToLower(err.Error())

	return strings.Contains(errMsg, "unique constraint") ||
		strings.Contains(errMsg, "duplicate key")
}

func isNotNullConstraintViolation(err error) bool {
	errMsg := strings.ToLower(err.Error())

	return strings.Contains(errMsg, "not null") ||
		strings.Contains(errMsg, "null value") ||
		strings.Contains(errMsg, "23502")
}
