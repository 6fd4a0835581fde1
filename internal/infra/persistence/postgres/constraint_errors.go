package postgres

import (
	"strings"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// isUniqueConstraintViolation reports whether err is a unique index
// violation. GORM only surfaces ErrDuplicatedKey when error translation
// is enabled on the dialector, so the raw driver message is checked too.
func isUniqueConstraintViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}

	msg := strings.ToLower(err.Error())

	return strings.Contains(msg, "duplicate key") ||
		strings.Contains(msg, "unique constraint") ||
		strings.Contains(msg, "23505") // PostgreSQL unique_violation error code
}

// violatesConstraint reports whether the driver error names the given
// constraint. Used to tell apart which unique index fired when a table
// carries more than one.
func violatesConstraint(err error, name string) bool {
	if err == nil {
		return false
	}

	return strings.Contains(strings.ToLower(err.Error()), name)
}
