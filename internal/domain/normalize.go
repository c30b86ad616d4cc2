package domain

import (
	"strings"

	"golang.org/x/text/cases"
)

// NormalizeEmail folds an email address so that directory lookups are case-insensitive.
func NormalizeEmail(email string) string {
	return cases.Fold().String(strings.TrimSpace(email))
}

// NormalizeHandle strips the leading @ from a user group handle and folds its case.
func NormalizeHandle(handle string) string {
	handle = strings.TrimPrefix(strings.TrimSpace(handle), "@")
	return cases.Fold().String(handle)
}
