package domain

import (
	"strings"

	"golang.org/x/text/cases"
)

// NormalizeEmail prepares an email for comparison: trims surrounding
// whitespace and applies Unicode case folding.
func NormalizeEmail(email string) string {
	email = strings.TrimSpace(email)
	if email == "" {
		return ""
	}
	// A Caser is stateful, so one is built per call.
	return cases.Fold().String(email)
}

// NormalizeName prepares a display name for storage:
//   - trims leading/trailing whitespace
//   - compresses runs of spaces into one
//
// Case is preserved.
func NormalizeName(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return ""
	}

	var b strings.Builder
	b.Grow(len(name))
	prevSpace := false
	for _, r := range name {
		if r == ' ' {
			if prevSpace {
				continue
			}
			prevSpace = true
		} else {
			prevSpace = false
		}
		b.WriteRune(r)
	}
	return b.String()
}

// ContainsFold reports whether substr is within s, ignoring case.
func ContainsFold(s, substr string) bool {
	fold := cases.Fold()
	return strings.Contains(fold.String(s), fold.String(substr))
}
