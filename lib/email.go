package lib

import (
	"net/mail"
	"strings"
)

// ValidEmail reports whether s is a syntactically valid bare email address.
func ValidEmail(s string) bool {
	addr, err := mail.ParseAddress(s)
	if err != nil {
		return false
	}
	// Reject display-name forms like `Name <a@b.c>`; only the bare address
	// is acceptable as a customer email.
	return addr.Address == strings.TrimSpace(s)
}
