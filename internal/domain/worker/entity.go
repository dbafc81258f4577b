package worker

import "strings"

// Worker is a roster entry. OpsID is immutable once created.
type Worker struct {
	OpsID    string `json:"opsId"`
	FullName string `json:"fullName"`
}

// CanonicalOpsID returns the canonical (upper case, trimmed) form of an identifier.
func CanonicalOpsID(raw string) string {
	return strings.ToUpper(strings.TrimSpace(raw))
}
