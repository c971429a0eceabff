// Package models holds login lockout records.
package models

import (
	"strings"
	"time"
)

// Lockout tracks failed logins for one account key.
type Lockout struct {
	Key           string     `json:"key"`
	FailureCount  int        `json:"failure_count"`
	LastFailureAt time.Time  `json:"last_failure_at"`
	LockedUntil   *time.Time `json:"locked_until,omitempty"`
}

// LockedAt reports whether the key is locked at now.
func (l *Lockout) LockedAt(now time.Time) bool {
	return l.LockedUntil != nil && now.Before(*l.LockedUntil)
}

// SanitizeKeySegment escapes the key delimiter so a username containing ':'
// cannot collide with another scope.
func SanitizeKeySegment(s string) string {
	return strings.ReplaceAll(s, ":", "_")
}

// Key builds the lockout key for a login scope (role) and username.
// Usernames are matched case-insensitively.
func Key(scope, identifier string) string {
	return SanitizeKeySegment(scope) + ":" + SanitizeKeySegment(strings.ToLower(strings.TrimSpace(identifier)))
}
