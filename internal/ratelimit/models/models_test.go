package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestKey(t *testing.T) {
	assert.Equal(t, "charity:mehr", Key("charity", " Mehr "))
	assert.Equal(t, "staff:user_admin", Key("staff", "user:admin"))
}

func TestLockedAt(t *testing.T) {
	now := time.Now()
	until := now.Add(time.Minute)
	l := &Lockout{LockedUntil: &until}
	assert.True(t, l.LockedAt(now))
	assert.False(t, l.LockedAt(until))
	assert.False(t, (&Lockout{}).LockedAt(now))
}
