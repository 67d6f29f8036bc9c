package gamedomain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDeadlineExpired(t *testing.T) {
	now := time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)
	past := now.Add(-time.Minute)
	future := now.Add(time.Minute)

	assert.False(t, DeadlineExpired(nil, now), "nil deadline never expires")
	assert.True(t, DeadlineExpired(&past, now))
	assert.False(t, DeadlineExpired(&future, now))
	assert.False(t, DeadlineExpired(&now, now), "boundary instant is not yet expired")
}
