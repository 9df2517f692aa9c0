package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func trackerAt(window time.Duration) (*OTPTracker, *time.Time) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	tr := NewOTPTracker(window)
	tr.now = func() time.Time { return now }
	return tr, &now
}

func TestFirstSendIsAllowed(t *testing.T) {
	tr, _ := trackerAt(60 * time.Second)

	ok, retryIn := tr.MarkSent("a@b.c")
	assert.True(t, ok)
	assert.Zero(t, retryIn)
}

func TestResendInsideWindowIsBlockedWithCountdown(t *testing.T) {
	tr, now := trackerAt(60 * time.Second)

	ok, _ := tr.MarkSent("a@b.c")
	require.True(t, ok)

	*now = now.Add(15 * time.Second)
	ok, retryIn := tr.MarkSent("a@b.c")
	assert.False(t, ok)
	assert.Equal(t, 45, retryIn)
	assert.Equal(t, 45, tr.RetryIn("a@b.c"))
}

func TestResendAllowedAfterWindowElapses(t *testing.T) {
	tr, now := trackerAt(60 * time.Second)

	tr.MarkSent("a@b.c")
	*now = now.Add(61 * time.Second)

	assert.Zero(t, tr.RetryIn("a@b.c"))
	ok, _ := tr.MarkSent("a@b.c")
	assert.True(t, ok)
}

func TestWindowIsPerAddress(t *testing.T) {
	tr, _ := trackerAt(60 * time.Second)

	ok, _ := tr.MarkSent("a@b.c")
	require.True(t, ok)
	ok, _ = tr.MarkSent("x@y.z")
	assert.True(t, ok)
}
