package utils

import (
	"sync"
	"time"
)

// OTPTracker enforces the resend window of the registration flow: one
// OTP email per address per window. In-memory only; a restart simply
// allows an immediate resend.
type OTPTracker struct {
	mu     sync.Mutex
	window time.Duration
	sent   map[string]time.Time
	now    func() time.Time
}

func NewOTPTracker(window time.Duration) *OTPTracker {
	if window <= 0 {
		window = 60 * time.Second
	}
	return &OTPTracker{window: window, sent: map[string]time.Time{}, now: time.Now}
}

// MarkSent records a send and returns false with the seconds remaining
// when the address is still inside its window.
func (t *OTPTracker) MarkSent(email string) (ok bool, retryIn int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	now := t.now()
	if last, seen := t.sent[email]; seen {
		if remaining := t.window - now.Sub(last); remaining > 0 {
			return false, int(remaining.Seconds() + 0.5)
		}
	}
	t.sent[email] = now
	return true, 0
}

// RetryIn reports the seconds left in the window, 0 when a resend is
// allowed.
func (t *OTPTracker) RetryIn(email string) int {
	t.mu.Lock()
	defer t.mu.Unlock()
	if last, seen := t.sent[email]; seen {
		if remaining := t.window - t.now().Sub(last); remaining > 0 {
			return int(remaining.Seconds() + 0.5)
		}
	}
	return 0
}
