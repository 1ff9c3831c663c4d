package ports

import "context"

// LoginThrottle tracks failed password attempts per email so repeated
// guessing can be slowed down. Implementations are expected to expire
// counts after a window. A nil throttle disables throttling.
type LoginThrottle interface {
	// Blocked reports whether the email has exceeded the failure threshold
	// within the current window.
	Blocked(ctx context.Context, email string) (bool, error)
	// RecordFailure notes one more failed attempt for the email.
	RecordFailure(ctx context.Context, email string) error
	// Reset clears the failure count after a successful login.
	Reset(ctx context.Context, email string) error
}
