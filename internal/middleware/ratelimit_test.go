package middleware

import (
	"errors"
	"testing"

	pkgErrors "sales-task-tracker/pkg/errors"
)

func TestRateLimiterAllow(t *testing.T) {
	rl := newRateLimiter(10) // burst of 1

	if err := rl.Allow("client"); err != nil {
		t.Fatalf("first request: %v", err)
	}
	err := rl.Allow("client")
	if !errors.Is(err, pkgErrors.ErrTooManyRequests) {
		t.Errorf("expected ErrTooManyRequests, got %v", err)
	}
}
