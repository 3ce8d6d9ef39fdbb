// Package clock abstracts the current time so timestamps can be pinned in tests.
package clock

import "time"

type Clock interface {
	Now() time.Time
}

type realClock struct{}

// New returns the wall clock in UTC.
func New() Clock { return realClock{} }

func (realClock) Now() time.Time { return time.Now().UTC() }

// Fixed always returns T.
type Fixed struct {
	T time.Time
}

func (f Fixed) Now() time.Time { return f.T }
