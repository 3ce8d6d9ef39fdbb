// Package idgen provides task identifier generation.
package idgen

import (
	"fmt"
	"sync/atomic"

	"github.com/google/uuid"
)

// Generator produces unique identifiers.
type Generator interface {
	NewID() string
}

type uuidGenerator struct{}

// NewUUID returns a Generator backed by random (v4) UUIDs.
func NewUUID() Generator { return uuidGenerator{} }

func (uuidGenerator) NewID() string { return uuid.NewString() }

// Sequence yields Prefix-1, Prefix-2, ... and is safe for concurrent use.
type Sequence struct {
	Prefix string
	n      atomic.Int64
}

func (s *Sequence) NewID() string {
	return fmt.Sprintf("%s-%d", s.Prefix, s.n.Add(1))
}
