// Package ident assigns store ids. Ids are ULIDs: opaque strings whose
// lexicographic order matches creation order, which is what the feed's
// cursor pagination relies on.
package ident

import (
	"crypto/rand"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
)

type Generator struct {
	mu      sync.Mutex
	entropy *ulid.MonotonicEntropy
}

func NewGenerator() *Generator {
	return &Generator{entropy: ulid.Monotonic(rand.Reader, 0)}
}

// NewID returns a fresh id strictly greater than any id this generator
// produced before.
func (g *Generator) NewID() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	return ulid.MustNew(ulid.Timestamp(time.Now()), g.entropy).String()
}

// Valid reports whether s parses as a store-assigned id.
func Valid(s string) bool {
	_, err := ulid.ParseStrict(s)
	return err == nil
}
