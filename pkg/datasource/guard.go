package datasource

import (
	"sync"
	"sync/atomic"
)

// ActuatorState is the single shared on/off flag behind a toggle source.
// It is owned exclusively by a Guard and only touched under its lock.
type ActuatorState struct {
	on bool
}

// On returns the flag.
func (s *ActuatorState) On() bool { return s.on }

// SetOn sets the flag.
func (s *ActuatorState) SetOn(on bool) { s.on = on }

// Guard coordinates concurrent readers with a single writer over one
// ActuatorState. Multiple read leases may be held simultaneously; a write
// excludes all readers and other writers.
//
// A read lease spans the read-use-release interval: AcquireRead takes the
// read lock and the returned lease holds it until Release. A source must
// never nest an acquisition inside another acquisition on the same guard.
type Guard struct {
	mu    sync.RWMutex
	state ActuatorState
}

// NewGuard returns a Guard owning a fresh ActuatorState with the given
// initial flag.
func NewGuard(initial bool) *Guard {
	g := &Guard{}
	g.state.on = initial
	return g
}

// AcquireRead takes the read lock and returns a single-use lease exposing
// the live state. The lock is held until the lease is released.
func (g *Guard) AcquireRead() *ReadLease {
	g.mu.RLock()
	return &ReadLease{guard: g}
}

// Write runs fn with exclusive access to the state. The lock is acquired
// and released entirely within this call.
func (g *Guard) Write(fn func(s *ActuatorState)) {
	g.mu.Lock()
	defer g.mu.Unlock()
	fn(&g.state)
}

// ReadLease is a single-use token for a held read lock. The state it
// exposes is only valid until Release.
type ReadLease struct {
	guard    *Guard
	released atomic.Bool
}

// On returns the live flag. Must not be called after Release.
func (l *ReadLease) On() bool {
	return l.guard.state.on
}

// Release drops the read lock. Safe to call more than once; only the
// first call has an effect.
func (l *ReadLease) Release() {
	if l.released.CompareAndSwap(false, true) {
		l.guard.mu.RUnlock()
	}
}
