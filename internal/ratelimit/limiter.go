package ratelimit

import (
	"sync"
	"time"
)

// Scope is an independently tracked request category.
// Each scope has its own window and ceiling.
type Scope string

const (
	// ScopeAPI covers all /api traffic.
	ScopeAPI Scope = "api"
	// ScopeContact covers contact form submissions.
	ScopeContact Scope = "contact"
)

// Policy defines the window and ceiling for one scope.
type Policy struct {
	Window  time.Duration
	Ceiling int
}

// DefaultPolicies mirrors the limits of the original API:
// 100 requests per 15 minutes for general traffic and
// 5 contact submissions per hour.
func DefaultPolicies() map[Scope]Policy {
	return map[Scope]Policy{
		ScopeAPI:     {Window: 15 * time.Minute, Ceiling: 100},
		ScopeContact: {Window: time.Hour, Ceiling: 5},
	}
}

type recordKey struct {
	clientID string
	scope    Scope
}

type record struct {
	windowStart time.Time
	count       int
}

// Limiter tracks submission counts per client identity over fixed windows.
// One Limiter is constructed per process and shared by all requests, so
// every method is safe for concurrent use.
type Limiter struct {
	mu       sync.Mutex
	policies map[Scope]Policy
	records  map[recordKey]*record
	now      func() time.Time
}

// New creates a limiter with the default scope policies.
func New() *Limiter {
	return NewWithPolicies(DefaultPolicies())
}

// NewWithPolicies creates a limiter with custom scope policies.
func NewWithPolicies(policies map[Scope]Policy) *Limiter {
	return &Limiter{
		policies: policies,
		records:  make(map[recordKey]*record),
		now:      time.Now,
	}
}

// Allow records one attempt for the client in the given scope and reports
// whether it is within the ceiling. Fixed-window counting: a new window
// starts on the first attempt or once the previous window has elapsed.
// The attempt is counted even when denied, so retrying during denial does
// not earn free attempts.
func (l *Limiter) Allow(clientID string, scope Scope) bool {
	policy, ok := l.policies[scope]
	if !ok {
		return true
	}

	now := l.now()

	l.mu.Lock()
	defer l.mu.Unlock()

	key := recordKey{clientID: clientID, scope: scope}
	rec, exists := l.records[key]
	if !exists || now.Sub(rec.windowStart) >= policy.Window {
		l.records[key] = &record{windowStart: now, count: 1}
		return true
	}

	rec.count++
	return rec.count <= policy.Ceiling
}

// Sweep evicts records whose window elapsed before the retention cutoff.
// Eviction is a memory optimization only; Allow resets stale windows on
// its own, so correctness does not depend on Sweep running.
func (l *Limiter) Sweep() {
	now := l.now()

	l.mu.Lock()
	defer l.mu.Unlock()

	for key, rec := range l.records {
		policy, ok := l.policies[key.scope]
		if !ok || now.Sub(rec.windowStart) >= policy.Window {
			delete(l.records, key)
		}
	}
}
