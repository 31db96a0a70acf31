// Copyright 2025 The Axon Authors. SPDX-License-Identifier: Apache-2.0

// Package xsync provides the synchronization helpers used by the backends.
package xsync

import (
	"sync"

	"github.com/pkg/errors"
)

// PendingGroup tracks a dynamically growing set of in-flight operations and
// lets callers wait for the set to drain.
//
// It differs from sync.WaitGroup in two ways: Add may be called while
// another goroutine is waiting (waiters simply keep waiting for the new
// work too), and a failed operation can record its error with Fail, to be
// collected by the next Wait.
//
// It uses sync.Cond to coordinate changes.
type PendingGroup struct {
	mu    sync.Mutex
	cond  *sync.Cond
	count int64

	// firstErr is the first failure recorded since the last Wait.
	firstErr error
}

// NewPendingGroup creates an empty PendingGroup.
func NewPendingGroup() *PendingGroup {
	g := &PendingGroup{}
	g.cond = sync.NewCond(&g.mu)
	return g
}

// Add changes the in-flight counter by delta. It panics if the counter
// would go negative. When the counter reaches zero it wakes all waiters.
func (g *PendingGroup) Add(delta int) {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.count += int64(delta)
	if g.count < 0 {
		panic(errors.Errorf("PendingGroup: negative counter"))
	}
	if g.count == 0 {
		g.cond.Broadcast()
	}
}

// Done marks one operation as completed successfully.
func (g *PendingGroup) Done() {
	g.Add(-1)
}

// Fail marks one operation as completed with the given error and records
// it. Only the first failure since the last Wait is kept; later ones are
// dropped in its favor (but still count as completed).
func (g *PendingGroup) Fail(err error) {
	g.mu.Lock()
	if g.firstErr == nil && err != nil {
		g.firstErr = err
	}
	g.count--
	if g.count < 0 {
		g.mu.Unlock()
		panic(errors.Errorf("PendingGroup: negative counter"))
	}
	if g.count == 0 {
		g.cond.Broadcast()
	}
	g.mu.Unlock()
}

// Wait blocks until the in-flight counter is zero, then returns the first
// error recorded by Fail since the previous Wait, clearing it. Operations
// added while waiting are waited for as well.
func (g *PendingGroup) Wait() error {
	g.mu.Lock()
	defer g.mu.Unlock()

	// Loop because sync.Cond.Wait can wake spuriously, and because new
	// operations may have been added since the broadcast.
	for g.count > 0 {
		g.cond.Wait()
	}
	err := g.firstErr
	g.firstErr = nil
	return err
}

// Pending returns the current in-flight count. It is inherently racy and
// meant for metrics and tests.
func (g *PendingGroup) Pending() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return int(g.count)
}
