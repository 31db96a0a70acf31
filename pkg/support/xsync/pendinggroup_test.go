// Copyright 2025 The Axon Authors. SPDX-License-Identifier: Apache-2.0

package xsync_test

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/axonml/axon/pkg/support/xsync"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWaitOnEmptyGroupReturnsImmediately(t *testing.T) {
	g := xsync.NewPendingGroup()
	require.NoError(t, g.Wait())
	assert.Zero(t, g.Pending())
}

func TestWaitBlocksUntilDrained(t *testing.T) {
	g := xsync.NewPendingGroup()
	const n = 20
	g.Add(n)

	var completed atomic.Int64
	for range n {
		go func() {
			time.Sleep(time.Millisecond)
			completed.Add(1)
			g.Done()
		}()
	}
	require.NoError(t, g.Wait())
	assert.EqualValues(t, n, completed.Load())
}

func TestFailLatchesFirstErrorAndWaitClearsIt(t *testing.T) {
	g := xsync.NewPendingGroup()
	g.Add(3)
	g.Fail(errors.New("first"))
	g.Fail(errors.New("second"))
	g.Done()

	err := g.Wait()
	require.Error(t, err)
	assert.EqualError(t, err, "first")

	// Delivered once: the next Wait starts clean.
	require.NoError(t, g.Wait())
}

func TestAddWhileWaiting(t *testing.T) {
	g := xsync.NewPendingGroup()
	g.Add(1)

	waited := make(chan error, 1)
	go func() { waited <- g.Wait() }()

	// Grow the set while the waiter is parked, then drain it.
	g.Add(1)
	g.Done()
	g.Done()

	select {
	case err := <-waited:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Wait did not return after the group drained")
	}
}

func TestNegativeCounterPanics(t *testing.T) {
	g := xsync.NewPendingGroup()
	assert.Panics(t, func() { g.Done() })
}
