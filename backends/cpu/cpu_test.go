package cpu_test

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/axonml/axon/backends"
	"github.com/axonml/axon/backends/cpu"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisteredOnImport(t *testing.T) {
	require.True(t, backends.IsRegistered(backends.CPU))

	h := backends.HooksFor(backends.CPU)
	assert.True(t, h.IsAvailable())
	assert.Equal(t, "cpu", h.Name())
	require.Same(t, h, backends.HooksFor(backends.CPU))

	assert.True(t, h.HasCapability(backends.CapabilityAsyncExecution))
	assert.True(t, h.HasCapability(backends.CapabilityUnifiedMemory))
	assert.False(t, h.HasCapability(backends.CapabilityPinnedMemory))
}

func TestDefaultGeneratorIsShared(t *testing.T) {
	b := cpu.New().(*cpu.Backend)
	g1 := b.DefaultGenerator()
	g2 := b.DefaultGenerator()
	require.Same(t, g1, g2)
}

func TestSynchronizeDrainsScheduledWork(t *testing.T) {
	b := cpu.New().(*cpu.Backend)
	require.NoError(t, b.Synchronize(), "no outstanding work")

	var done atomic.Int64
	for range 50 {
		b.Run(func() error {
			time.Sleep(time.Millisecond)
			done.Add(1)
			return nil
		})
	}
	require.NoError(t, b.Synchronize())
	assert.EqualValues(t, 50, done.Load(), "Synchronize must wait for every scheduled task")
}

func TestSynchronizeReportsTaskFailureOnce(t *testing.T) {
	b := cpu.New().(*cpu.Backend)

	b.Run(func() error { return nil })
	b.Run(func() error { return errors.New("kernel exploded") })
	b.Run(func() error { return nil })

	err := b.Synchronize()
	require.Error(t, err)
	var devErr *backends.DeviceError
	require.ErrorAs(t, err, &devErr)
	assert.Equal(t, backends.CPU, devErr.Device)
	assert.ErrorContains(t, err, "kernel exploded")

	// The fault was delivered; the next Synchronize starts clean.
	require.NoError(t, b.Synchronize())
}

func TestSynchronizeSurvivesPanickingTask(t *testing.T) {
	b := cpu.New().(*cpu.Backend)

	b.Run(func() error { panic("bad kernel") })
	err := b.Synchronize()
	require.Error(t, err)
	assert.ErrorContains(t, err, "panicked")

	// Workers must still be alive afterwards.
	var done atomic.Int64
	b.Run(func() error { done.Add(1); return nil })
	require.NoError(t, b.Synchronize())
	assert.EqualValues(t, 1, done.Load())
}
