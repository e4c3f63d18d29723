package shutdown

import (
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRunHooksSetsFlagAndFiresHooks(t *testing.T) {
	reset()
	t.Cleanup(reset)

	var calls atomic.Int32
	RegisterHook(func(grace time.Duration) error {
		assert.Equal(t, time.Second, grace)
		calls.Add(1)
		return nil
	})
	RegisterHook(func(time.Duration) error {
		calls.Add(1)
		return errors.New("hook failed")
	})

	assert.False(t, CheckShutdown())
	runHooks(time.Second)

	assert.True(t, CheckShutdown())
	assert.Equal(t, int32(2), calls.Load())
}

func TestRunHooksGivesUpAfterGrace(t *testing.T) {
	reset()
	t.Cleanup(reset)

	release := make(chan struct{})
	defer close(release)
	RegisterHook(func(time.Duration) error {
		<-release
		return nil
	})

	start := time.Now()
	runHooks(50 * time.Millisecond)
	assert.Less(t, time.Since(start), 2*time.Second)
	assert.True(t, CheckShutdown())
}
