package forms

import (
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGateAcquireRelease(t *testing.T) {
	g := NewGate()

	release, ok := g.Acquire("login:abc")
	require.True(t, ok)

	_, ok = g.Acquire("login:abc")
	assert.False(t, ok, "second acquire for the same key must be refused")

	_, ok = g.Acquire("register:abc")
	assert.True(t, ok, "other keys are independent")

	release()
	release()

	_, ok = g.Acquire("login:abc")
	assert.True(t, ok)
}

func TestGateConcurrentAcquire(t *testing.T) {
	g := NewGate()

	var admitted atomic.Int32
	var wg sync.WaitGroup
	start := make(chan struct{})
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-start
			if _, ok := g.Acquire("login:same"); ok {
				admitted.Add(1)
			}
		}()
	}
	close(start)
	wg.Wait()

	assert.Equal(t, int32(1), admitted.Load())
}
