package concurrency

import (
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLockManager_SerializesSameKey(t *testing.T) {
	lm := NewLockManager()

	var inside, maxInside atomic.Int32
	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			unlock := lm.Lock("CSGO-O4Jsi-V36wY-rTMGK-9w7qF-jQ8WB")
			defer unlock()

			n := inside.Add(1)
			for {
				m := maxInside.Load()
				if n <= m || maxInside.CompareAndSwap(m, n) {
					break
				}
			}
			time.Sleep(time.Millisecond)
			inside.Add(-1)
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), maxInside.Load())
	assert.Zero(t, lm.Len(), "released keys are dropped")
}

func TestLockManager_IndependentKeys(t *testing.T) {
	lm := NewLockManager()

	unlockA := lm.Lock("a")
	defer unlockA()

	acquired := make(chan struct{})
	go func() {
		unlock := lm.Lock("b")
		unlock()
		close(acquired)
	}()

	select {
	case <-acquired:
	case <-time.After(time.Second):
		t.Fatal("lock on b blocked behind a")
	}
	assert.Equal(t, 1, lm.Len())
}

func TestLockManager_UnlockTwiceIsSafe(t *testing.T) {
	lm := NewLockManager()

	unlock := lm.Lock("k")
	unlock()
	unlock()

	assert.Zero(t, lm.Len())

	// key is usable again
	lm.Lock("k")()
}
