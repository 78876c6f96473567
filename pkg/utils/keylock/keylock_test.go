package keylock_test

import (
	"sync"
	"testing"

	"github.com/aavshr/fixcache/pkg/utils/keylock"
	"github.com/m-mizutani/gt"
)

func TestLockSerializesSameKey(t *testing.T) {
	locks := keylock.New[int64]()

	counter := 0
	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			unlock := locks.Lock(1)
			defer unlock()
			v := counter
			v++
			counter = v
		}()
	}
	wg.Wait()

	gt.V(t, counter).Equal(100)
	gt.V(t, locks.Len()).Equal(0)
}

func TestLockIndependentKeys(t *testing.T) {
	locks := keylock.New[string]()

	unlockA := locks.Lock("a")
	// Must not block while "a" is held
	unlockB := locks.Lock("b")
	gt.V(t, locks.Len()).Equal(2)

	unlockB()
	unlockA()
	gt.V(t, locks.Len()).Equal(0)
}
