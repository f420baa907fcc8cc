package locks

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestShopLocker_MutualExclusionPerShop(t *testing.T) {
	l := NewShopLocker()

	const workers = 8
	const iterations = 200
	counter := 0

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < iterations; j++ {
				l.Lock(1)
				counter++
				l.Unlock(1)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, workers*iterations, counter)
}

func TestShopLocker_DifferentShopsDoNotContend(t *testing.T) {
	l := NewShopLocker()

	l.Lock(1)
	done := make(chan struct{})
	go func() {
		l.Lock(2) // must not block on shop 1's lock
		l.Unlock(2)
		close(done)
	}()
	<-done
	l.Unlock(1)
}
