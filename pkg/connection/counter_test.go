package connection

import (
	"sync"
	"testing"
)

func TestCounter(t *testing.T) {
	t.Run("StartsAtZero", func(t *testing.T) {
		var c Counter
		for i := 0; i < 3; i++ {
			if got := c.Next(); got != uint16(i) {
				t.Errorf("Next() = %d, want %d", got, i)
			}
		}
		if c.Peek() != 3 {
			t.Errorf("Peek() = %d, want 3", c.Peek())
		}
	})

	t.Run("Wraps", func(t *testing.T) {
		c := NewCounter(65534)
		want := []uint16{65534, 65535, 0, 1}
		for i, w := range want {
			if got := c.Next(); got != w {
				t.Errorf("Next() #%d = %d, want %d", i, got, w)
			}
		}
	})

	t.Run("WrapsPastUint32Boundary", func(t *testing.T) {
		c := &Counter{}
		c.v.Store(^uint32(0))
		if got := c.Next(); got != 0xFFFF {
			t.Errorf("Next() = %d, want 65535", got)
		}
		if got := c.Next(); got != 0 {
			t.Errorf("Next() = %d, want 0", got)
		}
	})

	t.Run("ConcurrentUnique", func(t *testing.T) {
		c := NewCounter(65000)
		const workers, per = 8, 250

		var mu sync.Mutex
		seen := make(map[uint16]int)
		var wg sync.WaitGroup
		for w := 0; w < workers; w++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				for i := 0; i < per; i++ {
					v := c.Next()
					mu.Lock()
					seen[v]++
					mu.Unlock()
				}
			}()
		}
		wg.Wait()

		if len(seen) != workers*per {
			t.Fatalf("got %d distinct values, want %d", len(seen), workers*per)
		}
		for i := 0; i < workers*per; i++ {
			v := uint16(65000 + i)
			if seen[v] != 1 {
				t.Errorf("value %d seen %d times", v, seen[v])
			}
		}
	})
}
