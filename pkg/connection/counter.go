package connection

import "sync/atomic"

// Counter is a 16-bit message counter that wraps modulo 65536.
// The zero value starts at 0 and is safe for concurrent use.
type Counter struct {
	v atomic.Uint32
}

// NewCounter returns a counter whose first Next returns start.
func NewCounter(start uint16) *Counter {
	c := &Counter{}
	c.v.Store(uint32(start))
	return c
}

// Next returns the current value and advances the counter.
func (c *Counter) Next() uint16 {
	return uint16(c.v.Add(1) - 1)
}

// Peek returns the value the next call to Next will return.
func (c *Counter) Peek() uint16 {
	return uint16(c.v.Load())
}
