package common

// Counter is a shared integer cell. Every consumer holds the same pointer and
// mutates the value in place; nobody swaps the counter for a new one.
type Counter struct {
	value   int
	initial int
}

func NewCounter(initial int) *Counter {
	return &Counter{value: initial, initial: initial}
}

func (c *Counter) Increment() {
	if c == nil {
		return
	}
	c.value++
}

func (c *Counter) Decrement() {
	if c == nil {
		return
	}
	c.value--
}

func (c *Counter) IncreaseBy(n int) {
	if c == nil {
		return
	}
	c.value += n
}

func (c *Counter) Value() int {
	if c == nil {
		return 0
	}
	return c.value
}

// Reset restores the value the counter was created with.
func (c *Counter) Reset() {
	if c == nil {
		return
	}
	c.value = c.initial
}
