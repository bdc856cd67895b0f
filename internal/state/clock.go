package state

import "github.com/google/uuid"

// revisionClock counts board mutations. The board renderer compares
// revisions to skip rebuilding shapes that have not changed.
type revisionClock struct {
	counter uint64
}

func (c *revisionClock) tick() uint64 {
	c.counter++
	return c.counter
}

func (c *revisionClock) current() uint64 {
	return c.counter
}

func newSessionID() string {
	return uuid.NewString()
}
