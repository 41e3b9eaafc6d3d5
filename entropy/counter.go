package entropy

import (
	"sync/atomic"
)

// CountingFacility counts the reads served by the wrapped facility.
type CountingFacility struct {
	Facility
	reads atomic.Int64
	bytes atomic.Int64
}

var _ Facility = (*CountingFacility)(nil)

func (c *CountingFacility) Read(p []byte) (n int, err error) {
	n, err = c.Facility.Read(p)
	c.reads.Add(1)
	if n > 0 {
		c.bytes.Add(int64(n))
	}
	return n, err
}

func (c *CountingFacility) Reads() (count int64) {
	return c.reads.Load()
}

func (c *CountingFacility) Bytes() (count int64) {
	return c.bytes.Load()
}

func NewCountingFacility(f Facility) (c *CountingFacility) {
	return &CountingFacility{Facility: f}
}
