package web

// cache is a fixed size ring of frame hashes, mirroring the
// frames a client has stored.
type cache struct {
	hashes []uint64
	used   []bool
	idx    int
}

func newCache(size int) *cache {
	return &cache{
		hashes: make([]uint64, size),
		used:   make([]bool, size),
	}
}

// add stores hash in the next slot, overwriting the oldest, and
// returns the slot.
func (c *cache) add(hash uint64) int {
	slot := c.idx
	c.hashes[slot] = hash
	c.used[slot] = true
	c.idx = (c.idx + 1) % len(c.hashes)
	return slot
}

// index returns the slot holding hash, or -1.
func (c *cache) index(hash uint64) int {
	for i, h := range c.hashes {
		if c.used[i] && h == hash {
			return i
		}
	}

	return -1
}

// reset forgets every slot.
func (c *cache) reset() {
	for i := range c.used {
		c.used[i] = false
	}
	c.idx = 0
}
