package ecs

// Cursor provides restartable iteration over every entity matching a
// Filter across the World's Chunks, row-major within a Chunk and in
// archetype-map enumeration order between Chunks.
type Cursor struct {
	world  *World
	filter *Filter

	matched     []*Chunk
	versions    []uint64
	chunkIdx    int
	rowIdx      int
	initialized bool
}

func newCursor(w *World, filter *Filter) *Cursor {
	return &Cursor{world: w, filter: filter}
}

func (c *Cursor) initialize() {
	if c.initialized {
		return
	}
	for _, chunk := range c.world.chunksList {
		if c.filter.matchesChunk(chunk) {
			c.matched = append(c.matched, chunk)
		}
	}
	c.versions = make([]uint64, len(c.matched))
	c.chunkIdx, c.rowIdx = 0, -1
	c.initialized = true
}

func (c *Cursor) currentChunk() *Chunk {
	return c.matched[c.chunkIdx]
}

// checkVersion panics with ConcurrentModificationError if the current
// chunk's structural-mutation counter has changed since it was captured
// on entry to that chunk.
func (c *Cursor) checkVersion() {
	if !Config.Checked {
		return
	}
	if c.currentChunk().structVersion != c.versions[c.chunkIdx] {
		panic(ConcurrentModificationError{})
	}
}

// Next advances the cursor to the next matching row and reports whether
// one was found.
func (c *Cursor) Next() bool {
	c.initialize()
	for c.chunkIdx < len(c.matched) {
		chunk := c.currentChunk()
		if c.rowIdx == -1 {
			c.versions[c.chunkIdx] = chunk.structVersion
		} else {
			c.checkVersion()
		}
		c.rowIdx++
		for c.rowIdx < chunk.Len() {
			e := chunk.entities[c.rowIdx]
			if c.filter.matchesRow(c.world, e) {
				return true
			}
			c.rowIdx++
		}
		c.chunkIdx++
		c.rowIdx = -1
	}
	return false
}

// Entity returns the entity at the cursor's current position.
func (c *Cursor) Entity() Entity {
	return c.currentChunk().entities[c.rowIdx]
}

// Reset rewinds the cursor so the next Next() call re-evaluates matching
// chunks from scratch.
func (c *Cursor) Reset() {
	c.matched = nil
	c.versions = nil
	c.chunkIdx, c.rowIdx = 0, 0
	c.initialized = false
}

// Count reports the total number of rows the filter currently matches,
// ignoring per-row array requirements (a cheap upper bound).
func (c *Cursor) Count() int {
	c.initialize()
	n := 0
	for _, chunk := range c.matched {
		n += chunk.Len()
	}
	return n
}
