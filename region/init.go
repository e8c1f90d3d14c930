package region

// ensureInit performs the one-time setup described in spec §4.1: zero the
// bitmap, thread the block pool into a singly linked free list, and stamp
// the sentinel. It never touches the queue table or block payload bytes;
// those are only meaningful once the bitmap or a chain says they are live.
//
// CreateQueue calls ensureInit before doing anything else; the other entry
// points validate their handle instead, which fails on an uninitialized
// Region. Once the sentinel is stamped ensureInit does nothing, so calling
// it any number of times on a Region of indeterminate initial content
// converges to the same state as calling it once.
func (r *Region) ensureInit() {
	if r.sentinel() == sentinelValue {
		return
	}

	r.setWord64(0)

	for i := 0; i < NumBlocks-1; i++ {
		r.setBlockMeta(byte(i), byte(i+1))
	}
	r.setBlockMeta(byte(NumBlocks-1), none)
	r.setFreeHead(0)

	r.setSentinel(sentinelValue)
}
