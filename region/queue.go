package region

// CreateQueue brings up the region if needed, allocates the lowest-index
// free slot, and returns a Handle to a freshly emptied queue. It fires
// FaultOutOfMemory via hooks if all NumSlots slots are taken.
func (r *Region) CreateQueue(hooks Hooks) Handle {
	r.ensureInit()

	slot, ok := r.findFreeSlot()
	if !ok {
		hooks.outOfMemory("all queue slots in use")
		panic("unreachable")
	}

	r.markSlot(slot)
	r.setDescriptor(slot, none, none)

	return Handle{offset: uint16(descriptorOffset(slot)), region: r}
}

// DestroyQueue validates q, walks its block chain back onto the free list,
// and releases its slot.
func (r *Region) DestroyQueue(hooks Hooks, q Handle) {
	slot := q.validate(r, hooks)

	head := r.descHead(slot)
	tail := r.descTail(slot)
	for head != none {
		var next byte
		if head == tail {
			next = none
		} else {
			next = r.blockMeta(head)
		}
		r.freeBlock(head)
		head = next
	}

	r.setDescriptor(slot, none, none)
	r.clearSlot(slot)
}

// ValidateHandle reports whether q currently refers to a live queue in r,
// without firing any hook. Hosts that want to pre-check a handle before
// risking a fault can use this instead of calling an operation speculatively.
func (r *Region) ValidateHandle(q Handle) bool {
	if q.region == nil || q.region != r {
		return false
	}
	if r.sentinel() != sentinelValue {
		return false
	}
	if q.offset < queueTableOff || q.offset >= queueTableOff+queueTableLen {
		return false
	}
	if (q.offset-queueTableOff)%slotSize != 0 {
		return false
	}
	return r.slotMarked(q.slot())
}

// Enqueue validates q and appends b as the newest byte of its FIFO. It fires
// FaultOutOfMemory via hooks if the block pool is exhausted.
func (r *Region) Enqueue(hooks Hooks, q Handle, b byte) {
	slot := q.validate(r, hooks)

	head := r.descHead(slot)
	if head == none {
		blk := r.allocBlock(hooks)
		r.setBlockPayloadByte(blk, 0, b)
		r.setBlockMeta(blk, packOffsets(0, 1))
		r.setDescriptor(slot, blk, blk)
		return
	}

	tail := r.descTail(slot)
	headOff, tailOff := unpackOffsets(r.blockMeta(tail))

	if tailOff < PayloadSize {
		r.setBlockPayloadByte(tail, int(tailOff), b)
		r.setBlockMeta(tail, packOffsets(headOff, tailOff+1))
		return
	}

	newBlock := r.allocBlock(hooks)
	// The tail block transitions from tail to interior: its metadata
	// byte is repurposed from packed offsets to a next-pointer. headOff
	// must be read out before this overwrite, since it only lives in the
	// tail's metadata. See spec §4.6's "crucial detail".
	r.setBlockMeta(tail, newBlock)
	r.setBlockPayloadByte(newBlock, 0, b)
	r.setBlockMeta(newBlock, packOffsets(headOff, 1))
	r.setDescriptor(slot, head, newBlock)
}

// Dequeue validates q, removes the oldest byte of its FIFO and returns it.
// It fires FaultIllegalOperation via hooks if the queue is empty.
func (r *Region) Dequeue(hooks Hooks, q Handle) byte {
	slot := q.validate(r, hooks)

	head := r.descHead(slot)
	if head == none {
		hooks.illegalOperation("dequeue from empty queue")
		panic("unreachable")
	}
	tail := r.descTail(slot)

	headOff, tailOff := unpackOffsets(r.blockMeta(tail))
	result := r.blockPayloadByte(head, int(headOff))
	headOff++

	if headOff == PayloadSize {
		if head == tail {
			r.freeBlock(head)
			r.setDescriptor(slot, none, none)
			return result
		}

		next := r.blockMeta(head)
		r.freeBlock(head)
		r.setDescriptor(slot, next, tail)
		r.setBlockMeta(tail, packOffsets(0, tailOff))
		return result
	}

	r.setBlockMeta(tail, packOffsets(headOff, tailOff))
	if head == tail && headOff == tailOff {
		r.freeBlock(head)
		r.setDescriptor(slot, none, none)
	}
	return result
}
