package region

// allocBlock pops the head of the free-block singly linked list and returns
// its index. The popped block's payload and metadata byte are left exactly
// as the free list left them, not zeroed. The caller is obliged to
// overwrite both before they become observable through a queue, per spec
// §4.3.
func (r *Region) allocBlock(hooks Hooks) byte {
	head := r.freeHead()
	if head == none {
		hooks.outOfMemory("block pool exhausted")
		panic("unreachable")
	}

	next := r.blockMeta(head)
	r.setFreeHead(next)
	return head
}

// freeBlock pushes block i back onto the free list, LIFO, for cache-warm
// reuse of the block most recently released.
func (r *Region) freeBlock(i byte) {
	r.setBlockMeta(i, r.freeHead())
	r.setFreeHead(i)
}
