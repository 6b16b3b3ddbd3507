// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package bbq

import (
	"code.hybscloud.com/atomix"
	"code.hybscloud.com/spin"
)

// SPSC is a single-producer single-consumer bounded queue built from a ring
// of fixed-size blocks (BBQ, "Block-based Bounded Queue").
//
// Capacity is split into blocks of capacity/blocks entries each. The
// producer fills one block at a time, tracked by a global producer head;
// the consumer drains one block at a time, tracked by a global consumer
// head. The two heads chase each other around the ring, and a block is
// recycled (version bumped, cursors re-stamped) only after the cooperating
// side has completely finished with it for the matching version. All
// hand-offs are gated on version+index comparisons; there are no locks
// anywhere.
//
// Compared to a Lamport ring, per-entry cross-core traffic is amortized:
// the producer and consumer touch each other's state only at block
// boundaries, once per capacity/blocks operations.
//
// Memory: O(capacity) with four cache lines of cursor overhead per block
type SPSC[T any] struct {
	_ pad
	// phead addresses the block the producer is filling: version counts
	// ring laps, index is the block's ring position. Written only by the
	// producer.
	phead atomix.Uint64
	_     pad
	// chead mirrors phead for the consumer. Written only by the consumer.
	chead   atomix.Uint64
	_       pad
	blocks  []block[T]
	nblocks uint64
	entries uint64 // entries per block
}

// NewSPSC creates a new block-based SPSC queue with the given total
// capacity spread over the given number of blocks.
//
// Panics if capacity < 2, blocks < 1, capacity is not divisible by blocks,
// or a block would hold more entries than a cursor index can address.
// Misconfiguration is rejected here; it is never surfaced mid-operation.
func NewSPSC[T any](capacity, blocks int) *SPSC[T] {
	if capacity < 2 {
		panic("bbq: capacity must be >= 2")
	}
	if blocks < 1 {
		panic("bbq: blocks must be >= 1")
	}
	if capacity%blocks != 0 {
		panic("bbq: capacity must be divisible by blocks")
	}
	entries := uint64(capacity / blocks)
	if entries > maxEntriesPerBlock {
		panic("bbq: too many entries in one block")
	}

	q := &SPSC[T]{
		blocks:  make([]block[T], blocks),
		nblocks: uint64(blocks),
		entries: entries,
	}
	for i := range q.blocks {
		q.blocks[i].data = make([]T, entries)
		// Pre-drained at version 0 so the producer's first hand-off
		// into the block succeeds.
		q.blocks[i].init(entries)
	}
	q.blocks[0].init(0)
	q.phead.StoreRelaxed(uint64(makeField(0, 0)))
	q.chead.StoreRelaxed(uint64(makeField(0, 0)))
	return q
}

// Enqueue adds an element to the queue (producer only).
// Returns ErrWouldBlock if the queue is full.
func (q *SPSC[T]) Enqueue(elem *T) error {
	for {
		ph := field(q.phead.LoadRelaxed())
		b := &q.blocks[ph.index()]

		claimed, st := q.allocate(b)
		if st == success {
			q.commit(b, claimed.index(), elem)
			return nil
		}
		// Block exhausted: hand off to the next block in the ring,
		// then retry against the new producer head.
		if q.advancePHead(ph) != success {
			return ErrWouldBlock
		}
	}
}

// allocate claims the next free entry of b for writing.
//
// The claim is a CAS on the alloc cursor rather than the load-then-store a
// single producer strictly needs; a plain store lets two racing allocators
// claim the same entry, and the CAS costs nothing uncontended.
func (q *SPSC[T]) allocate(b *block[T]) (field, status) {
	sw := spin.Wait{}
	for {
		a := field(b.alloc.LoadRelaxed())
		if a.index() >= q.entries {
			return 0, blockDone
		}
		if b.alloc.CompareAndSwapAcqRel(uint64(a), uint64(a.next())) {
			return a, success
		}
		sw.Once()
	}
}

// commit publishes elem into entry idx of b. The data write happens-before
// the commit release-store, so a consumer that observes the new commit
// value observes the data.
func (q *SPSC[T]) commit(b *block[T], idx uint64, elem *T) {
	b.data[idx] = *elem
	c := field(b.commit.LoadAcquire())
	b.commit.StoreRelease(uint64(c.next()))
}

// advancePHead moves the producer head past an exhausted block. The next
// block is reusable only once the consumer has fully drained it for the
// expected version; until then the producer is either genuinely stalled
// (noEntry: the consumer has nothing left to do on that block either) or
// racing a drain in progress (notAvailable).
func (q *SPSC[T]) advancePHead(ph field) status {
	nb := &q.blocks[(ph.index()+1)%q.nblocks]

	cons := field(nb.consume.LoadAcquire())
	if cons.version() < ph.version() ||
		(cons.version() == ph.version() && cons.index() != q.entries) {
		r := field(nb.reserve.LoadRelaxed())
		if r.index() == cons.index() {
			return noEntry
		}
		return notAvailable
	}

	// Stamp the reclaimed block with the next version. raise keeps a
	// stale stamp from regressing a cursor another advance already moved.
	next := makeField(ph.version()+1, 0)
	raise(&nb.alloc, next)
	raise(&nb.commit, next)

	nph := ph.next()
	if nph.index() >= q.nblocks {
		nph = makeField(ph.version()+1, 0)
	}
	q.phead.StoreRelaxed(uint64(nph))
	return success
}

// Dequeue removes and returns an element (consumer only).
// Returns (zero-value, ErrWouldBlock) if the queue is empty.
func (q *SPSC[T]) Dequeue() (T, error) {
	for {
		ch := field(q.chead.LoadRelaxed())
		b := &q.blocks[ch.index()]

		claimed, st := q.reserve(b)
		switch st {
		case success:
			return q.consume(b, claimed.index()), nil
		case blockDone:
			if q.advanceCHead(ch) == success {
				continue
			}
		}
		// noEntry, notAvailable, or no next block ready: report empty
		// immediately, retry policy belongs to the caller.
		var zero T
		return zero, ErrWouldBlock
	}
}

// reserve claims the next committed entry of b for reading. The CAS retry
// loop tolerates concurrent reservers even though the queue's contract is
// single-consumer.
func (q *SPSC[T]) reserve(b *block[T]) (field, status) {
	sw := spin.Wait{}
	for {
		r := field(b.reserve.LoadRelaxed())
		if r.index() >= q.entries {
			return 0, blockDone
		}
		c := field(b.commit.LoadAcquire())
		if r.index() == c.index() {
			// Nothing committed beyond what is already reserved.
			return 0, noEntry
		}
		if c.index() < q.entries {
			a := field(b.alloc.LoadRelaxed())
			if a.index() != c.index() {
				// A write is in flight at the boundary entry.
				return 0, notAvailable
			}
		}
		if b.reserve.CompareAndSwapAcqRel(uint64(r), uint64(r.next())) {
			return r, success
		}
		sw.Once()
	}
}

// consume extracts entry idx of b and releases it for reclamation. The
// entry is zeroed so referenced objects become collectable; the consume
// release-store publishes the drain to the producer's hand-off check.
func (q *SPSC[T]) consume(b *block[T], idx uint64) T {
	elem := b.data[idx]
	var zero T
	b.data[idx] = zero
	c := field(b.consume.LoadAcquire())
	b.consume.StoreRelease(uint64(c.next()))
	return elem
}

// advanceCHead moves the consumer head past a drained block. The next
// block is readable only once the producer has stamped it with the next
// version, which it does when its own hand-off claims the block.
func (q *SPSC[T]) advanceCHead(ch field) status {
	nb := &q.blocks[(ch.index()+1)%q.nblocks]

	c := field(nb.commit.LoadAcquire())
	if c.version() != ch.version()+1 {
		return noEntry
	}

	next := makeField(ch.version()+1, 0)
	raise(&nb.consume, next)
	raise(&nb.reserve, next)

	nch := ch.next()
	if nch.index() >= q.nblocks {
		nch = makeField(ch.version()+1, 0)
	}
	q.chead.StoreRelaxed(uint64(nch))
	return success
}

// Cap returns the queue capacity.
func (q *SPSC[T]) Cap() int {
	return int(q.nblocks * q.entries)
}

// Blocks returns the number of blocks in the ring.
func (q *SPSC[T]) Blocks() int {
	return int(q.nblocks)
}

// EntriesPerBlock returns the number of entries in each block.
func (q *SPSC[T]) EntriesPerBlock() int {
	return int(q.entries)
}
