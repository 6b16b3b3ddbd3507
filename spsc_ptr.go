// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package bbq

import "unsafe"

// SPSCPtr is a block-based SPSC queue for unsafe.Pointer values.
// Useful for zero-copy pointer passing between goroutines: the producer
// transfers ownership of the pointed-to object to the consumer and must
// not access it after Enqueue returns.
//
// SPSCPtr runs the same block cursor protocol as SPSC.
type SPSCPtr struct {
	q *SPSC[unsafe.Pointer]
}

// NewSPSCPtr creates a new block-based SPSC queue for unsafe.Pointer
// values. Construction constraints match NewSPSC.
func NewSPSCPtr(capacity, blocks int) *SPSCPtr {
	return &SPSCPtr{q: NewSPSC[unsafe.Pointer](capacity, blocks)}
}

// Enqueue adds an element (producer only).
// Returns ErrWouldBlock if the queue is full.
func (q *SPSCPtr) Enqueue(elem unsafe.Pointer) error {
	return q.q.Enqueue(&elem)
}

// Dequeue removes and returns an element (consumer only).
// Returns (nil, ErrWouldBlock) if the queue is empty.
func (q *SPSCPtr) Dequeue() (unsafe.Pointer, error) {
	return q.q.Dequeue()
}

// Cap returns the queue capacity.
func (q *SPSCPtr) Cap() int {
	return q.q.Cap()
}

// Blocks returns the number of blocks in the ring.
func (q *SPSCPtr) Blocks() int {
	return q.q.Blocks()
}

// EntriesPerBlock returns the number of entries in each block.
func (q *SPSCPtr) EntriesPerBlock() int {
	return q.q.EntriesPerBlock()
}

// Snapshot returns a diagnostic dump of the queue. See SPSC.Snapshot for
// the consistency caveats.
func (q *SPSCPtr) Snapshot() []BlockSnapshot[unsafe.Pointer] {
	return q.q.Snapshot()
}
