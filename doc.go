// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package bbq provides a block-based bounded SPSC queue.
//
// The queue splits its capacity into a fixed ring of equally-sized blocks.
// The producer fills one block at a time and the consumer drains one block
// at a time; they synchronize only at block boundaries, where a block is
// handed from one side to the other based on version+index cursor
// comparisons. No locks, no blocking syscalls, no internal waiting: both
// Enqueue and Dequeue attempt once and return ErrWouldBlock when they
// cannot proceed.
//
// Compared to a classic single-ring SPSC queue, the block structure
// amortizes cross-core cache traffic: within a block each side works
// against its own cursors, and the expensive cross-side check happens once
// per capacity/blocks operations instead of once per entry.
//
// # Quick Start
//
// Direct constructors:
//
//	q := bbq.NewSPSC[Event](1024, 8)   // 8 blocks of 128 entries
//	q := bbq.NewSPSCPtr(4096, 16)      // unsafe.Pointer payloads
//
// Builder API:
//
//	q := bbq.Build[Event](bbq.New(1024).Blocks(8))
//	q := bbq.New(4096).Blocks(16).BuildPtr()
//
// # Basic Usage
//
//	q := bbq.NewSPSC[int](1024, 8)
//
//	// Enqueue (non-blocking, producer goroutine only)
//	value := 42
//	err := q.Enqueue(&value)
//	if bbq.IsWouldBlock(err) {
//	    // Queue is full - handle backpressure
//	}
//
//	// Dequeue (non-blocking, consumer goroutine only)
//	elem, err := q.Dequeue()
//	if bbq.IsWouldBlock(err) {
//	    // Queue is empty - try again later
//	}
//
// # Pipeline Pattern
//
//	q := bbq.NewSPSC[Data](1024, 8)
//
//	go func() { // Producer
//	    backoff := iox.Backoff{}
//	    for data := range input {
//	        for q.Enqueue(&data) != nil {
//	            backoff.Wait()
//	        }
//	        backoff.Reset()
//	    }
//	}()
//
//	go func() { // Consumer
//	    backoff := iox.Backoff{}
//	    for {
//	        data, err := q.Dequeue()
//	        if err != nil {
//	            backoff.Wait()
//	            continue
//	        }
//	        backoff.Reset()
//	        process(data)
//	    }
//	}()
//
// # Capacity and Geometry
//
// Capacity and block count are fixed at construction: the queue never
// grows, and blocks are never reallocated. Reuse of a block is modeled by
// a per-block version counter, so the same memory is recycled lap after
// lap. Construction requires capacity >= 2, blocks >= 1, and capacity
// evenly divisible by blocks; violations panic at construction and are
// never surfaced mid-operation.
//
// Length is intentionally not provided because accurate counts in
// lock-free algorithms require expensive cross-core synchronization.
// Track counts in application logic when needed.
//
// # Thread Safety
//
// The queue is strictly single-producer single-consumer: one goroutine
// enqueues, one goroutine dequeues. The internal reservation path uses a
// compare-and-swap loop and tolerates concurrent reservers, but the
// consumer head has a single designated writer, so the public contract
// remains SPSC. Violating the contract on the producer side causes data
// corruption.
//
// # Diagnostics
//
// Snapshot returns every block's cursor positions and raw entry contents.
// It is read-only but not linearizable with concurrent mutation; use it
// when both sides are quiesced (tests, post-mortem dumps).
//
// # Race Detection
//
// Go's race detector cannot observe happens-before relationships
// established through atomic acquire/release orderings on separate words,
// which is exactly how the cursor protocol synchronizes. Concurrent tests
// therefore skip under -race via the RaceEnabled constant; correctness
// under concurrency is covered by stress tests without the detector.
//
// # Dependencies
//
// This package uses [code.hybscloud.com/iox] for semantic errors,
// [code.hybscloud.com/atomix] for atomic primitives with explicit
// memory ordering, and [code.hybscloud.com/spin] for CPU pause
// instructions in compare-and-swap retry loops.
package bbq
