// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build !race

// This file contains examples that use atomix concurrency primitives.
// These trigger false positives with Go's race detector because atomix
// atomic operations appear as regular memory accesses to the detector.
// The examples are correct; they're excluded from race testing.

package bbq_test

import (
	"fmt"
	"sync"
	"unsafe"

	"code.hybscloud.com/bbq"
	"code.hybscloud.com/iox"
)

// ExampleNewSPSC demonstrates basic enqueue/dequeue on a block-based
// SPSC queue.
func ExampleNewSPSC() {
	// 8 entries in 2 blocks of 4
	q := bbq.NewSPSC[int](8, 2)

	// Producer sends 5 values
	for i := 1; i <= 5; i++ {
		v := i * 10
		q.Enqueue(&v)
	}

	// Consumer receives values
	for range 5 {
		v, _ := q.Dequeue()
		fmt.Println(v)
	}

	// Output:
	// 10
	// 20
	// 30
	// 40
	// 50
}

// ExampleNewSPSC_pipeline demonstrates a producer and consumer goroutine
// pair with caller-side backoff. Retry policy lives outside the queue:
// both operations attempt once and return immediately.
func ExampleNewSPSC_pipeline() {
	q := bbq.NewSPSC[int](16, 4)

	var wg sync.WaitGroup
	wg.Add(1)
	go func() { // Producer
		defer wg.Done()
		backoff := iox.Backoff{}
		for i := 1; i <= 100; i++ {
			v := i
			for q.Enqueue(&v) != nil {
				backoff.Wait()
			}
			backoff.Reset()
		}
	}()

	sum := 0
	backoff := iox.Backoff{}
	for n := 0; n < 100; {
		v, err := q.Dequeue()
		if err != nil {
			backoff.Wait()
			continue
		}
		backoff.Reset()
		sum += v
		n++
	}
	wg.Wait()

	fmt.Println(sum)
	// Output:
	// 5050
}

// ExampleNewSPSCPtr demonstrates zero-copy pointer hand-off between
// goroutines.
func ExampleNewSPSCPtr() {
	type message struct {
		payload string
	}

	q := bbq.NewSPSCPtr(8, 2)

	// Producer transfers ownership of the message.
	msg := &message{payload: "hello"}
	q.Enqueue(unsafe.Pointer(msg))

	// Consumer receives the same pointer, no copy.
	p, _ := q.Dequeue()
	fmt.Println((*message)(p).payload)

	// Output:
	// hello
}

// ExampleSPSC_Snapshot demonstrates the diagnostic dump on a quiesced
// queue.
func ExampleSPSC_Snapshot() {
	q := bbq.NewSPSC[int](8, 2)
	for i := 1; i <= 5; i++ {
		v := i
		q.Enqueue(&v)
	}
	q.Dequeue()

	for i, b := range q.Snapshot() {
		fmt.Printf("block %d: alloc=(%d,%d) consume=(%d,%d) entries=%v\n",
			i, b.Alloc.Version, b.Alloc.Index,
			b.Consume.Version, b.Consume.Index, b.Entries)
	}

	// Output:
	// block 0: alloc=(0,4) consume=(0,1) entries=[0 2 3 4]
	// block 1: alloc=(1,1) consume=(0,4) entries=[5 0 0 0]
}
