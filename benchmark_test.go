// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package bbq_test

import (
	"strconv"
	"sync"
	"testing"
	"unsafe"

	"code.hybscloud.com/bbq"
	"code.hybscloud.com/spin"
)

// =============================================================================
// Single-goroutine Baselines
// =============================================================================

func BenchmarkSPSC_SingleOp(b *testing.B) {
	q := bbq.NewSPSC[int](1024, 8)

	b.ResetTimer()
	for i := range b.N {
		v := i
		q.Enqueue(&v)
		q.Dequeue()
	}
}

func BenchmarkSPSCPtr_SingleOp(b *testing.B) {
	q := bbq.NewSPSCPtr(1024, 8)
	val := 42

	b.ResetTimer()
	for range b.N {
		q.Enqueue(unsafe.Pointer(&val))
		q.Dequeue()
	}
}

// BenchmarkSPSC_BlockGeometry compares hand-off amortization across block
// counts at fixed capacity.
func BenchmarkSPSC_BlockGeometry(b *testing.B) {
	for _, blocks := range []int{1, 4, 16, 64} {
		b.Run(strconv.Itoa(blocks), func(b *testing.B) {
			q := bbq.NewSPSC[int](1024, blocks)
			b.ResetTimer()
			for i := range b.N {
				v := i
				q.Enqueue(&v)
				q.Dequeue()
			}
		})
	}
}

// =============================================================================
// Cross-goroutine Throughput
// =============================================================================

func BenchmarkSPSC_Throughput(b *testing.B) {
	if bbq.RaceEnabled {
		b.Skip("skip: concurrent benchmark under race detector")
	}

	q := bbq.NewSPSC[int](4096, 16)

	var wg sync.WaitGroup
	b.ResetTimer()

	wg.Add(1)
	go func() {
		defer wg.Done()
		sw := spin.Wait{}
		for i := range b.N {
			v := i
			for q.Enqueue(&v) != nil {
				sw.Once()
			}
		}
	}()

	sw := spin.Wait{}
	for i := 0; i < b.N; {
		if _, err := q.Dequeue(); err != nil {
			sw.Once()
			continue
		}
		i++
	}
	wg.Wait()
}
