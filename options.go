// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package bbq

// Options configures queue creation.
type Options struct {
	// Capacity in entries, spread evenly over blocks.
	capacity int

	// Number of blocks in the ring.
	blocks int
}

// DefaultBlocks is the block count used when Blocks is not configured.
const DefaultBlocks = 4

// Builder creates queues with fluent configuration.
//
// Example:
//
//	// 1024 entries in 8 blocks of 128
//	q := bbq.Build[Event](bbq.New(1024).Blocks(8))
//
//	// Pointer queue with the default block count
//	q := bbq.New(1024).BuildPtr()
type Builder struct {
	opts Options
}

// New creates a queue builder with the given total capacity.
//
// Capacity must be at least 2 and evenly divisible by the configured block
// count; violations are rejected at build time, before the queue becomes
// usable.
func New(capacity int) *Builder {
	if capacity < 2 {
		panic("bbq: capacity must be >= 2")
	}
	return &Builder{opts: Options{capacity: capacity, blocks: DefaultBlocks}}
}

// Blocks sets the number of blocks the capacity is split into.
//
// More blocks means finer-grained hand-off between producer and consumer
// (shorter stalls at the boundary); fewer blocks means less cursor
// overhead and rarer cross-core traffic. Block count must be >= 1 and
// divide the capacity evenly.
func (b *Builder) Blocks(n int) *Builder {
	b.opts.blocks = n
	return b
}

// Build creates an SPSC queue for elements of type T.
func Build[T any](b *Builder) *SPSC[T] {
	return NewSPSC[T](b.opts.capacity, b.opts.blocks)
}

// BuildPtr creates an SPSC queue for unsafe.Pointer values.
func (b *Builder) BuildPtr() *SPSCPtr {
	return NewSPSCPtr(b.opts.capacity, b.opts.blocks)
}

// pad is cache line padding to prevent false sharing.
type pad [64]byte
