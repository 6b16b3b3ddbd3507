// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package bbq

import "code.hybscloud.com/atomix"

// block is one fixed-size run of entries plus the four cursors that encode
// its production/consumption progress. Each cursor holds a packed field
// value and sits on its own cache line; producer-owned and consumer-owned
// cursors would otherwise false-share.
//
// Cursor invariant, per version:
//
//	consume.index <= reserve.index <= commit.index <= alloc.index <= entries
//
// A block is producer-done when alloc.index reaches entries, and drained
// when consume reaches (version, entries) for the version the producer
// stamped on it. Blocks are never reallocated; version increments model
// reuse in place.
type block[T any] struct {
	_       pad
	alloc   atomix.Uint64 // highest entry claimed for writing
	_       pad
	commit  atomix.Uint64 // highest entry fully published
	_       pad
	reserve atomix.Uint64 // highest entry claimed for reading
	_       pad
	consume atomix.Uint64 // highest entry fully drained
	_       pad
	data    []T
}

// init stamps all four cursors with (0, idx). Block 0 starts live at
// (0, 0); every other block starts pre-drained at (0, entries) so the
// producer's first hand-off into it succeeds immediately.
func (b *block[T]) init(idx uint64) {
	f := uint64(makeField(0, idx))
	b.alloc.StoreRelaxed(f)
	b.commit.StoreRelaxed(f)
	b.reserve.StoreRelaxed(f)
	b.consume.StoreRelaxed(f)
}

// raise lifts cursor c to next if and only if next belongs to a strictly
// newer version. The CAS loop keeps a straggling slow thread from stamping
// a stale, smaller version over one a faster thread already wrote; raise is
// the queue's only defense against that during block recycling.
func raise(c *atomix.Uint64, next field) {
	for {
		cur := field(c.LoadRelaxed())
		if next.version() <= cur.version() {
			return
		}
		if c.CompareAndSwapAcqRel(uint64(cur), uint64(next)) {
			return
		}
	}
}
