// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package bbq

// Cursor is the unpacked value of one block cursor at snapshot time.
type Cursor struct {
	Version uint64
	Index   uint64
}

// BlockSnapshot is the diagnostic state of one block: its four cursors and
// a copy of its raw entry contents. Entries the consumer has drained read
// as the zero value.
type BlockSnapshot[T any] struct {
	Alloc   Cursor
	Commit  Cursor
	Reserve Cursor
	Consume Cursor
	Entries []T
}

// Snapshot returns a diagnostic dump of every block in ring order.
//
// Snapshot is read-only but not linearizable with concurrent mutation:
// cursors and entries are loaded independently, so a snapshot taken while
// a producer or consumer is running may be torn. Intended for use when
// both sides are quiesced, e.g. in tests or post-mortem dumps.
func (q *SPSC[T]) Snapshot() []BlockSnapshot[T] {
	out := make([]BlockSnapshot[T], q.nblocks)
	for i := range q.blocks {
		b := &q.blocks[i]
		out[i] = BlockSnapshot[T]{
			Alloc:   unpack(field(b.alloc.LoadRelaxed())),
			Commit:  unpack(field(b.commit.LoadRelaxed())),
			Reserve: unpack(field(b.reserve.LoadRelaxed())),
			Consume: unpack(field(b.consume.LoadRelaxed())),
			Entries: append([]T(nil), b.data...),
		}
	}
	return out
}

func unpack(f field) Cursor {
	return Cursor{Version: f.version(), Index: f.index()}
}
