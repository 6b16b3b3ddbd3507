// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package bbq

// A cursor value is a (version, index) pair packed into one 64-bit word:
// version in the high versionBits, index in the low indexBits. Packing the
// version above the index makes plain integer comparison order by version
// first, then index, so "has this cursor passed that one" is a single
// compare on the raw word.
//
// Version counts how many times a block has been recycled; index is an
// offset into the block's entry array, range [0, entries]. Index arithmetic
// never carries into the version: callers detect index == entries and roll
// the version themselves via block hand-off.
const (
	versionBits = 44
	indexBits   = 64 - versionBits

	indexMask = 1<<indexBits - 1

	// maxEntriesPerBlock bounds entries-per-block so that an index can
	// always address every entry of its block.
	maxEntriesPerBlock = 1<<indexBits - 1
)

// field is the packed (version, index) cursor value.
type field uint64

// makeField packs a version and an index into a field.
func makeField(vsn, idx uint64) field {
	return field(vsn<<indexBits | idx&indexMask)
}

func (f field) version() uint64 {
	return uint64(f) >> indexBits
}

func (f field) index() uint64 {
	return uint64(f) & indexMask
}

// next returns f with the index advanced by one, version untouched.
// The protocol never advances an index past entries, so the add cannot
// carry; the mask keeps a corrupted word from bleeding into the version.
func (f field) next() field {
	return makeField(f.version(), (f.index()+1)&indexMask)
}

// status is the internal outcome of a cursor step. The public API collapses
// every non-success status to ErrWouldBlock.
type status int

const (
	// noEntry: nothing is, or will imminently be, available; a genuine
	// empty (consumer side) or full (producer side) condition.
	noEntry status = iota
	// notAvailable: the cooperating side is mid-operation on the boundary
	// entry; transient.
	notAvailable
	// success: the requested claim succeeded.
	success
	// blockDone: the targeted block's cursor reached entries for the
	// current version; a block hand-off must be attempted.
	blockDone
)
