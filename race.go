// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build race

package bbq

// RaceEnabled is true when the race detector is active.
// Used by tests to skip concurrent tests: the detector cannot observe the
// happens-before edges the cursor protocol establishes through acquire and
// release orderings on separate words, and reports false positives.
const RaceEnabled = true
