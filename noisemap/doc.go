// SPDX-License-Identifier: MIT
// Package: lvnoise/noisemap
//
// Package noisemap stores the output of a builder: a dense, row-major grid
// of float64 samples, plus summary statistics and grayscale export.
//
// Layout:
//   - Point (x, y) lives at data[y*width + x]; x is the column, y the row.
//   - Width and height are always positive.
//
// Safety:
//   - At/Set/AddValue/SubtractValue return ErrOutOfRange instead of panicking.
//   - Row returns a live view of one row so builders can fill rows in
//     parallel without copying; distinct rows never alias.
//
// Complexity quicksheet:
//   - New/SetSize/Clone: O(w*h). At/Set: O(1). Stats/Image: O(w*h).
package noisemap
