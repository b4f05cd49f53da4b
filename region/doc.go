// Package region names byte ranges of a decoded save buffer and reports the bytes
// that differ between two buffers.
//
// A Ranges catalogue maps offsets to the smallest named range containing them:
//
//	names := region.DefaultRanges()
//	names.NameOf(0x45E41) // "play timer"
//
// Compare and Aggregate diff two equal-length buffers restricted by a Filter.
// Compare reports one Delta per changed byte; Aggregate merges adjacent changed
// bytes into runs. A Comparator keeps the previous buffer between calls for
// repeated comparisons of the same save.
package region
