package pngscan

// Resources:
// https://www.w3.org/TR/PNG/#4Concepts.EncodingScanlineAbs
// https://www.w3.org/TR/PNG/#8InterlaceMethods

// ScanLine is one scan line of a decoded pixel stream. Filter is the
// filter type (0-4) that encoded the line; it is exposed as-is and
// never interpreted or validated here. Data holds the filtered pixel
// bytes of the line. Pass is the Adam7 pass the line belongs to, 1
// through 7, or 0 when the stream is not interlaced.
//
// Data is a window into the buffer the iterator was built from and
// stays valid for as long as that buffer does.
type ScanLine struct {
	Filter byte
	Data   []byte
	Pass   int
}

// Iter traverses a decoded pixel stream scan line by scan line without
// modifying it. Any number of Iters may read the same buffer
// concurrently.
//
// An Iter is not restartable; build a new one from the same Config and
// buffer to traverse again.
type Iter struct {
	ranges lineRanges
	rest   []byte
}

// Lines returns an iterator over the scan lines of the pixel stream in
// data, as described by c. len(data) must equal RawSize(c); that is
// the caller's contract and is not validated here (see Check).
func Lines(c Config, data []byte) *Iter {
	return &Iter{
		ranges: newLineRanges(c, len(data)),
		rest:   data,
	}
}

// Next returns the next scan line. The yielded Data must not be
// written through; use an IterMut for in-place edits.
func (it *Iter) Next() (ScanLine, bool) {
	n, pass, ok := it.ranges.next()
	if !ok {
		return ScanLine{}, false
	}
	line := it.rest[:n]
	it.rest = it.rest[n:]
	return ScanLine{Filter: line[0], Data: line[1:], Pass: pass}, true
}

// IterMut traverses a decoded pixel stream scan line by scan line and
// yields pixel payloads that may be written in place. It must be the
// only view over the buffer for its whole lifetime; Go cannot express
// that exclusivity in types, so it is part of the calling contract.
//
// Each step carves the line off the front of the unconsumed remainder
// and retains only the tail, so the payloads of two different scan
// lines never overlap and an edit through one line cannot reach
// another.
type IterMut struct {
	ranges lineRanges
	rest   []byte
}

// LinesMut returns an iterator over the scan lines of the pixel stream
// in data that allows editing the pixel bytes in place. len(data) must
// equal RawSize(c); that is the caller's contract and is not validated
// here (see Check).
func LinesMut(c Config, data []byte) *IterMut {
	return &IterMut{
		ranges: newLineRanges(c, len(data)),
		rest:   data,
	}
}

// Next returns the next scan line. Writes through Data land in the
// backing buffer at this line's position only. The line is capped at
// its own length, so even re-slicing it cannot reach a neighbor.
func (it *IterMut) Next() (ScanLine, bool) {
	n, pass, ok := it.ranges.next()
	if !ok {
		return ScanLine{}, false
	}
	line := it.rest[:n:n]
	it.rest = it.rest[n:]
	return ScanLine{Filter: line[0], Data: line[1:], Pass: pass}, true
}
