package pngscan

// lineRanges yields the byte length and interlace pass of each
// successive scan line of a pixel stream. It is the location
// counterpart of the views in scanline.go: it never touches the
// buffer, only its running length.
//
// The sequence is finite and not restartable. It depends only on the
// descriptor, so rebuilding one for the same Config always replays the
// identical sequence.
type lineRanges struct {
	width        uint32
	height       uint32
	bitsPerPixel uint8
	// Current pass number and 0-indexed image row within the pass.
	// pass is 0 for non-interlaced streams.
	pass uint32
	row  uint32
	// Bytes of the stream not yet accounted for.
	left int
}

func newLineRanges(c Config, size int) lineRanges {
	r := lineRanges{
		width:        c.Width,
		height:       c.Height,
		bitsPerPixel: c.BitsPerPixel,
		left:         size,
	}
	if c.Interlaced {
		r.pass = 1
	}
	return r
}

// next returns the byte length of the next scan line, including its
// filter byte, and the Adam7 pass it belongs to (0 when the stream is
// not interlaced). ok is false once every byte of the stream has been
// accounted for.
func (r *lineRanges) next() (n, pass int, ok bool) {
	if r.left == 0 {
		return 0, 0, false
	}
	pixels := r.width
	if r.pass > 0 {
		if r.pass > 7 {
			panic(InternalError("pixel stream continues past the last pass"))
		}
		// Images narrower than 5 pixels have no pass 2 columns and
		// images shorter than 5 pixels have no pass 3 rows. The two
		// jumps are kept separate so that they can apply one after
		// the other.
		if r.width < 5 && r.pass == 2 {
			r.pass, r.row = 3, 4
		}
		if r.height < 5 && r.pass == 3 {
			r.pass, r.row = 4, 0
		}

		pixels = r.width / passFactor[r.pass]
		// A partial sampling block at the right edge contributes one
		// more pixel if it is wide enough to reach this pass's column.
		if r.width%passFactor[r.pass] >= passGap[r.pass] {
			pixels++
		}
		pass = int(r.pass)

		if r.row+passYStep[r.pass] >= r.height {
			r.pass++
			r.row = passStartRow[r.pass]
		} else {
			r.row += passYStep[r.pass]
		}
	}
	n = lineSize(pixels, r.bitsPerPixel)
	if n > r.left {
		panic(InternalError("pixel stream ends mid scan line"))
	}
	r.left -= n
	return n, pass, true
}
