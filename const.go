package pngscan

// A decoded PNG pixel stream is a sequence of scan lines. Each scan
// line is one filter-type byte followed by the filtered pixel bytes of
// the row. For interlaced streams the lines are not contiguous rows of
// the final image: they belong to one of the seven Adam7 passes, each
// pass sampling its own sub-grid of the image and therefore having its
// own reduced width.
//
// See https://www.w3.org/TR/PNG/#8Interlace

// Interlace methods (section 8.2 of the spec).
const (
	itNone  = 0
	itAdam7 = 1
)

// Filter types (section 9.2 of the spec). The filter byte is carried
// through by the views in this package, never interpreted.
const (
	ftNone    = 0
	ftSub     = 1
	ftUp      = 2
	ftAverage = 3
	ftPaeth   = 4
)

// Per-pass Adam7 geometry used while stepping through the stream,
// indexed by pass number 1-7 (index 0 is unused).
var (
	// Horizontal sampling factor: one pass pixel per passFactor image
	// columns.
	passFactor = [8]uint32{0, 8, 8, 4, 4, 2, 2, 1}

	// Rows of the image between two consecutive lines of the pass.
	passYStep = [8]uint32{0, 8, 8, 8, 4, 4, 2, 2}

	// Smallest remainder of width/passFactor at which a partial
	// sampling block at the right edge still reaches the pass's
	// column and contributes one more pixel. Pass 7 divides exactly.
	passGap = [8]uint32{0, 1, 5, 1, 3, 1, 2, 1}

	// Image row a pass starts at when the cursor enters it. The extra
	// entry lets the cursor step past pass 7 at the end of the stream.
	passStartRow = [9]uint32{0, 0, 0, 4, 0, 2, 0, 1, 0}
)

// interlaceScan defines the placement and size of a pass for Adam7
// interlacing.
type interlaceScan struct {
	xFactor, yFactor, xOffset, yOffset int
}

// interlacing defines Adam7 interlacing, with 7 passes of reduced
// images. It is the form the defining specification uses and backs the
// closed-form sizing in RawSize; the stepping tables above must stay
// consistent with it.
var interlacing = []interlaceScan{
	{8, 8, 0, 0},
	{8, 8, 4, 0},
	{4, 8, 0, 4},
	{4, 4, 2, 0},
	{2, 4, 0, 2},
	{2, 2, 1, 0},
	{1, 2, 0, 1},
}
