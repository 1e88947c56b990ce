package pngscan

import (
	"github.com/pkg/errors"
)

// Config describes a decoded PNG pixel stream. Width and Height are
// the image dimensions in pixels, BitsPerPixel is the bit depth
// multiplied by the number of channels per pixel, and Interlaced
// reports whether the stream is stored in Adam7 pass order.
//
// Mapping a color type and bit depth to BitsPerPixel is the caller's
// concern; this package only consumes the product. Width and Height
// must both be non-zero.
type Config struct {
	Width        uint32
	Height       uint32
	BitsPerPixel uint8
	Interlaced   bool
}

// lineSize returns the byte length of a scan line holding the given
// number of pixels, including the leading filter byte.
func lineSize(pixels uint32, bitsPerPixel uint8) int {
	bits := uint64(pixels) * uint64(bitsPerPixel)
	return int((bits+7)/8) + 1
}

// RawSize returns the exact byte length of the pixel stream described
// by c, i.e. the sum of the lengths of all its scan lines.
//
// For interlaced images the size is summed per pass from the Adam7
// placement table rather than line by line, so it can be checked
// independently against the traversal arithmetic. A pass whose
// sub-grid is empty for a small image stores nothing, not even filter
// bytes.
func RawSize(c Config) int {
	if !c.Interlaced {
		return int(c.Height) * lineSize(c.Width, c.BitsPerPixel)
	}
	var total int
	for _, p := range interlacing {
		cols := (int(c.Width) - p.xOffset + p.xFactor - 1) / p.xFactor
		rows := (int(c.Height) - p.yOffset + p.yFactor - 1) / p.yFactor
		if cols <= 0 || rows <= 0 {
			continue
		}
		total += rows * lineSize(uint32(cols), c.BitsPerPixel)
	}
	return total
}

// Check verifies that data is a plausible pixel stream for c: the
// descriptor must have non-zero dimensions and len(data) must equal
// RawSize(c).
//
// The iterator constructors do not call Check. Callers receiving the
// buffer from an untrusted upstream should, since traversing a
// mis-sized buffer is an unrecoverable consistency error.
func Check(c Config, data []byte) error {
	if c.Width == 0 || c.Height == 0 {
		return FormatError("zero image dimension")
	}
	if c.BitsPerPixel == 0 {
		return FormatError("zero bits per pixel")
	}
	if n := RawSize(c); len(data) != n {
		return errors.Wrapf(FormatError("pixel stream length mismatch"),
			"have %d bytes, want %d", len(data), n)
	}
	return nil
}
