package pngscan_test

import (
	"testing"

	"github.com/mdouchement/pngscan"
	"github.com/stretchr/testify/assert"
)

func TestRawSize(t *testing.T) {
	for _, tc := range []struct {
		c    pngscan.Config
		want int
	}{
		{pngscan.Config{Width: 10, Height: 3, BitsPerPixel: 8}, 33},
		{pngscan.Config{Width: 1, Height: 1, BitsPerPixel: 8}, 2},
		{pngscan.Config{Width: 1, Height: 1, BitsPerPixel: 8, Interlaced: true}, 2},
		// 8x8 at 8 bpp: 2+2+3+6+10+20+36 over the seven passes.
		{pngscan.Config{Width: 8, Height: 8, BitsPerPixel: 8, Interlaced: true}, 79},
	} {
		assert.Equal(t, tc.want, pngscan.RawSize(tc.c), "%+v", tc.c)
	}
}

// The closed-form size and the line by line traversal are two
// different formulations of the same geometry; they must agree.
func TestRawSizeAgainstTraversal(t *testing.T) {
	for w := uint32(3); w <= 17; w++ {
		for h := uint32(3); h <= 17; h++ {
			for _, bpp := range []uint8{1, 2, 4, 8, 16, 24, 32, 48, 64} {
				for _, interlaced := range []bool{false, true} {
					c := pngscan.Config{Width: w, Height: h, BitsPerPixel: bpp, Interlaced: interlaced}
					data := make([]byte, pngscan.RawSize(c))

					total := 0
					it := pngscan.Lines(c, data)
					for line, ok := it.Next(); ok; line, ok = it.Next() {
						total += 1 + len(line.Data)
					}
					assert.Equal(t, len(data), total, "%+v", c)
				}
			}
		}
	}
}

func TestCheck(t *testing.T) {
	c := pngscan.Config{Width: 10, Height: 3, BitsPerPixel: 8}
	assert.NoError(t, pngscan.Check(c, make([]byte, 33)))

	err := pngscan.Check(c, make([]byte, 32))
	assert.EqualError(t, err, "have 32 bytes, want 33: pngscan: invalid format: pixel stream length mismatch")

	err = pngscan.Check(pngscan.Config{Width: 0, Height: 3, BitsPerPixel: 8}, nil)
	assert.EqualError(t, err, "pngscan: invalid format: zero image dimension")

	err = pngscan.Check(pngscan.Config{Width: 10, Height: 3}, nil)
	assert.EqualError(t, err, "pngscan: invalid format: zero bits per pixel")
}
