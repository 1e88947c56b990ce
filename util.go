package pngscan

import "fmt"

// A FormatError reports that the supplied descriptor and buffer do not
// describe a valid decoded pixel stream.
type FormatError string

func (e FormatError) Error() string {
	return fmt.Sprintf("pngscan: invalid format: %s", string(e))
}

// An InternalError reports that an internal consistency invariant was
// violated, e.g. a buffer running out of bytes mid scan line.
type InternalError string

func (e InternalError) Error() string {
	return fmt.Sprintf("pngscan: internal error: %s", string(e))
}
