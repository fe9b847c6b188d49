package device

import (
	"errors"
	"fmt"
)

var (
	ErrInsufficientSpace = errors.New("insufficient space")
	ErrTooSmall          = errors.New("size below minimum")
)

// GeometryError reports a declared size that cannot hold what a component needs.
// It is returned at construction time and never corrected silently.
type GeometryError struct {
	Op   string
	Want Size
	Got  Size
	Err  error
}

func (e *GeometryError) Error() string {
	return fmt.Sprintf("%s: %v: want at least %dx%d, got %dx%d",
		e.Op, e.Err, e.Want.Height, e.Want.Width, e.Got.Height, e.Got.Width)
}

func (e *GeometryError) Unwrap() error {
	return e.Err
}

// CheckMinimum returns a GeometryError wrapping ErrTooSmall when got is smaller than want in either dimension.
func CheckMinimum(op string, want, got Size) error {
	if got.Height < want.Height || got.Width < want.Width {
		return &GeometryError{Op: op, Want: want, Got: got, Err: ErrTooSmall}
	}
	return nil
}
