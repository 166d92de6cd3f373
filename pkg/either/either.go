package either

import (
	"fmt"

	"github.com/ib-77/maybe3/internal/check"
)

// Either holds exactly one of a left L or a right R value. Construct it
// with Left or Right; the zero value is not a valid Either and reading
// either side of it panics.
type Either[L, R any] struct {
	left  L
	right R
	side  side
}

type side uint8

const (
	sideNone side = iota
	sideLeft
	sideRight
)

// Left builds an Either occupied on the left side. It panics when value is
// nil.
func Left[L, R any](value L) Either[L, R] {
	if check.IsNil(value) {
		panic("either: Left called with nil value")
	}
	return Either[L, R]{left: value, side: sideLeft}
}

// Right builds an Either occupied on the right side. It panics when value
// is nil.
func Right[L, R any](value R) Either[L, R] {
	if check.IsNil(value) {
		panic("either: Right called with nil value")
	}
	return Either[L, R]{right: value, side: sideRight}
}

func (e Either[L, R]) IsLeft() bool {
	return e.side == sideLeft
}

func (e Either[L, R]) IsRight() bool {
	return e.side == sideRight
}

// Left returns the left value. It panics when the left side is not the
// occupied one.
func (e Either[L, R]) Left() L {
	if e.side != sideLeft {
		panic("either: Left value accessed on non-Left Either")
	}
	return e.left
}

// Right returns the right value. It panics when the right side is not the
// occupied one.
func (e Either[L, R]) Right() R {
	if e.side != sideRight {
		panic("either: Right value accessed on non-Right Either")
	}
	return e.right
}

// String renders the occupied side for diagnostics.
func (e Either[L, R]) String() string {
	switch e.side {
	case sideLeft:
		return fmt.Sprintf("Left(%v)", e.left)
	case sideRight:
		return fmt.Sprintf("Right(%v)", e.right)
	default:
		return "Either(invalid)"
	}
}
