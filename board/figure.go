package board

import (
	"errors"
	"fmt"

	"github.com/daystram/figures/position"
)

var (
	// ErrNotImplemented is reported when a figure has no concrete piece
	// variant to take its movement rule from.
	ErrNotImplemented = errors.New("movement rule not implemented")
	// ErrInvalidSide is reported when a figure is given neither side.
	ErrInvalidSide = errors.New("invalid side")
)

// Figure is a single piece standing on a square. Its position is always
// a valid coordinate.
type Figure struct {
	piece Piece
	side  Side
	pos   position.Coord
}

func NewFigure(p Piece, s Side, c position.Coord) (*Figure, error) {
	if _, ok := ruleFor(p); !ok {
		return nil, fmt.Errorf("%w: piece %d", ErrNotImplemented, p)
	}
	if s != SideWhite && s != SideBlack {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSide, s)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &Figure{piece: p, side: s, pos: c}, nil
}

// MustNewFigure is like NewFigure but panics on error.
func MustNewFigure(p Piece, s Side, c position.Coord) *Figure {
	f, err := NewFigure(p, s, c)
	if err != nil {
		panic(err)
	}
	return f
}

func (f *Figure) Piece() Piece {
	return f.piece
}

func (f *Figure) Side() Side {
	return f.side
}

func (f *Figure) Pos() position.Coord {
	return f.pos
}

// ChangeColor flips the figure to the other side.
func (f *Figure) ChangeColor() {
	if f.side == SideBlack {
		f.side = SideWhite
	} else {
		f.side = SideBlack
	}
}

// ChangePosition moves the figure to target. The figure is left where it
// was if target is off the board.
func (f *Figure) ChangePosition(target position.Coord) error {
	if err := target.Validate(); err != nil {
		return err
	}
	f.pos = target
	return nil
}

// CanMoveTo reports whether target is reachable in a single move from the
// current square. Other figures are not taken into account. It panics if
// the figure has no concrete piece variant.
func (f *Figure) CanMoveTo(target position.Coord) bool {
	r, ok := ruleFor(f.piece)
	if !ok {
		panic(fmt.Errorf("%w: piece %d", ErrNotImplemented, f.piece))
	}
	if !position.IsValid(target) {
		return false
	}
	dCol, dRow := target.Sub(f.pos)
	return r(f.side, f.pos.Row, dCol, dRow)
}

// Reachable returns every square the figure can move to. Squares for
// which CanMoveTo holds with a zero displacement are included.
func (f *Figure) Reachable() Bitmap {
	var bm Bitmap
	for i := 0; i < TotalCells; i++ {
		if c := position.FromIndex(i); f.CanMoveTo(c) {
			bm.Set(c)
		}
	}
	return bm
}

func (f *Figure) String() string {
	return fmt.Sprintf("%s at %s", f.piece, f.pos)
}

// FilterMovable returns, in input order, every figure that can move to
// target. Nil entries are skipped.
func FilterMovable(figs []*Figure, target position.Coord) []*Figure {
	var movable []*Figure
	for _, f := range figs {
		if f == nil {
			continue
		}
		if f.CanMoveTo(target) {
			movable = append(movable, f)
		}
	}
	return movable
}
