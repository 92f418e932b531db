package board

import (
	"fmt"
	"math/bits"
	"strings"

	"github.com/daystram/figures/position"
)

const (
	Width      = position.MaxComponentScalar
	Height     = position.MaxComponentScalar
	TotalCells = Width * Height
)

// Bitmap is a set of squares, bit 0 being a1 and bit 63 being h8.
type Bitmap uint64

func (bm *Bitmap) Set(c position.Coord) {
	if position.IsValid(c) {
		*bm |= 1 << c.Index()
	}
}

func (bm *Bitmap) Unset(c position.Coord) {
	if position.IsValid(c) {
		*bm &^= 1 << c.Index()
	}
}

func (bm Bitmap) IsSet(c position.Coord) bool {
	return position.IsValid(c) && bm&(1<<c.Index()) != 0
}

func (bm Bitmap) BitCount() uint8 {
	return uint8(bits.OnesCount64(uint64(bm)))
}

// Squares lists the set squares from a1 to h8.
func (bm Bitmap) Squares() []position.Coord {
	cs := make([]position.Coord, 0, bm.BitCount())
	for rest := uint64(bm); rest != 0; rest &= rest - 1 {
		cs = append(cs, position.FromIndex(bits.TrailingZeros64(rest)))
	}
	return cs
}

// Dump draws the bitmap with rank 8 on top. Figures given in on are drawn
// with their FEN symbol on top of the bitmap.
func (bm Bitmap) Dump(on ...*Figure) string {
	builder := strings.Builder{}
	for row := Height; row > 0; row-- {
		_, _ = builder.WriteString(fmt.Sprintf(" %d |", row))
		for col := 1; col <= Width; col++ {
			c := position.Coord{Col: col, Row: row}
			s := "."
			if bm.IsSet(c) {
				s = "#"
			}
			for _, f := range on {
				if f != nil && f.Pos() == c {
					s = f.Piece().SymbolFEN(f.Side())
				}
			}
			_, _ = builder.WriteString(fmt.Sprintf(" %s ", s))
		}
		_, _ = builder.WriteString("\n")
	}
	_, _ = builder.WriteString("    ------------------------\n    ")
	for col := 1; col <= Width; col++ {
		_, _ = builder.WriteString(fmt.Sprintf(" %s ", position.Coord{Col: col, Row: 1}.NotationComponentCol()))
	}
	return builder.String()
}
