package main

import (
	"fmt"
	"io"
	"log"

	"github.com/fatih/color"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/daystram/figures/board"
	"github.com/daystram/figures/position"
)

type options struct {
	draw    bool
	noColor bool
}

func demoFigures() []*board.Figure {
	return []*board.Figure{
		board.MustNewFigure(board.PiecePawn, board.SideWhite, position.Coord{Col: 5, Row: 2}),
		board.MustNewFigure(board.PieceKnight, board.SideBlack, position.Coord{Col: 2, Row: 1}),
		board.MustNewFigure(board.PieceBishop, board.SideWhite, position.Coord{Col: 3, Row: 1}),
		board.MustNewFigure(board.PieceRook, board.SideBlack, position.Coord{Col: 1, Row: 8}),
		board.MustNewFigure(board.PieceQueen, board.SideWhite, position.Coord{Col: 4, Row: 1}),
		board.MustNewFigure(board.PieceKing, board.SideBlack, position.Coord{Col: 5, Row: 8}),
	}
}

// movable writes one line for every figure that can move to target.
func movable(w io.Writer, figs []*board.Figure, target position.Coord, opts options) error {
	if err := target.Validate(); err != nil {
		return err
	}
	sideColor := map[board.Side]*color.Color{
		board.SideWhite: color.New(color.FgHiWhite, color.Bold),
		board.SideBlack: color.New(color.FgHiBlue, color.Bold),
	}
	if opts.noColor {
		for _, c := range sideColor {
			c.DisableColor()
		}
	}

	if opts.draw {
		for _, f := range figs {
			_, _ = fmt.Fprintf(w, "%s %s %s\n%s\n\n", f.Piece().SymbolUnicode(f.Side()), f.Side(), f, f.Reachable().Dump(f))
		}
	}

	mvs := board.FilterMovable(figs, target)
	for _, f := range mvs {
		if _, err := fmt.Fprintf(w, "%s can move to %s\n", sideColor[f.Side()].Sprint(f), target); err != nil {
			return err
		}
	}

	log.Println(message.NewPrinter(language.English).
		Sprintf("%d of %d figures can move to %s (%s)", len(mvs), len(figs), target, target.Notation()))
	return nil
}
