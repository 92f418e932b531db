package main

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/daystram/figures/board"
	"github.com/daystram/figures/position"
)

func TestMovable(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name    string
		target  position.Coord
		want    []string
		wantErr error
	}{
		{
			name:   "demo target",
			target: position.Coord{Col: 5, Row: 3},
			want: []string{
				"Pawn at (5, 2) can move to (5, 3)",
				"Bishop at (3, 1) can move to (5, 3)",
				"Queen at (4, 1) can move to (5, 3)",
			},
		},
		{
			name:   "back rank",
			target: position.Coord{Col: 5, Row: 8},
			want: []string{
				"Rook at (1, 8) can move to (5, 8)",
				"King at (5, 8) can move to (5, 8)",
			},
		},
		{
			name:   "nobody",
			target: position.Coord{Col: 8, Row: 2},
			want:   nil,
		},
		{
			name:    "off board",
			target:  position.Coord{Col: 0, Row: 3},
			wantErr: position.ErrInvalidPosition,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			var buf bytes.Buffer
			err := movable(&buf, demoFigures(), tt.target, options{noColor: true})
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("unexpected error: got=%v want=%v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatal("unexpected error:", err)
			}
			var got []string
			if out := strings.TrimSpace(buf.String()); out != "" {
				got = strings.Split(out, "\n")
			}
			if len(got) != len(tt.want) {
				t.Fatalf("unexpected output: got=%q want=%q", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("unexpected line %d: got=%q want=%q", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestMovableDraw(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	figs := demoFigures()[:1]
	if err := movable(&buf, figs, position.Coord{Col: 5, Row: 4}, options{draw: true, noColor: true}); err != nil {
		t.Fatal("unexpected error:", err)
	}
	out := buf.String()
	if !strings.HasPrefix(out, "♙ White Pawn at (5, 2)\n") {
		t.Errorf("unexpected header: %q", out)
	}
	if !strings.Contains(out, figs[0].Reachable().Dump(figs[0])) {
		t.Errorf("missing reachable dump:\n%s", out)
	}
	if !strings.HasSuffix(out, "Pawn at (5, 2) can move to (5, 4)\n") {
		t.Errorf("unexpected tail: %q", out)
	}
}

func TestDemoFigures(t *testing.T) {
	t.Parallel()
	figs := demoFigures()
	want := []board.Piece{board.PiecePawn, board.PieceKnight, board.PieceBishop, board.PieceRook, board.PieceQueen, board.PieceKing}
	if len(figs) != len(want) {
		t.Fatalf("unexpected figure count: got=%d want=%d", len(figs), len(want))
	}
	for i, f := range figs {
		if f.Piece() != want[i] {
			t.Errorf("unexpected piece at %d: got=%s want=%s", i, f.Piece(), want[i])
		}
	}
}
