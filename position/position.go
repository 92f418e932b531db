package position

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
)

const (
	// MaxComponentScalar is the maximum component scalar the position system supports.
	MaxComponentScalar = 8
	// MinComponentScalar is the minimum component scalar the position system supports.
	MinComponentScalar = 1
)

var (
	// ErrInvalidNotation represents an invalid notation error.
	ErrInvalidNotation = errors.New("invalid notation")
	// ErrInvalidPosition represents a coordinate outside of the board.
	ErrInvalidPosition = errors.New("invalid position")

	validate = validator.New()
)

// Coord is a 1-based (column, row) board coordinate.
type Coord struct {
	Col int `validate:"min=1,max=8"`
	Row int `validate:"min=1,max=8"`
}

func New(col, row int) (Coord, error) {
	c := Coord{Col: col, Row: row}
	if err := c.Validate(); err != nil {
		return Coord{}, err
	}
	return c, nil
}

func NewFromNotation(n string) (Coord, error) {
	if len(n) != 2 {
		return Coord{}, ErrInvalidNotation
	}
	col, err := notationToCol(n[0])
	if err != nil {
		return Coord{}, err
	}
	row, err := notationToRow(n[1])
	if err != nil {
		return Coord{}, err
	}
	return Coord{Col: col, Row: row}, nil
}

// Parse accepts either algebraic notation ("e3") or a column/row pair
// ("5,3", "(5, 3)").
func Parse(s string) (Coord, error) {
	s = strings.TrimSpace(s)
	if len(s) == 2 && s[0] >= 'a' && s[0] <= 'z' {
		return NewFromNotation(s)
	}
	s = strings.TrimSuffix(strings.TrimPrefix(s, "("), ")")
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return Coord{}, fmt.Errorf("%w: %q", ErrInvalidNotation, s)
	}
	col, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return Coord{}, fmt.Errorf("%w: %q", ErrInvalidNotation, s)
	}
	row, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return Coord{}, fmt.Errorf("%w: %q", ErrInvalidNotation, s)
	}
	return New(col, row)
}

// IsValid reports whether v is a two-element integer pair with both
// components within the board. Values of any other shape are invalid.
func IsValid(v any) bool {
	switch c := v.(type) {
	case Coord:
		return c.Validate() == nil
	case *Coord:
		return c != nil && c.Validate() == nil
	case [2]int:
		return Coord{Col: c[0], Row: c[1]}.Validate() == nil
	case []int:
		return len(c) == 2 && Coord{Col: c[0], Row: c[1]}.Validate() == nil
	default:
		return false
	}
}

func (c Coord) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		return fmt.Errorf("%w: %s: %s=%v out of [%d, %d]",
			ErrInvalidPosition, c, verrs[0].Field(), verrs[0].Value(), MinComponentScalar, MaxComponentScalar)
	}
	return fmt.Errorf("%w: %v", ErrInvalidPosition, err)
}

// Sub returns the signed column and row difference c - o.
func (c Coord) Sub(o Coord) (int, int) {
	return c.Col - o.Col, c.Row - o.Row
}

func (c Coord) String() string {
	return fmt.Sprintf("(%d, %d)", c.Col, c.Row)
}

func (c Coord) Notation() string {
	if !IsValid(c) {
		return ""
	}
	return c.NotationComponentCol() + c.NotationComponentRow()
}

func (c Coord) NotationComponentCol() string {
	if c.Col < MinComponentScalar || MaxComponentScalar < c.Col {
		return ""
	}
	return string(rune('a' + c.Col - 1))
}

func (c Coord) NotationComponentRow() string {
	if c.Row < MinComponentScalar || MaxComponentScalar < c.Row {
		return ""
	}
	return string(rune('0' + c.Row))
}

// Index maps a valid coord to 0..63, a1 being 0 and h8 being 63.
func (c Coord) Index() int {
	return (c.Row-1)*MaxComponentScalar + (c.Col - 1)
}

func FromIndex(i int) Coord {
	return Coord{Col: i%MaxComponentScalar + 1, Row: i/MaxComponentScalar + 1}
}

func notationToCol(x byte) (int, error) {
	col := int(x) - 'a' + 1
	if col < MinComponentScalar || MaxComponentScalar < col {
		return 0, ErrInvalidNotation
	}
	return col, nil
}

func notationToRow(y byte) (int, error) {
	row := int(y) - '0'
	if row < MinComponentScalar || MaxComponentScalar < row {
		return 0, ErrInvalidNotation
	}
	return row, nil
}
