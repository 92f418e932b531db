package board

type Side uint8

const (
	SideUnknown Side = iota
	SideWhite
	SideBlack
)

func (s Side) String() string {
	switch s {
	case SideWhite:
		return "White"
	case SideBlack:
		return "Black"
	default:
		return ""
	}
}

func (s Side) Opposite() Side {
	switch s {
	case SideWhite:
		return SideBlack
	case SideBlack:
		return SideWhite
	default:
		return SideUnknown
	}
}

// pawnDirection is the row step a pawn of this side advances by.
func (s Side) pawnDirection() int {
	if s == SideBlack {
		return -1
	}
	return 1
}

// pawnStartRow is the row from which a pawn of this side may double-step.
func (s Side) pawnStartRow() int {
	if s == SideBlack {
		return 7
	}
	return 2
}
