package board

// rule decides whether a displacement of (dCol, dRow) from a square on
// row is a legal move. Diffs are signed, target minus origin.
type rule func(s Side, row, dCol, dRow int) bool

var rules = [PieceKing + 1]rule{
	PiecePawn:   pawnRule,
	PieceKnight: knightRule,
	PieceBishop: bishopRule,
	PieceRook:   rookRule,
	PieceQueen:  queenRule,
	PieceKing:   kingRule,
}

func ruleFor(p Piece) (rule, bool) {
	if int(p) >= len(rules) || rules[p] == nil {
		return nil, false
	}
	return rules[p], true
}

func pawnRule(s Side, row, dCol, dRow int) bool {
	if dCol != 0 {
		return false
	}
	dir := s.pawnDirection()
	return dRow == dir || (row == s.pawnStartRow() && dRow == 2*dir)
}

func knightRule(_ Side, _, dCol, dRow int) bool {
	dCol, dRow = abs(dCol), abs(dRow)
	return (dCol == 2 && dRow == 1) || (dCol == 1 && dRow == 2)
}

// bishopRule, rookRule, queenRule and kingRule all hold for a zero
// displacement.
func bishopRule(_ Side, _, dCol, dRow int) bool {
	return abs(dCol) == abs(dRow)
}

func rookRule(_ Side, _, dCol, dRow int) bool {
	return dCol == 0 || dRow == 0
}

func queenRule(s Side, row, dCol, dRow int) bool {
	return bishopRule(s, row, dCol, dRow) || rookRule(s, row, dCol, dRow)
}

func kingRule(_ Side, _, dCol, dRow int) bool {
	return abs(dCol) <= 1 && abs(dRow) <= 1
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
