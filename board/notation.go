package board

import (
	"errors"
	"fmt"
	"strings"

	"github.com/notnil/chess"
)

var (
	ErrInvalidFEN  = errors.New("board: invalid FEN")
	ErrInvalidCell = errors.New("board: invalid cell name")
)

var (
	cellByName = make(map[string]int, Size)
	cellNames  [Size]string
)

func init() {
	for sq := chess.A1; sq <= chess.H8; sq++ {
		cell := squareToCell(sq)
		cellNames[cell] = sq.String()
		cellByName[sq.String()] = cell
	}
}

// squareToCell converts a chess.Square (a1 = 0, rank-major from White's
// side) to a cell index (a8 = 0).
func squareToCell(sq chess.Square) int {
	return Cell(Width-1-int(sq.Rank()), int(sq.File()))
}

func cellToSquare(cell int) chess.Square {
	row, col := RowCol(cell)
	return chess.Square((Width-1-row)*Width + col)
}

// CellName returns the algebraic name of cell, e.g. "e2".
func CellName(cell int) string {
	if !InBounds(cell) {
		return "-"
	}
	return cellNames[cell]
}

// ParseCell converts an algebraic square name such as "e4" to a cell index.
func ParseCell(name string) (int, error) {
	cell, ok := cellByName[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return -1, fmt.Errorf("%w: %q", ErrInvalidCell, name)
	}
	return cell, nil
}

var chessPieces = []chess.Piece{
	chess.WhiteKing, chess.WhiteQueen, chess.WhiteRook, chess.WhiteBishop, chess.WhiteKnight, chess.WhitePawn,
	chess.BlackKing, chess.BlackQueen, chess.BlackRook, chess.BlackBishop, chess.BlackKnight, chess.BlackPawn,
}

func fromChessPiece(p chess.Piece) Piece {
	var kind Kind
	switch p.Type() {
	case chess.King:
		kind = King
	case chess.Queen:
		kind = Queen
	case chess.Rook:
		kind = Rook
	case chess.Bishop:
		kind = Bishop
	case chess.Knight:
		kind = Knight
	case chess.Pawn:
		kind = Pawn
	default:
		return NoPiece
	}
	color := Black
	if p.Color() == chess.White {
		color = White
	}
	return NewPiece(kind, color)
}

func toChessPiece(p Piece) chess.Piece {
	for _, cp := range chessPieces {
		if fromChessPiece(cp) == p {
			return cp
		}
	}
	return chess.NoPiece
}

// FromFEN builds a board from a FEN record. A bare piece-placement field
// (without side to move, castling and counters) is accepted as well.
func FromFEN(fen string) (Board, error) {
	fen = strings.TrimSpace(fen)
	if fen != "" && !strings.Contains(fen, " ") {
		fen += " w - - 0 1"
	}

	opt, err := chess.FEN(fen)
	if err != nil {
		return Board{}, fmt.Errorf("%w: %v", ErrInvalidFEN, err)
	}

	var b Board
	game := chess.NewGame(opt)
	for sq, p := range game.Position().Board().SquareMap() {
		b[squareToCell(sq)] = fromChessPiece(p)
	}
	return b, nil
}

// FEN returns the piece-placement field of the board in FEN notation.
func (b Board) FEN() string {
	m := make(map[chess.Square]chess.Piece, Size)
	for cell, p := range b {
		if p.IsEmpty() {
			continue
		}
		m[cellToSquare(cell)] = toChessPiece(p)
	}
	return chess.NewBoard(m).String()
}
