// Package board provides the 64-cell chess board value recorded in a timeline.
// A Board is a plain array, so assigning it copies every cell.
package board

// Kind identifies a chess piece. The zero value marks an empty cell.
type Kind uint8

const (
	NoKind Kind = iota
	Pawn
	Knight
	Bishop
	Rook
	King
	Queen
)

var kindLetters = [...]byte{'.', 'p', 'n', 'b', 'r', 'k', 'q'}

func (k Kind) String() string {
	switch k {
	case Pawn:
		return "pawn"
	case Knight:
		return "knight"
	case Bishop:
		return "bishop"
	case Rook:
		return "rook"
	case King:
		return "king"
	case Queen:
		return "queen"
	}
	return "none"
}

// Color is the side a piece belongs to.
type Color uint8

const (
	Black Color = iota
	White
)

func (c Color) String() string {
	if c == White {
		return "white"
	}
	return "black"
}

// Piece is an immutable (kind, color) pair.
type Piece struct {
	Kind  Kind
	Color Color
}

// NoPiece is the content of an empty cell.
var NoPiece = Piece{}

// NewPiece returns the piece of the given kind and color.
func NewPiece(kind Kind, color Color) Piece {
	return Piece{Kind: kind, Color: color}
}

// IsEmpty reports whether p represents an empty cell.
func (p Piece) IsEmpty() bool {
	return p.Kind == NoKind
}

// Sprite returns the index of the piece in the sprite sheet used by the
// drawing back-ends: white pieces occupy 0-5 and black pieces 8-13, in kind
// order. Empty cells return -1.
func (p Piece) Sprite() int {
	if p.IsEmpty() {
		return -1
	}
	idx := int(p.Kind) - 1
	if p.Color == Black {
		idx += 8
	}
	return idx
}

// String returns the FEN letter for the piece, upper case for white, or "."
// for an empty cell.
func (p Piece) String() string {
	if int(p.Kind) >= len(kindLetters) {
		return "?"
	}
	letter := kindLetters[p.Kind]
	if p.Color == White && !p.IsEmpty() {
		letter -= 'a' - 'A'
	}
	return string(letter)
}

const (
	// Width is the number of cells in a row or column.
	Width = 8
	// Size is the number of cells on the board.
	Size = Width * Width
)

// Board is the piece layout of the 64 cells. Cell 0 is a8 (the top-left
// corner seen from White's side) and cells run row by row down to h1 at 63.
type Board [Size]Piece

// InBounds reports whether cell addresses a square on the board.
func InBounds(cell int) bool {
	return cell >= 0 && cell < Size
}

// Cell returns the cell index of row and col, or -1 when either is off-board.
func Cell(row, col int) int {
	if row < 0 || row >= Width || col < 0 || col >= Width {
		return -1
	}
	return row*Width + col
}

// RowCol splits a cell index into its row and column.
func RowCol(cell int) (row, col int) {
	return cell / Width, cell % Width
}

// At returns the piece on cell, or NoPiece when cell is off-board.
func (b Board) At(cell int) Piece {
	if !InBounds(cell) {
		return NoPiece
	}
	return b[cell]
}

// Set places p on cell. Off-board cells are ignored.
func (b *Board) Set(cell int, p Piece) {
	if !InBounds(cell) {
		return
	}
	b[cell] = p
}

// Move relocates the piece on from to to, overwriting whatever stood there.
// It reports false and leaves the board untouched when the cells are equal,
// off-board, or from is empty.
func (b *Board) Move(from, to int) bool {
	if from == to || !InBounds(from) || !InBounds(to) {
		return false
	}
	p := b[from]
	if p.IsEmpty() {
		return false
	}
	b[to] = p
	b[from] = NoPiece
	return true
}

// Count returns the number of occupied cells.
func (b Board) Count() int {
	n := 0
	for _, p := range b {
		if !p.IsEmpty() {
			n++
		}
	}
	return n
}

var backRank = [Width]Kind{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}

// Standard returns the initial chess position.
func Standard() Board {
	var b Board
	for col := 0; col < Width; col++ {
		b[Cell(0, col)] = NewPiece(backRank[col], Black)
		b[Cell(1, col)] = NewPiece(Pawn, Black)
		b[Cell(6, col)] = NewPiece(Pawn, White)
		b[Cell(7, col)] = NewPiece(backRank[col], White)
	}
	return b
}
