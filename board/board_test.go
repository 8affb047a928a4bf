package board_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plus3/chronochess/board"
)

func mustCell(t *testing.T, name string) int {
	t.Helper()
	cell, err := board.ParseCell(name)
	require.NoError(t, err)
	return cell
}

func TestStandardLayout(t *testing.T) {
	b := board.Standard()

	assert.Equal(t, 32, b.Count())
	assert.Equal(t, board.NewPiece(board.Rook, board.Black), b.At(0))
	assert.Equal(t, board.NewPiece(board.King, board.Black), b.At(mustCell(t, "e8")))
	assert.Equal(t, board.NewPiece(board.Queen, board.White), b.At(mustCell(t, "d1")))
	assert.Equal(t, board.NewPiece(board.Rook, board.White), b.At(63))
	assert.True(t, b.At(mustCell(t, "e4")).IsEmpty())
	assert.Equal(t, "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR", b.FEN())
}

func TestReadersOnReturnedBoards(t *testing.T) {
	assert.Equal(t, 32, board.Standard().Count())
	assert.Equal(t, board.NewPiece(board.Pawn, board.White), board.Standard().At(mustCell(t, "e2")))
	assert.Equal(t, "8/8/8/8/8/8/8/8", board.Board{}.FEN())
}

func TestCellNames(t *testing.T) {
	tests := []struct {
		name string
		cell int
	}{
		{"a8", 0},
		{"h8", 7},
		{"a1", 56},
		{"h1", 63},
		{"e2", 52},
		{"e4", 36},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.cell, mustCell(t, tt.name))
			assert.Equal(t, tt.name, board.CellName(tt.cell))
		})
	}

	_, err := board.ParseCell("z9")
	assert.ErrorIs(t, err, board.ErrInvalidCell)
	assert.Equal(t, "-", board.CellName(64))
}

func TestValueSemantics(t *testing.T) {
	original := board.Standard()
	clone := original

	require.True(t, clone.Move(mustCell(t, "e2"), mustCell(t, "e4")))

	assert.Equal(t, board.NewPiece(board.Pawn, board.White), original.At(mustCell(t, "e2")))
	assert.True(t, original.At(mustCell(t, "e4")).IsEmpty())
	assert.NotEqual(t, original, clone)
}

func TestMove(t *testing.T) {
	t.Run("captures overwrite the destination", func(t *testing.T) {
		b := board.Standard()
		require.True(t, b.Move(mustCell(t, "d1"), mustCell(t, "d7")))
		assert.Equal(t, board.NewPiece(board.Queen, board.White), b.At(mustCell(t, "d7")))
		assert.True(t, b.At(mustCell(t, "d1")).IsEmpty())
		assert.Equal(t, 31, b.Count())
	})

	t.Run("rejected moves leave the board untouched", func(t *testing.T) {
		b := board.Standard()
		before := b
		assert.False(t, b.Move(10, 10))
		assert.False(t, b.Move(mustCell(t, "e4"), mustCell(t, "e5")))
		assert.False(t, b.Move(-1, 3))
		assert.False(t, b.Move(3, board.Size))
		assert.Equal(t, before, b)
	})
}

func TestPieceSprite(t *testing.T) {
	assert.Equal(t, 0, board.NewPiece(board.Pawn, board.White).Sprite())
	assert.Equal(t, 5, board.NewPiece(board.Queen, board.White).Sprite())
	assert.Equal(t, 8, board.NewPiece(board.Pawn, board.Black).Sprite())
	assert.Equal(t, 12, board.NewPiece(board.King, board.Black).Sprite())
	assert.Equal(t, -1, board.NoPiece.Sprite())
}

func TestFEN(t *testing.T) {
	t.Run("round trip", func(t *testing.T) {
		b, err := board.FromFEN("rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1")
		require.NoError(t, err)
		assert.Equal(t, board.NewPiece(board.Pawn, board.White), b.At(mustCell(t, "e4")))
		assert.True(t, b.At(mustCell(t, "e2")).IsEmpty())
		assert.Equal(t, "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR", b.FEN())
	})

	t.Run("placement only", func(t *testing.T) {
		b, err := board.FromFEN("4k3/8/8/8/8/8/8/4K3")
		require.NoError(t, err)
		assert.Equal(t, 2, b.Count())
		assert.Equal(t, board.NewPiece(board.King, board.Black), b.At(mustCell(t, "e8")))
	})

	t.Run("invalid", func(t *testing.T) {
		_, err := board.FromFEN("not a fen")
		assert.ErrorIs(t, err, board.ErrInvalidFEN)
	})
}

func TestPieceString(t *testing.T) {
	assert.Equal(t, "K", board.NewPiece(board.King, board.White).String())
	assert.Equal(t, "n", board.NewPiece(board.Knight, board.Black).String())
	assert.Equal(t, ".", board.NoPiece.String())
}
