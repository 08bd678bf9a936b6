package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func cells(p *piece) []point {
	var out []point
	for sq := range p.squares() {
		out = append(out, sq)
	}
	return out
}

func TestSquaresRotationTransform(t *testing.T) {
	tests := []struct {
		name     string
		rotation int
		want     point
	}{
		{"spawn", 0, point{11, 7}},
		{"quarter turn", 1, point{12, 4}},
		{"half turn", 2, point{9, 3}},
		{"three quarters", 3, point{8, 6}},
		// The raw counter scales the offsets, so a fourth rotate does
		// not come back to the spawn cells: the even branch multiplier
		// is 1-4 = -3.
		{"full turn keeps raw multiplier", 4, point{7, -1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := newPiece(point{10, 5}, []point{{1, 2}})
			p.rotation = tt.rotation
			assert.Equal(t, []point{tt.want}, cells(p))
		})
	}
}

func TestSquaresAppliesTranslation(t *testing.T) {
	p := newPiece(point{10, 5}, []point{{1, 2}})
	p.translation = point{2, 3}
	p.rotation = 1
	assert.Equal(t, []point{{14, 7}}, cells(p))
}

func TestSquaresNegativeRotationUsesOddBranch(t *testing.T) {
	p := newPiece(point{10, 5}, []point{{1, 2}})
	p.unrotate()
	// rotation -1 is odd; multiplier 2-(-1) = 3.
	assert.Equal(t, []point{{16, 2}}, cells(p))
}

func TestSquaresRecomputedEachCall(t *testing.T) {
	p := newPiece(point{5, 5}, []point{{0, 0}})
	first := cells(p)
	p.down()
	second := cells(p)
	assert.Equal(t, []point{{5, 5}}, first)
	assert.Equal(t, []point{{6, 5}}, second)
}

func TestCheckedMovesRevertOnFailure(t *testing.T) {
	b := emptyBoard(t, newPiece(point{0, 0}, []point{{0, 0}}), nil)

	require.False(t, b.check(&piece{center: point{-1, 0}, offsets: []point{{0, 0}}}))

	// Already at the top-left corner: left and up must fail and leave
	// the pose bit-identical.
	before := *b.piece
	assert.False(t, b.piece.checkedLeft(b))
	assert.Equal(t, before, *b.piece)
	assert.False(t, b.piece.checkedUp(b))
	assert.Equal(t, before, *b.piece)

	assert.True(t, b.piece.checkedDown(b))
	assert.Equal(t, point{1, 0}, b.piece.translation)
	assert.True(t, b.piece.checkedRight(b))
	assert.Equal(t, point{1, 1}, b.piece.translation)
}

func TestCheckedRotateReverts(t *testing.T) {
	b := emptyBoard(t, newPiece(point{0, 0}, []point{{0, 1}}), nil)
	// A quarter turn would move the cell from (0,1) to (1,0); block it.
	b.bitmap[1][0] = 1
	before := *b.piece
	assert.False(t, b.piece.checkedRotate(b))
	assert.Equal(t, before, *b.piece)

	b.bitmap[1][0] = 0
	assert.True(t, b.piece.checkedRotate(b))
	assert.Equal(t, 1, b.piece.rotation)
}

func TestReset(t *testing.T) {
	p := newPiece(point{5, 5}, []point{{0, 0}})
	p.down()
	p.right()
	p.rotate()
	p.rotate()
	p.reset()
	assert.Equal(t, point{}, p.translation)
	assert.Zero(t, p.rotation)
}

func TestDoCommandUnknownToken(t *testing.T) {
	p := newPiece(point{5, 5}, []point{{0, 0}})
	err := p.doCommand("hold")
	assert.ErrorIs(t, err, errInvalidMove)
}

func TestCloneSharesOffsetsCopiesPose(t *testing.T) {
	p := newPiece(point{5, 5}, []point{{0, 0}, {0, 1}})
	c := p.clone()
	c.down()
	c.rotate()
	assert.Equal(t, point{}, p.translation)
	assert.Zero(t, p.rotation)
	assert.Equal(t, point{1, 0}, c.translation)
}
