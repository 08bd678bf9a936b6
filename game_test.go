package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAgentPlacesPieces(t *testing.T) {
	a := newAgent(1, searchConfig{}, 0)
	a.maxPieces = 25

	pieces, lines := a.run()
	assert.Equal(t, 25, pieces)
	assert.GreaterOrEqual(t, lines, 0)

	require.Len(t, a.board.preview, previewDepth)
	for _, row := range a.board.bitmap {
		for _, cell := range row {
			assert.Contains(t, []int{0, 1}, cell)
		}
	}
}

func TestAgentDeterministicForSeed(t *testing.T) {
	first := newAgent(7, searchConfig{}, 0)
	first.maxPieces = 10
	second := newAgent(7, searchConfig{}, 0)
	second.maxPieces = 10

	p1, l1 := first.run()
	p2, l2 := second.run()
	assert.Equal(t, p1, p2)
	assert.Equal(t, l1, l2)
	assert.Equal(t, first.board.bitmap, second.board.bitmap)
}

func TestPieceSourceDeterministic(t *testing.T) {
	a := newPieceSource(42)
	b := newPieceSource(42)
	for i := 0; i < 20; i++ {
		pa, pb := a.next(), b.next()
		assert.Equal(t, pa.offsets, pb.offsets)
		assert.Equal(t, spawnCenter, pa.center)
	}
}

func TestPieceSpawnsLegalOnEmptyBoard(t *testing.T) {
	for idx, offsets := range pieceOffsets {
		pc := newPiece(spawnCenter, offsets)
		b := emptyBoard(t, pc, nil)
		assert.True(t, b.check(pc), "piece %d blocked at spawn", idx)
	}
}

func TestSnapshotCopiesBoard(t *testing.T) {
	a := newAgent(3, searchConfig{}, 0)
	f := a.snapshot()
	require.NotEmpty(t, f.piece)

	f.bitmap[5][5] = 1
	assert.Zero(t, a.board.bitmap[5][5], "snapshot must not alias the live grid")
}
