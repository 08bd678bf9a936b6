package main

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func snapshotJSON(t *testing.T) []byte {
	t.Helper()
	state := stateJSON{
		Bitmap: emptyBitmap(),
		Block: blockJSON{
			Center:  pointJSON{I: 1, J: 5},
			Offsets: []pointJSON{{I: 0, J: -1}, {I: 0, J: 0}, {I: 0, J: 1}, {I: 1, J: 0}},
		},
		Preview: []blockJSON{
			{Center: pointJSON{I: 1, J: 5}, Offsets: []pointJSON{{I: 0, J: 0}}},
		},
	}
	state.Bitmap[32][0] = 1
	data, err := json.Marshal(state)
	require.NoError(t, err)
	return data
}

func TestBoardFromJSON(t *testing.T) {
	b, err := boardFromJSON(snapshotJSON(t))
	require.NoError(t, err)

	assert.Equal(t, point{1, 5}, b.piece.center)
	assert.Len(t, b.piece.offsets, 4)
	assert.Zero(t, b.piece.rotation)
	require.Len(t, b.preview, 1)
	assert.Equal(t, []point{{0, 0}}, b.preview[0].offsets)
	assert.Equal(t, 1, b.bitmap[32][0])
}

func TestBoardFromJSONRejectsWrongDimensions(t *testing.T) {
	_, err := boardFromJSON([]byte(`{"bitmap":[[0,0],[0,0]],"block":{"center":{"i":0,"j":0},"offsets":[{"i":0,"j":0}]},"preview":[]}`))
	assert.Error(t, err)
}

func TestBoardFromJSONRejectsGarbage(t *testing.T) {
	_, err := boardFromJSON([]byte(`{"bitmap":`))
	assert.Error(t, err)
}

func TestPlannedMovesRoundTrip(t *testing.T) {
	b, err := boardFromJSON(snapshotJSON(t))
	require.NoError(t, err)

	moves, err := planMoves(b, searchConfig{})
	require.NoError(t, err)

	out := formatMoves(moves)
	assert.NotEmpty(t, out)
	assert.NotContains(t, out, cmdDrop)
}

func TestFormatMoves(t *testing.T) {
	assert.Equal(t, "left\nleft\nrotate", formatMoves([]string{cmdLeft, cmdLeft, cmdRotate}))
	assert.Empty(t, formatMoves(nil))
}
