package main

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Wire format of a game-state snapshot as the dropblox server sends it.

type stateJSON struct {
	Bitmap  [][]int     `json:"bitmap"`
	Block   blockJSON   `json:"block"`
	Preview []blockJSON `json:"preview"`
}

type blockJSON struct {
	Center  pointJSON   `json:"center"`
	Offsets []pointJSON `json:"offsets"`
}

type pointJSON struct {
	I int `json:"i"`
	J int `json:"j"`
}

func (bj blockJSON) piece() *piece {
	offsets := make([]point, len(bj.Offsets))
	for i, o := range bj.Offsets {
		offsets[i] = point{o.I, o.J}
	}
	return newPiece(point{bj.Center.I, bj.Center.J}, offsets)
}

// boardFromJSON decodes one snapshot and validates the grid against the
// fixed playfield dimensions.
func boardFromJSON(data []byte) (*board, error) {
	var state stateJSON
	if err := json.Unmarshal(data, &state); err != nil {
		return nil, fmt.Errorf("decode game state: %w", err)
	}
	preview := make([]*piece, len(state.Preview))
	for i, bj := range state.Preview {
		preview[i] = bj.piece()
	}
	return newBoard(state.Bitmap, state.Block.piece(), preview)
}

// formatMoves renders a winning move list one token per line, the form
// the game server consumes.
func formatMoves(moves []string) string {
	return strings.Join(moves, "\n")
}
