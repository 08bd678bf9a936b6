package main

import "math/rand"

// The seven tetrominoes in dropblox form: a spawn center near the top
// middle of the grid and offsets relative to it, matching the shape
// definitions the game server deals out. Self-play draws from these;
// the planning path takes its pieces from the game-state snapshot and
// never touches this table.

const numPieces = 7

var pieceOffsets = [numPieces][]point{
	{{0, 0}, {0, 1}, {1, 0}, {1, 1}},   // O
	{{0, -1}, {0, 0}, {0, 1}, {0, 2}},  // I
	{{0, -1}, {0, 0}, {0, 1}, {1, 0}},  // T
	{{0, -1}, {0, 0}, {0, 1}, {1, 1}},  // J
	{{0, -1}, {0, 0}, {0, 1}, {1, -1}}, // L
	{{0, 0}, {0, 1}, {1, -1}, {1, 0}},  // S
	{{0, -1}, {0, 0}, {1, 0}, {1, 1}},  // Z
}

// spawnCenter keeps every shape, including the wide I, inside the top
// rows of an empty 33x12 grid.
var spawnCenter = point{1, 5}

// pieceSource deals seeded random pieces for self-play games.
type pieceSource struct {
	random *rand.Rand
}

func newPieceSource(seed int64) *pieceSource {
	return &pieceSource{random: rand.New(rand.NewSource(seed))}
}

func (s *pieceSource) next() *piece {
	return newPiece(spawnCenter, pieceOffsets[s.random.Intn(numPieces)])
}
