package main

import (
	"errors"
	"fmt"
)

// Logical playfield dimensions. The game server always sends a grid of
// exactly this size; construction rejects anything else so the fixed
// bounds in check can never disagree with the supplied bitmap.
const (
	boardRows = 33
	boardCols = 12
)

var (
	// errInvalidMove marks a command list that left the piece in an
	// illegal position during authoritative execution.
	errInvalidMove = errors.New("invalid move")
	// errPreviewExhausted marks a commit attempted with no preview
	// pieces left to promote.
	errPreviewExhausted = errors.New("preview exhausted")
	// errNoLegalPlacement marks a search in which every probe round
	// failed.
	errNoLegalPlacement = errors.New("no legal placement")
)

// board is one game snapshot: the occupancy grid, the falling piece and
// the preview queue of future pieces. Commits build a new board from a
// copy of the grid; only the falling piece's pose mutates in place.
type board struct {
	bitmap  [][]int
	piece   *piece
	preview []*piece
	cleared int // rows removed by the commit that produced this board
}

func newBoard(bitmap [][]int, pc *piece, preview []*piece) (*board, error) {
	if len(bitmap) != boardRows {
		return nil, fmt.Errorf("bitmap has %d rows, want %d", len(bitmap), boardRows)
	}
	for i, row := range bitmap {
		if len(row) != boardCols {
			return nil, fmt.Errorf("bitmap row %d has %d columns, want %d", i, len(row), boardCols)
		}
		for j, cell := range row {
			if cell != 0 && cell != 1 {
				return nil, fmt.Errorf("bitmap cell (%d,%d) is %d, want 0 or 1", i, j, cell)
			}
		}
	}
	return &board{bitmap: bitmap, piece: pc, preview: preview}, nil
}

// check reports whether the piece is in a legal position: every square
// in bounds and on an unoccupied cell. This is the single source of
// truth for legality everywhere.
func (b *board) check(p *piece) bool {
	for sq := range p.squares() {
		if sq.i < 0 || sq.i >= boardRows ||
			sq.j < 0 || sq.j >= boardCols ||
			b.bitmap[sq.i][sq.j] != 0 {
			return false
		}
	}
	return true
}

// doCommands resets the piece to spawn, replays the command list in
// order and commits at the first drop, returning the resulting board. A
// drop is appended if the caller left it off; tokens after a drop are
// ignored. Unlike the checked moves, every step here applies
// unconditionally: one illegal intermediate position fails the whole
// list with errInvalidMove and no partial board is returned.
func (b *board) doCommands(commands []string) (*board, error) {
	b.piece.reset()
	if !b.check(b.piece) {
		return nil, fmt.Errorf("%w: spawn position blocked", errInvalidMove)
	}
	commands = append(append([]string(nil), commands...), cmdDrop)
	for _, cmd := range commands {
		if cmd == cmdDrop {
			break
		}
		if err := b.piece.doCommand(cmd); err != nil {
			return nil, err
		}
		if !b.check(b.piece) {
			return nil, fmt.Errorf("%w: %q leaves piece in illegal position", errInvalidMove, cmd)
		}
	}
	return b.place()
}

// place hard-drops the piece to its lowest legal row, locks it into a
// copy of the grid, clears full rows and promotes the preview head to be
// the new falling piece. The receiver's grid is left untouched.
//
// Assumes the piece starts in a legal position. The piece pose is
// mutated to the landing position.
func (b *board) place() (*board, error) {
	for b.check(b.piece) {
		b.piece.down()
	}
	b.piece.up()
	bitmap := make([][]int, len(b.bitmap))
	for i, row := range b.bitmap {
		bitmap[i] = append([]int(nil), row...)
	}
	for sq := range b.piece.squares() {
		bitmap[sq.i][sq.j] = 1
	}
	bitmap, cleared := removeRows(bitmap)
	if len(b.preview) == 0 {
		return nil, errPreviewExhausted
	}
	next := &board{
		bitmap:  bitmap,
		piece:   b.preview[0],
		preview: b.preview[1:],
		cleared: cleared,
	}
	return next, nil
}

// removeRows deletes every fully filled row and refills the grid from
// the top with empty rows, preserving the order of surviving rows.
// Returns the new grid and how many rows were removed.
func removeRows(bitmap [][]int) ([][]int, int) {
	rows, cols := len(bitmap), len(bitmap[0])
	kept := make([][]int, 0, rows)
	for _, row := range bitmap {
		full := true
		for _, cell := range row {
			if cell == 0 {
				full = false
				break
			}
		}
		if !full {
			kept = append(kept, row)
		}
	}
	cleared := rows - len(kept)
	out := make([][]int, 0, rows)
	for i := 0; i < cleared; i++ {
		out = append(out, make([]int, cols))
	}
	return append(out, kept...), cleared
}
