package main

import (
	"fmt"
	"strings"
)

const (
	strEmptyCell  = "  "
	strFilledCell = "@@"
	strPieceCell  = "[]"
)

// print writes the board, the falling piece and the running totals to
// stdout.
func (a *agent) print() {
	fmt.Printf("%s %d pieces  %d lines\n\n", a.board.render(), a.totalPieces, a.totalLines)
}

// render draws the grid with the falling piece overlaid, top row first.
func (b *board) render() string {
	pieceCells := make(map[point]bool)
	if b.piece != nil && b.check(b.piece) {
		for sq := range b.piece.squares() {
			pieceCells[sq] = true
		}
	}
	var sb strings.Builder
	sb.WriteString(" " + strings.Repeat("__", boardCols) + "\n")
	for i := 0; i < boardRows; i++ {
		sb.WriteString("|")
		for j := 0; j < boardCols; j++ {
			switch {
			case pieceCells[point{i, j}]:
				sb.WriteString(strPieceCell)
			case b.bitmap[i][j] != 0:
				sb.WriteString(strFilledCell)
			default:
				sb.WriteString(strEmptyCell)
			}
		}
		sb.WriteString("|\n")
	}
	sb.WriteString(" " + strings.Repeat("‾‾", boardCols) + "\n")
	return sb.String()
}
