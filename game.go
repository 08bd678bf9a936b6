package main

import (
	"errors"
	"time"

	"github.com/rs/zerolog/log"
)

// agent plays full games against a random piece source, planning every
// placement with the same search the server harness uses. It exists for
// watching the planner and for trainer fitness runs; the server path
// constructs its board from a snapshot instead.
type agent struct {
	board       *board
	source      *pieceSource
	cfg         searchConfig
	totalPieces int
	totalLines  int
	maxPieces   int           // stop after this many placements; 0 means play until game over
	speed       int           // ms between printed frames; 0 disables printing
	frames      chan<- frame  // optional sink for the GUI watcher
}

// previewDepth is how many future pieces a self-play board carries. The
// search only ever commits one piece per cycle, so one is enough.
const previewDepth = 1

func newAgent(seed int64, cfg searchConfig, speed int) *agent {
	source := newPieceSource(seed)
	preview := make([]*piece, previewDepth)
	for i := range preview {
		preview[i] = source.next()
	}
	bitmap := make([][]int, boardRows)
	for i := range bitmap {
		bitmap[i] = make([]int, boardCols)
	}
	b, err := newBoard(bitmap, source.next(), preview)
	if err != nil {
		panic(err) // a fresh empty grid is always valid
	}
	return &agent{board: b, source: source, cfg: cfg, speed: speed}
}

// run plays placements until no legal one remains, returning pieces
// placed and lines cleared.
func (a *agent) run() (int, int) {
	for a.maxPieces == 0 || a.totalPieces < a.maxPieces {
		moves, err := planMoves(a.board, a.cfg)
		if err != nil {
			if !errors.Is(err, errNoLegalPlacement) {
				log.Error().Err(err).Msg("planning failed")
			}
			break
		}
		next, err := a.board.doCommands(moves)
		if err != nil {
			log.Error().Err(err).Int("pieces", a.totalPieces).
				Msg("winning move list failed to execute")
			break
		}
		next.preview = append(next.preview, a.source.next())
		a.board = next
		a.totalPieces++
		a.totalLines += next.cleared
		if a.frames != nil {
			// Never block on the watcher; stale frames are dropped.
			select {
			case a.frames <- a.snapshot():
			default:
			}
		}
		if a.speed > 0 {
			a.print()
			time.Sleep(time.Duration(a.speed) * time.Millisecond)
		}
	}
	return a.totalPieces, a.totalLines
}

// snapshot copies the current board for rendering. Taken right after a
// commit, so the falling piece is still at its spawn pose.
func (a *agent) snapshot() frame {
	bitmap := make([][]int, len(a.board.bitmap))
	for i, row := range a.board.bitmap {
		bitmap[i] = append([]int(nil), row...)
	}
	var cells []point
	for sq := range a.board.piece.squares() {
		cells = append(cells, sq)
	}
	return frame{
		bitmap: bitmap,
		piece:  cells,
		pieces: a.totalPieces,
		lines:  a.totalLines,
	}
}
