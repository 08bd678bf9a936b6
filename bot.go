package main

import (
	"errors"
	"math"

	"github.com/kamstrup/intmap"
)

// searchConfig controls planning. corrected applies the right-shift to
// the live probe piece before probing the drop depth; the legacy order
// probes depth at the leftmost column, which is how the planner has
// always behaved and remains the default. scorer defaults to the fixed
// evaluate formula when nil.
type searchConfig struct {
	corrected bool
	scorer    func(b *board) float64
}

func classicScore(b *board) float64 {
	return float64(b.evaluate())
}

// candidate pairs a fully probed move list with the score of the board
// it produces.
type candidate struct {
	moves []string
	score float64
}

// scoreKey maps a score to a candidate-map key. Equal scores share a
// key, so a later candidate with the same score replaces the earlier
// one. Last write wins on ties.
func scoreKey(score float64) int64 {
	return int64(math.Float64bits(score))
}

// planMoves picks the best placement for the current piece and returns
// its move list without the trailing drop; the executor appends that
// implicitly. The probe piece's pose deliberately carries over from one
// shift round to the next, exactly as the executor leaves it; only the
// explicit reset before each execution returns it to spawn.
func planMoves(b *board, cfg searchConfig) ([]string, error) {
	scorer := cfg.scorer
	if scorer == nil {
		scorer = classicScore
	}
	blk := b.piece
	choices := intmap.New[int64, candidate](boardCols * 3)
	var bestScore float64
	for shift := 0; shift < boardCols; shift++ {
		var moves []string
		for blk.checkedLeft(b) {
			moves = append(moves, cmdLeft)
		}
		if cfg.corrected {
			blocked := false
			for n := 0; n < shift; n++ {
				if !blk.checkedRight(b) {
					blocked = true
					break
				}
				moves = append(moves, cmdRight)
			}
			if blocked {
				continue
			}
		} else {
			// The shift tokens go on the list only; the live piece
			// stays at its leftmost column for the down probe.
			for n := 0; n < shift; n++ {
				moves = append(moves, cmdRight)
			}
		}
		for blk.checkedDown(b) {
			moves = append(moves, cmdDown)
		}
		for turn := 0; turn < 3; turn++ {
			moves = append(moves, cmdRotate)
			blk.reset()
			result, err := b.doCommands(moves)
			if err != nil {
				if errors.Is(err, errInvalidMove) {
					continue
				}
				return nil, err
			}
			score := scorer(result)
			if choices.Len() == 0 || score > bestScore {
				bestScore = score
			}
			choices.Put(scoreKey(score), candidate{
				moves: append([]string(nil), moves...),
				score: score,
			})
		}
	}
	if choices.Len() == 0 {
		return nil, errNoLegalPlacement
	}
	best, ok := choices.Get(scoreKey(bestScore))
	if !ok {
		return nil, errNoLegalPlacement
	}
	return best.moves, nil
}
