package main

import "fmt"

// All features are computed from the grid alone; the falling piece is
// never counted. Dimensions come from the grid itself so the helpers
// also work on small fixture grids in tests.

// numHoles counts empty cells sitting below any filled cell in their
// column. Counting every overhang as a hole is pessimistic, but works
// reasonably well.
func (b *board) numHoles() int {
	rows, cols := len(b.bitmap), len(b.bitmap[0])
	occupied := make([]int, cols)
	var holes int
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			if b.bitmap[row][col] == 0 {
				if occupied[col] != 0 {
					holes++
				}
			} else {
				occupied[col]++
			}
		}
	}
	return holes
}

// colHeight is the distance from the topmost filled cell in the column
// to the bottom edge, zero for an empty column.
func (b *board) colHeight(col int) int {
	rows := len(b.bitmap)
	for row := 0; row < rows; row++ {
		if b.bitmap[row][col] != 0 {
			return rows - row
		}
	}
	return 0
}

func (b *board) maxHeight() int {
	cols := len(b.bitmap[0])
	var max int
	for col := 0; col < cols; col++ {
		if h := b.colHeight(col); h > max {
			max = h
		}
	}
	return max
}

// heightVariance sums the height difference between each column and its
// left neighbor. Column 0 compares against itself and contributes zero.
func (b *board) heightVariance() int {
	cols := len(b.bitmap[0])
	var variance int
	prev := b.colHeight(0)
	for col := 0; col < cols; col++ {
		cur := b.colHeight(col)
		variance += abs(cur - prev)
		prev = cur
	}
	return variance
}

// heightPenalty weighs every filled cell by its distance from the bottom
// edge, so cells near the top cost more. Computed but deliberately left
// out of evaluate.
func (b *board) heightPenalty() int {
	rows, cols := len(b.bitmap), len(b.bitmap[0])
	var penalty int
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			if b.bitmap[row][col] != 0 {
				penalty += rows - row
			}
		}
	}
	return penalty
}

// evaluate is the fixed planning score. Higher is better. heightPenalty
// stays excluded.
func (b *board) evaluate() int {
	return -b.numHoles() - b.maxHeight() - b.heightVariance()
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// feature and strategy form the weighted scoring layer used by self-play
// and the cross-entropy trainer. The default planner never goes through
// this path; it uses evaluate directly.

type feature func(b *board) float64

var defaultFeatures = []feature{
	func(b *board) float64 { return float64(b.numHoles()) },
	func(b *board) float64 { return float64(b.maxHeight()) },
	func(b *board) float64 { return float64(b.heightVariance()) },
	func(b *board) float64 { return float64(b.heightPenalty()) },
}

type strategy []float64

// defaultStrategy mirrors evaluate: unit weight against holes, max
// height and variance, height penalty suppressed.
func defaultStrategy() strategy {
	return strategy{-1, -1, -1, 0}
}

// score applies the strategy's weights to the default feature set.
func (s strategy) score(b *board) float64 {
	var total float64
	for i, f := range defaultFeatures {
		total += s[i] * f(b)
	}
	return total
}

func (s strategy) string() string {
	str := "[ "
	for i := 0; i < len(s); i++ {
		str += fmt.Sprintf("%8.3f ", s[i])
	}
	return str + "]"
}
