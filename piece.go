package main

import (
	"fmt"
	"iter"
)

// point is an (i, j) board coordinate. Row i grows downward, so row 0 is
// the top of the playfield.
type point struct {
	i, j int
}

// piece is the falling shape: an immutable center and offset list, plus
// the mutable pose (translation and rotation) that moves it around the
// board. rotation is a plain signed counter, not a value clamped to four
// states; the raw counter scales the offsets in squares.
type piece struct {
	center      point
	offsets     []point
	translation point
	rotation    int
}

func newPiece(center point, offsets []point) *piece {
	return &piece{center: center, offsets: append([]point(nil), offsets...)}
}

// squares yields the absolute cells the piece occupies under its current
// pose, one per offset. The sequence is recomputed fresh on every call.
func (p *piece) squares() iter.Seq[point] {
	return func(yield func(point) bool) {
		if p.rotation%2 != 0 {
			for _, off := range p.offsets {
				if !yield(point{
					p.center.i + p.translation.i + (2-p.rotation)*off.j,
					p.center.j + p.translation.j - (2-p.rotation)*off.i,
				}) {
					return
				}
			}
			return
		}
		for _, off := range p.offsets {
			if !yield(point{
				p.center.i + p.translation.i + (1-p.rotation)*off.i,
				p.center.j + p.translation.j + (1-p.rotation)*off.j,
			}) {
				return
			}
		}
	}
}

func (p *piece) left()     { p.translation.j-- }
func (p *piece) right()    { p.translation.j++ }
func (p *piece) up()       { p.translation.i-- }
func (p *piece) down()     { p.translation.i++ }
func (p *piece) rotate()   { p.rotation++ }
func (p *piece) unrotate() { p.rotation-- }

// reset returns the piece to its spawn pose.
func (p *piece) reset() {
	p.translation = point{}
	p.rotation = 0
}

// clone copies the piece pose. The offset list is shared; it is never
// mutated after construction.
func (p *piece) clone() *piece {
	c := *p
	return &c
}

// The checked moves apply a primitive only if the result is legal on b,
// reverting with the exact inverse otherwise. They report success. The
// search uses these to probe how far the piece can travel.

func (p *piece) checkedLeft(b *board) bool {
	p.left()
	if b.check(p) {
		return true
	}
	p.right()
	return false
}

func (p *piece) checkedRight(b *board) bool {
	p.right()
	if b.check(p) {
		return true
	}
	p.left()
	return false
}

func (p *piece) checkedDown(b *board) bool {
	p.down()
	if b.check(p) {
		return true
	}
	p.up()
	return false
}

func (p *piece) checkedUp(b *board) bool {
	p.up()
	if b.check(p) {
		return true
	}
	p.down()
	return false
}

func (p *piece) checkedRotate(b *board) bool {
	p.rotate()
	if b.check(p) {
		return true
	}
	p.unrotate()
	return false
}

// Move tokens understood by the executor. cmdDrop is a commit signal
// rather than a piece transform.
const (
	cmdLeft   = "left"
	cmdRight  = "right"
	cmdUp     = "up"
	cmdDown   = "down"
	cmdRotate = "rotate"
	cmdDrop   = "drop"
)

// doCommand applies one move token to the piece unconditionally. The
// caller is responsible for checking legality afterwards.
func (p *piece) doCommand(cmd string) error {
	switch cmd {
	case cmdLeft:
		p.left()
	case cmdRight:
		p.right()
	case cmdUp:
		p.up()
	case cmdDown:
		p.down()
	case cmdRotate:
		p.rotate()
	default:
		return fmt.Errorf("%w: unknown command %q", errInvalidMove, cmd)
	}
	return nil
}
