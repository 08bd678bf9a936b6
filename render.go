package main

import (
	"image"
	"image/color"
	"sync"

	"golang.org/x/exp/shiny/driver"
	"golang.org/x/exp/shiny/screen"
	"golang.org/x/mobile/event/key"
	"golang.org/x/mobile/event/lifecycle"
	"golang.org/x/mobile/event/paint"

	"github.com/rs/zerolog/log"
)

const (
	cellSize   = 20
	borderSize = cellSize
)

var (
	colorEmpty  = color.RGBA{0, 0, 0, 255}
	colorStack  = color.RGBA{64, 64, 64, 255}
	colorPiece  = color.RGBA{31, 97, 141, 255}
	colorBorder = color.RGBA{120, 120, 120, 255}
)

// frame is one rendered snapshot of a running game.
type frame struct {
	bitmap [][]int
	piece  []point
	pieces int
	lines  int
}

// watch opens a window and draws frames as the agent produces them.
// Blocks until the window closes or Escape is pressed. Must run on the
// main goroutine; the agent runs beside it and feeds the channel.
func watch(frames <-chan frame) {
	width := borderSize*2 + cellSize*boardCols
	height := borderSize*2 + cellSize*boardRows
	driver.Main(func(scr screen.Screen) {
		win, err := scr.NewWindow(&screen.NewWindowOptions{
			Title:  "dropblox",
			Width:  width,
			Height: height,
		})
		if err != nil {
			log.Fatal().Err(err).Msg("open window")
		}
		defer win.Release()
		buf, err := scr.NewBuffer(image.Point{width, height})
		if err != nil {
			log.Fatal().Err(err).Msg("allocate buffer")
		}
		defer buf.Release()

		var mu sync.Mutex
		var current frame
		go func() {
			for f := range frames {
				mu.Lock()
				current = f
				mu.Unlock()
				win.Send(paint.Event{})
			}
		}()

		for {
			switch e := win.NextEvent().(type) {
			case lifecycle.Event:
				if e.To == lifecycle.StageDead {
					return
				}

			case key.Event:
				if e.Code == key.CodeEscape {
					return
				}

			case paint.Event:
				mu.Lock()
				drawFrame(buf.RGBA(), current)
				mu.Unlock()
				win.Upload(image.Point{}, buf, buf.Bounds())
				win.Publish()

			case error:
				log.Error().Err(e).Msg("window event")
			}
		}
	})
}

func drawFrame(img *image.RGBA, f frame) {
	bounds := img.Bounds()
	for x := bounds.Min.X; x < bounds.Max.X; x++ {
		for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
			img.SetRGBA(x, y, colorBorder)
		}
	}
	if f.bitmap == nil {
		return
	}
	pieceCells := make(map[point]bool, len(f.piece))
	for _, sq := range f.piece {
		pieceCells[sq] = true
	}
	for i := 0; i < boardRows; i++ {
		for j := 0; j < boardCols; j++ {
			c := colorEmpty
			if f.bitmap[i][j] != 0 {
				c = colorStack
			}
			if pieceCells[point{i, j}] {
				c = colorPiece
			}
			fillCell(img, i, j, c)
		}
	}
}

func fillCell(img *image.RGBA, row, col int, c color.RGBA) {
	x0 := img.Bounds().Min.X + borderSize + col*cellSize
	y0 := img.Bounds().Min.Y + borderSize + row*cellSize
	for x := x0; x < x0+cellSize; x++ {
		for y := y0; y < y0+cellSize; y++ {
			img.SetRGBA(x, y, c)
		}
	}
}
