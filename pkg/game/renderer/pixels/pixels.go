// Package pixels paints a maze into an RGBA buffer: square cells separated
// by 1-pixel grid lines, walls black and passages white.
package pixels

import (
	"image/color"

	"wallmaze/pkg/engine/world"
)

// Color palette
var (
	ColorGridLine = color.RGBA{0xCC, 0xCC, 0xCC, 0xFF}
	ColorWall     = color.RGBA{0x00, 0x00, 0x00, 0xFF}
	ColorSpace    = color.RGBA{0xFF, 0xFF, 0xFF, 0xFF}
)

// CanvasSize returns the pixel size of a maze drawn with cellSize-pixel
// cells separated by 1-pixel grid lines.
func CanvasSize(width, height, cellSize int) (w, h int) {
	return (cellSize+1)*width + 1, (cellSize+1)*height + 1
}

// FillMazeRGBA paints grid lines and cells into buf, which must hold
// CanvasSize(width, height, cellSize) RGBA pixels.
func FillMazeRGBA(buf []byte, cells []byte, width, height, cellSize int) {
	canvasW, canvasH := CanvasSize(width, height, cellSize)
	fillRect(buf, canvasW, 0, 0, canvasW, canvasH, ColorGridLine)

	stride := cellSize + 1
	for row := 0; row < height; row++ {
		for col := 0; col < width; col++ {
			c := ColorSpace
			if world.Cell(cells[row*width+col]) == world.Wall {
				c = ColorWall
			}
			fillRect(buf, canvasW, col*stride+1, row*stride+1, cellSize, cellSize, c)
		}
	}
}

func fillRect(buf []byte, canvasW, x, y, w, h int, c color.RGBA) {
	for py := y; py < y+h; py++ {
		base := (py*canvasW + x) * 4
		for px := 0; px < w; px++ {
			i := base + px*4
			buf[i+0] = c.R
			buf[i+1] = c.G
			buf[i+2] = c.B
			buf[i+3] = c.A
		}
	}
}
