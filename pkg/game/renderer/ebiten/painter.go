package ebiten

import (
	"github.com/hajimehoshi/ebiten/v2"

	"wallmaze/pkg/game/renderer/pixels"
)

// mazePainter keeps an RGBA buffer and image for one maze size
type mazePainter struct {
	width, height int
	cellSize      int
	img           *ebiten.Image
	buf           []byte
}

func newMazePainter(width, height, cellSize int) *mazePainter {
	w, h := pixels.CanvasSize(width, height, cellSize)
	return &mazePainter{
		width:    width,
		height:   height,
		cellSize: cellSize,
		img:      ebiten.NewImage(w, h),
		buf:      make([]byte, 4*w*h),
	}
}

// fits reports whether the painter was allocated for this maze size
func (p *mazePainter) fits(width, height int) bool {
	return p.width == width && p.height == height
}

// Blit uploads cells into the painter image and draws it onto dst
func (p *mazePainter) Blit(dst *ebiten.Image, cells []byte) {
	if len(cells) != p.width*p.height {
		return
	}
	pixels.FillMazeRGBA(p.buf, cells, p.width, p.height, p.cellSize)
	p.img.WritePixels(p.buf)
	dst.DrawImage(p.img, &ebiten.DrawImageOptions{})
}
