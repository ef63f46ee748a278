package ebiten

import (
	"errors"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"wallmaze/pkg/engine/input"
	"wallmaze/pkg/game/locale"
	"wallmaze/pkg/game/renderer"
	"wallmaze/pkg/game/renderer/pixels"
	"wallmaze/pkg/game/state"
)

// EbitenRenderer shows the maze in a window, one filled square per cell
type EbitenRenderer struct {
	cellSize int

	session *state.Session
	painter *mazePainter
}

// New creates a new Ebiten renderer drawing cellSize-pixel cells
func New(cellSize int) *EbitenRenderer {
	if cellSize < 1 {
		cellSize = DefaultCellSize
	}
	return &EbitenRenderer{cellSize: cellSize}
}

// Init sets the window title, which doubles as key help
func (e *EbitenRenderer) Init() {
	ebiten.SetWindowTitle(locale.Get("TITLE") + "  " + locale.Get("KEYS_HELP_WINDOW"))
	ebiten.SetTPS(ticksPerSecond)
}

// Name returns the backend name
func (e *EbitenRenderer) Name() string {
	return "ebiten"
}

// StyleText returns text unchanged; the window draws no styled text
func (e *EbitenRenderer) StyleText(text string, style renderer.TextStyle) string {
	return text
}

// GetViewportSize returns the whole maze; the window is sized to fit it
func (e *EbitenRenderer) GetViewportSize() (rows, cols int) {
	if e.session == nil || e.session.Maze == nil {
		return 0, 0
	}
	return e.session.Maze.Height(), e.session.Maze.Width()
}

// Run opens the window and blocks until it is closed or the user quits
func (e *EbitenRenderer) Run(s *state.Session) error {
	e.session = s
	ebiten.SetWindowSize(pixels.CanvasSize(s.Maze.Width(), s.Maze.Height(), e.cellSize))

	if err := ebiten.RunGame(e); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("running window: %w", err)
	}
	return nil
}

// Update handles input (Ebiten interface)
func (e *EbitenRenderer) Update() error {
	action := checkInput()
	if action == input.ActionNone {
		return nil
	}

	rows, cols := e.GetViewportSize()
	if renderer.Apply(e.session, action, rows, cols) {
		return ebiten.Termination
	}
	// The window draws no text, so results go to the title bar.
	ebiten.SetWindowTitle(renderer.StatusLine(e.session) + "  " + locale.Get("KEYS_HELP_WINDOW"))
	return nil
}

// checkInput maps this frame's key presses to an action
func checkInput() input.Action {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyQ), inpututil.IsKeyJustPressed(ebiten.KeyEscape):
		return input.ActionQuit
	case inpututil.IsKeyJustPressed(ebiten.KeyR):
		return input.ActionRegenerate
	case inpututil.IsKeyJustPressed(ebiten.KeyD):
		return input.ActionDump
	}
	return input.ActionNone
}

// Draw renders the maze every frame (Ebiten interface)
func (e *EbitenRenderer) Draw(screen *ebiten.Image) {
	m := e.session.Maze
	if e.painter == nil || !e.painter.fits(m.Width(), m.Height()) {
		e.painter = newMazePainter(m.Width(), m.Height(), e.cellSize)
	}
	e.painter.Blit(screen, m.Cells())
}

// Layout returns the canvas size for the current maze (Ebiten interface)
func (e *EbitenRenderer) Layout(outsideWidth, outsideHeight int) (int, int) {
	return pixels.CanvasSize(e.session.Maze.Width(), e.session.Maze.Height(), e.cellSize)
}
