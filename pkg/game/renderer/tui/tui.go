package tui

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/gookit/color"

	"wallmaze/pkg/engine/input"
	"wallmaze/pkg/engine/terminal"
	"wallmaze/pkg/engine/world"
	"wallmaze/pkg/game/locale"
	"wallmaze/pkg/game/renderer"
	"wallmaze/pkg/game/state"
)

// Icon constants
const (
	IconWall  = "▒"
	IconSpace = " "
)

// Viewport margins and minimum sizes
const (
	ViewportMinRows = 5
	ViewportMinCols = 5
	// Lines needed outside viewport:
	// - Title + maze info (2)
	// - Blank before and after the map (2)
	// - Legend and key help (2)
	// - Messages pane (header + 5 messages = 6)
	ViewportTopMargin = 12
)

// TUIRenderer is the terminal-based renderer implementation
type TUIRenderer struct {
	colorWall        color.Style
	colorSpace       color.Style
	colorTitle       color.Style
	colorAction      color.Style
	colorActionShort color.Style
	colorSubtle      color.Style

	out io.Writer
}

// New creates a new TUI renderer
func New() *TUIRenderer {
	return &TUIRenderer{out: os.Stdout}
}

// Init initializes the TUI renderer (colors, etc.)
func (t *TUIRenderer) Init() {
	t.colorWall = color.Style{color.FgGray}
	t.colorSpace = color.Style{color.BgDefault}
	t.colorTitle = color.Style{color.FgCyan, color.OpBold}
	t.colorAction = color.Style{color.FgMagenta}
	t.colorActionShort = color.Style{color.FgMagenta, color.OpBold}
	t.colorSubtle = color.Style{color.FgGray, color.OpBold}
}

// Name returns the backend name
func (t *TUIRenderer) Name() string {
	return "tui"
}

// Clear clears the terminal screen
func (t *TUIRenderer) Clear() {
	c := exec.Command("clear")
	c.Stdout = os.Stdout
	c.Run()
}

// StyleText applies a style to text
func (t *TUIRenderer) StyleText(text string, style renderer.TextStyle) string {
	switch style {
	case renderer.StyleWall:
		return t.colorWall.Sprint(text)
	case renderer.StyleSpace:
		return t.colorSpace.Sprint(text)
	case renderer.StyleTitle:
		return t.colorTitle.Sprint(text)
	case renderer.StyleAction:
		return t.colorAction.Sprint(text)
	case renderer.StyleActionShort:
		return t.colorActionShort.Sprint(text)
	case renderer.StyleSubtle:
		return t.colorSubtle.Sprint(text)
	default:
		return text
	}
}

// GetViewportSize returns the viewport dimensions based on terminal size
func (t *TUIRenderer) GetViewportSize() (rows, cols int) {
	termWidth, termHeight := terminal.GetSize()
	return viewportFor(termWidth, termHeight)
}

func viewportFor(termWidth, termHeight int) (rows, cols int) {
	rows = max(termHeight-ViewportTopMargin, ViewportMinRows)
	cols = max(termWidth, ViewportMinCols)
	return rows, cols
}

// Run draws the maze and reacts to key presses until the user quits
func (t *TUIRenderer) Run(s *state.Session) error {
	for {
		rows, cols := t.GetViewportSize()

		t.Clear()
		t.WriteFrame(t.out, s, rows, cols)

		action, err := input.ReadAction()
		if err != nil {
			return fmt.Errorf("reading input: %w", err)
		}
		if renderer.Apply(s, action, rows, cols) {
			return nil
		}
	}
}

// WriteFrame writes one complete frame for s to w, showing at most
// rows x cols cells of the maze starting at the session's viewport corner.
func (t *TUIRenderer) WriteFrame(w io.Writer, s *state.Session, rows, cols int) {
	m := s.Maze

	fmt.Fprintln(w, t.StyleText(locale.Get("TITLE"), renderer.StyleTitle))
	fmt.Fprintln(w, t.StyleText(locale.Get("MAZE_INFO", s.Generation, m.Width(), m.Height()), renderer.StyleSubtle))
	fmt.Fprintln(w)

	rows, cols = terminal.FitWindow(cols, rows, 0, 0, m.Height(), m.Width())
	for row := s.ViewRow; row < s.ViewRow+rows && row < m.Height(); row++ {
		var line strings.Builder
		for col := s.ViewCol; col < s.ViewCol+cols && col < m.Width(); col++ {
			if m.IsWall(row, col) {
				line.WriteString(t.renderCell(world.Wall))
			} else {
				line.WriteString(t.renderCell(world.Space))
			}
		}
		fmt.Fprintln(w, line.String())
	}
	fmt.Fprintln(w)

	fmt.Fprintf(w, "%s %s  %s %s\n",
		t.renderCell(world.Wall), locale.Get("LEGEND_WALL"),
		t.renderCell(world.Space), locale.Get("LEGEND_SPACE"))
	fmt.Fprintln(w, t.formatKeyHelp(locale.Get("KEYS_HELP")))

	t.writeMessagesPane(w, s)
}

func (t *TUIRenderer) renderCell(c world.Cell) string {
	if c == world.Wall {
		return t.StyleText(IconWall, renderer.StyleWall)
	}
	return t.StyleText(IconSpace, renderer.StyleSpace)
}

// formatKeyHelp highlights the bracketed key names in a help line
func (t *TUIRenderer) formatKeyHelp(help string) string {
	var b strings.Builder
	for {
		open := strings.IndexByte(help, '[')
		end := strings.IndexByte(help, ']')
		if open < 0 || end < open {
			b.WriteString(t.StyleText(help, renderer.StyleAction))
			return b.String()
		}
		b.WriteString(t.StyleText(help[:open], renderer.StyleAction))
		b.WriteString(t.StyleText(help[open:end+1], renderer.StyleActionShort))
		help = help[end+1:]
	}
}

func (t *TUIRenderer) writeMessagesPane(w io.Writer, s *state.Session) {
	if len(s.Messages) == 0 {
		return
	}
	fmt.Fprintln(w, t.StyleText("--", renderer.StyleSubtle))
	for _, msg := range s.Messages {
		fmt.Fprintln(w, msg)
	}
}
