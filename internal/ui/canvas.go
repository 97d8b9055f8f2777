package ui

import (
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/cellbuf"
)

// Canvas is a lightweight helper around cellbuf.Screen that lets us compose
// lipgloss-rendered strings into a cell buffer before turning the frame back
// into a string for Bubble Tea. A canvas may carry an offset describing
// where it belongs inside a parent frame; CompositeLayers applies it.
type Canvas struct {
	screen  *cellbuf.Screen
	writer  *cellbuf.ScreenWriter
	width   int
	height  int
	offsetX int
	offsetY int
}

func NewCanvas(width, height int) *Canvas {
	if width <= 0 {
		width = 1
	}
	if height <= 0 {
		height = 1
	}
	screen := cellbuf.NewScreen(io.Discard, width, height, &cellbuf.ScreenOptions{
		ShowCursor: false,
		AltScreen:  false,
	})
	return &Canvas{
		screen: screen,
		writer: cellbuf.NewScreenWriter(screen),
		width:  width,
		height: height,
	}
}

// SetOffset records where this canvas should land when composited onto a
// parent frame.
func (c *Canvas) SetOffset(x, y int) {
	if c == nil {
		return
	}
	if x < 0 {
		x = 0
	}
	if y < 0 {
		y = 0
	}
	c.offsetX = x
	c.offsetY = y
}

// Offset returns the composition offset.
func (c *Canvas) Offset() (int, int) {
	if c == nil {
		return 0, 0
	}
	return c.offsetX, c.offsetY
}

// Fill paints the entire canvas with the provided background color.
func (c *Canvas) Fill(bg lipgloss.TerminalColor) {
	if c == nil {
		return
	}
	fill := lipgloss.NewStyle().
		Background(bg).
		Width(c.width).
		Height(c.height).
		Render("")
	c.DrawStringAt(0, 0, fill)
}

// DrawStringAt writes the provided block starting at x,y. Newlines are
// normalized so each line begins at column 0 relative to x.
func (c *Canvas) DrawStringAt(x, y int, content string) {
	if content == "" || c == nil || c.writer == nil {
		return
	}
	normalized := normalizeForCellbuf(content)
	c.writer.PrintCropAt(x, y, normalized, "")
}

// Render returns the composed frame as a newline-delimited string suitable
// for Bubble Tea consumption.
func (c *Canvas) Render() string {
	if c == nil || c.screen == nil {
		return ""
	}
	raw := cellbuf.Render(c.screen)
	_ = c.screen.Close()
	return strings.ReplaceAll(raw, "\r\n", "\n")
}

// CompositeLayers draws the base frame into a canvas of the given size and
// stacks each layer's canvas on top at its recorded offset. Layers that
// render nil are skipped.
func CompositeLayers(base string, width, height int, layers ...Layer) string {
	root := NewCanvas(width, height)
	root.DrawStringAt(0, 0, base)
	for _, layer := range layers {
		if layer == nil {
			continue
		}
		overlay := layer.Render()
		if overlay == nil {
			continue
		}
		x, y := overlay.Offset()
		root.DrawStringAt(x, y, overlay.Render())
	}
	return root.Render()
}

func normalizeForCellbuf(content string) string {
	if content == "" {
		return ""
	}
	content = strings.ReplaceAll(content, "\r\n", "\n")
	return strings.ReplaceAll(content, "\n", "\r\n")
}
