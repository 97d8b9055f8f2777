package ui

import (
	"strings"
	"testing"
)

func TestCanvasDrawStringAt(t *testing.T) {
	c := NewCanvas(12, 3)
	c.DrawStringAt(2, 1, "hi")
	out := stripANSI(c.Render())

	lines := strings.Split(out, "\n")
	if len(lines) < 2 {
		t.Fatalf("expected at least 2 rendered rows, got %d", len(lines))
	}
	if !strings.Contains(lines[1], "hi") {
		t.Errorf("row 1 = %q, want it to contain %q", lines[1], "hi")
	}
	if idx := strings.Index(lines[1], "hi"); idx != 2 {
		t.Errorf("content starts at column %d, want 2", idx)
	}
}

func TestCanvasMultilineCrop(t *testing.T) {
	c := NewCanvas(6, 2)
	c.DrawStringAt(0, 0, "first line too wide\nsecond\nthird")
	out := stripANSI(c.Render())

	lines := strings.Split(out, "\n")
	if len(lines) > 2 {
		t.Errorf("canvas height 2 should crop to 2 rows, got %d", len(lines))
	}
	if strings.Contains(out, "third") {
		t.Error("rows past the canvas height should be cropped")
	}
	if strings.Contains(out, "wide") {
		t.Error("columns past the canvas width should be cropped")
	}
}

func TestCanvasSetOffsetClampsNegative(t *testing.T) {
	c := NewCanvas(4, 4)
	c.SetOffset(-3, -1)
	x, y := c.Offset()
	if x != 0 || y != 0 {
		t.Errorf("Offset() = (%d, %d), want (0, 0)", x, y)
	}

	var nilCanvas *Canvas
	nilCanvas.SetOffset(1, 1) // must not panic
	if x, y := nilCanvas.Offset(); x != 0 || y != 0 {
		t.Errorf("nil canvas Offset() = (%d, %d), want (0, 0)", x, y)
	}
}

func TestCompositeLayersPlacesOverlay(t *testing.T) {
	base := "aaaaaaaaaa\naaaaaaaaaa\naaaaaaaaaa"
	out := stripANSI(CompositeLayers(base, 10, 3, newAnchoredLayer("XX", 10, 3, 4, 1)))

	lines := strings.Split(out, "\n")
	if len(lines) < 3 {
		t.Fatalf("expected 3 rows, got %d", len(lines))
	}
	if !strings.Contains(lines[1], "XX") {
		t.Errorf("row 1 = %q, want the overlay content", lines[1])
	}
	if idx := strings.Index(lines[1], "XX"); idx != 4 {
		t.Errorf("overlay starts at column %d, want 4", idx)
	}
	if strings.Contains(lines[0], "X") {
		t.Error("row 0 should be untouched base content")
	}
}

func TestCompositeLayersSkipsEmpty(t *testing.T) {
	base := "bb\nbb"
	out := stripANSI(CompositeLayers(base, 2, 2,
		nil,
		LayerFunc(func() *Canvas { return nil }),
		newAnchoredLayer("", 2, 2, 0, 0),
	))
	if !strings.Contains(out, "bb") {
		t.Errorf("base should survive empty layers, got %q", out)
	}
}

func TestAnchoredLayerClampsToFrame(t *testing.T) {
	layer := newAnchoredLayer("wide content", 10, 4, 8, 5)
	overlay := layer.Render()
	if overlay == nil {
		t.Fatal("expected a rendered overlay")
	}
	x, y := overlay.Offset()
	if x != 0 {
		t.Errorf("x = %d, want 0 (12 columns cannot start past a 10-wide frame)", x)
	}
	if y != 3 {
		t.Errorf("y = %d, want 3 (single row pinned to the last frame row)", y)
	}
}

func TestCenteredOffsets(t *testing.T) {
	tests := []struct {
		name                      string
		cw, ch, w, h, top, bottom int
		wantX, wantY              int
	}{
		{"CenteredBothAxes", 20, 11, 10, 3, 1, 2, 5, 3},
		{"ContentFillsWidth", 10, 5, 10, 1, 0, 0, 0, 2},
		{"OversizedContentPinsToMargin", 10, 4, 10, 6, 1, 1, 0, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x, y := centeredOffsets(tt.cw, tt.ch, tt.w, tt.h, tt.top, tt.bottom)
			if x != tt.wantX || y != tt.wantY {
				t.Errorf("centeredOffsets() = (%d, %d), want (%d, %d)", x, y, tt.wantX, tt.wantY)
			}
		})
	}
}

func TestToastLayerBottomRight(t *testing.T) {
	layer := newToastLayer("done", 40, 10, 2)
	overlay := layer.Render()
	if overlay == nil {
		t.Fatal("expected a rendered overlay")
	}
	x, y := overlay.Offset()
	if x != 34 { // 40 - 4 - 2
		t.Errorf("x = %d, want 34", x)
	}
	if y != 7 { // 10 - 1 - 2
		t.Errorf("y = %d, want 7", y)
	}
}

func TestBlockDimensions(t *testing.T) {
	w, h := blockDimensions("abc\nab\nabcd")
	if w != 4 || h != 3 {
		t.Errorf("blockDimensions() = (%d, %d), want (4, 3)", w, h)
	}
	w, h = blockDimensions("")
	if w != 1 || h != 1 {
		t.Errorf("empty block = (%d, %d), want (1, 1)", w, h)
	}
}
