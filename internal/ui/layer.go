package ui

import "strings"

// Layer represents an overlay that can render itself into a canvas carrying
// its own composition offset.
type Layer interface {
	Render() *Canvas
}

// LayerFunc is an adapter to allow ordinary functions to act as layers.
type LayerFunc func() *Canvas

// Render implements Layer for LayerFunc.
func (f LayerFunc) Render() *Canvas {
	return f()
}

// newCenteredLayer places content in the middle of a width x height frame,
// keeping topMargin/bottomMargin rows free for header and footer.
func newCenteredLayer(content string, width, height, topMargin, bottomMargin int) Layer {
	return LayerFunc(func() *Canvas {
		if content == "" {
			return nil
		}
		contentWidth, contentHeight := blockDimensions(content)
		if contentWidth <= 0 || contentHeight <= 0 {
			return nil
		}

		surface := NewSecondarySurface(contentWidth, contentHeight)
		surface.Draw(0, 0, content)
		x, y := centeredOffsets(width, height, contentWidth, contentHeight, topMargin, bottomMargin)
		surface.Canvas.SetOffset(x, y)
		return surface.Canvas
	})
}

// newAnchoredLayer pins content with its top-left corner at x,y, clamping so
// the block stays inside the width x height frame. Dropdown panels use this
// to hang directly under their invoker.
func newAnchoredLayer(content string, width, height, x, y int) Layer {
	return LayerFunc(func() *Canvas {
		if content == "" {
			return nil
		}
		contentWidth, contentHeight := blockDimensions(content)
		if contentWidth <= 0 || contentHeight <= 0 {
			return nil
		}

		if x+contentWidth > width {
			x = width - contentWidth
		}
		if y+contentHeight > height {
			y = height - contentHeight
		}
		if x < 0 {
			x = 0
		}
		if y < 0 {
			y = 0
		}

		surface := NewSecondarySurface(contentWidth, contentHeight)
		surface.Draw(0, 0, content)
		surface.Canvas.SetOffset(x, y)
		return surface.Canvas
	})
}

// newToastLayer anchors content to the bottom-right corner with the given
// padding.
func newToastLayer(content string, width, height, padding int) Layer {
	return LayerFunc(func() *Canvas {
		if content == "" {
			return nil
		}
		toastWidth, toastHeight := blockDimensions(content)
		if toastWidth <= 0 || toastHeight <= 0 {
			return nil
		}

		surface := NewPrimarySurface(toastWidth, toastHeight)
		surface.Draw(0, 0, content)

		x := width - toastWidth - padding
		if x < 0 {
			x = 0
		}
		y := height - toastHeight - padding
		if y < 0 {
			y = 0
		}
		surface.Canvas.SetOffset(x, y)
		return surface.Canvas
	})
}

func blockDimensions(content string) (int, int) {
	normalized := strings.ReplaceAll(content, "\r\n", "\n")
	lines := strings.Split(normalized, "\n")
	width := maxLineWidth(lines)
	if width <= 0 {
		width = 1
	}
	height := len(lines)
	if height <= 0 {
		height = 1
	}
	return width, height
}

func centeredOffsets(containerWidth, containerHeight, contentWidth, contentHeight, topMargin, bottomMargin int) (int, int) {
	if topMargin < 0 {
		topMargin = 0
	}
	if bottomMargin < 0 {
		bottomMargin = 0
	}

	usableHeight := containerHeight - topMargin - bottomMargin
	if usableHeight < contentHeight {
		usableHeight = contentHeight
	}

	y := topMargin
	if usableHeight > contentHeight {
		y = topMargin + (usableHeight-contentHeight)/2
	}
	maxY := containerHeight - bottomMargin - contentHeight
	if y > maxY {
		y = maxY
	}
	if y < topMargin {
		y = topMargin
	}
	if y < 0 {
		y = 0
	}

	x := (containerWidth - contentWidth) / 2
	if x < 0 {
		x = 0
	}

	return x, y
}
