package tui

import uv "github.com/charmbracelet/ultraviolet"

// Layout dimensions
const (
	// StatusHeight is the height of the status bar in rows
	StatusHeight = 1
	// FooterHeight is the height of the footer in rows
	FooterHeight = 1
)

// Layout defines the rectangular regions for all UI components
type Layout struct {
	Area   uv.Rectangle
	Main   uv.Rectangle
	Status uv.Rectangle
	Footer uv.Rectangle
}

// CalculateLayout computes the layout rectangles based on terminal dimensions
func CalculateLayout(width, height int) Layout {
	area := uv.Rectangle{
		Max: uv.Position{X: width, Y: height},
	}

	// Split vertically: main | status | footer
	mainRect, rest := uv.SplitVertical(area, uv.Fixed(area.Dy()-StatusHeight-FooterHeight))
	statusRect, footerRect := uv.SplitVertical(rest, uv.Fixed(StatusHeight))

	return Layout{
		Area:   area,
		Main:   mainRect,
		Status: statusRect,
		Footer: footerRect,
	}
}
