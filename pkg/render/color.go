// pkg/render/color.go
package render

import "image/color"

// RoomColors holds all the color definitions needed to render the static room layout.
type RoomColors struct {
	BackgroundColor color.RGBA
	FloorColor      color.RGBA
	StrokeColor     color.RGBA
	EntryColor      color.RGBA
	ExitColor       color.RGBA
	TextDarkColor   color.RGBA
	TextLightColor  color.RGBA
	StrokeWidth     float32
}

// DarkenColor reduces the brightness of a color.
func DarkenColor(c color.RGBA) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * 0.5),
		G: uint8(float64(c.G) * 0.5),
		B: uint8(float64(c.B) * 0.5),
		A: c.A,
	}
}

// LightenColor increases each channel by delta, saturating at 255.
func LightenColor(c color.RGBA, delta int) color.RGBA {
	return color.RGBA{
		R: uint8(min(255, int(c.R)+delta)),
		G: uint8(min(255, int(c.G)+delta)),
		B: uint8(min(255, int(c.B)+delta)),
		A: c.A,
	}
}

// LabelColor picks a readable text color for the given background.
func LabelColor(bg color.RGBA, colors RoomColors) color.RGBA {
	if (int(bg.R)+int(bg.G)+int(bg.B))/3 > 128 {
		return colors.TextDarkColor
	}
	return colors.TextLightColor
}
