package board

import "image/color"

// ---- Palettes ----

type Palette struct {
	Background color.RGBA
	LightCell  color.RGBA
	DarkCell   color.RGBA
	Label      color.RGBA
	DragStart  color.RGBA
	DragTarget color.RGBA
	WhiteTurn  color.RGBA
	BlackTurn  color.RGBA
}

func (p Palette) String() string {
	switch p {
	case ClassicPalette:
		return "classic"
	case DarkPalette:
		return "dark"
	default:
	}
	return ""
}

// PaletteFromString falls back to the classic palette for unknown names.
func PaletteFromString(p string) Palette {
	switch p {
	case "dark":
		return DarkPalette
	default:
	}
	return ClassicPalette
}

var ClassicPalette = Palette{
	Background: color.RGBA{0x15, 0x88, 0xc4, 0xff},
	LightCell:  color.RGBA{0xff, 0xde, 0xad, 0xff},
	DarkCell:   color.RGBA{0xcd, 0x85, 0x3f, 0xff},
	Label:      color.RGBA{0xff, 0xff, 0x00, 0xff},
	DragStart:  color.RGBA{0xde, 0x18, 0x21, 0xff},
	DragTarget: color.RGBA{0x62, 0xc7, 0x39, 0xff},
	WhiteTurn:  color.RGBA{0xff, 0xff, 0xff, 0xff},
	BlackTurn:  color.RGBA{0x00, 0x00, 0x00, 0xff},
}

var DarkPalette = Palette{
	Background: color.RGBA{0x12, 0x12, 0x12, 0xff},
	LightCell:  color.RGBA{0x9e, 0xa7, 0xb0, 0xff},
	DarkCell:   color.RGBA{0x4a, 0x55, 0x60, 0xff},
	Label:      color.RGBA{0xee, 0xee, 0xee, 0xff},
	DragStart:  color.RGBA{0x2a, 0xa1, 0xd1, 0xff},
	DragTarget: color.RGBA{0x81, 0x44, 0xbd, 0xff},
	WhiteTurn:  color.RGBA{0xff, 0xff, 0xff, 0xff},
	BlackTurn:  color.RGBA{0x00, 0x00, 0x00, 0xff},
}
