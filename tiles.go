//go:build js || sdl

package main

import (
	"image"
	"image/color"
	"image/draw"

	"codeberg.org/anaseto/gruid"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

const Tiles = true

// ColorToRGBA maps palette colors to RGBA values, with dark and light
// variants from the selenized palette:
//
//	https://github.com/jan-warchol/selenized
func ColorToRGBA(c gruid.Color, fg bool) color.Color {
	cl := color.RGBA{}
	opaque := uint8(255)
	switch c {
	case ColorRed:
		if GameConfig.DarkColors {
			cl = color.RGBA{250, 87, 80, opaque}
		} else {
			cl = color.RGBA{210, 33, 45, opaque}
		}
	case ColorGreen:
		if GameConfig.DarkColors {
			cl = color.RGBA{117, 185, 56, opaque}
		} else {
			cl = color.RGBA{72, 145, 0, opaque}
		}
	case ColorYellow:
		if GameConfig.DarkColors {
			cl = color.RGBA{219, 179, 45, opaque}
		} else {
			cl = color.RGBA{173, 137, 0, opaque}
		}
	case ColorBlue:
		if GameConfig.DarkColors {
			cl = color.RGBA{88, 163, 255, opaque}
		} else {
			cl = color.RGBA{0, 114, 212, opaque}
		}
	case ColorMagenta:
		if GameConfig.DarkColors {
			cl = color.RGBA{242, 117, 190, opaque}
		} else {
			cl = color.RGBA{202, 72, 152, opaque}
		}
	case ColorCyan:
		if GameConfig.DarkColors {
			cl = color.RGBA{65, 199, 185, opaque}
		} else {
			cl = color.RGBA{0, 156, 143, opaque}
		}
	case ColorOrange:
		if GameConfig.DarkColors {
			cl = color.RGBA{237, 134, 73, opaque}
		} else {
			cl = color.RGBA{194, 93, 30, opaque}
		}
	default:
		if fg {
			if GameConfig.DarkColors {
				cl = color.RGBA{173, 188, 188, opaque}
			} else {
				cl = color.RGBA{83, 103, 109, opaque}
			}
			break
		}
		if GameConfig.DarkColors {
			cl = color.RGBA{16, 60, 72, opaque}
		} else {
			cl = color.RGBA{251, 243, 219, opaque}
		}
	}
	return cl
}

// asciiRunes maps the non-ASCII runes we draw to replacements the basic font
// provides.
var asciiRunes = map[rune]rune{
	'─': '-',
	'•': '*',
	'×': 'x',
}

// glyphTileManager implements the TileManager interface of the graphical
// drivers by drawing font glyphs.
type glyphTileManager struct{}

func (tm *glyphTileManager) TileSize() gruid.Point {
	return gruid.Point{X: 10, Y: 16}
}

func (tm *glyphTileManager) GetImage(gc gruid.Cell) image.Image {
	fgc := ColorToRGBA(gc.Style.Fg, true)
	bgc := ColorToRGBA(gc.Style.Bg, false)
	if gc.Style.Attrs&AttrReverse != 0 {
		fgc, bgc = bgc, fgc
	}
	sz := tm.TileSize()
	img := image.NewRGBA(image.Rect(0, 0, sz.X, sz.Y))
	draw.Draw(img, img.Bounds(), image.NewUniform(bgc), image.Point{}, draw.Src)
	r := gc.Rune
	if r == '█' {
		// Solid rock: fill the whole tile.
		draw.Draw(img, img.Bounds(), image.NewUniform(fgc), image.Point{}, draw.Src)
		return img
	}
	if ar, ok := asciiRunes[r]; ok {
		r = ar
	}
	dr := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(fgc),
		Face: basicfont.Face7x13,
		Dot:  fixed.P(1, 12),
	}
	dr.DrawString(string(r))
	return img
}
