package main

import (
	"codeberg.org/anaseto/gruid"
)

// Those are the colors of the main palette. They are given 16-palette color
// numbers compatible with terminals, though drivers may map them to more
// precise colors.
const (
	ColorBackground gruid.Color = gruid.ColorDefault
	ColorForeground gruid.Color = gruid.ColorDefault
	ColorRed        gruid.Color = 1 + 9 // bright red
	ColorGreen      gruid.Color = 1 + 2
	ColorYellow     gruid.Color = 1 + 3
	ColorBlue       gruid.Color = 1 + 4
	ColorMagenta    gruid.Color = 1 + 5
	ColorCyan       gruid.Color = 1 + 6
	ColorOrange     gruid.Color = 1 + 1 // red
)

// Those constants represent available styling attributes.
const (
	AttrInMap gruid.AttrMask = 1 << iota
	AttrReverse
)
