//go:build !sdl && !js

package main

import (
	"codeberg.org/anaseto/gruid"
	tcell "codeberg.org/anaseto/gruid-tcell"
	tc "github.com/gdamore/tcell/v2"
)

const Tiles = false

var driver gruid.Driver

func initDriver(_ bool, _, _ float64, _ bool) {
	st := styler{}
	dr := tcell.NewDriver(tcell.Config{StyleManager: st})
	driver = dr
}

func clearCache() {
	// do nothing
}

// styler implements the tcell.StyleManager interface using the standard
// 16-color terminal palette.
type styler struct{}

func (sty styler) GetStyle(cst gruid.Style) tc.Style {
	st := tc.StyleDefault
	fg := tc.Color(cst.Fg)
	bg := tc.Color(cst.Bg)
	if cst.Bg == gruid.ColorDefault {
		st = st.Background(tc.ColorDefault)
	} else {
		st = st.Background(tc.ColorValid + bg - 1)
	}
	if cst.Fg == gruid.ColorDefault {
		st = st.Foreground(tc.ColorDefault)
	} else {
		st = st.Foreground(tc.ColorValid + fg - 1)
	}
	if cst.Attrs&AttrReverse != 0 {
		st = st.Reverse(true)
	}
	return st
}
