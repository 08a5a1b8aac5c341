// This file defines the Draw method for the model.

package main

import (
	"fmt"
	"strings"

	"codeberg.org/anaseto/gruid"
	"codeberg.org/anaseto/gruid/rl"
	"codeberg.org/anaseto/gruid/ui"
)

// Markups contains the styling markup-characters we use for StyledText.
var Markups = map[rune]gruid.Style{
	'B': {Fg: ColorBlue},
	'C': {Fg: ColorCyan},
	'G': {Fg: ColorGreen},
	'M': {Fg: ColorMagenta},
	'O': {Fg: ColorOrange},
	'R': {Fg: ColorRed},
	'Y': {Fg: ColorYellow},
}

// TileRune returns the character rune representing a given tile kind.
func TileRune(t rl.Cell) (r rune) {
	switch t {
	case Empty:
		r = ' '
	case Fill:
		r = '█'
	case Wall:
		r = '#'
	case Enemy:
		r = 'e'
	case Key:
		r = '+'
	case Gold:
		r = '$'
	case Player:
		r = 'P'
	default:
		r = '?'
	}
	return r
}

// TileColor returns the display color for a given tile kind.
func TileColor(t rl.Cell) gruid.Color {
	switch t {
	case Enemy:
		return ColorRed
	case Key:
		return ColorCyan
	case Gold:
		return ColorYellow
	case Player:
		return ColorBlue
	default:
		return ColorForeground
	}
}

// Draw implements Draw() for gruid.Model.
func (md *model) Draw() gruid.Grid {
	md.gd.Fill(gruid.Cell{Rune: ' '})
	switch md.mode {
	case modeQuitting:
		return md.gd.Slice(gruid.Range{})
	case modeEnd:
		md.drawEnd(md.gd)
		return md.gd
	}
	md.drawMap(md.gd.Slice(md.gd.Range().Lines(0, MapHeight)))
	md.drawStatus()
	md.log.Content = md.DrawLog()
	md.log.Draw(md.gd.Slice(md.gd.Range().Lines(MapHeight+5, UIHeight)))
	return md.gd
}

func (md *model) drawMap(gd gruid.Grid) {
	g := md.g
	for y := 0; y < MapHeight; y++ {
		for x := 0; x < MapWidth; x++ {
			p := gruid.Point{X: x, Y: y}
			t := g.Grid.TileAt(p).Kind
			gd.Set(p, gruid.Cell{
				Rune:  TileRune(t),
				Style: gruid.Style{Fg: TileColor(t), Attrs: AttrInMap},
			})
		}
	}
}

// drawStatus draws the divider and the player statistics pane below the map.
func (md *model) drawStatus() {
	pl := md.g.Player
	stt := ui.StyledText{}.WithMarkups(Markups)
	stt.WithText(strings.Repeat("─", MapWidth)).
		Draw(md.gd.Slice(md.gd.Range().Line(MapHeight)))
	lines := []string{
		fmt.Sprintf("HP: @G%d@N", pl.HP),
		fmt.Sprintf("Strength: %d", pl.Strength),
		fmt.Sprintf("Keys: @C%d@N", pl.Keys),
		fmt.Sprintf("Gold: @Y%d@N  (depth %d, turn %d)", pl.Gold, md.g.Depth, md.g.Turn),
	}
	for i, s := range lines {
		stt.WithText(s).Draw(md.gd.Slice(md.gd.Range().Line(MapHeight + 1 + i)))
	}
}

// DrawLog returns styled text for the last few log messages.
func (md *model) DrawLog() ui.StyledText {
	lines := md.g.LastLogLines(UIHeight - MapHeight - 5)
	return ui.StyledText{}.WithMarkups(Markups).WithText(strings.Join(lines, "\n"))
}

// drawEnd draws the game over screen.
func (md *model) drawEnd(gd gruid.Grid) {
	g := md.g
	stt := ui.StyledText{}.WithMarkups(Markups)
	text := fmt.Sprintf("@RYou die...@N\n\n"+
		"You delved %d levels deep, collected %d keys and %d gold\n"+
		"in %d turns.\n\n"+
		"Press any key to exit.",
		g.Depth, g.Player.Keys, g.Player.Gold, g.Turn)
	stt.WithText(text).Draw(gd.Slice(gruid.NewRange(6, 7, UIWidth-6, 7+7)))
}
