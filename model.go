// This file defines the model structure, as well as initialization functions.

package main

import (
	"math/rand/v2"

	"codeberg.org/anaseto/gruid"
	"codeberg.org/anaseto/gruid/ui"
)

const (
	UIWidth  = 80 // UI width
	UIHeight = 24 // UI height
)

// GameConfig contains the current game config.
var GameConfig Config

// mode represents the main model mode.
type mode int

const (
	modeNormal   mode = iota // map game mode
	modeEnd                  // game end: player death
	modeQuitting             // wait until the application ends
)

// model describes the gruid.Model of the game.
type model struct {
	action     Action     // action to handle
	g          *Game      // game state
	gd         gruid.Grid // drawing grid
	gameEnded  bool       // whether the game session ended
	keysNormal map[gruid.Key]Action
	log        *ui.Label // game's last log messages
	mode       mode      // main mode
}

func (md *model) init() gruid.Effect {
	md.initKeys()
	md.initWidgets()
	g := NewGame(rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())))
	md.g = g
	if err := g.InitLevel(md.renderStep); err != nil {
		g.Logf("The dungeon failed to build: %v", err)
	}
	g.Log("You delve into the dungeon. Find the key!")
	md.mode = modeNormal
	return nil
}

func (md *model) initKeys() {
	md.keysNormal = map[gruid.Key]Action{
		"w":                 ActionBump{Delta: gruid.Point{X: 0, Y: -1}},
		"a":                 ActionBump{Delta: gruid.Point{X: -1, Y: 0}},
		"s":                 ActionBump{Delta: gruid.Point{X: 0, Y: 1}},
		"d":                 ActionBump{Delta: gruid.Point{X: 1, Y: 0}},
		gruid.KeyArrowUp:    ActionBump{Delta: gruid.Point{X: 0, Y: -1}},
		gruid.KeyArrowLeft:  ActionBump{Delta: gruid.Point{X: -1, Y: 0}},
		gruid.KeyArrowDown:  ActionBump{Delta: gruid.Point{X: 0, Y: 1}},
		gruid.KeyArrowRight: ActionBump{Delta: gruid.Point{X: 1, Y: 0}},
		"t":                 ActionToggleDarkLight{},
		"q":                 ActionQuit{},
		gruid.KeyEscape:     ActionQuit{},
	}
}

func (md *model) initWidgets() {
	md.log = ui.NewLabel(ui.StyledText{}.WithMarkups(Markups))
}

// renderStep is the per-step generation callback handed to the core: it
// reports whether the session ended externally, in which case generation
// must stop promptly.
func (md *model) renderStep() Signal {
	if md.gameEnded {
		return SignalAbort
	}
	return SignalContinue
}

// shutdown is the renderer's entry point invoked on player death: it
// switches to the end screen and marks the session as ended.
func (md *model) shutdown() {
	md.gameEnded = true
	md.mode = modeEnd
}
