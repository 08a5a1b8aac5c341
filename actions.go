// This file defines the actions available in the game and the translation of
// movement input into structured move intents.

package main

import (
	"log"

	"codeberg.org/anaseto/gruid"
)

// Intent is a structured move produced from a raw movement input: the move
// endpoints, the event to resolve and the target tile captured before the
// move is applied.
type Intent struct {
	From   gruid.Point
	To     gruid.Point
	Event  Event
	Target Tile
}

// MoveIntent translates a movement direction into a structured intent based
// on the destination tile's kind. Out-of-range destinations and impassable
// tiles yield EventNone and no movement.
func (g *Game) MoveIntent(delta gruid.Point) Intent {
	pp, ok := g.PlayerPos()
	if !ok {
		return Intent{}
	}
	to := pp.Add(delta)
	if !g.Grid.Contains(to) {
		return Intent{}
	}
	t := g.Grid.TileAt(to)
	in := Intent{From: pp, To: to, Target: t}
	switch t.Kind {
	case Empty:
		in.Event = EventStep
	case Enemy:
		in.Event = EventBattle
	case Key, Gold:
		in.Event = EventPickup
	default:
		// Bumping into rock or a wall moves nowhere.
		in.Event = EventNone
		in.To = pp
	}
	return in
}

// Action represents types that describe and handle a game action, often the
// last UI action performed.
type Action interface {
	// Handle processes the action and returns possibly an effect.
	Handle(*model) gruid.Effect
}

// ActionNone does nothing.
type ActionNone struct{}

func (a ActionNone) Handle(md *model) gruid.Effect {
	return nil
}

// ActionBump moves the player in a given direction, resolving any battle or
// pickup at the destination. The turn always advances the enemies.
type ActionBump struct {
	Delta gruid.Point
}

func (a ActionBump) Handle(md *model) gruid.Effect {
	g := md.g
	g.EndLogTurn()
	in := g.MoveIntent(a.Delta)
	if in.Event == EventNone {
		// Bumping into rock or the map edge consumes no turn.
		return nil
	}
	if err := g.ApplyTurn(in, md.renderStep); err != nil {
		log.Printf("turn: %v", err)
		g.Logf("The dungeon failed to rebuild: %v", err)
	}
	if g.GameOver() {
		md.shutdown()
	}
	return nil
}

// ActionToggleDarkLight toggles dark/light mode.
type ActionToggleDarkLight struct{}

func (a ActionToggleDarkLight) Handle(md *model) gruid.Effect {
	GameConfig.DarkColors = !GameConfig.DarkColors
	err := SaveConfig()
	if err != nil {
		log.Printf("saving config: %v", err)
		md.g.Log(err.Error())
	}
	clearCache()
	return gruid.Cmd(func() gruid.Msg { return gruid.MsgScreen{} })
}

// ActionQuit ends the game session.
type ActionQuit struct{}

func (a ActionQuit) Handle(md *model) gruid.Effect {
	md.mode = modeQuitting
	return gruid.End()
}
