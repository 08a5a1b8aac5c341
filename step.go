// This file contains the per-turn enemy simulation step.

package main

import (
	"slices"

	"codeberg.org/anaseto/gruid"
)

// EnemiesStep advances every enemy by one greedy step toward the player. An
// enemy reaching the player triggers a battle before its move attempt; key
// and gold side effects apply before the move is gated on the destination
// kind.
func (g *Game) EnemiesStep() {
	pp, ok := g.PlayerPos()
	if !ok {
		return
	}
	for _, ep := range slices.Collect(g.Grid.FindTiles(Enemy)) {
		t := g.Grid.TileAt(ep)
		if t.Kind != Enemy {
			// The tile was overwritten earlier in this step.
			continue
		}
		en := t.Enemy()
		to := pursuitStep(ep, pp)
		if to == pp {
			g.HandleEvent(EventBattle, t)
			if g.dead {
				// Remaining enemies skip their turn.
				return
			}
		}
		dest := g.Grid.TileAt(to).Kind
		// Steal effects apply even when the move below ends up
		// blocked.
		switch dest {
		case Key:
			en.StolenKey = true
		case Gold:
			en.DropRange[0]++
			en.DropRange[1]++
		}
		switch dest {
		case Empty, Key, Gold, Player:
			// A Player destination blocks the copy inside
			// MoveEntity, but the source reset still clears the
			// defeated attacker's tile.
			g.Grid.MoveEntity(ep, to)
		}
	}
}

// pursuitStep computes an enemy's greedy single-step move toward the player:
// one cell along the axis with the larger absolute distance, ties preferring
// the vertical axis. No move is made along an axis with zero distance.
func pursuitStep(from, player gruid.Point) gruid.Point {
	to := from
	d := player.Sub(from)
	if abs(d.X) > abs(d.Y) {
		to.X += sign(d.X)
	} else {
		to.Y += sign(d.Y)
	}
	return to
}
