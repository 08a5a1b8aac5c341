package main

import (
	"testing"

	"codeberg.org/anaseto/gruid"
)

func TestPursuitStep(t *testing.T) {
	for _, tc := range []struct {
		from, player, want gruid.Point
	}{
		{gruid.Point{X: 5, Y: 5}, gruid.Point{X: 5, Y: 6}, gruid.Point{X: 5, Y: 6}},
		{gruid.Point{X: 0, Y: 0}, gruid.Point{X: 3, Y: 1}, gruid.Point{X: 1, Y: 0}},
		{gruid.Point{X: 3, Y: 1}, gruid.Point{X: 0, Y: 0}, gruid.Point{X: 2, Y: 1}},
		{gruid.Point{X: 0, Y: 0}, gruid.Point{X: 2, Y: 2}, gruid.Point{X: 0, Y: 1}},
		{gruid.Point{X: 4, Y: 4}, gruid.Point{X: 4, Y: 4}, gruid.Point{X: 4, Y: 4}},
	} {
		if got := pursuitStep(tc.from, tc.player); got != tc.want {
			t.Errorf("pursuitStep(%v, %v) = %v, want %v", tc.from, tc.player, got, tc.want)
		}
	}
}

// carvedTestGame returns a game whose grid is fully carved, with the player
// placed at the given position.
func carvedTestGame(seed uint64, pp gruid.Point) *Game {
	g := newTestGame(seed)
	size := g.Grid.Size()
	for y := range size.Y {
		for x := range size.X {
			g.Grid.Carve(gruid.Point{X: x, Y: y})
		}
	}
	g.Grid.SetTile(pp, Tile{Kind: Player, Role: g.Player})
	return g
}

func TestEnemiesStepBattle(t *testing.T) {
	g := carvedTestGame(1, gruid.Point{X: 5, Y: 6})
	g.Player.HP = 1 << 30
	ep := gruid.Point{X: 5, Y: 5}
	g.Grid.SetTile(ep, Tile{Kind: Enemy, Role: NewEnemyEntity()})
	g.EnemiesStep()
	if kind := g.Grid.TileAt(ep).Kind; kind != Empty {
		t.Errorf("defeated enemy tile not cleared: %v", TerrainName(kind))
	}
	if pp, _ := g.PlayerPos(); pp != (gruid.Point{X: 5, Y: 6}) {
		t.Errorf("player moved to %v during an enemy battle", pp)
	}
	if g.Player.Gold < 2 || g.Player.Gold > 5 {
		t.Errorf("%d gold dropped, want in [2,5]", g.Player.Gold)
	}
}

func TestEnemiesStepPursuit(t *testing.T) {
	g := carvedTestGame(1, gruid.Point{X: 10, Y: 6})
	ep := gruid.Point{X: 5, Y: 6}
	en := NewEnemyEntity()
	g.Grid.SetTile(ep, Tile{Kind: Enemy, Role: en})
	g.EnemiesStep()
	want := gruid.Point{X: 6, Y: 6}
	if kind := g.Grid.TileAt(want).Kind; kind != Enemy {
		t.Fatalf("no enemy at %v: %v", want, TerrainName(kind))
	}
	if g.Grid.TileAt(want).Enemy() != en {
		t.Error("enemy payload lost during the move")
	}
	if kind := g.Grid.TileAt(ep).Kind; kind != Empty {
		t.Errorf("enemy source not cleared: %v", TerrainName(kind))
	}
}

func TestEnemyStealsKey(t *testing.T) {
	g := carvedTestGame(1, gruid.Point{X: 5, Y: 9})
	ep := gruid.Point{X: 5, Y: 5}
	en := NewEnemyEntity()
	g.Grid.SetTile(ep, Tile{Kind: Enemy, Role: en})
	g.Grid.SetTile(gruid.Point{X: 5, Y: 6}, Tile{Kind: Key})
	g.EnemiesStep()
	if !en.StolenKey {
		t.Error("enemy did not steal the key it stepped on")
	}
	if kind := g.Grid.TileAt(gruid.Point{X: 5, Y: 6}).Kind; kind != Enemy {
		t.Errorf("enemy did not move onto the key tile: %v", TerrainName(kind))
	}
	if n := countTiles(g.Grid, Key); n != 0 {
		t.Errorf("%d key tiles left on the grid", n)
	}
}

func TestEnemyEatsGold(t *testing.T) {
	g := carvedTestGame(1, gruid.Point{X: 5, Y: 9})
	ep := gruid.Point{X: 5, Y: 5}
	en := NewEnemyEntity()
	g.Grid.SetTile(ep, Tile{Kind: Enemy, Role: en})
	g.Grid.SetTile(gruid.Point{X: 5, Y: 6}, Tile{Kind: Gold})
	g.EnemiesStep()
	if en.DropRange != [2]int{3, 6} {
		t.Errorf("drop range %v after eating gold, want [3 6]", en.DropRange)
	}
	if kind := g.Grid.TileAt(gruid.Point{X: 5, Y: 6}).Kind; kind != Enemy {
		t.Errorf("enemy did not move onto the gold tile: %v", TerrainName(kind))
	}
}

func TestEnemyBlockedByEnemy(t *testing.T) {
	g := carvedTestGame(1, gruid.Point{X: 5, Y: 7})
	g.Player.HP = 1 << 30
	front := NewEnemyEntity()
	back := NewEnemyEntity()
	g.Grid.SetTile(gruid.Point{X: 5, Y: 6}, Tile{Kind: Enemy, Role: front})
	g.Grid.SetTile(gruid.Point{X: 5, Y: 5}, Tile{Kind: Enemy, Role: back})
	g.EnemiesStep()
	// The back enemy moves first in scan order, finds the front enemy in
	// the way and stays put; the front enemy battles and is removed.
	if kind := g.Grid.TileAt(gruid.Point{X: 5, Y: 5}).Kind; kind != Enemy {
		t.Errorf("blocked enemy moved away: %v", TerrainName(kind))
	}
	if kind := g.Grid.TileAt(gruid.Point{X: 5, Y: 6}).Kind; kind != Empty {
		t.Errorf("defeated enemy tile not cleared: %v", TerrainName(kind))
	}
	if g.GameOver() {
		t.Error("game over with the player alive")
	}
}

func TestEnemiesStepPlayerDeath(t *testing.T) {
	g := carvedTestGame(1, gruid.Point{X: 5, Y: 6})
	g.Player.HP = 1
	g.Player.Strength = 0
	attacker := NewEnemyEntity()
	bystander := NewEnemyEntity()
	g.Grid.SetTile(gruid.Point{X: 5, Y: 5}, Tile{Kind: Enemy, Role: attacker})
	g.Grid.SetTile(gruid.Point{X: 20, Y: 10}, Tile{Kind: Enemy, Role: bystander})
	g.EnemiesStep()
	if !g.GameOver() {
		t.Fatal("player survived with zero strength and one health point")
	}
	// Remaining enemies skip their turn once the player is dead.
	if kind := g.Grid.TileAt(gruid.Point{X: 20, Y: 10}).Kind; kind != Enemy {
		t.Errorf("bystander moved after the player's death: %v", TerrainName(kind))
	}
}
