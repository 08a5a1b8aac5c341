package main

import (
	"math/rand/v2"
	"strings"
	"testing"
)

func TestAttack(t *testing.T) {
	pl := NewPlayerEntity()
	en := NewEnemyEntity()
	pl.Attack(&en.Actor)
	if en.HP != EnemyHP-PlayerStrength {
		t.Errorf("enemy at %d health after one attack", en.HP)
	}
	// Starting stats: a single player attack is lethal.
	if !en.IsDead() {
		t.Error("enemy survived a full-strength attack")
	}
	if pl.HP != PlayerHP {
		t.Errorf("player health changed to %d while attacking", pl.HP)
	}
}

func TestDrop(t *testing.T) {
	r := rand.New(rand.NewPCG(1, 0))
	en := NewEnemyEntity()
	for range rounds {
		if d := en.Drop(r); d < 2 || d > 5 {
			t.Errorf("drop %d outside [2,5]", d)
		}
	}
	en.DropRange[0]++
	en.DropRange[1]++
	for range rounds {
		if d := en.Drop(r); d < 3 || d > 6 {
			t.Errorf("drop %d outside grown range [3,6]", d)
		}
	}
}

func TestBattleEnemyDefeat(t *testing.T) {
	for i := range rounds {
		g := newTestGame(uint64(i))
		g.Player.HP = 1 << 30
		en := NewEnemyEntity()
		g.battle(en)
		if !en.IsDead() {
			t.Fatal("enemy survived the battle")
		}
		if g.GameOver() {
			t.Fatal("game over with the player alive")
		}
		if g.Player.Gold < 2 || g.Player.Gold > 5 {
			t.Errorf("seed %d: %d gold dropped, want in [2,5]", i, g.Player.Gold)
		}
	}
}

func TestBattlePlayerDeath(t *testing.T) {
	g := newTestGame(1)
	en := NewEnemyEntity()
	en.HP = 1 << 30
	g.battle(en)
	if !g.GameOver() {
		t.Error("player survived an unwinnable battle")
	}
	if g.Player.Gold != 0 {
		t.Errorf("%d gold dropped by a surviving enemy", g.Player.Gold)
	}
	lines := g.LastLogLines(1)
	if len(lines) != 1 || !strings.Contains(lines[0], "You die") {
		t.Errorf("missing death message: %v", lines)
	}
}

func TestBattleStolenKey(t *testing.T) {
	g := newTestGame(2)
	g.Player.HP = 1 << 30
	en := NewEnemyEntity()
	en.StolenKey = true
	g.HandleEvent(EventBattle, Tile{Kind: Enemy, Role: en})
	if g.Player.Keys != 1 {
		t.Errorf("%d keys after defeating the thief, want 1", g.Player.Keys)
	}
	if !g.regen {
		t.Error("no regeneration requested by the returned key")
	}
	if len(g.events) != 0 {
		t.Errorf("%d events left in the queue", len(g.events))
	}
}

func TestPickup(t *testing.T) {
	g := newTestGame(1)
	g.pickup(Tile{Kind: Gold})
	if g.Player.Gold != 1 {
		t.Errorf("%d gold after pickup, want 1", g.Player.Gold)
	}
	if g.regen {
		t.Error("gold pickup requested regeneration")
	}
	g.pickup(Tile{Kind: Key})
	if g.Player.Keys != 1 {
		t.Errorf("%d keys after pickup, want 1", g.Player.Keys)
	}
	if !g.regen {
		t.Error("key pickup did not request regeneration")
	}
}

func TestLogDuplicates(t *testing.T) {
	g := newTestGame(1)
	g.Log("You pick up a gold piece.")
	g.Log("You pick up a gold piece.")
	if n := len(g.Logs.Entries); n != 1 {
		t.Fatalf("%d entries, want 1", n)
	}
	lines := g.LastLogLines(2)
	if len(lines) != 1 || !strings.Contains(lines[0], "2×") {
		t.Errorf("missing duplicate marker: %v", lines)
	}
	g.EndLogTurn()
	g.Log("You defeat the enemy (+3 gold).")
	lines = g.LastLogLines(1)
	if len(lines) != 1 || !strings.HasPrefix(lines[0], "• ") {
		t.Errorf("missing turn marker: %v", lines)
	}
}
