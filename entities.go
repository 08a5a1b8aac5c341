// This file defines the player and enemy entities and their placement.

package main

import (
	"math/rand/v2"

	"codeberg.org/anaseto/gruid"
)

// Actor holds the combat stats shared by any fighting entity (player or
// enemy): mutable health and a strength used as attack damage.
type Actor struct {
	HP       int // health points
	Strength int // damage dealt per attack
}

// Attack applies the attacker's strength as damage to the defender.
func (a *Actor) Attack(o *Actor) {
	o.HP -= a.Strength
}

// IsDead reports whether the actor's health is exhausted.
func (a *Actor) IsDead() bool {
	return a.HP <= 0
}

// These constants define the starting stats of the game entities.
const (
	PlayerHP       = 100
	PlayerStrength = 10
	EnemyHP        = 10
	EnemyStrength  = 10
)

// PlayerEntity is the player's persistent state. It is created once per
// session and carried across level regenerations.
type PlayerEntity struct {
	Actor
	Keys int // keys collected
	Gold int // gold collected
}

// NewPlayerEntity returns a player with starting stats.
func NewPlayerEntity() *PlayerEntity {
	return &PlayerEntity{Actor: Actor{HP: PlayerHP, Strength: PlayerStrength}}
}

// EnemyEntity is an enemy's state. Enemies are created fresh on each level.
type EnemyEntity struct {
	Actor
	DropRange [2]int // min and max gold dropped on defeat (inclusive)
	StolenKey bool   // whether the enemy stepped over the level's key
}

// NewEnemyEntity returns an enemy with starting stats.
func NewEnemyEntity() *EnemyEntity {
	return &EnemyEntity{
		Actor:     Actor{HP: EnemyHP, Strength: EnemyStrength},
		DropRange: [2]int{2, 5},
	}
}

// Drop returns the gold amount the enemy yields on defeat, sampled uniformly
// from its drop range.
func (e *EnemyEntity) Drop(r *rand.Rand) int {
	return e.DropRange[0] + r.IntN(e.DropRange[1]-e.DropRange[0]+1)
}

// maxPlaceAttempts bounds random entity placement tries before reporting
// exhaustion.
const maxPlaceAttempts = 10000

// PlaceEntity puts an entity tile at the given position if it is an Empty
// cell. It reports whether placement happened.
func (g *Game) PlaceEntity(p gruid.Point, t Tile) bool {
	if g.Grid.TileAt(p).Kind != Empty {
		return false
	}
	g.Grid.SetTile(p, t)
	return true
}

// PlaceEntityRandomly attempts to put an entity tile at a random Empty cell.
// It reports failure after exhausting its attempt budget; callers decide
// whether that is fatal.
func (g *Game) PlaceEntityRandomly(t Tile) bool {
	size := g.Grid.Size()
	for range maxPlaceAttempts {
		p := gruid.Point{X: g.rand.IntN(size.X), Y: g.rand.IntN(size.Y)}
		if g.PlaceEntity(p, t) {
			return true
		}
	}
	return false
}

// GenerateEnemies places n fresh enemies at random Empty cells.
func (g *Game) GenerateEnemies(n int) {
	for range n {
		g.PlaceEntityRandomly(Tile{Kind: Enemy, Role: NewEnemyEntity()})
	}
}
