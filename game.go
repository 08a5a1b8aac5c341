// This file defines the Game structure, level initialization and turn
// resolution.

package main

import (
	"fmt"
	"math/rand/v2"

	"codeberg.org/anaseto/gruid"
)

// Version is the game's version string of the last release.
const Version = "v0.1.0"

// These constants define the common width and height of all game levels.
const (
	MapWidth  = 72
	MapHeight = 15
)

// These constants define the level generation budget: exactly RoomAttempts
// random placements are tried, with room sizes sampled from the inclusive
// ranges below.
const (
	RoomAttempts  = 100
	RoomMinWidth  = 4
	RoomMaxWidth  = 12
	RoomMinHeight = 3
	RoomMaxHeight = 6
)

// Game holds the game's state: the tile grid, the room registry, the player
// entity and the pending event queue. The grid and the player persist for the
// whole session; rooms, enemies and pickups are rebuilt on every level
// regeneration.
type Game struct {
	Grid   *Grid         // level tile grid
	Rooms  []Room        // rooms carved into the current level
	Player *PlayerEntity // persistent player state
	Depth  int           // number of levels generated this session
	Turn   int           // current game turn
	Logs   *Logs         // game log

	events []queuedEvent // pending events, drained in FIFO order
	dead   bool          // player died: terminal status
	regen  bool          // a key pickup requested level regeneration
	rand   *rand.Rand    // the session's random number generator
}

// NewGame returns an initialized game using the given random number
// generator. The grid dimensions never change afterwards.
func NewGame(r *rand.Rand) *Game {
	return &Game{
		Grid:   NewGrid(MapWidth, MapHeight),
		Player: NewPlayerEntity(),
		Logs:   &Logs{},
		rand:   r,
	}
}

// EnemyCount returns the number of enemies for a new level given the
// player's current key count: keys held make the next level harder.
func EnemyCount(keys int) int {
	return 2 + 2*keys
}

// GoldCount returns the number of gold tiles for a new level given the
// player's current key count.
func GoldCount(keys int) int {
	return 4 + 2*keys
}

// InitLevel resets the grid and room registry and builds a new level: rooms,
// player, one key, gold tiles and enemies scaled by the player's key count,
// then connecting corridors. The renderStep callback is invoked during
// corridor generation and may abort it.
func (g *Game) InitLevel(renderStep func() Signal) error {
	g.Depth++
	g.Grid.Reset()
	g.Rooms = g.Rooms[:0]
	g.GenerateRooms(RoomAttempts, RoomMinWidth, RoomMaxWidth, RoomMinHeight, RoomMaxHeight)
	if !g.PlaceEntityRandomly(Tile{Kind: Player, Role: g.Player}) {
		return fmt.Errorf("level %d: no empty cell found for the player", g.Depth)
	}
	g.PlaceEntityRandomly(Tile{Kind: Key})
	for range GoldCount(g.Player.Keys) {
		g.PlaceEntityRandomly(Tile{Kind: Gold})
	}
	g.GenerateEnemies(EnemyCount(g.Player.Keys))
	g.GenerateCorridors(renderStep)
	return nil
}

// PlayerPos returns the player's position on the grid. The boolean is false
// only before level initialization completes.
func (g *Game) PlayerPos() (gruid.Point, bool) {
	for p := range g.Grid.FindTiles(Player) {
		return p, true
	}
	return gruid.Point{}, false
}

// GameOver reports whether the player died.
func (g *Game) GameOver() bool {
	return g.dead
}

// ApplyTurn resolves one player turn from a structured move intent: the move
// is applied to the grid, the resulting event is resolved, a requested level
// regeneration is performed, and then every enemy advances by one step. The
// renderStep callback is passed down to corridor generation on regeneration
// and invoked once more when the turn completes.
func (g *Game) ApplyTurn(in Intent, renderStep func() Signal) error {
	if in.Event != EventNone {
		g.Grid.MoveEntity(in.From, in.To)
		g.HandleEvent(in.Event, in.Target)
	}
	if g.dead {
		return nil
	}
	if err := g.regenIfRequested(renderStep); err != nil {
		return err
	}
	g.EnemiesStep()
	if g.dead {
		return nil
	}
	// An enemy holding the stolen key may have been defeated during the
	// enemy step, queueing another regeneration.
	if err := g.regenIfRequested(renderStep); err != nil {
		return err
	}
	g.Turn++
	// Notify the renderer of the completed turn.
	renderStep()
	return nil
}

// regenIfRequested rebuilds the level after a key pickup, carrying the player
// entity forward.
func (g *Game) regenIfRequested(renderStep func() Signal) error {
	if !g.regen {
		return nil
	}
	g.regen = false
	return g.InitLevel(renderStep)
}

// IntN is a wrapper around rand.IntN that allows for non-positive values.
func (g *Game) IntN(n int) int {
	if n <= 0 {
		return 0
	}
	return g.rand.IntN(n)
}
