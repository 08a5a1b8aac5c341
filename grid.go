// This file contains the tile model and the grid store.

package main

import (
	"fmt"
	"iter"

	"codeberg.org/anaseto/gruid"
	"codeberg.org/anaseto/gruid/rl"
)

// These constants represent the different kinds of map tiles.
const (
	Empty  rl.Cell = iota // carved, traversable space
	Fill                  // unexcavated rock (default state)
	Wall                  // reserved, unused by generation
	Enemy                 // tile occupied by an enemy
	Key                   // key pickup
	Gold                  // gold pickup
	Player                // tile occupied by the player
)

func TerrainName(t rl.Cell) string {
	switch t {
	case Empty:
		return "floor"
	case Fill:
		return "rock"
	case Wall:
		return "wall"
	case Enemy:
		return "enemy"
	case Key:
		return "key"
	case Gold:
		return "gold"
	case Player:
		return "player"
	default:
		return "unknown terrain"
	}
}

// Tile is one grid cell: a kind plus an optional entity payload. Only Enemy
// and Player tiles carry a payload. Tiles are plain values: two cells never
// share a mutable tile instance.
type Tile struct {
	Kind rl.Cell
	Role any // *EnemyEntity or *PlayerEntity for Enemy and Player kinds
}

// hasRole reports whether a tile kind carries an entity payload.
func hasRole(t rl.Cell) bool {
	return t == Enemy || t == Player
}

// Enemy returns the underlying enemy entity, assuming Kind is Enemy.
func (t Tile) Enemy() *EnemyEntity {
	return t.Role.(*EnemyEntity)
}

// Grid is the rectangular tile store of a level. Its dimensions are fixed for
// the lifetime of the game; contents are reset to all-Fill at each level
// start. The kind layer is backed by an rl.Grid; entity payloads live in a
// parallel layer indexed the same way.
type Grid struct {
	kinds rl.Grid
	roles []any
	w, h  int
}

// NewGrid returns a new all-Fill grid of the given dimensions.
func NewGrid(w, h int) *Grid {
	gd := &Grid{
		kinds: rl.NewGrid(w, h),
		roles: make([]any, w*h),
		w:     w,
		h:     h,
	}
	gd.kinds.Fill(Fill)
	return gd
}

// Size returns the grid dimensions.
func (gd *Grid) Size() gruid.Point {
	return gruid.Point{X: gd.w, Y: gd.h}
}

// Contains reports whether a position is within grid bounds.
func (gd *Grid) Contains(p gruid.Point) bool {
	return p.X >= 0 && p.X < gd.w && p.Y >= 0 && p.Y < gd.h
}

// Reset restores the all-Fill state and drops any entity payloads.
func (gd *Grid) Reset() {
	gd.kinds.Fill(Fill)
	clear(gd.roles)
}

func (gd *Grid) idx(p gruid.Point) int {
	if !gd.Contains(p) {
		panic(fmt.Sprintf("grid: position out of range: %v", p))
	}
	return p.Y*gd.w + p.X
}

// TileAt returns the tile at a given position. Out-of-range access is a
// precondition violation and panics.
func (gd *Grid) TileAt(p gruid.Point) Tile {
	i := gd.idx(p)
	return Tile{Kind: gd.kinds.At(p), Role: gd.roles[i]}
}

// SetTile puts a tile at the given position. The payload is kept only for
// kinds that carry one, so a non-entity tile can never hold stale entity
// data.
func (gd *Grid) SetTile(p gruid.Point, t Tile) {
	i := gd.idx(p)
	gd.kinds.Set(p, t.Kind)
	if hasRole(t.Kind) {
		gd.roles[i] = t.Role
	} else {
		gd.roles[i] = nil
	}
}

// Carve converts a Fill cell to Empty. Other kinds are left untouched.
func (gd *Grid) Carve(p gruid.Point) {
	if gd.TileAt(p).Kind == Fill {
		gd.SetTile(p, Tile{Kind: Empty})
	}
}

// MoveEntity copies the tile at from into to, unless the destination is the
// player's tile. The source cell is reset to Empty in both cases: after a
// battle this reset is what removes the attacking enemy's tile, so callers
// must not rely on from retaining its contents after a blocked move.
func (gd *Grid) MoveEntity(from, to gruid.Point) {
	t := gd.TileAt(from)
	if gd.TileAt(to).Kind != Player {
		gd.SetTile(to, t)
	}
	gd.SetTile(from, Tile{Kind: Empty})
}

// FindTiles returns a single-use iterator over the positions of all tiles of
// the given kind, in row-major order.
func (gd *Grid) FindTiles(kind rl.Cell) iter.Seq[gruid.Point] {
	return func(yield func(gruid.Point) bool) {
		for y := 0; y < gd.h; y++ {
			for x := 0; x < gd.w; x++ {
				p := gruid.Point{X: x, Y: y}
				if gd.kinds.At(p) == kind && !yield(p) {
					return
				}
			}
		}
	}
}
