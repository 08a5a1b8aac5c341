// This file contains room placement and corridor carving.

package main

import (
	"cmp"
	"slices"

	"codeberg.org/anaseto/gruid"
)

// Room represents an accepted rectangular carve region. Rooms never share a
// position, so equality is defined by position alone.
type Room struct {
	P gruid.Point // upper-left corner
	W int         // width
	H int         // height
}

// Same reports whether two rooms are the same, comparing positions only.
func (r Room) Same(o Room) bool {
	return r.P == o.P
}

// Overlaps reports whether the room, grown by padding cells in every
// direction, intersects with another room.
func (r Room) Overlaps(o Room, padding int) bool {
	return r.P.X-padding < o.P.X+o.W &&
		r.P.X+r.W+padding > o.P.X &&
		r.P.Y-padding < o.P.Y+o.H &&
		r.P.Y+r.H+padding > o.P.Y
}

// roomPadding is the minimum separation between accepted rooms, and also the
// outer margin kept against the grid edge by random placement.
const roomPadding = 1

// PlaceRoom registers a room at the given position and carves it into the
// grid, unless it collides (padded by one cell) with an already-registered
// room. It reports whether the room was accepted.
func (g *Game) PlaceRoom(p gruid.Point, w, h int) bool {
	room := Room{P: p, W: w, H: h}
	for _, r := range g.Rooms {
		if room.Overlaps(r, roomPadding) {
			return false
		}
	}
	g.Rooms = append(g.Rooms, room)
	for y := p.Y; y < p.Y+h; y++ {
		for x := p.X; x < p.X+w; x++ {
			g.Grid.Carve(gruid.Point{X: x, Y: y})
		}
	}
	return true
}

// PlaceRoomRandomly samples a position uniformly within the grid, keeping an
// outer padding margin on every side, and delegates to PlaceRoom. A rejected
// placement is discarded with no retry.
func (g *Game) PlaceRoomRandomly(w, h int, outerPadding int) bool {
	size := g.Grid.Size()
	x := outerPadding + g.rand.IntN(size.X-w-2*outerPadding+1)
	y := outerPadding + g.rand.IntN(size.Y-h-2*outerPadding+1)
	return g.PlaceRoom(gruid.Point{X: x, Y: y}, w, h)
}

// GenerateRooms performs exactly attempts independent random placement
// attempts with sizes sampled from the given inclusive ranges. The number of
// accepted rooms is at most attempts: higher attempt counts approximate
// denser packing probabilistically, with no target count guaranteed.
func (g *Game) GenerateRooms(attempts int, wmin, wmax, hmin, hmax int) {
	for range attempts {
		w := wmin + g.rand.IntN(wmax-wmin+1)
		h := hmin + g.rand.IntN(hmax-hmin+1)
		g.PlaceRoomRandomly(w, h, roomPadding)
	}
}

// Signal is a renderer's answer to a generation or turn step.
type Signal int

const (
	SignalContinue Signal = iota // keep going
	SignalAbort                  // session ended externally: stop promptly
)

// GenerateCorridors carves corridors connecting the registered rooms. Rooms
// are sorted by ascending y-position and the first room is then connected to
// every other one (star topology). After each processed pair the renderStep
// callback runs; SignalAbort halts generation immediately.
func (g *Game) GenerateCorridors(renderStep func() Signal) {
	rooms := slices.Clone(g.Rooms)
	slices.SortFunc(rooms, func(a, b Room) int {
		return cmp.Compare(a.P.Y, b.P.Y)
	})
	for j := range rooms {
		a, b := rooms[0], rooms[j]
		if !a.Same(b) {
			g.connectRooms(a, b)
		}
		if renderStep() == SignalAbort {
			return
		}
	}
}

// connectRooms carves a single-width path between two rooms separated along
// at least one axis. Overlapping footprints need no corridor and are skipped.
func (g *Game) connectRooms(a, b Room) {
	hCheck := a.P.X+a.W < b.P.X || b.P.X+b.W < a.P.X
	vCheck := a.P.Y+a.H < b.P.Y || b.P.Y+b.H < a.P.Y
	var vertical bool
	switch {
	case hCheck && vCheck:
		vertical = g.rand.IntN(2) == 0
	case vCheck:
		vertical = true
	case hCheck:
		vertical = false
	default:
		return
	}
	if vertical {
		g.carveVertical(a, b)
	} else {
		g.carveHorizontal(a, b)
	}
}

// carveVertical carves a vertical corridor between two vertically separated
// rooms: a random meeting row between the facing edges, and a random entry
// column along each facing edge. Carving goes through the grid store, which
// rejects out-of-bounds coordinates; room placement padding keeps all entry
// points and meeting rows within the grid.
func (g *Game) carveVertical(a, b Room) {
	if a.P.Y > b.P.Y {
		a, b = b, a
	}
	y := a.P.Y + a.H + g.rand.IntN(b.P.Y-(a.P.Y+a.H)+1)
	pa := gruid.Point{X: a.P.X + g.rand.IntN(a.W), Y: a.P.Y + a.H}
	pb := gruid.Point{X: b.P.X + g.rand.IntN(b.W), Y: b.P.Y}
	for pa.Y != y {
		g.Grid.Carve(pa)
		pa.Y++
	}
	for pb.Y != y {
		g.Grid.Carve(pb)
		pb.Y--
	}
	// Join the two half-paths along the meeting row.
	for x := min(pa.X, pb.X); x <= max(pa.X, pb.X); x++ {
		g.Grid.Carve(gruid.Point{X: x, Y: y})
	}
}

// carveHorizontal is the horizontal mirror of carveVertical.
func (g *Game) carveHorizontal(a, b Room) {
	if a.P.X > b.P.X {
		a, b = b, a
	}
	x := a.P.X + a.W + g.rand.IntN(b.P.X-(a.P.X+a.W)+1)
	pa := gruid.Point{X: a.P.X + a.W, Y: a.P.Y + g.rand.IntN(a.H)}
	pb := gruid.Point{X: b.P.X, Y: b.P.Y + g.rand.IntN(b.H)}
	for pa.X != x {
		g.Grid.Carve(pa)
		pa.X++
	}
	for pb.X != x {
		g.Grid.Carve(pb)
		pb.X--
	}
	// Join the two half-paths along the meeting column.
	for y := min(pa.Y, pb.Y); y <= max(pa.Y, pb.Y); y++ {
		g.Grid.Carve(gruid.Point{X: x, Y: y})
	}
}
