// This file contains event dispatch and combat resolution.

package main

// Event describes the turn-resolution event between the player and a target
// tile.
type Event int

const (
	EventNone   Event = iota // nothing to resolve (blocked or out-of-range move)
	EventStep                // plain movement onto an Empty cell
	EventBattle              // combat with an enemy tile
	EventPickup              // key or gold pickup
)

// queuedEvent is one pending event together with its target tile.
type queuedEvent struct {
	event Event
	tile  Tile
}

// PushEvent enqueues an event for resolution by the running dispatch loop.
func (g *Game) PushEvent(ev Event, t Tile) {
	g.events = append(g.events, queuedEvent{ev, t})
}

// HandleEvent resolves an event between the player and a target tile. Events
// enqueued during resolution, such as the key pickup following the defeat of
// a thieving enemy, are drained in FIFO order by the same loop, so dispatch
// depth stays bounded.
func (g *Game) HandleEvent(ev Event, t Tile) {
	g.PushEvent(ev, t)
	for len(g.events) > 0 {
		qe := g.events[0]
		g.events = g.events[1:]
		g.resolveEvent(qe.event, qe.tile)
	}
}

func (g *Game) resolveEvent(ev Event, t Tile) {
	switch ev {
	case EventBattle:
		g.battle(t.Enemy())
	case EventPickup:
		g.pickup(t)
	}
}

// battle resolves combat between the player and an enemy: a uniform coin
// flip picks the attacker each round until one side's health is exhausted.
// Player death is a terminal status, not an error. A defeated enemy yields
// gold from its drop range and gives back any stolen key.
func (g *Game) battle(en *EnemyEntity) {
	pl := g.Player
	for !pl.IsDead() && !en.IsDead() {
		if g.rand.IntN(2) == 0 {
			pl.Attack(&en.Actor)
		} else {
			en.Attack(&pl.Actor)
		}
	}
	if pl.IsDead() {
		g.dead = true
		g.Log("You die...")
		return
	}
	drop := en.Drop(g.rand)
	pl.Gold += drop
	g.Logf("You defeat the enemy (+%d gold).", drop)
	if en.StolenKey {
		g.Log("The enemy gives back the stolen key.")
		g.PushEvent(EventPickup, Tile{Kind: Key})
	}
}

// pickup resolves a pickup event. A key increments the key counter by exactly
// one and requests a full level regeneration; gold increments the gold
// counter by exactly one.
func (g *Game) pickup(t Tile) {
	switch t.Kind {
	case Key:
		g.Player.Keys++
		g.Log("You pick up a key. The dungeon shifts around you...")
		g.regen = true
	case Gold:
		g.Player.Gold++
		g.Log("You pick up a gold piece.")
	}
}
