// This file defines the Update method for the model.

package main

import (
	"codeberg.org/anaseto/gruid"
)

// Update implements Update() for gruid.Model.
func (md *model) Update(msg gruid.Msg) gruid.Effect {
	if _, ok := msg.(gruid.MsgInit); ok {
		return md.init()
	}
	if _, ok := msg.(gruid.MsgQuit); ok {
		md.mode = modeQuitting
		return gruid.End()
	}
	switch md.mode {
	case modeNormal:
		return md.updateNormal(msg)
	case modeEnd:
		if interrupt(msg) {
			md.mode = modeQuitting
			return gruid.End()
		}
	}
	return nil
}

func (md *model) updateNormal(msg gruid.Msg) gruid.Effect {
	md.action = ActionNone{}
	if msg, ok := msg.(gruid.MsgKeyDown); ok {
		if a, ok := md.keysNormal[msg.Key]; ok {
			md.action = a
		}
	}
	return md.action.Handle(md)
}

func interrupt(msg gruid.Msg) bool {
	switch msg := msg.(type) {
	case gruid.MsgKeyDown:
		return true
	case gruid.MsgMouse:
		return msg.Action != gruid.MouseMove && msg.Action != gruid.MouseRelease
	}
	return false
}
