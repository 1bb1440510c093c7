package main

import (
	"log"

	"git.sr.ht/~gioverse/conversation/cell"
	"git.sr.ht/~gioverse/conversation/model"
)

// logger is the delegate of every row. It logs the actions performed on
// messages.
type logger struct{}

func (logger) PerformAction(action cell.Action, msg cell.Message) {
	if m, ok := msg.(*model.Message); ok {
		log.Printf("%s: %s %s", action, m.Kind, m.ID)
		return
	}
	log.Printf("%s", action)
}

// controller offers the actions available on one message.
type controller struct {
	ui  *UI
	msg *model.Message
}

func (c *controller) CanPerform(action cell.Action) bool {
	if c.msg.Obfuscated {
		return false
	}
	switch action {
	case cell.Copy:
		return c.msg.Kind == model.Text
	case cell.Download:
		a := c.msg.Attachment
		return a != nil && !a.Downloaded && c.msg.Kind != model.Location
	case cell.Forward:
		return !c.msg.IsEphemeral()
	case cell.Delete:
		return c.msg.Local || !c.msg.IsEphemeral()
	default:
		return true
	}
}

// Perform runs while the list lays out, so changes to the rows are deferred.
func (c *controller) Perform(action cell.Action) {
	if !c.CanPerform(action) {
		return
	}
	switch action {
	case cell.Download:
		c.ui.Defer(func() {
			c.msg.Attachment.Downloaded = true
			c.ui.reconfigure(c.msg)
		})
	case cell.Details:
		c.ui.Defer(func() { c.ui.Toggle(c.msg) })
	case cell.Delete:
		c.ui.Defer(func() { c.ui.Remove(c.msg) })
	}
	c.ui.Builder.Delegate.PerformAction(action, c.msg)
}
