// Package conversation demonstrates a conversation of every kind of message,
// with ephemeral messages counting down once they scroll into view.
package main

import (
	"flag"
	"log"
	"os"
	"time"

	"gioui.org/app"
	"gioui.org/font/gofont"
	"gioui.org/io/system"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/unit"
	"gioui.org/widget/material"
	"git.sr.ht/~gioverse/conversation"
	"git.sr.ht/~gioverse/conversation/async"
	"git.sr.ht/~gioverse/conversation/cell"
	chatlayout "git.sr.ht/~gioverse/conversation/layout"
	"git.sr.ht/~gioverse/conversation/message"
	"git.sr.ht/~gioverse/conversation/model"
	"git.sr.ht/~gioverse/conversation/profile"
	chatmaterial "git.sr.ht/~gioverse/conversation/widget/material"
)

var (
	// messages is the number of messages generated.
	messages int
	// ephemeral is the share of generated messages that destroy themselves.
	ephemeral float64
	// thumbnails is the number of thumbnails kept in memory.
	thumbnails int
	// debug outlines every row.
	debug bool
	// profileOpt specifies what to profile.
	profileOpt = profile.None
)

func init() {
	flag.IntVar(&messages, "messages", 200, "number of messages to generate")
	flag.Float64Var(&ephemeral, "ephemeral", 0.2, "share of ephemeral messages in [0,1]")
	flag.IntVar(&thumbnails, "thumbnails", 64, "number of thumbnails to keep in memory")
	flag.BoolVar(&debug, "debug", false, "outline every row")
	flag.Var(&profileOpt, "profile", "create the provided kind of profile. Use one of [none, cpu, mem, block, goroutine, mutex, trace, gio]")
}

func main() {
	flag.Parse()
	src, err := NewThumbnails(thumbnails)
	if err != nil {
		log.Fatalf("creating thumbnail source: %v", err)
	}
	ui := NewUI(src, Generate(messages, ephemeral))
	go func() {
		w := app.NewWindow(
			app.Title("Conversation"),
			app.Size(unit.Dp(800), unit.Dp(600)),
		)
		if err := ui.Run(w); err != nil {
			log.Printf("error: premature window close: %v", err)
			os.Exit(1)
		}
		os.Exit(0)
	}()
	app.Main()
}

type (
	C = layout.Context
	D = layout.Dimensions
)

// UI holds state for, and lays out, the conversation.
type UI struct {
	Theme *chatmaterial.Theme
	// Loader decodes thumbnails off the layout goroutine. Rows that scroll
	// away cancel their pending thumbnails.
	Loader  async.Loader
	Builder message.Builder
	List    *conversation.List
	// pending holds the changes requested while laying out the list, applied
	// at the start of the next frame.
	pending []func()
}

// NewUI allocates a UI presenting msgs.
func NewUI(src message.ThumbnailSource, msgs []*model.Message) *UI {
	th := chatmaterial.NewTheme(gofont.Collection())
	ui := &UI{
		Theme: th,
		List:  conversation.NewList(th),
	}
	ui.Builder = message.Builder{
		Theme:      th,
		Thumbnails: &ui.Loader,
		Source:     src,
		Delegate:   logger{},
		Actions: func(msg *model.Message) cell.ActionController {
			return &controller{ui: ui, msg: msg}
		},
	}
	ui.List.Debug = debug
	ui.List.SetRows(ui.Builder.DescribeAll(msgs))
	return ui
}

// Run handles window events and renders the application.
func (ui *UI) Run(w *app.Window) error {
	profiler := profileOpt.NewProfiler()
	profiler.Start()
	defer profiler.Stop()
	defer ui.Loader.Close()
	var ops op.Ops
	for {
		select {
		case <-ui.Loader.Updated():
			w.Invalidate()
		case e := <-w.Events():
			switch e := e.(type) {
			case system.DestroyEvent:
				return e.Err
			case system.FrameEvent:
				gtx := layout.NewContext(&ops, e)
				profiler.Record(gtx)
				ui.Layout(gtx)
				e.Frame(&ops)
			}
		}
	}
}

// Layout the conversation. Ephemeral messages whose countdown ran out are
// obfuscated first.
func (ui *UI) Layout(gtx C) D {
	for _, apply := range ui.pending {
		apply()
	}
	ui.pending = ui.pending[:0]
	ui.expire(gtx.Now)
	defer func() {
		if len(ui.pending) > 0 {
			op.InvalidateOp{}.Add(gtx.Ops)
		}
	}()
	return ui.Loader.Frame(gtx, func(gtx C) D {
		return layout.Flex{Axis: layout.Vertical}.Layout(gtx,
			layout.Rigid(func(gtx C) D {
				return chatlayout.Background(ui.Theme.ContrastBg).Layout(gtx, func(gtx C) D {
					gtx.Constraints.Min.X = gtx.Constraints.Max.X
					title := material.H6(ui.Theme.Theme, "Conversation")
					title.Color = ui.Theme.ContrastFg
					return layout.UniformInset(unit.Dp(8)).Layout(gtx, title.Layout)
				})
			}),
			layout.Flexed(1, ui.List.Layout),
		)
	})
}

// expire obfuscates the messages whose countdown ran out. Images keep their
// row and only reconfigure it, every other kind is replaced by a text row.
func (ui *UI) expire(now time.Time) {
	rows := ui.List.Rows()
	replaced := false
	for index, row := range rows {
		msg, ok := row.Message().(*model.Message)
		if !ok || msg.Obfuscated || !msg.Expired(now) {
			continue
		}
		msg.Obfuscated = true
		ui.List.Select(index, false)
		if msg.Kind == model.Image {
			ui.List.Reconfigure(index, true)
			continue
		}
		msg.Kind = model.Text
		msg.Text = "Message expired"
		msg.Preview, msg.Attachment, msg.Place = nil, nil, nil
		next := ui.Builder.Describe(msg)
		next.SetTopMargin(row.TopMargin())
		next.SetShowEphemeralTimer(false)
		if !replaced {
			rows = append([]*cell.Any(nil), rows...)
			replaced = true
		}
		rows[index] = next
	}
	if replaced {
		ui.List.SetRows(rows)
	}
}

// Defer a change of the rows to the next frame.
func (ui *UI) Defer(change func()) {
	ui.pending = append(ui.pending, change)
}

// Remove the row of msg.
func (ui *UI) Remove(msg *model.Message) {
	rows := ui.List.Rows()
	kept := make([]*cell.Any, 0, len(rows))
	for _, row := range rows {
		if row.Message() != cell.Message(msg) {
			kept = append(kept, row)
		}
	}
	ui.List.SetRows(kept)
}

// Toggle the selection of the row of msg.
func (ui *UI) Toggle(msg *model.Message) {
	for index, row := range ui.List.Rows() {
		if row.Message() == cell.Message(msg) {
			ui.List.Select(index, !ui.List.Selected(index))
			return
		}
	}
}

// reconfigure the row of msg after it changed.
func (ui *UI) reconfigure(msg *model.Message) {
	for index, row := range ui.List.Rows() {
		if row.Message() == cell.Message(msg) {
			ui.List.Reconfigure(index, true)
			return
		}
	}
}
