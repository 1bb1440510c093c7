/*
Package conversation lays out a conversation as a scrollable list of
heterogeneous message rows.

Rows are type erased cell descriptions, see package cell. The List registers
the view type of every row once, builds or reuses a view for every row that
scrolls into view, and informs both the row and its view when it enters and
leaves the screen.
*/
package conversation

import (
	"fmt"
	"image"
	"time"

	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/unit"
	"gioui.org/widget/material"
	"git.sr.ht/~gioverse/conversation/cell"
	"git.sr.ht/~gioverse/conversation/debug"
	chatlayout "git.sr.ht/~gioverse/conversation/layout"
	chatwidget "git.sr.ht/~gioverse/conversation/widget"
	chatmaterial "git.sr.ht/~gioverse/conversation/widget/material"
)

type (
	C = layout.Context
	D = layout.Dimensions
)

// timerIconSize is the side length of the ephemeral timer glyph.
const timerIconSize = unit.Dp(16)

// Countdown is implemented by messages that can report the time left before
// they destroy themselves. The ephemeral timer shows it when available.
type Countdown interface {
	Remaining(now time.Time) time.Duration
}

// List presents the rows of a conversation. It must only be used from the
// layout goroutine.
type List struct {
	// List is the scrolling state of the rows.
	layout.List
	Theme *chatmaterial.Theme
	// Table holds the view types of the rows and the views available for
	// reuse.
	Table cell.Table
	// Debug outlines every row.
	Debug bool
	rows  []*cell.Any
	// live holds the displayed rows by position.
	live map[int]*liveRow
	// selected tracks selection per row, so that it survives scrolling.
	selected map[*cell.Any]bool
	// frame counts layouts. Rows not laid out in the current frame are off
	// screen.
	frame int
}

// liveRow is a row currently on screen, with the view displaying it.
type liveRow struct {
	row    *cell.Any
	view   cell.View
	frame  int
	menu   chatwidget.MenuArea
	clicks chatmaterial.MenuClicks
}

// NewList allocates a list of rows laid out with th.
func NewList(th *chatmaterial.Theme) *List {
	l := &List{Theme: th}
	l.List.Axis = layout.Vertical
	return l
}

// SetRows replaces the rows of the list, registering the view type of every
// row. Rows that keep their position keep their view.
func (l *List) SetRows(rows []*cell.Any) {
	for _, row := range rows {
		row.Register(&l.Table)
	}
	l.rows = rows
	for row := range l.selected {
		if !contains(rows, row) {
			delete(l.selected, row)
		}
	}
}

// Rows returns the rows of the list. Callers must not modify the returned
// slice, use SetRows instead.
func (l *List) Rows() []*cell.Any {
	return l.rows
}

// Len returns the number of rows.
func (l *List) Len() int {
	return len(l.rows)
}

// View returns the view displaying the row at index, if it is on screen.
func (l *List) View(index int) (cell.View, bool) {
	live, ok := l.liveAt(index)
	if !ok {
		return nil, false
	}
	return live.view, true
}

// liveAt returns the live row at index. A view still showing a row that
// SetRows replaced at that position counts as off screen.
func (l *List) liveAt(index int) (*liveRow, bool) {
	live, ok := l.live[index]
	if !ok || index < 0 || index >= len(l.rows) || live.row != l.rows[index] {
		return nil, false
	}
	return live, true
}

// Reconfigure applies the configuration of the row at index to its view
// again, after the row's message changed. It reports whether the row is on
// screen.
func (l *List) Reconfigure(index int, animated bool) bool {
	live, ok := l.liveAt(index)
	if !ok {
		return false
	}
	return live.row.Configure(live.view, animated)
}

// Select changes the selection of the row at index.
func (l *List) Select(index int, selected bool) {
	if index < 0 || index >= len(l.rows) {
		panic(fmt.Errorf("selecting row %d of %d", index, len(l.rows)))
	}
	if l.selected == nil {
		l.selected = make(map[*cell.Any]bool)
	}
	row := l.rows[index]
	if selected {
		l.selected[row] = true
	} else {
		delete(l.selected, row)
	}
	if live, ok := l.liveAt(index); ok {
		live.view.SetSelected(selected)
	}
}

// Selected reports whether the row at index is selected.
func (l *List) Selected(index int) bool {
	if index < 0 || index >= len(l.rows) {
		return false
	}
	return l.selected[l.rows[index]]
}

// Reset takes every row off screen, as if the list was scrolled away.
func (l *List) Reset() {
	for index, live := range l.live {
		l.endDisplaying(live)
		delete(l.live, index)
	}
}

// Layout the visible rows.
func (l *List) Layout(gtx C) D {
	if l.live == nil {
		l.live = make(map[int]*liveRow)
	}
	l.frame++
	l.List.Axis = layout.Vertical
	dims := l.List.Layout(gtx, len(l.rows), l.layoutRow)
	for index, live := range l.live {
		if live.frame != l.frame {
			l.endDisplaying(live)
			delete(l.live, index)
		}
	}
	return dims
}

// layoutRow lays out the row at index, displaying it first if it just
// scrolled into view.
func (l *List) layoutRow(gtx C, index int) D {
	row := l.rows[index]
	live, ok := l.live[index]
	if !ok || live.row != row {
		if ok {
			l.endDisplaying(live)
		}
		live = l.display(row, index)
		l.live[index] = live
	}
	live.frame = l.frame
	content := func(gtx C) D {
		return l.layoutContent(gtx, live)
	}
	if l.Debug {
		inner := content
		content = func(gtx C) D {
			return debug.Outline(gtx, debug.DefaultColor, inner)
		}
	}
	return chatlayout.Row{
		TopMargin: unit.Dp(row.TopMargin()),
		FullWidth: row.IsFullWidth(),
	}.Layout(gtx,
		func(gtx C) D {
			return l.layoutTimer(gtx, live)
		},
		content,
		nil,
	)
}

// display builds and configures the view of a row entering the screen.
func (l *List) display(row *cell.Any, index int) *liveRow {
	view := row.MakeView(&l.Table, index)
	row.Configure(view, false)
	view.SetSelected(l.selected[row])
	row.WillDisplayCell()
	view.WillDisplay()
	return &liveRow{row: row, view: view}
}

// endDisplaying informs a row leaving the screen and recycles its view.
func (l *List) endDisplaying(live *liveRow) {
	live.row.DidEndDisplayingCell()
	live.view.DidEndDisplaying()
	l.Table.Recycle(live.view)
}

// layoutContent lays out the view of the row with its selection highlight
// and context menu.
func (l *List) layoutContent(gtx C, live *liveRow) D {
	view := live.view
	w := view.Layout
	if live.row.SupportsActions() && live.row.ActionController() != nil {
		w = func(gtx C) D {
			return layout.Stack{}.Layout(gtx,
				layout.Stacked(view.Layout),
				layout.Expanded(chatmaterial.ActionMenu(l.Theme, &live.menu, &live.clicks, live.row.ActionController()).Layout),
			)
		}
	}
	if !view.Selected() {
		return w(gtx)
	}
	return chatlayout.Highlight{
		Color:  l.Theme.SelectionColor,
		Region: view.SelectionRect,
	}.Layout(gtx, w)
}

// layoutTimer lays out the ephemeral timer of the row in the left gutter, at
// the inset declared by the view.
func (l *List) layoutTimer(gtx C, live *liveRow) D {
	if !live.row.ShowEphemeralTimer() {
		return D{}
	}
	return layout.Inset{Top: live.view.EphemeralTimerTopInset()}.Layout(gtx, func(gtx C) D {
		return layout.N.Layout(gtx, func(gtx C) D {
			return layout.Flex{Axis: layout.Vertical, Alignment: layout.Middle}.Layout(gtx,
				layout.Rigid(func(gtx C) D {
					size := gtx.Dp(timerIconSize)
					gtx.Constraints = layout.Exact(image.Pt(size, size))
					return chatmaterial.TimerIcon.Layout(gtx, l.Theme.ContrastBg)
				}),
				layout.Rigid(func(gtx C) D {
					countdown, ok := live.row.Message().(Countdown)
					if !ok {
						return D{}
					}
					remaining := countdown.Remaining(gtx.Now)
					if remaining <= 0 {
						return D{}
					}
					op.InvalidateOp{At: gtx.Now.Add(time.Second)}.Add(gtx.Ops)
					return material.Caption(l.Theme.Theme, formatRemaining(remaining)).Layout(gtx)
				}),
			)
		})
	})
}

// formatRemaining rounds the remaining time up to whole seconds, or minutes
// past a minute.
func formatRemaining(d time.Duration) string {
	if d > time.Minute {
		return fmt.Sprintf("%dm", int((d+time.Minute-1)/time.Minute))
	}
	return fmt.Sprintf("%ds", int((d+time.Second-1)/time.Second))
}

func contains(rows []*cell.Any, row *cell.Any) bool {
	for _, r := range rows {
		if r == row {
			return true
		}
	}
	return false
}
