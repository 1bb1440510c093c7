package material

import (
	"image"

	"gioui.org/layout"
	"gioui.org/widget"
	"gioui.org/x/component"
	"git.sr.ht/~gioverse/conversation/cell"
	chatwidget "git.sr.ht/~gioverse/conversation/widget"
)

// MenuActions are the actions offered by a row's context menu, in order.
var MenuActions = []cell.Action{
	cell.Reply,
	cell.Copy,
	cell.Forward,
	cell.Download,
	cell.Like,
	cell.Details,
	cell.Delete,
}

// MenuClicks holds the click state of every menu item, indexed by action.
type MenuClicks [int(cell.Delete) + 1]widget.Clickable

// ActionMenuStyle lays out the context menu of a row, offering the actions
// its controller can perform.
type ActionMenuStyle struct {
	Theme      *Theme
	State      *chatwidget.MenuArea
	Clicks     *MenuClicks
	Controller cell.ActionController
}

// ActionMenu constructs the menu of a row.
func ActionMenu(th *Theme, state *chatwidget.MenuArea, clicks *MenuClicks, controller cell.ActionController) ActionMenuStyle {
	return ActionMenuStyle{
		Theme:      th,
		State:      state,
		Clicks:     clicks,
		Controller: controller,
	}
}

// Layout the menu over the area of the row, performing any clicked action.
// Nothing is laid out without a controller.
func (m ActionMenuStyle) Layout(gtx layout.Context) layout.Dimensions {
	if m.Controller == nil {
		return layout.Dimensions{}
	}
	m.State.Menu.Options = m.State.Menu.Options[:0]
	for _, action := range MenuActions {
		if !m.Controller.CanPerform(action) {
			continue
		}
		click := &m.Clicks[action]
		if click.Clicked() {
			m.Controller.Perform(action)
		}
		m.State.Menu.Options = append(m.State.Menu.Options,
			component.MenuItem(m.Theme.Theme, click, action.String()).Layout)
	}
	if len(m.State.Menu.Options) == 0 {
		return layout.Dimensions{}
	}
	return m.State.ContextArea.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
		gtx.Constraints.Min = image.Point{}
		return component.Menu(m.Theme.Theme, &m.State.Menu).Layout(gtx)
	})
}
