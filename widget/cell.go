package widget

import (
	"gioui.org/widget"
	"gioui.org/x/component"
	"gioui.org/x/richtext"
)

// MenuArea holds the state of a row's action menu across frames.
type MenuArea struct {
	// ContextArea tracks the right-click that opens the menu.
	component.ContextArea
	Menu component.MenuState
}

// Cell holds the interactive state of a row view across frames.
type Cell struct {
	// Content tracks clicks on the content, e.g. to open media.
	Content widget.Clickable
	// Text tracks interactions with links in the content.
	Text richtext.InteractiveText
	// Thumbnail caches the image shown by media rows.
	Thumbnail CachedImage
	// Fade animates configuration changes.
	Fade Fade
}
