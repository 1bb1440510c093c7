package layout

import (
	"gioui.org/layout"
)

// Reverse the order of the provided flex children if shouldReverse is true.
// Rows sent by the local user mirror the order of their children.
func Reverse(shouldReverse bool, items ...layout.FlexChild) []layout.FlexChild {
	if !shouldReverse {
		return items
	}
	for head, tail := 0, len(items)-1; head < tail; head, tail = head+1, tail-1 {
		items[head], items[tail] = items[tail], items[head]
	}
	return items
}
