// internal/tui/messages.go
//
// Internal tea.Msg types.

package tui

// revealTickMsg uncovers the next tile of the row being revealed.
// seq ties the tick to one reveal so stale ticks after a restart are dropped.
type revealTickMsg struct {
	seq int
}

// clearMessageMsg clears a transient message if it is still the current one.
type clearMessageMsg struct {
	seq int
}
