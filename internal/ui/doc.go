// Package ui provides the shared surface every pane renders against.
//
// # Overview
//
// Each frame the host loop builds a Context (configuration, the current
// status snapshot and the Scheduler), partitions the configured layout
// and hands every pane a Frame together with the inner rectangle of its
// layout leaf. Panes never draw outside that rectangle.
//
// # Components
//
// Context: read-only snapshot of application state for one frame. It also
// carries the resolution helpers that apply the configured tag separator
// and tag resolution strategy.
//
// Frame: a cell buffer backed by an ultraviolet ScreenBuffer. Panes draw
// styled strings, span lines and borders into it; the host renders it
// once per frame.
//
// Scheduler: collects backend queries and commands issued by panes while
// handling events. The host turns each into a tea.Cmd with a cancellable
// context and routes the result back to the pane that asked.
//
// # Styles
//
// Themes are defined in theme.go and the derived lipgloss styles in
// styles.go. SetTheme regenerates every style variable.
package ui
