package ui

// Terminal limits
const (
	// MinTerminalWidth is the narrowest terminal the layout is computed for
	MinTerminalWidth = 20

	// MinTerminalHeight is the shortest terminal the layout is computed for
	MinTerminalHeight = 5
)

// List navigation
const (
	// ScrollOff is the number of rows kept visible above and below the
	// selection when scrolling a list
	ScrollOff = 2

	// DefaultPageSize is used for page up/down before a list has been sized
	DefaultPageSize = 10
)

// Border glyphs for rounded pane borders
const (
	BorderHorizontal  = "─"
	BorderVertical    = "│"
	BorderTopLeft     = "╭"
	BorderTopRight    = "╮"
	BorderBottomLeft  = "╰"
	BorderBottomRight = "╯"
)
