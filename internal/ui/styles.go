package ui

import (
	"image/color"

	"charm.land/lipgloss/v2"
)

// Color palette, regenerated by SetTheme
var (
	ColorPrimary     color.Color
	ColorSecondary   color.Color
	ColorBorder      color.Color
	ColorBorderFocus color.Color
	ColorText        color.Color
	ColorTextMuted   color.Color
	ColorTextInverse color.Color
	ColorPlaying     color.Color
	ColorWarning     color.Color
	ColorInfo        color.Color
	ColorError       color.Color
)

// Pane styles
var (
	BorderStyle      lipgloss.Style
	BorderFocusStyle lipgloss.Style

	SelectedStyle     lipgloss.Style
	PlayingStyle      lipgloss.Style
	TextStyle         lipgloss.Style
	MutedStyle        lipgloss.Style
	DirStyle          lipgloss.Style
	ColumnHeaderStyle lipgloss.Style
)

// Tab bar styles
var (
	TabStyle       lipgloss.Style
	TabActiveStyle lipgloss.Style
)

// Progress bar styles
var (
	ProgressElapsedStyle lipgloss.Style
	ProgressTrackStyle   lipgloss.Style
)

// Status line styles
var (
	ErrorLineStyle lipgloss.Style
	FlashStyle     lipgloss.Style
	WarningStyle   lipgloss.Style
)

func init() {
	regenerateStyles()
}
