package property

import (
	"strings"

	"github.com/rivo/uniseg"
)

// Ellipsize shortens text to at most maxChars grapheme clusters. Text within
// the limit is returned unchanged. Longer text keeps its first
// maxChars-len(marker) clusters followed by marker. When the marker itself
// does not fit, the marker is cut to maxChars.
func Ellipsize(text string, maxChars int, marker string) string {
	if maxChars < 0 {
		maxChars = 0
	}
	if uniseg.GraphemeClusterCount(text) <= maxChars {
		return text
	}
	markerLen := uniseg.GraphemeClusterCount(marker)
	if markerLen > maxChars {
		return takeClusters(marker, maxChars)
	}
	return takeClusters(text, maxChars-markerLen) + marker
}

func takeClusters(s string, n int) string {
	var b strings.Builder
	state := -1
	for i := 0; i < n && s != ""; i++ {
		var cluster string
		cluster, s, _, state = uniseg.FirstGraphemeClusterInString(s, state)
		b.WriteString(cluster)
	}
	return b.String()
}
