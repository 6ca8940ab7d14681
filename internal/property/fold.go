package property

import (
	"strings"
	"sync"

	"golang.org/x/text/cases"
)

// cases.Caser is stateful, so folders are pooled for concurrent callers.
type folder struct {
	caser cases.Caser
}

var folderPool = sync.Pool{
	New: func() any {
		return &folder{caser: cases.Fold()}
	},
}

func fold(s string) string {
	f, ok := folderPool.Get().(*folder)
	if !ok {
		f = &folder{caser: cases.Fold()}
	}
	defer folderPool.Put(f)
	return f.caser.String(s)
}

// CompareFold orders a and b ignoring case.
func CompareFold(a, b string) int {
	return strings.Compare(fold(a), fold(b))
}

// ContainsFold reports whether substr is within s ignoring case.
func ContainsFold(s, substr string) bool {
	return strings.Contains(fold(s), fold(substr))
}
