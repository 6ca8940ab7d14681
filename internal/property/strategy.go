package property

import (
	"fmt"
	"strconv"
	"strings"
)

// StrategyMode selects how a multi-valued tag collapses into one string.
type StrategyMode int

const (
	// StrategyUnset makes every multi-valued field fail to resolve.
	StrategyUnset StrategyMode = iota
	StrategyAll
	StrategyFirst
	StrategyLast
	StrategyNth
)

// Strategy is a tag resolution strategy. N is only used by StrategyNth and is
// clamped to the last value.
type Strategy struct {
	Mode StrategyMode
	N    int
}

var (
	All   = Strategy{Mode: StrategyAll}
	First = Strategy{Mode: StrategyFirst}
	Last  = Strategy{Mode: StrategyLast}
)

// Nth selects the value at index n.
func Nth(n int) Strategy {
	return Strategy{Mode: StrategyNth, N: n}
}

// Resolve collapses values. All joins with separator and resolves an empty
// list to the empty string. The selecting modes fail on an empty list.
func (s Strategy) Resolve(values []string, separator string) (string, bool) {
	switch s.Mode {
	case StrategyAll:
		return strings.Join(values, separator), true
	case StrategyFirst:
		if len(values) == 0 {
			return "", false
		}
		return values[0], true
	case StrategyLast:
		if len(values) == 0 {
			return "", false
		}
		return values[len(values)-1], true
	case StrategyNth:
		if len(values) == 0 {
			return "", false
		}
		n := min(max(s.N, 0), len(values)-1)
		return values[n], true
	default:
		return "", false
	}
}

func (s Strategy) String() string {
	switch s.Mode {
	case StrategyAll:
		return "all"
	case StrategyFirst:
		return "first"
	case StrategyLast:
		return "last"
	case StrategyNth:
		return fmt.Sprintf("nth:%d", s.N)
	default:
		return "unset"
	}
}

// ParseStrategy parses "all", "first", "last" or "nth:<n>".
func ParseStrategy(s string) (Strategy, error) {
	switch v := strings.ToLower(strings.TrimSpace(s)); {
	case v == "all":
		return All, nil
	case v == "first":
		return First, nil
	case v == "last":
		return Last, nil
	case strings.HasPrefix(v, "nth:"):
		n, err := strconv.Atoi(strings.TrimPrefix(v, "nth:"))
		if err != nil || n < 0 {
			return Strategy{}, fmt.Errorf("invalid nth index in %q", s)
		}
		return Nth(n), nil
	default:
		return Strategy{}, fmt.Errorf("unknown tag resolution strategy %q", s)
	}
}
