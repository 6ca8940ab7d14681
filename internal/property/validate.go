package property

import (
	"errors"
	"fmt"
)

// MaxDepth bounds the nesting of groups and default chains.
const MaxDepth = 64

var (
	ErrCycle    = errors.New("format refers back to itself")
	ErrTooDeep  = fmt.Errorf("format nested deeper than %d levels", MaxDepth)
	ErrNilKind  = errors.New("format has no kind")
	ErrBadColor = errors.New("unknown color")
)

// Validate checks that spec is a finite tree: no node reaches itself through
// group members or defaults, nesting stays within MaxDepth, and every color
// parses.
func Validate(spec *Spec) error {
	return validate(spec, make(map[*Spec]bool), 0)
}

func validate(spec *Spec, path map[*Spec]bool, depth int) error {
	if spec == nil {
		return nil
	}
	if depth > MaxDepth {
		return ErrTooDeep
	}
	if path[spec] {
		return ErrCycle
	}
	if spec.Kind == nil {
		return ErrNilKind
	}
	if err := validateStyle(spec.Style); err != nil {
		return err
	}

	path[spec] = true
	defer delete(path, spec)

	if g, ok := spec.Kind.(Group); ok {
		for i, m := range g.Members {
			if err := validate(m, path, depth+1); err != nil {
				return fmt.Errorf("group member %d: %w", i, err)
			}
		}
	}
	if err := validate(spec.Default, path, depth+1); err != nil {
		return fmt.Errorf("default: %w", err)
	}
	return nil
}

func validateStyle(s Style) error {
	for _, c := range []string{s.Fg, s.Bg} {
		if c != "" && !ValidColor(c) {
			return fmt.Errorf("%w %q", ErrBadColor, c)
		}
	}
	return nil
}
