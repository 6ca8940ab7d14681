package config

import (
	"fmt"
	"strings"
)

// ValidationError describes a single validation problem.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Validate checks a merged File and returns all problems found.
func Validate(f *File) []ValidationError {
	_, errs := build(f)
	return errs
}

// Themes lists the accepted theme names.
var Themes = []string{"dark", "nord", "dracula", "gruvbox", "tokyo-night", "catppuccin", "light"}

type validator struct {
	errs []ValidationError
}

func (v *validator) add(field, format string, args ...any) {
	v.errs = append(v.errs, ValidationError{Field: field, Message: fmt.Sprintf(format, args...)})
}

func joinErrors(errs []ValidationError) string {
	msgs := make([]string, len(errs))
	for i, e := range errs {
		msgs[i] = e.Error()
	}
	return strings.Join(msgs, "; ")
}
