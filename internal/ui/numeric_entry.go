package ui

import (
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/widget"

	"github.com/gridsim/power-triangle/internal/calc"
)

// NumericEntry is a single-line entry that refuses keystrokes which would
// make its content invalid for the bound field kind. Invalid states are
// unreachable: the field silently swallows the edit instead of showing an
// error.
type NumericEntry struct {
	widget.Entry

	kind calc.Field
}

// NewNumericEntry creates an entry validated against the given field kind
func NewNumericEntry(kind calc.Field) *NumericEntry {
	e := &NumericEntry{kind: kind}
	e.ExtendBaseWidget(e)
	return e
}

// TypedRune filters single keystrokes through the field predicate
func (e *NumericEntry) TypedRune(r rune) {
	if e.accepts(string(r)) {
		e.Entry.TypedRune(r)
	}
}

// TypedShortcut filters pasted text through the field predicate; all other
// shortcuts pass through unchanged.
func (e *NumericEntry) TypedShortcut(shortcut fyne.Shortcut) {
	if paste, ok := shortcut.(*fyne.ShortcutPaste); ok {
		if !e.accepts(paste.Clipboard.Content()) {
			return
		}
	}
	e.Entry.TypedShortcut(shortcut)
}

// Value returns the parsed field content. ok is false while the field is
// empty ("no input yet").
func (e *NumericEntry) Value() (float64, bool) {
	if e.Text == "" {
		return 0, false
	}
	value, err := strconv.ParseFloat(e.Text, 64)
	if err != nil {
		return 0, false
	}
	return value, true
}

// SetValue replaces the field content with a formatted number
func (e *NumericEntry) SetValue(value float64) {
	e.SetText(strconv.FormatFloat(value, 'f', -1, 64))
}

// accepts reports whether inserting text at the cursor keeps the field valid
func (e *NumericEntry) accepts(insert string) bool {
	column := e.CursorColumn
	current := e.Text
	if column > len(current) {
		column = len(current)
	}
	next := current[:column] + insert + current[column:]
	return calc.IsValidPartial(next, e.kind)
}
