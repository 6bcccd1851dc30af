// Package output renders command results for terminals, pipes and machines.
//
// A Renderer picks an effective mode: styled text on a TTY, markdown when
// piped, or JSON/YAML when asked for explicitly.
package output

import "strings"

// OutputMode selects how results are rendered.
type OutputMode string

// Output modes.
const (
	ModeAuto     OutputMode = "auto"
	ModeText     OutputMode = "text"
	ModeMarkdown OutputMode = "markdown"
	ModeJSON     OutputMode = "json"
	ModeYAML     OutputMode = "yaml"
)

// Modes lists the accepted mode names.
var Modes = []OutputMode{ModeAuto, ModeText, ModeMarkdown, ModeJSON, ModeYAML}

// Mode normalises a user supplied mode name. Empty and unknown names yield ModeAuto.
func Mode(s string) OutputMode {
	m := OutputMode(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Modes {
		if m == known {
			return m
		}
	}
	return ModeAuto
}

// IsStructured reports whether the mode is machine readable.
func (m OutputMode) IsStructured() bool {
	return m == ModeJSON || m == ModeYAML
}
