package ui

import "lifeboard/internal/core"

const (
	panelPadding = 6
	glyphWidth   = 7
	lineHeight   = 14
)

// helpLine lists the window key bindings.
const helpLine = "space pause  n step  r reset  s reseed  +/- speed  h hud  q quit"

// parameterProvider is satisfied by the engine.
type parameterProvider interface {
	Parameters() core.ParameterSnapshot
}

// hudLines returns the rows drawn on the panel, help text last.
func hudLines(s core.ParameterSnapshot) []string {
	return append(s.Lines(), helpLine)
}

// panelSize returns the pixel size of a panel holding lines in a 7x13 font.
func panelSize(lines []string) (int, int) {
	widest := 0
	for _, l := range lines {
		widest = max(widest, len(l))
	}
	return widest*glyphWidth + 2*panelPadding, len(lines)*lineHeight + 2*panelPadding
}
