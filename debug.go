package easel

import (
	"log/slog"
)

// debugLog reports timing and command stats for the last pass at debug level.
func (c *Compositor) debugLog() {
	if !c.debug {
		return
	}
	s := c.stats
	total := s.EmitTime + s.SortTime + s.SubmitTime
	Logger().Debug("render pass",
		slog.Duration("emit", s.EmitTime),
		slog.Duration("sort", s.SortTime),
		slog.Duration("submit", s.SubmitTime),
		slog.Duration("total", total),
		slog.Int("shapes", s.Shapes),
		slog.Int("drawn", s.Drawn),
		slog.Int("skipped", s.Skipped),
		slog.Int("commands", s.Commands),
		slog.Int("alpha_switches", countAlphaSwitches(c.commands, c.overlay)),
	)
	debugCheckShapeCount(s.Shapes)
}

// debugMaxShapeCount is the scene size above which a debug pass warns.
const debugMaxShapeCount = 5000

func debugCheckShapeCount(n int) {
	if n > debugMaxShapeCount {
		Logger().Warn("scene is large", slog.Int("shapes", n), slog.Int("threshold", debugMaxShapeCount))
	}
}

// countAlphaSwitches counts how many SetGlobalAlpha calls submission makes
// across the given command runs, starting from full opacity.
func countAlphaSwitches(runs ...[]RenderCommand) int {
	alpha := 1.0
	n := 0
	for _, cmds := range runs {
		for i := range cmds {
			if cmds[i].Alpha != alpha {
				alpha = cmds[i].Alpha
				n++
			}
		}
	}
	if alpha != 1 {
		n++
	}
	return n
}
