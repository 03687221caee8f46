package shoal

import (
	"fmt"
	"io"
	"time"
)

// frameStats holds per-frame timing and event counts.
// Only populated when Session.debug is true.
type frameStats struct {
	frameTime time.Duration
	movers    int
	inputs    int
	goals     int
	escapes   int
	discarded int
	collided  bool
}

// SetDebugMode enables or disables debug mode. When enabled, per-frame
// timing and event counts are logged to the log output.
func (s *Session) SetDebugMode(enabled bool) {
	s.debug = enabled
}

// SetLogOutput redirects warnings and debug lines. The default is os.Stderr;
// io.Discard silences them.
func (s *Session) SetLogOutput(w io.Writer) {
	if w == nil {
		w = io.Discard
	}
	s.logOutput = w
}

// logf writes a single prefixed diagnostic line.
func (s *Session) logf(format string, args ...any) {
	_, _ = fmt.Fprintf(s.logOutput, "[shoal] "+format+"\n", args...)
}

// debugLog prints frame stats.
func (s *Session) debugLog(stats frameStats) {
	if !s.debug {
		return
	}
	s.logf("frame %d: step %v | movers: %d | inputs: %d | score: %d",
		s.frame, stats.frameTime, stats.movers, stats.inputs, s.score)
	if stats.goals > 0 || stats.escapes > 0 || stats.discarded > 0 || stats.collided {
		s.logf("frame %d: goals: %d | escapes: %d | discarded: %d | collision: %v",
			s.frame, stats.goals, stats.escapes, stats.discarded, stats.collided)
	}
}
