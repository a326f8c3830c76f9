package willowui

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
)

// logger receives warnings and debug stats. It discards everything until
// SetLogger or Scene.SetDebugMode installs a real one.
var (
	logger       = log.NewWithOptions(io.Discard, log.Options{Prefix: "willowui"})
	loggerCustom bool
)

// NewLogger returns a logger in the package's house format: timestamped,
// prefixed and filtered at level.
func NewLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
		Prefix:          "willowui",
	})
}

// SetLogger installs l as the package logger. nil restores the discarding
// default.
func SetLogger(l *log.Logger) {
	if l == nil {
		logger = log.NewWithOptions(io.Discard, log.Options{Prefix: "willowui"})
		loggerCustom = false
		return
	}
	logger = l
	loggerCustom = true
}

// Logger returns the package logger.
func Logger() *log.Logger {
	return logger
}

// globalDebug mirrors the most recently set Scene debug flag so that element
// operations (which lack a Scene pointer) can check it cheaply. Only valid
// with a single Scene; multiple Scenes with differing debug modes will
// reflect whichever called SetDebugMode last.
var globalDebug bool

// layoutCounters tallies Measure and Arrange recomputations (memoized calls
// excluded) during one UpdateLayout.
var layoutCounters layoutCounterSet

type layoutCounterSet struct {
	measures int
	arranges int
}

func (c *layoutCounterSet) reset() {
	c.measures, c.arranges = 0, 0
}

// debugStats holds per-frame timing and work metrics.
// Only populated when Scene.debug is true.
type debugStats struct {
	layoutTime   time.Duration
	traverseTime time.Duration
	submitTime   time.Duration
	layout       LayoutStats
	commandCount int
}

// debugLog writes one line of frame stats at debug level.
func (s *Scene) debugLog(stats debugStats) {
	if !s.debug {
		return
	}
	logger.Debug("frame",
		"layout", stats.layoutTime,
		"traverse", stats.traverseTime,
		"submit", stats.submitTime,
		"passes", stats.layout.Passes,
		"measures", stats.layout.Measures,
		"arranges", stats.layout.Arranges,
		"commands", stats.commandCount,
	)
}

// debugCheckDisposed panics with a descriptive message when a disposed element
// is used in a tree or layout operation. Only called in debug mode.
func debugCheckDisposed(e *Element, op string) {
	if e.disposed {
		panic(fmt.Sprintf("willowui debug: %s on disposed element %q", op, e.Name))
	}
}

// debugCheckTreeDepth warns if visual tree depth exceeds the threshold.
const debugMaxTreeDepth = 64

func debugCheckTreeDepth(e *Element) {
	depth := 0
	for p := e; p != nil; p = p.visualParent {
		depth++
	}
	if depth > debugMaxTreeDepth {
		logger.Warn("tree depth exceeds threshold", "element", e.Name, "depth", depth, "threshold", debugMaxTreeDepth)
	}
}

// debugCheckChildCount warns if an element has more than 1000 visual children.
const debugMaxChildCount = 1000

func debugCheckChildCount(e *Element) {
	if len(e.visualChildren) > debugMaxChildCount {
		logger.Warn("child count exceeds threshold", "element", e.Name, "children", len(e.visualChildren), "threshold", debugMaxChildCount)
	}
}

// debugNegativeClamp records that a negative or NaN size reached a layout
// boundary and was clamped to zero.
func debugNegativeClamp(e *Element, what string, v any) {
	if !globalDebug {
		return
	}
	logger.Warn("clamped invalid size", "element", e.Name, "what", what, "value", v)
}

// enableDebugLogger installs a stderr logger at debug level unless the host
// already supplied its own.
func enableDebugLogger() {
	if loggerCustom {
		return
	}
	logger = NewLogger(os.Stderr, log.DebugLevel)
}
