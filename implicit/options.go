// SPDX-License-Identifier: MIT

package implicit

import "github.com/sirupsen/logrus"

// DEFAULTS - single source of truth for a Grid built without options.
const (
	// DefaultBoundsChecking validates simplex ids and local indices on every
	// query. Disable it only when callers guarantee valid input; invalid input
	// then panics on a slice index or returns a meaningless id.
	DefaultBoundsChecking = true

	// logComponent is the value of the "component" field on every log entry.
	logComponent = "implicit"
)

const panicNilLogger = "implicit: WithLogger(nil) is not allowed"

// Option configures a Grid at construction time.
type Option func(*Grid)

// WithLogger routes the grid's log entries to l.
// Panics if l is nil (programmer error).
func WithLogger(l logrus.FieldLogger) Option {
	if l == nil {
		panic(panicNilLogger)
	}

	return func(g *Grid) {
		g.log = l.WithField("component", logComponent)
	}
}

// WithBoundsChecking toggles id and local-index validation.
func WithBoundsChecking(enabled bool) Option {
	return func(g *Grid) {
		g.checked = enabled
	}
}
