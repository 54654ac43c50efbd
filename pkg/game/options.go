package game

import (
	"io"
	"log/slog"

	"gridgames/pkg/core"
)

type options struct {
	clock  core.Clock
	logger *slog.Logger
	id     string
}

// Option customizes a Game.
type Option func(*options)

// WithClock drives the scheduler from c instead of the wall clock.
func WithClock(c core.Clock) Option {
	return func(o *options) { o.clock = c }
}

// WithLogger sends lifecycle events to l. Games log nothing by default.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithID overrides the generated game id.
func WithID(id string) Option {
	return func(o *options) { o.id = id }
}

func defaultOptions() options {
	return options{
		clock:  core.SystemClock{},
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}
