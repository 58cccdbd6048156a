package games

import (
	"io"
	"log/slog"
	"time"

	"github.com/lixenwraith/dev-arcade/arcade"
	"github.com/lixenwraith/dev-arcade/engine"
)

var epoch = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// manualOptions runs sessions on sched; timers fire only on Advance
func manualOptions(sched *engine.ManualScheduler) []arcade.Option {
	return []arcade.Option{
		arcade.WithClock(sched),
		arcade.WithScheduler(sched),
		arcade.WithLogger(discardLogger()),
	}
}

// clockOnly runs sessions on sched as a clock without timers
func clockOnly(sched *engine.ManualScheduler) []arcade.Option {
	return []arcade.Option{
		arcade.WithClock(sched),
		arcade.WithLogger(discardLogger()),
	}
}
