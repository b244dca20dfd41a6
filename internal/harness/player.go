package harness

import (
	"time"

	"cute/pkg/engine"
)

// Player drives a Script through an Engine, one test block at a time,
// the way a host test harness would: BeginTest before each block, then
// EndTest only for blocks whose body ran. There is never more than one
// block in flight.
type Player struct {
	engine *engine.Engine
}

// NewPlayer creates a Player for the given engine
func NewPlayer(e *engine.Engine) *Player {
	return &Player{engine: e}
}

// Play replays every event in order and returns how many blocks
// executed and how many were skipped, plus the total wall time of the
// replay. Per-block durations come from the script, not the clock.
func (p *Player) Play(script *Script) (executed, skipped int, elapsed time.Duration) {
	start := time.Now()

	for _, event := range script.Events {
		if !p.engine.BeginTest(event.Module, event.Test, event.Line) {
			skipped++
			continue
		}
		executed++

		outcome := engine.Passed
		if event.Failed {
			outcome = engine.Failed
		}
		p.engine.EndTest(event.Module, outcome)
		if event.Elapsed > 0 {
			p.engine.RecordElapsed(event.Module, event.Elapsed)
		}
	}

	return executed, skipped, time.Since(start)
}

// Report assembles the engine's report for a finished replay.
func (p *Player) Report(script *Script, elapsed time.Duration) *engine.Report {
	return p.engine.Report(elapsed, script.Modules)
}
