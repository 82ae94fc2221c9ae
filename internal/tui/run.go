package tui

import (
	"context"
	"time"

	"github.com/gdamore/tcell/v2"

	"portfolio/internal/world"
)

// Run drives loop in the terminal until ctx is done, the user presses Ctrl+C, or the
// screen stops delivering events. dt is measured between ticks.
func Run(ctx context.Context, s *Screen, loop *world.Loop, hz int) error {
	if hz <= 0 {
		hz = 30
	}

	events := make(chan tcell.Event, 32)
	go func() {
		defer close(events)
		for {
			ev := s.scr.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-ctx.Done():
				return
			}
		}
	}()

	t := time.NewTicker(time.Second / time.Duration(hz))
	defer t.Stop()

	last := time.Now()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if s.HandleEvent(ev, &loop.World.Input, time.Now()) {
				s.log.Infof("quit requested")
				return nil
			}
		case now := <-t.C:
			s.Expire(&loop.World.Input, now)
			dt := float32(now.Sub(last).Seconds())
			last = now
			loop.Frame(dt)
		}
	}
}
