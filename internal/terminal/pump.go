package terminal

import (
	"context"
	"log/slog"

	"github.com/gdamore/tcell/v2"
)

// Pump reads screen events on its own goroutine and hands them to OnEvent on
// the goroutine that called Run.
type Pump struct {
	screen   tcell.Screen
	Incoming chan tcell.Event

	// OnEvent is called for each screen event.
	OnEvent func(ev tcell.Event)
}

// NewPump creates a pump for an initialised screen.
func NewPump(screen tcell.Screen) *Pump {
	return &Pump{
		screen:   screen,
		Incoming: make(chan tcell.Event, 256),
	}
}

// Run dispatches events until ctx is cancelled or the screen is finalised.
func (p *Pump) Run(ctx context.Context) error {
	go p.readPump(ctx)

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-p.Incoming:
			if !ok {
				slog.Info("screen closed, event pump stopped")
				return nil
			}
			if p.OnEvent != nil {
				p.OnEvent(ev)
			}
		}
	}
}

// readPump blocks in PollEvent, which returns nil once the screen is finalised.
func (p *Pump) readPump(ctx context.Context) {
	defer close(p.Incoming)
	for {
		ev := p.screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case p.Incoming <- ev:
		case <-ctx.Done():
			return
		}
	}
}
