// internal/app/reporter.go
package app

import (
	"fmt"
	"io"

	"brick-breaker-assets/internal/config"
	"brick-breaker-assets/internal/event"
)

// ConsoleReporter prints progress for a generation run.
type ConsoleReporter struct {
	w         io.Writer
	nextSteps []string
}

// NewConsoleReporter creates a reporter that ends a successful run with nextSteps.
func NewConsoleReporter(w io.Writer, nextSteps []string) *ConsoleReporter {
	return &ConsoleReporter{w: w, nextSteps: nextSteps}
}

// Attach subscribes r to the generator events.
func (r *ConsoleReporter) Attach(d *event.Dispatcher) {
	d.Subscribe(event.AssetStarted, r)
	d.Subscribe(event.AssetSaved, r)
	d.Subscribe(event.GenerationFinished, r)
}

// OnEvent implements event.Listener.
func (r *ConsoleReporter) OnEvent(e event.Event) {
	switch e.Type {
	case event.AssetStarted:
		if info, ok := e.Data.(event.AssetInfo); ok {
			fmt.Fprintf(r.w, "Generating %s...\n", info.Name)
		}
	case event.AssetSaved:
		if info, ok := e.Data.(event.AssetInfo); ok {
			fmt.Fprintf(r.w, "✓ Saved %s\n", info.Path)
		}
	case event.GenerationFinished:
		fmt.Fprintln(r.w, "\n✨ All assets generated successfully!")
		if len(r.nextSteps) == 0 {
			return
		}
		fmt.Fprintln(r.w, "\nNext steps:")
		for i, cmd := range r.nextSteps {
			fmt.Fprintf(r.w, "%d. Run: %s\n", i+1, cmd)
		}
	}
}

var _ event.Listener = (*ConsoleReporter)(nil)

// DefaultNextSteps returns the follow-up commands for the Flutter project.
func DefaultNextSteps() []string {
	return append([]string(nil), config.NextSteps...)
}
