// Package tts reads answers aloud. The engine is an explicitly acquired and
// released handle rather than a package-level singleton, so callers control
// its lifecycle instead of depending on init order.
package tts

import (
	"context"
	"fmt"
	"os/exec"
	"sync"
)

// Engine speaks text in the given BCP 47 language tag. Speak is fire and
// forget from the caller's perspective: the session layer never observes its
// outcome.
type Engine interface {
	Speak(ctx context.Context, text, languageTag string) error
	Close() error
}

// CommandEngine shells out to an external synthesizer such as espeak-ng,
// passing the language tag through the configured flag.
type CommandEngine struct {
	command      string
	languageFlag string

	mu     sync.Mutex
	closed bool
}

// NewCommandEngine acquires a handle on the external synthesizer. The command
// must accept the language flag followed by the language tag, then the text.
func NewCommandEngine(command, languageFlag string) (*CommandEngine, error) {
	path, err := exec.LookPath(command)
	if err != nil {
		return nil, fmt.Errorf("exec.LookPath(%s) > %w", command, err)
	}
	return &CommandEngine{
		command:      path,
		languageFlag: languageFlag,
	}, nil
}

func (e *CommandEngine) Speak(ctx context.Context, text, languageTag string) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.closed {
		return fmt.Errorf("tts engine is closed")
	}

	cmd := exec.CommandContext(ctx, e.command, e.languageFlag, languageTag, text)
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("cmd.Run > %w", err)
	}
	return nil
}

// Close releases the handle. Further Speak calls fail.
func (e *CommandEngine) Close() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.closed = true
	return nil
}

// NoopEngine discards speech requests. Used when no synthesizer is configured.
type NoopEngine struct{}

func (NoopEngine) Speak(ctx context.Context, text, languageTag string) error {
	return nil
}

func (NoopEngine) Close() error {
	return nil
}
