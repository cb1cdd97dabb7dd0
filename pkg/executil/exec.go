// Package executil provides shell execution utilities.
package executil

import (
	"context"
	"fmt"
	"io"
	"os/exec"
)

// Streams are the standard streams handed to an attached command. Nil
// fields leave the corresponding stream unconnected.
type Streams struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// Executor runs shell commands.
type Executor interface {
	// Run executes a command and returns its combined output.
	Run(ctx context.Context, cmd string, args ...string) ([]byte, error)
	// RunAttached executes a command connected to the given streams, for
	// interactive programs such as editors.
	RunAttached(ctx context.Context, streams Streams, cmd string, args ...string) error
}

// RealExecutor calls actual shell commands.
type RealExecutor struct{}

// Run executes a command and returns its combined output.
func (e *RealExecutor) Run(ctx context.Context, cmd string, args ...string) ([]byte, error) {
	out, err := exec.CommandContext(ctx, cmd, args...).CombinedOutput()
	if err != nil {
		return out, fmt.Errorf("exec %s: %w", cmd, err)
	}
	return out, nil
}

// RunAttached executes a command connected to the given streams.
func (e *RealExecutor) RunAttached(ctx context.Context, streams Streams, cmd string, args ...string) error {
	c := exec.CommandContext(ctx, cmd, args...)
	c.Stdin = streams.Stdin
	c.Stdout = streams.Stdout
	c.Stderr = streams.Stderr
	if err := c.Run(); err != nil {
		return fmt.Errorf("exec %s: %w", cmd, err)
	}
	return nil
}
