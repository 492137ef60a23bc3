// ABOUTME: Mutation pipeline: external tool add/remove followed by a resync step
// ABOUTME: Steps are strictly sequential; duplicate in-flight mutations coalesce

package mutate

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"

	"golang.org/x/sync/singleflight"

	"github.com/pubpal/pubpal/internal/log"
)

// ErrNoProjectRoot is returned when a mutation is attempted without a
// resolved project root. The operation is not started.
var ErrNoProjectRoot = errors.New("no project root available")

// Sink receives user-visible progress messages, one per phase.
type Sink interface {
	Progress(msg string)
}

// SinkFunc adapts a function to the Sink interface.
type SinkFunc func(msg string)

// Progress calls f.
func (f SinkFunc) Progress(msg string) { f(msg) }

// Subcommands of the external tool.
const (
	subAdd    = "add"
	subRemove = "remove"
	subResync = "get"
)

// Executor runs dependency mutations through the external package manager.
// The tool alone writes the manifest; the executor never touches it.
type Executor struct {
	Root string
	Tool string
	Sink Sink

	flight singleflight.Group
}

// New creates an Executor rooted at the given project directory.
func New(root, tool string, sink Sink) *Executor {
	return &Executor{Root: root, Tool: tool, Sink: sink}
}

// Add installs a dependency and resyncs. Concurrent duplicate adds for the
// same name (case-insensitive) share a single run.
func (e *Executor) Add(ctx context.Context, name string) error {
	return e.mutate(ctx, subAdd, name, "adding "+name)
}

// Remove uninstalls a dependency and resyncs. Concurrent duplicate removes
// for the same name share a single run.
func (e *Executor) Remove(ctx context.Context, name string) error {
	return e.mutate(ctx, subRemove, name, "removing "+name)
}

// Resync reconciles installed dependencies with the manifest. Used on its
// own by the sync command and the manifest watcher.
func (e *Executor) Resync(ctx context.Context) error {
	if e.Root == "" {
		return ErrNoProjectRoot
	}
	e.progress("resyncing dependencies")
	if err := e.run(ctx, subResync); err != nil {
		return fmt.Errorf("resync: %w", err)
	}
	return nil
}

// mutate runs one add/remove followed by a resync. The resync never starts
// unless the first step exited zero; a single failure aborts with the
// captured diagnostic text and no retry.
func (e *Executor) mutate(ctx context.Context, sub, name, phase string) error {
	key := sub + ":" + strings.ToLower(name)
	_, err, shared := e.flight.Do(key, func() (any, error) {
		if e.Root == "" {
			return nil, ErrNoProjectRoot
		}
		e.progress(phase)
		if err := e.run(ctx, sub, name); err != nil {
			return nil, fmt.Errorf("%s %s: %w", sub, name, err)
		}
		return nil, e.Resync(ctx)
	})
	if shared {
		log.Debug("coalesced duplicate %s", key)
	}
	return err
}

// run executes one tool subcommand in the project root and captures its
// error output. A non-zero exit surfaces the captured stderr text.
func (e *Executor) run(ctx context.Context, args ...string) error {
	cmd := exec.CommandContext(ctx, e.Tool, args...)
	cmd.Dir = e.Root

	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	log.Debug("running %s %s", e.Tool, strings.Join(args, " "))
	if err := cmd.Run(); err != nil {
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return fmt.Errorf("%w: %s", err, msg)
		}
		return err
	}
	return nil
}

func (e *Executor) progress(msg string) {
	if e.Sink != nil {
		e.Sink.Progress(msg)
	}
}
