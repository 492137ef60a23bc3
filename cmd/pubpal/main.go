// ABOUTME: CLI entry point for pubpal
// ABOUTME: Parses flags, loads config, dispatches to subcommands or the TUI

package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"text/tabwriter"
	"time"

	"golang.org/x/term"

	// termfix must be imported before any package that imports bubbletea.
	// Its init() pins the lipgloss background so BubbleTea never sends
	// OSC 10/11 queries that would garble the session input.
	_ "github.com/pubpal/pubpal/internal/termfix"

	"github.com/pubpal/pubpal/internal/catalog"
	"github.com/pubpal/pubpal/internal/config"
	"github.com/pubpal/pubpal/internal/document"
	pplog "github.com/pubpal/pubpal/internal/log"
	"github.com/pubpal/pubpal/internal/manifest"
	"github.com/pubpal/pubpal/internal/mutate"
	"github.com/pubpal/pubpal/internal/project"
	"github.com/pubpal/pubpal/internal/registry"
	"github.com/pubpal/pubpal/internal/session"
	"github.com/pubpal/pubpal/internal/tui"
	"github.com/pubpal/pubpal/internal/watch"
)

var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

const usage = `usage: pubpal [flags] [command]

commands:
  add <name>       add a dependency and resync
  remove <name>    remove a dependency and resync
  sync             resync installed dependencies with the manifest
  search <query>   search the registry and print a table
  watch            resync automatically when the manifest is saved

With no command, pubpal starts the interactive suggestion session
(requires a terminal). An optional file argument selects the source
file whose imports the session edits.
`

func main() {
	args := parseFlags()

	if args.version {
		fmt.Printf("pubpal %s (%s) built %s\n", version, commit, date)
		os.Exit(0)
	}

	if err := run(args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// env holds the wired-up components every command works with.
type env struct {
	root    string
	cfg     *config.Settings
	reg     *registry.Client
	builder *catalog.Builder
	exec    *mutate.Executor
}

func run(args cliArgs) error {
	if args.verbose {
		pplog.SetLevel(pplog.LevelDebug)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	root, rootErr := project.FindRootFromWd()

	rest := args.remaining()
	cmd := ""
	if len(rest) > 0 {
		cmd = rest[0]
	}

	// Search works outside a project; everything else needs the manifest.
	if rootErr != nil && cmd != "search" {
		return rootErr
	}

	e, err := buildEnv(root, args)
	if err != nil {
		return err
	}

	switch cmd {
	case "add", "remove":
		if len(rest) < 2 {
			return fmt.Errorf("usage: pubpal %s <name>", cmd)
		}
		name := rest[1]
		if !catalog.ValidName(name) {
			return fmt.Errorf("invalid package name %q", name)
		}
		if cmd == "add" {
			return e.exec.Add(ctx, name)
		}
		return e.exec.Remove(ctx, name)

	case "sync":
		return e.exec.Resync(ctx)

	case "search":
		if len(rest) < 2 {
			return errors.New("usage: pubpal search <query>")
		}
		return runSearch(ctx, e, rest[1])

	case "watch":
		pplog.Info("watching %s", filepath.Join(e.root, manifest.FileName))
		return watch.New(e.root, e.exec, watch.DefaultDebounce).Run(ctx)

	case "":
		if !term.IsTerminal(int(os.Stdin.Fd())) {
			fmt.Fprint(os.Stderr, usage)
			return errors.New("interactive mode requires a terminal")
		}
		return runInteractive(ctx, e, "")

	default:
		// A file path starts the interactive session against that file.
		if _, statErr := os.Stat(cmd); statErr == nil {
			if !term.IsTerminal(int(os.Stdin.Fd())) {
				return errors.New("interactive mode requires a terminal")
			}
			return runInteractive(ctx, e, cmd)
		}
		fmt.Fprint(os.Stderr, usage)
		return fmt.Errorf("unknown command %q", cmd)
	}
}

// buildEnv loads config and wires the registry, builder, and executor.
func buildEnv(root string, args cliArgs) (*env, error) {
	cfg, err := config.Load(root)
	if err != nil {
		return nil, err
	}
	if args.registry != "" {
		cfg.RegistryURL = args.registry
	}
	if args.tool != "" {
		cfg.Tool = args.tool
	}

	reg := registry.New(cfg.RegistryURL)
	reg.Enrich = cfg.SuggestionsEnabled()

	builder := &catalog.Builder{
		Root:     root,
		Registry: reg,
		Scanner:  document.Scanner{Strict: cfg.StrictImports},
		Enrich:   cfg.SuggestionsEnabled(),
	}

	sink := mutate.SinkFunc(func(msg string) {
		fmt.Fprintln(os.Stderr, msg)
	})
	exec := mutate.New(root, cfg.Tool, sink)

	return &env{root: root, cfg: cfg, reg: reg, builder: builder, exec: exec}, nil
}

// runSearch prints a one-shot catalog build as a table.
func runSearch(ctx context.Context, e *env, query string) error {
	recs, err := e.builder.Build(ctx, query, "", catalog.ModeAll)
	if err != nil {
		return err
	}
	if len(recs) == 0 {
		fmt.Println("no packages found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tVERSION\tSTATUS\tDESCRIPTION")
	for _, r := range recs {
		status := ""
		if r.Installed {
			status = "installed"
		}
		version := r.DeclaredVersion
		if version == "" {
			version = r.LatestVersion
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", r.Name, version, status, r.Description)
	}
	return w.Flush()
}

// runInteractive starts the TUI session, optionally editing the imports of
// the given source file.
func runInteractive(ctx context.Context, e *env, file string) error {
	doc, err := openDoc(e.root, file)
	if err != nil {
		return err
	}

	// The mutation sink would corrupt the TUI frame; route progress to the
	// debug log instead.
	e.exec.Sink = mutate.SinkFunc(func(msg string) {
		pplog.Debug("mutate: %s", msg)
	})

	if e.cfg.AutoResync {
		w := watch.New(e.root, e.exec, watch.DefaultDebounce)
		go func() {
			if err := w.Run(ctx); err != nil && ctx.Err() == nil {
				pplog.Warn("manifest watcher: %v", err)
			}
		}()
	}

	debounce := time.Duration(e.cfg.DebounceMs) * time.Millisecond
	return tui.Run(ctx, tui.Deps{
		Builder:  e.builder,
		Mutator:  e.exec,
		Doc:      doc,
		Debounce: debounce,
	})
}

// openDoc picks the session document: an explicit file, the conventional
// lib/main.dart when present, or an in-memory scratch document.
func openDoc(root, file string) (session.DocumentHost, error) {
	if file != "" {
		return newFileDoc(file)
	}
	main := filepath.Join(root, "lib", "main.dart")
	if _, err := os.Stat(main); err == nil {
		return newFileDoc(main)
	}
	return &memDoc{}, nil
}
