package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/leapstack-labs/stylebridge/internal/cli/config"
	"github.com/leapstack-labs/stylebridge/pkg/codestyle"
	"github.com/leapstack-labs/stylebridge/pkg/importer"
	_ "github.com/leapstack-labs/stylebridge/pkg/importer/modules" // register importers
)

// watchDebounce is how long compile --watch waits for a burst of writes to settle.
const watchDebounce = 100 * time.Millisecond

// CompileOptions holds options for the compile command.
type CompileOptions struct {
	Watch  bool
	Format string
}

// NewCompileCommand creates the compile command.
func NewCompileCommand() *cobra.Command {
	opts := &CompileOptions{}
	cmd := &cobra.Command{
		Use:   "compile",
		Short: "Compile the project's checks into code style settings",
		Long: `Run an import pass over the checks of stylebridge.yaml and print the
resulting code style settings.

Every check with a registered importer is compiled; unknown checks are
skipped and unknown properties are reported as warnings.

Output adapts to environment:
  - Terminal: Styled output with tables
  - Piped/Scripted: Markdown format
  - JSON/YAML: Machine-readable format`,
		Example: `  # Compile the project in the current directory
  stylebridge compile

  # Compile a specific project file as YAML
  stylebridge compile --config team/stylebridge.yaml -f yaml

  # Recompile whenever the project file changes
  stylebridge compile --watch`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmdCtx, err := NewCommandContext(cmd)
			if err != nil {
				return err
			}
			if opts.Watch {
				return watchProject(cmd.Context(), cmd, cmdCtx, opts)
			}
			_, err = compileProject(cmd.Context(), cmd, cmdCtx, opts)
			return err
		},
	}

	cmd.Flags().BoolVarP(&opts.Watch, "watch", "w", false, "Recompile when the project file changes")
	cmd.Flags().StringVarP(&opts.Format, "format", "f", "", "Output format: text, markdown, json, yaml")

	return cmd
}

// compileProject runs one import pass over the configured checks and renders
// the installed state.
func compileProject(ctx context.Context, cmd *cobra.Command, cmdCtx *CommandContext, opts *CompileOptions) (*importer.Result, error) {
	project := cmdCtx.Cfg.Project()
	project.ApplyDefaults()

	settings := codestyle.NewSettings()
	pass := &importer.Pass{Logger: cmdCtx.Logger, Limit: project.Concurrency}
	result, err := pass.Run(ctx, settings, project.Root())
	if err != nil {
		return nil, err
	}

	r := withFormat(cmd, cmdCtx.Renderer, opts.Format)
	if err := NewCompileReport(result, settings.Snapshot()).Render(r); err != nil {
		return nil, fmt.Errorf("failed to render settings: %w", err)
	}

	if !r.EffectiveMode().IsStructured() {
		if result.Warnings > 0 {
			r.Warn(fmt.Sprintf("%d properties ignored", result.Warnings))
		}
		if len(result.Skipped) > 0 {
			r.Warn(fmt.Sprintf("no importer for %v", result.Skipped))
		}
	}
	return result, nil
}

// watchProject compiles once, then recompiles after every debounced write to
// the project file until ctx is done.
func watchProject(ctx context.Context, cmd *cobra.Command, cmdCtx *CommandContext, opts *CompileOptions) error {
	configFile := cmdCtx.Cfg.ConfigFile
	if configFile == "" {
		return errors.New("--watch needs a project file")
	}
	configFile, err := filepath.Abs(configFile)
	if err != nil {
		return err
	}

	if _, err := compileProject(ctx, cmd, cmdCtx, opts); err != nil {
		return fmt.Errorf("initial compile failed: %w", err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer func() { _ = watcher.Close() }()

	// Editors often replace the file, so watch the directory.
	if err := watcher.Add(filepath.Dir(configFile)); err != nil {
		return fmt.Errorf("failed to watch %s: %w", filepath.Dir(configFile), err)
	}
	cmdCtx.Renderer.Info("watching " + configFile)

	w := &projectWatcher{
		file:   configFile,
		logger: cmdCtx.Logger,
		rebuild: func() error {
			cfg, err := config.LoadConfig(configFile, cmd.Root().PersistentFlags())
			if err != nil {
				return err
			}
			next := *cmdCtx
			next.Cfg = cfg
			_, err = compileProject(ctx, cmd, &next, opts)
			return err
		},
	}
	w.loop(ctx, watcher)
	return nil
}

type projectWatcher struct {
	file    string
	logger  *slog.Logger
	rebuild func() error

	mu sync.Mutex
}

// loop handles file system events until ctx is done or the watcher closes.
func (w *projectWatcher) loop(ctx context.Context, watcher *fsnotify.Watcher) {
	var debounceTimer *time.Timer
	defer func() {
		if debounceTimer != nil {
			debounceTimer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-watcher.Events:
			if !ok {
				return
			}
			if !w.relevant(event) {
				continue
			}
			if debounceTimer != nil {
				debounceTimer.Stop()
			}
			debounceTimer = time.AfterFunc(watchDebounce, func() {
				w.mu.Lock()
				defer w.mu.Unlock()
				w.logger.Info("change detected", "file", filepath.Base(event.Name))
				if err := w.rebuild(); err != nil {
					w.logger.Error("recompile failed", "error", err)
				}
			})
		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			w.logger.Warn("watcher error", "error", err)
		}
	}
}

func (w *projectWatcher) relevant(event fsnotify.Event) bool {
	if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
		return false
	}
	name, err := filepath.Abs(event.Name)
	if err != nil {
		return false
	}
	return name == w.file
}
