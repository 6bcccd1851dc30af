package importer

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"runtime"
	"sync/atomic"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/leapstack-labs/stylebridge/pkg/codestyle"
)

// Pass imports one module tree into code-style settings.
type Pass struct {
	// Logger receives warnings and progress. Nil discards.
	Logger *slog.Logger
	// Limit bounds concurrent compilation. Zero or less means GOMAXPROCS.
	Limit int
}

// Result summarises a completed pass.
type Result struct {
	ID       string   `json:"id" yaml:"id"`
	Applied  []string `json:"applied" yaml:"applied"`
	Skipped  []string `json:"skipped,omitempty" yaml:"skipped,omitempty"`
	Warnings int      `json:"warnings" yaml:"warnings"`
}

type job struct {
	module *Module
	def    Def
}

// Run walks root, compiles every module with a registered importer and
// installs all changes into settings in one Apply call, in document order.
// If ctx is cancelled before the install, settings are left untouched.
func (p *Pass) Run(ctx context.Context, settings *codestyle.Settings, root *Module) (*Result, error) {
	if settings == nil {
		return nil, errors.New("import pass: nil settings")
	}

	result := &Result{ID: uuid.NewString()}
	logger := p.logger().With("pass", result.ID)

	var jobs []job
	root.Walk(func(m *Module) bool {
		def, ok := Get(m.Name)
		if !ok {
			logger.Debug("no importer for module", "module", m.Name)
			if len(m.Children) == 0 {
				result.Skipped = append(result.Skipped, m.Name)
			}
			return true
		}
		jobs = append(jobs, job{module: m, def: def})
		return true
	})

	var warnings atomic.Int64
	changes := make([]codestyle.Change, len(jobs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(p.limit())
	for i, j := range jobs {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			imp := j.def.New()
			for _, prop := range j.module.Properties {
				if err := imp.HandleAttribute(prop.Name, prop.Value); err != nil {
					warnings.Add(1)
					logger.Warn("ignoring property", "module", j.module.Name, "error", err)
				}
			}
			changes[i] = imp.Compile()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("import pass %s: %w", result.ID, err)
	}
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("import pass %s: %w", result.ID, err)
	}

	settings.Apply(changes...)

	for _, j := range jobs {
		result.Applied = append(result.Applied, j.module.Name)
	}
	result.Warnings = int(warnings.Load())
	logger.Info("import pass complete",
		"applied", len(result.Applied),
		"skipped", len(result.Skipped),
		"warnings", result.Warnings)
	return result, nil
}

func (p *Pass) logger() *slog.Logger {
	if p.Logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return p.Logger
}

func (p *Pass) limit() int {
	if p.Limit <= 0 {
		return runtime.GOMAXPROCS(0)
	}
	return p.Limit
}
