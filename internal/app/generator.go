// internal/app/generator.go
package app

import (
	"context"
	"fmt"

	"brick-breaker-assets/internal/assets"
	"brick-breaker-assets/internal/config"
	"brick-breaker-assets/internal/event"
	"brick-breaker-assets/pkg/render"

	"github.com/sirupsen/logrus"
)

// Job describes one asset: how to draw it and where it goes.
type Job struct {
	Name   string
	File   string
	Width  int
	Height int
	Draw   func() (*render.Canvas, error)
}

// Result is a written asset.
type Result struct {
	Name   string
	Path   string
	Width  int
	Height int
}

// Generator runs the asset jobs one after another.
type Generator struct {
	cfg             config.Config
	store           *assets.Store
	EventDispatcher *event.Dispatcher
	logger          logrus.FieldLogger
}

// NewGenerator validates cfg and prepares a generator writing to cfg.OutputDir.
func NewGenerator(cfg config.Config, logger logrus.FieldLogger) (*Generator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	cfg.Theme = cfg.Theme.Clone()
	return &Generator{
		cfg:             cfg,
		store:           assets.NewStore(cfg.OutputDir, logger),
		EventDispatcher: event.NewDispatcher(),
		logger:          logger,
	}, nil
}

// Jobs returns the assets in the order they are produced.
func (g *Generator) Jobs() []Job {
	c := g.cfg
	return []Job{
		{
			Name: "icon", File: c.IconFile, Width: c.IconSize, Height: c.IconSize,
			Draw: func() (*render.Canvas, error) { return assets.Icon(c.IconSize, c.Theme) },
		},
		{
			Name: "adaptive icon foreground", File: c.IconForegroundFile, Width: c.IconSize, Height: c.IconSize,
			Draw: func() (*render.Canvas, error) { return assets.IconForeground(c.IconSize, c.Theme) },
		},
		{
			Name: "splash screen", File: c.SplashFile, Width: c.SplashWidth, Height: c.SplashHeight,
			Draw: func() (*render.Canvas, error) { return assets.Splash(c.SplashWidth, c.SplashHeight, c.Theme) },
		},
	}
}

// Run creates the output directory and writes every asset. The first
// failure stops the run; assets already written are left in place.
func (g *Generator) Run(ctx context.Context) ([]Result, error) {
	if err := g.store.EnsureDir(); err != nil {
		return nil, err
	}

	jobs := g.Jobs()
	results := make([]Result, 0, len(jobs))
	for _, job := range jobs {
		if err := ctx.Err(); err != nil {
			return results, err
		}
		res, err := g.runJob(job)
		if err != nil {
			return results, err
		}
		results = append(results, res)
	}

	g.EventDispatcher.Dispatch(event.Event{Type: event.GenerationFinished, Data: results})
	return results, nil
}

func (g *Generator) runJob(job Job) (Result, error) {
	info := event.AssetInfo{Name: job.Name, Width: job.Width, Height: job.Height}
	g.EventDispatcher.Dispatch(event.Event{Type: event.AssetStarted, Data: info})

	canvas, err := job.Draw()
	if err != nil {
		return Result{}, fmt.Errorf("failed to draw %s: %w", job.Name, err)
	}
	path, err := g.store.Save(job.File, canvas)
	if err != nil {
		return Result{}, err
	}

	info.Path = path
	g.logger.WithField("asset", job.Name).Debug("asset generated")
	g.EventDispatcher.Dispatch(event.Event{Type: event.AssetSaved, Data: info})
	return Result{Name: job.Name, Path: path, Width: job.Width, Height: job.Height}, nil
}
