// cmd/genassets/main.go
package main

import (
	"context"
	"flag"
	"os"
	"os/signal"

	"brick-breaker-assets/internal/app"
	"brick-breaker-assets/internal/config"
	"brick-breaker-assets/internal/preview"

	"github.com/sirupsen/logrus"
)

func main() {
	outDir := flag.String("out", "", "output directory (default \""+config.OutputDir+"\")")
	configPath := flag.String("config", "", "optional YAML file overriding sizes and colors")
	showPreview := flag.Bool("preview", false, "open a window with the generated assets")
	verbose := flag.Bool("v", false, "debug logging")
	flag.Parse()

	logger := logrus.New()
	logger.SetOutput(os.Stderr)
	logger.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	if *verbose {
		logger.SetLevel(logrus.DebugLevel)
	}

	cfg := config.DefaultConfig()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			logger.WithError(err).WithField("path", *configPath).Fatal("Failed to load config")
		}
		cfg = loaded
	}
	if *outDir != "" {
		cfg.OutputDir = *outDir
	}

	g, err := app.NewGenerator(cfg, logger)
	if err != nil {
		logger.WithError(err).Fatal("Invalid configuration")
	}
	app.NewConsoleReporter(os.Stdout, app.DefaultNextSteps()).Attach(g.EventDispatcher)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	results, err := g.Run(ctx)
	if err != nil {
		logger.WithError(err).WithField("dir", cfg.OutputDir).Fatal("Asset generation failed")
	}

	if *showPreview {
		if err := preview.Run(results); err != nil {
			logger.WithError(err).Fatal("Preview failed")
		}
	}
}
