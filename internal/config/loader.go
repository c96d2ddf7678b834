// internal/config/loader.go
package config

import (
	"fmt"
	"image/color"
	"os"

	"brick-breaker-assets/pkg/render"

	"gopkg.in/yaml.v3"
)

// fileConfig mirrors the YAML override file. Absent keys keep their defaults.
type fileConfig struct {
	OutputDir string `yaml:"output_dir"`
	Icon      struct {
		Size           int    `yaml:"size"`
		File           string `yaml:"file"`
		ForegroundFile string `yaml:"foreground_file"`
	} `yaml:"icon"`
	Splash struct {
		Width  int    `yaml:"width"`
		Height int    `yaml:"height"`
		File   string `yaml:"file"`
	} `yaml:"splash"`
	Theme struct {
		Background          string   `yaml:"background"`
		Disc                string   `yaml:"disc"`
		Ball                string   `yaml:"ball"`
		Highlight           string   `yaml:"highlight"`
		ForegroundHighlight string   `yaml:"foreground_highlight"`
		Outline             string   `yaml:"outline"`
		Bricks              []string `yaml:"bricks"`
	} `yaml:"theme"`
}

// Load reads the YAML file at path on top of DefaultConfig and validates the result.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config file: %w", err)
	}
	return Parse(data)
}

// Parse applies YAML overrides to DefaultConfig.
func Parse(data []byte) (Config, error) {
	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return Config{}, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	cfg := DefaultConfig()
	setString(&cfg.OutputDir, fc.OutputDir)
	setInt(&cfg.IconSize, fc.Icon.Size)
	setString(&cfg.IconFile, fc.Icon.File)
	setString(&cfg.IconForegroundFile, fc.Icon.ForegroundFile)
	setInt(&cfg.SplashWidth, fc.Splash.Width)
	setInt(&cfg.SplashHeight, fc.Splash.Height)
	setString(&cfg.SplashFile, fc.Splash.File)

	colors := []struct {
		dst *color.NRGBA
		hex string
	}{
		{&cfg.Theme.Background, fc.Theme.Background},
		{&cfg.Theme.Disc, fc.Theme.Disc},
		{&cfg.Theme.Ball, fc.Theme.Ball},
		{&cfg.Theme.Highlight, fc.Theme.Highlight},
		{&cfg.Theme.ForegroundHighlight, fc.Theme.ForegroundHighlight},
		{&cfg.Theme.Outline, fc.Theme.Outline},
	}
	for _, c := range colors {
		if c.hex == "" {
			continue
		}
		v, err := render.ParseHexColor(c.hex)
		if err != nil {
			return Config{}, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
		}
		*c.dst = v
	}

	if fc.Theme.Bricks != nil {
		bricks := make([]color.NRGBA, 0, len(fc.Theme.Bricks))
		for i, hex := range fc.Theme.Bricks {
			v, err := render.ParseHexColor(hex)
			if err != nil {
				return Config{}, fmt.Errorf("%w: brick %d: %v", ErrInvalidConfig, i, err)
			}
			bricks = append(bricks, v)
		}
		cfg.Theme.Bricks = bricks
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}

// Negative values are kept so that Validate can reject them.
func setInt(dst *int, v int) {
	if v != 0 {
		*dst = v
	}
}
