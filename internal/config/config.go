// internal/config/config.go
package config

import (
	"errors"
	"fmt"
	"image/color"

	"brick-breaker-assets/pkg/render"
)

const (
	IconSize     = 1024
	SplashWidth  = 1080
	SplashHeight = 1920
	OutputDir    = "assets"

	IconFile           = "icon.png"
	IconForegroundFile = "icon_foreground.png"
	SplashFile         = "splash.png"

	IconOutlineWidth   = 2 // обводка кирпичей на иконке
	SplashOutlineWidth = 3 // обводка кирпичей на заставке
	SplashBrickGap     = 8
	SplashBrickRows    = 3
	SplashBrickCols    = 5
)

// Команды, которые пользователь запускает сам после генерации.
var NextSteps = []string{
	"flutter pub run flutter_launcher_icons",
	"flutter pub run flutter_native_splash:create",
}

var (
	BackgroundColor          = color.NRGBA{30, 30, 30, 255} // #1e1e1e
	DiscColor                = color.NRGBA{50, 50, 50, 255}
	BallColor                = color.NRGBA{255, 255, 255, 255}
	HighlightColor           = color.NRGBA{200, 200, 200, 255}
	ForegroundHighlightColor = color.NRGBA{255, 255, 255, 100}
	OutlineColor             = color.NRGBA{0, 0, 0, 255}
	BrickColors              = []color.NRGBA{
		{242, 103, 5, 255},   // Red
		{255, 183, 3, 255},   // Orange
		{254, 244, 68, 255},  // Yellow
		{99, 199, 77, 255},   // Green
		{87, 227, 137, 255},  // Lime
		{0, 181, 204, 255},   // Cyan
		{0, 119, 182, 255},   // Blue
		{73, 77, 188, 255},   // Indigo
		{171, 71, 188, 255},  // Purple
		{244, 113, 181, 255}, // Pink
	}
)

// ErrInvalidConfig is returned by Validate.
var ErrInvalidConfig = errors.New("invalid config")

// Config holds everything a generation run needs.
type Config struct {
	OutputDir string

	IconSize     int
	SplashWidth  int
	SplashHeight int

	IconFile           string
	IconForegroundFile string
	SplashFile         string

	Theme render.Theme
}

// DefaultTheme returns the game palette.
func DefaultTheme() render.Theme {
	return render.Theme{
		Background:          BackgroundColor,
		Disc:                DiscColor,
		Ball:                BallColor,
		Highlight:           HighlightColor,
		ForegroundHighlight: ForegroundHighlightColor,
		Outline:             OutlineColor,
		Bricks:              append([]color.NRGBA(nil), BrickColors...),
	}
}

// DefaultConfig returns the configuration used when no overrides are given.
func DefaultConfig() Config {
	return Config{
		OutputDir:          OutputDir,
		IconSize:           IconSize,
		SplashWidth:        SplashWidth,
		SplashHeight:       SplashHeight,
		IconFile:           IconFile,
		IconForegroundFile: IconForegroundFile,
		SplashFile:         SplashFile,
		Theme:              DefaultTheme(),
	}
}

// Validate checks sizes, file names and the palette.
func (c Config) Validate() error {
	switch {
	case c.IconSize <= 0:
		return fmt.Errorf("%w: icon size %d", ErrInvalidConfig, c.IconSize)
	case c.SplashWidth <= 0 || c.SplashHeight <= 0:
		return fmt.Errorf("%w: splash size %dx%d", ErrInvalidConfig, c.SplashWidth, c.SplashHeight)
	case c.OutputDir == "":
		return fmt.Errorf("%w: empty output dir", ErrInvalidConfig)
	case c.IconFile == "" || c.IconForegroundFile == "" || c.SplashFile == "":
		return fmt.Errorf("%w: empty file name", ErrInvalidConfig)
	case len(c.Theme.Bricks) == 0:
		return fmt.Errorf("%w: empty brick palette", ErrInvalidConfig)
	}
	return nil
}
