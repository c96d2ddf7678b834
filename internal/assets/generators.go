// internal/assets/generators.go
package assets

import (
	"errors"
	"fmt"

	"brick-breaker-assets/internal/config"
	"brick-breaker-assets/pkg/render"
)

// ErrInvalidSize is returned when a requested canvas dimension is not positive.
var ErrInvalidSize = errors.New("invalid canvas size")

// Brick is a placed brick: an inclusive box plus its palette index.
type Brick struct {
	X0, Y0, X1, Y1 int
	Palette        int
}

// IconBricks returns the two rows of four bricks drawn on the icon.
// Все размеры считаются целочисленным делением от size.
func IconBricks(size int) []Brick {
	margin := size / 8
	bh := size / 12  // высота кирпича
	bw := size / 6   // ширина кирпича
	gap := size / 80 // промежуток между кирпичами
	off := size / 10 // отступ ряда от круга

	bricks := make([]Brick, 0, 8)
	for row := 0; row < 2; row++ {
		y := margin + off
		if row == 1 {
			y = size - margin - off - bh
		}
		for i := 0; i < 4; i++ {
			x := margin + i*(bw+gap) + off
			bricks = append(bricks, Brick{X0: x, Y0: y, X1: x + bw, Y1: y + bh, Palette: row*4 + i})
		}
	}
	return bricks
}

// Icon draws the opaque application icon: a disc, a ball and eight bricks.
func Icon(size int, theme render.Theme) (*render.Canvas, error) {
	if size <= 0 {
		return nil, fmt.Errorf("%w: icon %d", ErrInvalidSize, size)
	}
	c := render.NewOpaqueCanvas(size, size, theme.Background)

	margin := size / 8
	c.FillEllipse(margin, margin, size-margin, size-margin, theme.Disc)

	ball := size / 3
	center := size / 2
	c.FillEllipse(center-ball/2, center-ball/2, center+ball/2, center+ball/2, theme.Ball)

	for _, b := range IconBricks(size) {
		c.Rectangle(b.X0, b.Y0, b.X1, b.Y1, theme.Brick(b.Palette), theme.Outline, config.IconOutlineWidth)
	}
	return c, nil
}

// IconForeground draws the adaptive icon layer: a white ball with a
// translucent highlight on a transparent background.
func IconForeground(size int, theme render.Theme) (*render.Canvas, error) {
	if size <= 0 {
		return nil, fmt.Errorf("%w: icon foreground %d", ErrInvalidSize, size)
	}
	c := render.NewTransparentCanvas(size, size)

	margin := size / 4
	c.FillEllipse(margin, margin, size-margin, size-margin, render.Opaque(theme.Ball))

	// Highlight sits one third into the ball's bounding box.
	hs := size / 8
	h := margin + (size-2*margin)/3
	c.FillEllipse(h, h, h+hs, h+hs, theme.ForegroundHighlight)
	return c, nil
}

// SplashBricks returns the rows×cols grid of bricks under the splash ball.
// Palette index of cell (row, col) is row*cols+col; Theme.Brick wraps it.
func SplashBricks(width, height int) []Brick {
	const gap = config.SplashBrickGap
	bh := height / 20
	bw := width / 6
	startY := height/2 + height/8

	rows, cols := config.SplashBrickRows, config.SplashBrickCols
	bricks := make([]Brick, 0, rows*cols)
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			x := col*(bw+gap) + gap
			y := startY + row*(bh+gap)
			bricks = append(bricks, Brick{X0: x, Y0: y, X1: x + bw, Y1: y + bh, Palette: row*cols + col})
		}
	}
	return bricks
}

// Splash draws the opaque splash screen: a lifted ball with a highlight
// and a grid of bricks below it.
func Splash(width, height int, theme render.Theme) (*render.Canvas, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: splash %dx%d", ErrInvalidSize, width, height)
	}
	c := render.NewOpaqueCanvas(width, height, theme.Background)

	cx, cy := width/2, height/2
	ball := min(width, height) / 4
	lift := height / 8
	c.FillEllipse(cx-ball/2, cy-ball/2-lift, cx+ball/2, cy+ball/2-lift, theme.Ball)

	hs := ball / 3
	hx := cx - ball/4
	hy := cy - ball/4 - lift
	c.FillEllipse(hx, hy, hx+hs, hy+hs, theme.Highlight)

	for _, b := range SplashBricks(width, height) {
		c.Rectangle(b.X0, b.Y0, b.X1, b.Y1, theme.Brick(b.Palette), theme.Outline, config.SplashOutlineWidth)
	}
	return c, nil
}
