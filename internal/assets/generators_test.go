package assets

import (
	"errors"
	"image/color"
	"testing"

	"brick-breaker-assets/internal/config"
	"brick-breaker-assets/pkg/render"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIconDimensionsAndOpacity(t *testing.T) {
	for _, size := range []int{1, 7, 64, 1024} {
		c, err := Icon(size, config.DefaultTheme())
		require.NoError(t, err)
		assert.Equal(t, size, c.Width())
		assert.Equal(t, size, c.Height())
		assert.True(t, c.Opaque())
		assert.True(t, c.Image().Opaque(), "size %d", size)
	}
}

func TestIconLayout(t *testing.T) {
	theme := config.DefaultTheme()
	c, err := Icon(1024, theme)
	require.NoError(t, err)

	assert.Equal(t, theme.Background, c.At(0, 0))
	assert.Equal(t, theme.Ball, c.At(512, 512))
	// Between the ball (radius ~170) and the disc edge (margin 128), clear of the brick rows.
	assert.Equal(t, theme.Disc, c.At(300, 512))
}

func TestIconBricksUsePaletteInOrder(t *testing.T) {
	bricks := IconBricks(1024)
	require.Len(t, bricks, 8)

	// margin=128, off=102, bw=170, bh=85, gap=12
	assert.Equal(t, Brick{X0: 230, Y0: 230, X1: 400, Y1: 315, Palette: 0}, bricks[0])
	assert.Equal(t, Brick{X0: 776, Y0: 230, X1: 946, Y1: 315, Palette: 3}, bricks[3])
	assert.Equal(t, Brick{X0: 230, Y0: 709, X1: 400, Y1: 794, Palette: 4}, bricks[4])

	theme := config.DefaultTheme()
	c, err := Icon(1024, theme)
	require.NoError(t, err)
	for i, b := range bricks {
		assert.Equal(t, i, b.Palette)
		cx, cy := (b.X0+b.X1)/2, (b.Y0+b.Y1)/2
		assert.Equal(t, theme.Bricks[i], c.At(cx, cy), "brick %d", i)
		assert.Equal(t, theme.Outline, c.At(b.X0, b.Y0), "brick %d outline", i)
		assert.Equal(t, theme.Outline, c.At(b.X0+1, cy), "brick %d outline", i)
		if i < 4 {
			assert.Less(t, b.Y1, 512)
		} else {
			assert.Greater(t, b.Y0, 512)
		}
	}
}

func TestIconForegroundTransparency(t *testing.T) {
	theme := config.DefaultTheme()
	for _, size := range []int{16, 100, 1024} {
		c, err := IconForeground(size, theme)
		require.NoError(t, err)
		assert.Equal(t, size, c.Width())
		assert.Equal(t, size, c.Height())
		assert.False(t, c.Opaque())

		// Everything outside the ball's circle (plus one pixel of edge) stays clear.
		margin := size / 4
		center := float64(size) / 2
		radius := float64(size-2*margin+1) / 2
		for y := 0; y < size; y++ {
			for x := 0; x < size; x++ {
				dx, dy := float64(x)+0.5-center-0.5, float64(y)+0.5-center-0.5
				if dx*dx+dy*dy > (radius+1)*(radius+1) && c.At(x, y).A != 0 {
					t.Fatalf("size %d: pixel %d,%d has alpha %d", size, x, y, c.At(x, y).A)
				}
			}
		}
	}
}

func TestIconForegroundBallAndHighlight(t *testing.T) {
	theme := config.DefaultTheme()
	c, err := IconForeground(1024, theme)
	require.NoError(t, err)

	assert.Equal(t, color.NRGBA{}, c.At(0, 0))
	assert.Equal(t, color.NRGBA{}, c.At(255, 512))
	assert.Equal(t, theme.Ball, c.At(512, 700))

	// margin=256, highlight at 256+512/3=426, size 128.
	assert.Equal(t, theme.ForegroundHighlight, c.At(426+64, 426+64))
}

func TestSplashDimensionsAndOpacity(t *testing.T) {
	for _, dim := range [][2]int{{1, 1}, {3, 50}, {1080, 1920}, {1920, 1080}} {
		c, err := Splash(dim[0], dim[1], config.DefaultTheme())
		require.NoError(t, err)
		assert.Equal(t, dim[0], c.Width())
		assert.Equal(t, dim[1], c.Height())
		assert.True(t, c.Image().Opaque(), "%v", dim)
	}
}

func TestSplashLayout(t *testing.T) {
	theme := config.DefaultTheme()
	c, err := Splash(1080, 1920, theme)
	require.NoError(t, err)

	assert.Equal(t, theme.Background, c.At(0, 0))
	// ball=270, lift=240, ball center (540, 720).
	assert.Equal(t, theme.Ball, c.At(540+60, 720+60))
	// highlight box [473,653]-[563,743].
	assert.Equal(t, theme.Highlight, c.At(518, 698))
	assert.Equal(t, theme.Background, c.At(540, 1000))
}

func TestSplashBricksCyclePalette(t *testing.T) {
	bricks := SplashBricks(1080, 1920)
	require.Len(t, bricks, 15)

	// bw=180, bh=96, startY=1200
	assert.Equal(t, Brick{X0: 8, Y0: 1200, X1: 188, Y1: 1296, Palette: 0}, bricks[0])
	assert.Equal(t, Brick{X0: 760, Y0: 1408, X1: 940, Y1: 1504, Palette: 14}, bricks[14])

	theme := config.DefaultTheme()
	c, err := Splash(1080, 1920, theme)
	require.NoError(t, err)
	for row := 0; row < 3; row++ {
		for col := 0; col < 5; col++ {
			b := bricks[row*5+col]
			want := theme.Bricks[(row*5+col)%10]
			assert.Equal(t, want, c.At((b.X0+b.X1)/2, (b.Y0+b.Y1)/2), "cell %d,%d", row, col)
			assert.Equal(t, theme.Outline, c.At(b.X0+2, b.Y0+2))
			assert.Equal(t, theme.Bricks[(row*5+col)%10], theme.Brick(b.Palette))
		}
	}
	// The third row wraps back to the start of the palette.
	assert.Equal(t, theme.Bricks[0], c.At((bricks[10].X0+bricks[10].X1)/2, (bricks[10].Y0+bricks[10].Y1)/2))
}

func TestGeneratorsRejectNonPositiveSizes(t *testing.T) {
	theme := config.DefaultTheme()

	_, err := Icon(0, theme)
	assert.True(t, errors.Is(err, ErrInvalidSize))
	_, err = IconForeground(-3, theme)
	assert.True(t, errors.Is(err, ErrInvalidSize))
	_, err = Splash(1080, 0, theme)
	assert.True(t, errors.Is(err, ErrInvalidSize))
}

func TestGeneratorsUseInjectedTheme(t *testing.T) {
	theme := config.DefaultTheme()
	theme.Background = color.NRGBA{R: 1, G: 2, B: 3, A: 255}
	theme.Bricks = []color.NRGBA{{R: 9, A: 255}}

	c, err := Splash(1080, 1920, theme)
	require.NoError(t, err)
	assert.Equal(t, theme.Background, c.At(0, 0))
	b := SplashBricks(1080, 1920)[7]
	assert.Equal(t, theme.Bricks[0], c.At((b.X0+b.X1)/2, (b.Y0+b.Y1)/2))

	assert.Equal(t, render.Opaque(config.BrickColors[0]), config.DefaultTheme().Bricks[0])
}
