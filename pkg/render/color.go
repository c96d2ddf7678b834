// pkg/render/color.go
package render

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// Theme holds all the color definitions needed to draw the game assets.
type Theme struct {
	Background          color.NRGBA
	Disc                color.NRGBA
	Ball                color.NRGBA
	Highlight           color.NRGBA
	ForegroundHighlight color.NRGBA
	Outline             color.NRGBA
	Bricks              []color.NRGBA
}

// Brick returns the palette entry for index i, cycling through the palette.
func (t Theme) Brick(i int) color.NRGBA {
	n := len(t.Bricks)
	if n == 0 {
		return t.Outline
	}
	i %= n
	if i < 0 {
		i += n
	}
	return t.Bricks[i]
}

// Clone returns a copy whose palette does not share memory with t.
func (t Theme) Clone() Theme {
	c := t
	c.Bricks = append([]color.NRGBA(nil), t.Bricks...)
	return c
}

// Opaque returns c with full alpha.
func Opaque(c color.NRGBA) color.NRGBA {
	c.A = 0xff
	return c
}

// ParseHexColor parses "#rrggbb" or "#rrggbbaa". The leading '#' is optional.
func ParseHexColor(s string) (color.NRGBA, error) {
	h := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(h) != 6 && len(h) != 8 {
		return color.NRGBA{}, fmt.Errorf("invalid hex color %q", s)
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("invalid hex color %q: %w", s, err)
	}
	if len(h) == 6 {
		v = v<<8 | 0xff
	}
	return color.NRGBA{
		R: uint8(v >> 24),
		G: uint8(v >> 16),
		B: uint8(v >> 8),
		A: uint8(v),
	}, nil
}

// HexColor formats c as "#rrggbb", or "#rrggbbaa" when it is not fully opaque.
func HexColor(c color.NRGBA) string {
	if c.A == 0xff {
		return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
	}
	return fmt.Sprintf("#%02x%02x%02x%02x", c.R, c.G, c.B, c.A)
}
