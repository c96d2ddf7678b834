// pkg/render/canvas.go
package render

import (
	"image"
	"image/color"

	"golang.org/x/image/draw"
	"golang.org/x/image/vector"
)

// kappa is the control point distance for approximating a quarter ellipse
// with one cubic Bézier segment.
const kappa = 0.5522847498

// Canvas is an in-memory raster that shapes are drawn onto before it is
// encoded. Boxes passed to the drawing methods are inclusive on both ends.
type Canvas struct {
	img    *image.NRGBA
	opaque bool
}

// NewOpaqueCanvas creates a canvas filled with bg at full alpha.
func NewOpaqueCanvas(width, height int, bg color.NRGBA) *Canvas {
	c := &Canvas{
		img:    image.NewNRGBA(image.Rect(0, 0, width, height)),
		opaque: true,
	}
	draw.Draw(c.img, c.img.Bounds(), image.NewUniform(Opaque(bg)), image.Point{}, draw.Src)
	return c
}

// NewTransparentCanvas creates a canvas with every pixel fully transparent.
func NewTransparentCanvas(width, height int) *Canvas {
	return &Canvas{img: image.NewNRGBA(image.Rect(0, 0, width, height))}
}

// Image returns the underlying buffer.
func (c *Canvas) Image() *image.NRGBA { return c.img }

// Opaque reports whether the canvas was created without an alpha channel.
func (c *Canvas) Opaque() bool { return c.opaque }

func (c *Canvas) Width() int  { return c.img.Rect.Dx() }
func (c *Canvas) Height() int { return c.img.Rect.Dy() }

// At returns the pixel at (x, y).
func (c *Canvas) At(x, y int) color.NRGBA { return c.img.NRGBAAt(x, y) }

// FillRect replaces every pixel of the box [x0,y0]-[x1,y1] with fill.
func (c *Canvas) FillRect(x0, y0, x1, y1 int, fill color.NRGBA) {
	r := boxRect(x0, y0, x1, y1).Intersect(c.img.Rect)
	if r.Empty() {
		return
	}
	draw.Draw(c.img, r, image.NewUniform(c.paint(fill)), image.Point{}, draw.Src)
}

// Rectangle fills the box and strokes its border with outline, width pixels
// thick, drawn inward from the box edges.
func (c *Canvas) Rectangle(x0, y0, x1, y1 int, fill, outline color.NRGBA, width int) {
	if width <= 0 {
		c.FillRect(x0, y0, x1, y1, fill)
		return
	}
	c.FillRect(x0, y0, x1, y1, outline)
	if x1-x0 >= 2*width && y1-y0 >= 2*width {
		c.FillRect(x0+width, y0+width, x1-width, y1-width, fill)
	}
}

// FillEllipse fills the ellipse inscribed in the box [x0,y0]-[x1,y1].
// Fully covered pixels take fill as is, alpha included. Edge pixels are
// mixed with what was there in proportion to their coverage.
func (c *Canvas) FillEllipse(x0, y0, x1, y1 int, fill color.NRGBA) {
	box := boxRect(x0, y0, x1, y1)
	if box.Empty() || box.Intersect(c.img.Rect).Empty() {
		return
	}
	mask := ellipseMask(box.Dx(), box.Dy())
	fill = c.paint(fill)

	clip := box.Intersect(c.img.Rect)
	for y := clip.Min.Y; y < clip.Max.Y; y++ {
		for x := clip.Min.X; x < clip.Max.X; x++ {
			a := mask.AlphaAt(x-box.Min.X, y-box.Min.Y).A
			switch a {
			case 0:
			case 0xff:
				c.img.SetNRGBA(x, y, fill)
			default:
				c.img.SetNRGBA(x, y, mix(c.img.NRGBAAt(x, y), fill, uint32(a)))
			}
		}
	}
}

// paint drops the alpha of colors drawn onto an opaque canvas.
func (c *Canvas) paint(clr color.NRGBA) color.NRGBA {
	if c.opaque {
		return Opaque(clr)
	}
	return clr
}

func boxRect(x0, y0, x1, y1 int) image.Rectangle {
	if x1 < x0 || y1 < y0 {
		return image.Rectangle{}
	}
	return image.Rect(x0, y0, x1+1, y1+1)
}

// ellipseMask rasterizes the ellipse inscribed in a w×h box into a coverage mask.
func ellipseMask(w, h int) *image.Alpha {
	z := vector.NewRasterizer(w, h)
	cx, cy := float32(w)/2, float32(h)/2
	rx, ry := cx, cy
	kx, ky := rx*kappa, ry*kappa

	z.MoveTo(cx+rx, cy)
	z.CubeTo(cx+rx, cy+ky, cx+kx, cy+ry, cx, cy+ry)
	z.CubeTo(cx-kx, cy+ry, cx-rx, cy+ky, cx-rx, cy)
	z.CubeTo(cx-rx, cy-ky, cx-kx, cy-ry, cx, cy-ry)
	z.CubeTo(cx+kx, cy-ry, cx+rx, cy-ky, cx+rx, cy)
	z.ClosePath()

	mask := image.NewAlpha(image.Rect(0, 0, w, h))
	z.Draw(mask, mask.Bounds(), image.Opaque, image.Point{})
	return mask
}

// mix interpolates from dst to src by a/255 in premultiplied space and
// returns the non-premultiplied result.
func mix(dst, src color.NRGBA, a uint32) color.NRGBA {
	inv := 0xff - a
	sw := uint32(src.A) * a
	dw := uint32(dst.A) * inv
	den := sw + dw
	if den == 0 {
		return color.NRGBA{}
	}
	ch := func(s, d uint8) uint8 {
		return uint8((uint32(s)*sw + uint32(d)*dw + den/2) / den)
	}
	return color.NRGBA{
		R: ch(src.R, dst.R),
		G: ch(src.G, dst.G),
		B: ch(src.B, dst.B),
		A: uint8((den + 0x7f) / 0xff),
	}
}

// Fit scales img down, keeping its aspect ratio, so that it fits in a
// maxW×maxH box. Images that already fit are returned unchanged.
func Fit(img image.Image, maxW, maxH int) image.Image {
	b := img.Bounds()
	if b.Dx() <= maxW && b.Dy() <= maxH || b.Empty() || maxW <= 0 || maxH <= 0 {
		return img
	}
	w, h := maxW, b.Dy()*maxW/b.Dx()
	if h > maxH {
		w, h = b.Dx()*maxH/b.Dy(), maxH
	}
	w, h = max(w, 1), max(h, 1)
	dst := image.NewNRGBA(image.Rect(0, 0, w, h))
	draw.ApproxBiLinear.Scale(dst, dst.Bounds(), img, b, draw.Src, nil)
	return dst
}
