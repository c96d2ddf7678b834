// internal/state/view_state.go
package state

import (
	"fmt"
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

var _ State = (*ViewState)(nil)

// View хранит один ассет, подготовленный для показа.
type View struct {
	Title  string
	Width  int // исходный размер ассета
	Height int
	Image  *ebiten.Image
}

// NewView загружает уже уменьшенное изображение в ebiten.
func NewView(title string, width, height int, img image.Image) View {
	return View{Title: title, Width: width, Height: height, Image: ebiten.NewImageFromImage(img)}
}

var (
	previewBackground = color.RGBA{60, 60, 60, 255}
	checkerDark       = color.RGBA{90, 90, 90, 255}
	captionColor      = color.RGBA{240, 240, 240, 255}
)

const (
	checkerCell   = 16
	captionHeight = 24
)

// ViewState показывает views[index]. Пробел/стрелки переключают ассеты.
type ViewState struct {
	sm    *StateMachine
	views []View
	index int
}

func NewViewState(sm *StateMachine, views []View, index int) *ViewState {
	n := len(views)
	if n > 0 {
		index = ((index % n) + n) % n
	}
	return &ViewState{sm: sm, views: views, index: index}
}

func (s *ViewState) Enter() {}

func (s *ViewState) Exit() {}

func (s *ViewState) Update(deltaTime float64) {
	if len(s.views) < 2 {
		return
	}
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeySpace), inpututil.IsKeyJustPressed(ebiten.KeyArrowRight):
		s.sm.SetState(NewViewState(s.sm, s.views, s.index+1))
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowLeft):
		s.sm.SetState(NewViewState(s.sm, s.views, s.index-1))
	}
}

func (s *ViewState) Draw(screen *ebiten.Image) {
	screen.Fill(previewBackground)
	if len(s.views) == 0 {
		text.Draw(screen, "no assets", basicfont.Face7x13, 8, 16, captionColor)
		return
	}
	v := s.views[s.index]

	sw, sh := screen.Bounds().Dx(), screen.Bounds().Dy()
	iw, ih := v.Image.Bounds().Dx(), v.Image.Bounds().Dy()
	x := (sw - iw) / 2
	y := captionHeight + (sh-captionHeight-ih)/2

	// Шахматка под изображением, чтобы была видна прозрачность.
	for cy := 0; cy < ih; cy += checkerCell {
		for cx := 0; cx < iw; cx += checkerCell {
			if (cx/checkerCell+cy/checkerCell)%2 == 0 {
				continue
			}
			cell := screen.SubImage(image.Rect(x+cx, y+cy, x+min(cx+checkerCell, iw), y+min(cy+checkerCell, ih))).(*ebiten.Image)
			cell.Fill(checkerDark)
		}
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(x), float64(y))
	screen.DrawImage(v.Image, op)

	caption := fmt.Sprintf("%d/%d %s (%dx%d)", s.index+1, len(s.views), v.Title, v.Width, v.Height)
	text.Draw(screen, caption, basicfont.Face7x13, 8, 16, captionColor)
}
