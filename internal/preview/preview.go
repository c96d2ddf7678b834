// internal/preview/preview.go
package preview

import (
	"errors"
	"fmt"
	"image/png"
	"os"
	"time"

	"brick-breaker-assets/internal/app"
	"brick-breaker-assets/internal/state"
	"brick-breaker-assets/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

const (
	ScreenWidth  = 540
	ScreenHeight = 990
	MaxDeltaTime = 0.06
	captionSpace = 30
)

// Window is the ebiten.Game that shows generated assets.
type Window struct {
	stateMachine   *state.StateMachine
	lastUpdateTime time.Time
}

func (w *Window) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	now := time.Now()
	deltaTime := now.Sub(w.lastUpdateTime).Seconds()
	if deltaTime > MaxDeltaTime {
		deltaTime = MaxDeltaTime
	}
	w.lastUpdateTime = now
	w.stateMachine.Update(deltaTime)
	return nil
}

func (w *Window) Draw(screen *ebiten.Image) {
	w.stateMachine.Draw(screen)
}

func (w *Window) Layout(outsideWidth, outsideHeight int) (int, int) {
	return ScreenWidth, ScreenHeight
}

// Run reads the written PNG files back and shows them until the window is closed.
func Run(results []app.Result) error {
	views := make([]state.View, 0, len(results))
	for _, r := range results {
		f, err := os.Open(r.Path)
		if err != nil {
			return fmt.Errorf("failed to open %s for preview: %w", r.Path, err)
		}
		img, err := png.Decode(f)
		f.Close()
		if err != nil {
			return fmt.Errorf("failed to decode %s for preview: %w", r.Path, err)
		}
		img = render.Fit(img, ScreenWidth, ScreenHeight-captionSpace)
		views = append(views, state.NewView(r.Name, r.Width, r.Height, img))
	}

	sm := state.NewStateMachine()
	sm.SetState(state.NewViewState(sm, views, 0))

	ebiten.SetWindowSize(ScreenWidth, ScreenHeight)
	ebiten.SetWindowTitle("Brick Breaker assets")
	ebiten.SetWindowResizable(true)
	err := ebiten.RunGame(&Window{stateMachine: sm, lastUpdateTime: time.Now()})
	if errors.Is(err, ebiten.Termination) {
		return nil
	}
	return err
}
