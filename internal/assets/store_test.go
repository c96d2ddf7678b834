package assets

import (
	"image"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"brick-breaker-assets/internal/config"
	"brick-breaker-assets/pkg/render"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnsureDirIsIdempotent(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "assets")
	s := NewStore(dir, nil)

	require.NoError(t, s.EnsureDir())
	require.NoError(t, s.EnsureDir())

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestEnsureDirFailsOnFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), "taken")
	require.NoError(t, os.WriteFile(file, nil, 0o644))

	assert.Error(t, NewStore(file, nil).EnsureDir())
}

func TestSaveEncodesOpaqueAsRGB(t *testing.T) {
	logger, hook := test.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)
	s := NewStore(t.TempDir(), logger)

	c := render.NewOpaqueCanvas(12, 8, config.BackgroundColor)
	path, err := s.Save("icon.png", c)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(s.Dir(), "icon.png"), path)

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	img, err := png.Decode(f)
	require.NoError(t, err)

	assert.Equal(t, image.Rect(0, 0, 12, 8), img.Bounds())
	_, isRGBA := img.(*image.RGBA)
	assert.True(t, isRGBA, "opaque PNG should decode without an alpha channel, got %T", img)

	require.Len(t, hook.AllEntries(), 1)
	assert.Equal(t, path, hook.LastEntry().Data["path"])
}

func TestSaveKeepsAlpha(t *testing.T) {
	s := NewStore(t.TempDir(), nil)
	c := render.NewTransparentCanvas(6, 6)
	c.FillRect(0, 0, 2, 2, config.ForegroundHighlightColor)

	path, err := s.Save("fg.png", c)
	require.NoError(t, err)

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	img, err := png.Decode(f)
	require.NoError(t, err)

	nrgba, ok := img.(*image.NRGBA)
	require.True(t, ok, "got %T", img)
	assert.Equal(t, uint8(0), nrgba.NRGBAAt(5, 5).A)
	assert.Equal(t, config.ForegroundHighlightColor, nrgba.NRGBAAt(1, 1))
}

func TestSaveLeavesNoTempFiles(t *testing.T) {
	s := NewStore(t.TempDir(), nil)
	_, err := s.Save("a.png", render.NewTransparentCanvas(2, 2))
	require.NoError(t, err)

	entries, err := os.ReadDir(s.Dir())
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "a.png", entries[0].Name())
}

func TestSaveIntoMissingDirFails(t *testing.T) {
	s := NewStore(filepath.Join(t.TempDir(), "missing"), nil)
	_, err := s.Save("a.png", render.NewTransparentCanvas(2, 2))
	assert.Error(t, err)
}
