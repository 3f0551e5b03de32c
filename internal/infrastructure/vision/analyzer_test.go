package vision

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leon37/RoastMaster/internal/model"
)

type stubFaces struct {
	boxes []image.Rectangle
	calls int
}

func (s *stubFaces) DetectFaces(gray Grayscale) []image.Rectangle {
	s.calls++
	return s.boxes
}

type stubEyes struct {
	n         int
	seenFaces int
}

func (s *stubEyes) DetectEyes(gray Grayscale, faces []image.Rectangle) []image.Point {
	s.seenFaces = len(faces)
	pts := make([]image.Point, s.n)
	for i := range pts {
		pts[i] = image.Pt(i, i)
	}
	return pts
}

func writePNG(t *testing.T, w, h int, c color.RGBA) string {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	fill(img, c)

	path := filepath.Join(t.TempDir(), "photo.png")
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()
	require.NoError(t, png.Encode(f, img))
	return path
}

func TestAnalyze_NoFaces(t *testing.T) {
	path := writePNG(t, 800, 600, color.RGBA{R: 240, G: 240, B: 240, A: 255})
	faces := &stubFaces{}
	a := NewAnalyzer(faces, nil)

	got, err := a.Analyze(path)
	require.NoError(t, err)

	assert.Equal(t, 1, faces.calls)
	assert.Equal(t, 0, got.Faces.Count)
	assert.Empty(t, got.Faces.Features)
	assert.NotNil(t, got.Faces.Features)
	assert.False(t, got.Objects.Glasses)
	assert.False(t, got.Objects.MultiplePeople)
	assert.Equal(t, model.ThemeBright, got.Colors.Theme)
	assert.Equal(t, "high", got.Composition.Resolution)
	assert.Equal(t, "landscape", got.Composition.Orientation)
}

func TestAnalyze_FacesAndGlasses(t *testing.T) {
	path := writePNG(t, 400, 600, color.RGBA{R: 10, G: 10, B: 10, A: 255})
	faces := &stubFaces{boxes: []image.Rectangle{
		image.Rect(0, 0, 250, 250),
		image.Rect(10, 10, 90, 90),
	}}
	eyes := &stubEyes{n: 5}

	got, err := NewAnalyzer(faces, eyes).Analyze(path)
	require.NoError(t, err)

	assert.Equal(t, 2, eyes.seenFaces)
	require.Equal(t, 2, got.Faces.Count)
	assert.Equal(t, model.FaceLarge, got.Faces.Features[0].Size)
	assert.Equal(t, model.FaceSmall, got.Faces.Features[1].Size)
	assert.True(t, got.Objects.MultiplePeople)
	assert.True(t, got.Objects.Glasses, "5 eyes > 2*2 faces")
	assert.Equal(t, model.ThemeDark, got.Colors.Theme)
	assert.Equal(t, "low", got.Composition.Resolution)
	assert.Equal(t, "portrait", got.Composition.Orientation)
}

func TestAnalyze_EyesWithinExpectedCount(t *testing.T) {
	faces := &stubFaces{boxes: []image.Rectangle{image.Rect(0, 0, 150, 150)}}
	got := NewAnalyzer(faces, &stubEyes{n: 2}).AnalyzeImage(image.NewRGBA(image.Rect(0, 0, 300, 300)))

	assert.False(t, got.Objects.Glasses)
	assert.False(t, got.Objects.MultiplePeople)
	assert.Equal(t, model.FaceMedium, got.Faces.Features[0].Size)
}

func TestAnalyze_NotFound(t *testing.T) {
	a := NewAnalyzer(&stubFaces{}, nil)

	_, err := a.Analyze(filepath.Join(t.TempDir(), "missing.jpg"))
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestAnalyze_DecodeError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "notes.jpg")
	require.NoError(t, os.WriteFile(path, []byte("definitely not an image"), 0o600))

	_, err := NewAnalyzer(&stubFaces{}, nil).Analyze(path)
	assert.ErrorIs(t, err, ErrDecode)
}

func TestAddDistinct(t *testing.T) {
	var pts []image.Point
	pts = addDistinct(pts, image.Pt(10, 10), 5)
	pts = addDistinct(pts, image.Pt(12, 11), 5)
	pts = addDistinct(pts, image.Pt(30, 10), 5)
	assert.Len(t, pts, 2)
}

func TestNewGrayscale(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 4, 3))
	g := NewGrayscale(img)
	assert.Equal(t, 3, g.Rows)
	assert.Equal(t, 4, g.Cols)
	assert.Len(t, g.Pixels, 12)
}

func TestNewPigoFaceDetector_MissingCascade(t *testing.T) {
	_, err := NewPigoFaceDetector(filepath.Join(t.TempDir(), "facefinder"), 20, 5)
	assert.Error(t, err)

	_, err = NewPuplocEyeDetector(filepath.Join(t.TempDir(), "puploc"))
	assert.Error(t, err)
}
