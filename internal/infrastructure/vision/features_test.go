package vision

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/leon37/RoastMaster/internal/model"
)

func TestSizeBucket(t *testing.T) {
	tests := []struct {
		width int
		want  model.FaceSize
	}{
		{width: 250, want: model.FaceLarge},
		{width: 201, want: model.FaceLarge},
		{width: 200, want: model.FaceMedium},
		{width: 150, want: model.FaceMedium},
		{width: 100, want: model.FaceMedium},
		{width: 99, want: model.FaceSmall},
		{width: 80, want: model.FaceSmall},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, SizeBucket(tt.width), "width=%d", tt.width)
	}
}

func TestDescribeFace(t *testing.T) {
	f := DescribeFace(120, 60)
	assert.Equal(t, 2.0, f.Ratio)
	assert.Equal(t, model.FaceMedium, f.Size)

	zero := DescribeFace(50, 0)
	assert.Equal(t, 1.0, zero.Ratio, "zero height defaults ratio to 1")
	assert.Equal(t, model.FaceSmall, zero.Size)
}

func TestClassifyTheme(t *testing.T) {
	tests := []struct {
		name    string
		r, g, b float64
		want    model.ColorTheme
	}{
		{"bright", 230, 230, 230, model.ThemeBright},
		{"dark", 10, 10, 10, model.ThemeDark},
		{"red", 200, 50, 50, model.ThemeRed},
		{"green", 40, 180, 60, model.ThemeGreen},
		{"blue", 30, 60, 190, model.ThemeBlue},
		{"mixed", 120, 100, 110, model.ThemeMixed},
		{"red margin not exceeded", 130, 100, 100, model.ThemeMixed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ClassifyTheme(tt.r, tt.g, tt.b)
			assert.Equal(t, tt.want, got.Theme)
			assert.InDelta(t, (tt.r+tt.g+tt.b)/3, got.Brightness, 1e-9)
		})
	}
}

func TestAnalyzeColors_UniformImage(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 640, 480))
	fill(img, color.RGBA{R: 200, G: 50, B: 50, A: 255})

	got := AnalyzeColors(img)
	assert.Equal(t, model.ThemeRed, got.Theme)
	assert.InDelta(t, 100.0, got.Brightness, 1e-9)
}

func TestAnalyzeColors_EmptyImage(t *testing.T) {
	got := AnalyzeColors(image.NewRGBA(image.Rect(0, 0, 0, 0)))
	assert.Equal(t, model.ThemeDark, got.Theme)
}

func TestAnalyzeComposition(t *testing.T) {
	landscape := AnalyzeComposition(1024, 768)
	assert.InDelta(t, 1024.0/768.0, landscape.AspectRatio, 1e-9)
	assert.Equal(t, "high", landscape.Resolution)
	assert.Equal(t, "landscape", landscape.Orientation)

	portrait := AnalyzeComposition(300, 600)
	assert.Equal(t, "low", portrait.Resolution)
	assert.Equal(t, "portrait", portrait.Orientation)

	square := AnalyzeComposition(500, 500)
	assert.Equal(t, "high", square.Resolution)
	assert.Equal(t, "portrait", square.Orientation)
}

func fill(img *image.RGBA, c color.RGBA) {
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			img.SetRGBA(x, y, c)
		}
	}
}
