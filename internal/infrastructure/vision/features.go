package vision

import (
	"image"

	"github.com/leon37/RoastMaster/internal/model"
)

const (
	largeFaceWidth = 200
	smallFaceWidth = 100

	brightThreshold = 200
	darkThreshold   = 50
	dominanceMargin = 30

	colorSamplesPerAxis = 100
	lowResolutionWidth  = 500
)

// SizeBucket 只看宽度
func SizeBucket(width int) model.FaceSize {
	switch {
	case width > largeFaceWidth:
		return model.FaceLarge
	case width < smallFaceWidth:
		return model.FaceSmall
	default:
		return model.FaceMedium
	}
}

// DescribeFace 高度为 0 时宽高比记为 1
func DescribeFace(width, height int) model.FaceFeature {
	ratio := 1.0
	if height > 0 {
		ratio = float64(width) / float64(height)
	}
	return model.FaceFeature{
		Width:  width,
		Height: height,
		Ratio:  ratio,
		Size:   SizeBucket(width),
	}
}

// ClassifyTheme 根据平均 RGB 判断色调，亮度是三通道均值
func ClassifyTheme(r, g, b float64) model.ColorStats {
	brightness := (r + g + b) / 3

	var theme model.ColorTheme
	switch {
	case brightness > brightThreshold:
		theme = model.ThemeBright
	case brightness < darkThreshold:
		theme = model.ThemeDark
	case r > g+dominanceMargin && r > b+dominanceMargin:
		theme = model.ThemeRed
	case g > r+dominanceMargin && g > b+dominanceMargin:
		theme = model.ThemeGreen
	case b > r+dominanceMargin && b > g+dominanceMargin:
		theme = model.ThemeBlue
	default:
		theme = model.ThemeMixed
	}
	return model.ColorStats{Theme: theme, Brightness: brightness}
}

// AnalyzeColors 每个方向大约采样 100 个点，求平均色
func AnalyzeColors(img image.Image) model.ColorStats {
	bounds := img.Bounds()
	rowStep := max(1, bounds.Dy()/colorSamplesPerAxis)
	colStep := max(1, bounds.Dx()/colorSamplesPerAxis)

	var sumR, sumG, sumB float64
	var n int
	for y := bounds.Min.Y; y < bounds.Max.Y; y += rowStep {
		for x := bounds.Min.X; x < bounds.Max.X; x += colStep {
			r, g, b, _ := img.At(x, y).RGBA()
			sumR += float64(r >> 8)
			sumG += float64(g >> 8)
			sumB += float64(b >> 8)
			n++
		}
	}
	if n == 0 {
		return ClassifyTheme(0, 0, 0)
	}
	return ClassifyTheme(sumR/float64(n), sumG/float64(n), sumB/float64(n))
}

// AnalyzeComposition 宽高比、清晰度分档、横竖构图
func AnalyzeComposition(width, height int) model.Composition {
	c := model.Composition{
		Resolution:  "high",
		Orientation: "portrait",
	}
	if height > 0 {
		c.AspectRatio = float64(width) / float64(height)
	}
	if width < lowResolutionWidth {
		c.Resolution = "low"
	}
	if width > height {
		c.Orientation = "landscape"
	}
	return c
}
