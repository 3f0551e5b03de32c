package vision

import (
	"image"

	pigo "github.com/esimov/pigo/core"
)

// Grayscale 是检测器的输入：按行存储的亮度网格
type Grayscale struct {
	Pixels []uint8
	Rows   int
	Cols   int
}

// NewGrayscale 把彩色图转成亮度网格，人脸和眼睛检测共用一份
func NewGrayscale(img image.Image) Grayscale {
	b := img.Bounds()
	return Grayscale{
		Pixels: pigo.RgbToGrayscale(img),
		Rows:   b.Dy(),
		Cols:   b.Dx(),
	}
}

func (g Grayscale) params() pigo.ImageParams {
	return pigo.ImageParams{
		Pixels: g.Pixels,
		Rows:   g.Rows,
		Cols:   g.Cols,
		Dim:    g.Cols,
	}
}

// FaceDetector 在亮度网格上找人脸，没有结果时返回空切片而不是报错
type FaceDetector interface {
	DetectFaces(gray Grayscale) []image.Rectangle
}

// EyeDetector 在同一张亮度网格上定位眼睛，以人脸框为种子
type EyeDetector interface {
	DetectEyes(gray Grayscale, faces []image.Rectangle) []image.Point
}

// NoEyes 眼睛模型加载失败时的降级实现
type NoEyes struct{}

func (NoEyes) DetectEyes(Grayscale, []image.Rectangle) []image.Point { return nil }
