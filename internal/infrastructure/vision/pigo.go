package vision

import (
	"fmt"
	"image"
	"math"

	pigo "github.com/esimov/pigo/core"
)

const (
	defaultShiftFactor = 0.1
	defaultScaleFactor = 1.1
	clusterIoU         = 0.2
	puplocPerturbs     = 63
)

// PigoFaceDetector 基于 pigo facefinder 级联分类器
// Unpack 之后分类器只读，可以被多个请求并发使用
type PigoFaceDetector struct {
	classifier       *pigo.Pigo
	minSize          int
	qualityThreshold float32
}

// NewPigoFaceDetector 加载 facefinder 模型，cascadePath 为空时用内置模型
func NewPigoFaceDetector(cascadePath string, minSize int, qualityThreshold float64) (*PigoFaceDetector, error) {
	data, err := loadCascade(cascadePath, FaceCascadeName)
	if err != nil {
		return nil, fmt.Errorf("读取人脸模型失败: %w", err)
	}

	classifier, err := pigo.NewPigo().Unpack(data)
	if err != nil {
		return nil, fmt.Errorf("解析人脸模型失败: %w", err)
	}

	if minSize <= 0 {
		minSize = 20
	}
	return &PigoFaceDetector{
		classifier:       classifier,
		minSize:          minSize,
		qualityThreshold: float32(qualityThreshold),
	}, nil
}

func (d *PigoFaceDetector) DetectFaces(gray Grayscale) []image.Rectangle {
	maxSize := max(gray.Rows, gray.Cols)
	if maxSize < d.minSize {
		return nil
	}

	cp := pigo.CascadeParams{
		MinSize:     d.minSize,
		MaxSize:     maxSize,
		ShiftFactor: defaultShiftFactor,
		ScaleFactor: defaultScaleFactor,
		ImageParams: gray.params(),
	}

	dets := d.classifier.RunCascade(cp, 0.0)
	dets = d.classifier.ClusterDetections(dets, clusterIoU)

	faces := make([]image.Rectangle, 0, len(dets))
	for _, det := range dets {
		if det.Q < d.qualityThreshold {
			continue
		}
		half := det.Scale / 2
		faces = append(faces, image.Rect(det.Col-half, det.Row-half, det.Col+half, det.Row+half))
	}
	return faces
}

// PuplocEyeDetector 基于 pigo puploc 瞳孔定位模型
// 每张脸在两个尺度上各定位左右眼，去重后计数；
// 镜框反光会让定位点散开，所以眼镜照往往数出超过 2 只"眼睛"
type PuplocEyeDetector struct {
	cascade *pigo.PuplocCascade
}

// NewPuplocEyeDetector 加载 puploc 模型，cascadePath 为空时用内置模型
func NewPuplocEyeDetector(cascadePath string) (*PuplocEyeDetector, error) {
	data, err := loadCascade(cascadePath, EyeCascadeName)
	if err != nil {
		return nil, fmt.Errorf("读取瞳孔模型失败: %w", err)
	}

	cascade, err := pigo.NewPuplocCascade().UnpackCascade(data)
	if err != nil {
		return nil, fmt.Errorf("解析瞳孔模型失败: %w", err)
	}
	return &PuplocEyeDetector{cascade: cascade}, nil
}

var eyeSeedScales = []float64{1.0, 1.3}

func (d *PuplocEyeDetector) DetectEyes(gray Grayscale, faces []image.Rectangle) []image.Point {
	imgParams := gray.params()

	var eyes []image.Point
	for _, face := range faces {
		size := float64(face.Dx())
		if size <= 0 {
			continue
		}
		center := image.Pt((face.Min.X+face.Max.X)/2, (face.Min.Y+face.Max.Y)/2)
		radius := size * 0.1

		for _, k := range eyeSeedScales {
			s := size * k
			seeds := []pigo.Puploc{
				{Row: center.Y - int(0.075*s), Col: center.X - int(0.175*s), Scale: float32(s * 0.25), Perturbs: puplocPerturbs},
				{Row: center.Y - int(0.075*s), Col: center.X + int(0.185*s), Scale: float32(s * 0.25), Perturbs: puplocPerturbs},
			}
			for _, seed := range seeds {
				hit := d.cascade.RunDetector(seed, imgParams, 0.0, false)
				if hit == nil || hit.Row <= 0 || hit.Col <= 0 {
					continue
				}
				eyes = addDistinct(eyes, image.Pt(hit.Col, hit.Row), radius)
			}
		}
	}
	return eyes
}

// addDistinct 距离已有点 radius 以内的视为同一只眼
func addDistinct(points []image.Point, p image.Point, radius float64) []image.Point {
	for _, q := range points {
		if math.Hypot(float64(p.X-q.X), float64(p.Y-q.Y)) <= radius {
			return points
		}
	}
	return append(points, p)
}
