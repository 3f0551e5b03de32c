package vision

import (
	"errors"
	"fmt"
	"image"
	"io"
	"io/fs"
	"log/slog"
	"os"

	"github.com/disintegration/imaging"
	_ "golang.org/x/image/webp" // 注册 webp 解码器，手机上传的图经常是 webp

	"github.com/leon37/RoastMaster/internal/model"
)

var (
	ErrNotFound = errors.New("image not found")
	ErrDecode   = errors.New("image decode failed")
)

// Analyzer 图片特征提取器，本身无状态，可并发调用
type Analyzer struct {
	faces FaceDetector
	eyes  EyeDetector
}

// NewAnalyzer 构造函数；eyes 为 nil 时不做眼睛检测
func NewAnalyzer(faces FaceDetector, eyes EyeDetector) *Analyzer {
	if eyes == nil {
		eyes = NoEyes{}
	}
	return &Analyzer{faces: faces, eyes: eyes}
}

// Analyze 读取并分析磁盘上的图片
func (a *Analyzer) Analyze(path string) (*model.FeatureSummary, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return nil, err
	}
	defer f.Close()

	img, err := Decode(f)
	if err != nil {
		return nil, err
	}
	return a.AnalyzeImage(img), nil
}

// Decode 解码并按 EXIF 方向摆正
func Decode(r io.Reader) (image.Image, error) {
	img, err := imaging.Decode(r, imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}
	return img, nil
}

// AnalyzeImage 对已解码的图片提取特征
func (a *Analyzer) AnalyzeImage(img image.Image) *model.FeatureSummary {
	bounds := img.Bounds()

	// 1. 转灰度，两个检测器共用
	gray := NewGrayscale(img)

	// 2. 人脸
	boxes := a.faces.DetectFaces(gray)
	faces := model.FaceStats{
		Count:    len(boxes),
		Features: make([]model.FaceFeature, 0, len(boxes)),
	}
	for _, box := range boxes {
		faces.Features = append(faces.Features, DescribeFace(box.Dx(), box.Dy()))
	}

	// 3. 眼睛数量远多于人脸数量时，猜是戴了眼镜
	eyes := a.eyes.DetectEyes(gray, boxes)
	objects := model.ObjectHints{
		Glasses:        len(eyes) > len(boxes)*2,
		MultiplePeople: len(boxes) > 1,
	}

	summary := &model.FeatureSummary{
		Faces:       faces,
		Objects:     objects,
		Colors:      AnalyzeColors(img),
		Composition: AnalyzeComposition(bounds.Dx(), bounds.Dy()),
	}

	slog.Debug("图片分析完成",
		"faces", faces.Count,
		"eyes", len(eyes),
		"theme", summary.Colors.Theme,
		"width", bounds.Dx(),
		"height", bounds.Dy())

	return summary
}
