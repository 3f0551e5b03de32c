package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/leon37/RoastMaster/internal/infrastructure/vision"
	"github.com/leon37/RoastMaster/internal/model"
)

// ErrInvalidInput 调用方的问题（非图片、缺少内容），直接拒绝
var ErrInvalidInput = errors.New("invalid input")

// FeatureExtractor 图片特征提取，vision.Analyzer 实现了它
type FeatureExtractor interface {
	Analyze(path string) (*model.FeatureSummary, error)
}

// Upload 上传文件的最小描述，和 HTTP 框架无关
type Upload struct {
	Filename    string
	ContentType string
	Body        io.Reader
}

// PhotoResult 返回给前端的完整结果 (VO)
type PhotoResult struct {
	Roast    string                `json:"roast"`
	Features *model.FeatureSummary `json:"features"`
	Style    model.Style           `json:"style"`
}

// PhotoService 上传 -> 临时文件 -> 分析 -> 吐槽 -> 删除临时文件
type PhotoService struct {
	extractor FeatureExtractor
	roaster   *RoastService
	uploadDir string
}

func NewPhotoService(extractor FeatureExtractor, roaster *RoastService, uploadDir string) *PhotoService {
	if uploadDir == "" {
		uploadDir = os.TempDir()
	}
	return &PhotoService{
		extractor: extractor,
		roaster:   roaster,
		uploadDir: uploadDir,
	}
}

// RoastUpload 处理一次完整的上传吐槽请求
func (s *PhotoService) RoastUpload(ctx context.Context, up Upload, style model.Style) (*PhotoResult, error) {
	if !strings.HasPrefix(up.ContentType, "image/") {
		return nil, fmt.Errorf("%w: file must be an image", ErrInvalidInput)
	}

	path, err := s.saveTemp(up)
	if err != nil {
		return nil, err
	}
	// 无论成功失败都删掉临时文件，删不掉只记日志，不重试
	defer func() {
		if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
			slog.Warn("删除临时文件失败", "path", path, "error", err)
		}
	}()

	features, err := s.extractor.Analyze(path)
	if err != nil {
		if errors.Is(err, vision.ErrDecode) {
			return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		return nil, fmt.Errorf("analyze photo: %w", err)
	}

	slog.Info("图片分析完成，开始生成吐槽",
		"faces", features.Faces.Count,
		"theme", features.Colors.Theme,
		"style", style)

	return &PhotoResult{
		Roast:    s.roaster.Roast(ctx, features, style),
		Features: features,
		Style:    style,
	}, nil
}

// saveTemp 文件名用 uuid，不信任客户端传来的文件名
func (s *PhotoService) saveTemp(up Upload) (string, error) {
	if err := os.MkdirAll(s.uploadDir, 0o755); err != nil {
		return "", fmt.Errorf("create upload dir: %w", err)
	}

	path := filepath.Join(s.uploadDir, uuid.NewString()+safeExt(up.Filename))
	f, err := os.OpenFile(path, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o600)
	if err != nil {
		return "", fmt.Errorf("create temp file: %w", err)
	}

	if _, err := io.Copy(f, up.Body); err != nil {
		f.Close()
		os.Remove(path)
		return "", fmt.Errorf("write temp file: %w", err)
	}
	if err := f.Close(); err != nil {
		os.Remove(path)
		return "", fmt.Errorf("close temp file: %w", err)
	}
	return path, nil
}

func safeExt(filename string) string {
	ext := strings.ToLower(filepath.Ext(filepath.Base(filename)))
	if len(ext) > 6 {
		return ""
	}
	for _, r := range ext[min(1, len(ext)):] {
		if (r < 'a' || r > 'z') && (r < '0' || r > '9') {
			return ""
		}
	}
	return ext
}
