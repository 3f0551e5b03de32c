package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/leon37/RoastMaster/internal/config"
	"github.com/leon37/RoastMaster/internal/infrastructure/llm"
	"github.com/leon37/RoastMaster/internal/infrastructure/vision"
	"github.com/leon37/RoastMaster/internal/metrics"
	"github.com/leon37/RoastMaster/internal/service"
)

// NewAnalyzer 加载级联模型
// 人脸模型加载失败直接返回错误；眼睛模型缺失只告警，按"没有眼睛"处理
func NewAnalyzer(conf config.VisionConfig) (*vision.Analyzer, error) {
	faces, err := vision.NewPigoFaceDetector(conf.FaceCascade, conf.MinFaceSize, conf.QualityThreshold)
	if err != nil {
		return nil, fmt.Errorf("load face cascade: %w", err)
	}

	var eyes vision.EyeDetector = vision.NoEyes{}
	eyeDetector, err := vision.NewPuplocEyeDetector(conf.EyeCascade)
	if err != nil {
		slog.Warn("眼睛检测模型加载失败，眼镜判断将被跳过", "path", conf.EyeCascade, "error", err)
	} else {
		eyes = eyeDetector
	}

	return vision.NewAnalyzer(faces, eyes), nil
}

// NewRoastService 按配置挑选文本模型，未配置 Key 时全部走兜底文案
func NewRoastService(ctx context.Context, conf config.LLMConfig, m metrics.Metrics) (*service.RoastService, error) {
	provider, err := llm.New(ctx, llm.Options{
		Provider: conf.Provider,
		APIKey:   conf.APIKey,
		BaseURL:  conf.BaseURL,
		Model:    conf.Model,
	})
	if err != nil {
		return nil, fmt.Errorf("init llm provider: %w", err)
	}
	if _, disabled := provider.(llm.Disabled); disabled {
		slog.Warn("未配置 LLM API Key，所有吐槽将使用固定文案")
	} else {
		slog.Info("LLM 已就绪", "provider", provider.Name(), "model", conf.Model)
	}

	return service.NewRoastService(provider, m, conf.Timeout), nil
}
