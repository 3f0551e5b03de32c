package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/leon37/RoastMaster/internal/app"
	"github.com/leon37/RoastMaster/internal/config"
	"github.com/leon37/RoastMaster/internal/metrics"
	"github.com/leon37/RoastMaster/internal/model"
)

// 手动验证 LLM 配置：每种风格吐槽一次，再聊两句
func main() {
	conf, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("无法加载配置: %v", err)
	}
	log.Println("配置加载成功")

	ctx := context.Background()
	roaster, err := app.NewRoastService(ctx, conf.LLM, &metrics.NoopMetrics{})
	if err != nil {
		log.Fatalf("初始化 LLM 失败: %v", err)
	}

	// 模拟：一张室内自拍的分析结果
	features := &model.FeatureSummary{
		Faces: model.FaceStats{
			Count:    1,
			Features: []model.FaceFeature{{Width: 240, Height: 260, Ratio: 0.92, Size: model.FaceLarge}},
		},
		Objects:     model.ObjectHints{Glasses: true},
		Colors:      model.ColorStats{Theme: model.ThemeDark, Brightness: 42},
		Composition: model.Composition{AspectRatio: 0.75, Resolution: "high", Orientation: "portrait"},
	}

	for _, style := range []model.Style{model.StyleSavage, model.StylePlayful, model.StyleSarcastic, model.StyleAbsurd} {
		fmt.Printf("\n-------- 风格: %s --------\n", style)
		start := time.Now()
		roast := roaster.Roast(ctx, features, style)
		fmt.Printf("✅ (耗时 %v) %s\n", time.Since(start), roast)
	}

	testCases := []string{
		"hello there",
		"My cat thinks you are overrated",
		"I bet you can't roast my cooking",
	}
	for _, msg := range testCases {
		fmt.Printf("\n-------- 聊天: %s --------\n", msg)
		fmt.Printf("chat:     %s\n", roaster.Chat(ctx, msg, nil))
		fmt.Printf("comeback: %s\n", roaster.Comeback(ctx, msg, nil))
	}
}
