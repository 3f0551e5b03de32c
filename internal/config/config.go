package config

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Server ServerConfig `mapstructure:"server"`
	LLM    LLMConfig    `mapstructure:"llm"`
	Vision VisionConfig `mapstructure:"vision"`
}

type ServerConfig struct {
	Port        string `mapstructure:"port"`
	Mode        string `mapstructure:"mode"` // debug | release
	UploadDir   string `mapstructure:"upload_dir"`
	MaxUploadMB int64  `mapstructure:"max_upload_mb"`
}

type LLMConfig struct {
	Provider string        `mapstructure:"provider"` // openai | deepseek | gemini
	APIKey   string        `mapstructure:"api_key"`
	BaseURL  string        `mapstructure:"base_url"`
	Model    string        `mapstructure:"model"`
	Timeout  time.Duration `mapstructure:"timeout"`
}

type VisionConfig struct {
	FaceCascade      string  `mapstructure:"face_cascade"`
	EyeCascade       string  `mapstructure:"eye_cascade"`
	MinFaceSize      int     `mapstructure:"min_face_size"`
	QualityThreshold float64 `mapstructure:"quality_threshold"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", ":8001")
	v.SetDefault("server.mode", "debug")
	v.SetDefault("server.upload_dir", "uploads")
	v.SetDefault("server.max_upload_mb", 10)

	v.SetDefault("llm.provider", "openai")
	v.SetDefault("llm.api_key", "")
	v.SetDefault("llm.base_url", "")
	v.SetDefault("llm.model", "gpt-4")
	v.SetDefault("llm.timeout", 20*time.Second)

	// 为空时使用内置的 pigo 模型
	v.SetDefault("vision.face_cascade", "")
	v.SetDefault("vision.eye_cascade", "")
	v.SetDefault("vision.min_face_size", 20)
	v.SetDefault("vision.quality_threshold", 5.0)
}

// LoadConfig 读取配置文件
// 查找顺序: 环境变量 > .env > config.yaml > 默认值
// 例如 ROASTMASTER_LLM_API_KEY 会覆盖 yaml 里的 llm.api_key
func LoadConfig(paths ...string) (*Config, error) {
	// .env 不存在不算错误，本地开发用
	if err := godotenv.Load(); err != nil {
		slog.Debug(".env 文件不存在，仅使用环境变量")
	}

	v := viper.New()
	v.SetConfigName("config") // 配置文件名 (不带扩展名)
	v.SetConfigType("yaml")   // 文件类型
	if len(paths) == 0 {
		paths = []string{"."}
	}
	for _, p := range paths {
		v.AddConfigPath(p)
	}

	v.SetEnvPrefix("ROASTMASTER")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("读取配置文件失败: %w", err)
		}
		slog.Info("未找到 config.yaml，使用默认配置和环境变量")
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("解析配置文件失败: %w", err)
	}

	return &cfg, nil
}

// MaxUploadBytes 上传大小上限
func (s ServerConfig) MaxUploadBytes() int64 {
	if s.MaxUploadMB <= 0 {
		return 10 << 20
	}
	return s.MaxUploadMB << 20
}
