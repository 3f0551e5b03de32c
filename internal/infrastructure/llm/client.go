package llm

import (
	"context"
	"errors"
	"strings"
)

var (
	// ErrNotConfigured 没有配置 API Key，所有调用直接走兜底文案
	ErrNotConfigured = errors.New("llm provider not configured")
	// ErrEmptyResponse 接口返回了，但没有任何可用文本
	ErrEmptyResponse = errors.New("llm returned empty response")
)

const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Message 历史对话中的一条
type Message struct {
	Role    string
	Content string
}

// CompletionRequest 一次文本生成请求
type CompletionRequest struct {
	System      string
	History     []Message
	Prompt      string
	MaxTokens   int
	Temperature float32
}

// Provider 定义了 LLM 的通用行为
// 成功返回非空文本；失败一律返回 error，由调用方决定兜底
type Provider interface {
	Name() string
	Complete(ctx context.Context, req CompletionRequest) (string, error)
}

// Options 对应配置文件里的 llm 段
type Options struct {
	Provider string
	APIKey   string
	BaseURL  string
	Model    string
}

const placeholderKey = "your_api_key_here"

// New 按配置选择具体实现；没有 Key 时返回 Disabled
func New(ctx context.Context, opts Options) (Provider, error) {
	key := strings.TrimSpace(opts.APIKey)
	if key == "" || key == placeholderKey {
		return Disabled{}, nil
	}

	switch strings.ToLower(opts.Provider) {
	case "", "openai", "deepseek":
		return NewOpenAIClient(key, opts.BaseURL, opts.Model), nil
	case "gemini":
		return NewGeminiClient(ctx, key, opts.Model)
	default:
		return nil, errors.New("unknown llm provider: " + opts.Provider)
	}
}

// Disabled 未配置时的占位实现
type Disabled struct{}

func (Disabled) Name() string { return "disabled" }

func (Disabled) Complete(context.Context, CompletionRequest) (string, error) {
	return "", ErrNotConfigured
}
