package service

import (
	"context"
	"errors"
	"log/slog"
	"math/rand/v2"
	"strings"
	"time"
	"unicode"

	"github.com/leon37/RoastMaster/internal/infrastructure/llm"
	"github.com/leon37/RoastMaster/internal/metrics"
	"github.com/leon37/RoastMaster/internal/model"
)

const (
	OpRoast    = "roast"
	OpComeback = "comeback"
	OpChat     = "chat"

	defaultTimeout = 20 * time.Second
)

// 各场景的生成参数
var (
	roastParams    = generationParams{maxTokens: 150, temperature: 0.8}
	comebackParams = generationParams{maxTokens: 80, temperature: 0.9}
	chatParams     = generationParams{maxTokens: 100, temperature: 0.9}
)

type generationParams struct {
	maxTokens   int
	temperature float32
}

// RoastService 负责把特征/聊天内容变成段子
// LLM 只是尽力而为：任何失败都落到固定文案，错误不会抛给调用方
type RoastService struct {
	llmClient llm.Provider // 依赖接口，方便替换成 Gemini 或测试桩
	metrics   metrics.Metrics
	timeout   time.Duration
	pick      func(n int) int
}

// NewRoastService 构造函数 (依赖注入)
func NewRoastService(llmClient llm.Provider, m metrics.Metrics, timeout time.Duration) *RoastService {
	if llmClient == nil {
		llmClient = llm.Disabled{}
	}
	if m == nil {
		m = &metrics.NoopMetrics{}
	}
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &RoastService{
		llmClient: llmClient,
		metrics:   m,
		timeout:   timeout,
		pick:      rand.IntN,
	}
}

// Roast 根据图片特征生成一句吐槽
func (s *RoastService) Roast(ctx context.Context, features *model.FeatureSummary, style model.Style) string {
	if features == nil {
		features = &model.FeatureSummary{}
	}

	text, ok := s.generate(ctx, OpRoast, roastParams, llm.CompletionRequest{
		System: model.RoastSystemPrompt,
		Prompt: buildRoastPrompt(features, style),
	})
	if ok {
		return text
	}
	return s.fallback(OpRoast, roastFallbacks)
}

// Comeback 针对用户的一句话回怼
func (s *RoastService) Comeback(ctx context.Context, message string, history model.ChatContext) string {
	text, ok := s.generate(ctx, OpComeback, comebackParams, llm.CompletionRequest{
		System: model.ComebackSystemPrompt,
		Prompt: buildComebackPrompt(message, history.Recent()),
	})
	if ok {
		return text
	}
	return s.fallback(OpComeback, comebackFallbacks)
}

// StandupRoutine 开场吐槽 + 特征段子 + 固定收尾
// short 固定返回 3 条；long 返回全部
func (s *RoastService) StandupRoutine(ctx context.Context, features *model.FeatureSummary, duration model.Duration) []string {
	if features == nil {
		features = &model.FeatureSummary{}
	}

	jokes := []string{standupOpening + s.Roast(ctx, features, model.StylePlayful)}

	var middle []string
	if features.Faces.Count > 1 {
		middle = append(middle, standupMultiPeople)
	}
	if features.Objects.Glasses {
		middle = append(middle, standupGlasses)
	}
	// 没有可聊的特征时用色调补位，保证 short 也有 3 条
	if len(middle) == 0 || duration == model.DurationLong {
		middle = append(middle, themeLine(features.Colors.Theme))
	}
	if duration == model.DurationLong && features.Composition.Resolution == "low" {
		middle = append(middle, standupLowRes)
	}

	jokes = append(jokes, middle...)
	jokes = append(jokes, standupClosing)

	if duration != model.DurationLong && len(jokes) > 3 {
		jokes = jokes[:3]
	}
	return jokes
}

func themeLine(theme model.ColorTheme) string {
	if line, ok := standupThemeLines[theme]; ok {
		return line
	}
	return standupThemeDefault
}

// Chat 先查关键词表，全部未命中才调用 LLM
func (s *RoastService) Chat(ctx context.Context, message string, history model.ChatContext) string {
	if reply, ok := MatchChatRule(message); ok {
		return reply
	}

	text, ok := s.generate(ctx, OpChat, chatParams, llm.CompletionRequest{
		System:  model.ChatSystemPrompt,
		History: historyMessages(history.Recent()),
		Prompt:  buildChatPrompt(message),
	})
	if ok {
		return text
	}
	s.metrics.IncrementFallback(OpChat)
	return chatFallbacks[len([]rune(message))%len(chatFallbacks)]
}

// MatchChatRule 按顺序匹配关键词组
// 关键词按词首匹配（"jokes"、"laughable" 都算 joke/laugh）；
// 短于 minPrefixKeyword 的关键词必须整词命中，"this"、"his" 不算 "hi"
func MatchChatRule(message string) (string, bool) {
	words := tokenize(message)
	for _, rule := range chatRules {
		if rule.question {
			if strings.Contains(message, "?") {
				return rule.reply, true
			}
			continue
		}
		for _, kw := range rule.keywords {
			if matchKeyword(words, kw) {
				return rule.reply, true
			}
		}
	}
	return "", false
}

const minPrefixKeyword = 4

func matchKeyword(words map[string]struct{}, kw string) bool {
	if _, ok := words[kw]; ok {
		return true
	}
	if len(kw) < minPrefixKeyword {
		return false
	}
	for w := range words {
		if strings.HasPrefix(w, kw) {
			return true
		}
	}
	return false
}

func tokenize(message string) map[string]struct{} {
	fields := strings.FieldsFunc(strings.ToLower(message), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '\''
	})
	words := make(map[string]struct{}, len(fields))
	for _, f := range fields {
		words[f] = struct{}{}
	}
	return words
}

// generate 调用 LLM 并把结果显式区分为成功/失败
func (s *RoastService) generate(ctx context.Context, op string, params generationParams, req llm.CompletionRequest) (string, bool) {
	req.MaxTokens = params.maxTokens
	req.Temperature = params.temperature

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	start := time.Now()
	text, err := s.llmClient.Complete(ctx, req)
	if err != nil {
		s.metrics.ObserveLLMRequest(s.llmClient.Name(), op, metrics.OutcomeFailure)
		if !errors.Is(err, llm.ErrNotConfigured) {
			slog.Warn("文本生成失败，使用兜底文案",
				"operation", op,
				"provider", s.llmClient.Name(),
				"elapsed", time.Since(start),
				"error", err)
		}
		return "", false
	}

	s.metrics.ObserveLLMRequest(s.llmClient.Name(), op, metrics.OutcomeSuccess)
	return FilterContent(text), true
}

func (s *RoastService) fallback(op string, lines []string) string {
	s.metrics.IncrementFallback(op)
	return lines[s.pick(len(lines))]
}
