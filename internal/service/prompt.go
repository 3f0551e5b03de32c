package service

import (
	"fmt"
	"strings"

	"github.com/leon37/RoastMaster/internal/infrastructure/llm"
	"github.com/leon37/RoastMaster/internal/model"
)

func buildRoastPrompt(f *model.FeatureSummary, style model.Style) string {
	p := style.Profile()

	var sb strings.Builder
	fmt.Fprintf(&sb, "Create a %s roast with a %s tone, %s.\n\n", p.Intensity, p.Tone, p.Examples)
	sb.WriteString("Photo analysis:\n")
	fmt.Fprintf(&sb, "- Faces detected: %d\n", f.Faces.Count)
	fmt.Fprintf(&sb, "- Face features: %s\n", describeFaces(f.Faces.Features))
	fmt.Fprintf(&sb, "- Objects: glasses=%t, multiple_people=%t\n", f.Objects.Glasses, f.Objects.MultiplePeople)
	fmt.Fprintf(&sb, "- Color theme: %s (brightness %.0f)\n", orUnknown(string(f.Colors.Theme)), f.Colors.Brightness)
	fmt.Fprintf(&sb, "- Image quality: %s resolution, %s, aspect ratio %.2f\n\n",
		orUnknown(f.Composition.Resolution), orUnknown(f.Composition.Orientation), f.Composition.AspectRatio)
	sb.WriteString("Generate ONE witty roast (max 2 sentences) that's funny but not cruel.\n")
	sb.WriteString("Focus on obvious visual elements that would be funny to comment on.")
	return sb.String()
}

func describeFaces(faces []model.FaceFeature) string {
	if len(faces) == 0 {
		return "none"
	}
	parts := make([]string, 0, len(faces))
	for _, face := range faces {
		parts = append(parts, fmt.Sprintf("%s face %dx%d (ratio %.2f)", face.Size, face.Width, face.Height, face.Ratio))
	}
	return strings.Join(parts, "; ")
}

func buildComebackPrompt(message string, history model.ChatContext) string {
	return fmt.Sprintf("User said: %q\nContext: %s\n\n"+
		"Generate a witty, clever comeback that's funny but not mean-spirited.\n"+
		"Keep it under 50 words.", message, formatContext(history))
}

func formatContext(history model.ChatContext) string {
	if len(history) == 0 {
		return "none"
	}
	lines := make([]string, 0, len(history))
	for _, turn := range history {
		lines = append(lines, fmt.Sprintf("user: %s / ai: %s", turn.User, turn.AI))
	}
	return strings.Join(lines, " | ")
}

func buildChatPrompt(message string) string {
	return fmt.Sprintf("The user just said: %q\n"+
		"Work out whether they sound friendly, annoyed, curious or bored, "+
		"and reply in a matching sassy tone. Keep it under 40 words.", message)
}

// historyMessages 把前端的对话记录转成 LLM 的多轮消息
func historyMessages(history model.ChatContext) []llm.Message {
	msgs := make([]llm.Message, 0, len(history)*2)
	for _, turn := range history {
		if turn.User != "" {
			msgs = append(msgs, llm.Message{Role: llm.RoleUser, Content: turn.User})
		}
		if turn.AI != "" {
			msgs = append(msgs, llm.Message{Role: llm.RoleAssistant, Content: turn.AI})
		}
	}
	return msgs
}

func orUnknown(s string) string {
	if s == "" {
		return "unknown"
	}
	return s
}
