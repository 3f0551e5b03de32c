package model

// MaxChatContext 前端最多保留 5 轮对话
const MaxChatContext = 5

// ChatTurn 一轮对话
type ChatTurn struct {
	User string `json:"user"`
	AI   string `json:"ai"`
}

// ChatContext 由调用方持有，服务端只读不存
type ChatContext []ChatTurn

// Recent 超出上限时只保留最近的几轮
func (c ChatContext) Recent() ChatContext {
	if len(c) <= MaxChatContext {
		return c
	}
	return c[len(c)-MaxChatContext:]
}

// Duration stand-up 时长
type Duration string

const (
	DurationShort Duration = "short"
	DurationLong  Duration = "long"
)
