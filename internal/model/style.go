package model

import "strings"

// Style 吐槽风格
type Style string

const (
	StyleSavage    Style = "savage"
	StylePlayful   Style = "playful"
	StyleSarcastic Style = "sarcastic"
	StyleAbsurd    Style = "absurd"
)

// StyleProfile 只用于拼 Prompt
type StyleProfile struct {
	Intensity string
	Tone      string
	Examples  string
}

var styleProfiles = map[Style]StyleProfile{
	StyleSavage: {
		Intensity: "brutal and merciless",
		Tone:      "sharp and cutting",
		Examples:  "like a professional roast comedian",
	},
	StylePlayful: {
		Intensity: "light and teasing",
		Tone:      "friendly but witty",
		Examples:  "like joking with a good friend",
	},
	StyleSarcastic: {
		Intensity: "dry and clever",
		Tone:      "deadpan and ironic",
		Examples:  "like a sarcastic movie character",
	},
	StyleAbsurd: {
		Intensity: "weird and unexpected",
		Tone:      "surreal but funny",
		Examples:  "like a comedy sketch",
	},
}

// ParseStyle 解析前端传来的风格标签，未知标签返回 false
func ParseStyle(label string) (Style, bool) {
	s := Style(strings.ToLower(strings.TrimSpace(label)))
	_, ok := styleProfiles[s]
	return s, ok
}

// StyleOrDefault 空值或未知值一律降级为 playful
func StyleOrDefault(label string) Style {
	if s, ok := ParseStyle(label); ok {
		return s
	}
	return StylePlayful
}

// Profile 返回风格描述，未知风格按 playful 处理
func (s Style) Profile() StyleProfile {
	if p, ok := styleProfiles[s]; ok {
		return p
	}
	return styleProfiles[StylePlayful]
}
