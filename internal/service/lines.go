package service

import "github.com/leon37/RoastMaster/internal/model"

// 以下全部是只读数据，进程启动时确定，运行期不修改

var roastFallbacks = []string{
	"I'd roast you, but I'm afraid you'd melt from all that heat!",
	"This photo has more filters than a coffee shop!",
	"I've seen better composition in a toddler's finger painting!",
	"Is this a selfie or a witness protection photo?",
	"This photo screams 'I have a great personality'!",
}

var comebackFallbacks = []string{
	"That's what they all say!",
	"I've heard better comebacks from a broken boomerang!",
	"Nice try, but I've seen sharper wit on a butter knife!",
	"Is that your final answer or are you still loading?",
}

// chatFallbacks 按消息长度取模选择，同一句话永远得到同一个回复
var chatFallbacks = []string{
	"Oh, you want to chat? How adorable! 😏",
	"I'm here to roast, not to be your therapist! 🔥",
	"That's... actually not terrible. Are you feeling okay? 🤔",
	"I've heard funnier things from a broken calculator! 😂",
}

// BackupRoast 照片处理整体出错时返回给前端的兜底
const BackupRoast = "I'd roast you, but I'm having technical difficulties. At least that's more functional than this photo!"

// chatRule 关键词组 -> 固定回复，按顺序匹配，命中第一条即返回
type chatRule struct {
	name     string
	keywords []string
	question bool // 只看是否包含问号
	reply    string
}

var chatRules = []chatRule{
	{
		name:     "greeting",
		keywords: []string{"hello", "hi", "hey"},
		reply:    "Well well, look who's trying to be friendly! 😄 What's up, human?",
	},
	{
		name:     "humor",
		keywords: []string{"funny", "joke", "laugh"},
		reply:    "You want funny? I AM the comedy here! 🎭 But I appreciate the recognition.",
	},
	{
		name:     "praise",
		keywords: []string{"smart", "clever", "intelligent"},
		reply:    "Finally, someone who recognizes my genius! 🧠 I knew you had good taste.",
	},
	{
		name:     "rudeness",
		keywords: []string{"mean", "rude", "harsh"},
		reply:    "Mean? I prefer 'brutally honest'! 😈 It's called tough love, sweetie.",
	},
	{
		name:     "question",
		question: true,
		reply:    "Questions, questions! 🤔 I'm an AI roast master, not Google! But I'll humor you...",
	},
	{
		name:     "affection",
		keywords: []string{"love", "like", "awesome"},
		reply:    "Aww, you're making me blush! 😊 Well, if I could blush... which I can't... because I'm an AI... 🤖",
	},
	{
		name:     "insult",
		keywords: []string{"boring", "stupid", "dumb"},
		reply:    "Excuse me?! I'm the most entertaining AI you'll ever meet! 😤 Your taste in conversation is questionable!",
	},
}

const (
	standupOpening     = "So I was looking at this photo and... "
	standupMultiPeople = "I see multiple people in this photo. Safety in numbers, smart choice!"
	standupGlasses     = "Those glasses are so thick, I bet you can see into next week!"
	standupClosing     = "But hey, at least you're brave enough to share photos online. That takes confidence... or poor judgment!"
	standupLowRes      = "And the resolution on this thing? Even a potato camera is filing a complaint."
)

// standupThemeLines 没有其他特征可聊时用色调凑一个段子
var standupThemeLines = map[model.ColorTheme]string{
	model.ThemeBright: "This photo is so bright I had to put on sunglasses just to judge it.",
	model.ThemeDark:   "This photo is so dark I'm not sure if it's a selfie or a power outage.",
	model.ThemeRed:    "So much red in here, I can't tell if it's a vibe or a warning sign.",
	model.ThemeGreen:  "All this green... did you take this photo or did a salad?",
	model.ThemeBlue:   "This much blue usually comes with a sad piano soundtrack.",
	model.ThemeMixed:  "The colors in this photo can't agree on anything, just like your group chat.",
}

const standupThemeDefault = "The colors in this photo are giving 'I pressed random filters until one stuck'."
