package service

import "regexp"

const filterReplacement = "interesting"

// deniedWords 只做整词匹配，"fathom" 之类的词不受影响
var deniedWords = regexp.MustCompile(`(?i)\b(ugly|stupid|fat|dumb)\b`)

// FilterContent 把屏蔽词替换为中性词，大小写不敏感
func FilterContent(text string) string {
	return deniedWords.ReplaceAllString(text, filterReplacement)
}
