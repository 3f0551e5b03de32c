package model

// FaceSize 人脸尺寸分档
type FaceSize string

const (
	FaceSmall  FaceSize = "small"
	FaceMedium FaceSize = "medium"
	FaceLarge  FaceSize = "large"
)

// ColorTheme 整体色调
type ColorTheme string

const (
	ThemeBright ColorTheme = "bright"
	ThemeDark   ColorTheme = "dark"
	ThemeRed    ColorTheme = "red"
	ThemeGreen  ColorTheme = "green"
	ThemeBlue   ColorTheme = "blue"
	ThemeMixed  ColorTheme = "mixed"
)

// FaceFeature 单张人脸的几何描述
type FaceFeature struct {
	Width  int      `json:"width"`
	Height int      `json:"height"`
	Ratio  float64  `json:"ratio"`
	Size   FaceSize `json:"size"`
}

type FaceStats struct {
	Count    int           `json:"count"`
	Features []FaceFeature `json:"features"`
}

// ObjectHints 是基于人脸/眼睛数量的粗略猜测，不是真正的目标检测
type ObjectHints struct {
	Glasses        bool `json:"glasses"`
	MultiplePeople bool `json:"multiple_people"`
}

type ColorStats struct {
	Theme      ColorTheme `json:"theme"`
	Brightness float64    `json:"brightness"`
}

type Composition struct {
	AspectRatio float64 `json:"aspect_ratio"`
	Resolution  string  `json:"resolution"`  // low | high
	Orientation string  `json:"orientation"` // landscape | portrait
}

// FeatureSummary 是一张图片的分析结果
// 每个请求新建一份，响应发出后即丢弃，从不落盘。
// JSON 结构和前端约定一致，stand-up 接口会把它原样传回来。
type FeatureSummary struct {
	Faces       FaceStats   `json:"faces"`
	Objects     ObjectHints `json:"objects"`
	Colors      ColorStats  `json:"colors"`
	Composition Composition `json:"composition"`
}
