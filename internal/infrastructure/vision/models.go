package vision

import (
	"embed"
	"os"
)

// pigo 自带的级联模型 (MIT, 见 models/LICENSE)
//
//go:embed models/facefinder models/puploc
var models embed.FS

const (
	FaceCascadeName = "facefinder"
	EyeCascadeName  = "puploc"
)

// loadCascade 配置了路径就读磁盘上的模型，否则用内置的
func loadCascade(path, name string) ([]byte, error) {
	if path == "" {
		return models.ReadFile("models/" + name)
	}
	return os.ReadFile(path)
}
