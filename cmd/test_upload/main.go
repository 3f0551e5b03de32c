package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"os"
	"path/filepath"
	"time"
)

// 手动冒烟：把本地图片传给正在运行的服务
func main() {
	addr := flag.String("addr", "http://localhost:8001", "server address")
	style := flag.String("style", "savage", "roast style")
	flag.Parse()
	if flag.NArg() != 1 {
		fmt.Println("用法: test_upload [-addr URL] [-style STYLE] <image>")
		os.Exit(2)
	}
	path := flag.Arg(0)

	data, err := os.ReadFile(path)
	if err != nil {
		fmt.Println("读取图片失败:", err)
		return
	}

	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="file"; filename=%q`, filepath.Base(path)))
	h.Set("Content-Type", http.DetectContentType(data))
	part, _ := w.CreatePart(h)
	part.Write(data)
	w.WriteField("style", *style)
	w.Close()

	client := &http.Client{Timeout: 60 * time.Second}
	start := time.Now()
	resp, err := client.Post(*addr+"/api/v1/roast", w.FormDataContentType(), &body)
	if err != nil {
		fmt.Println("请求失败:", err)
		return
	}
	defer resp.Body.Close()

	raw, _ := io.ReadAll(resp.Body)
	fmt.Printf("✅ HTTP %d (耗时 %v)\n", resp.StatusCode, time.Since(start))

	var pretty bytes.Buffer
	if err := json.Indent(&pretty, raw, "", "  "); err != nil {
		fmt.Println(string(raw))
		return
	}
	fmt.Println(pretty.String())

	// 用返回的 features 顺便来一段脱口秀
	var envelope struct {
		Data struct {
			Features json.RawMessage `json:"features"`
		} `json:"data"`
	}
	if json.Unmarshal(raw, &envelope) != nil || len(envelope.Data.Features) == 0 {
		return
	}
	standup, _ := json.Marshal(map[string]any{"features": envelope.Data.Features})
	resp2, err := client.Post(*addr+"/api/v1/standup", "application/json", bytes.NewReader(standup))
	if err != nil {
		fmt.Println("脱口秀请求失败:", err)
		return
	}
	defer resp2.Body.Close()
	raw, _ = io.ReadAll(resp2.Body)
	fmt.Println("🎤", string(raw))
}
