package controller

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/leon37/RoastMaster/internal/api/middleware"
	"github.com/leon37/RoastMaster/internal/api/response"
	"github.com/leon37/RoastMaster/internal/model"
	"github.com/leon37/RoastMaster/internal/service"
)

type RoastController struct {
	photos         *service.PhotoService
	roaster        *service.RoastService
	maxUploadBytes int64
}

// NewRoastController 构造函数
func NewRoastController(photos *service.PhotoService, roaster *service.RoastService, maxUploadBytes int64) *RoastController {
	return &RoastController{
		photos:         photos,
		roaster:        roaster,
		maxUploadBytes: maxUploadBytes,
	}
}

// Roast 上传照片并吐槽
// @Summary 照片吐槽
// @Description 分析照片中的人脸、色调、构图，交给 LLM 生成一句吐槽；LLM 不可用时返回固定文案。
// @Tags Roast
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "照片"
// @Param style formData string false "风格: savage | playful | sarcastic | absurd" default(playful)
// @Success 200 {object} response.Response{data=service.PhotoResult}
// @Failure 400 {object} response.Response "不是图片或无法解码"
// @Failure 413 {object} response.Response "图片太大"
// @Router /roast [post]
func (ctrl *RoastController) Roast(c *gin.Context) {
	// 预留 1MB 给表单其他字段
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, ctrl.maxUploadBytes+(1<<20))

	fileHeader, err := c.FormFile("file")
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			response.Error(c, http.StatusRequestEntityTooLarge, "图片太大了")
			return
		}
		response.Error(c, http.StatusBadRequest, "请上传图片文件: "+err.Error())
		return
	}
	if fileHeader.Size > ctrl.maxUploadBytes {
		response.Error(c, http.StatusRequestEntityTooLarge, "图片太大了")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		response.Error(c, http.StatusBadRequest, "读取上传文件失败")
		return
	}
	defer file.Close()

	style := model.StyleOrDefault(c.PostForm("style"))
	slog.Info("收到吐槽请求",
		"request_id", c.GetString(middleware.RequestIDKey),
		"filename", fileHeader.Filename,
		"size", fileHeader.Size,
		"style", style)

	result, err := ctrl.photos.RoastUpload(c.Request.Context(), service.Upload{
		Filename:    fileHeader.Filename,
		ContentType: fileHeader.Header.Get("Content-Type"),
		Body:        file,
	}, style)
	if err != nil {
		if errors.Is(err, service.ErrInvalidInput) {
			response.Error(c, http.StatusBadRequest, "File must be an image")
			return
		}
		// 其他内部错误不暴露给用户，给一句兜底吐槽
		slog.Error("照片吐槽失败", "request_id", c.GetString(middleware.RequestIDKey), "error", err)
		response.Success(c, gin.H{
			"roast":    service.BackupRoast,
			"features": gin.H{"backup": true},
			"style":    style,
		})
		return
	}

	response.Success(c, result)
}

type StandupRequest struct {
	Features *model.FeatureSummary `json:"features"`
	Duration string                `json:"duration"` // short | long，默认 short
}

type StandupResponse struct {
	Routine []string `json:"routine"`
}

// Standup 生成一段脱口秀
// @Summary 照片脱口秀
// @Description 基于 /roast 返回的 features 生成三段式脱口秀。
// @Tags Roast
// @Accept json
// @Produce json
// @Param request body StandupRequest true "照片特征"
// @Success 200 {object} response.Response{data=controller.StandupResponse}
// @Router /standup [post]
func (ctrl *RoastController) Standup(c *gin.Context) {
	var req StandupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "参数错误: "+err.Error())
		return
	}

	duration := model.DurationShort
	if req.Duration == string(model.DurationLong) {
		duration = model.DurationLong
	}

	routine := ctrl.roaster.StandupRoutine(c.Request.Context(), req.Features, duration)
	response.Success(c, StandupResponse{Routine: routine})
}
