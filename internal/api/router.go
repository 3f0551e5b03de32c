package api

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/leon37/RoastMaster/internal/api/controller"
	"github.com/leon37/RoastMaster/internal/api/middleware"
	"github.com/leon37/RoastMaster/internal/metrics"

	_ "github.com/leon37/RoastMaster/docs"
)

// RegisterRoutes 注册所有路由
func RegisterRoutes(r *gin.Engine, m metrics.Metrics, roastCtrl *controller.RoastController, chatCtrl *controller.ChatController) {
	r.Use(middleware.RequestID(), middleware.Cors(), middleware.Metrics(m))

	// 健康检查
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "healthy", "message": "AI Roast Master is ready to roast!"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(m.GetRegistry(), promhttp.HandlerOpts{})))
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := r.Group("/api/v1")
	{
		v1.POST("/roast", roastCtrl.Roast)
		v1.POST("/standup", roastCtrl.Standup)
		v1.POST("/chat", chatCtrl.Chat)
		v1.POST("/comeback", chatCtrl.Comeback)
	}
}
