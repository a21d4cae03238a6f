package router

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"go-odds/controller"
	"go-odds/web"
	"go-odds/ws"
)

func InitRouter(r *gin.Engine) {
	// 内嵌的计算器页面
	r.GET("/", func(c *gin.Context) {
		c.Data(http.StatusOK, "text/html; charset=utf-8", web.IndexHTML)
	})

	// 计算接口路由
	api := r.Group("/api")
	{
		api.POST("/calculate", controller.Calculate)
		api.POST("/draw", controller.Draw)
		api.GET("/deck/standard", controller.GetStandardDeck)
		api.GET("/history", controller.GetHistory)
		api.GET("/health", controller.Health)
	}

	// WebSocket 路由
	r.GET("/ws", ws.HandleWebSocket)
}
