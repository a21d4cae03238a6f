package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"go-odds/repository"
	"go-odds/ws"
)

// Health 健康检查：报告缓存、历史存储的可用性和活跃会话数
func Health(c *gin.Context) {
	cache := "disabled"
	if repository.Rdb != nil {
		cache = "ok"
		if _, err := repository.Rdb.Ping(repository.Ctx).Result(); err != nil {
			cache = "unreachable"
		}
	}

	history := "disabled"
	if repository.HistoryEnabled() {
		history = "ok"
	}

	c.JSON(http.StatusOK, gin.H{
		"status":   "ok",
		"cache":    cache,
		"history":  history,
		"sessions": ws.SessionCount(),
	})
}
