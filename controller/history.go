package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"go-odds/repository"
	"go-odds/service"
)

// HistoryLimit 历史接口返回的条数，main 里按配置覆盖
var HistoryLimit = 20

// GetHistory 返回最近的计算历史
func GetHistory(c *gin.Context) {
	if !repository.HistoryEnabled() {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "History store is not configured"})
		return
	}

	resp, err := service.RecentHistory(HistoryLimit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, resp)
}
