package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"go-odds/service"
)

// GetStandardDeck 返回标准 52 张牌堆
func GetStandardDeck(c *gin.Context) {
	c.JSON(http.StatusOK, service.GetStandardDeck())
}
