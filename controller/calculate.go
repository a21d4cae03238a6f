package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"go-odds/dto"
	"go-odds/engine"
	"go-odds/service"
)

// Calculate 处理概率计算请求
func Calculate(c *gin.Context) {
	var req dto.CalculateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required fields"})
		return
	}

	resp, err := service.Calculate(req)
	if err != nil {
		renderError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// Draw 处理示例抽牌请求
func Draw(c *gin.Context) {
	var req dto.DrawRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required fields"})
		return
	}

	resp, err := service.ExampleDraw(req)
	if err != nil {
		renderError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// 入参问题给 400 并带上规则描述，其余一律 500
func renderError(c *gin.Context, err error) {
	var invalid *engine.InvalidInputError
	if errors.As(err, &invalid) {
		c.JSON(http.StatusBadRequest, gin.H{"error": invalid.Error()})
		return
	}
	if errors.Is(err, service.ErrMissingCriterion) || errors.Is(err, service.ErrInvalidDrawCount) {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
}
