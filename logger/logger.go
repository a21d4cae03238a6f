package logger

import "go.uber.org/zap"

// L 全局日志实例。main 里 Init 之后可用，之前是 Nop，测试里直接用也不会炸。
var L = zap.NewNop()

// Init 按运行模式初始化日志：release 用 JSON 生产配置，其余用开发配置
func Init(mode string) {
	var err error
	if mode == "release" {
		L, err = zap.NewProduction()
	} else {
		L, err = zap.NewDevelopment()
	}
	if err != nil {
		L = zap.NewNop()
	}
}
