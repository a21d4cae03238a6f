package web

import _ "embed"

// IndexHTML 内嵌的计算器页面，编译进二进制，部署不用带静态文件
//
//go:embed index.html
var IndexHTML []byte
