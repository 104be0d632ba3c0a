package middleware

import (
	"github.com/gin-gonic/gin"
)

// 纯 JSON/文件下载 API 的安全响应头
// 不设置 CSP：本服务不渲染页面
var securityHeaders = map[string]string{
	"X-Frame-Options":        "DENY",
	"X-Content-Type-Options": "nosniff",
	"X-Download-Options":     "noopen",
	"Referrer-Policy":        "no-referrer",
	"Cache-Control":          "no-store",
}

// SecurityHeaders 安全 HTTP 头中间件
func SecurityHeaders() gin.HandlerFunc {
	return func(c *gin.Context) {
		for k, v := range securityHeaders {
			c.Header(k, v)
		}

		c.Next()
	}
}
