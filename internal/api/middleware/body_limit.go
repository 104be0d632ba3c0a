package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"grade-compass/backend/pkg/response"
)

// BodyLimit 全局请求体大小限制中间件
// 课程表负载很小，超出 maxBytes 的请求一律按异常拒绝
func BodyLimit(maxBytes int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Body != nil {
			c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
		}

		c.Next()

		if c.IsAborted() {
			return
		}
		for _, ginErr := range c.Errors {
			var maxErr *http.MaxBytesError
			if errors.As(ginErr.Err, &maxErr) {
				response.Error(c, http.StatusRequestEntityTooLarge, 10005, "请求体过大")
				return
			}
		}
	}
}
