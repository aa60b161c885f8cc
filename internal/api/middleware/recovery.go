package middleware

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Taher-PIO/contoso-migrate-sub001/pkg/response"
)

// Recovery 兜底异常恢复中间件
// 捕获 handler panic，记录堆栈后渲染统一错误响应，
// 响应携带请求追踪 ID 便于用户反馈时关联日志
func Recovery(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				logger.Error("请求处理 panic",
					zap.Any("panic", r),
					zap.String("method", c.Request.Method),
					zap.String("path", c.Request.URL.Path),
					zap.String("request_id", GetRequestID(c)),
					zap.Stack("stack"),
				)
				response.InternalErrorWithRequestID(c, GetRequestID(c))
				c.Abort()
			}
		}()

		c.Next()
	}
}
