package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// HealthHandler 健康检查 HTTP 处理器
type HealthHandler struct {
	db *gorm.DB
}

// NewHealthHandler 创建 HealthHandler
func NewHealthHandler(db *gorm.DB) *HealthHandler {
	return &HealthHandler{db: db}
}

// Check 健康检查，报告数据库可达性
// GET /health
func (h *HealthHandler) Check(c *gin.Context) {
	dbStatus := "ok"
	httpStatus := http.StatusOK

	sqlDB, err := h.db.DB()
	if err == nil {
		err = sqlDB.PingContext(c.Request.Context())
	}
	if err != nil {
		dbStatus = "unreachable"
		httpStatus = http.StatusServiceUnavailable
	}

	c.JSON(httpStatus, gin.H{
		"status":   dbStatus,
		"database": dbStatus,
	})
}
