package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Taher-PIO/contoso-migrate-sub001/pkg/response"
)

const (
	defaultPageSize = 10
	maxPageSize     = 100
)

// MustGetIDParam 从路径参数提取正整数 ID。
// 解析失败时写入 400 响应并返回 false，调用方应直接 return
func MustGetIDParam(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.BadRequest(c, 10001, "ID 参数非法")
		return 0, false
	}
	return id, true
}

// queryInt 读取整型查询参数，缺失或非法时返回 0
func queryInt(c *gin.Context, key string) int {
	n, err := strconv.Atoi(c.Query(key))
	if err != nil {
		return 0
	}
	return n
}

// normalizePagination 规范化分页参数（page 从 1 起，page_size 默认 10 上限 100）
func normalizePagination(page, pageSize int) (int, int) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = defaultPageSize
	}
	if pageSize > maxPageSize {
		pageSize = maxPageSize
	}
	return page, pageSize
}
