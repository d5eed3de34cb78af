package ping

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Ping 健康检查，server启动自检也会打这个接口
func Ping(c *gin.Context) {
	c.String(http.StatusOK, "pong")
}
