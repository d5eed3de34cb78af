package market

import (
	"sync"

	"github.com/gorilla/websocket"

	"papertrade/pkg/logger"
)

// TickerClientConn 单个websocket客户端连接
type TickerClientConn struct {
	ClientID string
	Conn     *websocket.Conn
	Send     chan []byte // 异步发送通道

	replaced  bool // 被同clientId的重连连接替换
	mu        sync.Mutex
	closeOnce sync.Once
}

// Close 关闭连接和发送通道，重复调用安全
func (c *TickerClientConn) Close() {
	c.closeOnce.Do(func() {
		if c.Conn != nil {
			_ = c.Conn.Close()
		}
		close(c.Send)
	})
}

func (c *TickerClientConn) markReplaced() {
	c.mu.Lock()
	c.replaced = true
	c.mu.Unlock()
}

func (c *TickerClientConn) isReplaced() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.replaced
}

// writePump 串行写出，WriteMessage阻塞不能影响其他客户端
func (c *TickerClientConn) writePump() {
	for msg := range c.Send {
		if err := c.Conn.WriteMessage(websocket.TextMessage, msg); err != nil {
			logger.Debugf("ticker write error: %v", err)
			return
		}
	}
}
