package market

import (
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/goccy/go-json"
	"github.com/gorilla/websocket"

	"papertrade/internal/model"
	"papertrade/internal/service"
	"papertrade/pkg/logger"
)

// TickerGateway 负责把行情更新广播给所有websocket客户端。
// 每个客户端有独立的发送通道，消费慢的客户端丢消息，不影响广播循环。
type TickerGateway struct {
	market *service.MarketDataService

	mu      sync.Mutex
	clients map[string]*TickerClientConn

	upgrader websocket.Upgrader
}

func NewTickerGateway(ms *service.MarketDataService) *TickerGateway {
	g := &TickerGateway{
		market:  ms,
		clients: make(map[string]*TickerClientConn),
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool { return true }, // 允许跨域
		},
	}
	go g.broadcastLoop()
	return g
}

// 推给客户端的消息格式
type pricePush struct {
	Type string      `json:"type"`
	Data model.Quote `json:"data"`
}

func (g *TickerGateway) broadcastLoop() {
	updates := g.market.Subscribe(1024)
	for q := range updates {
		payload, err := json.Marshal(pricePush{Type: "price_update", Data: q})
		if err != nil {
			continue
		}
		g.mu.Lock()
		for _, client := range g.clients {
			// 发送通道满了直接丢，慢客户端不能拖住广播
			select {
			case client.Send <- payload:
			default:
			}
		}
		g.mu.Unlock()
	}
}

// ServeWS 处理连接建立、同clientId重连替换和断开清理
func (g *TickerGateway) ServeWS(c *gin.Context) {
	clientID := c.Query("client_id")
	if clientID == "" {
		// 强制要求客户端提供唯一ID，否则拒绝连接
		c.Writer.WriteHeader(http.StatusUnauthorized)
		return
	}

	conn, err := g.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		logger.Warnf("ticker upgrade error: %v", err)
		return
	}

	client := &TickerClientConn{
		ClientID: clientID,
		Conn:     conn,
		Send:     make(chan []byte, 256),
	}

	// 同clientId重连：旧连接标记替换后关闭
	g.mu.Lock()
	if old, ok := g.clients[clientID]; ok {
		old.markReplaced()
		old.Close()
	}
	g.clients[clientID] = client
	g.mu.Unlock()

	logger.Infof("ticker client connected: %s", clientID)
	go client.writePump()
	g.readPump(client)
}

// readPump 只为感知连接断开，客户端消息不承载业务
func (g *TickerGateway) readPump(client *TickerClientConn) {
	defer func() {
		// 先摘除注册再关闭，广播循环不会往已关闭的通道写。
		// 被替换的连接不许删掉新连接的注册
		if !client.isReplaced() {
			g.mu.Lock()
			if cur, ok := g.clients[client.ClientID]; ok && cur == client {
				delete(g.clients, client.ClientID)
			}
			g.mu.Unlock()
		}
		client.Close()
		logger.Infof("ticker client disconnected: %s", client.ClientID)
	}()

	for {
		if _, _, err := client.Conn.ReadMessage(); err != nil {
			return
		}
	}
}
