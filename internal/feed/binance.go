package feed

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/goccy/go-json"
	"github.com/gorilla/websocket"
	"github.com/shopspring/decimal"

	"papertrade/internal/model"
	"papertrade/pkg/logger"
)

const reconnectDelay = 5 * time.Second

// BinanceFeed 通过Binance组合流websocket推送加密货币成交价。
// 连接断开后间隔重连，期间账本继续使用缓存里的最后报价。
type BinanceFeed struct {
	wsUrl   string
	symbols []string
	sink    Sink

	mu   sync.Mutex
	prev map[string]decimal.Decimal // 上一笔成交价，算涨跌幅用
}

func NewBinanceFeed(wsUrl string, symbols []string, sink Sink) *BinanceFeed {
	return &BinanceFeed{
		wsUrl:   wsUrl,
		symbols: symbols,
		sink:    sink,
		prev:    make(map[string]decimal.Decimal),
	}
}

func (f *BinanceFeed) Name() string { return "binance" }

// streamUrl 拼出组合流地址 .../stream?streams=btcusdt@trade/ethusdt@trade
func (f *BinanceFeed) streamUrl() string {
	streams := make([]string, 0, len(f.symbols))
	for _, s := range f.symbols {
		streams = append(streams, strings.ToLower(s)+"@trade")
	}
	return f.wsUrl + "?streams=" + strings.Join(streams, "/")
}

func (f *BinanceFeed) Run(ctx context.Context) {
	for {
		if ctx.Err() != nil {
			return
		}
		if err := f.connectAndRead(ctx); err != nil {
			logger.Warnf("binance feed disconnected, retrying in %s: %v", reconnectDelay, err)
		}
		select {
		case <-ctx.Done():
			return
		case <-time.After(reconnectDelay):
		}
	}
}

func (f *BinanceFeed) connectAndRead(ctx context.Context) error {
	conn, _, err := websocket.DefaultDialer.DialContext(ctx, f.streamUrl(), nil)
	if err != nil {
		return err
	}
	defer conn.Close()
	logger.Infof("binance feed connected: %d streams", len(f.symbols))

	// ctx取消时关掉连接，让ReadMessage返回
	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			_ = conn.Close()
		case <-done:
		}
	}()

	for {
		_, msg, err := conn.ReadMessage()
		if err != nil {
			return err
		}
		f.handleMessage(msg)
	}
}

// 组合流消息 {"stream":"btcusdt@trade","data":{"s":"BTCUSDT","p":"63250.10","E":1690000000000}}
type binanceStreamMessage struct {
	Stream string `json:"stream"`
	Data   struct {
		Symbol    string `json:"s"`
		Price     string `json:"p"`
		EventTime int64  `json:"E"`
	} `json:"data"`
}

func (f *BinanceFeed) handleMessage(msg []byte) {
	var m binanceStreamMessage
	if err := json.Unmarshal(msg, &m); err != nil {
		logger.Debugf("binance feed unmarshal error: %v", err)
		return
	}
	if m.Data.Symbol == "" {
		return
	}
	price, err := decimal.NewFromString(m.Data.Price)
	if err != nil || !price.IsPositive() {
		return
	}
	price = price.Round(2)

	f.mu.Lock()
	prev, ok := f.prev[m.Data.Symbol]
	f.prev[m.Data.Symbol] = price
	f.mu.Unlock()

	// 涨跌幅相对上一笔成交价，首笔记0
	change := decimal.Zero
	if ok && prev.IsPositive() {
		change = price.Sub(prev).Div(prev).Mul(decimal.NewFromInt(100)).Round(2)
	}

	f.sink.Apply(model.Quote{
		Symbol:        m.Data.Symbol,
		Price:         price,
		ChangePercent: change,
		ShortName:     strings.TrimSuffix(m.Data.Symbol, "USDT"),
		UpdatedAt:     time.UnixMilli(m.Data.EventTime),
	})
}
