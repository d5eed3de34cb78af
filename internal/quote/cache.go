package quote

import (
	"sync"
	"time"

	"papertrade/internal/model"
)

const defaultSeriesCap = 50

// Cache 每个标的的最新行情快照。
// 写入方是行情源协程，读取方是账本和API，读多写少用RWMutex。
// 行情获取失败时这里保留最后一次的快照，账本永远有价可用。
type Cache struct {
	mu     sync.RWMutex
	quotes map[string]model.Quote

	// 图表用的有界价格序列，按market分桶
	series    map[string][]model.SeriesPoint
	seriesCap int

	subs []chan model.Quote
}

func NewCache() *Cache {
	return &Cache{
		quotes:    make(map[string]model.Quote),
		series:    make(map[string][]model.SeriesPoint),
		seriesCap: defaultSeriesCap,
	}
}

// Apply 整体替换某个标的的快照并通知订阅者
func (c *Cache) Apply(q model.Quote) {
	if q.UpdatedAt.IsZero() {
		q.UpdatedAt = time.Now()
	}
	c.mu.Lock()
	c.quotes[q.Symbol] = q
	subs := c.subs
	c.mu.Unlock()

	for _, ch := range subs {
		// 订阅者消费慢就丢，价格推送不能阻塞行情源
		select {
		case ch <- q:
		default:
		}
	}
}

// Lookup 返回最后一次已知的快照
func (c *Cache) Lookup(symbol string) (model.Quote, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	q, ok := c.quotes[symbol]
	return q, ok
}

// Snapshot 批量取快照，缓存里没有的符号跳过
func (c *Cache) Snapshot(symbols []string) []model.Quote {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]model.Quote, 0, len(symbols))
	for _, s := range symbols {
		if q, ok := c.quotes[s]; ok {
			out = append(out, q)
		}
	}
	return out
}

// Subscribe 返回行情更新通道，gateway广播用
func (c *Cache) Subscribe(buf int) <-chan model.Quote {
	ch := make(chan model.Quote, buf)
	c.mu.Lock()
	c.subs = append(c.subs, ch)
	c.mu.Unlock()
	return ch
}

// AppendSeries 追加一个图表价格点，超出上限丢最旧的
func (c *Cache) AppendSeries(market string, p model.SeriesPoint) {
	if p.Time.IsZero() {
		p.Time = time.Now()
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	s := append(c.series[market], p)
	if len(s) > c.seriesCap {
		s = s[len(s)-c.seriesCap:]
	}
	c.series[market] = s
}

// Series 某个市场的价格序列副本
func (c *Cache) Series(market string) []model.SeriesPoint {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]model.SeriesPoint, len(c.series[market]))
	copy(out, c.series[market])
	return out
}
