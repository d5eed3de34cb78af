package feed

import (
	"math/rand"
	"strings"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"papertrade/internal/model"
)

// 行情源失联时的降级：在最后已知价上做随机游走，
// 保证盘面还"活着"，账本始终有可用的标记价。

type walker struct {
	mu   sync.Mutex
	rng  *rand.Rand
	last map[string]float64
}

func newWalker(seed int64) *walker {
	return &walker{
		rng:  rand.New(rand.NewSource(seed)),
		last: make(map[string]float64),
	}
}

// observe 记录真实行情，作为之后模拟tick的起点
func (w *walker) observe(symbol string, price float64) {
	if price <= 0 {
		return
	}
	w.mu.Lock()
	w.last[symbol] = price
	w.mu.Unlock()
}

// tick 生成一个模拟行情：±5以内的随机波动，价格不低于1
func (w *walker) tick(symbol string) model.Quote {
	w.mu.Lock()
	defer w.mu.Unlock()

	cur, ok := w.last[symbol]
	if !ok || cur <= 0 {
		cur = 1000
	}
	delta := (w.rng.Float64() - 0.5) * 10
	next := cur + delta
	if next < 1 {
		next = 1
	}
	w.last[symbol] = next

	price := decimal.NewFromFloat(next).Round(2)
	change := decimal.NewFromFloat(delta / cur * 100).Round(2)
	return model.Quote{
		Symbol:        symbol,
		Price:         price,
		ChangePercent: change,
		High:          price.Mul(decimal.NewFromFloat(1.01)).Round(2),
		Low:           price.Mul(decimal.NewFromFloat(0.99)).Round(2),
		Open:          decimal.NewFromFloat(cur).Round(2),
		PreviousClose: decimal.NewFromFloat(cur).Round(2),
		Volume:        w.rng.Int63n(1000000),
		ShortName:     shortName(symbol),
		UpdatedAt:     time.Now(),
	}
}

func shortName(symbol string) string {
	s := strings.TrimSuffix(symbol, ".NS")
	s = strings.TrimSuffix(s, ".BO")
	return strings.TrimSuffix(s, "USDT")
}
