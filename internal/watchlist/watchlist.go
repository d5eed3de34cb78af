package watchlist

import (
	"strings"
	"sync"

	"papertrade/conf"
)

// 自选列表和当前选中标的。只负责选择，不持有任何交易不变量。

type Market string

const (
	MarketIndian Market = "indian"
	MarketUs     Market = "us"
	MarketCrypto Market = "crypto"
)

// MarketOf 按符号后缀判断所属市场：
// .NS/.BO是印度市场，USDT结尾是加密货币交易对，其余按美股处理
func MarketOf(symbol string) Market {
	if strings.HasSuffix(symbol, ".NS") || strings.HasSuffix(symbol, ".BO") {
		return MarketIndian
	}
	if strings.HasSuffix(symbol, "USDT") {
		return MarketCrypto
	}
	return MarketUs
}

type List struct {
	mu       sync.RWMutex
	symbols  map[Market][]string
	selected string
}

func New(cfg conf.MarketsConfig) *List {
	l := &List{
		symbols: map[Market][]string{
			MarketIndian: append([]string(nil), cfg.Indian...),
			MarketUs:     append([]string(nil), cfg.Us...),
			MarketCrypto: append([]string(nil), cfg.Crypto...),
		},
	}
	// 默认选中印度市场的第一个标的，和面板初始状态一致
	if len(l.symbols[MarketIndian]) > 0 {
		l.selected = l.symbols[MarketIndian][0]
	}
	return l
}

// Symbols 某个市场的自选列表副本
func (l *List) Symbols(market Market) []string {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return append([]string(nil), l.symbols[market]...)
}

// All 全部市场的自选标的
func (l *List) All() []string {
	l.mu.RLock()
	defer l.mu.RUnlock()
	var out []string
	for _, m := range []Market{MarketIndian, MarketUs, MarketCrypto} {
		out = append(out, l.symbols[m]...)
	}
	return out
}

// Add 添加自选，重复添加返回false
func (l *List) Add(symbol string) bool {
	symbol = strings.TrimSpace(symbol)
	if symbol == "" {
		return false
	}
	market := MarketOf(symbol)
	l.mu.Lock()
	defer l.mu.Unlock()
	for _, s := range l.symbols[market] {
		if s == symbol {
			return false
		}
	}
	l.symbols[market] = append(l.symbols[market], symbol)
	return true
}

// Remove 移除自选；被移除的是当前选中标的时清掉选择
func (l *List) Remove(symbol string) bool {
	market := MarketOf(symbol)
	l.mu.Lock()
	defer l.mu.Unlock()
	for i, s := range l.symbols[market] {
		if s == symbol {
			l.symbols[market] = append(l.symbols[market][:i], l.symbols[market][i+1:]...)
			if l.selected == symbol {
				l.selected = ""
			}
			return true
		}
	}
	return false
}

// Select 选中一个自选标的，不在列表里返回false
func (l *List) Select(symbol string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	if !l.containsLocked(symbol) {
		return false
	}
	l.selected = symbol
	return true
}

// Selected 当前选中的标的
func (l *List) Selected() (string, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.selected, l.selected != ""
}

// Contains 是否在任一市场的自选里
func (l *List) Contains(symbol string) bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.containsLocked(symbol)
}

func (l *List) containsLocked(symbol string) bool {
	for _, list := range l.symbols {
		for _, s := range list {
			if s == symbol {
				return true
			}
		}
	}
	return false
}

// Leader 市场的第一个自选标的，图表序列跟踪它
func (l *List) Leader(market Market) (string, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	if len(l.symbols[market]) == 0 {
		return "", false
	}
	return l.symbols[market][0], true
}
