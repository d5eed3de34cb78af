package service

import (
	"context"

	"papertrade/conf"
	"papertrade/internal/feed"
	"papertrade/internal/model"
	"papertrade/internal/quote"
	"papertrade/internal/watchlist"
)

// MarketDataService 行情服务：持有缓存和全部行情源，
// 负责回答快照/序列查询，并向ticker gateway透传更新。
type MarketDataService struct {
	cache   *quote.Cache
	watch   *watchlist.List
	manager *feed.Manager
}

func NewMarketDataService(cfg conf.MarketsConfig, cache *quote.Cache, watch *watchlist.List) *MarketDataService {
	sources := []feed.Source{
		feed.NewBinanceFeed(cfg.BinanceWsUrl, cfg.Crypto, cache),
		feed.NewYahooFeed("indian", cfg.YahooBaseUrl, cfg.PollInterval,
			func() []string { return watch.Symbols(watchlist.MarketIndian) }, cache),
		feed.NewYahooFeed("us", cfg.YahooBaseUrl, cfg.PollInterval,
			func() []string { return watch.Symbols(watchlist.MarketUs) }, cache),
	}
	return &MarketDataService{
		cache:   cache,
		watch:   watch,
		manager: feed.NewManager(sources...),
	}
}

// Start 启动全部行情源和图表序列记录
func (m *MarketDataService) Start(ctx context.Context) {
	m.manager.Start(ctx)
	go m.recordSeries(ctx)
}

// recordSeries 跟踪每个市场首个自选标的的价格，喂给图表
func (m *MarketDataService) recordSeries(ctx context.Context) {
	updates := m.cache.Subscribe(256)
	for {
		select {
		case <-ctx.Done():
			return
		case q := <-updates:
			market := watchlist.MarketOf(q.Symbol)
			if leader, ok := m.watch.Leader(market); ok && leader == q.Symbol {
				m.cache.AppendSeries(string(market), model.SeriesPoint{Time: q.UpdatedAt, Price: q.Price})
			}
		}
	}
}

// Quotes 一批标的的最新快照；symbols为空时返回全部自选
func (m *MarketDataService) Quotes(symbols []string) []model.Quote {
	if len(symbols) == 0 {
		symbols = m.watch.All()
	}
	return m.cache.Snapshot(symbols)
}

// Series 某个市场的图表序列
func (m *MarketDataService) Series(market string) []model.SeriesPoint {
	return m.cache.Series(market)
}

// Subscribe 行情更新通道，gateway广播用
func (m *MarketDataService) Subscribe(buf int) <-chan model.Quote {
	return m.cache.Subscribe(buf)
}
