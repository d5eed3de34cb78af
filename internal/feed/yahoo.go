package feed

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"github.com/shopspring/decimal"
	"github.com/spf13/cast"

	"papertrade/internal/model"
	"papertrade/pkg/logger"
)

// YahooFeed 轮询Yahoo Finance的quote接口获取股票行情。
// 取数失败就降级为随机游走tick，交易链路感知不到这次失败。
type YahooFeed struct {
	name     string
	baseUrl  string
	interval time.Duration
	symbols  func() []string // 每轮取当前自选，支持运行中增删
	sink     Sink
	client   *http.Client
	sim      *walker
}

func NewYahooFeed(name, baseUrl string, interval time.Duration, symbols func() []string, sink Sink) *YahooFeed {
	return &YahooFeed{
		name:     name,
		baseUrl:  baseUrl,
		interval: interval,
		symbols:  symbols,
		sink:     sink,
		client:   &http.Client{Timeout: 10 * time.Second},
		sim:      newWalker(time.Now().UnixNano()),
	}
}

func (f *YahooFeed) Name() string { return f.name }

func (f *YahooFeed) Run(ctx context.Context) {
	f.pollOnce(ctx)
	ticker := time.NewTicker(f.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			f.pollOnce(ctx)
		}
	}
}

func (f *YahooFeed) pollOnce(ctx context.Context) {
	symbols := f.symbols()
	if len(symbols) == 0 {
		return
	}
	if err := f.fetch(ctx, symbols); err != nil {
		logger.Warnf("%s feed fetch failed, falling back to simulated ticks: %v", f.name, err)
		for _, s := range symbols {
			f.sink.Apply(f.sim.tick(s))
		}
	}
}

func (f *YahooFeed) fetch(ctx context.Context, symbols []string) error {
	u := fmt.Sprintf("%s/v7/finance/quote?symbols=%s", f.baseUrl, url.QueryEscape(strings.Join(symbols, ",")))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return err
	}
	req.Header.Set("User-Agent", "Mozilla/5.0")

	resp, err := f.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %s", resp.Status)
	}

	// 字段缺省很常见（闭市、冷门股），用map+cast做宽松解析
	var payload struct {
		QuoteResponse struct {
			Result []map[string]interface{} `json:"result"`
		} `json:"quoteResponse"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return err
	}
	if len(payload.QuoteResponse.Result) == 0 {
		return fmt.Errorf("empty quote response")
	}

	for _, r := range payload.QuoteResponse.Result {
		q, ok := parseYahooQuote(r)
		if !ok {
			continue
		}
		f.sim.observe(q.Symbol, q.Price.InexactFloat64())
		f.sink.Apply(q)
	}
	return nil
}

func parseYahooQuote(r map[string]interface{}) (model.Quote, bool) {
	symbol := cast.ToString(r["symbol"])
	if symbol == "" {
		return model.Quote{}, false
	}
	// 闭市时regularMarketPrice可能缺失，退回previousClose
	price := cast.ToFloat64(r["regularMarketPrice"])
	if price == 0 {
		price = cast.ToFloat64(r["previousClose"])
	}
	if price <= 0 {
		return model.Quote{}, false
	}
	fallback := func(keys ...string) float64 {
		for _, k := range keys {
			if v := cast.ToFloat64(r[k]); v != 0 {
				return v
			}
		}
		return price
	}
	name := cast.ToString(r["shortName"])
	if name == "" {
		name = shortName(symbol)
	}
	return model.Quote{
		Symbol:        symbol,
		Price:         decimal.NewFromFloat(price).Round(2),
		ChangePercent: decimal.NewFromFloat(cast.ToFloat64(r["regularMarketChangePercent"])).Round(2),
		High:          decimal.NewFromFloat(fallback("regularMarketDayHigh", "dayHigh")).Round(2),
		Low:           decimal.NewFromFloat(fallback("regularMarketDayLow", "dayLow")).Round(2),
		Open:          decimal.NewFromFloat(fallback("regularMarketOpen", "open")).Round(2),
		PreviousClose: decimal.NewFromFloat(fallback("regularMarketPreviousClose", "previousClose")).Round(2),
		Volume:        cast.ToInt64(r["regularMarketVolume"]),
		ShortName:     name,
		UpdatedAt:     time.Now(),
	}, true
}
