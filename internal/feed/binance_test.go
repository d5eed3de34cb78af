package feed

import (
	"testing"

	"github.com/shopspring/decimal"

	"papertrade/internal/model"
)

type captureSink struct {
	quotes []model.Quote
}

func (s *captureSink) Apply(q model.Quote) { s.quotes = append(s.quotes, q) }

func TestBinanceHandleMessage(t *testing.T) {
	sink := &captureSink{}
	f := NewBinanceFeed("wss://example", []string{"BTCUSDT"}, sink)

	f.handleMessage([]byte(`{"stream":"btcusdt@trade","data":{"s":"BTCUSDT","p":"63250.105","E":1690000000000}}`))
	if len(sink.quotes) != 1 {
		t.Fatalf("quotes = %d, want 1", len(sink.quotes))
	}
	q := sink.quotes[0]
	if q.Symbol != "BTCUSDT" {
		t.Fatalf("symbol = %s", q.Symbol)
	}
	if !q.Price.Equal(decimal.NewFromFloat(63250.11)) {
		t.Fatalf("price = %s, want 63250.11", q.Price)
	}
	// 首笔没有参照价，涨跌幅记0
	if !q.ChangePercent.IsZero() {
		t.Fatalf("first tick change = %s, want 0", q.ChangePercent)
	}

	// 第二笔相对上一笔计算涨跌幅
	f.handleMessage([]byte(`{"stream":"btcusdt@trade","data":{"s":"BTCUSDT","p":"63882.61","E":1690000001000}}`))
	q = sink.quotes[1]
	if !q.ChangePercent.Equal(decimal.NewFromFloat(1)) {
		t.Fatalf("change = %s, want 1", q.ChangePercent)
	}
}

func TestBinanceHandleMessageIgnoresGarbage(t *testing.T) {
	sink := &captureSink{}
	f := NewBinanceFeed("wss://example", nil, sink)

	f.handleMessage([]byte(`not json`))
	f.handleMessage([]byte(`{"stream":"x","data":{}}`))
	f.handleMessage([]byte(`{"stream":"x","data":{"s":"BTCUSDT","p":"-1"}}`))
	f.handleMessage([]byte(`{"stream":"x","data":{"s":"BTCUSDT","p":"abc"}}`))

	if len(sink.quotes) != 0 {
		t.Fatalf("garbage produced quotes: %+v", sink.quotes)
	}
}

func TestBinanceStreamUrl(t *testing.T) {
	f := NewBinanceFeed("wss://stream.binance.com:9443/stream", []string{"BTCUSDT", "ETHUSDT"}, &captureSink{})
	want := "wss://stream.binance.com:9443/stream?streams=btcusdt@trade/ethusdt@trade"
	if got := f.streamUrl(); got != want {
		t.Fatalf("url = %s, want %s", got, want)
	}
}
