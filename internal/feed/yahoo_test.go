package feed

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

const yahooFixture = `{
  "quoteResponse": {
    "result": [
      {
        "symbol": "RELIANCE.NS",
        "shortName": "Reliance Industries",
        "regularMarketPrice": 2850.55,
        "regularMarketChangePercent": 1.25,
        "regularMarketDayHigh": 2880.0,
        "regularMarketDayLow": 2820.0,
        "regularMarketOpen": 2835.0,
        "regularMarketPreviousClose": 2815.0,
        "regularMarketVolume": 1234567
      },
      {
        "symbol": "TCS.NS",
        "previousClose": 3950.0
      },
      {
        "symbol": "BROKEN.NS"
      }
    ],
    "error": null
  }
}`

func TestYahooFetchParsesQuotes(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v7/finance/quote" {
			http.NotFound(w, r)
			return
		}
		_, _ = w.Write([]byte(yahooFixture))
	}))
	defer srv.Close()

	sink := &captureSink{}
	f := NewYahooFeed("indian", srv.URL, time.Second, func() []string { return []string{"RELIANCE.NS", "TCS.NS"} }, sink)

	if err := f.fetch(context.Background(), []string{"RELIANCE.NS", "TCS.NS", "BROKEN.NS"}); err != nil {
		t.Fatalf("fetch: %v", err)
	}
	// 没有任何价格字段的条目被跳过
	if len(sink.quotes) != 2 {
		t.Fatalf("quotes = %d, want 2", len(sink.quotes))
	}

	q := sink.quotes[0]
	if q.Symbol != "RELIANCE.NS" || q.ShortName != "Reliance Industries" {
		t.Fatalf("quote = %+v", q)
	}
	if !q.Price.Equal(decimal.NewFromFloat(2850.55)) {
		t.Fatalf("price = %s, want 2850.55", q.Price)
	}
	if !q.ChangePercent.Equal(decimal.NewFromFloat(1.25)) {
		t.Fatalf("change = %s, want 1.25", q.ChangePercent)
	}
	if q.Volume != 1234567 {
		t.Fatalf("volume = %d", q.Volume)
	}

	// 闭市时退回previousClose，其余字段以价格兜底
	q = sink.quotes[1]
	if !q.Price.Equal(decimal.NewFromInt(3950)) {
		t.Fatalf("fallback price = %s, want 3950", q.Price)
	}
	if !q.High.Equal(decimal.NewFromInt(3950)) || !q.Open.Equal(decimal.NewFromInt(3950)) {
		t.Fatalf("fallback fields = high %s open %s", q.High, q.Open)
	}
}

func TestYahooFetchErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "rate limited", http.StatusTooManyRequests)
	}))
	defer srv.Close()

	f := NewYahooFeed("us", srv.URL, time.Second, func() []string { return []string{"AAPL"} }, &captureSink{})
	if err := f.fetch(context.Background(), []string{"AAPL"}); err == nil {
		t.Fatal("want error on non-200 status")
	}
}

func TestYahooPollFallsBackToSimulation(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "down", http.StatusInternalServerError)
	}))
	defer srv.Close()

	sink := &captureSink{}
	f := NewYahooFeed("us", srv.URL, time.Second, func() []string { return []string{"AAPL", "MSFT"} }, sink)
	f.pollOnce(context.Background())

	// 拉取失败也要产出模拟tick，账本不能失去标记价
	if len(sink.quotes) != 2 {
		t.Fatalf("fallback quotes = %d, want 2", len(sink.quotes))
	}
	for _, q := range sink.quotes {
		if !q.Price.IsPositive() {
			t.Fatalf("simulated price not positive: %+v", q)
		}
	}
}

func TestWalkerTicksStayPositive(t *testing.T) {
	w := newWalker(1)
	w.observe("AAPL", 2)
	for i := 0; i < 100; i++ {
		q := w.tick("AAPL")
		if !q.Price.IsPositive() {
			t.Fatalf("tick %d went non-positive: %s", i, q.Price)
		}
	}
}

func TestWalkerStartsFromObservedPrice(t *testing.T) {
	w := newWalker(7)
	w.observe("TSLA", 250)
	q := w.tick("TSLA")
	// 单步波动不超过±5
	diff := q.Price.Sub(decimal.NewFromInt(250)).Abs()
	if diff.GreaterThan(decimal.NewFromInt(5)) {
		t.Fatalf("first tick jumped too far: %s", q.Price)
	}
}
