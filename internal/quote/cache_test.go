package quote

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"papertrade/internal/model"
)

func TestCacheApplyAndLookup(t *testing.T) {
	c := NewCache()

	if _, ok := c.Lookup("BTCUSDT"); ok {
		t.Fatal("lookup on empty cache should miss")
	}

	c.Apply(model.Quote{Symbol: "BTCUSDT", Price: decimal.NewFromInt(63000)})
	q, ok := c.Lookup("BTCUSDT")
	if !ok {
		t.Fatal("lookup miss after apply")
	}
	if !q.Price.Equal(decimal.NewFromInt(63000)) {
		t.Fatalf("price = %s, want 63000", q.Price)
	}
	if q.UpdatedAt.IsZero() {
		t.Fatal("UpdatedAt not stamped")
	}

	// 整体替换
	c.Apply(model.Quote{Symbol: "BTCUSDT", Price: decimal.NewFromInt(64000)})
	q, _ = c.Lookup("BTCUSDT")
	if !q.Price.Equal(decimal.NewFromInt(64000)) {
		t.Fatalf("price = %s, want 64000 after replace", q.Price)
	}
}

func TestCacheSnapshotSkipsUnknown(t *testing.T) {
	c := NewCache()
	c.Apply(model.Quote{Symbol: "AAPL", Price: decimal.NewFromInt(200)})

	got := c.Snapshot([]string{"AAPL", "MSFT"})
	if len(got) != 1 || got[0].Symbol != "AAPL" {
		t.Fatalf("snapshot = %+v, want only AAPL", got)
	}
}

func TestCacheSubscribeDoesNotBlock(t *testing.T) {
	c := NewCache()
	// 容量1的订阅者，塞满之后继续Apply不能卡住
	c.Subscribe(1)
	for i := 0; i < 10; i++ {
		c.Apply(model.Quote{Symbol: "AAPL", Price: decimal.NewFromInt(int64(i + 1))})
	}
	q, _ := c.Lookup("AAPL")
	if !q.Price.Equal(decimal.NewFromInt(10)) {
		t.Fatalf("price = %s, want 10", q.Price)
	}
}

func TestCacheSubscribeReceives(t *testing.T) {
	c := NewCache()
	ch := c.Subscribe(4)
	c.Apply(model.Quote{Symbol: "TCS.NS", Price: decimal.NewFromInt(3950)})

	select {
	case q := <-ch:
		if q.Symbol != "TCS.NS" {
			t.Fatalf("symbol = %s, want TCS.NS", q.Symbol)
		}
	case <-time.After(time.Second):
		t.Fatal("no update received")
	}
}

func TestSeriesRingCap(t *testing.T) {
	c := NewCache()
	for i := 0; i < 60; i++ {
		c.AppendSeries("indian", model.SeriesPoint{Price: decimal.NewFromInt(int64(i))})
	}
	s := c.Series("indian")
	if len(s) != defaultSeriesCap {
		t.Fatalf("series len = %d, want %d", len(s), defaultSeriesCap)
	}
	// 丢最旧的，保尾部
	if !s[0].Price.Equal(decimal.NewFromInt(10)) || !s[len(s)-1].Price.Equal(decimal.NewFromInt(59)) {
		t.Fatalf("series window = [%s..%s], want [10..59]", s[0].Price, s[len(s)-1].Price)
	}
}
