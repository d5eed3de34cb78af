package watchlist

import (
	"testing"

	"papertrade/conf"
)

func testConfig() conf.MarketsConfig {
	return conf.MarketsConfig{
		Indian: []string{"RELIANCE.NS", "TCS.NS"},
		Us:     []string{"AAPL"},
		Crypto: []string{"BTCUSDT"},
	}
}

func TestMarketOf(t *testing.T) {
	tests := []struct {
		symbol string
		want   Market
	}{
		{"RELIANCE.NS", MarketIndian},
		{"SBIN.BO", MarketIndian},
		{"BTCUSDT", MarketCrypto},
		{"AAPL", MarketUs},
	}
	for _, tt := range tests {
		if got := MarketOf(tt.symbol); got != tt.want {
			t.Errorf("MarketOf(%s) = %s, want %s", tt.symbol, got, tt.want)
		}
	}
}

func TestDefaultSelection(t *testing.T) {
	l := New(testConfig())
	selected, ok := l.Selected()
	if !ok || selected != "RELIANCE.NS" {
		t.Fatalf("selected = %q, want RELIANCE.NS", selected)
	}
}

func TestAddRemove(t *testing.T) {
	l := New(testConfig())

	if !l.Add("INFY.NS") {
		t.Fatal("add new symbol failed")
	}
	if l.Add("INFY.NS") {
		t.Fatal("duplicate add should fail")
	}
	if !l.Contains("INFY.NS") {
		t.Fatal("added symbol missing")
	}

	if !l.Remove("INFY.NS") {
		t.Fatal("remove failed")
	}
	if l.Remove("INFY.NS") {
		t.Fatal("removing absent symbol should fail")
	}
}

func TestSelectRequiresMembership(t *testing.T) {
	l := New(testConfig())
	if l.Select("GOOGL") {
		t.Fatal("selecting unknown symbol should fail")
	}
	if !l.Select("BTCUSDT") {
		t.Fatal("selecting watched symbol failed")
	}
	selected, _ := l.Selected()
	if selected != "BTCUSDT" {
		t.Fatalf("selected = %q", selected)
	}
}

func TestRemoveClearsSelection(t *testing.T) {
	l := New(testConfig())
	l.Select("AAPL")
	l.Remove("AAPL")
	if _, ok := l.Selected(); ok {
		t.Fatal("selection should be cleared when the symbol is removed")
	}
}

func TestLeader(t *testing.T) {
	l := New(testConfig())
	leader, ok := l.Leader(MarketCrypto)
	if !ok || leader != "BTCUSDT" {
		t.Fatalf("leader = %q", leader)
	}
	l2 := New(conf.MarketsConfig{})
	if _, ok := l2.Leader(MarketCrypto); ok {
		t.Fatal("empty market should have no leader")
	}
}
