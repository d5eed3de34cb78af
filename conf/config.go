package conf

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// 配置加载（监听端口、模拟账户、行情源等）

type TradingConfig struct {
	// 模拟账户的初始资金
	SeedBalance     float64 `yaml:"seed-balance"`
	OrderHistoryCap int     `yaml:"order-history-cap"`
}

type MarketsConfig struct {
	// 行情轮询间隔（印度/美股）
	PollInterval time.Duration `yaml:"poll-interval"`
	BinanceWsUrl string        `yaml:"binance-ws-url"`
	YahooBaseUrl string        `yaml:"yahoo-base-url"`

	// 默认自选列表
	Indian []string `yaml:"indian"`
	Us     []string `yaml:"us"`
	Crypto []string `yaml:"crypto"`
}

type LogConfig struct {
	Level      string `yaml:"level"`
	FileName   string `yaml:"file-name"`
	TimeFormat string `yaml:"time-format"`
	MaxSize    int    `yaml:"max-size"`
	MaxBackups int    `yaml:"max-backups"`
	MaxAge     int    `yaml:"max-age"`
	Compress   bool   `yaml:"compress"`
	LocalTime  bool   `yaml:"local-time"`
	Console    bool   `yaml:"console"`
}

type Config struct {
	AppName      string `yaml:"app_name"`
	Listen       string `yaml:"listen"`
	Mode         string `yaml:"mode"`
	MaxPingCount int    `yaml:"max-ping-count"`

	Trading TradingConfig `yaml:"trading"`
	Markets MarketsConfig `yaml:"markets"`
	Log     LogConfig     `yaml:"log"`
}

var AppConfig Config

func LoadConfig(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("Read config file error %w", err)
	}
	if err := yaml.Unmarshal(data, &AppConfig); err != nil {
		return fmt.Errorf("Unmarshal config yaml error: %w", err)
	}
	AppConfig.applyDefaults()
	return nil
}

func (c *Config) applyDefaults() {
	if c.Listen == "" {
		c.Listen = ":8090"
	}
	if c.MaxPingCount == 0 {
		c.MaxPingCount = 10
	}
	if c.Trading.SeedBalance <= 0 {
		c.Trading.SeedBalance = 50000
	}
	if c.Trading.OrderHistoryCap <= 0 {
		c.Trading.OrderHistoryCap = 50
	}
	if c.Markets.PollInterval <= 0 {
		c.Markets.PollInterval = 5 * time.Second
	}
	if c.Markets.BinanceWsUrl == "" {
		c.Markets.BinanceWsUrl = "wss://stream.binance.com:9443/stream"
	}
	if c.Markets.YahooBaseUrl == "" {
		c.Markets.YahooBaseUrl = "https://query1.finance.yahoo.com"
	}
	if len(c.Markets.Indian) == 0 {
		c.Markets.Indian = []string{"RELIANCE.NS", "TCS.NS", "HDFCBANK.NS", "INFY.NS", "ICICIBANK.NS", "HINDUNILVR.NS"}
	}
	if len(c.Markets.Us) == 0 {
		c.Markets.Us = []string{"AAPL", "GOOGL", "MSFT", "TSLA", "AMZN", "NVDA"}
	}
	if len(c.Markets.Crypto) == 0 {
		c.Markets.Crypto = []string{"BTCUSDT", "ETHUSDT", "BNBUSDT", "SOLUSDT"}
	}
}
