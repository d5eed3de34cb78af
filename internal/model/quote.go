package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Quote 单个标的的最新行情快照，被新行情整体替换
type Quote struct {
	Symbol        string          `json:"symbol"`
	Price         decimal.Decimal `json:"price"`
	ChangePercent decimal.Decimal `json:"change_percent"` // 涨跌幅（%）
	High          decimal.Decimal `json:"high"`
	Low           decimal.Decimal `json:"low"`
	Open          decimal.Decimal `json:"open"`
	PreviousClose decimal.Decimal `json:"previous_close"`
	Volume        int64           `json:"volume"`
	ShortName     string          `json:"short_name"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// SeriesPoint 图表用的单个价格点
type SeriesPoint struct {
	Time  time.Time       `json:"time"`
	Price decimal.Decimal `json:"price"`
}
