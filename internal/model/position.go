package model

import "github.com/shopspring/decimal"

// PositionSide 持仓方向
type PositionSide string

const (
	Long  PositionSide = "long"
	Short PositionSide = "short"
)

// Position 某个标的的一笔持仓。
// 同一标的最多同时存在一笔Long和一笔Short，两者不自动对冲。
// 数量减到0及以下时持仓立即从集合中移除。
type Position struct {
	Symbol   string          `json:"symbol"`
	Side     PositionSide    `json:"side"`
	Quantity int64           `json:"quantity"`
	AvgPrice decimal.Decimal `json:"avg_price"`
}
