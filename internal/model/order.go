package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type OrderSide string

const (
	Buy  OrderSide = "buy"
	Sell OrderSide = "sell"
)

type OrderType string

const (
	// 市价单
	Market OrderType = "market"
	// 限价单
	Limit OrderType = "limit"
	// 止损单，成交规则与限价单一致
	StopLoss OrderType = "stop_loss"
)

type OrderStatus string

const (
	// 模拟市场对手方流动性无限，订单创建即成交
	OrderStatusFilled OrderStatus = "filled"
)

// Order 一笔已成交的模拟订单，创建后不再修改
type Order struct {
	ID        int64           `json:"id,string"`
	Symbol    string          `json:"symbol"`
	Side      OrderSide       `json:"side"`
	Quantity  int64           `json:"quantity"`
	Price     decimal.Decimal `json:"price"` // 成交单价
	Type      OrderType       `json:"order_type"`
	Status    OrderStatus     `json:"status"`
	CreatedAt time.Time       `json:"created_at"`
}

// PriceLabel 展示用价格，市价单显示MKT
func (o Order) PriceLabel() string {
	if o.Type == Market {
		return "MKT"
	}
	return o.Price.StringFixed(2)
}
