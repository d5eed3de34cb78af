package model

import "github.com/shopspring/decimal"

// AccountView 账户的只读快照，UI渲染用，不能反向修改账本
type AccountView struct {
	CashBalance    decimal.Decimal `json:"cash_balance"`
	PortfolioValue decimal.Decimal `json:"portfolio_value"`
	TotalValue     decimal.Decimal `json:"total_value"`
	UnrealizedPnL  decimal.Decimal `json:"unrealized_pnl"`
	Positions      []Position      `json:"positions"`
	Orders         []Order         `json:"orders"`
}
