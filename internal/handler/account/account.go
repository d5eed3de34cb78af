package account

import (
	"github.com/gin-gonic/gin"

	"papertrade/internal/service"
	"papertrade/pkg/logger"
	"papertrade/pkg/response"
)

type Handler struct {
	trading *service.TradingService
}

func NewHandler(s *service.TradingService) *Handler {
	return &Handler{trading: s}
}

// AccountGetSummary 现金、持仓市值、总资产和未实现盈亏
func (h *Handler) AccountGetSummary() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		view := h.trading.Account()
		response.JSON(ctx, nil, gin.H{
			"cash_balance":    view.CashBalance,
			"portfolio_value": view.PortfolioValue,
			"total_value":     view.TotalValue,
			"unrealized_pnl":  view.UnrealizedPnL,
		})
	}
}

// PositionGetList 当前全部持仓
func (h *Handler) PositionGetList() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		response.JSON(ctx, nil, h.trading.Positions())
	}
}

// AccountReset 账户回到初始资金，等价于刷新页面重开
func (h *Handler) AccountReset() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		h.trading.Reset()
		logger.Info("account reset to seed balance")
		response.JSON(ctx, nil, h.trading.Account())
	}
}
