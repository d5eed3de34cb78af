package service

import (
	"strings"

	"papertrade/internal/ledger"
	"papertrade/internal/model"
	"papertrade/internal/watchlist"
)

// TradingService 把下单请求接到账本上：
// 补全选中标的、校验标的是否已知，其余交给账本。
type TradingService struct {
	ledger *ledger.Ledger
	watch  *watchlist.List
}

func NewTradingService(l *ledger.Ledger, w *watchlist.List) *TradingService {
	return &TradingService{ledger: l, watch: w}
}

// PlaceOrder 下一笔模拟订单。
// 请求里不带symbol时用当前选中的标的；标的不在自选里视为未选择。
func (s *TradingService) PlaceOrder(req ledger.OrderRequest) (model.Order, error) {
	req.Symbol = strings.TrimSpace(req.Symbol)
	if req.Symbol == "" {
		selected, ok := s.watch.Selected()
		if !ok {
			return model.Order{}, ledger.ErrNoSymbolSelected
		}
		req.Symbol = selected
	}
	if !s.watch.Contains(req.Symbol) {
		return model.Order{}, ledger.ErrNoSymbolSelected
	}
	return s.ledger.PlaceOrder(req)
}

// Account 账户快照
func (s *TradingService) Account() model.AccountView {
	return s.ledger.Snapshot()
}

// Orders 有界订单历史，最新在前
func (s *TradingService) Orders() []model.Order {
	return s.ledger.Snapshot().Orders
}

// Positions 当前持仓
func (s *TradingService) Positions() []model.Position {
	return s.ledger.Snapshot().Positions
}

// Reset 账户回到初始资金
func (s *TradingService) Reset() {
	s.ledger.Reset()
}
