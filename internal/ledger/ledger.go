package ledger

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/shopspring/decimal"

	"papertrade/internal/model"
)

// 模拟交易账本：现金、持仓、订单历史都在内存里，进程退出即丢弃

// 下单前校验失败的原因，全部在任何状态变更之前返回
var (
	ErrNoSymbolSelected  = errors.New("no symbol selected")
	ErrInvalidQuantity   = errors.New("invalid quantity")
	ErrInvalidPrice      = errors.New("invalid price")
	ErrInsufficientFunds = errors.New("insufficient funds")
)

// QuoteReader 账本对行情缓存的只读视图
type QuoteReader interface {
	Lookup(symbol string) (model.Quote, bool)
}

// OrderRequest 一次下单请求。Quantity用decimal承载，
// 非整数的数量要作为InvalidQuantity拒掉而不是在绑定层丢失精度。
type OrderRequest struct {
	Symbol     string
	Side       model.OrderSide
	Type       model.OrderType
	Quantity   decimal.Decimal
	LimitPrice decimal.Decimal
}

// Ledger 持有账户状态，所有操作经过同一把锁串行化。
// 每次PlaceOrder都是一次原子转移：校验、扣/加现金、改持仓、记历史，
// 中途没有挂起点，拒单时不产生任何部分变更。
type Ledger struct {
	mu     sync.Mutex
	quotes QuoteReader
	node   *snowflake.Node

	seed       decimal.Decimal
	historyCap int

	cash      decimal.Decimal
	positions []*model.Position
	orders    []model.Order
}

func New(seedBalance decimal.Decimal, historyCap int, quotes QuoteReader, node *snowflake.Node) *Ledger {
	return &Ledger{
		quotes:     quotes,
		node:       node,
		seed:       seedBalance,
		historyCap: historyCap,
		cash:       seedBalance,
	}
}

// PlaceOrder 校验并立即成交一笔订单。
// 模拟市场对手方流动性无限，唯一的失败路径是下单前校验。
func (l *Ledger) PlaceOrder(req OrderRequest) (model.Order, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	symbol := strings.TrimSpace(req.Symbol)
	if symbol == "" {
		return model.Order{}, ErrNoSymbolSelected
	}
	if !req.Quantity.IsPositive() || !req.Quantity.IsInteger() {
		return model.Order{}, ErrInvalidQuantity
	}
	qty := req.Quantity.IntPart()

	// 市价单或未给限价时回落到最新行情价
	unit := decimal.Zero
	if req.Type != model.Market && req.LimitPrice.IsPositive() {
		unit = req.LimitPrice
	} else if q, ok := l.quotes.Lookup(symbol); ok {
		unit = q.Price
	}
	if !unit.IsPositive() {
		return model.Order{}, ErrInvalidPrice
	}

	notional := unit.Mul(decimal.NewFromInt(qty)).Round(2)
	if req.Side == model.Buy && l.cash.LessThan(notional) {
		return model.Order{}, fmt.Errorf("%w: required %s, available %s",
			ErrInsufficientFunds, notional.StringFixed(2), l.cash.StringFixed(2))
	}

	ord := model.Order{
		ID:        l.node.Generate().Int64(),
		Symbol:    symbol,
		Side:      req.Side,
		Quantity:  qty,
		Price:     unit,
		Type:      req.Type,
		Status:    model.OrderStatusFilled,
		CreatedAt: time.Now(),
	}

	// 历史最新在前，超过上限淘汰最旧的
	l.orders = append([]model.Order{ord}, l.orders...)
	if len(l.orders) > l.historyCap {
		l.orders = l.orders[:l.historyCap]
	}

	if req.Side == model.Buy {
		l.applyBuy(symbol, qty, unit, notional)
	} else {
		l.applySell(symbol, qty, unit, notional)
	}
	return ord, nil
}

func (l *Ledger) applyBuy(symbol string, qty int64, unit, notional decimal.Decimal) {
	l.cash = l.cash.Sub(notional)

	if pos := l.find(symbol, model.Long); pos != nil {
		// 同方向加仓按量加权平均，保留两位小数
		prevCost := pos.AvgPrice.Mul(decimal.NewFromInt(pos.Quantity))
		addCost := unit.Mul(decimal.NewFromInt(qty))
		newQty := pos.Quantity + qty
		pos.AvgPrice = prevCost.Add(addCost).Div(decimal.NewFromInt(newQty)).Round(2)
		pos.Quantity = newQty
		return
	}
	l.prepend(&model.Position{Symbol: symbol, Side: model.Long, Quantity: qty, AvgPrice: unit.Round(2)})
}

func (l *Ledger) applySell(symbol string, qty int64, unit, notional decimal.Decimal) {
	l.cash = l.cash.Add(notional)

	if pos := l.find(symbol, model.Long); pos != nil {
		pos.Quantity -= qty
		// 卖出数量超过持仓时直接平掉，不把多出的部分翻成空头
		if pos.Quantity <= 0 {
			l.remove(pos)
		}
		return
	}
	if pos := l.find(symbol, model.Short); pos != nil {
		// 空头只累加数量，不重新计算均价
		pos.Quantity += qty
		return
	}
	l.prepend(&model.Position{Symbol: symbol, Side: model.Short, Quantity: qty, AvgPrice: unit.Round(2)})
}

func (l *Ledger) find(symbol string, side model.PositionSide) *model.Position {
	for _, pos := range l.positions {
		if pos.Symbol == symbol && pos.Side == side {
			return pos
		}
	}
	return nil
}

func (l *Ledger) prepend(pos *model.Position) {
	l.positions = append([]*model.Position{pos}, l.positions...)
}

func (l *Ledger) remove(target *model.Position) {
	for i, pos := range l.positions {
		if pos == target {
			l.positions = append(l.positions[:i], l.positions[i+1:]...)
			return
		}
	}
}

// markPrice 持仓的标记价：有行情用行情，没有就退回开仓均价
func (l *Ledger) markPrice(pos *model.Position) decimal.Decimal {
	if q, ok := l.quotes.Lookup(pos.Symbol); ok {
		return q.Price
	}
	return pos.AvgPrice
}

func (l *Ledger) portfolioValueLocked() decimal.Decimal {
	total := decimal.Zero
	for _, pos := range l.positions {
		// 空头同样按 标记价*数量 计入，不取负值
		total = total.Add(l.markPrice(pos).Mul(decimal.NewFromInt(pos.Quantity)))
	}
	return total
}

func (l *Ledger) unrealizedPnLLocked() decimal.Decimal {
	total := decimal.Zero
	for _, pos := range l.positions {
		diff := l.markPrice(pos).Sub(pos.AvgPrice)
		total = total.Add(diff.Mul(decimal.NewFromInt(pos.Quantity)))
	}
	return total
}

// PortfolioValue 全部持仓按标记价计算的市值，纯派生值，不落地存储
func (l *Ledger) PortfolioValue() decimal.Decimal {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.portfolioValueLocked()
}

// UnrealizedPnL 未实现盈亏 sum((mark-avg)*qty)，每次重新计算
func (l *Ledger) UnrealizedPnL() decimal.Decimal {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.unrealizedPnLLocked()
}

// TotalValue 现金+持仓市值
func (l *Ledger) TotalValue() decimal.Decimal {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.cash.Add(l.portfolioValueLocked())
}

// CashBalance 当前现金余额
func (l *Ledger) CashBalance() decimal.Decimal {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.cash
}

// Snapshot 深拷贝一份账户状态给UI渲染
func (l *Ledger) Snapshot() model.AccountView {
	l.mu.Lock()
	defer l.mu.Unlock()

	positions := make([]model.Position, 0, len(l.positions))
	for _, pos := range l.positions {
		positions = append(positions, *pos)
	}
	orders := make([]model.Order, len(l.orders))
	copy(orders, l.orders)

	pv := l.portfolioValueLocked()
	return model.AccountView{
		CashBalance:    l.cash,
		PortfolioValue: pv,
		TotalValue:     l.cash.Add(pv),
		UnrealizedPnL:  l.unrealizedPnLLocked(),
		Positions:      positions,
		Orders:         orders,
	}
}

// Reset 回到初始资金，持仓和历史清空，等价于刷新页面重开一局
func (l *Ledger) Reset() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.cash = l.seed
	l.positions = nil
	l.orders = nil
}
