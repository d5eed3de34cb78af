package order

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"papertrade/internal/ledger"
	"papertrade/internal/model"
	"papertrade/internal/service"
	"papertrade/pkg/errors"
	"papertrade/pkg/errors/ecode"
	"papertrade/pkg/logger"
	"papertrade/pkg/response"
)

type Handler struct {
	trading *service.TradingService
}

func NewHandler(s *service.TradingService) *Handler {
	return &Handler{trading: s}
}

type placeOrderRequest struct {
	// 不带symbol时使用当前选中的标的
	Symbol string `json:"symbol"`

	Side model.OrderSide `json:"side" binding:"required,oneof=buy sell"`
	Type model.OrderType `json:"order_type" binding:"required,oneof=market limit stop_loss"`

	// 数量和价格不在绑定层校验，账本对它们有独立的拒单原因
	Quantity decimal.Decimal `json:"quantity"`
	Price    decimal.Decimal `json:"price"`
}

type orderView struct {
	ID       string `json:"id"`
	Symbol   string `json:"symbol"`
	Side     string `json:"side"`
	Quantity int64  `json:"quantity"`
	Price    string `json:"price"` // 市价单显示MKT
	Type     string `json:"order_type"`
	Status   string `json:"status"`
	Time     string `json:"time"`
}

// 雪花ID超出前端Number安全范围，展示层一律用字符串
func snowflakeString(id int64) string {
	return strconv.FormatInt(id, 10)
}

func newOrderView(o model.Order) orderView {
	return orderView{
		ID:       snowflakeString(o.ID),
		Symbol:   o.Symbol,
		Side:     string(o.Side),
		Quantity: o.Quantity,
		Price:    o.PriceLabel(),
		Type:     string(o.Type),
		Status:   string(o.Status),
		Time:     o.CreatedAt.Format("15:04:05"),
	}
}

// OrderPlace 下一笔模拟订单
func (h *Handler) OrderPlace() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		var req placeOrderRequest
		if err := ctx.ShouldBindJSON(&req); err != nil {
			response.JSON(ctx, errors.WithCode(ecode.ValidateErr, err.Error()), nil)
			return
		}

		ord, err := h.trading.PlaceOrder(ledger.OrderRequest{
			Symbol:     req.Symbol,
			Side:       req.Side,
			Type:       req.Type,
			Quantity:   req.Quantity,
			LimitPrice: req.Price,
		})
		if err != nil {
			logger.Infof("order rejected: %v", err)
			response.JSON(ctx, errors.WithCode(rejectionCode(err), err.Error()), nil)
			return
		}
		response.JSON(ctx, nil, newOrderView(ord))
	}
}

// OrderGetList 有界订单历史，最新在前
func (h *Handler) OrderGetList() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		src := h.trading.Orders()
		views := make([]orderView, 0, len(src))
		for _, o := range src {
			views = append(views, newOrderView(o))
		}
		response.JSON(ctx, nil, views)
	}
}

// rejectionCode 把账本的拒单原因映射成业务码
func rejectionCode(err error) int {
	switch {
	case errors.Is(err, ledger.ErrNoSymbolSelected):
		return ecode.NoSymbolSelectedErr
	case errors.Is(err, ledger.ErrInvalidQuantity):
		return ecode.InvalidQuantityErr
	case errors.Is(err, ledger.ErrInvalidPrice):
		return ecode.InvalidPriceErr
	case errors.Is(err, ledger.ErrInsufficientFunds):
		return ecode.InsufficientFundsErr
	default:
		return ecode.Unknown
	}
}
