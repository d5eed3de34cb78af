package watchlist

import (
	"github.com/gin-gonic/gin"

	"papertrade/internal/watchlist"
	"papertrade/pkg/errors"
	"papertrade/pkg/errors/ecode"
	"papertrade/pkg/response"
)

type Handler struct {
	list *watchlist.List
}

func NewHandler(l *watchlist.List) *Handler {
	return &Handler{list: l}
}

type symbolRequest struct {
	Symbol string `json:"symbol" binding:"required"`
}

// WatchlistGet 某个市场的自选列表，不带market返回全部
func (h *Handler) WatchlistGet() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		market := ctx.Query("market")
		var symbols []string
		if market == "" {
			symbols = h.list.All()
		} else {
			symbols = h.list.Symbols(watchlist.Market(market))
		}
		selected, _ := h.list.Selected()
		response.JSON(ctx, nil, gin.H{
			"symbols":  symbols,
			"selected": selected,
		})
	}
}

// WatchlistAdd 添加自选，市场按符号后缀识别
func (h *Handler) WatchlistAdd() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		var req symbolRequest
		if err := ctx.ShouldBindJSON(&req); err != nil {
			response.JSON(ctx, errors.WithCode(ecode.ValidateErr, err.Error()), nil)
			return
		}
		if !h.list.Add(req.Symbol) {
			response.JSON(ctx, errors.WithCode(ecode.ValidateErr, "symbol already in watchlist"), nil)
			return
		}
		response.JSON(ctx, nil, gin.H{"symbol": req.Symbol})
	}
}

// WatchlistRemove 移除自选
func (h *Handler) WatchlistRemove() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		var req symbolRequest
		if err := ctx.ShouldBindJSON(&req); err != nil {
			response.JSON(ctx, errors.WithCode(ecode.ValidateErr, err.Error()), nil)
			return
		}
		if !h.list.Remove(req.Symbol) {
			response.JSON(ctx, errors.WithCode(ecode.NotFoundErr, "symbol not in watchlist"), nil)
			return
		}
		response.JSON(ctx, nil, gin.H{"symbol": req.Symbol})
	}
}

// WatchlistSelect 选中要交易的标的
func (h *Handler) WatchlistSelect() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		var req symbolRequest
		if err := ctx.ShouldBindJSON(&req); err != nil {
			response.JSON(ctx, errors.WithCode(ecode.ValidateErr, err.Error()), nil)
			return
		}
		if !h.list.Select(req.Symbol) {
			response.JSON(ctx, errors.WithCode(ecode.NotFoundErr, "symbol not in watchlist"), nil)
			return
		}
		response.JSON(ctx, nil, gin.H{"selected": req.Symbol})
	}
}
