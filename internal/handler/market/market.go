package market

import (
	"strings"

	"github.com/gin-gonic/gin"

	"papertrade/internal/service"
	"papertrade/pkg/errors"
	"papertrade/pkg/errors/ecode"
	"papertrade/pkg/response"
)

type MarketHandler struct {
	market  *service.MarketDataService
	gateway *TickerGateway
}

func NewMarketHandler(ms *service.MarketDataService) *MarketHandler {
	return &MarketHandler{
		market:  ms,
		gateway: NewTickerGateway(ms),
	}
}

// QuoteGetList 一批标的的最新快照 ?symbols=a,b,c 不传返回全部自选
func (h *MarketHandler) QuoteGetList() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		var symbols []string
		if raw := ctx.Query("symbols"); raw != "" {
			for _, s := range strings.Split(raw, ",") {
				if s = strings.TrimSpace(s); s != "" {
					symbols = append(symbols, s)
				}
			}
		}
		response.JSON(ctx, nil, h.market.Quotes(symbols))
	}
}

// SeriesGet 某个市场的图表价格序列
func (h *MarketHandler) SeriesGet() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		market := ctx.Query("market")
		if market == "" {
			response.JSON(ctx, errors.WithCode(ecode.ValidateErr, "market is required"), nil)
			return
		}
		response.JSON(ctx, nil, h.market.Series(market))
	}
}

// ServeWS 实时价格推送的websocket入口
func (h *MarketHandler) ServeWS(c *gin.Context) {
	h.gateway.ServeWS(c)
}
