package router

import (
	"github.com/gin-gonic/gin"

	"papertrade/internal/handler/account"
	"papertrade/internal/handler/market"
	"papertrade/internal/handler/order"
	"papertrade/internal/handler/ping"
	"papertrade/internal/handler/watchlist"
	"papertrade/internal/middleware"
)

type ApiRouter struct {
	orderHandler   *order.Handler
	accountHandler *account.Handler
	marketHandler  *market.MarketHandler
	watchHandler   *watchlist.Handler
}

func NewApiRouter(oh *order.Handler, ah *account.Handler, mh *market.MarketHandler, wh *watchlist.Handler) *ApiRouter {
	return &ApiRouter{orderHandler: oh, accountHandler: ah, marketHandler: mh, watchHandler: wh}
}

func (api *ApiRouter) Load(g *gin.Engine) {
	g.Use(gin.Recovery())
	g.Use(middleware.RequestId())
	g.Use(middleware.Logger)
	g.Use(middleware.Options())
	g.Use(middleware.Secure())

	g.GET("/ping", ping.Ping)

	base := g.Group("/api/v1")

	o := base.Group("/orders", middleware.NoCache())
	{
		o.POST("", api.orderHandler.OrderPlace())
		o.GET("", api.orderHandler.OrderGetList())
	}

	a := base.Group("/account", middleware.NoCache())
	{
		a.GET("", api.accountHandler.AccountGetSummary())
		a.GET("/positions", api.accountHandler.PositionGetList())
		a.POST("/reset", middleware.AntiDuplicateMiddleware(), api.accountHandler.AccountReset())
	}

	m := base.Group("/market")
	{
		m.GET("/quotes", middleware.NoCache(), api.marketHandler.QuoteGetList())
		m.GET("/series", middleware.NoCache(), api.marketHandler.SeriesGet())
		// websocket长连接，不挂防抖中间件
		m.GET("/ws", api.marketHandler.ServeWS)
	}

	w := base.Group("/watchlist")
	{
		w.GET("", api.watchHandler.WatchlistGet())
		w.POST("/add", api.watchHandler.WatchlistAdd())
		w.POST("/remove", api.watchHandler.WatchlistRemove())
		w.POST("/select", api.watchHandler.WatchlistSelect())
	}
}
