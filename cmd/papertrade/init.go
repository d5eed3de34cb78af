package main

import (
	"context"

	"github.com/bwmarrin/snowflake"
	"github.com/shopspring/decimal"

	"papertrade/conf"
	accounthandler "papertrade/internal/handler/account"
	markethandler "papertrade/internal/handler/market"
	orderhandler "papertrade/internal/handler/order"
	watchhandler "papertrade/internal/handler/watchlist"
	"papertrade/internal/ledger"
	"papertrade/internal/quote"
	"papertrade/internal/router"
	"papertrade/internal/service"
	"papertrade/internal/watchlist"
	"papertrade/pkg/logger"
)

// InitRouter 组装全部依赖并启动行情源
func InitRouter(ctx context.Context) (Router, error) {
	appCfg := conf.AppConfig

	cache := quote.NewCache()
	watch := watchlist.New(appCfg.Markets)

	node, err := snowflake.NewNode(1)
	if err != nil {
		return nil, err
	}

	l := ledger.New(decimal.NewFromFloat(appCfg.Trading.SeedBalance), appCfg.Trading.OrderHistoryCap, cache, node)

	trading := service.NewTradingService(l, watch)
	marketData := service.NewMarketDataService(appCfg.Markets, cache, watch)

	// 开始拉取/接收行情
	marketData.Start(ctx)
	logger.Infof("market feeds started, seed balance %.2f", appCfg.Trading.SeedBalance)

	apiRouter := router.NewApiRouter(
		orderhandler.NewHandler(trading),
		accounthandler.NewHandler(trading),
		markethandler.NewMarketHandler(marketData),
		watchhandler.NewHandler(watch),
	)
	return apiRouter, nil
}
