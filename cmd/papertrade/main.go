package main

import (
	"context"
	"flag"
	"log"

	"papertrade/conf"
	"papertrade/pkg/logger"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	flag.Parse()

	// 加载配置文件
	if err := conf.LoadConfig(*configPath); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	logger.Init(conf.AppConfig.Log)

	ctx, cancel := context.WithCancel(context.Background())

	r, err := InitRouter(ctx)
	if err != nil {
		logger.Fatalf("init failed: %v", err)
	}

	s := NewServer(&conf.AppConfig)
	s.RegisterOnShutdown(func() {
		cancel()
		logger.Sync()
	})
	s.Run(r)
}
