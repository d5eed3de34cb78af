package feed

import (
	"context"

	"papertrade/internal/model"
)

// 行情获取：轮询或推送，统一写入行情缓存。
// 任何网络/解析错误只记日志并降级，绝不向交易链路抛错。

// Sink 行情源对缓存的唯一写入口
type Sink interface {
	Apply(q model.Quote)
}

// Source 一路行情源，Run阻塞直到ctx取消
type Source interface {
	Name() string
	Run(ctx context.Context)
}

// Manager 启动并持有全部行情源
type Manager struct {
	sources []Source
}

func NewManager(sources ...Source) *Manager {
	return &Manager{sources: sources}
}

func (m *Manager) Start(ctx context.Context) {
	for _, src := range m.sources {
		go src.Run(ctx)
	}
}
