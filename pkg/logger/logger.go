package logger

import (
	"os"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"

	"papertrade/conf"
)

var (
	log  *zap.Logger
	slog *zap.SugaredLogger
	once sync.Once
)

// Init 根据配置初始化zap，支持文件滚动和控制台输出
func Init(cfg conf.LogConfig) {
	once.Do(func() {
		log = build(cfg)
		slog = log.Sugar()
	})
}

func build(cfg conf.LogConfig) *zap.Logger {
	level := zapcore.InfoLevel
	if cfg.Level != "" {
		if err := level.Set(cfg.Level); err != nil {
			level = zapcore.InfoLevel
		}
	}

	encCfg := zap.NewProductionEncoderConfig()
	if cfg.TimeFormat != "" {
		encCfg.EncodeTime = zapcore.TimeEncoderOfLayout(cfg.TimeFormat)
	} else {
		encCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	}

	var cores []zapcore.Core
	if cfg.FileName != "" {
		w := zapcore.AddSync(&lumberjack.Logger{
			Filename:   cfg.FileName,
			MaxSize:    cfg.MaxSize,
			MaxBackups: cfg.MaxBackups,
			MaxAge:     cfg.MaxAge,
			Compress:   cfg.Compress,
			LocalTime:  cfg.LocalTime,
		})
		cores = append(cores, zapcore.NewCore(zapcore.NewJSONEncoder(encCfg), w, level))
	}
	if cfg.Console || cfg.FileName == "" {
		cores = append(cores, zapcore.NewCore(zapcore.NewConsoleEncoder(encCfg), zapcore.AddSync(os.Stdout), level))
	}
	return zap.New(zapcore.NewTee(cores...), zap.AddCallerSkip(1))
}

// 未初始化时使用默认配置，测试里可以直接打日志
func l() *zap.Logger {
	if log == nil {
		Init(conf.LogConfig{Console: true})
	}
	return log
}

func s() *zap.SugaredLogger {
	l()
	return slog
}

// Pair 构造一个结构化日志字段
func Pair(key string, value interface{}) zap.Field {
	return zap.Any(key, value)
}

func Debug(msg string, fields ...zap.Field) { l().Debug(msg, fields...) }
func Info(msg string, fields ...zap.Field)  { l().Info(msg, fields...) }
func Warn(msg string, fields ...zap.Field)  { l().Warn(msg, fields...) }
func Error(msg string, fields ...zap.Field) { l().Error(msg, fields...) }
func Fatal(msg string, fields ...zap.Field) { l().Fatal(msg, fields...) }

func Debugf(format string, args ...interface{}) { s().Debugf(format, args...) }
func Infof(format string, args ...interface{})  { s().Infof(format, args...) }
func Warnf(format string, args ...interface{})  { s().Warnf(format, args...) }
func Errorf(format string, args ...interface{}) { s().Errorf(format, args...) }
func Fatalf(format string, args ...interface{}) { s().Fatalf(format, args...) }

// Sync 刷新缓冲日志，shutdown时调用
func Sync() {
	if log != nil {
		_ = log.Sync()
	}
}
