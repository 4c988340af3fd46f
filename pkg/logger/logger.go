package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var L *zap.Logger

func init() {
	var err error
	L, err = New("info")
	if err != nil {
		panic(err)
	}
}

// New 依照指定層級建立 production logger；無法解析的層級回退為 info
func New(level string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		lvl = zapcore.InfoLevel
	}

	config := zap.NewProductionConfig()
	config.EncoderConfig.TimeKey = "ts"
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	config.Level = zap.NewAtomicLevelAt(lvl)
	return config.Build(zap.AddCallerSkip(1))
}

// SetLevel 重新建立全域 logger，給 cmd 入口依設定調整
func SetLevel(level string) error {
	l, err := New(level)
	if err != nil {
		return err
	}
	L = l
	return nil
}

// WithComponent 回傳帶有 component 欄位的 logger，供 handler、service、store 等使用
func WithComponent(component string) *zap.Logger {
	return L.With(zap.String("component", component))
}
