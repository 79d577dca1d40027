package logger

import "go.uber.org/zap"

// Option 日志实例配置选项
type Option = zap.Option

// AddCaller 在日志中记录调用位置
func AddCaller() Option {
	return zap.AddCaller()
}

// AddCallerSkip 调整调用位置的栈层数
func AddCallerSkip(skip int) Option {
	return zap.AddCallerSkip(skip)
}

// AddStacktrace 指定级别及以上输出调用栈
func AddStacktrace(level Level) Option {
	return zap.AddStacktrace(toZapLevel(level))
}
