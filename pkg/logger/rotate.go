package logger

import (
	"io"
	"os"
	"time"

	rotatelogs "github.com/lestrrat-go/file-rotatelogs"
	"gopkg.in/natefinch/lumberjack.v2"
)

// RotateConfig 日志轮转配置
type RotateConfig struct {
	Filename string // 日志文件路径

	// 按大小轮转的参数
	MaxSize    int  // 单文件最大尺寸，单位MB
	MaxBackups int  // 最多保留的旧文件数
	Compress   bool // 是否压缩旧文件

	// 按时间轮转的参数
	RotationTime time.Duration // 轮转周期

	MaxAge    int  // 文件保留天数
	LocalTime bool // 是否使用本地时间
}

// NewRotateBySize 创建按大小轮转的日志输出
func NewRotateBySize(cfg *RotateConfig) io.Writer {
	return &lumberjack.Logger{
		Filename:   cfg.Filename,
		MaxSize:    cfg.MaxSize,
		MaxAge:     cfg.MaxAge,
		MaxBackups: cfg.MaxBackups,
		LocalTime:  cfg.LocalTime,
		Compress:   cfg.Compress,
	}
}

// NewProductionRotateBySize 以生产环境常用参数创建按大小轮转的日志输出
func NewProductionRotateBySize(filename string) io.Writer {
	return NewRotateBySize(&RotateConfig{
		Filename:   filename,
		MaxSize:    100,
		MaxAge:     30,
		MaxBackups: 100,
		LocalTime:  true,
		Compress:   true,
	})
}

// NewRotateByTime 创建按时间轮转的日志输出
// 轮转文件名在原文件名后追加时间戳
func NewRotateByTime(cfg *RotateConfig) io.Writer {
	rotationTime := cfg.RotationTime
	if rotationTime <= 0 {
		rotationTime = 24 * time.Hour
	}

	opts := []rotatelogs.Option{
		rotatelogs.WithRotationTime(rotationTime),
		rotatelogs.WithLinkName(cfg.Filename),
	}
	if cfg.MaxAge > 0 {
		opts = append(opts, rotatelogs.WithMaxAge(time.Duration(cfg.MaxAge)*24*time.Hour))
	}
	if cfg.LocalTime {
		opts = append(opts, rotatelogs.WithClock(rotatelogs.Local))
	} else {
		opts = append(opts, rotatelogs.WithClock(rotatelogs.UTC))
	}

	w, err := rotatelogs.New(cfg.Filename+".%Y%m%d%H%M", opts...)
	if err != nil {
		// 轮转文件创建失败时退回标准错误，保证日志不丢
		return os.Stderr
	}
	return w
}

// NewProductionRotateByTime 以生产环境常用参数创建按时间轮转的日志输出
func NewProductionRotateByTime(filename string) io.Writer {
	return NewRotateByTime(&RotateConfig{
		Filename:     filename,
		RotationTime: 24 * time.Hour,
		MaxAge:       30,
		LocalTime:    true,
	})
}
