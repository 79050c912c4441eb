package logger

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"gopkg.in/natefinch/lumberjack.v2"

	"uuidgen/concurrency"
)

type Logger struct {
	writer    io.WriteCloser
	logChan   chan string
	wg        sync.WaitGroup
	closeOnce sync.Once
	mu        sync.RWMutex
	formatter Formatter
	stderr    io.Writer
}

// TextFormatter 默认格式化器
func TextFormatter(level, msg string, t time.Time) string {
	return fmt.Sprintf("%s [%s] %s\n",
		t.Format("2006-01-02 15:04:05"),
		level,
		msg,
	)
}

// JSONFormatter 每行一个 JSON 对象
func JSONFormatter(level, msg string, t time.Time) string {
	m := map[string]interface{}{
		"time":  t.Format(time.RFC3339),
		"level": level,
		"msg":   msg,
	}
	b, _ := json.Marshal(m)
	return string(b) + "\n"
}

// NewLogger 返回写入滚动日志文件的 LoggerInterface
func NewLogger(filename string, maxSize, maxBackups, maxAge int, compress bool, formatter Formatter) LoggerInterface {
	return newLogger(&lumberjack.Logger{
		Filename:   filename,
		MaxSize:    maxSize,
		MaxBackups: maxBackups,
		MaxAge:     maxAge,
		Compress:   compress,
	}, formatter)
}

func newLogger(w io.WriteCloser, formatter Formatter) *Logger {
	if formatter == nil {
		formatter = TextFormatter
	}
	l := &Logger{
		writer:    w,
		logChan:   make(chan string, 1000),
		formatter: formatter,
		stderr:    os.Stderr,
	}

	concurrency.SafeGo(l.run, &l.wg)

	return l
}

func (l *Logger) run() {
	for msg := range l.logChan {
		if _, err := l.writer.Write([]byte(msg)); err != nil {
			fmt.Fprintf(l.stderr, "logger write error: %v\n", err)
		}
	}
}

func (l *Logger) log(ctx context.Context, level, format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	if id := InvocationID(ctx); id != "" {
		msg = "[" + id + "] " + msg
	}

	l.mu.RLock()
	formatted := l.formatter(level, msg, time.Now())
	l.mu.RUnlock()

	select {
	case l.logChan <- formatted:
	default:
		// 丢弃日志时，保证至少在 stderr 打出来
		fmt.Fprintf(l.stderr, "logger channel full, drop log: %s\n", msg)
	}
}

func (l *Logger) Info(ctx context.Context, format string, args ...interface{}) {
	l.log(ctx, "INFO", format, args...)
}

func (l *Logger) Warn(ctx context.Context, format string, args ...interface{}) {
	l.log(ctx, "WARN", format, args...)
}

func (l *Logger) Error(ctx context.Context, format string, args ...interface{}) {
	l.log(ctx, "ERROR", format, args...)
}

func (l *Logger) SetFormatter(f Formatter) {
	if f != nil {
		l.mu.Lock()
		l.formatter = f
		l.mu.Unlock()
	}
}

// Close 等待队列中的日志写完再关闭文件；Close 之后不能再写日志
func (l *Logger) Close() {
	l.closeOnce.Do(func() {
		close(l.logChan)
		l.wg.Wait()
		_ = l.writer.Close()
	})
}

// ======================= Nop =======================

type nop struct{}

// Nop 丢弃所有日志，未配置日志文件时使用
func Nop() LoggerInterface { return nop{} }

func (nop) Info(context.Context, string, ...interface{})  {}
func (nop) Warn(context.Context, string, ...interface{})  {}
func (nop) Error(context.Context, string, ...interface{}) {}
func (nop) SetFormatter(Formatter)                        {}
func (nop) Close()                                        {}
