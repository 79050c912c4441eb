// Package db 定义已签发标识符的历史记录接口，具体存储在 xsqlite / xmysql / xredis。
//
// 历史记录只写不读：标识符写出到标准输出之后才记录，记录失败不影响退出码。
package db

import (
	"context"
	"math"
	"time"
)

// Entry 一条历史记录
type Entry struct {
	ID        string    `json:"id"`
	Action    string    `json:"action"`
	Format    string    `json:"format"`
	InputSize int       `json:"input_size"`
	CreatedAt time.Time `json:"created_at"`
}

type Recorder interface {
	Record(ctx context.Context, e Entry) error
	Close() error
}

type nop struct{}

// Nop 不记录
func Nop() Recorder { return nop{} }

func (nop) Record(context.Context, Entry) error { return nil }
func (nop) Close() error                        { return nil }

// MaxTries 写入失败时的最大尝试次数
const MaxTries = 5

// Retry 指数退避重试 fn：100ms, 200ms, 400ms ...，ctx 结束即返回最后一次错误
func Retry(ctx context.Context, fn func(ctx context.Context) error) error {
	var err error
	for tries := 0; tries < MaxTries; tries++ {
		if err = fn(ctx); err == nil {
			return nil
		}
		if tries == MaxTries-1 {
			break
		}
		wait := time.Duration(math.Pow(2, float64(tries))) * 100 * time.Millisecond
		timer := time.NewTimer(wait)
		select {
		case <-ctx.Done():
			timer.Stop()
			return err
		case <-timer.C:
		}
	}
	return err
}
