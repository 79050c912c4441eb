// Package xredis 把签发记录写入 Redis 列表（最新在前，长度有上限）。
//
//	rdb, _ := xredis.Open(ctx, xredis.Config{Addr: "localhost:6379", Key: "uuidgen:history"})
//	defer rdb.Close()
//	_ = rdb.Record(ctx, entry)
package xredis

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"uuidgen/db"
)

type Config struct {
	Addr        string
	Password    string
	DB          int
	Key         string
	MaxLen      int64 // <=0 不截断
	DialTimeout time.Duration
}

type DB struct {
	rdb *redis.Client
	cfg Config
}

var _ db.Recorder = (*DB)(nil)

func Open(ctx context.Context, cfg Config) (*DB, error) {
	if cfg.Key == "" {
		return nil, errors.New("key required")
	}
	if cfg.DialTimeout <= 0 {
		cfg.DialTimeout = 2 * time.Second
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:        cfg.Addr,
		Password:    cfg.Password,
		DB:          cfg.DB,
		DialTimeout: cfg.DialTimeout,
	})

	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, err
	}

	return &DB{rdb: rdb, cfg: cfg}, nil
}

func (d *DB) Record(ctx context.Context, e db.Entry) error {
	payload, err := json.Marshal(e)
	if err != nil {
		return err
	}
	return db.Retry(ctx, func(ctx context.Context) error {
		_, err := d.rdb.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			return push(ctx, pipe, d.cfg.Key, d.cfg.MaxLen, payload)
		})
		return err
	})
}

func push(ctx context.Context, c redis.Cmdable, key string, maxLen int64, payload []byte) error {
	if err := c.LPush(ctx, key, payload).Err(); err != nil {
		return err
	}
	if maxLen > 0 {
		return c.LTrim(ctx, key, 0, maxLen-1).Err()
	}
	return nil
}

func (d *DB) Close() error {
	return d.rdb.Close()
}
