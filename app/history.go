package app

import (
	"context"
	"fmt"
	"time"

	"uuidgen/config"
	"uuidgen/db"
	"uuidgen/db/xmysql"
	"uuidgen/db/xredis"
	"uuidgen/db/xsqlite"
	"uuidgen/pipeline"
)

// OpenHistory 按配置打开历史记录；未配置 driver 时返回 db.Nop()
func OpenHistory(ctx context.Context, cfg config.HistoryConfig) (db.Recorder, error) {
	switch cfg.Driver {
	case "":
		return db.Nop(), nil
	case "sqlite":
		d, err := xsqlite.Open(ctx, xsqlite.Config{DBPath: cfg.SQLitePath})
		if err != nil {
			return nil, err
		}
		return d, nil
	case "mysql":
		dsn := cfg.MySQLDSN
		if dsn == "" {
			m := cfg.MySQL
			dsn = xmysql.BuildMySQLDSN(m.User, m.Password, m.Host, m.Port, m.DBName)
		}
		d, err := xmysql.Open(ctx, xmysql.Config{DSN: dsn})
		if err != nil {
			return nil, err
		}
		return d, nil
	case "redis":
		r := cfg.Redis
		d, err := xredis.Open(ctx, xredis.Config{Addr: r.Addr, Password: r.Password, DB: r.DB, Key: r.Key, MaxLen: r.MaxLen})
		if err != nil {
			return nil, err
		}
		return d, nil
	default:
		return nil, fmt.Errorf("unknown history driver %q", cfg.Driver)
	}
}

func historyEntry(res pipeline.Result, f pipeline.Format, now time.Time) db.Entry {
	return db.Entry{
		ID:        res.ID.String(),
		Action:    res.Action.String(),
		Format:    f.String(),
		InputSize: res.InputSize,
		CreatedAt: now,
	}
}
