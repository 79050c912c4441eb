// Package xsqlite 把签发记录写入本地 SQLite 文件。
//
// 使用 modernc.org/sqlite，纯 Go 实现，无需 cgo。
package xsqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/url"
	"time"

	_ "modernc.org/sqlite"

	"uuidgen/db"
)

const schema = `CREATE TABLE IF NOT EXISTS uuid_history (
    seq        INTEGER PRIMARY KEY AUTOINCREMENT,
    id         TEXT    NOT NULL,
    action     TEXT    NOT NULL,
    format     TEXT    NOT NULL,
    input_size INTEGER NOT NULL,
    created_at INTEGER NOT NULL
);`

const insert = `INSERT INTO uuid_history(id, action, format, input_size, created_at) VALUES(?,?,?,?,?)`

type Config struct {
	DBPath      string
	BusyTimeout time.Duration
}

type DB struct {
	sqldb *sql.DB
}

var _ db.Recorder = (*DB)(nil)

func Open(ctx context.Context, cfg Config) (*DB, error) {
	if cfg.DBPath == "" {
		return nil, errors.New("DBPath required")
	}
	if cfg.BusyTimeout <= 0 {
		cfg.BusyTimeout = 5 * time.Second
	}

	sqldb, err := sql.Open("sqlite", dsn(cfg.DBPath, cfg.BusyTimeout))
	if err != nil {
		return nil, err
	}
	sqldb.SetMaxOpenConns(1)

	if _, err := sqldb.ExecContext(ctx, schema); err != nil {
		_ = sqldb.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &DB{sqldb: sqldb}, nil
}

// dsn 路径按 URI 转义，文件名里的 ? # % 不会被当成查询参数
func dsn(path string, busyTimeout time.Duration) string {
	escaped := (&url.URL{Path: path}).EscapedPath()
	return fmt.Sprintf("file:%s?_pragma=busy_timeout(%d)&_pragma=journal_mode(WAL)",
		escaped, int(busyTimeout.Milliseconds()))
}

func (d *DB) Record(ctx context.Context, e db.Entry) error {
	return db.Retry(ctx, func(ctx context.Context) error {
		_, err := d.sqldb.ExecContext(ctx, insert, e.ID, e.Action, e.Format, e.InputSize, e.CreatedAt.Unix())
		return err
	})
}

// Recent 按时间倒序返回最近 n 条记录。
// 命令行本身只写不读，这里供排查和测试回读使用。
func (d *DB) Recent(ctx context.Context, n int) ([]db.Entry, error) {
	rows, err := d.sqldb.QueryContext(ctx,
		`SELECT id, action, format, input_size, created_at FROM uuid_history ORDER BY seq DESC LIMIT ?`, n)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []db.Entry
	for rows.Next() {
		var (
			e  db.Entry
			ts int64
		)
		if err := rows.Scan(&e.ID, &e.Action, &e.Format, &e.InputSize, &ts); err != nil {
			return nil, err
		}
		e.CreatedAt = time.Unix(ts, 0)
		out = append(out, e)
	}
	return out, rows.Err()
}

func (d *DB) Close() error {
	return d.sqldb.Close()
}
