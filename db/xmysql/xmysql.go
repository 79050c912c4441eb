// Package xmysql 把签发记录写入 MySQL。
package xmysql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net"
	"strconv"
	"time"

	"github.com/go-sql-driver/mysql"

	"uuidgen/db"
)

const schema = `CREATE TABLE IF NOT EXISTS uuid_history (
    seq        BIGINT AUTO_INCREMENT PRIMARY KEY,
    id         CHAR(36)    NOT NULL,
    action     VARCHAR(16) NOT NULL,
    format     VARCHAR(16) NOT NULL,
    input_size BIGINT      NOT NULL,
    created_at TIMESTAMP   NOT NULL
);`

const insert = `INSERT INTO uuid_history(id, action, format, input_size, created_at) VALUES(?,?,?,?,?)`

type Config struct {
	DSN     string // "user:pass@tcp(host:3306)/dbname?parseTime=true"
	MaxLife time.Duration
	Timeout time.Duration
}

type DB struct {
	sqldb *sql.DB
}

var _ db.Recorder = (*DB)(nil)

func Open(ctx context.Context, cfg Config) (*DB, error) {
	if cfg.DSN == "" {
		return nil, errors.New("DSN required")
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 5 * time.Second
	}

	// 校验并补上连接超时
	mc, err := mysql.ParseDSN(cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("invalid DSN: %w", err)
	}
	if mc.Timeout == 0 {
		mc.Timeout = cfg.Timeout
	}
	mc.ParseTime = true

	connector, err := mysql.NewConnector(mc)
	if err != nil {
		return nil, err
	}
	sqldb := sql.OpenDB(connector)
	sqldb.SetMaxOpenConns(1)
	sqldb.SetConnMaxLifetime(cfg.MaxLife)

	return open(ctx, sqldb)
}

// open 建表后返回；失败时关闭 sqldb
func open(ctx context.Context, sqldb *sql.DB) (*DB, error) {
	if _, err := sqldb.ExecContext(ctx, schema); err != nil {
		_ = sqldb.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}
	return &DB{sqldb: sqldb}, nil
}

func (d *DB) Record(ctx context.Context, e db.Entry) error {
	return db.Retry(ctx, func(ctx context.Context) error {
		_, err := d.sqldb.ExecContext(ctx, insert, e.ID, e.Action, e.Format, e.InputSize, e.CreatedAt.UTC())
		return err
	})
}

func (d *DB) Close() error {
	return d.sqldb.Close()
}

// BuildMySQLDSN 由分项配置拼出 DSN
func BuildMySQLDSN(user, password, host string, port int, dbname string) string {
	mc := mysql.NewConfig()
	mc.User = user
	mc.Passwd = password
	mc.Net = "tcp"
	mc.Addr = net.JoinHostPort(host, strconv.Itoa(port))
	mc.DBName = dbname
	mc.ParseTime = true
	mc.Loc = time.UTC
	return mc.FormatDSN()
}
