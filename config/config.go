package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// EnvConfig 显式指定配置文件路径的环境变量
const EnvConfig = "UUIDGEN_CONFIG"

// Config 结构体
type Config struct {
	Output  OutputConfig  `toml:"output"`
	Input   InputConfig   `toml:"input"`
	Log     LogConfig     `toml:"log"`
	History HistoryConfig `toml:"history"`
}

type OutputConfig struct {
	Format  string `toml:"format"`  // lowercase | uppercase | binary，命令行参数优先
	Newline string `toml:"newline"` // auto | always | never
}

type InputConfig struct {
	Trim string `toml:"trim"` // whitespace | newline | none，v5 哈希前的处理
}

type LogConfig struct {
	File       string `toml:"file"` // 为空则不写日志
	MaxSize    int    `toml:"max_size"`
	MaxBackups int    `toml:"max_backups"`
	MaxAge     int    `toml:"max_age"`
	Compress   bool   `toml:"compress"`
	Format     string `toml:"format"` // text | json
}

type HistoryConfig struct {
	Driver     string      `toml:"driver"` // "" | sqlite | mysql | redis
	SQLitePath string      `toml:"sqlite_path"`
	MySQLDSN   string      `toml:"mysql_dsn"`
	MySQL      MySQLConfig `toml:"mysql"`
	Redis      RedisConfig `toml:"redis"`
}

type MySQLConfig struct {
	Host     string `toml:"host"`
	Port     int    `toml:"port"`
	User     string `toml:"user"`
	Password string `toml:"password"`
	DBName   string `toml:"dbname"`
}

type RedisConfig struct {
	Addr     string `toml:"addr"`
	Password string `toml:"password"`
	DB       int    `toml:"db"`
	Key      string `toml:"key"`
	MaxLen   int64  `toml:"max_len"`
}

// Default 未提供配置文件时的取值
func Default() *Config {
	return &Config{
		Output: OutputConfig{Format: "lowercase", Newline: "auto"},
		Input:  InputConfig{Trim: "whitespace"},
		Log:    LogConfig{MaxSize: 10, MaxBackups: 3, MaxAge: 28, Format: "text"},
		History: HistoryConfig{
			SQLitePath: "uuidgen.db",
			MySQL:      MySQLConfig{Host: "127.0.0.1", Port: 3306, DBName: "uuidgen"},
			Redis:      RedisConfig{Addr: "127.0.0.1:6379", Key: "uuidgen:history", MaxLen: 10000},
		},
	}
}

// LoadConfig 在默认值之上依次加载多个 toml 文件（后面的会覆盖前面的同名字段）
func LoadConfig(files ...string) (*Config, error) {
	cfg := Default()
	for _, file := range files {
		if _, err := os.Stat(file); err != nil {
			if os.IsNotExist(err) {
				return nil, fmt.Errorf("配置文件不存在: %s", file)
			}
			return nil, err
		}
		md, err := toml.DecodeFile(file, cfg)
		if err != nil {
			return nil, fmt.Errorf("解析配置文件失败 %s: %w", file, err)
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			keys := make([]string, len(undecoded))
			for i, k := range undecoded {
				keys[i] = k.String()
			}
			return nil, fmt.Errorf("配置文件 %s 含未知字段: %s", file, strings.Join(keys, ", "))
		}
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Load 查找顺序：$UUIDGEN_CONFIG（必须存在）> 用户配置目录下的 uuidgen/config.toml（存在才加载）> 默认值
func Load(getenv func(string) string) (*Config, error) {
	if path := getenv(EnvConfig); path != "" {
		return LoadConfig(path)
	}
	if path := userConfigPath(getenv); path != "" {
		if _, err := os.Stat(path); err == nil {
			return LoadConfig(path)
		}
	}
	return LoadConfig()
}

func userConfigPath(getenv func(string) string) string {
	if dir := getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, "uuidgen", "config.toml")
	}
	if home := getenv("HOME"); home != "" {
		return filepath.Join(home, ".config", "uuidgen", "config.toml")
	}
	return ""
}

func (c *Config) Validate() error {
	var errs []error
	check := func(field, value string, allowed ...string) {
		for _, a := range allowed {
			if value == a {
				return
			}
		}
		errs = append(errs, fmt.Errorf("%s: unknown value %q (allowed: %s)", field, value, strings.Join(allowed, ", ")))
	}

	check("output.format", c.Output.Format, "lowercase", "uppercase", "binary")
	check("output.newline", c.Output.Newline, "auto", "always", "never")
	check("input.trim", c.Input.Trim, "whitespace", "newline", "none")
	check("log.format", c.Log.Format, "text", "json")
	check("history.driver", c.History.Driver, "", "sqlite", "mysql", "redis")

	switch c.History.Driver {
	case "sqlite":
		if c.History.SQLitePath == "" {
			errs = append(errs, errors.New("history.sqlite_path is required for the sqlite driver"))
		}
	case "redis":
		if c.History.Redis.Addr == "" || c.History.Redis.Key == "" {
			errs = append(errs, errors.New("history.redis.addr and history.redis.key are required for the redis driver"))
		}
	}

	return errors.Join(errs...)
}

// Newline 文本输出是否追加换行；auto 时跟随标准输出是否为终端
func (c *Config) Newline(stdoutIsTerminal bool) bool {
	switch c.Output.Newline {
	case "always":
		return true
	case "never":
		return false
	default:
		return stdoutIsTerminal
	}
}
