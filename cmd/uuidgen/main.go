// Command uuidgen prints one UUID: random (v4), name-based from stdin (v5),
// or a UUID read from stdin and re-encoded in another format.
package main

import (
	"context"
	"fmt"
	"os"

	"uuidgen/app"
	"uuidgen/config"
	"uuidgen/logger"
	"uuidgen/terminal"
)

func main() {
	// 配置错误交给 app：-h 仍然可用，其他请求以退出码 1 结束
	cfg, cfgErr := config.Load(os.Getenv)

	if cfgErr == nil && cfg.Log.File != "" {
		formatter := logger.TextFormatter
		if cfg.Log.Format == "json" {
			formatter = logger.JSONFormatter
		}
		logger.Log = logger.NewLogger(cfg.Log.File, cfg.Log.MaxSize, cfg.Log.MaxBackups, cfg.Log.MaxAge, cfg.Log.Compress, formatter)
	}

	a := &app.App{
		Stdin:            os.Stdin,
		Stdout:           os.Stdout,
		Stderr:           os.Stderr,
		StdinIsTerminal:  terminal.Stdin,
		StdoutIsTerminal: terminal.Stdout,
		Config:           cfg,
		ConfigErr:        cfgErr,
		Log:              logger.Log,
		Terminate: func(code int, msg string) {
			logger.Log.Close()
			if msg != "" {
				fmt.Fprintln(os.Stderr, msg)
			}
			os.Exit(code)
		},
	}

	a.Main(context.Background(), os.Args[1:])
}
