// Package app 把命令行解析、决策矩阵、输出和可选的历史记录串起来。
// 所有与操作系统的交互（标准输入输出、终端探测、退出）都通过字段注入，便于在进程内测试。
package app

import (
	"context"
	"fmt"
	"io"
	"time"

	"uuidgen/config"
	"uuidgen/logger"
	"uuidgen/pipeline"
	"uuidgen/uuid"
)

// historyTimeout 记录历史的最长时间，超时只记 WARN
const historyTimeout = 3 * time.Second

type App struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer

	StdinIsTerminal  func() bool
	StdoutIsTerminal func() bool

	// Terminate 结束本次调用；code 非 0 时 msg 是给用户的诊断信息
	Terminate func(code int, msg string)

	Config *config.Config
	// ConfigErr 配置加载失败；此时只响应 -h/--help，其余请求以该错误结束
	ConfigErr error
	Log       logger.LoggerInterface
	Random func() (uuid.UUID, error)
	Now    func() time.Time
}

// Main 执行一次调用并恰好调用一次 Terminate
func (a *App) Main(ctx context.Context, args []string) {
	a.defaults()

	if id, err := uuid.NewV4(); err == nil {
		ctx = logger.WithInvocation(ctx, id.String()[:8])
	}

	if err := a.Run(ctx, args); err != nil {
		a.Log.Error(ctx, "%v", err)
		a.Terminate(1, "uuidgen: "+err.Error())
		return
	}
	a.Terminate(0, "")
}

// Run 解析参数、产生并输出标识符。出错时标准输出没有任何字节。
func (a *App) Run(ctx context.Context, args []string) error {
	a.defaults()

	if a.ConfigErr != nil {
		req, err := pipeline.Resolve(args, pipeline.FormatLowercase)
		if err != nil {
			return err
		}
		if req.Help {
			return a.usage()
		}
		return a.ConfigErr
	}

	defaultFormat, err := pipeline.ParseFormat(a.Config.Output.Format)
	if err != nil {
		return err
	}
	trim, err := pipeline.ParseTrimMode(a.Config.Input.Trim)
	if err != nil {
		return err
	}

	req, err := pipeline.Resolve(args, defaultFormat)
	if err != nil {
		return err
	}
	if req.Help {
		return a.usage()
	}

	in := pipeline.Input{Availability: pipeline.Piped, Reader: a.Stdin}
	if a.StdinIsTerminal() {
		in.Availability = pipeline.Interactive
	}

	opts := []pipeline.Option{pipeline.WithTrim(trim), pipeline.WithLogger(a.Log)}
	if a.Random != nil {
		opts = append(opts, pipeline.WithRandom(a.Random))
	}

	res, err := pipeline.New(opts...).Generate(ctx, req.Version, in)
	if err != nil {
		return err
	}

	newline := req.Format != pipeline.FormatBinary && a.Config.Newline(a.StdoutIsTerminal())
	if err := pipeline.Render(a.Stdout, res.ID, req.Format, newline); err != nil {
		return err
	}

	a.record(ctx, res, req.Format)
	return nil
}

func (a *App) usage() error {
	_, err := io.WriteString(a.Stdout, usage)
	return err
}

// record 标识符已经完整写出，这里的任何失败都只记日志
func (a *App) record(ctx context.Context, res pipeline.Result, f pipeline.Format) {
	if a.Config.History.Driver == "" {
		return
	}

	ctx, cancel := context.WithTimeout(ctx, historyTimeout)
	defer cancel()

	rec, err := OpenHistory(ctx, a.Config.History)
	if err != nil {
		a.Log.Warn(ctx, "history: open %s: %v", a.Config.History.Driver, err)
		return
	}
	defer func() {
		if err := rec.Close(); err != nil {
			a.Log.Warn(ctx, "history: close: %v", err)
		}
	}()

	entry := historyEntry(res, f, a.Now())
	if err := rec.Record(ctx, entry); err != nil {
		a.Log.Warn(ctx, "history: record %s: %v", entry.ID, err)
	}
}

func (a *App) defaults() {
	if a.Config == nil {
		a.Config = config.Default()
	}
	if a.Log == nil {
		a.Log = logger.Log
	}
	if a.Now == nil {
		a.Now = time.Now
	}
	if a.StdinIsTerminal == nil {
		a.StdinIsTerminal = func() bool { return false }
	}
	if a.StdoutIsTerminal == nil {
		a.StdoutIsTerminal = func() bool { return false }
	}
	if a.Terminate == nil {
		a.Terminate = func(code int, msg string) {
			if msg != "" && a.Stderr != nil {
				fmt.Fprintln(a.Stderr, msg)
			}
		}
	}
}
