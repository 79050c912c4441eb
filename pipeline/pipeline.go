package pipeline

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"unicode"

	"uuidgen/logger"
	"uuidgen/uuid"
)

// TrimMode v5 哈希前对输入末尾的处理。
// 默认 TrimWhitespace：`echo hello | uuidgen v5` 与 `printf hello | uuidgen v5` 结果相同。
type TrimMode int

const (
	TrimWhitespace TrimMode = iota
	TrimNewline             // 只去掉一个 "\n" 或 "\r\n"
	TrimNone
)

func ParseTrimMode(s string) (TrimMode, error) {
	switch s {
	case "", "whitespace":
		return TrimWhitespace, nil
	case "newline":
		return TrimNewline, nil
	case "none":
		return TrimNone, nil
	default:
		return TrimWhitespace, fmt.Errorf("unknown trim mode %q", s)
	}
}

func (m TrimMode) apply(b []byte) []byte {
	switch m {
	case TrimWhitespace:
		return bytes.TrimRightFunc(b, unicode.IsSpace)
	case TrimNewline:
		return trimLineTerminator(b)
	default:
		return b
	}
}

// Input 标准输入及其状态；Reader 只有在决策需要时才会被读取
type Input struct {
	Availability Availability
	Reader       io.Reader
}

// Result 一次调用产生的标识符
type Result struct {
	ID        uuid.UUID
	Action    Action
	InputSize int
}

type Pipeline struct {
	namespace uuid.UUID
	trim      TrimMode
	random    func() (uuid.UUID, error)
	log       logger.LoggerInterface
}

type Option func(*Pipeline)

// WithTrim 设置 v5 输入的末尾处理方式
func WithTrim(m TrimMode) Option {
	return func(p *Pipeline) { p.trim = m }
}

// WithRandom 替换随机源，测试用
func WithRandom(fn func() (uuid.UUID, error)) Option {
	return func(p *Pipeline) { p.random = fn }
}

func WithLogger(l logger.LoggerInterface) Option {
	return func(p *Pipeline) { p.log = l }
}

func New(opts ...Option) *Pipeline {
	p := &Pipeline{
		namespace: uuid.NamespaceOID,
		trim:      TrimWhitespace,
		random:    uuid.NewV4,
		log:       logger.Nop(),
	}
	for _, f := range opts {
		f(p)
	}
	return p
}

// Generate 执行决策矩阵并产生标识符。不需要输入的分支不会触碰 in.Reader。
func (p *Pipeline) Generate(ctx context.Context, v Version, in Input) (Result, error) {
	action, err := Decide(v, in.Availability)
	if err != nil {
		p.log.Error(ctx, "version=%s input=%s: %v", v, in.Availability, err)
		return Result{}, err
	}

	res := Result{Action: action}
	var data []byte
	if action.ReadsInput() {
		if data, err = readAll(in.Reader); err != nil {
			p.log.Error(ctx, "read stdin: %v", err)
			return Result{}, err
		}
		res.InputSize = len(data)
	}

	switch action {
	case ActionRandom:
		res.ID, err = p.random()
		if err != nil {
			err = ioFailure("random source", err)
		}
	case ActionNameDerived:
		res.ID = p.Derive(data)
	case ActionPassthrough:
		res.ID, err = Decode(data)
	}
	if err != nil {
		p.log.Error(ctx, "action=%s: %v", action, err)
		return Result{}, err
	}

	p.log.Info(ctx, "version=%s input=%s action=%s bytes=%d", v, in.Availability, action, res.InputSize)
	return res, nil
}

// Derive v5：对裁剪后的输入做 SHA-1(namespace || name)
func (p *Pipeline) Derive(data []byte) uuid.UUID {
	return uuid.NewV5(p.namespace, p.trim.apply(data))
}

func readAll(r io.Reader) ([]byte, error) {
	if r == nil {
		return nil, ioFailure("read stdin", io.ErrUnexpectedEOF)
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, ioFailure("read stdin", err)
	}
	return data, nil
}
