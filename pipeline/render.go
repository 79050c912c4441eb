package pipeline

import (
	"io"

	"uuidgen/uuid"
)

// Encode 按格式编码；newline 只对文本格式生效，二进制输出原样 16 字节
func Encode(id uuid.UUID, f Format, newline bool) []byte {
	var out []byte
	switch f {
	case FormatUppercase:
		out = []byte(id.Upper())
	case FormatBinary:
		return id.Bytes()
	default:
		out = []byte(id.String())
	}
	if newline {
		out = append(out, '\n')
	}
	return out
}

// Render 一次写出完整结果，写失败或短写都视为 IoFailure，不重试
func Render(w io.Writer, id uuid.UUID, f Format, newline bool) error {
	out := Encode(id, f, newline)
	n, err := w.Write(out)
	if err == nil && n < len(out) {
		err = io.ErrShortWrite
	}
	if err != nil {
		return ioFailure("write stdout", err)
	}
	return nil
}
