package pipeline

import (
	"bytes"
	"unicode/utf8"

	"uuidgen/uuid"
)

// Decode 透传模式下的解码：
// 恰好 16 字节按二进制处理；否则必须是 UTF-8 文本，去掉一个行尾后按标准格式解析。
// 标准文本格式至少 36 个字符，不会与 16 字节二进制混淆。
func Decode(data []byte) (uuid.UUID, error) {
	if len(data) == uuid.Size {
		return uuid.FromBytes(data)
	}

	if !utf8.Valid(data) {
		return uuid.Nil, &Error{Kind: KindInvalidEncoding, Detail: "piped input is not valid UTF-8"}
	}

	u, err := uuid.Parse(string(trimLineTerminator(data)))
	if err != nil {
		return uuid.Nil, &Error{Kind: KindMalformedIdentifier, Detail: "malformed identifier", Err: err}
	}
	return u, nil
}

// 只去掉一个 "\r\n" 或 "\n"
func trimLineTerminator(b []byte) []byte {
	if bytes.HasSuffix(b, []byte("\r\n")) {
		return b[:len(b)-2]
	}
	return bytes.TrimSuffix(b, []byte("\n"))
}
