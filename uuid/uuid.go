package uuid

import (
	"encoding/hex"
	"errors"
	"fmt"
	"regexp"
	"strings"

	guuid "github.com/google/uuid"
)

// Size 二进制编码长度
const Size = 16

// UUID 128 位标识符
type UUID [Size]byte

// Nil 全零 UUID
var Nil UUID

// NamespaceOID 名称派生 (v5) 使用的固定命名空间 6ba7b812-9dad-11d1-80b4-00c04fd430c8
var NamespaceOID = UUID(guuid.NameSpaceOID)

// 8-4-4-4-12，大小写均可
var canonical = regexp.MustCompile(`^[0-9a-fA-F]{8}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{12}$`)

var (
	ErrInvalidLength = errors.New("invalid length")
	ErrInvalidFormat = errors.New("invalid format")
)

// ======================= UUID v4 (随机) =======================
func NewV4() (UUID, error) {
	u, err := guuid.NewRandom()
	if err != nil {
		return Nil, err
	}
	return UUID(u), nil
}

// ======================= UUID v5 (命名空间 + 名称) =======================
// SHA-1(namespace || name)，截断到 128 位并写入版本 5 / RFC 4122 变体
func NewV5(namespace UUID, name []byte) UUID {
	return UUID(guuid.NewSHA1(guuid.UUID(namespace), name))
}

// ======================= 解析 =======================

// Parse 只接受标准的带连字符十六进制格式，不接受 urn:uuid: 前缀、花括号或无连字符形式
func Parse(s string) (UUID, error) {
	if len(s) != 36 {
		return Nil, fmt.Errorf("%w: expected 36 characters, got %d", ErrInvalidLength, len(s))
	}
	if !IsValidUUID(s) {
		return Nil, fmt.Errorf("%w: %q is not 8-4-4-4-12 hex", ErrInvalidFormat, s)
	}

	var u UUID
	if _, err := hex.Decode(u[:], []byte(strings.ReplaceAll(s, "-", ""))); err != nil {
		return Nil, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
	}
	return u, nil
}

// FromBytes 从 16 字节二进制编码构造
func FromBytes(b []byte) (UUID, error) {
	if len(b) != Size {
		return Nil, fmt.Errorf("%w: expected %d bytes, got %d", ErrInvalidLength, Size, len(b))
	}
	var u UUID
	copy(u[:], b)
	return u, nil
}

// ======================= 编码 =======================

// String 小写标准格式
func (u UUID) String() string {
	return guuid.UUID(u).String()
}

// Upper 大写标准格式
func (u UUID) Upper() string {
	return strings.ToUpper(u.String())
}

// Bytes 16 字节二进制编码（副本）
func (u UUID) Bytes() []byte {
	b := make([]byte, Size)
	copy(b, u[:])
	return b
}

func (u UUID) Version() int {
	return int(u[6] >> 4)
}

// IsRFC4122 变体位是否为 10
func (u UUID) IsRFC4122() bool {
	return u[8]&0xc0 == 0x80
}

// ======================= UUID 校验 =======================
func IsValidUUID(s string) bool {
	return canonical.MatchString(s)
}

// ======================= Must UUID =======================
func MustV4() UUID {
	u, err := NewV4()
	if err != nil {
		panic(err)
	}
	return u
}

func MustParse(s string) UUID {
	u, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return u
}
