package pipeline

import "fmt"

// Version 请求的 UUID 版本；VersionUnspecified 的实际含义由输入是否为管道决定
type Version int

const (
	VersionUnspecified Version = iota
	VersionRandom              // v4
	VersionNameDerived         // v5
)

func (v Version) String() string {
	switch v {
	case VersionUnspecified:
		return "unspecified"
	case VersionRandom:
		return "v4"
	case VersionNameDerived:
		return "v5"
	default:
		return fmt.Sprintf("Version(%d)", int(v))
	}
}

// Format 输出格式
type Format int

const (
	FormatLowercase Format = iota
	FormatUppercase
	FormatBinary
)

func (f Format) String() string {
	switch f {
	case FormatLowercase:
		return "lowercase"
	case FormatUppercase:
		return "uppercase"
	case FormatBinary:
		return "binary"
	default:
		return fmt.Sprintf("Format(%d)", int(f))
	}
}

// ParseFormat 解析配置文件中的格式名
func ParseFormat(s string) (Format, error) {
	switch s {
	case "", "lowercase":
		return FormatLowercase, nil
	case "uppercase":
		return FormatUppercase, nil
	case "binary":
		return FormatBinary, nil
	default:
		return FormatLowercase, fmt.Errorf("unknown format %q", s)
	}
}

// Request 命令行解析结果
type Request struct {
	Version Version
	Format  Format
	Help    bool
}

// Resolve 逐个匹配命令行参数（不含程序名），同类参数后者覆盖前者。
// 未给出格式参数时使用 defaultFormat。-h/--help 只在全部参数都合法时生效。
func Resolve(args []string, defaultFormat Format) (Request, error) {
	req := Request{Version: VersionUnspecified, Format: defaultFormat}

	for _, arg := range args {
		switch arg {
		case "v4":
			req.Version = VersionRandom
		case "v5":
			req.Version = VersionNameDerived
		case "-l", "--lowercase":
			req.Format = FormatLowercase
		case "-u", "-U", "--uppercase":
			req.Format = FormatUppercase
		case "-b", "--binary":
			req.Format = FormatBinary
		case "-h", "--help":
			req.Help = true
		default:
			return Request{}, unrecognized(arg)
		}
	}

	return req, nil
}
