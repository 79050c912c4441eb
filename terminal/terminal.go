// Package terminal 判断文件是否连接到交互式终端
package terminal

import (
	"os"

	"github.com/mattn/go-isatty"
)

// Fd 有文件描述符的流，*os.File 满足
type Fd interface {
	Fd() uintptr
}

// IsTerminal 包括 Windows 下 Cygwin/MSYS 的伪终端
func IsTerminal(f Fd) bool {
	if f == nil {
		return false
	}
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// Stdin 标准输入是否为终端
func Stdin() bool { return IsTerminal(os.Stdin) }

// Stdout 标准输出是否为终端
func Stdout() bool { return IsTerminal(os.Stdout) }
