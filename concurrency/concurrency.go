// Package concurrency 提供后台 goroutine 的安全启动
package concurrency

import (
	"log"
	"runtime/debug"
	"sync"
)

// OnPanic 后台 goroutine panic 后的处理，默认写标准 log（stderr）
var OnPanic = func(r interface{}, stack []byte) {
	log.Printf("[SafeGo] panic recovered: %v\n%s", r, stack)
}

// =============================
// SafeGo：安全启动 goroutine
// =============================
// 自动 recover，panic 不会让进程在写出标识符之前崩溃；wg 可为 nil
func SafeGo(fn func(), wg *sync.WaitGroup) {
	if wg != nil {
		wg.Add(1)
	}
	go func() {
		defer func() {
			if r := recover(); r != nil {
				OnPanic(r, debug.Stack())
			}
			if wg != nil {
				wg.Done()
			}
		}()
		fn()
	}()
}
