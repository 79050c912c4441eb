package logger

import "context"

// Log 全局日志，默认丢弃；由 cmd 在读取配置后替换
var Log LoggerInterface = Nop()

type contextKey string

const invocationKey contextKey = "invocation_id"

// WithInvocation 给本次调用的所有日志加上同一个 id
func WithInvocation(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, invocationKey, id)
}

func InvocationID(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	if id, ok := ctx.Value(invocationKey).(string); ok {
		return id
	}
	return ""
}
