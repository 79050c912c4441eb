package xredis

import (
	"context"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpen_RequiresKey(t *testing.T) {
	_, err := Open(context.Background(), Config{Addr: "127.0.0.1:6379"})
	assert.EqualError(t, err, "key required")
}

func TestOpen_Unreachable(t *testing.T) {
	// 先占一个端口再释放，保证没有服务在监听
	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := l.Addr().String()
	require.NoError(t, l.Close())

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	_, err = Open(ctx, Config{Addr: addr, Key: "uuidgen:history", DialTimeout: 200 * time.Millisecond})
	assert.Error(t, err)
}
