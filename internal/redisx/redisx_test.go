package redisx

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestUnreachableServerIsAnErrorNotAMiss(t *testing.T) {
	c := New("127.0.0.1:1", "", 0)
	defer c.Close()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	assert.Error(t, c.Ping(ctx))
	b, ok, err := c.Get(ctx, "charts:x")
	assert.Error(t, err)
	assert.False(t, ok)
	assert.Nil(t, b)
	assert.Error(t, c.Set(ctx, "charts:x", []byte("{}"), time.Minute))
}
