package logger

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCaptureHandler(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	ch := make(chan string, 4)
	l := slog.New(NewCaptureHandler(slog.NewTextHandler(&buf, nil), ch))

	l.With("dir", "/wads").Warn("cannot read", "count", 2)

	require.Len(t, ch, 1)
	msg := <-ch
	assert.Contains(t, msg, "WARN cannot read")
	assert.Contains(t, msg, "count=2")
	assert.Contains(t, buf.String(), "dir=/wads", "records still reach the wrapped handler")
}

func TestCaptureHandler_FullChannelDrops(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	ch := make(chan string, 1)
	l := slog.New(NewCaptureHandler(slog.NewTextHandler(&buf, nil), ch))

	l.Info("one")
	l.Info("two")

	assert.Len(t, ch, 1)
	assert.Contains(t, buf.String(), "msg=two")
}
