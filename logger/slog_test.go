package logger

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sparrowmqtt/mqtt5/packet"
)

func TestLogPacketWritesBytes(t *testing.T) {
	var buf bytes.Buffer
	l := New(slog.LevelDebug, &buf)

	l.LogPacket("sent", "127.0.0.1:1883", packet.PUBLISH, 42)

	require.Contains(t, buf.String(), "PUBLISH")
	require.Contains(t, buf.String(), "127.0.0.1:1883")
	require.Contains(t, buf.String(), "bytes=42")
}

func TestLogPacketDirectionArrow(t *testing.T) {
	var buf bytes.Buffer
	l := New(slog.LevelDebug, &buf)

	l.LogPacket("sent", "127.0.0.1:1883", packet.PUBLISH, 1)
	sent := buf.String()
	buf.Reset()

	l.LogPacket("recv", "127.0.0.1:1883", packet.PUBLISH, 1)
	recv := buf.String()

	require.Contains(t, sent, "->")
	require.Contains(t, recv, "<-")
}

func TestLogDecodeErrorIncludesReason(t *testing.T) {
	var buf bytes.Buffer
	l := New(slog.LevelDebug, &buf)

	l.LogDecodeError("127.0.0.1:1883", packet.ErrEmptyTopicFilter)

	require.Contains(t, buf.String(), "TopicFilterInvalid")
	require.Contains(t, buf.String(), "127.0.0.1:1883")
}

func TestLevelFilteringSuppressesDebug(t *testing.T) {
	var buf bytes.Buffer
	l := New(slog.LevelWarn, &buf)

	l.Debug("should not appear")
	require.Empty(t, buf.String())

	l.Warn("should appear")
	require.Contains(t, buf.String(), "should appear")
}
