package frame

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sparrowmqtt/mqtt5/packet"
	"github.com/sparrowmqtt/mqtt5/wire"
)

func TestPublishQoS1ExactBytes(t *testing.T) {
	payload := []byte(`{"some":1,"foo":"bar"}`)
	p := &Publish{
		QoS:       packet.QoS1,
		TopicName: "some/topic/name",
		PacketID:  8123,
		Payload:   payload,
	}

	encoded, err := p.Encode()
	require.NoError(t, err)
	require.Equal(t, byte(0b00110010), encoded[0])

	remainingLen, n, err := wire.DecodeVarInt(encoded[1:])
	require.NoError(t, err)
	require.Equal(t, uint32(42), remainingLen)
	require.Equal(t, 1+n+int(remainingLen), len(encoded))

	decoded, consumed, err := Decode(encoded)
	require.NoError(t, err)
	require.Equal(t, len(encoded), consumed)

	got := decoded.(*Publish)
	require.Equal(t, "some/topic/name", got.TopicName)
	require.Equal(t, packet.QoS1, got.QoS)
	require.Equal(t, uint16(8123), got.PacketID)
	require.Equal(t, payload, got.Payload)
	require.False(t, got.Dup)
	require.False(t, got.Retain)
}

func TestPublishQoS0HasNoPacketID(t *testing.T) {
	p := &Publish{QoS: packet.QoS0, TopicName: "a/b", Payload: []byte("x")}
	encoded, err := p.Encode()
	require.NoError(t, err)

	decoded, _, err := Decode(encoded)
	require.NoError(t, err)
	got := decoded.(*Publish)
	require.Equal(t, uint16(0), got.PacketID)
}

func TestPublishDupRetainAreANDMasked(t *testing.T) {
	// Flags nibble 0b0100: QoS2 bit set alone, DUP and RETAIN bits clear.
	fh := packet.FixedHeader{Type: packet.PUBLISH, Flags: 0b0100}
	body := wire.AppendString(nil, "a")
	body = wire.AppendU16(body, 1)
	body = append(body, 0) // empty property block
	got, err := DecodePublish(fh, body)
	require.NoError(t, err)
	require.False(t, got.Dup)
	require.False(t, got.Retain)
	require.Equal(t, packet.QoS2, got.QoS)
}

func TestPublishInvalidQoSRejected(t *testing.T) {
	// Flags nibble 0b0110: both QoS bits set, encoding the reserved QoS 3.
	fh := packet.FixedHeader{Type: packet.PUBLISH, Flags: 0b0110}
	body := wire.AppendString(nil, "a")
	_, err := DecodePublish(fh, body)
	require.ErrorIs(t, err, packet.ErrInvalidQoS)
}

func TestPublishRoundTripRetainAndDup(t *testing.T) {
	p := &Publish{Dup: true, QoS: packet.QoS2, Retain: true, TopicName: "x", PacketID: 9, Payload: nil}
	encoded, err := p.Encode()
	require.NoError(t, err)

	decoded, _, err := Decode(encoded)
	require.NoError(t, err)
	got := decoded.(*Publish)
	require.True(t, got.Dup)
	require.True(t, got.Retain)
	require.Equal(t, packet.QoS2, got.QoS)
	require.Equal(t, uint16(9), got.PacketID)
}

func TestPublishInvalidQoSOnEncodeRejected(t *testing.T) {
	p := &Publish{QoS: 3, TopicName: "x"}
	_, err := p.Encode()
	require.ErrorIs(t, err, packet.ErrInvalidQoS)
}
