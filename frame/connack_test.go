package frame

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sparrowmqtt/mqtt5/packet"
)

func TestConnackAssignedClientIDAndKeepAlive(t *testing.T) {
	wire := []byte{
		32, 25,
		1, 0, // ack flags (session present), reason = Success
		22, 18, 0, 16, 'g', 'e', 'n', 'e', 'r', 'a', 't', 'e', 'd', '-', '1', '2', '3', '4', '5', '6',
		19, 0, 135,
	}

	decoded, consumed, err := Decode(wire)
	require.NoError(t, err)
	require.Equal(t, len(wire), consumed)

	got := decoded.(*Connack)
	require.True(t, got.SessionPresent)
	require.Equal(t, packet.ReasonSuccess, got.ReasonCode)
	require.Equal(t, "generated-123456", *got.Properties.AssignedClientIdentifier)
	require.Equal(t, uint16(135), *got.Properties.ServerKeepAlive)
}

func TestConnackRoundTrip(t *testing.T) {
	c := &Connack{SessionPresent: false, ReasonCode: packet.ReasonNotAuthorized}
	encoded, err := c.Encode()
	require.NoError(t, err)

	decoded, _, err := Decode(encoded)
	require.NoError(t, err)
	got := decoded.(*Connack)
	require.False(t, got.SessionPresent)
	require.Equal(t, packet.ReasonNotAuthorized, got.ReasonCode)
}

func TestConnackReservedAckFlagBitsRejected(t *testing.T) {
	body := []byte{0x02, 0x00, 0x00}
	fh := packet.FixedHeader{Type: packet.CONNACK, RemainingLength: uint32(len(body))}
	_, err := DecodeConnack(fh, body)
	require.ErrorIs(t, err, packet.ErrInvalidFlags)
}

func TestConnackUnknownReasonCodeRejected(t *testing.T) {
	body := []byte{0x00, 0x7F, 0x00}
	fh := packet.FixedHeader{Type: packet.CONNACK, RemainingLength: uint32(len(body))}
	_, err := DecodeConnack(fh, body)
	require.ErrorIs(t, err, packet.ErrUnknownReasonCode)
}
