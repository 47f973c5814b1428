package frame

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sparrowmqtt/mqtt5/packet"
	"github.com/sparrowmqtt/mqtt5/props"
)

func TestDisconnectWithPropertiesExactBytes(t *testing.T) {
	want := []byte{224, 17, 0, 15, 17, 0, 0, 0, 180, 31, 0, 7, 'b', 'e', 'c', 'a', 'u', 's', 'e'}

	d := &Disconnect{
		ReasonCode: packet.ReasonSuccess,
		Properties: props.Set{
			SessionExpiryInterval: props.U32(180),
			ReasonString:          props.Str("because"),
		},
	}
	encoded, err := d.Encode()
	require.NoError(t, err)
	require.Equal(t, want, encoded)

	decoded, consumed, err := Decode(want)
	require.NoError(t, err)
	require.Equal(t, len(want), consumed)
	got := decoded.(*Disconnect)
	require.Equal(t, packet.ReasonSuccess, got.ReasonCode)
	require.Equal(t, uint32(180), *got.Properties.SessionExpiryInterval)
	require.Equal(t, "because", *got.Properties.ReasonString)
}

func TestDisconnectZeroLengthIsImplicitSuccess(t *testing.T) {
	decoded, _, err := Decode([]byte{0xE0, 0x00})
	require.NoError(t, err)
	got := decoded.(*Disconnect)
	require.Equal(t, packet.ReasonNormalDisconnection, got.ReasonCode)
	require.True(t, got.Properties.IsEmpty())

	d := &Disconnect{ReasonCode: packet.ReasonNormalDisconnection}
	encoded, err := d.Encode()
	require.NoError(t, err)
	require.Equal(t, []byte{0xE0, 0x00}, encoded)
}
