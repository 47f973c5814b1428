package frame

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sparrowmqtt/mqtt5/packet"
)

func TestMinimalConnectExactBytes(t *testing.T) {
	want := []byte{16, 11, 0, 4, 77, 81, 84, 84, 5, 0, 0, 0, 0}

	c := &Connect{}
	encoded, err := c.Encode()
	require.NoError(t, err)
	require.Equal(t, want, encoded)

	decoded, consumed, err := Decode(want)
	require.NoError(t, err)
	require.Equal(t, len(want), consumed)
	got := decoded.(*Connect)
	require.Equal(t, "", got.ClientID)
	require.False(t, got.CleanStart)
	require.Equal(t, uint16(0), got.KeepAlive)
	require.Nil(t, got.Will)
	require.Nil(t, got.Username)
	require.Nil(t, got.Password)
}

func TestConnectRoundTripWithWillAndCredentials(t *testing.T) {
	username := "alice"
	c := &Connect{
		ClientID:   "client-1",
		CleanStart: true,
		KeepAlive:  60,
		Will: &Will{
			QoS:     packet.QoS1,
			Retain:  true,
			Topic:   "last/will",
			Payload: []byte("bye"),
		},
		Username: &username,
		Password: []byte("secret"),
	}
	encoded, err := c.Encode()
	require.NoError(t, err)

	decoded, _, err := Decode(encoded)
	require.NoError(t, err)
	got := decoded.(*Connect)
	require.Equal(t, "client-1", got.ClientID)
	require.True(t, got.CleanStart)
	require.Equal(t, uint16(60), got.KeepAlive)
	require.NotNil(t, got.Will)
	require.Equal(t, packet.QoS1, got.Will.QoS)
	require.True(t, got.Will.Retain)
	require.Equal(t, "last/will", got.Will.Topic)
	require.Equal(t, []byte("bye"), got.Will.Payload)
	require.Equal(t, "alice", *got.Username)
	require.Equal(t, []byte("secret"), got.Password)
}

func TestConnectPasswordWithoutUsernameRejected(t *testing.T) {
	c := &Connect{Password: []byte("secret")}
	_, err := c.Encode()
	require.ErrorIs(t, err, packet.ErrPasswordWithoutUsername)
}

func TestConnectWrongProtocolNameRejected(t *testing.T) {
	body := append([]byte{0, 4, 'M', 'Q', 'X', 'X'}, 5, 0, 0, 0, 0)
	fh := packet.FixedHeader{Type: packet.CONNECT, RemainingLength: uint32(len(body))}
	_, err := DecodeConnect(fh, body)
	require.ErrorIs(t, err, packet.ErrInvalidProtocolName)
}

func TestConnectWrongProtocolVersionRejected(t *testing.T) {
	body := append([]byte{0, 4, 'M', 'Q', 'T', 'T'}, 4, 0, 0, 0, 0)
	fh := packet.FixedHeader{Type: packet.CONNECT, RemainingLength: uint32(len(body))}
	_, err := DecodeConnect(fh, body)
	require.ErrorIs(t, err, packet.ErrInvalidProtocolVersion)
}

func TestValidateBuilderClientID(t *testing.T) {
	require.NoError(t, ValidateBuilderClientID("short-id"))
	require.ErrorIs(t, ValidateBuilderClientID("123456789012345678901234"), packet.ErrClientIDTooLong)
	require.ErrorIs(t, ValidateBuilderClientID("café"), packet.ErrClientIDNonASCII)
}
