package frame

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sparrowmqtt/mqtt5/packet"
	"github.com/sparrowmqtt/mqtt5/props"
)

func TestAuthZeroLengthBodyIsImplicitSuccess(t *testing.T) {
	fh := packet.FixedHeader{Type: packet.AUTH}
	got, err := DecodeAuth(fh, nil)
	require.NoError(t, err)
	require.Equal(t, packet.ReasonSuccess, got.ReasonCode)
	require.True(t, got.Properties.IsEmpty())
}

func TestAuthEncodeSuccessWithNoPropertiesIsZeroLength(t *testing.T) {
	a := &Auth{ReasonCode: packet.ReasonSuccess}
	encoded, err := a.Encode()
	require.NoError(t, err)
	require.Equal(t, []byte{0xF0, 0x00}, encoded)
}

func TestAuthRoundTrip(t *testing.T) {
	a := &Auth{
		ReasonCode: packet.ReasonContinueAuthentication,
		Properties: props.Set{AuthenticationMethod: props.Str("SCRAM-SHA-1")},
	}
	encoded, err := a.Encode()
	require.NoError(t, err)

	decoded, _, err := Decode(encoded)
	require.NoError(t, err)
	got := decoded.(*Auth)
	require.Equal(t, packet.ReasonContinueAuthentication, got.ReasonCode)
	require.Equal(t, "SCRAM-SHA-1", *got.Properties.AuthenticationMethod)
}

func TestAuthRejectsOutOfSetReasonCode(t *testing.T) {
	a := &Auth{ReasonCode: packet.ReasonNotAuthorized}
	_, err := a.Encode()
	require.ErrorIs(t, err, packet.ErrReasonCodeNotPermitted)
}
