package frame

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sparrowmqtt/mqtt5/packet"
)

func TestPingreqExactBytes(t *testing.T) {
	encoded, err := (&Pingreq{}).Encode()
	require.NoError(t, err)
	require.Equal(t, []byte{192, 0}, encoded)

	decoded, consumed, err := Decode(encoded)
	require.NoError(t, err)
	require.Equal(t, 2, consumed)
	require.IsType(t, &Pingreq{}, decoded)
}

func TestPingrespExactBytes(t *testing.T) {
	encoded, err := (&Pingresp{}).Encode()
	require.NoError(t, err)
	require.Equal(t, []byte{208, 0}, encoded)

	decoded, _, err := Decode(encoded)
	require.NoError(t, err)
	require.IsType(t, &Pingresp{}, decoded)
}

func TestPingWithNonemptyBodyIsMalformed(t *testing.T) {
	fh := packet.FixedHeader{Type: packet.PINGREQ}
	_, err := DecodePingreq(fh, []byte{1})
	require.ErrorIs(t, err, packet.ErrMalformedPing)
}
