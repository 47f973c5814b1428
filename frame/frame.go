// Package frame implements the thirteen MQTT 5 control packets: their
// field layout, flag semantics, payload ordering, and the Encode/Decode
// pair that converts between packet values and wire bytes.
package frame

import (
	"github.com/sparrowmqtt/mqtt5/packet"
)

// Packet is satisfied by every concrete control-packet type in this
// package.
type Packet interface {
	Encode() ([]byte, error)
}

// Decode reads one complete control packet (fixed header, variable
// header, and payload) from the front of data. Returns the decoded
// packet, the total number of bytes consumed, and an error. When multiple
// packets arrive concatenated in one read, callers should loop, re-slicing
// data by the returned consumed count, per spec.md §5's ordering
// guarantee.
func Decode(data []byte) (Packet, int, error) {
	fh, n, err := packet.DecodeFixedHeader(data)
	if err != nil {
		return nil, 0, err
	}

	end := n + int(fh.RemainingLength)
	if len(data) < end {
		return nil, 0, packet.ErrTruncatedBody
	}
	body := data[n:end]

	var pkt Packet
	switch fh.Type {
	case packet.CONNECT:
		pkt, err = DecodeConnect(fh, body)
	case packet.CONNACK:
		pkt, err = DecodeConnack(fh, body)
	case packet.PUBLISH:
		pkt, err = DecodePublish(fh, body)
	case packet.PUBACK:
		pkt, err = DecodePuback(fh, body)
	case packet.PUBREC:
		pkt, err = DecodePubrec(fh, body)
	case packet.PUBREL:
		pkt, err = DecodePubrel(fh, body)
	case packet.PUBCOMP:
		pkt, err = DecodePubcomp(fh, body)
	case packet.SUBSCRIBE:
		pkt, err = DecodeSubscribe(fh, body)
	case packet.SUBACK:
		pkt, err = DecodeSuback(fh, body)
	case packet.UNSUBSCRIBE:
		pkt, err = DecodeUnsubscribe(fh, body)
	case packet.UNSUBACK:
		pkt, err = DecodeUnsuback(fh, body)
	case packet.PINGREQ:
		pkt, err = DecodePingreq(fh, body)
	case packet.PINGRESP:
		pkt, err = DecodePingresp(fh, body)
	case packet.DISCONNECT:
		pkt, err = DecodeDisconnect(fh, body)
	case packet.AUTH:
		pkt, err = DecodeAuth(fh, body)
	default:
		return nil, 0, packet.ErrInvalidType
	}
	if err != nil {
		return nil, 0, err
	}

	return pkt, end, nil
}
