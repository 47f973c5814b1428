package frame

import "github.com/sparrowmqtt/mqtt5/packet"

// Pingreq is an MQTT 5 PINGREQ packet. It carries no variable header or
// payload; its wire form is always the two bytes 0xC0 0x00.
type Pingreq struct{}

func (Pingreq) Encode() ([]byte, error) {
	return []byte{0xC0, 0x00}, nil
}

func DecodePingreq(fh packet.FixedHeader, body []byte) (*Pingreq, error) {
	if len(body) != 0 {
		return nil, packet.ErrMalformedPing
	}
	return &Pingreq{}, nil
}

// Pingresp is an MQTT 5 PINGRESP packet. Its wire form is always the two
// bytes 0xD0 0x00.
type Pingresp struct{}

func (Pingresp) Encode() ([]byte, error) {
	return []byte{0xD0, 0x00}, nil
}

func DecodePingresp(fh packet.FixedHeader, body []byte) (*Pingresp, error) {
	if len(body) != 0 {
		return nil, packet.ErrMalformedPing
	}
	return &Pingresp{}, nil
}
