package frame

import (
	"github.com/sparrowmqtt/mqtt5/packet"
	"github.com/sparrowmqtt/mqtt5/props"
	"github.com/sparrowmqtt/mqtt5/wire"
)

// Connack is an MQTT 5 CONNACK packet.
type Connack struct {
	SessionPresent bool
	ReasonCode     packet.ReasonCode
	Properties     props.Set
}

func (c *Connack) Encode() ([]byte, error) {
	propsEnc, err := c.Properties.Encode()
	if err != nil {
		return nil, err
	}

	body := make([]byte, 0, 2+len(propsEnc))
	var ackFlags byte
	if c.SessionPresent {
		ackFlags = 0x01
	}
	body = append(body, ackFlags, byte(c.ReasonCode))
	body = append(body, propsEnc...)

	fh := packet.FixedHeader{Type: packet.CONNACK, RemainingLength: uint32(len(body))}
	out, err := packet.EncodeFixedHeader(nil, fh)
	if err != nil {
		return nil, err
	}
	return append(out, body...), nil
}

func DecodeConnack(fh packet.FixedHeader, body []byte) (*Connack, error) {
	if len(body) < 2 {
		return nil, wire.ErrUnexpectedEOF
	}
	if body[0]&0xFE != 0 {
		return nil, packet.ErrInvalidFlags
	}
	sessionPresent := body[0]&0x01 != 0
	reasonCode := packet.ReasonCode(body[1])
	if !packet.KnownReasonCode(body[1]) {
		return nil, packet.ErrUnknownReasonCode
	}

	propSet, n, err := props.Parse(body[2:])
	if err != nil {
		return nil, err
	}
	if 2+n != len(body) {
		return nil, packet.ErrTrailingBytes
	}

	return &Connack{SessionPresent: sessionPresent, ReasonCode: reasonCode, Properties: propSet}, nil
}
