package frame

import (
	"github.com/sparrowmqtt/mqtt5/packet"
	"github.com/sparrowmqtt/mqtt5/props"
	"github.com/sparrowmqtt/mqtt5/wire"
)

// Suback is an MQTT 5 SUBACK packet. ReasonCodes has one entry per filter
// in the SUBSCRIBE it acknowledges, in the same order.
type Suback struct {
	PacketID    uint16
	Properties  props.Set
	ReasonCodes []packet.ReasonCode
}

func (s *Suback) Encode() ([]byte, error) {
	if s.PacketID == 0 {
		return nil, packet.ErrInvalidPacketIDZero
	}
	if len(s.ReasonCodes) == 0 {
		return nil, packet.ErrEmptySubscribeList
	}

	propsEnc, err := s.Properties.Encode()
	if err != nil {
		return nil, err
	}

	body := wire.AppendU16(nil, s.PacketID)
	body = append(body, propsEnc...)
	for _, rc := range s.ReasonCodes {
		if !packet.KnownReasonCode(byte(rc)) {
			return nil, packet.ErrUnknownReasonCode
		}
		body = append(body, byte(rc))
	}

	fh := packet.FixedHeader{Type: packet.SUBACK, RemainingLength: uint32(len(body))}
	out, err := packet.EncodeFixedHeader(nil, fh)
	if err != nil {
		return nil, err
	}
	return append(out, body...), nil
}

func DecodeSuback(fh packet.FixedHeader, body []byte) (*Suback, error) {
	id, n, err := wire.ReadU16(body)
	if err != nil {
		return nil, err
	}
	if id == 0 {
		return nil, packet.ErrInvalidPacketIDZero
	}
	offset := n

	propSet, n, err := props.Parse(body[offset:])
	if err != nil {
		return nil, err
	}
	offset += n

	if offset == len(body) {
		return nil, packet.ErrEmptySubscribeList
	}

	codes := make([]packet.ReasonCode, 0, len(body)-offset)
	for ; offset < len(body); offset++ {
		if !packet.KnownReasonCode(body[offset]) {
			return nil, packet.ErrUnknownReasonCode
		}
		codes = append(codes, packet.ReasonCode(body[offset]))
	}

	return &Suback{PacketID: id, Properties: propSet, ReasonCodes: codes}, nil
}
