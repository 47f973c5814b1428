package frame

import (
	"github.com/sparrowmqtt/mqtt5/packet"
	"github.com/sparrowmqtt/mqtt5/props"
	"github.com/sparrowmqtt/mqtt5/wire"
)

// encodeSimpleAck builds the common PUBACK/PUBREC/PUBREL/PUBCOMP wire form.
// When reasonCode is Success and propSet carries nothing, the reason code
// and property block are both omitted and the body is just the packet
// identifier, per spec.md §4.5's implicit-success shorthand.
func encodeSimpleAck(typ packet.Type, flags byte, id uint16, reasonCode packet.ReasonCode, propSet props.Set, valid func(packet.ReasonCode) bool) ([]byte, error) {
	if id == 0 {
		return nil, packet.ErrInvalidPacketIDZero
	}
	if !valid(reasonCode) {
		return nil, packet.ErrReasonCodeNotPermitted
	}

	body := wire.AppendU16(nil, id)

	if reasonCode == packet.ReasonSuccess && propSet.IsEmpty() {
		fh := packet.FixedHeader{Type: typ, Flags: flags, RemainingLength: uint32(len(body))}
		out, err := packet.EncodeFixedHeader(nil, fh)
		if err != nil {
			return nil, err
		}
		return append(out, body...), nil
	}

	propsEnc, err := propSet.Encode()
	if err != nil {
		return nil, err
	}
	body = append(body, byte(reasonCode))
	body = append(body, propsEnc...)

	fh := packet.FixedHeader{Type: typ, Flags: flags, RemainingLength: uint32(len(body))}
	out, err := packet.EncodeFixedHeader(nil, fh)
	if err != nil {
		return nil, err
	}
	return append(out, body...), nil
}

// decodeSimpleAck parses the common PUBACK/PUBREC/PUBREL/PUBCOMP wire form.
func decodeSimpleAck(body []byte, valid func(packet.ReasonCode) bool) (uint16, packet.ReasonCode, props.Set, error) {
	id, n, err := wire.ReadU16(body)
	if err != nil {
		return 0, 0, props.Set{}, err
	}
	if id == 0 {
		return 0, 0, props.Set{}, packet.ErrInvalidPacketIDZero
	}
	offset := n

	if offset == len(body) {
		return id, packet.ReasonSuccess, props.Set{}, nil
	}

	reasonCode := packet.ReasonCode(body[offset])
	offset++
	if !valid(reasonCode) {
		return 0, 0, props.Set{}, packet.ErrReasonCodeNotPermitted
	}

	if offset == len(body) {
		return id, reasonCode, props.Set{}, nil
	}

	propSet, n, err := props.Parse(body[offset:])
	if err != nil {
		return 0, 0, props.Set{}, err
	}
	offset += n

	if offset != len(body) {
		return 0, 0, props.Set{}, packet.ErrTrailingBytes
	}

	return id, reasonCode, propSet, nil
}
