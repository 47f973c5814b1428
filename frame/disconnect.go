package frame

import (
	"github.com/sparrowmqtt/mqtt5/packet"
	"github.com/sparrowmqtt/mqtt5/props"
)

// Disconnect is an MQTT 5 DISCONNECT packet. A zero-length body is valid
// and implies ReasonNormalDisconnection with no properties.
type Disconnect struct {
	ReasonCode packet.ReasonCode
	Properties props.Set
}

func (d *Disconnect) Encode() ([]byte, error) {
	if !packet.KnownReasonCode(byte(d.ReasonCode)) {
		return nil, packet.ErrUnknownReasonCode
	}

	if d.ReasonCode == packet.ReasonNormalDisconnection && d.Properties.IsEmpty() {
		fh := packet.FixedHeader{Type: packet.DISCONNECT, RemainingLength: 0}
		return packet.EncodeFixedHeader(nil, fh)
	}

	propsEnc, err := d.Properties.Encode()
	if err != nil {
		return nil, err
	}

	body := append([]byte{byte(d.ReasonCode)}, propsEnc...)

	fh := packet.FixedHeader{Type: packet.DISCONNECT, RemainingLength: uint32(len(body))}
	out, err := packet.EncodeFixedHeader(nil, fh)
	if err != nil {
		return nil, err
	}
	return append(out, body...), nil
}

func DecodeDisconnect(fh packet.FixedHeader, body []byte) (*Disconnect, error) {
	if len(body) == 0 {
		return &Disconnect{ReasonCode: packet.ReasonNormalDisconnection}, nil
	}

	reasonCode := packet.ReasonCode(body[0])
	if !packet.KnownReasonCode(body[0]) {
		return nil, packet.ErrUnknownReasonCode
	}

	if len(body) == 1 {
		return &Disconnect{ReasonCode: reasonCode}, nil
	}

	propSet, n, err := props.Parse(body[1:])
	if err != nil {
		return nil, err
	}
	if 1+n != len(body) {
		return nil, packet.ErrTrailingBytes
	}

	return &Disconnect{ReasonCode: reasonCode, Properties: propSet}, nil
}
