package frame

import (
	"github.com/sparrowmqtt/mqtt5/packet"
	"github.com/sparrowmqtt/mqtt5/props"
	"github.com/sparrowmqtt/mqtt5/wire"
)

// Publish is an MQTT 5 PUBLISH packet. PacketID is only meaningful when
// QoS > 0; callers must not read it for a QoS0 publish decoded from the
// wire, since no packet identifier is present on the wire in that case.
type Publish struct {
	Dup        bool
	QoS        packet.QoS
	Retain     bool
	TopicName  string
	PacketID   uint16
	Properties props.Set
	Payload    []byte
}

func (p *Publish) Encode() ([]byte, error) {
	if !p.QoS.Valid() {
		return nil, packet.ErrInvalidQoS
	}

	propsEnc, err := p.Properties.Encode()
	if err != nil {
		return nil, err
	}

	body := wire.AppendString(nil, p.TopicName)
	if p.QoS > packet.QoS0 {
		body = wire.AppendU16(body, p.PacketID)
	}
	body = append(body, propsEnc...)
	body = append(body, p.Payload...)

	fh := packet.FixedHeader{
		Type:            packet.PUBLISH,
		Flags:           packet.BuildPublishFlags(p.Dup, p.QoS, p.Retain),
		RemainingLength: uint32(len(body)),
	}
	out, err := packet.EncodeFixedHeader(nil, fh)
	if err != nil {
		return nil, err
	}
	return append(out, body...), nil
}

func DecodePublish(fh packet.FixedHeader, body []byte) (*Publish, error) {
	dup, qos, retain, err := packet.PublishFlags(fh.Flags)
	if err != nil {
		return nil, err
	}

	offset := 0
	topicName, n, err := wire.ReadString(body[offset:])
	if err != nil {
		return nil, err
	}
	offset += n

	p := &Publish{Dup: dup, QoS: qos, Retain: retain, TopicName: topicName}

	if qos > packet.QoS0 {
		id, n, err := wire.ReadU16(body[offset:])
		if err != nil {
			return nil, err
		}
		if id == 0 {
			return nil, packet.ErrInvalidPacketIDZero
		}
		offset += n
		p.PacketID = id
	}

	propSet, n, err := props.Parse(body[offset:])
	if err != nil {
		return nil, err
	}
	offset += n
	p.Properties = propSet

	p.Payload = append([]byte(nil), body[offset:]...)

	return p, nil
}
