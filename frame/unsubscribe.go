package frame

import (
	"github.com/sparrowmqtt/mqtt5/packet"
	"github.com/sparrowmqtt/mqtt5/props"
	"github.com/sparrowmqtt/mqtt5/wire"
)

// Unsubscribe is an MQTT 5 UNSUBSCRIBE packet. Its fixed header flags are
// always 0b0010.
type Unsubscribe struct {
	PacketID     uint16
	Properties   props.Set
	TopicFilters []string
}

func (u *Unsubscribe) Encode() ([]byte, error) {
	if u.PacketID == 0 {
		return nil, packet.ErrInvalidPacketIDZero
	}
	if len(u.TopicFilters) == 0 {
		return nil, packet.ErrEmptyUnsubscribeList
	}
	for _, f := range u.TopicFilters {
		if f == "" {
			return nil, packet.ErrEmptyTopicFilter
		}
	}

	propsEnc, err := u.Properties.Encode()
	if err != nil {
		return nil, err
	}

	body := wire.AppendU16(nil, u.PacketID)
	body = append(body, propsEnc...)
	for _, f := range u.TopicFilters {
		body = wire.AppendString(body, f)
	}

	fh := packet.FixedHeader{Type: packet.UNSUBSCRIBE, Flags: 0x02, RemainingLength: uint32(len(body))}
	out, err := packet.EncodeFixedHeader(nil, fh)
	if err != nil {
		return nil, err
	}
	return append(out, body...), nil
}

func DecodeUnsubscribe(fh packet.FixedHeader, body []byte) (*Unsubscribe, error) {
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

	var filters []string
	for offset < len(body) {
		f, n, err := wire.ReadString(body[offset:])
		if err != nil {
			return nil, err
		}
		offset += n
		if f == "" {
			return nil, packet.ErrEmptyTopicFilter
		}
		filters = append(filters, f)
	}

	if len(filters) == 0 {
		return nil, packet.ErrEmptyUnsubscribeList
	}

	return &Unsubscribe{PacketID: id, Properties: propSet, TopicFilters: filters}, nil
}
