package frame

import (
	"github.com/sparrowmqtt/mqtt5/packet"
	"github.com/sparrowmqtt/mqtt5/props"
	"github.com/sparrowmqtt/mqtt5/wire"
)

// Subscription is one topic filter within a SUBSCRIBE packet, carrying its
// per-filter subscription options byte.
type Subscription struct {
	TopicFilter       string
	MaxQoS            packet.QoS
	NoLocal           bool
	RetainAsPublished bool
	RetainHandling    packet.RetainHandling
}

func (s Subscription) optionsByte() byte {
	b := byte(s.MaxQoS) & 0x03
	if s.NoLocal {
		b |= 0x04
	}
	if s.RetainAsPublished {
		b |= 0x08
	}
	b |= byte(s.RetainHandling) << 4
	return b
}

// Subscribe is an MQTT 5 SUBSCRIBE packet. Its fixed header flags are
// always 0b0010.
type Subscribe struct {
	PacketID      uint16
	Properties    props.Set
	Subscriptions []Subscription
}

func (s *Subscribe) Encode() ([]byte, error) {
	if s.PacketID == 0 {
		return nil, packet.ErrInvalidPacketIDZero
	}
	if len(s.Subscriptions) == 0 {
		return nil, packet.ErrEmptySubscribeList
	}
	for _, sub := range s.Subscriptions {
		if sub.TopicFilter == "" {
			return nil, packet.ErrEmptyTopicFilter
		}
		if !sub.MaxQoS.Valid() {
			return nil, packet.ErrInvalidQoS
		}
	}

	propsEnc, err := s.Properties.Encode()
	if err != nil {
		return nil, err
	}

	body := wire.AppendU16(nil, s.PacketID)
	body = append(body, propsEnc...)
	for _, sub := range s.Subscriptions {
		body = wire.AppendString(body, sub.TopicFilter)
		body = append(body, sub.optionsByte())
	}

	fh := packet.FixedHeader{Type: packet.SUBSCRIBE, Flags: 0x02, RemainingLength: uint32(len(body))}
	out, err := packet.EncodeFixedHeader(nil, fh)
	if err != nil {
		return nil, err
	}
	return append(out, body...), nil
}

func DecodeSubscribe(fh packet.FixedHeader, body []byte) (*Subscribe, error) {
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

	var subs []Subscription
	for offset < len(body) {
		filter, n, err := wire.ReadString(body[offset:])
		if err != nil {
			return nil, err
		}
		offset += n
		if filter == "" {
			return nil, packet.ErrEmptyTopicFilter
		}

		if offset >= len(body) {
			return nil, wire.ErrUnexpectedEOF
		}
		opts := body[offset]
		offset++

		if opts&0xC0 != 0 {
			return nil, packet.ErrInvalidFlags
		}
		maxQoS := packet.QoS(opts & 0x03)
		if !maxQoS.Valid() {
			return nil, packet.ErrInvalidQoS
		}
		retainHandling := packet.RetainHandling((opts >> 4) & 0x03)
		if retainHandling > packet.Never {
			return nil, packet.ErrInvalidFlags
		}

		subs = append(subs, Subscription{
			TopicFilter:       filter,
			MaxQoS:            maxQoS,
			NoLocal:           opts&0x04 != 0,
			RetainAsPublished: opts&0x08 != 0,
			RetainHandling:    retainHandling,
		})
	}

	if len(subs) == 0 {
		return nil, packet.ErrEmptySubscribeList
	}

	return &Subscribe{PacketID: id, Properties: propSet, Subscriptions: subs}, nil
}
