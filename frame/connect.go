package frame

import (
	"github.com/sparrowmqtt/mqtt5/packet"
	"github.com/sparrowmqtt/mqtt5/props"
	"github.com/sparrowmqtt/mqtt5/wire"
)

// Will is a CONNECT packet's optional last-will-and-testament.
type Will struct {
	QoS        packet.QoS
	Retain     bool
	Properties props.Set
	Topic      string
	Payload    []byte
}

// Connect is an MQTT 5 CONNECT packet.
type Connect struct {
	ClientID   string
	CleanStart bool
	KeepAlive  uint16
	Properties props.Set
	Will       *Will

	// Username is nil when the username flag is clear. Password is nil
	// when the password flag is clear; per spec.md §3, Password must not
	// be set unless Username is also set — Encode enforces this.
	Username *string
	Password []byte
}

const maxBuilderClientIDLen = 23

// ValidateBuilderClientID enforces the bound spec.md §4.5 places on the
// local builder helper: ASCII only, at most 23 bytes. Client IDs received
// from the wire are not subject to this check — only ones this process
// constructs before sending.
func ValidateBuilderClientID(id string) error {
	if len(id) > maxBuilderClientIDLen {
		return packet.ErrClientIDTooLong
	}
	for i := 0; i < len(id); i++ {
		if id[i] > 0x7F {
			return packet.ErrClientIDNonASCII
		}
	}
	return nil
}

// Encode serializes the CONNECT packet.
func (c *Connect) Encode() ([]byte, error) {
	if c.Password != nil && c.Username == nil {
		return nil, packet.ErrPasswordWithoutUsername
	}
	if c.Will != nil && !c.Will.QoS.Valid() {
		return nil, packet.ErrInvalidWillQoS
	}

	propsEnc, err := c.Properties.Encode()
	if err != nil {
		return nil, err
	}

	body := wire.AppendString(nil, packet.ProtocolName)
	body = append(body, packet.ProtocolVersion5)

	var flags byte
	if c.CleanStart {
		flags |= 0x02
	}
	if c.Will != nil {
		flags |= 0x04
		flags |= byte(c.Will.QoS) << 3
		if c.Will.Retain {
			flags |= 0x20
		}
	}
	if c.Password != nil {
		flags |= 0x40
	}
	if c.Username != nil {
		flags |= 0x80
	}
	body = append(body, flags)

	body = wire.AppendU16(body, c.KeepAlive)
	body = append(body, propsEnc...)

	body = wire.AppendString(body, c.ClientID)

	if c.Will != nil {
		willPropsEnc, err := c.Will.Properties.Encode()
		if err != nil {
			return nil, err
		}
		body = append(body, willPropsEnc...)
		body = wire.AppendString(body, c.Will.Topic)
		body = wire.AppendBinary(body, c.Will.Payload)
	}

	if c.Username != nil {
		body = wire.AppendString(body, *c.Username)
	}
	if c.Password != nil {
		body = wire.AppendBinary(body, c.Password)
	}

	fh := packet.FixedHeader{Type: packet.CONNECT, RemainingLength: uint32(len(body))}
	out, err := packet.EncodeFixedHeader(nil, fh)
	if err != nil {
		return nil, err
	}
	return append(out, body...), nil
}

// DecodeConnect parses a CONNECT packet's variable header and payload.
// body must be exactly fh.RemainingLength bytes.
func DecodeConnect(fh packet.FixedHeader, body []byte) (*Connect, error) {
	offset := 0

	protoName, n, err := wire.ReadString(body[offset:])
	if err != nil {
		return nil, err
	}
	offset += n
	if protoName != packet.ProtocolName {
		return nil, packet.ErrInvalidProtocolName
	}

	if offset >= len(body) {
		return nil, wire.ErrUnexpectedEOF
	}
	version := body[offset]
	offset++
	if version != packet.ProtocolVersion5 {
		return nil, packet.ErrInvalidProtocolVersion
	}

	if offset >= len(body) {
		return nil, wire.ErrUnexpectedEOF
	}
	flags := body[offset]
	offset++

	if flags&0x01 != 0 {
		return nil, packet.ErrInvalidConnectFlags
	}
	cleanStart := flags&0x02 != 0
	willFlag := flags&0x04 != 0
	willQoS := packet.QoS((flags & 0x18) >> 3)
	willRetain := flags&0x20 != 0
	passwordFlag := flags&0x40 != 0
	usernameFlag := flags&0x80 != 0

	if willFlag {
		if !willQoS.Valid() {
			return nil, packet.ErrInvalidWillQoS
		}
	} else if willQoS != 0 || willRetain {
		return nil, packet.ErrInvalidConnectFlags
	}

	keepAlive, n, err := wire.ReadU16(body[offset:])
	if err != nil {
		return nil, err
	}
	offset += n

	propSet, n, err := props.Parse(body[offset:])
	if err != nil {
		return nil, err
	}
	offset += n

	clientID, n, err := wire.ReadString(body[offset:])
	if err != nil {
		return nil, err
	}
	offset += n

	c := &Connect{
		ClientID:   clientID,
		CleanStart: cleanStart,
		KeepAlive:  keepAlive,
		Properties: propSet,
	}

	if willFlag {
		willProps, n, err := props.Parse(body[offset:])
		if err != nil {
			return nil, err
		}
		offset += n

		willTopic, n, err := wire.ReadString(body[offset:])
		if err != nil {
			return nil, err
		}
		offset += n

		willPayload, n, err := wire.ReadBinary(body[offset:])
		if err != nil {
			return nil, err
		}
		offset += n

		c.Will = &Will{
			QoS:        willQoS,
			Retain:     willRetain,
			Properties: willProps,
			Topic:      willTopic,
			Payload:    willPayload,
		}
	}

	if usernameFlag {
		u, n, err := wire.ReadString(body[offset:])
		if err != nil {
			return nil, err
		}
		offset += n
		c.Username = &u
	}

	if passwordFlag {
		p, n, err := wire.ReadBinary(body[offset:])
		if err != nil {
			return nil, err
		}
		offset += n
		c.Password = p
	}

	if offset != len(body) {
		return nil, packet.ErrTrailingBytes
	}

	return c, nil
}
