package packet

import "github.com/sparrowmqtt/mqtt5/wire"

// FixedHeader is the one-byte type/flags field plus the variable byte
// integer remaining length that precedes every control packet's variable
// header and payload.
type FixedHeader struct {
	Type            Type
	Flags           byte
	RemainingLength uint32
}

// expectedFlags gives the fixed low-nibble value required for packet types
// whose flags carry no information (everything but PUBLISH).
var expectedFlags = map[Type]byte{
	CONNECT:     0x00,
	CONNACK:     0x00,
	PUBACK:      0x00,
	PUBREC:      0x00,
	PUBREL:      0x02,
	PUBCOMP:     0x00,
	SUBSCRIBE:   0x02,
	SUBACK:      0x00,
	UNSUBSCRIBE: 0x02,
	UNSUBACK:    0x00,
	PINGREQ:     0x00,
	PINGRESP:    0x00,
	DISCONNECT:  0x00,
	AUTH:        0x00,
}

// DecodeFixedHeader reads the fixed header from the front of data,
// validating the packet type and, for non-PUBLISH types, the mandatory
// flag bits. Returns the header and bytes consumed.
func DecodeFixedHeader(data []byte) (FixedHeader, int, error) {
	if len(data) < 2 {
		return FixedHeader{}, 0, wire.ErrUnexpectedEOF
	}

	typ := Type(data[0] >> 4)
	if typ == reserved {
		return FixedHeader{}, 0, ErrReservedType
	}
	if typ > AUTH {
		return FixedHeader{}, 0, ErrInvalidType
	}

	flags := data[0] & 0x0F
	if typ != PUBLISH {
		if want, ok := expectedFlags[typ]; ok && flags != want {
			return FixedHeader{}, 0, ErrInvalidFlags
		}
	}

	remaining, n, err := wire.DecodeVarInt(data[1:])
	if err != nil {
		return FixedHeader{}, 0, err
	}

	fh := FixedHeader{Type: typ, Flags: flags, RemainingLength: remaining}
	return fh, 1 + n, nil
}

// EncodeFixedHeader appends the wire encoding of fh to dst.
func EncodeFixedHeader(dst []byte, fh FixedHeader) ([]byte, error) {
	dst = append(dst, byte(fh.Type)<<4|fh.Flags)
	return wire.AppendVarInt(dst, fh.RemainingLength)
}

// PublishFlags unpacks the PUBLISH-specific DUP/QoS/RETAIN bits from a
// fixed header's flags byte. The QoS bits are AND-masked against their
// field (bits 1-2), not OR-ed against the whole byte, so a DUP- or
// RETAIN-only byte never reports an unrelated bit as set.
func PublishFlags(flags byte) (dup bool, qos QoS, retain bool, err error) {
	dup = flags&0x08 != 0
	qos = QoS((flags & 0x06) >> 1)
	retain = flags&0x01 != 0
	if !qos.Valid() {
		err = ErrInvalidQoS
	}
	return dup, qos, retain, err
}

// BuildPublishFlags packs DUP/QoS/RETAIN into a fixed-header flags byte.
func BuildPublishFlags(dup bool, qos QoS, retain bool) byte {
	var f byte
	if dup {
		f |= 0x08
	}
	f |= byte(qos) << 1
	if retain {
		f |= 0x01
	}
	return f
}
