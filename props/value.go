package props

import "github.com/sparrowmqtt/mqtt5/wire"

// Kind identifies which of the seven MQTT property wire representations a
// Value holds.
type Kind byte

const (
	KindByte Kind = iota + 1
	KindU16
	KindU32
	KindVarInt
	KindUTF8
	KindUTF8Pair
	KindBinary
)

// Value is a closed tagged union over the seven primitive representations
// a property's value can take. The zero Value is not meaningful; use one
// of the constructor functions.
type Value struct {
	kind Kind
	b    byte
	u16  uint16
	u32  uint32
	str  string
	pair wire.StringPair
	bin  []byte
}

func byteValue(b byte) Value      { return Value{kind: KindByte, b: b} }
func u16Value(v uint16) Value     { return Value{kind: KindU16, u16: v} }
func u32Value(v uint32) Value     { return Value{kind: KindU32, u32: v} }
func varIntValue(v uint32) Value  { return Value{kind: KindVarInt, u32: v} }
func stringValue(s string) Value  { return Value{kind: KindUTF8, str: s} }
func pairValue(p wire.StringPair) Value {
	return Value{kind: KindUTF8Pair, pair: p}
}
func binaryValue(b []byte) Value { return Value{kind: KindBinary, bin: b} }

// Kind reports which representation this value holds.
func (v Value) Kind() Kind { return v.kind }

func (v Value) encodedLen() int {
	switch v.kind {
	case KindByte:
		return 1
	case KindU16:
		return 2
	case KindU32:
		return 4
	case KindVarInt:
		return wire.SizeVarInt(v.u32)
	case KindUTF8:
		return wire.SizeString(v.str)
	case KindUTF8Pair:
		return wire.SizeStringPair(v.pair)
	case KindBinary:
		return wire.SizeBinary(v.bin)
	default:
		return 0
	}
}

func (v Value) append(dst []byte) ([]byte, error) {
	switch v.kind {
	case KindByte:
		return append(dst, v.b), nil
	case KindU16:
		return wire.AppendU16(dst, v.u16), nil
	case KindU32:
		return wire.AppendU32(dst, v.u32), nil
	case KindVarInt:
		return wire.AppendVarInt(dst, v.u32)
	case KindUTF8:
		return wire.AppendString(dst, v.str), nil
	case KindUTF8Pair:
		return wire.AppendStringPair(dst, v.pair), nil
	case KindBinary:
		return wire.AppendBinary(dst, v.bin), nil
	default:
		return dst, nil
	}
}

// decodeValue reads one property's value representation from the front of
// data, dispatching on the identifier's expected kind.
func decodeValue(k Kind, data []byte) (Value, int, error) {
	switch k {
	case KindByte:
		if len(data) < 1 {
			return Value{}, 0, wire.ErrUnexpectedEOF
		}
		return byteValue(data[0]), 1, nil
	case KindU16:
		v, n, err := wire.ReadU16(data)
		if err != nil {
			return Value{}, 0, err
		}
		return u16Value(v), n, nil
	case KindU32:
		v, n, err := wire.ReadU32(data)
		if err != nil {
			return Value{}, 0, err
		}
		return u32Value(v), n, nil
	case KindVarInt:
		v, n, err := wire.DecodeVarInt(data)
		if err != nil {
			return Value{}, 0, err
		}
		return varIntValue(v), n, nil
	case KindUTF8:
		s, n, err := wire.ReadString(data)
		if err != nil {
			return Value{}, 0, err
		}
		return stringValue(s), n, nil
	case KindUTF8Pair:
		p, n, err := wire.ReadStringPair(data)
		if err != nil {
			return Value{}, 0, err
		}
		return pairValue(p), n, nil
	case KindBinary:
		b, n, err := wire.ReadBinary(data)
		if err != nil {
			return Value{}, 0, err
		}
		return binaryValue(b), n, nil
	default:
		return Value{}, 0, ErrInvalidPropertyValue
	}
}

func decodeBool(v Value) (bool, error) {
	switch v.b {
	case 0:
		return false, nil
	case 1:
		return true, nil
	default:
		return false, ErrInvalidPropertyValue
	}
}
