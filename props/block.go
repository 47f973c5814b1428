package props

import "github.com/sparrowmqtt/mqtt5/wire"

// parseBlock reads a VBI-prefixed property block from the front of data and
// calls consume once per parsed (identifier, value) pair, in wire order.
// It enforces the shared invariants every packet's property block obeys:
// unknown identifiers are rejected, and identifiers with cardinality "at
// most once" may not repeat. Returns the total bytes consumed, including
// the length prefix itself.
func parseBlock(data []byte, consume func(id ID, v Value) error) (int, error) {
	length, n, err := wire.DecodeVarInt(data)
	if err != nil {
		return 0, err
	}
	offset := n
	if length == 0 {
		return offset, nil
	}

	end := offset + int(length)
	if len(data) < end {
		return 0, wire.ErrUnexpectedEOF
	}

	seen := make(map[ID]bool, 4)
	for offset < end {
		id := ID(data[offset])
		offset++

		s, ok := lookup(id)
		if !ok {
			return 0, ErrUnknownPropertyID
		}

		if !s.multiple {
			if seen[id] {
				return 0, ErrDuplicateProperty
			}
			seen[id] = true
		}

		v, n, err := decodeValue(s.kind, data[offset:end])
		if err != nil {
			return 0, err
		}
		offset += n

		if err := consume(id, v); err != nil {
			return 0, err
		}
	}

	if offset != end {
		return 0, ErrBlockLengthMismatch
	}

	return offset, nil
}

// encodeBlock prepends a VBI length prefix to body, producing a complete
// property block. An empty body serializes as the single byte 0x00.
func encodeBlock(body []byte) ([]byte, error) {
	lenBytes, err := wire.EncodeVarInt(uint32(len(body)))
	if err != nil {
		return nil, err
	}
	out := make([]byte, 0, len(lenBytes)+len(body))
	out = append(out, lenBytes...)
	out = append(out, body...)
	return out, nil
}
