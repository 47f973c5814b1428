// Package packet implements the facade types every MQTT 5 control packet
// shares: the packet-type and QoS enumerations, the reason-code table with
// its per-packet permitted sets, fixed-header framing (type, flags, the
// variable byte integer remaining length), and the two-kind error taxonomy
// the codec reports through.
package packet

import (
	"errors"

	"github.com/sparrowmqtt/mqtt5/props"
	"github.com/sparrowmqtt/mqtt5/wire"
)

var (
	ErrInvalidType            = errors.New("packet: invalid control packet type")
	ErrReservedType            = errors.New("packet: reserved packet type (0) not allowed")
	ErrInvalidFlags           = errors.New("packet: invalid flags for packet type")
	ErrInvalidQoS             = errors.New("packet: invalid QoS level (3 is reserved)")
	ErrInvalidProtocolName    = errors.New("packet: invalid protocol name")
	ErrInvalidProtocolVersion = errors.New("packet: unsupported protocol version")
	ErrInvalidConnectFlags    = errors.New("packet: reserved CONNECT flag bit must be 0")
	ErrInvalidWillQoS         = errors.New("packet: invalid Will QoS level")
	ErrPasswordWithoutUsername = errors.New("packet: password flag set without username flag")
	ErrMissingPacketID        = errors.New("packet: missing packet identifier for QoS > 0")
	ErrInvalidPacketIDZero    = errors.New("packet: packet identifier must not be zero")
	ErrEmptyTopicFilter       = errors.New("packet: topic filter must not be empty")
	ErrEmptySubscribeList     = errors.New("packet: SUBSCRIBE must contain at least one filter")
	ErrEmptyUnsubscribeList   = errors.New("packet: UNSUBSCRIBE must contain at least one filter")
	ErrReasonCodeNotPermitted = errors.New("packet: reason code not permitted for this packet type")
	ErrUnknownReasonCode      = errors.New("packet: unknown reason code")
	ErrMalformedPing          = errors.New("packet: PINGREQ/PINGRESP carry no variable header or payload")
	ErrTruncatedBody          = errors.New("packet: body shorter than declared remaining length")
	ErrTrailingBytes          = errors.New("packet: trailing bytes beyond declared remaining length")
	ErrClientIDTooLong        = errors.New("packet: client identifier exceeds the builder's 23-byte bound")
	ErrClientIDNonASCII       = errors.New("packet: client identifier must be ASCII")
)

// Kind distinguishes the two protocol-level error classes spec.md §7
// defines. A third, general-purpose error (one that isn't a *Error at all)
// is reserved for cases that can't yet be classified.
type Kind int

const (
	// Malformed means the bytes could not be parsed at all: a bad first
	// byte, a truncated remaining length, a body shorter than advertised,
	// invalid UTF-8, an unknown reason code, or a wrong fixed-value field.
	Malformed Kind = iota + 1

	// Protocol means the bytes parsed into a well-formed structure but
	// violate an MQTT semantic rule: an unknown property identifier, a
	// reason code illegal for its packet, an out-of-range enum byte, a
	// duplicate non-repeating property, an empty topic filter.
	Protocol
)

// Error wraps an underlying error with the reason code a caller should
// report back to the peer, mirroring the wire's own MalformedPacket
// (0x81) / ProtocolError (0x82) split.
type Error struct {
	Err    error
	Kind   Kind
	Reason ReasonCode
}

func (e *Error) Error() string { return e.Err.Error() }
func (e *Error) Unwrap() error { return e.Err }

func newMalformed(err error) *Error {
	return &Error{Err: err, Kind: Malformed, Reason: ReasonMalformedPacket}
}

func newProtocol(err error, reason ReasonCode) *Error {
	return &Error{Err: err, Kind: Protocol, Reason: reason}
}

// Classify wraps a lower-layer error (from wire or props) in the facade's
// *Error taxonomy so a transport can decide whether to drop the
// connection and which reason code to report. Errors already wrapped are
// returned unchanged.
func Classify(err error) *Error {
	if err == nil {
		return nil
	}
	var pe *Error
	if errors.As(err, &pe) {
		return pe
	}

	switch {
	case errors.Is(err, wire.ErrUnexpectedEOF),
		errors.Is(err, wire.ErrMalformedVarInt),
		errors.Is(err, wire.ErrVarIntTooLarge),
		errors.Is(err, wire.ErrInvalidUTF8),
		errors.Is(err, wire.ErrBufferTooSmall),
		errors.Is(err, ErrInvalidProtocolName),
		errors.Is(err, ErrInvalidProtocolVersion),
		errors.Is(err, ErrInvalidConnectFlags),
		errors.Is(err, ErrInvalidQoS),
		errors.Is(err, ErrInvalidWillQoS),
		errors.Is(err, ErrTruncatedBody),
		errors.Is(err, ErrTrailingBytes),
		errors.Is(err, ErrMalformedPing),
		errors.Is(err, ErrUnknownReasonCode),
		errors.Is(err, ErrInvalidType),
		errors.Is(err, ErrReservedType),
		errors.Is(err, ErrInvalidFlags):
		return newMalformed(err)

	case errors.Is(err, props.ErrUnknownPropertyID):
		return newProtocol(err, ReasonProtocolError)
	case errors.Is(err, props.ErrDuplicateProperty):
		return newProtocol(err, ReasonProtocolError)
	case errors.Is(err, props.ErrInvalidPropertyValue):
		return newProtocol(err, ReasonProtocolError)
	case errors.Is(err, props.ErrBlockLengthMismatch):
		return newMalformed(err)

	case errors.Is(err, ErrEmptyTopicFilter):
		return newProtocol(err, ReasonTopicFilterInvalid)
	case errors.Is(err, ErrReasonCodeNotPermitted):
		return newProtocol(err, ReasonProtocolError)

	default:
		return newProtocol(err, ReasonUnspecifiedError)
	}
}
