// Package wire implements the fixed- and variable-width primitive data
// types MQTT 5 control packets are built from: bytes, big-endian integers,
// the variable byte integer, length-prefixed UTF-8 strings, string pairs,
// and binary data.
package wire

import "errors"

var (
	// ErrVarIntTooLarge indicates a value exceeding the maximum encodable
	// variable byte integer (268,435,455).
	ErrVarIntTooLarge = errors.New("wire: variable byte integer exceeds maximum (268435455)")

	// ErrMalformedVarInt indicates a continuation chain that never terminates
	// within four bytes.
	ErrMalformedVarInt = errors.New("wire: malformed variable byte integer")

	// ErrUnexpectedEOF indicates the input ran out before a value could be
	// fully read.
	ErrUnexpectedEOF = errors.New("wire: unexpected end of input")

	// ErrBufferTooSmall indicates the destination buffer cannot hold the
	// encoded value.
	ErrBufferTooSmall = errors.New("wire: buffer too small")

	// ErrInvalidUTF8 indicates bytes that are not well-formed UTF-8, or that
	// contain a code point MQTT disallows in encoded strings.
	ErrInvalidUTF8 = errors.New("wire: invalid UTF-8 string")
)
