// Package props implements the MQTT 5 property subsystem: the tagged
// identifier table, a closed sum type over the seven wire representations
// a property value can take, and the length-bounded property-block parse
// and serialize loop every control packet's variable header shares.
package props

import "errors"

var (
	// ErrUnknownPropertyID indicates a property identifier byte that does
	// not appear in the spec table — a protocol error, not a malformed one.
	ErrUnknownPropertyID = errors.New("props: unknown property identifier")

	// ErrDuplicateProperty indicates a non-repeating identifier appeared
	// more than once within a single property block.
	ErrDuplicateProperty = errors.New("props: duplicate property not allowed to repeat")

	// ErrInvalidPropertyValue indicates a value is the right wire shape
	// but out of the identifier's permitted range (e.g. a boolean-coded
	// byte property holding something other than 0 or 1).
	ErrInvalidPropertyValue = errors.New("props: invalid value for property")

	// ErrBlockLengthMismatch indicates the property block's declared
	// length did not exactly cover its parsed content.
	ErrBlockLengthMismatch = errors.New("props: property block length does not match content")
)
