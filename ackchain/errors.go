// Package ackchain implements the small state machine spec.md §4.6
// describes for a QoS-1/2 publish: a per-packet-identifier correlation
// check between an outbound PUBLISH and the inbound acknowledgement(s)
// that complete it, and the symmetric check a QoS-2 receiver performs
// against an inbound PUBREL. It holds no goroutines, timers, or retry
// policy — those are transport/session concerns the codec leaves
// external, per spec.md §5.
package ackchain

import (
	"errors"

	"github.com/sparrowmqtt/mqtt5/packet"
)

var (
	// ErrInvalidQoS is returned by NewSenderChain for any QoS other
	// than 1 or 2; QoS0 publishes have no ack chain at all.
	ErrInvalidQoS = errors.New("ackchain: chain only applies to QoS 1 or 2")

	// ErrWrongStage is returned when a packet arrives out of the chain's
	// expected sequence (e.g. a PUBCOMP before a PUBREL was sent).
	ErrWrongStage = errors.New("ackchain: packet does not match the chain's current stage")

	// ErrChainComplete is returned by any method called after the chain
	// has already reached its terminal state.
	ErrChainComplete = errors.New("ackchain: chain already complete")

	// ErrPacketIDMismatch is returned by a terminal step (PUBACK, or the
	// sender's final PUBCOMP) whose packet identifier fails to correlate
	// against the chain's. Non-terminal steps don't return this error;
	// they instead carry PacketIdentifierNotFound on the next outbound
	// ack, per spec.md §4.6.
	ErrPacketIDMismatch = errors.New("ackchain: inbound packet identifier does not correlate with this chain")
)

// AbortedError is returned when a Disconnect arrives mid-chain. It carries
// the reason code the peer gave, per spec.md §4.6.
type AbortedError struct {
	Reason packet.ReasonCode
}

func (e *AbortedError) Error() string {
	return "ackchain: aborted by disconnect: " + e.Reason.String()
}
