package ackchain

import (
	"github.com/sparrowmqtt/mqtt5/frame"
	"github.com/sparrowmqtt/mqtt5/packet"
)

// Role distinguishes which side of a publish a Chain tracks: the party
// that sent it, or the party that received it.
type Role int

const (
	Sender Role = iota
	Receiver
)

// Stage is the chain's current position in the exchange.
type Stage int

const (
	// StagePublished is a sender's initial stage: PUBLISH sent, awaiting
	// PUBACK (QoS1) or PUBREC (QoS2).
	StagePublished Stage = iota
	// StageAwaitingPubcomp is a sender's QoS2 stage: PUBREL sent,
	// awaiting PUBCOMP.
	StageAwaitingPubcomp
	// StageReceived is a receiver's QoS2 stage: PUBLISH received, PUBREC
	// sent, awaiting PUBREL.
	StageReceived
	StageDone
	StageAborted
)

// Chain tracks one QoS-1 or QoS-2 publish's acknowledgement exchange,
// correlating every inbound ack against the packet identifier the chain
// was opened with.
type Chain struct {
	packetID uint16
	qos      packet.QoS
	role     Role
	stage    Stage
}

// NewSenderChain opens a chain for a publish this side has just sent.
func NewSenderChain(packetID uint16, qos packet.QoS) (*Chain, error) {
	if qos != packet.QoS1 && qos != packet.QoS2 {
		return nil, ErrInvalidQoS
	}
	return &Chain{packetID: packetID, qos: qos, role: Sender, stage: StagePublished}, nil
}

// NewReceiverChain opens a chain for a QoS-2 publish this side has just
// received (and is about to acknowledge with a PUBREC). QoS1 has no
// receiver-side chain: a single PUBACK completes it with no further
// state to track.
func NewReceiverChain(packetID uint16) *Chain {
	return &Chain{packetID: packetID, qos: packet.QoS2, role: Receiver, stage: StageReceived}
}

// PacketID returns the identifier this chain was opened with.
func (c *Chain) PacketID() uint16 { return c.packetID }

// Stage returns the chain's current stage.
func (c *Chain) Stage() Stage { return c.stage }

// Done reports whether the chain has reached a terminal stage, either by
// completing normally or by being aborted.
func (c *Chain) Done() bool { return c.stage == StageDone || c.stage == StageAborted }

// correlated reports whether id matches the chain's packet identifier,
// per spec.md §4.6's correlation check.
func (c *Chain) correlated(id uint16) bool { return id == c.packetID }

func correlationReason(ok bool) packet.ReasonCode {
	if ok {
		return packet.ReasonSuccess
	}
	return packet.ReasonPacketIdentifierNotFound
}

// OnPuback advances a QoS1 sender chain. It is the chain's terminal step.
func (c *Chain) OnPuback(p *frame.Puback) error {
	if c.Done() {
		return ErrChainComplete
	}
	if c.role != Sender || c.qos != packet.QoS1 || c.stage != StagePublished {
		return ErrWrongStage
	}
	c.stage = StageDone
	if !c.correlated(p.PacketID) {
		return ErrPacketIDMismatch
	}
	return nil
}

// OnPubrec advances a QoS2 sender chain from StagePublished to
// StageAwaitingPubcomp, returning the PUBREL the sender must now transmit. Its
// reason code is Success unless the inbound PUBREC's packet identifier
// fails to correlate, per spec.md §4.6.
func (c *Chain) OnPubrec(p *frame.Pubrec) (*frame.Pubrel, error) {
	if c.Done() {
		return nil, ErrChainComplete
	}
	if c.role != Sender || c.qos != packet.QoS2 || c.stage != StagePublished {
		return nil, ErrWrongStage
	}
	reason := correlationReason(c.correlated(p.PacketID))
	c.stage = StageAwaitingPubcomp
	return &frame.Pubrel{PacketID: c.packetID, ReasonCode: reason}, nil
}

// OnPubcomp completes a QoS2 sender chain.
func (c *Chain) OnPubcomp(p *frame.Pubcomp) error {
	if c.Done() {
		return ErrChainComplete
	}
	if c.role != Sender || c.qos != packet.QoS2 || c.stage != StageAwaitingPubcomp {
		return ErrWrongStage
	}
	c.stage = StageDone
	if !c.correlated(p.PacketID) {
		return ErrPacketIDMismatch
	}
	return nil
}

// Pubrec returns the PUBREC a QoS2 receiver chain sends immediately after
// opening, acknowledging the inbound PUBLISH.
func (c *Chain) Pubrec() *frame.Pubrec {
	return &frame.Pubrec{PacketID: c.packetID, ReasonCode: packet.ReasonSuccess}
}

// OnPubrel completes a QoS2 receiver chain, returning the PUBCOMP to send
// back. Its reason code is Success unless the inbound PUBREL's packet
// identifier fails to correlate against the PUBLISH this chain opened
// for, per spec.md §4.6.
func (c *Chain) OnPubrel(p *frame.Pubrel) (*frame.Pubcomp, error) {
	if c.Done() {
		return nil, ErrChainComplete
	}
	if c.role != Receiver || c.stage != StageReceived {
		return nil, ErrWrongStage
	}
	reason := correlationReason(c.correlated(p.PacketID))
	c.stage = StageDone
	return &frame.Pubcomp{PacketID: c.packetID, ReasonCode: reason}, nil
}

// OnDisconnect terminates the chain at whatever stage it was in and
// surfaces the peer's reason code to the caller, per spec.md §4.6.
func (c *Chain) OnDisconnect(d *frame.Disconnect) error {
	if c.Done() {
		return ErrChainComplete
	}
	c.stage = StageAborted
	return &AbortedError{Reason: d.ReasonCode}
}
