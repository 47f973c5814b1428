package frame

import (
	"github.com/sparrowmqtt/mqtt5/packet"
	"github.com/sparrowmqtt/mqtt5/props"
)

// Pubcomp is an MQTT 5 PUBCOMP packet: the QoS2 acknowledgement chain's
// final message.
type Pubcomp struct {
	PacketID   uint16
	ReasonCode packet.ReasonCode
	Properties props.Set
}

func (p *Pubcomp) Encode() ([]byte, error) {
	return encodeSimpleAck(packet.PUBCOMP, 0, p.PacketID, p.ReasonCode, p.Properties, packet.ValidPubRelReason)
}

func DecodePubcomp(fh packet.FixedHeader, body []byte) (*Pubcomp, error) {
	id, rc, propSet, err := decodeSimpleAck(body, packet.ValidPubRelReason)
	if err != nil {
		return nil, err
	}
	return &Pubcomp{PacketID: id, ReasonCode: rc, Properties: propSet}, nil
}
