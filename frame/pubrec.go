package frame

import (
	"github.com/sparrowmqtt/mqtt5/packet"
	"github.com/sparrowmqtt/mqtt5/props"
)

// Pubrec is an MQTT 5 PUBREC packet: the first half of the QoS2
// acknowledgement exchange.
type Pubrec struct {
	PacketID   uint16
	ReasonCode packet.ReasonCode
	Properties props.Set
}

func (p *Pubrec) Encode() ([]byte, error) {
	return encodeSimpleAck(packet.PUBREC, 0, p.PacketID, p.ReasonCode, p.Properties, packet.ValidPubAckReason)
}

func DecodePubrec(fh packet.FixedHeader, body []byte) (*Pubrec, error) {
	id, rc, propSet, err := decodeSimpleAck(body, packet.ValidPubAckReason)
	if err != nil {
		return nil, err
	}
	return &Pubrec{PacketID: id, ReasonCode: rc, Properties: propSet}, nil
}
