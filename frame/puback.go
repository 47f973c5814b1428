package frame

import (
	"github.com/sparrowmqtt/mqtt5/packet"
	"github.com/sparrowmqtt/mqtt5/props"
)

// Puback is an MQTT 5 PUBACK packet: the QoS1 acknowledgement.
type Puback struct {
	PacketID   uint16
	ReasonCode packet.ReasonCode
	Properties props.Set
}

func (p *Puback) Encode() ([]byte, error) {
	return encodeSimpleAck(packet.PUBACK, 0, p.PacketID, p.ReasonCode, p.Properties, packet.ValidPubAckReason)
}

func DecodePuback(fh packet.FixedHeader, body []byte) (*Puback, error) {
	id, rc, propSet, err := decodeSimpleAck(body, packet.ValidPubAckReason)
	if err != nil {
		return nil, err
	}
	return &Puback{PacketID: id, ReasonCode: rc, Properties: propSet}, nil
}
