package frame

import (
	"github.com/sparrowmqtt/mqtt5/packet"
	"github.com/sparrowmqtt/mqtt5/props"
)

// Pubrel is an MQTT 5 PUBREL packet: the second half of the QoS2
// acknowledgement exchange. Its fixed header flags are always 0b0010.
type Pubrel struct {
	PacketID   uint16
	ReasonCode packet.ReasonCode
	Properties props.Set
}

func (p *Pubrel) Encode() ([]byte, error) {
	return encodeSimpleAck(packet.PUBREL, 0x02, p.PacketID, p.ReasonCode, p.Properties, packet.ValidPubRelReason)
}

func DecodePubrel(fh packet.FixedHeader, body []byte) (*Pubrel, error) {
	id, rc, propSet, err := decodeSimpleAck(body, packet.ValidPubRelReason)
	if err != nil {
		return nil, err
	}
	return &Pubrel{PacketID: id, ReasonCode: rc, Properties: propSet}, nil
}
