package main

import (
	"flag"
	"fmt"

	"github.com/sparrowmqtt/mqtt5/ackchain"
	"github.com/sparrowmqtt/mqtt5/frame"
	"github.com/sparrowmqtt/mqtt5/packet"
)

// runPublish sends one message to topic and exits, waiting for the
// acknowledgement chain to complete when qos > 0. Mirrors the original
// CLI's publish.rs: connect, publish, disconnect.
func runPublish(args []string) error {
	fs := flag.NewFlagSet("pub", flag.ExitOnError)
	topic := fs.String("topic", "", "topic to publish to")
	message := fs.String("message", "", "payload to publish")
	qos := fs.Int("qos", 0, "QoS level (0, 1, or 2)")
	broker := fs.String("broker", "127.0.0.1:1883", "broker address")
	id := fs.String("id", "", "client identifier (empty lets the broker assign one)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *topic == "" {
		return fmt.Errorf("-topic is required")
	}
	if *qos < 0 || *qos > 2 {
		return fmt.Errorf("-qos must be 0, 1, or 2")
	}

	s, err := connect(*broker, *id)
	if err != nil {
		return err
	}
	defer s.disconnect()

	pub := &frame.Publish{
		QoS:       packet.QoS(*qos),
		TopicName: *topic,
		Payload:   []byte(*message),
	}
	if pub.QoS > packet.QoS0 {
		pub.PacketID = s.packetID()
	}
	if err := s.conn.WritePacket(pub); err != nil {
		return fmt.Errorf("send PUBLISH: %w", err)
	}

	switch pub.QoS {
	case packet.QoS0:
		s.log.Info("published", "topic", *topic, "qos", 0)
	case packet.QoS1:
		return s.awaitPuback(pub.PacketID)
	case packet.QoS2:
		return s.awaitQoS2Completion(pub.PacketID)
	}
	return nil
}

func (s *session) awaitPuback(packetID uint16) error {
	chain, err := ackchain.NewSenderChain(packetID, packet.QoS1)
	if err != nil {
		return err
	}
	pkt, err := s.conn.ReadPacket()
	if err != nil {
		return fmt.Errorf("read PUBACK: %w", err)
	}
	ack, ok := pkt.(*frame.Puback)
	if !ok {
		return fmt.Errorf("expected PUBACK, got %T", pkt)
	}
	if err := chain.OnPuback(ack); err != nil {
		return err
	}
	s.log.Info("published", "qos", 1, "reason", ack.ReasonCode.String())
	return nil
}

func (s *session) awaitQoS2Completion(packetID uint16) error {
	chain, err := ackchain.NewSenderChain(packetID, packet.QoS2)
	if err != nil {
		return err
	}

	pkt, err := s.conn.ReadPacket()
	if err != nil {
		return fmt.Errorf("read PUBREC: %w", err)
	}
	pubrec, ok := pkt.(*frame.Pubrec)
	if !ok {
		return fmt.Errorf("expected PUBREC, got %T", pkt)
	}
	pubrel, err := chain.OnPubrec(pubrec)
	if err != nil {
		return err
	}
	if err := s.conn.WritePacket(pubrel); err != nil {
		return fmt.Errorf("send PUBREL: %w", err)
	}

	pkt, err = s.conn.ReadPacket()
	if err != nil {
		return fmt.Errorf("read PUBCOMP: %w", err)
	}
	pubcomp, ok := pkt.(*frame.Pubcomp)
	if !ok {
		return fmt.Errorf("expected PUBCOMP, got %T", pkt)
	}
	if err := chain.OnPubcomp(pubcomp); err != nil {
		return err
	}
	s.log.Info("published", "qos", 2, "reason", pubcomp.ReasonCode.String())
	return nil
}
