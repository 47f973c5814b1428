package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"

	"github.com/sparrowmqtt/mqtt5/ackchain"
	"github.com/sparrowmqtt/mqtt5/frame"
	"github.com/sparrowmqtt/mqtt5/packet"
)

// runSubscribe subscribes to topic and prints every message received
// until the user presses ENTER, mirroring the original CLI's
// subscribe.rs listen-until-stdin-line loop.
func runSubscribe(args []string) error {
	fs := flag.NewFlagSet("sub", flag.ExitOnError)
	topic := fs.String("topic", "", "topic filter to subscribe to")
	qos := fs.Int("qos", 0, "maximum QoS to request (0, 1, or 2)")
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

	sub := &frame.Subscribe{
		PacketID: s.packetID(),
		Subscriptions: []frame.Subscription{
			{TopicFilter: *topic, MaxQoS: packet.QoS(*qos)},
		},
	}
	if err := s.conn.WritePacket(sub); err != nil {
		return fmt.Errorf("send SUBSCRIBE: %w", err)
	}

	pkt, err := s.conn.ReadPacket()
	if err != nil {
		return fmt.Errorf("read SUBACK: %w", err)
	}
	suback, ok := pkt.(*frame.Suback)
	if !ok {
		return fmt.Errorf("expected SUBACK, got %T", pkt)
	}
	if suback.PacketID != sub.PacketID || len(suback.ReasonCodes) == 0 || suback.ReasonCodes[0].IsError() {
		return fmt.Errorf("subscribe rejected: %v", suback.ReasonCodes)
	}
	s.log.Info("subscribed", "topic", *topic, "granted-qos", suback.ReasonCodes[0])

	done := make(chan struct{})
	go func() {
		bufio.NewReader(os.Stdin).ReadString('\n')
		close(done)
	}()

	messages := make(chan frame.Packet)
	readErrs := make(chan error, 1)
	go func() {
		for {
			pkt, err := s.conn.ReadPacket()
			if err != nil {
				readErrs <- err
				return
			}
			messages <- pkt
		}
	}()

	for {
		select {
		case <-done:
			return nil
		case err := <-readErrs:
			return fmt.Errorf("connection lost: %w", err)
		case pkt := <-messages:
			s.handleIncoming(pkt)
		}
	}
}

// handleIncoming prints a received PUBLISH and acknowledges it per its
// QoS, using a receiver-side ackchain.Chain for QoS2.
func (s *session) handleIncoming(pkt frame.Packet) {
	pub, ok := pkt.(*frame.Publish)
	if !ok {
		return
	}
	fmt.Printf("%s: %s\n", pub.TopicName, pub.Payload)

	switch pub.QoS {
	case packet.QoS0:
	case packet.QoS1:
		ack := &frame.Puback{PacketID: pub.PacketID, ReasonCode: packet.ReasonSuccess}
		if err := s.conn.WritePacket(ack); err != nil {
			s.log.Error("send PUBACK failed", "err", err)
		}
	case packet.QoS2:
		chain := ackchain.NewReceiverChain(pub.PacketID)
		if err := s.conn.WritePacket(chain.Pubrec()); err != nil {
			s.log.Error("send PUBREC failed", "err", err)
			return
		}
		ackPkt, err := s.conn.ReadPacket()
		if err != nil {
			s.log.Error("read PUBREL failed", "err", err)
			return
		}
		pubrel, ok := ackPkt.(*frame.Pubrel)
		if !ok {
			s.log.Error("expected PUBREL", "got", fmt.Sprintf("%T", ackPkt))
			return
		}
		pubcomp, err := chain.OnPubrel(pubrel)
		if err != nil {
			s.log.Error("ack chain failed", "err", err)
			return
		}
		if err := s.conn.WritePacket(pubcomp); err != nil {
			s.log.Error("send PUBCOMP failed", "err", err)
		}
	}
}
