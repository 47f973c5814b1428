package main

import (
	"fmt"
	"log/slog"
	"net"
	"time"

	"github.com/sparrowmqtt/mqtt5/frame"
	"github.com/sparrowmqtt/mqtt5/logger"
	"github.com/sparrowmqtt/mqtt5/packet"
	"github.com/sparrowmqtt/mqtt5/transport"
)

// session wraps one connected, handshaken broker connection plus the
// packet-identifier counter CLI commands draw from. Mirrors the
// original's Session/Client split: Session carries the identity and
// counter, Client (here, transport.Conn) owns the live socket.
type session struct {
	conn     transport.Conn
	log      *logger.Logger
	nextID   uint16
	clientID string
}

// connect dials broker, performs the CONNECT/CONNACK handshake, and
// returns a session ready to publish or subscribe. An empty clientID is
// sent as-is; the broker's assigned identifier (if any) is logged from
// CONNACK's AssignedClientIdentifier property, mirroring the original
// CLI's fallback to server-assigned identifiers.
func connect(broker, clientID string) (*session, error) {
	log := logger.New(slog.LevelInfo, nil)

	nc, err := net.DialTimeout("tcp", broker, 10*time.Second)
	if err != nil {
		return nil, fmt.Errorf("dial %s: %w", broker, err)
	}
	conn := transport.NewTCPConn(nc, &transport.TCPConfig{
		ReadDeadline:  30 * time.Second,
		WriteDeadline: 10 * time.Second,
	})

	c := &frame.Connect{ClientID: clientID, CleanStart: true, KeepAlive: 60}
	if err := conn.WritePacket(c); err != nil {
		conn.Close()
		return nil, fmt.Errorf("send CONNECT: %w", err)
	}

	pkt, err := conn.ReadPacket()
	if err != nil {
		conn.Close()
		log.LogDecodeError(broker, err)
		return nil, fmt.Errorf("read CONNACK: %w", err)
	}
	connack, ok := pkt.(*frame.Connack)
	if !ok {
		conn.Close()
		return nil, fmt.Errorf("expected CONNACK, got %T", pkt)
	}
	if connack.ReasonCode.IsError() {
		conn.Close()
		return nil, fmt.Errorf("broker rejected connection: %s", connack.ReasonCode)
	}

	effectiveID := clientID
	if connack.Properties.AssignedClientIdentifier != nil {
		effectiveID = *connack.Properties.AssignedClientIdentifier
		log.Info("broker assigned client identifier", "id", effectiveID)
	}

	return &session{conn: conn, log: log, nextID: 1, clientID: effectiveID}, nil
}

// packetID hands out the next QoS>0 packet identifier, wrapping 0 (never
// a valid identifier) back to 1.
func (s *session) packetID() uint16 {
	id := s.nextID
	s.nextID++
	if s.nextID == 0 {
		s.nextID = 1
	}
	return id
}

func (s *session) disconnect() error {
	_ = s.conn.WritePacket(&frame.Disconnect{ReasonCode: packet.ReasonNormalDisconnection})
	return s.conn.Close()
}
