package transport

import (
	"net"

	"github.com/gorilla/websocket"

	"github.com/sparrowmqtt/mqtt5/frame"
)

// WSConn adapts a *websocket.Conn carrying the "mqtt" subprotocol to
// Conn. Each binary WebSocket message carries exactly one complete MQTT
// control packet, so framing is just one ReadMessage/WriteMessage call
// per packet — unlike TCPConn, no incremental VBI parsing is needed.
type WSConn struct {
	ws *websocket.Conn
}

// NewWSConn wraps an already-upgraded WebSocket connection.
func NewWSConn(ws *websocket.Conn) *WSConn {
	return &WSConn{ws: ws}
}

func (c *WSConn) RemoteAddr() net.Addr { return c.ws.RemoteAddr() }
func (c *WSConn) Close() error         { return c.ws.Close() }

// ReadPacket reads the next binary WebSocket message and decodes it as a
// single control packet.
func (c *WSConn) ReadPacket() (frame.Packet, error) {
	for {
		msgType, data, err := c.ws.ReadMessage()
		if err != nil {
			return nil, err
		}
		if msgType != websocket.BinaryMessage {
			continue
		}
		pkt, _, err := frame.Decode(data)
		if err != nil {
			return nil, err
		}
		return pkt, nil
	}
}

// WritePacket encodes p and sends it as one binary WebSocket message.
func (c *WSConn) WritePacket(p frame.Packet) error {
	encoded, err := p.Encode()
	if err != nil {
		return err
	}
	return c.ws.WriteMessage(websocket.BinaryMessage, encoded)
}

var _ Conn = (*WSConn)(nil)
