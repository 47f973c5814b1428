package transport

import (
	"bufio"
	"net"
	"time"

	"github.com/sparrowmqtt/mqtt5/frame"
	"github.com/sparrowmqtt/mqtt5/wire"
)

// TCPConn adapts a raw net.Conn (plain TCP or behind tls.Conn) to Conn. It
// reads the fixed header incrementally — one byte at a time for the
// variable byte integer remaining length — since the stream gives no
// other way to know how many bytes a packet occupies before its first
// few bytes have been read.
type TCPConn struct {
	nc            net.Conn
	r             *bufio.Reader
	readDeadline  time.Duration
	writeDeadline time.Duration
	bytesRead     uint64
	bytesWritten  uint64
}

// TCPConfig holds the two deadlines TCPConn applies to every read/write.
// The keep-alive interval that governs ReadDeadline's value is a field of
// the negotiated Connect, per spec.md §5 — the transport, not the codec,
// is responsible for enforcing it.
type TCPConfig struct {
	ReadDeadline  time.Duration
	WriteDeadline time.Duration
}

// NewTCPConn wraps nc. A nil cfg applies no deadlines.
func NewTCPConn(nc net.Conn, cfg *TCPConfig) *TCPConn {
	c := &TCPConn{nc: nc, r: bufio.NewReader(nc)}
	if cfg != nil {
		c.readDeadline = cfg.ReadDeadline
		c.writeDeadline = cfg.WriteDeadline
	}
	return c
}

func (c *TCPConn) RemoteAddr() net.Addr { return c.nc.RemoteAddr() }
func (c *TCPConn) Close() error         { return c.nc.Close() }

// BytesRead and BytesWritten report the lifetime byte counts this
// connection has moved, for a caller wiring them into metrics.Collectors.
func (c *TCPConn) BytesRead() uint64    { return c.bytesRead }
func (c *TCPConn) BytesWritten() uint64 { return c.bytesWritten }

// ReadPacket blocks for one complete control packet: a fixed header
// (type/flags byte plus 1-4 VBI bytes) followed by exactly
// RemainingLength more bytes.
func (c *TCPConn) ReadPacket() (frame.Packet, error) {
	if c.readDeadline > 0 {
		_ = c.nc.SetReadDeadline(time.Now().Add(c.readDeadline))
	}

	header := make([]byte, 1, 5)
	b, err := c.r.ReadByte()
	if err != nil {
		return nil, err
	}
	header[0] = b

	var remaining uint32
	var vbiLen int
	for {
		b, err := c.r.ReadByte()
		if err != nil {
			return nil, err
		}
		header = append(header, b)
		vbiLen++
		if b&0x80 == 0 {
			break
		}
		if vbiLen == wire.MaxVarIntBytes {
			break
		}
	}
	remaining, _, err = wire.DecodeVarInt(header[1:])
	if err != nil {
		return nil, err
	}

	body := make([]byte, remaining)
	if remaining > 0 {
		if _, err := readFull(c.r, body); err != nil {
			return nil, err
		}
	}

	full := append(header, body...)
	c.bytesRead += uint64(len(full))

	pkt, _, err := frame.Decode(full)
	if err != nil {
		return nil, err
	}
	return pkt, nil
}

// WritePacket encodes p and writes the result in a single call.
func (c *TCPConn) WritePacket(p frame.Packet) error {
	encoded, err := p.Encode()
	if err != nil {
		return err
	}
	if c.writeDeadline > 0 {
		_ = c.nc.SetWriteDeadline(time.Now().Add(c.writeDeadline))
	}
	n, err := c.nc.Write(encoded)
	c.bytesWritten += uint64(n)
	return err
}

func readFull(r *bufio.Reader, buf []byte) (int, error) {
	total := 0
	for total < len(buf) {
		n, err := r.Read(buf[total:])
		total += n
		if err != nil {
			return total, err
		}
	}
	return total, nil
}

var _ Conn = (*TCPConn)(nil)
