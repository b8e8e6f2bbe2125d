// Package transport is a thin wrapper around a blocking TCP socket: connect,
// send, receive, close, with a configurable receive timeout. It knows
// nothing about the MELSEC frame format - mc3e.Session supplies the prefix
// length and a callback that decodes a frame's remaining-byte count from
// that prefix.
package transport

import (
	"fmt"
	"net"
	"time"
)

// Conn is a single TCP connection to a PLC. It is not safe for concurrent
// use - Session only ever has one request outstanding at a time.
type Conn struct {
	addr    string
	timeout time.Duration
	conn    *net.TCPConn
}

// New creates a Conn bound to host:port. Connect must be called before
// SendAll/RecvFrame/RecvExact.
func New(host string, port int) *Conn {
	return &Conn{addr: fmt.Sprintf("%s:%d", host, port)}
}

// Connect dials the PLC and stores timeout as the deadline budget each
// subsequent send/receive gets.
func (c *Conn) Connect(timeout time.Duration) error {
	dialer := net.Dialer{Timeout: timeout}
	conn, err := dialer.Dial("tcp", c.addr)
	if err != nil {
		return err
	}
	tcpConn, ok := conn.(*net.TCPConn)
	if !ok {
		conn.Close()
		return fmt.Errorf("transport: dialed connection is not TCP")
	}
	c.conn = tcpConn
	c.timeout = timeout
	return nil
}

// Connected reports whether Connect has succeeded and Close has not yet
// been called.
func (c *Conn) Connected() bool {
	return c.conn != nil
}

// SendAll writes data in full, applying the configured timeout as a write
// deadline.
func (c *Conn) SendAll(data []byte) error {
	if c.conn == nil {
		return fmt.Errorf("transport: not connected")
	}
	if c.timeout > 0 {
		if err := c.conn.SetWriteDeadline(time.Now().Add(c.timeout)); err != nil {
			return err
		}
	}
	_, err := c.conn.Write(data)
	return err
}

// RecvExact reads exactly n bytes, applying the configured timeout as a
// read deadline, looping until satisfied (a single Read call is not
// guaranteed to fill the buffer on a TCP stream).
func (c *Conn) RecvExact(n int) ([]byte, error) {
	if c.conn == nil {
		return nil, fmt.Errorf("transport: not connected")
	}
	if c.timeout > 0 {
		if err := c.conn.SetReadDeadline(time.Now().Add(c.timeout)); err != nil {
			return nil, err
		}
	}
	buf := make([]byte, n)
	read := 0
	for read < n {
		m, err := c.conn.Read(buf[read:])
		if err != nil {
			return nil, err
		}
		read += m
	}
	return buf, nil
}

// RecvFrame reads prefixLen bytes, hands them to decodeRemaining to learn
// how many more bytes the frame carries, reads that many, and returns the
// prefix concatenated with the remainder: read until the length field is
// complete, then read the remainder.
func (c *Conn) RecvFrame(prefixLen int, decodeRemaining func(prefix []byte) (int, error)) ([]byte, error) {
	prefix, err := c.RecvExact(prefixLen)
	if err != nil {
		return nil, err
	}
	remaining, err := decodeRemaining(prefix)
	if err != nil {
		return nil, err
	}
	if remaining == 0 {
		return prefix, nil
	}
	rest, err := c.RecvExact(remaining)
	if err != nil {
		return nil, err
	}
	return append(prefix, rest...), nil
}

// Close closes the underlying socket. It is idempotent: closing an already
// closed or never-connected Conn is a no-op.
func (c *Conn) Close() error {
	if c.conn == nil {
		return nil
	}
	err := c.conn.Close()
	c.conn = nil
	return err
}
