package mc3e

import (
	"github.com/charmbracelet/log"

	"github.com/hnakamur/mc3e/internal/transport"
)

// Session owns one PLC family, comm type, AccessOptions, and TCP endpoint.
// It is single-threaded: exactly one outstanding request at a time. The
// zero value is not usable - construct with NewSession.
type Session struct {
	family    PlcFamily
	opts      AccessOptions
	conn      *transport.Conn
	connected bool

	// Logger, if set, receives structured diagnostic events (connect,
	// close, timeout). The core codec and operation layer never log on
	// their own - only Session's lifecycle and transport-error paths do.
	Logger *log.Logger
}

// NewSession constructs a Session for the given PLC family with default
// AccessOptions (binary framing). Call SetAccessOptions before Connect to
// switch to ASCII or customize routing fields.
func NewSession(family PlcFamily) *Session {
	return &Session{
		family: family,
		opts:   DefaultAccessOptions(),
	}
}

// SetAccessOptions merges the given update into the session's current
// AccessOptions. Valid at any time. Framing, routing and wire-timer
// changes take effect on the next request built after the call; the socket
// timeout is handed to the connection in Connect, so a change to it applies
// from the next Connect.
func (s *Session) SetAccessOptions(u AccessOptionsUpdate) {
	s.opts.apply(u)
}

// Family reports the PLC family this session was constructed for.
func (s *Session) Family() PlcFamily { return s.family }

// CommType reports the currently configured wire framing.
func (s *Session) CommType() CommType { return s.opts.CommType }

// Connect dials host:port and transitions the session to Connected.
func (s *Session) Connect(host string, port int) error {
	conn := transport.New(host, port)
	if err := conn.Connect(s.opts.SocketTimeout); err != nil {
		return &TransportError{Op: "connect", Err: err}
	}
	s.conn = conn
	s.connected = true
	s.logf("connected to %s:%d family=%s commtype=%s", host, port, s.family, s.opts.CommType)
	return nil
}

// Close releases the socket. Idempotent.
func (s *Session) Close() error {
	if !s.connected {
		return nil
	}
	err := s.conn.Close()
	s.connected = false
	s.logf("session closed")
	if err != nil {
		return &TransportError{Op: "close", Err: err}
	}
	return nil
}

func (s *Session) logf(format string, args ...interface{}) {
	if s.Logger != nil {
		s.Logger.Infof(format, args...)
	}
}

// roundTrip builds a request from command/subcommand/body, sends it, reads
// the matching reply, and returns the reply's body with a non-zero
// completion code mapped through the error taxonomy. operation names the
// caller for UnsupportedCommandError/log messages.
func (s *Session) roundTrip(operation string, command, subcommand uint16, body []byte) ([]byte, error) {
	if !s.connected {
		return nil, &TransportError{Op: operation, Err: &NotConnectedError{}}
	}

	req := buildRequest(s.opts, command, subcommand, body)
	if err := s.conn.SendAll(req); err != nil {
		s.taint(operation, err)
		return nil, &TransportError{Op: operation, Err: err}
	}

	raw, err := s.conn.RecvFrame(frameLengthPrefixLen(s.opts.CommType), decodeFrameRemaining(s.opts.CommType))
	if err != nil {
		s.taint(operation, err)
		return nil, &TransportError{Op: operation, Err: err}
	}

	resp, err := parseResponse(s.family, s.opts.CommType, raw)
	if err != nil {
		return nil, err
	}
	if resp.status != 0 {
		return nil, classifyCompletionCode(resp.status, s.family, operation)
	}
	return resp.body, nil
}

// sendOnly builds and sends a request without waiting for a reply, used by
// remote_reset which intentionally drops the connection before the PLC
// would answer.
func (s *Session) sendOnly(operation string, command, subcommand uint16, body []byte) error {
	if !s.connected {
		return &TransportError{Op: operation, Err: &NotConnectedError{}}
	}
	req := buildRequest(s.opts, command, subcommand, body)
	if err := s.conn.SendAll(req); err != nil {
		s.taint(operation, err)
		return &TransportError{Op: operation, Err: err}
	}
	return nil
}

// taint logs a mid-frame failure. The session must be
// considered unreliable after any transport error; Session does not
// auto-close (that decision belongs to the caller), it only surfaces the
// condition through the logger if one is attached.
func (s *Session) taint(operation string, err error) {
	if s.Logger != nil {
		s.Logger.Warnf("mc3e: %s failed, session should be closed and reconnected: %v", operation, err)
	}
}
