package http2

// StreamState is one of the seven states a stream can be in over its
// lifetime, per the state machine in RFC 7540 section 5.1. Nothing in this
// package moves a stream into the reserved states: every PUSH_PROMISE is
// refused by Conn.refusePush without creating a Stream.
type StreamState int8

const (
	StateIdle StreamState = iota
	StateReservedLocal
	StateReservedRemote
	StateOpen
	StateHalfClosedLocal
	StateHalfClosedRemote
	StateClosed
)

func (ss StreamState) String() string {
	switch ss {
	case StateIdle:
		return "idle"
	case StateReservedLocal:
		return "reserved(local)"
	case StateReservedRemote:
		return "reserved(remote)"
	case StateOpen:
		return "open"
	case StateHalfClosedLocal:
		return "half-closed(local)"
	case StateHalfClosedRemote:
		return "half-closed(remote)"
	case StateClosed:
		return "closed"
	}

	return "unknown"
}

// Stream tracks one multiplexed HTTP/2 request/response exchange: its
// state in the RFC 7540 section 5.1 machine and its own flow-control
// window, independent from the connection-level window held by Conn.
type Stream struct {
	id    uint32
	state StreamState

	// window is the number of bytes this endpoint is still allowed to
	// send on this stream. It is signed because a SETTINGS_INITIAL_WINDOW_SIZE
	// change can push it negative for already-open streams (RFC 7540
	// section 6.9.2).
	window int32

	// pending holds request body bytes still waiting to be sent once the
	// connection or stream send window reopens. Only the writer goroutine
	// touches this.
	pending []byte

	data interface{}
}

func NewStream(id uint32, win int32, data interface{}) *Stream {
	return &Stream{
		id:     id,
		window: win,
		state:  StateIdle,
		data:   data,
	}
}

func (s *Stream) ID() uint32 {
	return s.id
}

func (s *Stream) SetID(id uint32) {
	s.id = id
}

func (s *Stream) State() StreamState {
	return s.state
}

func (s *Stream) SetState(state StreamState) {
	s.state = state
}

// Window returns the stream's current send window. It may be negative.
func (s *Stream) Window() int32 {
	return s.window
}

func (s *Stream) SetWindow(win int32) {
	s.window = win
}

// IncrWindow applies a WINDOW_UPDATE increment or a SETTINGS-driven delta.
func (s *Stream) IncrWindow(win int32) {
	s.window += win
}

// IsClosed reports whether no further frames are expected from, or
// permitted to, either side of the stream.
func (s *Stream) IsClosed() bool {
	return s.state == StateClosed
}

// EndStreamRecv transitions the stream after a frame carrying
// END_STREAM was received.
func (s *Stream) EndStreamRecv() {
	switch s.state {
	case StateOpen:
		s.state = StateHalfClosedRemote
	case StateHalfClosedLocal:
		s.state = StateClosed
	}
}

// EndStreamSent transitions the stream after a frame carrying
// END_STREAM was sent.
func (s *Stream) EndStreamSent() {
	switch s.state {
	case StateOpen:
		s.state = StateHalfClosedLocal
	case StateHalfClosedRemote:
		s.state = StateClosed
	}
}

func (s *Stream) Data() interface{} {
	return s.data
}

// Pending returns the request body bytes queued behind flow control.
func (s *Stream) Pending() []byte {
	return s.pending
}

// SetPending replaces the queued, not-yet-sent body bytes.
func (s *Stream) SetPending(b []byte) {
	s.pending = b
}
