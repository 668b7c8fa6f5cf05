package http2

import (
	"errors"
	"fmt"
)

// ErrorCode is an HTTP/2 error code, sent on RST_STREAM and GOAWAY frames.
//
// https://tools.ietf.org/html/rfc7540#section-7
type ErrorCode uint32

const (
	NoError              ErrorCode = 0x0
	ProtocolError        ErrorCode = 0x1
	InternalError        ErrorCode = 0x2
	FlowControlError     ErrorCode = 0x3
	SettingsTimeoutError ErrorCode = 0x4
	StreamClosedError    ErrorCode = 0x5
	FrameSizeError       ErrorCode = 0x6
	RefusedStreamError   ErrorCode = 0x7
	CancelError          ErrorCode = 0x8
	CompressionError     ErrorCode = 0x9
	ConnectionError      ErrorCode = 0xa
	EnhanceYourCalm      ErrorCode = 0xb
	InadequateSecurity   ErrorCode = 0xc
	HTTP11Required       ErrorCode = 0xd
)

var errCodeStrings = [...]string{
	NoError:              "NO_ERROR",
	ProtocolError:        "PROTOCOL_ERROR",
	InternalError:        "INTERNAL_ERROR",
	FlowControlError:     "FLOW_CONTROL_ERROR",
	SettingsTimeoutError: "SETTINGS_TIMEOUT",
	StreamClosedError:    "STREAM_CLOSED",
	FrameSizeError:       "FRAME_SIZE_ERROR",
	RefusedStreamError:   "REFUSED_STREAM",
	CancelError:          "CANCEL",
	CompressionError:     "COMPRESSION_ERROR",
	ConnectionError:      "CONNECT_ERROR",
	EnhanceYourCalm:      "ENHANCE_YOUR_CALM",
	InadequateSecurity:   "INADEQUATE_SECURITY",
	HTTP11Required:       "HTTP_1_1_REQUIRED",
}

// String returns the error code's wire-format name, or a numeric fallback
// for codes outside the range registered by RFC 7540.
func (code ErrorCode) String() string {
	if int(code) < len(errCodeStrings) && errCodeStrings[code] != "" {
		return errCodeStrings[code]
	}
	return fmt.Sprintf("UNKNOWN_ERROR_CODE(0x%x)", uint32(code))
}

// ProtoError is the error type carried by RST_STREAM and GOAWAY frames: a
// wire error code plus an optional human-readable detail.
type ProtoError struct {
	Code   ErrorCode
	Detail string
}

// NewError builds a ProtoError for code, optionally carrying detail as
// additional context for logs.
func NewError(code ErrorCode, detail string) error {
	return &ProtoError{Code: code, Detail: detail}
}

func (e *ProtoError) Error() string {
	if e.Detail == "" {
		return e.Code.String()
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Detail)
}

// Is reports whether target is a ProtoError carrying the same code, so
// callers can write errors.Is(err, NewError(ProtocolError, "")).
func (e *ProtoError) Is(target error) bool {
	pe, ok := target.(*ProtoError)
	return ok && pe.Code == e.Code
}

// As unpacks e into target if target is a *ProtoError or *ErrorCode.
func (e *ProtoError) As(target interface{}) bool {
	switch t := target.(type) {
	case **ProtoError:
		*t = e
		return true
	case *ErrorCode:
		*t = e.Code
		return true
	}
	return false
}

var (
	// ErrUnknowFrameType is returned when a frame header names a type
	// outside the range this implementation understands.
	ErrUnknowFrameType = errors.New("http2: unknown frame type")
	// ErrZeroPayload is returned when a frame that requires a non-empty
	// payload has none.
	ErrZeroPayload = errors.New("http2: zero length frame payload")
	// ErrBadPreface is returned when the client connection preface does
	// not match the fixed 24-octet sequence RFC 7540 requires.
	ErrBadPreface = errors.New("http2: bad connection preface")
	// ErrFrameMismatch is returned when a frame is asked to deserialize
	// into a type its FrameHeader does not describe.
	ErrFrameMismatch = errors.New("http2: frame type mismatch")
	ErrNilWriter     = errors.New("http2: writer cannot be nil")
	ErrNilReader     = errors.New("http2: reader cannot be nil")
	ErrUnknown       = errors.New("http2: unknown error")
	ErrBitOverflow   = errors.New("http2: bit overflow")
	// ErrPayloadExceeds is returned when a frame's declared length
	// exceeds the negotiated SETTINGS_MAX_FRAME_SIZE.
	ErrPayloadExceeds = errors.New("http2: frame payload exceeds the negotiated maximum size")
	// ErrMissingBytes is returned when a frame's payload is shorter than
	// its fixed-size fields require.
	ErrMissingBytes = errors.New("http2: frame payload shorter than required")
	// ErrInvalidPadding is returned when a frame's padding length would
	// consume more bytes than the payload contains.
	ErrInvalidPadding = errors.New("http2: padding length exceeds payload size")
	// ErrGoAway is returned by Conn.Do (and delivered on Ctx.Err for
	// Conn.Write) once a GOAWAY has been received; the connection no
	// longer accepts new streams.
	ErrGoAway = errors.New("http2: connection is going away")
	// ErrHeaderListTooLarge is returned when the encoded size of an
	// outgoing request's header list would exceed the peer's
	// SETTINGS_MAX_HEADER_LIST_SIZE.
	ErrHeaderListTooLarge = errors.New("http2: header list exceeds peer's max header list size")

	// ContentReSendError is handed back to a request's Ctx.Err when its
	// stream is torn down by a NO_ERROR GOAWAY: the server is done with
	// the connection but the exchange was never processed, so it is
	// safe to resend on a new connection.
	ContentReSendError = errors.New("http2: stream aborted by GOAWAY, safe to resend")
)
