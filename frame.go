package http2

import "sync"

// FrameType identifies the kind of payload a FrameHeader carries.
//
// https://tools.ietf.org/html/rfc7540#section-11.2
type FrameType uint8

var frameTypeStrings = [...]string{
	FrameData:         "DATA",
	FrameHeaders:      "HEADERS",
	FramePriority:     "PRIORITY",
	FrameResetStream:  "RST_STREAM",
	FrameSettings:     "SETTINGS",
	FramePushPromise:  "PUSH_PROMISE",
	FramePing:         "PING",
	FrameGoAway:       "GOAWAY",
	FrameWindowUpdate: "WINDOW_UPDATE",
	FrameContinuation: "CONTINUATION",
}

// String returns the frame type's wire-format name.
func (ft FrameType) String() string {
	if int(ft) < len(frameTypeStrings) && frameTypeStrings[ft] != "" {
		return frameTypeStrings[ft]
	}
	return "UNKNOWN_FRAME_TYPE"
}

// FrameFlags holds the flag octet of a frame header. Only the bits defined
// for the frame's type are meaningful; unrecognized bits are preserved by
// the codec but otherwise ignored, per RFC 7540 section 4.1.
type FrameFlags uint8

// Has reports whether all bits in flag are set.
func (f FrameFlags) Has(flag FrameFlags) bool {
	return f&flag == flag
}

// Add returns f with flag set.
func (f FrameFlags) Add(flag FrameFlags) FrameFlags {
	return f | flag
}

// Frame is implemented by every HTTP/2 frame payload type (Data, Headers,
// Priority, RstStream, Settings, PushPromise, Ping, GoAway, WindowUpdate,
// Continuation). A FrameHeader carries exactly one Frame as its body.
type Frame interface {
	// Type reports this frame's FrameType.
	Type() FrameType
	// Reset clears the frame so it can be reused from a pool.
	Reset()
	// Deserialize reads fr's 9-octet header and its already-buffered
	// payload into this frame's fields.
	Deserialize(fr *FrameHeader) error
	// Serialize writes this frame's fields into fr's payload buffer and
	// sets whatever flags its contents imply.
	Serialize(fr *FrameHeader)
}

var framePools = [FrameContinuation + 1]sync.Pool{
	FrameData:         {New: func() interface{} { return &Data{} }},
	FrameHeaders:      {New: func() interface{} { return &Headers{} }},
	FramePriority:     {New: func() interface{} { return &Priority{} }},
	FrameResetStream:  {New: func() interface{} { return &RstStream{} }},
	FrameSettings:     {New: func() interface{} { return &Settings{} }},
	FramePushPromise:  {New: func() interface{} { return &PushPromise{} }},
	FramePing:         {New: func() interface{} { return &Ping{} }},
	FrameGoAway:       {New: func() interface{} { return &GoAway{} }},
	FrameWindowUpdate: {New: func() interface{} { return &WindowUpdate{} }},
	FrameContinuation: {New: func() interface{} { return &Continuation{} }},
}

// AcquireFrame returns a pooled, reset Frame body for the given type.
// Callers that read kind off the wire must validate it against
// FrameContinuation first; AcquireFrame does not.
func AcquireFrame(kind FrameType) Frame {
	fr := framePools[kind].Get().(Frame)
	fr.Reset()
	return fr
}

// ReleaseFrame returns fr to its type's pool. A nil fr is a no-op, so
// ReleaseFrame(frh.Body()) is always safe to call.
func ReleaseFrame(fr Frame) {
	if fr == nil {
		return
	}
	framePools[fr.Type()].Put(fr)
}
