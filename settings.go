package http2

import (
	"sync"

	"github.com/domsolutions/http2/http2utils"
)

const FrameSettings FrameType = 0x4

var _ Frame = &Settings{}

// SettingID identifies one SETTINGS parameter.
//
// https://tools.ietf.org/html/rfc7540#section-6.5.2
type SettingID uint16

const (
	SettingHeaderTableSize      SettingID = 0x1
	SettingEnablePush           SettingID = 0x2
	SettingMaxConcurrentStreams SettingID = 0x3
	SettingInitialWindowSize    SettingID = 0x4
	SettingMaxFrameSize         SettingID = 0x5
	SettingMaxHeaderListSize    SettingID = 0x6
)

const (
	defaultHeaderTableSize   uint32 = 4096
	defaultConcurrentStreams uint32 = 100
	defaultWindowSize        uint32 = 1<<16 - 1
	defaultMaxFrameSize      uint32 = 1 << 14

	maxWindowSize = 1<<31 - 1
	maxFrameSize  = 1<<24 - 1
)

// settingKV is one decoded or pending-to-encode SETTINGS parameter. Order
// of appearance on the wire is preserved, unlike a map.
type settingKV struct {
	id    SettingID
	value uint32
}

// Settings is the FrameSettings payload: a list of protocol parameters the
// sender wants its peer to know about.
//
// The commonly used parameters are also mirrored into dedicated fields so
// callers juggling flow-control windows and stream limits don't have to go
// through the generic Get/Set pair on every hot path. Reading an unset
// dedicated field returns this package's default for that parameter, same
// as the RFC mandates for a peer that never sent it.
//
// https://tools.ietf.org/html/rfc7540#section-6.5
type Settings struct {
	ack    bool
	fields []settingKV

	headerTableSize   uint32
	push              bool
	pushSet           bool
	maxStreams        uint32
	maxWindow         uint32
	maxFrameSz        uint32
	maxHeaderListSize uint32
}

var settingsPool = sync.Pool{
	New: func() interface{} {
		st := &Settings{}
		st.Reset()
		return st
	},
}

// AcquireSettings returns a Settings object from the pool, populated with
// this package's RFC 7540 section 6.5.2 defaults until overridden.
func AcquireSettings() *Settings {
	st := settingsPool.Get().(*Settings)
	return st
}

// ReleaseSettings resets st and returns it to the pool.
func ReleaseSettings(st *Settings) {
	st.Reset()
	settingsPool.Put(st)
}

func (st *Settings) Type() FrameType {
	return FrameSettings
}

func (st *Settings) Reset() {
	st.ack = false
	st.fields = st.fields[:0]

	st.headerTableSize = defaultHeaderTableSize
	st.push = false
	st.pushSet = false
	st.maxStreams = defaultConcurrentStreams
	st.maxWindow = defaultWindowSize
	st.maxFrameSz = defaultMaxFrameSize
	st.maxHeaderListSize = 0
}

// CopyTo copies st's parameters into other.
func (st *Settings) CopyTo(other *Settings) {
	other.ack = st.ack
	other.fields = append(other.fields[:0], st.fields...)
	other.headerTableSize = st.headerTableSize
	other.push = st.push
	other.pushSet = st.pushSet
	other.maxStreams = st.maxStreams
	other.maxWindow = st.maxWindow
	other.maxFrameSz = st.maxFrameSz
	other.maxHeaderListSize = st.maxHeaderListSize
}

// IsAck reports whether this is a SETTINGS acknowledgement, which always
// carries an empty payload.
func (st *Settings) IsAck() bool {
	return st.ack
}

// SetAck marks this frame as a SETTINGS acknowledgement.
func (st *Settings) SetAck(ack bool) {
	st.ack = ack
}

func (st *Settings) set(id SettingID, value uint32) {
	for i := range st.fields {
		if st.fields[i].id == id {
			st.fields[i].value = value
			goto mirror
		}
	}
	st.fields = append(st.fields, settingKV{id: id, value: value})

mirror:
	switch id {
	case SettingHeaderTableSize:
		st.headerTableSize = value
	case SettingEnablePush:
		st.push = value != 0
		st.pushSet = true
	case SettingMaxConcurrentStreams:
		st.maxStreams = value
	case SettingInitialWindowSize:
		st.maxWindow = value
	case SettingMaxFrameSize:
		st.maxFrameSz = value
	case SettingMaxHeaderListSize:
		st.maxHeaderListSize = value
	}
}

// Get looks up a parameter by id, reporting whether it was explicitly set
// (either decoded off the wire or through a Set* call).
func (st *Settings) Get(id SettingID) (uint32, bool) {
	for _, kv := range st.fields {
		if kv.id == id {
			return kv.value, true
		}
	}
	return 0, false
}

// HeaderTableSize returns SETTINGS_HEADER_TABLE_SIZE, or its default.
func (st *Settings) HeaderTableSize() uint32 {
	return st.headerTableSize
}

func (st *Settings) SetHeaderTableSize(v uint32) { st.set(SettingHeaderTableSize, v) }

// MaxConcurrentStreams returns SETTINGS_MAX_CONCURRENT_STREAMS, or its default.
func (st *Settings) MaxConcurrentStreams() uint32 {
	return st.maxStreams
}

func (st *Settings) SetMaxConcurrentStreams(v uint32) { st.set(SettingMaxConcurrentStreams, v) }

// MaxWindowSize returns SETTINGS_INITIAL_WINDOW_SIZE, or its default.
func (st *Settings) MaxWindowSize() uint32 {
	return st.maxWindow
}

func (st *Settings) SetMaxWindowSize(v uint32) { st.set(SettingInitialWindowSize, v) }

// MaxFrameSize returns SETTINGS_MAX_FRAME_SIZE, or its default.
func (st *Settings) MaxFrameSize() uint32 {
	return st.maxFrameSz
}

func (st *Settings) SetMaxFrameSize(v uint32) { st.set(SettingMaxFrameSize, v) }

// MaxHeaderListSize returns SETTINGS_MAX_HEADER_LIST_SIZE. Zero means
// unbounded, matching RFC 7540 section 6.5.2's "unlimited" default.
func (st *Settings) MaxHeaderListSize() uint32 {
	return st.maxHeaderListSize
}

func (st *Settings) SetMaxHeaderListSize(v uint32) { st.set(SettingMaxHeaderListSize, v) }

// Push reports SETTINGS_ENABLE_PUSH, defaulting to true (the RFC 7540
// section 6.5.2 default) until explicitly set.
func (st *Settings) Push() bool {
	if !st.pushSet {
		return true
	}
	return st.push
}

// SetPush sets SETTINGS_ENABLE_PUSH. A client MUST NOT ever set this to
// true, per RFC 7540 section 8.2; this codec does not enforce that, it
// just offers the knob.
func (st *Settings) SetPush(enable bool) {
	v := uint32(0)
	if enable {
		v = 1
	}
	st.set(SettingEnablePush, v)
}

func (st *Settings) Deserialize(fr *FrameHeader) error {
	st.ack = fr.Flags().Has(FlagAck)
	if st.ack {
		return nil
	}

	payload := fr.payload
	if len(payload)%6 != 0 {
		return ErrMissingBytes
	}

	for i := 0; i+6 <= len(payload); i += 6 {
		id := SettingID(uint16(payload[i])<<8 | uint16(payload[i+1]))
		value := http2utils.BytesToUint32(payload[i+2 : i+6])
		st.set(id, value)
	}

	return nil
}

func (st *Settings) Serialize(fr *FrameHeader) {
	if st.ack {
		fr.SetFlags(fr.Flags().Add(FlagAck))
		fr.payload = fr.payload[:0]
		return
	}

	fr.payload = fr.payload[:0]
	for _, kv := range st.fields {
		fr.payload = append(fr.payload, byte(kv.id>>8), byte(kv.id))
		fr.payload = http2utils.AppendUint32Bytes(fr.payload, kv.value)
	}
}
