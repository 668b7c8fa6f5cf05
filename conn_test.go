package http2

import (
	"bufio"
	"bytes"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSendBodySuspendsThenResumesOnWindowUpdate(t *testing.T) {
	buf := &bytes.Buffer{}
	c := &Conn{bw: bufio.NewWriter(buf)}

	var st Settings
	st.Reset()
	c.serverS = st

	atomic.StoreInt32(&c.sendWindow, 5)

	strm := NewStream(1, 5, nil)
	strm.SetState(StateOpen)
	c.streams.Insert(strm)

	body := bytes.Repeat([]byte("a"), 10)
	require.NoError(t, c.sendBody(1, body))

	require.Equal(t, int32(0), atomic.LoadInt32(&c.sendWindow))
	require.Equal(t, int32(0), strm.Window())
	require.Equal(t, 5, len(strm.Pending()))
	require.Len(t, c.suspended, 1)
	require.Equal(t, StateOpen, strm.State())

	br := bufio.NewReader(buf)

	first, err := ReadFrameFrom(br)
	require.NoError(t, err)
	data := first.Body().(*Data)
	require.Equal(t, 5, data.Len())
	require.False(t, data.EndStream())

	// peer grants more window on both the connection and the stream
	atomic.AddInt32(&c.sendWindow, 5)
	strm.IncrWindow(5)
	c.flushSuspended()

	require.Empty(t, c.suspended)
	require.Empty(t, strm.Pending())

	second, err := ReadFrameFrom(br)
	require.NoError(t, err)
	data2 := second.Body().(*Data)
	require.Equal(t, 5, data2.Len())
	require.True(t, data2.EndStream())
	require.Equal(t, StateHalfClosedLocal, strm.State())
}

func TestSendBodyBoundedByConnectionWindowEvenWithRoomyStreamWindow(t *testing.T) {
	buf := &bytes.Buffer{}
	c := &Conn{bw: bufio.NewWriter(buf)}

	var st Settings
	st.Reset()
	c.serverS = st

	atomic.StoreInt32(&c.sendWindow, 3)

	strm := NewStream(1, 1<<20, nil)
	strm.SetState(StateOpen)
	c.streams.Insert(strm)

	require.NoError(t, c.sendBody(1, []byte("abcdef")))

	require.Equal(t, int32(0), atomic.LoadInt32(&c.sendWindow))
	require.Equal(t, int32(1<<20-3), strm.Window())
	require.Equal(t, 3, len(strm.Pending()))
}

func TestHandleGoAwayFinishesOnlyStreamsAboveLastStreamID(t *testing.T) {
	c := &Conn{}

	var keep, drop1, drop2 *Stream
	for _, s := range []*Stream{
		NewStream(1, 0, NewCtx(nil, nil)),
		NewStream(3, 0, NewCtx(nil, nil)),
		NewStream(5, 0, NewCtx(nil, nil)),
		NewStream(7, 0, NewCtx(nil, nil)),
	} {
		c.streams.Insert(s)
		switch s.ID() {
		case 3:
			keep = s
		case 5:
			drop1 = s
		case 7:
			drop2 = s
		}
	}

	ga := AcquireFrame(FrameGoAway).(*GoAway)
	ga.SetStream(3)
	ga.SetCode(NoError)

	c.handleGoAway(ga)

	require.NotNil(t, c.streams.Get(1))
	require.NotNil(t, c.streams.Get(3))
	require.Nil(t, c.streams.Get(5))
	require.Nil(t, c.streams.Get(7))

	select {
	case err := <-drop1.Data().(*Ctx).Err:
		require.ErrorIs(t, err, ContentReSendError)
	default:
		t.Fatal("stream 5 was not finished")
	}

	select {
	case err := <-drop2.Data().(*Ctx).Err:
		require.ErrorIs(t, err, ContentReSendError)
	default:
		t.Fatal("stream 7 was not finished")
	}

	select {
	case <-keep.Data().(*Ctx).Err:
		t.Fatal("stream 3 should still be running")
	default:
	}
}

func TestHandleGoAwayUsesMappedErrorCodeWhenNotNoError(t *testing.T) {
	c := &Conn{}

	s := NewStream(5, 0, NewCtx(nil, nil))
	c.streams.Insert(s)

	ga := AcquireFrame(FrameGoAway).(*GoAway)
	ga.SetStream(1)
	ga.SetCode(EnhanceYourCalm)

	c.handleGoAway(ga)

	err := <-s.Data().(*Ctx).Err
	var pe *ProtoError
	require.ErrorAs(t, err, &pe)
	require.Equal(t, EnhanceYourCalm, pe.Code)
}

func TestRefusePushRejectsDuplicatePseudoHeaderAsProtocolError(t *testing.T) {
	enc := AcquireHPACK()
	defer ReleaseHPACK(enc)

	hf := AcquireHeaderField()
	defer ReleaseHeaderField(hf)

	var raw []byte
	hf.SetBytes(StringMethod, []byte("GET"))
	raw = enc.AppendHeader(raw, hf, false)
	raw = enc.AppendHeader(raw, hf, false) // duplicate :method

	pp := &PushPromise{stream: 4}
	pp.SetHeader(raw)

	c := &Conn{dec: AcquireHPACK(), out: make(chan *FrameHeader, 1)}
	defer ReleaseHPACK(c.dec)

	c.refusePush(pp)

	fr := <-c.out
	require.Equal(t, uint32(4), fr.Stream())
	rst := fr.Body().(*RstStream)
	require.Equal(t, ProtocolError, rst.Code())
}

func TestRefusePushRejectsWellFormedPromiseAsRefusedStream(t *testing.T) {
	enc := AcquireHPACK()
	defer ReleaseHPACK(enc)

	hf := AcquireHeaderField()
	defer ReleaseHeaderField(hf)

	var raw []byte
	hf.SetBytes(StringMethod, []byte("GET"))
	raw = enc.AppendHeader(raw, hf, false)
	hf.SetBytes(StringPath, []byte("/style.css"))
	raw = enc.AppendHeader(raw, hf, false)

	pp := &PushPromise{stream: 6}
	pp.SetHeader(raw)

	c := &Conn{dec: AcquireHPACK(), out: make(chan *FrameHeader, 1)}
	defer ReleaseHPACK(c.dec)

	c.refusePush(pp)

	fr := <-c.out
	require.Equal(t, uint32(6), fr.Stream())
	rst := fr.Body().(*RstStream)
	require.Equal(t, RefusedStreamError, rst.Code())
}

func TestHandleSettingsRejectsOutOfRangeMaxFrameSize(t *testing.T) {
	c := &Conn{enc: AcquireHPACK(), out: make(chan *FrameHeader, 1)}
	defer ReleaseHPACK(c.enc)

	st := AcquireSettings()
	defer ReleaseSettings(st)
	st.SetMaxFrameSize(1 << 10) // below the 16384 floor

	err := c.handleSettings(st)
	var pe *ProtoError
	require.ErrorAs(t, err, &pe)
	require.Equal(t, ProtocolError, pe.Code)
}

func TestHandleSettingsRejectsOversizedInitialWindow(t *testing.T) {
	c := &Conn{enc: AcquireHPACK(), out: make(chan *FrameHeader, 1)}
	defer ReleaseHPACK(c.enc)

	st := AcquireSettings()
	defer ReleaseSettings(st)
	st.SetMaxWindowSize(1 << 31)

	err := c.handleSettings(st)
	var pe *ProtoError
	require.ErrorAs(t, err, &pe)
	require.Equal(t, FlowControlError, pe.Code)
}

func TestHandleSettingsAppliesWindowDeltaToActiveStreams(t *testing.T) {
	c := &Conn{enc: AcquireHPACK(), out: make(chan *FrameHeader, 1), resume: make(chan struct{}, 1)}
	defer ReleaseHPACK(c.enc)

	var base Settings
	base.Reset()
	c.serverS = base

	strm := NewStream(1, int32(defaultWindowSize), nil)
	c.streams.Insert(strm)

	st := AcquireSettings()
	defer ReleaseSettings(st)
	st.SetMaxWindowSize(defaultWindowSize + 1000)

	require.NoError(t, c.handleSettings(st))
	require.Equal(t, int32(defaultWindowSize)+1000, strm.Window())

	select {
	case <-c.resume:
	default:
		t.Fatal("expected a resume signal after a positive window delta")
	}

	ack := <-c.out
	require.True(t, ack.Body().(*Settings).IsAck())
}

func TestReadNextRejectsUnexpectedSettingsAck(t *testing.T) {
	buf := &bytes.Buffer{}
	bw := bufio.NewWriter(buf)

	ack := AcquireFrame(FrameSettings).(*Settings)
	ack.SetAck(true)

	fr := AcquireFrameHeader()
	fr.SetBody(ack)
	_, err := fr.WriteTo(bw)
	require.NoError(t, err)
	require.NoError(t, bw.Flush())
	ReleaseFrameHeader(fr)

	c := &Conn{br: bufio.NewReader(buf)}

	_, err = c.readNext()
	var pe *ProtoError
	require.ErrorAs(t, err, &pe)
	require.Equal(t, ProtocolError, pe.Code)
}
