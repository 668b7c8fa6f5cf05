package http2

import (
	"bufio"
	"bytes"
	"crypto/tls"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"net"
	"os"
	"strconv"
	"sync"
	"sync/atomic"
	"time"

	"github.com/valyala/fasthttp"
)

// DefaultPingInterval is used when ConnOpts.PingInterval is left at zero.
const DefaultPingInterval = 15 * time.Second

// maxConcurrentStreamsLimit bounds what this client will accept from a
// peer's SETTINGS_MAX_CONCURRENT_STREAMS; above it the value is treated
// as a protocol violation rather than silently honored.
const maxConcurrentStreamsLimit = 1000

// ConnOpts defines the connection options.
type ConnOpts struct {
	// PingInterval defines the interval in which the client will ping the server.
	//
	// An interval of 0 will make the library to use DefaultPingInterval. Because ping intervals can't be disabled
	PingInterval time.Duration
	// DisablePingChecking ...
	DisablePingChecking bool
	// OnDisconnect is a callback that fires when the Conn disconnects.
	OnDisconnect func(c *Conn)
}

// Handshake performs an HTTP/2 handshake. That means, it will send
// the preface if `preface` is true, send a settings frame and a
// window update frame (for the connection's window).
func Handshake(preface bool, bw *bufio.Writer, st *Settings, maxWin int32) error {
	if preface {
		err := WritePreface(bw)
		if err != nil {
			return err
		}
	}

	fr := AcquireFrameHeader()
	defer ReleaseFrameHeader(fr)

	// write the settings
	st2 := &Settings{}
	st.CopyTo(st2)

	fr.SetBody(st2)

	_, err := fr.WriteTo(bw)
	if err == nil {
		// then send a window update
		fr = AcquireFrameHeader()
		wu := AcquireFrame(FrameWindowUpdate).(*WindowUpdate)
		wu.SetIncrement(int(maxWin))

		fr.SetBody(wu)

		_, err = fr.WriteTo(bw)
		if err == nil {
			err = bw.Flush()
		}
	}

	return err
}

// Conn represents a raw HTTP/2 connection over TLS + TCP.
type Conn struct {
	c net.Conn

	br *bufio.Reader
	bw *bufio.Writer

	enc *HPACK
	dec *HPACK

	nextID uint32

	// sendWindow is the connection-level number of bytes this endpoint
	// may still send to the peer as DATA payload.
	sendWindow int32

	maxWindow     int32
	currentWindow int32

	openStreams int32

	current Settings
	serverS Settings

	streamsMu sync.Mutex
	streams   Streams

	// suspended holds stream ids whose request body is waiting on the
	// connection or stream send window to reopen. Only touched while
	// holding suspendMu, and only ever drained by the writer goroutine.
	suspendMu sync.Mutex
	suspended []uint32
	resume    chan struct{}

	settingsPending int32

	goAway       int32
	goAwayLastID uint32

	in  chan *Ctx
	out chan *FrameHeader

	pingInterval time.Duration

	unacks      int
	disableAcks bool

	lastErr      error
	onDisconnect func(*Conn)
	onRTT        func(time.Duration)

	closed uint64
}

// NewConn returns a new HTTP/2 connection.
// To start using the connection you need to call Handshake.
func NewConn(c net.Conn, opts ConnOpts) *Conn {
	nc := &Conn{
		c:             c,
		br:            bufio.NewReaderSize(c, 4096),
		bw:            bufio.NewWriterSize(c, maxFrameSize),
		enc:           AcquireHPACK(),
		dec:           AcquireHPACK(),
		nextID:        1,
		maxWindow:     1 << 20,
		currentWindow: 1 << 20,
		resume:        make(chan struct{}, 1),
		in:            make(chan *Ctx, 128),
		out:           make(chan *FrameHeader, 128),
		pingInterval:  opts.PingInterval,
		disableAcks:   opts.DisablePingChecking,
		onDisconnect:  opts.OnDisconnect,
	}

	nc.current.SetMaxWindowSize(1 << 20)
	nc.current.SetPush(false)

	return nc
}

// Dialer allows to create HTTP/2 connections by specifying an address and tls configuration.
type Dialer struct {
	// Addr is the server's address in the form: `host:port`.
	Addr string

	// TLSConfig is the tls configuration.
	//
	// If TLSConfig is nil, a default one will be defined on the Dial call.
	TLSConfig *tls.Config

	// PingInterval defines the interval in which the client will ping the server.
	//
	// An interval of 0 will make the library to use DefaultPingInterval. Because ping intervals can't be disabled.
	PingInterval time.Duration
}

func (d *Dialer) tryDial() (net.Conn, error) {
	if d.TLSConfig == nil || !func() bool {
		for _, proto := range d.TLSConfig.NextProtos {
			if proto == "h2" {
				return true
			}
		}

		return false
	}() {
		configureDialer(d)
	}

	tcpAddr, err := net.ResolveTCPAddr("tcp", d.Addr)
	if err != nil {
		return nil, err
	}

	c, err := net.DialTCP("tcp", nil, tcpAddr)
	if err != nil {
		return nil, err
	}

	tlsConn := tls.Client(c, d.TLSConfig)

	if err := tlsConn.Handshake(); err != nil {
		_ = c.Close()
		return nil, err
	}

	if tlsConn.ConnectionState().NegotiatedProtocol != "h2" {
		_ = c.Close()
		return nil, ErrServerSupport
	}

	return tlsConn, nil
}

// Dial creates an HTTP/2 connection or returns an error.
//
// An expected error is ErrServerSupport.
func (d *Dialer) Dial(opts ConnOpts) (*Conn, error) {
	c, err := d.tryDial()
	if err != nil {
		return nil, err
	}

	if opts.PingInterval == 0 {
		opts.PingInterval = d.PingInterval
	}

	nc := NewConn(c, opts)

	err = nc.Handshake()
	return nc, err
}

// SetOnDisconnect sets the callback that will fire when the HTTP/2 connection is closed.
func (c *Conn) SetOnDisconnect(cb func(*Conn)) {
	c.onDisconnect = cb
}

// LastErr returns the last registered error in case the connection was closed by the server.
func (c *Conn) LastErr() error {
	return c.lastErr
}

// Handshake will perform the necessary handshake to establish the connection
// with the server. If an error is returned you can assume the TCP connection has been closed.
func (c *Conn) Handshake() error {
	var err error

	if err = Handshake(true, c.bw, &c.current, c.maxWindow-65535); err != nil {
		_ = c.c.Close()
		return err
	}

	atomic.StoreInt32(&c.settingsPending, 1)

	fr, err := ReadFrameFrom(c.br)
	if err == nil && fr.Type() != FrameSettings {
		_ = c.c.Close()
		return fmt.Errorf("unexpected frame, expected settings, got %s", fr.Type())
	}

	if err == nil {
		st := fr.Body().(*Settings)
		if !st.IsAck() {
			err = c.handleSettings(st)
		}

		ReleaseFrameHeader(fr)
	}

	if err != nil {
		_ = c.Close()
		return err
	}

	go c.writeLoop()
	go c.readLoop()

	return nil
}

// CanOpenStream returns whether the client will be able to open a new stream or not.
func (c *Conn) CanOpenStream() bool {
	return atomic.LoadInt32(&c.openStreams) < int32(c.serverS.maxStreams)
}

// isGoAway reports whether a GOAWAY has been received; once true no new
// streams may be opened on this connection.
func (c *Conn) isGoAway() bool {
	return atomic.LoadInt32(&c.goAway) == 1
}

// Closed indicates whether the connection is closed or not.
func (c *Conn) Closed() bool {
	return atomic.LoadUint64(&c.closed) == 1
}

// Close closes the connection gracefully, sending a GoAway message
// and then closing the underlying TCP connection.
func (c *Conn) Close() error {
	code := NoError
	var pe *ProtoError
	if errors.As(c.lastErr, &pe) {
		code = pe.Code
	}

	return c.closeWithCode(code)
}

func (c *Conn) closeWithCode(code ErrorCode) error {
	if !atomic.CompareAndSwapUint64(&c.closed, 0, 1) {
		return io.EOF
	}

	close(c.in)

	fr := AcquireFrameHeader()
	defer ReleaseFrameHeader(fr)

	ga := AcquireFrame(FrameGoAway).(*GoAway)
	ga.SetStream(0)
	ga.SetCode(code)

	fr.SetBody(ga)

	_, err := fr.WriteTo(c.bw)
	if err == nil {
		err = c.bw.Flush()
	}

	_ = c.c.Close()

	if c.onDisconnect != nil {
		c.onDisconnect(c)
	}

	return err
}

// Write queues the request to be sent to the server.
//
// Check if `c` has been previously closed before accessing this function.
func (c *Conn) Write(r *Ctx) {
	c.in <- r
}

// Do sends req over the connection and blocks until res has been fully
// populated or the stream fails.
func (c *Conn) Do(req *fasthttp.Request, res *fasthttp.Response) error {
	r := NewCtx(req, res)
	c.Write(r)
	return <-r.Err
}

type WriteError struct {
	err error
}

func (we WriteError) Error() string {
	return fmt.Sprintf("writing error: %s", we.err)
}

func (we WriteError) Unwrap() error {
	return we.err
}

func (we WriteError) Is(target error) bool {
	return errors.Is(we.err, target)
}

func (we WriteError) As(target interface{}) bool {
	return errors.As(we.err, target)
}

func (c *Conn) writeLoop() {
	defer func() { _ = c.Close() }()

	if c.pingInterval <= 0 {
		c.pingInterval = DefaultPingInterval
	}

	ticker := time.NewTicker(c.pingInterval)
	defer ticker.Stop()

	var lastErr error

loop:
	for {
		select {
		case r, ok := <-c.in: // sending requests
			if !ok {
				break loop
			}

			if _, err := c.writeRequest(r); err != nil {
				r.Err <- err

				if errors.Is(err, ErrNotAvailableStreams) || errors.Is(err, ErrGoAway) {
					continue
				}

				lastErr = WriteError{err}

				break loop
			}
		case fr := <-c.out: // generic output
			if _, err := fr.WriteTo(c.bw); err == nil {
				if err = c.bw.Flush(); err != nil {
					lastErr = WriteError{err}
					break loop
				}
			} else {
				lastErr = WriteError{err}
				break loop
			}

			ReleaseFrameHeader(fr)
		case <-c.resume: // a suspended stream's window reopened
			c.flushSuspended()
		case <-ticker.C: // ping
			if err := c.writePing(); err != nil {
				lastErr = WriteError{err}
				break loop
			}
		}

		if !c.disableAcks && c.unacks >= 3 {
			lastErr = ErrTimeout
			break loop
		}
	}

	if lastErr == nil {
		lastErr = io.EOF
	}

	// send eofs to pending requests
	c.streamsMu.Lock()
	pending := make([]*Stream, 0, len(c.streams.list))
	pending = append(pending, c.streams.list...)
	c.streams.list = nil
	c.streamsMu.Unlock()

	for _, s := range pending {
		r := s.Data().(*Ctx)
		r.Err <- lastErr
		close(r.Err)
	}
}

func (c *Conn) getStream(id uint32) *Stream {
	c.streamsMu.Lock()
	s := c.streams.Get(id)
	c.streamsMu.Unlock()
	return s
}

func (c *Conn) delStream(id uint32) *Stream {
	c.streamsMu.Lock()
	s := c.streams.Del(id)
	c.streamsMu.Unlock()
	return s
}

func (c *Conn) finish(r *Ctx, stream uint32, err error) {
	atomic.AddInt32(&c.openStreams, -1)
	c.delStream(stream)

	r.Err <- err

	close(r.Err)
}

func (c *Conn) readLoop() {
	defer func() { _ = c.Close() }()

	for {
		fr, err := c.readNext()
		if err != nil {
			c.lastErr = err
			break
		}

		strm := c.getStream(fr.Stream())
		if strm != nil {
			r := strm.Data().(*Ctx)

			err := c.readStream(fr, strm, r.Response)
			if err == nil {
				if fr.Flags().Has(FlagEndStream) {
					strm.EndStreamRecv()
					if strm.IsClosed() {
						c.finish(r, fr.Stream(), nil)
					}
				}
			} else {
				c.finish(r, fr.Stream(), err)

				fmt.Fprintf(os.Stderr, "%s. payload=%v\n", err, fr.payload)

				if errors.Is(err, NewError(FlowControlError, "")) {
					break
				}
			}
		}

		ReleaseFrameHeader(fr)
	}
}

// writeRequest builds and sends the HEADERS (and, if present, the
// window-bounded DATA) for r's request, registering a Stream for it.
func (c *Conn) writeRequest(r *Ctx) (uint32, error) {
	if c.isGoAway() {
		return 0, ErrGoAway
	}

	if !c.CanOpenStream() {
		return 0, ErrNotAvailableStreams
	}

	req := r.Request
	hasBody := len(req.Body()) != 0

	enc := c.enc

	id := c.nextID
	c.nextID += 2

	fr := AcquireFrameHeader()
	defer ReleaseFrameHeader(fr)

	fr.SetStream(id)

	h := AcquireFrame(FrameHeaders).(*Headers)
	fr.SetBody(h)

	hf := AcquireHeaderField()
	defer ReleaseHeaderField(hf)

	headerListLimit := c.serverS.MaxHeaderListSize()
	headerListSize := uint32(0)
	var headerErr error

	appendField := func(store bool) {
		if headerErr != nil {
			return
		}

		if headerListLimit != 0 {
			headerListSize += uint32(hf.Size())
			if headerListSize > headerListLimit {
				headerErr = ErrHeaderListTooLarge
				return
			}
		}

		h.AppendHeaderField(enc, hf, store)
	}

	hf.SetBytes(StringAuthority, req.URI().Host())
	appendField(true)

	hf.SetBytes(StringMethod, req.Header.Method())
	appendField(true)

	hf.SetBytes(StringPath, req.URI().RequestURI())
	appendField(true)

	hf.SetBytes(StringScheme, req.URI().Scheme())
	appendField(true)

	hf.SetBytes(StringUserAgent, req.Header.UserAgent())
	appendField(true)

	req.Header.VisitAll(func(k, v []byte) {
		if bytes.EqualFold(k, StringUserAgent) {
			return
		}

		hf.SetBytes(ToLower(k), v)
		appendField(false)
	})

	if headerErr != nil {
		return 0, headerErr
	}

	h.SetPadding(false)
	h.SetEndStream(!hasBody)
	h.SetEndHeaders(true)

	strm := NewStream(id, int32(c.serverS.MaxWindowSize()), r)
	strm.SetState(StateOpen)
	if !hasBody {
		strm.EndStreamSent()
	}

	c.streamsMu.Lock()
	c.streams.Insert(strm)
	c.streamsMu.Unlock()

	_, err := fr.WriteTo(c.bw)
	if err == nil {
		if hasBody {
			// release headers bc it's going to get replaced by the data frame
			ReleaseFrame(h)

			err = c.sendBody(id, req.Body())
		} else {
			err = c.bw.Flush()
		}
	}

	if err == nil {
		atomic.AddInt32(&c.openStreams, 1)
	} else {
		c.lastErr = err
		c.delStream(id)
	}

	return id, err
}

// sendBody emits body as DATA frames for stream id, never sending more
// than min(connection send window, stream send window, negotiated max
// frame size) at a time. When the window is exhausted before body is
// fully sent, the remainder is parked on the Stream and the stream id
// is queued for c.flushSuspended to retry once a WINDOW_UPDATE arrives.
func (c *Conn) sendBody(id uint32, body []byte) error {
	for len(body) > 0 {
		strm := c.getStream(id)
		if strm == nil {
			return nil
		}

		connWin := atomic.LoadInt32(&c.sendWindow)
		streamWin := strm.Window()

		avail := connWin
		if streamWin < avail {
			avail = streamWin
		}

		if avail <= 0 {
			c.suspend(id, body)
			return c.bw.Flush()
		}

		step := int(avail)
		if step > len(body) {
			step = len(body)
		}
		if max := int(c.serverS.MaxFrameSize()); max > 0 && step > max {
			step = max
		}

		end := step == len(body)

		fr := AcquireFrameHeader()
		fr.SetStream(id)

		data := AcquireFrame(FrameData).(*Data)
		data.SetEndStream(end)
		data.SetPadding(false)
		data.SetData(body[:step])
		fr.SetBody(data)

		_, err := fr.WriteTo(c.bw)
		ReleaseFrameHeader(fr)
		if err != nil {
			return err
		}

		atomic.AddInt32(&c.sendWindow, -int32(step))
		strm.IncrWindow(-int32(step))

		body = body[step:]

		if end {
			strm.EndStreamSent()
		}
	}

	return c.bw.Flush()
}

// suspend parks body on stream id's Stream until a WINDOW_UPDATE
// reopens enough window for c.flushSuspended to resume it.
func (c *Conn) suspend(id uint32, body []byte) {
	strm := c.getStream(id)
	if strm == nil {
		return
	}

	strm.SetPending(append([]byte(nil), body...))

	c.suspendMu.Lock()
	c.suspended = append(c.suspended, id)
	c.suspendMu.Unlock()
}

// flushSuspended retries every stream parked by sendBody, in the order
// they were suspended. Streams that still can't make progress are
// re-suspended by sendBody itself.
func (c *Conn) flushSuspended() {
	c.suspendMu.Lock()
	ids := c.suspended
	c.suspended = nil
	c.suspendMu.Unlock()

	for _, id := range ids {
		strm := c.getStream(id)
		if strm == nil {
			continue
		}

		body := strm.Pending()
		strm.SetPending(nil)

		if len(body) == 0 {
			continue
		}

		if err := c.sendBody(id, body); err != nil {
			r := strm.Data().(*Ctx)
			c.finish(r, id, WriteError{err})
		}
	}
}

// wakeSuspended asks the writer goroutine to re-check the suspended
// queue. Safe to call from the reader goroutine; coalesces multiple
// signals into a single wakeup.
func (c *Conn) wakeSuspended() {
	select {
	case c.resume <- struct{}{}:
	default:
	}
}

func (c *Conn) readNext() (fr *FrameHeader, err error) {
	for err == nil {
		fr, err = ReadFrameFrom(c.br)
		if err != nil {
			break
		}

		if fr.Stream() != 0 {
			break
		}

		switch fr.Type() {
		case FrameSettings:
			st := fr.Body().(*Settings)
			if st.IsAck() {
				if !atomic.CompareAndSwapInt32(&c.settingsPending, 1, 0) {
					err = NewError(ProtocolError, "unexpected SETTINGS ack")
				}
			} else if verr := c.handleSettings(st); verr != nil {
				err = verr
			}
		case FrameWindowUpdate:
			win := int32(fr.Body().(*WindowUpdate).Increment())

			atomic.AddInt32(&c.sendWindow, win)
			c.wakeSuspended()
		case FramePing:
			ping := fr.Body().(*Ping)
			if !ping.IsAck() {
				c.handlePing(ping)
			} else {
				c.unacks--

				if c.onRTT != nil {
					sentAt := int64(binary.BigEndian.Uint64(ping.Data()))
					c.onRTT(time.Since(time.Unix(0, sentAt)))
				}
			}
		case FrameGoAway:
			c.handleGoAway(fr.Body().(*GoAway))
		}

		ReleaseFrameHeader(fr)
	}

	return
}

// handleGoAway tears down every stream the peer says it will not
// process (id > the GOAWAY's last stream id) and blocks new streams
// from being opened. Streams at or below the last stream id are left
// alone to run to completion, per RFC 7540 section 6.8.
func (c *Conn) handleGoAway(ga *GoAway) {
	lastID := ga.Stream()
	code := ga.Code()

	atomic.StoreUint32(&c.goAwayLastID, lastID)
	atomic.StoreInt32(&c.goAway, 1)

	finishErr := error(NewError(code, "connection is going away"))
	if code == NoError {
		finishErr = ContentReSendError
	}

	c.streamsMu.Lock()
	var affected []*Stream
	for _, s := range c.streams.list {
		if s.ID() > lastID {
			affected = append(affected, s)
		}
	}
	for _, s := range affected {
		c.streams.Del(s.ID())
	}
	c.streamsMu.Unlock()

	for _, s := range affected {
		atomic.AddInt32(&c.openStreams, -1)

		r := s.Data().(*Ctx)
		r.Err <- finishErr
		close(r.Err)
	}
}

var ErrTimeout = errors.New("server is not replying to pings")

func (c *Conn) writePing() error {
	fr := AcquireFrameHeader()
	defer ReleaseFrameHeader(fr)

	ping := AcquireFrame(FramePing).(*Ping)
	ping.SetCurrentTime()

	fr.SetBody(ping)

	_, err := fr.WriteTo(c.bw)
	if err == nil {
		err = c.bw.Flush()
		if err == nil {
			c.unacks++
		}
	}

	return err
}

// handleSettings validates an inbound SETTINGS frame against the limits
// RFC 7540 section 6.5.2 places on this client, applies it, and queues
// the acknowledgement. A validation failure is returned as the
// connection error the caller should close with.
func (c *Conn) handleSettings(st *Settings) error {
	if v, ok := st.Get(SettingMaxFrameSize); ok {
		if v < defaultMaxFrameSize || v > maxFrameSize {
			return NewError(ProtocolError, "invalid SETTINGS_MAX_FRAME_SIZE")
		}
	}

	var windowDelta int32
	if v, ok := st.Get(SettingInitialWindowSize); ok {
		if v > maxWindowSize {
			return NewError(FlowControlError, "invalid SETTINGS_INITIAL_WINDOW_SIZE")
		}

		windowDelta = int32(v) - int32(c.serverS.MaxWindowSize())
	}

	if v, ok := st.Get(SettingMaxConcurrentStreams); ok {
		if v > maxConcurrentStreamsLimit {
			return NewError(ProtocolError, "invalid SETTINGS_MAX_CONCURRENT_STREAMS")
		}
	}

	st.CopyTo(&c.serverS)

	if st.HeaderTableSize() <= defaultHeaderTableSize {
		c.enc.SetMaxTableSize(int(st.HeaderTableSize()))
	}

	if windowDelta != 0 {
		c.streamsMu.Lock()
		c.streams.Each(func(s *Stream) {
			s.IncrWindow(windowDelta)
		})
		c.streamsMu.Unlock()

		c.wakeSuspended()
	}

	// reply back
	fr := AcquireFrameHeader()

	stRes := AcquireFrame(FrameSettings).(*Settings)
	stRes.SetAck(true)

	fr.SetBody(stRes)

	c.out <- fr

	return nil
}

func (c *Conn) handlePing(ping *Ping) {
	// reply back
	fr := AcquireFrameHeader()

	ping.SetAck(true)

	fr.SetBody(ping)

	c.out <- fr
}

func (c *Conn) readStream(fr *FrameHeader, strm *Stream, res *fasthttp.Response) (err error) {
	switch fr.Type() {
	case FrameHeaders, FrameContinuation:
		h := fr.Body().(FrameWithHeaders)
		err = c.readHeader(h.Headers(), res)
	case FrameData:
		c.currentWindow -= int32(fr.Len())
		currentWin := c.currentWindow

		data := fr.Body().(*Data)
		if data.Len() != 0 {
			res.AppendBody(data.Data())

			// let's send the window update
			c.updateWindow(fr.Stream(), fr.Len())
		}

		if currentWin < c.maxWindow/2 {
			nValue := c.maxWindow - currentWin

			c.currentWindow = c.maxWindow

			c.updateWindow(0, int(nValue))
		}
	case FrameWindowUpdate:
		wu := fr.Body().(*WindowUpdate)
		strm.IncrWindow(int32(wu.Increment()))
		c.wakeSuspended()
	case FrameResetStream:
		rst := fr.Body().(*RstStream)
		err = NewError(rst.Code(), "stream reset by peer")
	case FramePushPromise:
		c.refusePush(fr.Body().(*PushPromise))
	}

	return
}

// refusePush runs pp's header block through the shared HPACK decoder
// (so the dynamic table stays in sync with the peer) without acting on
// it, then rejects the promised stream: this client always advertises
// SETTINGS_ENABLE_PUSH=0, so any PUSH_PROMISE is refused outright, and
// a header block violating RFC 7541 section 8.1.2.3 (e.g. a duplicate
// pseudo-header) is refused with PROTOCOL_ERROR instead of REFUSED_STREAM.
//
// https://tools.ietf.org/html/rfc7540#section-6.6
func (c *Conn) refusePush(pp *PushPromise) {
	code := RefusedStreamError
	if c.pushHeadersMalformed(pp.Headers()) {
		code = ProtocolError
	}

	fr := AcquireFrameHeader()
	fr.SetStream(pp.PromisedStream())

	rst := AcquireFrame(FrameResetStream).(*RstStream)
	rst.SetCode(code)

	fr.SetBody(rst)

	c.out <- fr
}

func (c *Conn) pushHeadersMalformed(b []byte) bool {
	hf := AcquireHeaderField()
	defer ReleaseHeaderField(hf)

	seen := make(map[string]bool)
	malformed := false

	for len(b) > 0 {
		var err error
		b, err = c.dec.Next(hf, b)
		if err != nil {
			return true
		}

		if hf.IsPseudo() {
			k := hf.Key()
			if seen[k] {
				malformed = true
			}
			seen[k] = true
		}
	}

	return malformed
}

func (c *Conn) updateWindow(streamID uint32, size int) {
	fr := AcquireFrameHeader()

	fr.SetStream(streamID)

	wu := AcquireFrame(FrameWindowUpdate).(*WindowUpdate)
	wu.SetIncrement(size)

	fr.SetBody(wu)

	c.out <- fr
}

func (c *Conn) readHeader(b []byte, res *fasthttp.Response) error {
	var err error
	hf := AcquireHeaderField()
	defer ReleaseHeaderField(hf)

	dec := c.dec

	for len(b) > 0 {
		b, err = dec.Next(hf, b)
		if err != nil {
			return err
		}

		if hf.IsPseudo() {
			if hf.KeyBytes()[1] == 's' { // status
				n, err := strconv.ParseInt(hf.Value(), 10, 64)
				if err != nil {
					return err
				}

				res.SetStatusCode(int(n))
				continue
			}
		}

		if bytes.Equal(hf.KeyBytes(), StringContentLength) {
			n, _ := strconv.Atoi(hf.Value())
			res.Header.SetContentLength(n)
		} else {
			res.Header.AddBytesKV(hf.KeyBytes(), hf.ValueBytes())
		}
	}

	return nil
}
