package http2

import (
	"crypto/tls"
	"errors"
	"net"
	"sync"
	"time"

	"github.com/valyala/fasthttp"
)

var (
	// ErrServerSupport indicates whether the server supports HTTP/2 or not.
	ErrServerSupport = errors.New("server doesn't support HTTP/2")
)

type ClientOpts struct {
	// OnRTT is assigned to every client after creation, and the handler
	// will be called after every RTT measurement (after receiving a PONG mesage).
	OnRTT func(time.Duration)
}

func configureDialer(d *Dialer) {
	if d.TLSConfig == nil {
		d.TLSConfig = &tls.Config{
			MinVersion: tls.VersionTLS12,
			MaxVersion: tls.VersionTLS13,
		}
	}

	tlsConfig := d.TLSConfig

	emptyServerName := len(tlsConfig.ServerName) == 0
	if emptyServerName {
		host, _, err := net.SplitHostPort(d.Addr)
		if err != nil {
			host = d.Addr
		}

		tlsConfig.ServerName = host
	}

	tlsConfig.NextProtos = append(tlsConfig.NextProtos, "h2")
}

// clientConn multiplexes a fasthttp.HostClient's requests over a small
// pool of HTTP/2 connections to the same origin, opening a new one only
// once every existing connection has hit its peer's
// SETTINGS_MAX_CONCURRENT_STREAMS.
type clientConn struct {
	d     *Dialer
	opts  ConnOpts
	onRTT func(time.Duration)

	mu    sync.Mutex
	conns []*Conn
}

func createClient(d *Dialer) *clientConn {
	return &clientConn{d: d}
}

func (cl *clientConn) pick() (*Conn, error) {
	cl.mu.Lock()
	defer cl.mu.Unlock()

	for i := 0; i < len(cl.conns); i++ {
		c := cl.conns[i]
		if c.Closed() {
			cl.conns = append(cl.conns[:i], cl.conns[i+1:]...)
			i--
			continue
		}
		if c.CanOpenStream() {
			return c, nil
		}
	}

	opts := cl.opts
	onRTT := cl.onRTT
	opts.OnDisconnect = func(c *Conn) {
		cl.mu.Lock()
		for i, cc := range cl.conns {
			if cc == c {
				cl.conns = append(cl.conns[:i], cl.conns[i+1:]...)
				break
			}
		}
		cl.mu.Unlock()
	}

	c, err := cl.d.Dial(opts)
	if err != nil {
		return nil, err
	}

	if onRTT != nil {
		c.onRTT = onRTT
	}

	cl.conns = append(cl.conns, c)

	return c, nil
}

// Do implements fasthttp.HostClient's Transport signature.
func (cl *clientConn) Do(req *fasthttp.Request, res *fasthttp.Response) error {
	c, err := cl.pick()
	if err != nil {
		return err
	}

	return c.Do(req, res)
}

// ConfigureClient configures the fasthttp.HostClient to run over HTTP/2.
func ConfigureClient(c *fasthttp.HostClient, opts ClientOpts) error {
	emptyServerName := c.TLSConfig != nil && len(c.TLSConfig.ServerName) == 0

	d := &Dialer{
		Addr:      c.Addr,
		TLSConfig: c.TLSConfig,
	}

	c2, err := d.Dial(ConnOpts{})
	if err != nil {
		if err == ErrServerSupport && c.TLSConfig != nil { // remove added config settings
			for i := range c.TLSConfig.NextProtos {
				if c.TLSConfig.NextProtos[i] == "h2" {
					c.TLSConfig.NextProtos = append(c.TLSConfig.NextProtos[:i], c.TLSConfig.NextProtos[i+1:]...)
				}
			}

			if emptyServerName {
				c.TLSConfig.ServerName = ""
			}
		}

		return err
	}
	defer c2.Close()

	c.IsTLS = true
	c.TLSConfig = d.TLSConfig

	cl := createClient(d)
	cl.onRTT = opts.OnRTT

	c.Transport = cl.Do

	return nil
}

var ErrNotAvailableStreams = errors.New("ran out of available streams")
