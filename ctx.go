package http2

import (
	"github.com/valyala/fasthttp"
)

// Ctx is one request queued onto a Conn's write loop. The caller fills
// Request, gives Err a buffer of 1, and blocks on it; Conn.readLoop
// replies either with nil once Response is fully populated or with the
// error that ended the stream.
type Ctx struct {
	Request  *fasthttp.Request
	Response *fasthttp.Response
	Err      chan error
}

// NewCtx wraps req/res into a Ctx ready to hand to Conn.Write.
func NewCtx(req *fasthttp.Request, res *fasthttp.Response) *Ctx {
	return &Ctx{
		Request:  req,
		Response: res,
		Err:      make(chan error, 1),
	}
}
