package http2

import (
	"bufio"
	"io"
)

// http2Preface is the 24-octet sequence a client must send before any
// other HTTP/2 bytes, so a server that supports earlier protocols can
// distinguish an HTTP/2 connection from a misdirected HTTP/1.1 one.
//
// https://tools.ietf.org/html/rfc7540#section-3.5
var http2Preface = []byte("PRI * HTTP/2.0\r\n\r\nSM\r\n\r\n")

// WritePreface writes the connection preface to bw. It does not flush.
func WritePreface(bw *bufio.Writer) error {
	_, err := bw.Write(http2Preface)
	return err
}

// ReadPreface consumes the connection preface from br, returning
// ErrBadPreface if the bytes don't match exactly.
func ReadPreface(br *bufio.Reader) error {
	b := make([]byte, len(http2Preface))

	if _, err := io.ReadFull(br, b); err != nil {
		return err
	}

	for i := range http2Preface {
		if b[i] != http2Preface[i] {
			return ErrBadPreface
		}
	}

	return nil
}
