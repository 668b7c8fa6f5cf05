package http2

import (
	"bytes"
	"testing"
)

func TestBitWriterInteger(t *testing.T) {
	cases := []struct {
		value     uint64
		prefixLen int
		want      []byte
	}{
		{10, 5, []byte{10}},
		{1337, 5, []byte{31, 154, 10}},
		{122, 7, []byte{122}},
		{0, 8, []byte{0}},
	}

	for _, c := range cases {
		w := bitWriter{}
		w.writeBits(0, uint8(8-c.prefixLen)) // representation bits ahead of the prefix
		w.writeInteger(c.value, c.prefixLen)
		if !bytes.Equal(w.buf, c.want) {
			t.Fatalf("writeInteger(%d, %d) = %v, want %v", c.value, c.prefixLen, w.buf, c.want)
		}
	}
}

func TestBitReaderInteger(t *testing.T) {
	cases := []struct {
		buf       []byte
		prefixLen int
		want      uint64
	}{
		{[]byte{10}, 5, 10},
		{[]byte{31, 154, 10}, 5, 1337},
		{[]byte{122}, 7, 122},
	}

	for _, c := range cases {
		r := bitReader{buf: c.buf, offset: 8 - c.prefixLen}
		n, err := r.readInteger()
		if err != nil {
			t.Fatalf("readInteger(%v): %s", c.buf, err)
		}
		if n != c.want {
			t.Fatalf("readInteger(%v) = %d, want %d", c.buf, n, c.want)
		}
	}
}

func TestHuffmanRoundTrip(t *testing.T) {
	samples := []string{
		"",
		"www.example.com",
		"no-cache",
		"custom-key",
		"custom-value",
		"a",
		"Mon, 21 Oct 2013 20:13:21 GMT",
	}

	for _, s := range samples {
		encoded := huffmanEncodeAppend(nil, []byte(s))
		decoded, err := huffmanDecodeAppend(nil, encoded)
		if err != nil {
			t.Fatalf("decode %q: %s", s, err)
		}
		if string(decoded) != s {
			t.Fatalf("round trip %q got %q", s, decoded)
		}
	}
}

// TestHuffmanKnownVector checks against the literal example from
// RFC 7541 C.4.1.
func TestHuffmanKnownVector(t *testing.T) {
	want := []byte{
		0xf1, 0xe3, 0xc2, 0xe5, 0xf2, 0x3a, 0x6b, 0xa0,
		0xab, 0x90, 0xf4, 0xff,
	}
	got := huffmanEncodeAppend(nil, []byte("www.example.com"))
	if !bytes.Equal(got, want) {
		t.Fatalf("huffman encode mismatch:\ngot  % x\nwant % x", got, want)
	}

	decoded, err := huffmanDecodeAppend(nil, want)
	if err != nil {
		t.Fatalf("huffman decode: %s", err)
	}
	if string(decoded) != "www.example.com" {
		t.Fatalf("huffman decode = %q", decoded)
	}
}

func TestHPACKStaticIndexedField(t *testing.T) {
	enc := AcquireHPACK()
	defer ReleaseHPACK(enc)

	hf := AcquireHeaderField()
	defer ReleaseHeaderField(hf)
	hf.SetBytes([]byte(":method"), []byte("GET"))

	dst := enc.AppendHeader(nil, hf, true)

	dec := AcquireHPACK()
	defer ReleaseHPACK(dec)

	out := AcquireHeaderField()
	defer ReleaseHeaderField(out)

	rest, err := dec.Next(out, dst)
	if err != nil {
		t.Fatalf("Next: %s", err)
	}
	if len(rest) != 0 {
		t.Fatalf("unexpected leftover bytes: %v", rest)
	}
	if out.Key() != ":method" || out.Value() != "GET" {
		t.Fatalf("got %s=%s", out.Key(), out.Value())
	}
}

func TestHPACKDynamicTableRoundTrip(t *testing.T) {
	enc := AcquireHPACK()
	defer ReleaseHPACK(enc)
	dec := AcquireHPACK()
	defer ReleaseHPACK(dec)

	fields := [][2]string{
		{"custom-key", "custom-value"},
		{"custom-key", "custom-value"}, // second time should hit the dynamic table
		{"x-trace-id", "abc-123"},
	}

	var dst []byte
	for _, f := range fields {
		hf := AcquireHeaderField()
		hf.SetBytes([]byte(f[0]), []byte(f[1]))
		dst = enc.AppendHeader(dst, hf, true)
		ReleaseHeaderField(hf)
	}

	for _, want := range fields {
		out := AcquireHeaderField()
		rest, err := dec.Next(out, dst)
		if err != nil {
			t.Fatalf("Next: %s", err)
		}
		if out.Key() != want[0] || out.Value() != want[1] {
			t.Fatalf("got %s=%s, want %s=%s", out.Key(), out.Value(), want[0], want[1])
		}
		dst = rest
		ReleaseHeaderField(out)
	}

	if enc.DynamicTableSize() != dec.DynamicTableSize() {
		t.Fatalf("encoder/decoder table sizes diverged: %d != %d", enc.DynamicTableSize(), dec.DynamicTableSize())
	}
}

func TestHPACKNeverIndexedNotStored(t *testing.T) {
	enc := AcquireHPACK()
	defer ReleaseHPACK(enc)

	hf := AcquireHeaderField()
	defer ReleaseHeaderField(hf)
	hf.SetBytes([]byte("authorization"), []byte("secret-token"))
	hf.sensible = true

	_ = enc.AppendHeader(nil, hf, true)

	if enc.DynamicTableSize() != 0 {
		t.Fatalf("sensitive field must not be added to the dynamic table")
	}
}

func TestHPACKSizeUpdateEvicts(t *testing.T) {
	enc := AcquireHPACK()
	defer ReleaseHPACK(enc)

	hf := AcquireHeaderField()
	hf.SetBytes([]byte("custom-key"), []byte("custom-value"))
	_ = enc.AppendHeader(nil, hf, true)
	ReleaseHeaderField(hf)

	if enc.DynamicTableSize() == 0 {
		t.Fatal("expected a dynamic table entry before shrinking")
	}

	enc.SetMaxTableSize(0)
	_ = enc.AppendHeader(nil, AcquireHeaderField(), false)

	if enc.DynamicTableSize() != 0 {
		t.Fatalf("expected table to be emptied by a zero size update, got %d", enc.DynamicTableSize())
	}
}
