package http2

// staticTable is the HPACK static table defined in RFC 7541 Appendix A.
// Index i (1-based in the wire format) corresponds to staticTable[i-1].
var staticTable = [61]HeaderField{
	{key: []byte(":authority"), value: []byte("")},
	{key: []byte(":method"), value: []byte("GET")},
	{key: []byte(":method"), value: []byte("POST")},
	{key: []byte(":path"), value: []byte("/")},
	{key: []byte(":path"), value: []byte("/index.html")},
	{key: []byte(":scheme"), value: []byte("http")},
	{key: []byte(":scheme"), value: []byte("https")},
	{key: []byte(":status"), value: []byte("200")},
	{key: []byte(":status"), value: []byte("204")},
	{key: []byte(":status"), value: []byte("206")},
	{key: []byte(":status"), value: []byte("304")},
	{key: []byte(":status"), value: []byte("400")},
	{key: []byte(":status"), value: []byte("404")},
	{key: []byte(":status"), value: []byte("500")},
	{key: []byte("accept-charset"), value: []byte("")},
	{key: []byte("accept-encoding"), value: []byte("gzip, deflate")},
	{key: []byte("accept-language"), value: []byte("")},
	{key: []byte("accept-ranges"), value: []byte("")},
	{key: []byte("accept"), value: []byte("")},
	{key: []byte("access-control-allow-origin"), value: []byte("")},
	{key: []byte("age"), value: []byte("")},
	{key: []byte("allow"), value: []byte("")},
	{key: []byte("authorization"), value: []byte("")},
	{key: []byte("cache-control"), value: []byte("")},
	{key: []byte("content-disposition"), value: []byte("")},
	{key: []byte("content-encoding"), value: []byte("")},
	{key: []byte("content-language"), value: []byte("")},
	{key: []byte("content-length"), value: []byte("")},
	{key: []byte("content-location"), value: []byte("")},
	{key: []byte("content-range"), value: []byte("")},
	{key: []byte("content-type"), value: []byte("")},
	{key: []byte("cookie"), value: []byte("")},
	{key: []byte("date"), value: []byte("")},
	{key: []byte("etag"), value: []byte("")},
	{key: []byte("expect"), value: []byte("")},
	{key: []byte("expires"), value: []byte("")},
	{key: []byte("from"), value: []byte("")},
	{key: []byte("host"), value: []byte("")},
	{key: []byte("if-match"), value: []byte("")},
	{key: []byte("if-modified-since"), value: []byte("")},
	{key: []byte("if-none-match"), value: []byte("")},
	{key: []byte("if-range"), value: []byte("")},
	{key: []byte("if-unmodified-since"), value: []byte("")},
	{key: []byte("last-modified"), value: []byte("")},
	{key: []byte("link"), value: []byte("")},
	{key: []byte("location"), value: []byte("")},
	{key: []byte("max-forwards"), value: []byte("")},
	{key: []byte("proxy-authenticate"), value: []byte("")},
	{key: []byte("proxy-authorization"), value: []byte("")},
	{key: []byte("range"), value: []byte("")},
	{key: []byte("referer"), value: []byte("")},
	{key: []byte("refresh"), value: []byte("")},
	{key: []byte("retry-after"), value: []byte("")},
	{key: []byte("server"), value: []byte("")},
	{key: []byte("set-cookie"), value: []byte("")},
	{key: []byte("strict-transport-security"), value: []byte("")},
	{key: []byte("transfer-encoding"), value: []byte("")},
	{key: []byte("user-agent"), value: []byte("")},
	{key: []byte("vary"), value: []byte("")},
	{key: []byte("via"), value: []byte("")},
	{key: []byte("www-authenticate"), value: []byte("")},
}

