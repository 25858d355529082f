package http

import (
	"github.com/indigo-web/minihttp/http/method"
	"github.com/indigo-web/minihttp/http/proto"
	"github.com/indigo-web/minihttp/kv"
)

type (
	Headers = *kv.Storage
	Header  = kv.Pair
)

// Resource identifies the requested target.
type Resource struct {
	// Path is the path-and-query exactly as it was received, neither decoded nor validated.
	Path string
}

func (r Resource) String() string {
	return r.Path
}

// Request represents HTTP request. It is produced once per parsed message and never mutated
// by the library afterward.
type Request struct {
	// Method is an enum representing the request method. It's method.Unknown both when the token
	// isn't recognized and when there was no request line at all, see MethodToken.
	Method method.Method
	// Proto is the enum of a protocol used for the request. It's proto.HTTP11 unless a request
	// line said otherwise.
	Proto proto.Proto
	// Resource is the request target.
	Resource Resource
	// Headers holds header pairs in order of appearance. Keys are kept as they were received and
	// compared case-sensitively. A repeated key overrides the value of the earlier one.
	Headers Headers
	// Body is everything after the blank line, with line separators removed and trailing NUL
	// bytes stripped.
	Body string
	// MethodToken and ProtoToken are the raw request line tokens. Both are empty if the message
	// had no request line.
	MethodToken, ProtoToken string
}

// NewRequest returns a request with all the fields set to defaults used in case the message
// misses its request line.
func NewRequest(headers Headers) *Request {
	return &Request{
		Method:  method.Unknown,
		Proto:   proto.HTTP11,
		Headers: headers,
	}
}

// HasRequestLine tells whether the request line was presented in the message.
func (r *Request) HasRequestLine() bool {
	return len(r.MethodToken) > 0
}

// MethodRecognized tells a present but unsupported method apart from a missing one.
func (r *Request) MethodRecognized() bool {
	return r.Method != method.Unknown
}

// ProtoRecognized tells a present but unsupported protocol apart from a missing one.
func (r *Request) ProtoRecognized() bool {
	return r.Proto != proto.Unknown
}
