package http

import (
	"errors"

	"github.com/indigo-web/minihttp/http/mime"
	"github.com/indigo-web/minihttp/http/status"
	"github.com/indigo-web/minihttp/kv"
	json "github.com/json-iterator/go"
)

const (
	// DefaultProto is the version every constructed response carries.
	DefaultProto = "HTTP/1.1"
	// DefaultContentType is set if no headers were passed to a constructor.
	DefaultContentType = mime.Plain
)

// Response is a message to be serialized. Unlike Request, it is meant to be built up
// by the caller, however the constructors below already return a complete value.
type Response struct {
	// Proto is the version token written into the status line as is.
	Proto string
	// Code is the status code.
	Code status.Code
	// Status is the reason phrase. The constructors always set it from the status catalog.
	Status status.Status
	// Headers are rendered in their order. Content-Length among them is ignored, as
	// the serializer always computes its own.
	Headers Headers
	// Body is sent verbatim.
	Body string
}

// Respond builds a response with the code and its canonical reason phrase. If headers are nil,
// a single Content-Type: text/plain is used, otherwise they're taken as is, so the caller is
// responsible for the Content-Type. A Content-Length among them is skipped on serialization
// in favour of the computed one. The body is optional, only the first one is used.
func Respond(code status.Code, headers Headers, body ...string) *Response {
	return respond(code, status.Text(code), headers, optional(body, ""))
}

// FromCode does the same as Respond does, except the code is textual. Unknown codes get
// an empty reason phrase. Codes that aren't 3-digit numbers result in 500 Internal Server Error.
func FromCode(code string, headers Headers, body ...string) *Response {
	c, ok := status.ParseCode(code)
	if !ok {
		return InternalServerError(headers, body...)
	}

	return Respond(c, headers, body...)
}

func respond(code status.Code, text status.Status, headers Headers, body string) *Response {
	if headers == nil {
		headers = kv.NewPrealloc(1).Add("Content-Type", DefaultContentType)
	}

	return &Response{
		Proto:   DefaultProto,
		Code:    code,
		Status:  text,
		Headers: headers,
		Body:    body,
	}
}

// WithCode sets a Response code and a corresponding status. In case of unknown code, the
// status will be empty. In this case you should call WithStatus explicitly
func (r *Response) WithCode(code status.Code) *Response {
	r.Code = code
	r.Status = status.Text(code)
	return r
}

// WithStatus sets a custom reason phrase.
func (r *Response) WithStatus(text status.Status) *Response {
	r.Status = text
	return r
}

// Header adds a header pair. Already existing pairs with the same key are kept.
func (r *Response) Header(key, value string) *Response {
	if r.Headers == nil {
		r.Headers = kv.New()
	}

	r.Headers.Add(key, value)
	return r
}

// ContentType sets the Content-Type header value, overriding the current one.
func (r *Response) ContentType(value mime.MIME) *Response {
	if r.Headers == nil {
		r.Headers = kv.New()
	}

	r.Headers.Set("Content-Type", value)
	return r
}

// String sets the response's body to the passed string
func (r *Response) String(body string) *Response {
	r.Body = body
	return r
}

// Write implements io.Writer interface. It always returns n=len(b) and err=nil
func (r *Response) Write(b []byte) (n int, err error) {
	r.Body += string(b)
	return len(b), nil
}

// TryJSON replaces the body with the serialized model and sets the Content-Type accordingly.
// The body is left empty if the model can't be serialized.
func (r *Response) TryJSON(model any) (*Response, error) {
	r.Body = ""
	stream := json.ConfigDefault.BorrowStream(r)
	stream.WriteVal(model)
	err := stream.Flush()
	json.ConfigDefault.ReturnStream(stream)

	if err != nil {
		r.Body = ""
		return r, err
	}

	return r.ContentType(mime.JSON), nil
}

// Error turns the response into the one describing the error. If an instance of
// status.HTTPError is passed, its code is used, otherwise it's 500 Internal Server Error.
// The error message becomes the body. If passed err is nil, nothing will happen.
func (r *Response) Error(err error) *Response {
	if err == nil {
		return r
	}

	code := status.InternalServerError
	var httpErr status.HTTPError
	if errors.As(err, &httpErr) {
		code = httpErr.Code
	}

	return r.
		WithCode(code).
		ContentType(mime.Plain).
		String(err.Error())
}

// JSON responds with the serialized model. In case it can't be serialized, the error
// is responded instead.
func JSON(code status.Code, model any) *Response {
	resp := Respond(code, kv.New())
	if _, err := resp.TryJSON(model); err != nil {
		return Error(err)
	}

	return resp
}

// Error responds with the error. See Response.Error for details.
func Error(err error) *Response {
	return InternalServerError(nil).Error(err)
}

func optional[T any](optionals []T, otherwise T) T {
	if len(optionals) == 0 {
		return otherwise
	}

	return optionals[0]
}
