package http

import "github.com/indigo-web/minihttp/http/status"

// Shortcuts for the most common codes. Each one is Respond with the code fixed, so
// the same rules for headers and body apply.

func Continue(headers Headers, body ...string) *Response {
	return Respond(status.Continue, headers, body...)
}

func SwitchingProtocols(headers Headers, body ...string) *Response {
	return Respond(status.SwitchingProtocols, headers, body...)
}

func EarlyHints(headers Headers, body ...string) *Response {
	return Respond(status.EarlyHints, headers, body...)
}

func OK(headers Headers, body ...string) *Response {
	return Respond(status.OK, headers, body...)
}

func Created(headers Headers, body ...string) *Response {
	return Respond(status.Created, headers, body...)
}

func Accepted(headers Headers, body ...string) *Response {
	return Respond(status.Accepted, headers, body...)
}

func NonAuthoritativeInfo(headers Headers, body ...string) *Response {
	return Respond(status.NonAuthoritativeInfo, headers, body...)
}

func NoContent(headers Headers, body ...string) *Response {
	return Respond(status.NoContent, headers, body...)
}

func ResetContent(headers Headers, body ...string) *Response {
	return Respond(status.ResetContent, headers, body...)
}

func PartialContent(headers Headers, body ...string) *Response {
	return Respond(status.PartialContent, headers, body...)
}

func Found(headers Headers, body ...string) *Response {
	return Respond(status.Found, headers, body...)
}

func SeeOther(headers Headers, body ...string) *Response {
	return Respond(status.SeeOther, headers, body...)
}

func NotModified(headers Headers, body ...string) *Response {
	return Respond(status.NotModified, headers, body...)
}

func TemporaryRedirect(headers Headers, body ...string) *Response {
	return Respond(status.TemporaryRedirect, headers, body...)
}

func PermanentRedirect(headers Headers, body ...string) *Response {
	return Respond(status.PermanentRedirect, headers, body...)
}

func BadRequest(headers Headers, body ...string) *Response {
	return Respond(status.BadRequest, headers, body...)
}

func Unauthorized(headers Headers, body ...string) *Response {
	return Respond(status.Unauthorized, headers, body...)
}

func Forbidden(headers Headers, body ...string) *Response {
	return Respond(status.Forbidden, headers, body...)
}

func NotFound(headers Headers, body ...string) *Response {
	return Respond(status.NotFound, headers, body...)
}

func MethodNotAllowed(headers Headers, body ...string) *Response {
	return Respond(status.MethodNotAllowed, headers, body...)
}

func RequestTimeout(headers Headers, body ...string) *Response {
	return Respond(status.RequestTimeout, headers, body...)
}

func Gone(headers Headers, body ...string) *Response {
	return Respond(status.Gone, headers, body...)
}

func Teapot(headers Headers, body ...string) *Response {
	return Respond(status.Teapot, headers, body...)
}

func InternalServerError(headers Headers, body ...string) *Response {
	return Respond(status.InternalServerError, headers, body...)
}
