package http1

import (
	"io"
	"strconv"
	"sync"

	"github.com/indigo-web/minihttp/config"
	"github.com/indigo-web/minihttp/http"
	"github.com/indigo-web/minihttp/http/status"
	"github.com/indigo-web/utils/strcomp"
	"github.com/indigo-web/utils/uf"
)

const crlf = "\r\n"

// Serializer renders responses into their wire representation. It is safe for concurrent use.
type Serializer struct {
	cfg  *config.Config
	pool sync.Pool
}

func NewSerializer(cfg *config.Config) *Serializer {
	s := &Serializer{cfg: cfg}
	s.pool.New = func() any {
		buff := make([]byte, 0, cfg.Serializer.BufferPrealloc)
		return &buff
	}

	return s
}

var defaultSerializer = NewSerializer(config.Default())

// Serialize renders the response with default settings.
func Serialize(response *http.Response) string {
	return defaultSerializer.Serialize(response)
}

// AppendTo renders the response into the buffer with default settings.
func AppendTo(buff []byte, response *http.Response) []byte {
	return defaultSerializer.AppendTo(buff, response)
}

// Send renders the response and writes it into the sink with default settings.
func Send(w io.Writer, response *http.Response) error {
	return defaultSerializer.Send(w, response)
}

func (s *Serializer) Serialize(response *http.Response) string {
	return uf.B2S(s.AppendTo(nil, response))
}

// AppendTo appends the rendered response to the buffer and returns the extended buffer.
//
// The status line is followed by the headers in their order, each one as key:value with no
// space after the colon. Then goes Content-Length, computed as the length of the body in bytes,
// so any Content-Length among the headers is skipped.
func (s *Serializer) AppendTo(buff []byte, response *http.Response) []byte {
	protocol := response.Proto
	if len(protocol) == 0 {
		protocol = s.cfg.Serializer.DefaultProto
	}

	buff = append(buff, protocol...)
	buff = append(buff, ' ')
	buff = append(buff, status.StringCode(response.Code)...)
	buff = append(buff, ' ')
	buff = append(buff, response.Status...)
	buff = append(buff, crlf...)

	if response.Headers != nil {
		for key, value := range response.Headers.Pairs() {
			if strcomp.EqualFold(key, "content-length") {
				continue
			}

			buff = append(buff, key...)
			buff = append(buff, ':')
			buff = append(buff, value...)
			buff = append(buff, crlf...)
		}
	}

	buff = append(buff, "Content-Length: "...)
	buff = strconv.AppendInt(buff, int64(len(response.Body)), 10)
	buff = append(buff, crlf+crlf...)

	return append(buff, response.Body...)
}

// Send renders the response into a pooled buffer and writes it into the sink at once. The
// buffer is returned into the pool regardless of the outcome, and the sink is never retained.
//
// A write error is returned as is. A short write without an error results in io.ErrShortWrite.
// If the sink has a Flush() error method, it's called afterward and its error is returned, too.
func (s *Serializer) Send(w io.Writer, response *http.Response) error {
	buffPtr := s.pool.Get().(*[]byte)
	defer s.pool.Put(buffPtr)

	*buffPtr = s.AppendTo((*buffPtr)[:0], response)

	n, err := w.Write(*buffPtr)
	switch {
	case err != nil:
		return err
	case n < len(*buffPtr):
		return io.ErrShortWrite
	}

	if flusher, ok := w.(interface{ Flush() error }); ok {
		return flusher.Flush()
	}

	return nil
}
