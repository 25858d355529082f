package http1

import (
	"strings"
	"unicode"

	"github.com/indigo-web/minihttp/config"
	"github.com/indigo-web/minihttp/http"
	"github.com/indigo-web/minihttp/http/method"
	"github.com/indigo-web/minihttp/http/proto"
	"github.com/indigo-web/minihttp/http/status"
	"github.com/indigo-web/minihttp/kv"
	"github.com/indigo-web/utils/uf"
)

// Parser turns a fully buffered request message into http.Request. It keeps no state
// between calls, so a single instance may be shared among goroutines.
type Parser struct {
	cfg *config.Config
}

func NewParser(cfg *config.Config) Parser {
	return Parser{cfg: cfg}
}

var defaultParser = NewParser(config.Default())

// Parse parses the message with default settings.
func Parse(raw string) (*http.Request, error) {
	return defaultParser.Parse(raw)
}

// ParseBytes parses the message without copying it. The request's strings reference the
// passed slice, so it must not be modified afterward.
func (p Parser) ParseBytes(raw []byte) (*http.Request, error) {
	return p.Parse(uf.B2S(raw))
}

// Parse parses the message. The lines may be separated either by CRLF or LF.
//
// A line containing "HTTP" is the request line, unless one was already met. Other lines
// are headers, as long as they contain a colon. The first empty line terminates the headers
// section, and all the lines after it are concatenated without any separators into the body.
//
// Lines which are neither of above are ignored, unless the parser is strict. Missing request
// line results in the defaults of http.NewRequest, again unless the parser is strict.
func (p Parser) Parse(raw string) (*http.Request, error) {
	request := http.NewRequest(kv.NewPrealloc(p.cfg.Parser.HeadersPrealloc))

	var (
		line string
		rest = raw
	)

	for len(rest) > 0 {
		line, rest = nextLine(rest)

		switch {
		case len(line) == 0:
			request.Body = body(rest)
			return p.finalize(request)
		case !request.HasRequestLine() && strings.Contains(line, "HTTP"):
			if err := parseRequestLine(request, line); err != nil {
				return nil, err
			}
		case strings.IndexByte(line, ':') != -1:
			key, value := splitHeader(line)
			request.Headers.Set(key, value)
		case p.cfg.Parser.Strict:
			return nil, status.ErrMalformedHeader
		}
	}

	return p.finalize(request)
}

func (p Parser) finalize(request *http.Request) (*http.Request, error) {
	if p.cfg.Parser.Strict && !request.HasRequestLine() {
		return nil, status.ErrNoRequestLine
	}

	return request, nil
}

func parseRequestLine(request *http.Request, line string) error {
	tokens := strings.Fields(line)
	if len(tokens) < 3 {
		return status.ErrMalformedRequestLine
	}

	request.MethodToken, request.ProtoToken = tokens[0], tokens[2]
	request.Method = method.Parse(tokens[0])
	request.Resource = http.Resource{Path: tokens[1]}
	request.Proto = proto.Parse(tokens[2])

	return nil
}

// splitHeader splits the line by the first colon. Only leading whitespaces of the value
// are trimmed.
func splitHeader(line string) (key, value string) {
	colon := strings.IndexByte(line, ':')
	return line[:colon], strings.TrimLeftFunc(line[colon+1:], unicode.IsSpace)
}

// body concatenates the rest of lines. Line separators are lost.
func body(rest string) string {
	var (
		line string
		b    strings.Builder
	)

	b.Grow(len(rest))

	for len(rest) > 0 {
		line, rest = nextLine(rest)
		b.WriteString(line)
	}

	return strings.TrimRight(b.String(), "\x00")
}

// nextLine cuts the first line off, stripping its terminating LF or CRLF. The caller must
// ensure data isn't empty, as otherwise a trailing separator would produce an extra empty line.
func nextLine(data string) (line, rest string) {
	lf := strings.IndexByte(data, '\n')
	if lf == -1 {
		return stripCR(data), ""
	}

	return stripCR(data[:lf]), data[lf+1:]
}

func stripCR(s string) string {
	if len(s) > 0 && s[len(s)-1] == '\r' {
		return s[:len(s)-1]
	}

	return s
}
