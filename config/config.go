package config

import "time"

type (
	Parser struct {
		// Strict turns the tolerated irregularities into errors: a non-blank line without a colon
		// in the headers section results in status.ErrMalformedHeader, and a message without a
		// request line results in status.ErrNoRequestLine.
		Strict bool
		// HeadersPrealloc is the initial capacity of the request headers storage.
		HeadersPrealloc int
	}

	Serializer struct {
		// BufferPrealloc is the initial capacity of pooled buffers responses are rendered into.
		BufferPrealloc int
		// DefaultProto is written into the status line if the response doesn't carry any.
		DefaultProto string
	}

	NET struct {
		// ReadBufferSize is a size of buffer in bytes which will be used to read from
		// socket. As the messages are never processed partially, it also caps the request size.
		ReadBufferSize int
		// ReadTimeout controls how long a client may take to deliver its request.
		ReadTimeout time.Duration
	}
)

// Config holds settings used across the parser and the serializer, mainly pre-allocations
// and leniency toggles. NET is only consulted by connection-handling code built on top.
//
// You must ALWAYS modify defaults (returned via Default()) and NEVER try to initialize the
// config manually, because most likely this will result in ambiguous errors.
type Config struct {
	Parser     Parser
	Serializer Serializer
	NET        NET
}

// Default returns default config.
func Default() *Config {
	return &Config{
		Parser: Parser{
			Strict:          false,
			HeadersPrealloc: 10,
		},
		Serializer: Serializer{
			BufferPrealloc: 1024,
			DefaultProto:   "HTTP/1.1",
		},
		NET: NET{
			ReadBufferSize: 4 * 1024,
			ReadTimeout:    90 * time.Second,
		},
	}
}
