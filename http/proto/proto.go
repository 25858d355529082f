package proto

import "github.com/indigo-web/utils/uf"

type Proto uint8

const (
	// Unknown is the classification of every version token except the supported ones.
	Unknown Proto = iota
	HTTP11
	HTTP2
)

// String returns protocol as it appears in the request line. Unknown results in an
// empty string.
func (p Proto) String() string {
	lut := [...]string{HTTP11: "HTTP/1.1", HTTP2: "HTTP/2.0"}
	if int(p) >= len(lut) {
		return ""
	}

	return lut[p]
}

const (
	protoTokenLength   = len("HTTP/x.x")
	majorVersionOffset = len("HTTP/x") - 1
	minorVersionOffset = len("HTTP/x.x") - 1
	httpScheme         = "HTTP/"
)

var majorMinorVersionLUT = [10][10]Proto{
	1: {1: HTTP11},
	2: {0: HTTP2},
}

// Parse classifies the version token. It never fails: anything other than exactly
// HTTP/1.1 or HTTP/2.0 results in Unknown.
func Parse(token string) Proto {
	if len(token) != protoTokenLength || token[:majorVersionOffset] != httpScheme ||
		token[majorVersionOffset+1] != '.' {
		return Unknown
	}

	return fromDigits(token[majorVersionOffset]-'0', token[minorVersionOffset]-'0')
}

// FromBytes is Parse for raw data. The passed slice isn't retained.
func FromBytes(raw []byte) Proto {
	return Parse(uf.B2S(raw))
}

func fromDigits(major, minor uint8) Proto {
	// digits below '0' wrap around and end up here as well
	if major > 9 || minor > 9 {
		return Unknown
	}

	return majorMinorVersionLUT[major][minor]
}
