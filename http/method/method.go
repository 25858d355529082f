package method

type Method uint8

const (
	// Unknown is both the zero value and the classification of any token that
	// doesn't name a supported method.
	Unknown Method = iota
	GET
	HEAD
	POST
	PUT
	DELETE
	CONNECT
	OPTIONS
	TRACE
	PATCH

	// Count is the last one enum, so contains the greatest integer value of all the
	// methods. So real number of methods is lower by 1
	Count = iota - 1
)

// List contains all the supported HTTP methods. They are sorted by their integer value, however
// Unknown method is not included. So in order to index the List, you must subtract 1 first.
var List = []Method{GET, HEAD, POST, PUT, DELETE, CONNECT, OPTIONS, TRACE, PATCH}

type entry struct {
	Method Method
	Origin string
}

func newMethodsMap(methods ...Method) (mmap [256][256]entry) {
	for _, method := range methods {
		str := method.String()
		mmap[str[0]][str[1]] = entry{
			Method: method,
			Origin: str,
		}
	}

	return mmap
}

// no two supported methods share their first two characters, so those are enough to index them
var methodsMap = newMethodsMap(List...)

// Parse classifies the token. It never fails: everything that isn't exactly (case-sensitive)
// one of the supported methods results in Unknown.
func Parse(str string) Method {
	if len(str) < 2 {
		return Unknown
	}

	method := methodsMap[str[0]][str[1]]
	if method.Origin != str {
		return Unknown
	}

	return method.Method
}
