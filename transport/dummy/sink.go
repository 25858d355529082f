package dummy

import (
	"errors"
	"io"
)

// ErrWrite is returned by sinks that are set up to fail.
var ErrWrite = errors.New("dummy: write failed")

var (
	_ io.Writer = NopSink{}
	_ io.Writer = new(RecordingSink)
	_ io.Writer = new(FaultySink)
)

// NopSink discards everything written into it.
type NopSink struct{}

func NewNopSink() NopSink {
	return NopSink{}
}

func (NopSink) Write(b []byte) (int, error) {
	return len(b), nil
}

// RecordingSink accumulates everything written into it, and counts flushes.
type RecordingSink struct {
	Data    []byte
	Writes  int
	Flushes int
	// FlushErr is returned by every Flush call.
	FlushErr error
}

func NewRecordingSink() *RecordingSink {
	return new(RecordingSink)
}

func (r *RecordingSink) Write(b []byte) (int, error) {
	r.Writes++
	r.Data = append(r.Data, b...)
	return len(b), nil
}

func (r *RecordingSink) Flush() error {
	r.Flushes++
	return r.FlushErr
}

func (r *RecordingSink) String() string {
	return string(r.Data)
}

// FaultySink accepts at most Limit bytes per write. The rest is either rejected with Err or,
// if Err is nil, silently dropped, so the write ends up short.
type FaultySink struct {
	Data  []byte
	Limit int
	Err   error
}

// NewFailingSink returns a sink failing with ErrWrite after accepting limit bytes.
func NewFailingSink(limit int) *FaultySink {
	return &FaultySink{Limit: limit, Err: ErrWrite}
}

// NewShortSink returns a sink accepting at most limit bytes per write without reporting an error.
func NewShortSink(limit int) *FaultySink {
	return &FaultySink{Limit: limit}
}

func (f *FaultySink) Write(b []byte) (int, error) {
	if len(b) <= f.Limit {
		f.Data = append(f.Data, b...)
		return len(b), nil
	}

	f.Data = append(f.Data, b[:f.Limit]...)
	return f.Limit, f.Err
}
