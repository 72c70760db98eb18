package tokenizer

import "io"

// Stream is the narrow, zero-copy byte source the Tokenizer pulls from
// once its initial in-memory buffer (if any) is exhausted. A single
// buffer is valid only until the next call to Next; implementations
// must not reuse a returned slice's backing array for a subsequent
// buffer while the tokenizer may still be recording out of it (see
// BackUp).
//
// Next returns io.EOF (wrapped or bare) once the stream is exhausted;
// any other non-nil error is treated the same way by the tokenizer
// (read-error flag set, current byte becomes 0x00) but is preserved
// for the caller to inspect via Tokenizer.Err.
type Stream interface {
	Next() ([]byte, error)

	// BackUp returns the last n bytes of the most recently returned
	// buffer to the stream, so a subsequent reader can resume from
	// that exact position. Called at most once, immediately after the
	// corresponding Next, and only with n <= len(that buffer).
	BackUp(n int)
}

// readerStream adapts an io.Reader into a Stream by pulling fixed-size
// chunks. It is the zero-copy-ish default: each call to Next reuses
// its single internal buffer, so BackUp only needs to remember how
// many of the buffer's trailing bytes were never consumed.
type readerStream struct {
	r       io.Reader
	buf     []byte
	backedUp int
}

// NewReaderStream wraps r as a Stream that reads bufSize-byte chunks.
// bufSize is clamped to a minimum of 64 bytes.
func NewReaderStream(r io.Reader, bufSize int) Stream {
	if bufSize < 64 {
		bufSize = 64
	}
	return &readerStream{r: r, buf: make([]byte, bufSize)}
}

func (s *readerStream) Next() ([]byte, error) {
	if s.backedUp > 0 {
		// The tokenizer never actually resumes reading after BackUp in
		// this module (BackUp is only invoked at teardown), but honor
		// the contract: hand back exactly what was returned.
		n := s.backedUp
		s.backedUp = 0
		return s.buf[len(s.buf)-n:], nil
	}
	n, err := io.ReadFull(s.r, s.buf)
	if n > 0 {
		// io.ReadFull returns ErrUnexpectedEOF for a short final read;
		// the caller still gets the bytes it did read, and the next
		// call will surface io.EOF with n == 0.
		if err == io.ErrUnexpectedEOF {
			err = nil
		}
		// Hand out the bytes from the end of buf, so that BackUp's
		// "last n bytes of buf" is also right after a short read.
		tail := s.buf[len(s.buf)-n:]
		copy(tail, s.buf[:n])
		return tail, nil
	}
	if err == nil {
		err = io.EOF
	}
	return nil, err
}

func (s *readerStream) BackUp(n int) {
	if n > 0 && n <= len(s.buf) {
		s.backedUp = n
	}
}

// sliceStream serves a single in-memory buffer, then EOF.
type sliceStream struct {
	data []byte
	done bool
}

// NewSliceStream wraps data as a one-shot Stream: the whole slice is
// returned from the first Next, then every subsequent call reports
// io.EOF. Useful when the full input is already in memory and no
// streaming is needed beyond the tokenizer's initial-buffer argument.
func NewSliceStream(data []byte) Stream {
	return &sliceStream{data: data}
}

func (s *sliceStream) Next() ([]byte, error) {
	if s.done || len(s.data) == 0 {
		s.done = true
		return nil, io.EOF
	}
	s.done = true
	return s.data, nil
}

func (s *sliceStream) BackUp(n int) {
	if s.done && n > 0 && n <= len(s.data) {
		s.done = false
		s.data = s.data[len(s.data)-n:]
	}
}

// emptyStream is the Stream New substitutes when called with a nil
// stream: it reports io.EOF immediately, so the tokenizer scans
// nothing beyond whatever initial buffer it was given.
type emptyStream struct{}

func (emptyStream) Next() ([]byte, error) { return nil, io.EOF }
func (emptyStream) BackUp(int)            {}
