package input

// ReadResult holds the data read from a source and a cleanup function.
type ReadResult struct {
	Data   []byte
	Closer func() error
}

// noopCloser avoids allocating a func literal per read.
func noopCloser() error { return nil }

// Reader reads a source's full content into a byte slice.
type Reader interface {
	Read(path string) (ReadResult, error)
}
