package input

import (
	"fmt"
	"sync"

	"golang.org/x/sys/unix"
)

// bufPool reuses read buffers across files. Buffers are stored as *[]byte so
// the pool can keep the backing array when a slice grows.
var bufPool = sync.Pool{
	New: func() any {
		b := make([]byte, 0, 64*1024)
		return &b
	},
}

// BufferedReader reads files with unix.Open and unix.Pread into pooled
// buffers, avoiding a heap allocation per file.
type BufferedReader struct{}

// NewBufferedReader creates a new BufferedReader.
func NewBufferedReader() *BufferedReader {
	return &BufferedReader{}
}

func (r *BufferedReader) Read(path string) (ReadResult, error) {
	fd, err := openFile(path)
	if err != nil {
		return ReadResult{}, fmt.Errorf("open %s: %w", path, err)
	}

	var stat unix.Stat_t
	if err := unix.Fstat(fd, &stat); err != nil {
		unix.Close(fd)
		return ReadResult{}, fmt.Errorf("stat %s: %w", path, err)
	}

	if stat.Size == 0 {
		unix.Close(fd)
		return ReadResult{Data: nil, Closer: noopCloser}, nil
	}

	return readBuffered(fd, stat.Size)
}

// readBuffered reads an already-open fd of known size into a pooled buffer.
// Takes ownership of fd.
func readBuffered(fd int, size int64) (ReadResult, error) {
	bp := bufPool.Get().(*[]byte)
	buf := *bp
	if cap(buf) < int(size) {
		buf = make([]byte, size)
	} else {
		buf = buf[:size]
	}

	var off int64
	for off < size {
		n, err := unix.Pread(fd, buf[off:], off)
		if err != nil {
			unix.Close(fd)
			*bp = buf[:0]
			bufPool.Put(bp)
			return ReadResult{}, fmt.Errorf("read: %w", err)
		}
		if n == 0 {
			buf = buf[:off] // file shrank under us
			break
		}
		off += int64(n)
	}
	unix.Close(fd)

	return ReadResult{
		Data: buf,
		Closer: func() error {
			*bp = buf[:0]
			bufPool.Put(bp)
			return nil
		},
	}, nil
}

// openFile opens path read-only. O_NOATIME saves an inode write on Linux but
// is only permitted for files the caller owns, so fall back without it.
func openFile(path string) (int, error) {
	fd, err := unix.Open(path, unix.O_RDONLY|unix.O_NOATIME, 0)
	if err == unix.EPERM {
		fd, err = unix.Open(path, unix.O_RDONLY, 0)
	}
	return fd, err
}
