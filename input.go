package qmplot

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"cloud.google.com/go/storage"
	"github.com/carbocation/pfx"
)

// ReadSeekCloser combines the interfaces the summary-statistics loader needs
// from its input: seeking is required because compression sniffing and
// delimiter detection both consume the head of the stream before the real
// read begins.
type ReadSeekCloser interface {
	io.Reader
	io.Seeker
	io.Closer
}

// GSReadSeekCloser decorates a Google Storage object handle with io.Reader,
// io.Seeker, and io.Closer so that summary statistics sitting in a bucket can
// be consumed like a local file. True seeking is not possible over the object
// API; a rewind closes the current range reader and starts over, which is the
// only seek this package ever performs.
type GSReadSeekCloser struct {
	*storage.ObjectHandle
	Context context.Context

	r      *storage.Reader
	offset int64
}

func (s *GSReadSeekCloser) Read(buf []byte) (int, error) {
	var err error
	if s.r == nil {
		// Length -1 reads to the end of the object.
		s.r, err = s.NewRangeReader(s.Context, s.offset, -1)
		if err != nil {
			return 0, err
		}
	}

	return s.r.Read(buf)
}

func (s *GSReadSeekCloser) Seek(offset int64, whence int) (int64, error) {
	if offset != 0 || whence != io.SeekStart {
		return 0, fmt.Errorf("GSReadSeekCloser: seeking is only supported back to the start of the object")
	}

	s.offset = 0

	// Discard the active range reader; the next Read reopens at the offset.
	if s.r != nil {
		s.r.Close()
		s.r = nil
	}

	return 0, nil
}

func (s *GSReadSeekCloser) Close() error {
	if s.r != nil {
		return s.r.Close()
	}

	return nil
}

// Open opens a local file, or, when the path has a gs:// prefix and a storage
// client is provided, a Google Storage object. It returns the stream together
// with its size in bytes.
func Open(path string, client *storage.Client) (ReadSeekCloser, int64, error) {
	if client != nil && strings.HasPrefix(path, "gs://") {
		pathParts := strings.SplitN(strings.TrimPrefix(path, "gs://"), "/", 2)
		if len(pathParts) != 2 {
			return nil, 0, fmt.Errorf("tried to split your google storage path into 2 parts, but got %d: %v", len(pathParts), pathParts)
		}
		bucketName := pathParts[0]
		pathName := pathParts[1]

		handle := client.Bucket(bucketName).Object(pathName)

		wrappedHandle := &GSReadSeekCloser{
			ObjectHandle: handle,
			Context:      context.Background(),
		}

		attrs, err := handle.Attrs(wrappedHandle.Context)
		if err != nil {
			return nil, 0, pfx.Err(fmt.Errorf("%s: %s", path, err))
		}

		return wrappedHandle, attrs.Size, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, 0, pfx.Err(err)
	}
	fstat, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, 0, pfx.Err(err)
	}

	return f, fstat.Size(), nil
}
