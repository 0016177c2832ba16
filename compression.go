package qmplot

import (
	"bytes"
	"compress/bzip2"
	"compress/gzip"
	"compress/zlib"
	"fmt"
	"io"

	"github.com/carbocation/pfx"
	"github.com/krolaw/zipstream"
	"github.com/xi2/xz"
)

// Compression identifies the compression wrapper around an input stream, as
// inferred from its leading magic bytes.
type Compression byte

const (
	CompressionUnknown Compression = iota
	CompressionNone
	CompressionGzip
	CompressionZip
	CompressionXZ
	CompressionZlib
	CompressionBzip2
)

func (c Compression) String() string {
	switch c {
	case CompressionNone:
		return "none"
	case CompressionGzip:
		return "gzip"
	case CompressionZip:
		return "zip"
	case CompressionXZ:
		return "xz"
	case CompressionZlib:
		return "zlib"
	case CompressionBzip2:
		return "bzip2"
	default:
		return "unknown"
	}
}

// magicNumbers maps each recognized compression format to its leading bytes.
var magicNumbers = map[Compression][]byte{
	CompressionGzip:  {0x1f, 0x8b, 0x08},
	CompressionZip:   {0x50, 0x4b, 0x03, 0x04},
	CompressionXZ:    {0xfd, 0x37, 0x7a, 0x58, 0x5a, 0x00},
	CompressionZlib:  {0x78, 0x9c},
	CompressionBzip2: {0x42, 0x5a, 0x68},
}

// DetectCompression reads up to 6 bytes from r and reports which compression
// format, if any, they announce. The consumed bytes are not restored; callers
// that need them back must seek.
func DetectCompression(r io.Reader) (Compression, error) {
	head := make([]byte, 6)
	n, err := r.Read(head)
	if err != nil && err != io.EOF {
		return CompressionUnknown, pfx.Err(err)
	}
	head = head[:n]

	for compression, magic := range magicNumbers {
		if bytes.HasPrefix(head, magic) {
			return compression, nil
		}
	}

	return CompressionNone, nil
}

// MaybeDecompress sniffs the compression format of f, rewinds, and returns a
// reader that yields the decompressed bytes. Plain files come back as-is.
func MaybeDecompress(f ReadSeekCloser) (io.ReadCloser, error) {
	compression, err := DetectCompression(f)
	if err != nil {
		return nil, pfx.Err(err)
	}

	if _, err := f.Seek(0, io.SeekStart); err != nil {
		return nil, pfx.Err(err)
	}

	switch compression {
	case CompressionNone:
		return f, nil
	case CompressionGzip:
		gz, err := gzip.NewReader(f)
		if err != nil {
			return nil, pfx.Err(err)
		}
		return gz, nil
	case CompressionZip:
		// Reads the first file in the archive without loading the central
		// directory, so it streams over pipes and object stores.
		zr := zipstream.NewReader(f)
		if _, err := zr.Next(); err != nil {
			return nil, pfx.Err(err)
		}
		return readCloserFaker{Reader: zr, closer: f.Close}, nil
	case CompressionXZ:
		xzr, err := xz.NewReader(f, 0)
		if err != nil {
			return nil, pfx.Err(err)
		}
		return readCloserFaker{Reader: xzr, closer: f.Close}, nil
	case CompressionZlib:
		zr, err := zlib.NewReader(f)
		if err != nil {
			return nil, pfx.Err(err)
		}
		return zr, nil
	case CompressionBzip2:
		return readCloserFaker{Reader: bzip2.NewReader(f), closer: f.Close}, nil
	}

	return nil, fmt.Errorf("compression format %v is recognized but not readable", compression)
}

// readCloserFaker adds a Close method to decompressors that do not have one,
// closing the underlying file instead.
type readCloserFaker struct {
	io.Reader
	closer func() error
}

func (r readCloserFaker) Close() error {
	if r.closer != nil {
		return r.closer()
	}

	return nil
}
