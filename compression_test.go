package qmplot

import (
	"bytes"
	"compress/gzip"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDetectCompression(t *testing.T) {
	gzBuf := &bytes.Buffer{}
	gz := gzip.NewWriter(gzBuf)
	if _, err := gz.Write([]byte("hello")); err != nil {
		t.Fatal(err)
	}
	if err := gz.Close(); err != nil {
		t.Fatal(err)
	}

	c, err := DetectCompression(bytes.NewReader(gzBuf.Bytes()))
	if err != nil {
		t.Fatal(err)
	}
	if c != CompressionGzip {
		t.Errorf("expected gzip, got %v", c)
	}

	c, err = DetectCompression(strings.NewReader("#CHROM\tPOS\tP\n"))
	if err != nil {
		t.Fatal(err)
	}
	if c != CompressionNone {
		t.Errorf("expected none, got %v", c)
	}
}

func TestMaybeDecompressGzip(t *testing.T) {
	content := "#CHROM\tPOS\tP\n1\t100\t0.5\n"

	path := filepath.Join(t.TempDir(), "input.tsv.gz")
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	gz := gzip.NewWriter(f)
	if _, err := gz.Write([]byte(content)); err != nil {
		t.Fatal(err)
	}
	if err := gz.Close(); err != nil {
		t.Fatal(err)
	}
	if err := f.Close(); err != nil {
		t.Fatal(err)
	}

	in, size, err := Open(path, nil)
	if err != nil {
		t.Fatal(err)
	}
	defer in.Close()
	if size <= 0 {
		t.Errorf("expected a positive size, got %d", size)
	}

	r, err := MaybeDecompress(in)
	if err != nil {
		t.Fatal(err)
	}
	defer r.Close()

	got, err := io.ReadAll(r)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != content {
		t.Errorf("expected %q, got %q", content, got)
	}
}

func TestMaybeDecompressPlain(t *testing.T) {
	content := "#CHROM\tPOS\tP\n1\t100\t0.5\n"

	path := filepath.Join(t.TempDir(), "input.tsv")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	in, _, err := Open(path, nil)
	if err != nil {
		t.Fatal(err)
	}

	r, err := MaybeDecompress(in)
	if err != nil {
		t.Fatal(err)
	}
	defer r.Close()

	got, err := io.ReadAll(r)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != content {
		t.Errorf("expected %q, got %q", content, got)
	}
}

func TestDetectDelimiter(t *testing.T) {
	if got := DetectDelimiter(strings.NewReader("a\tb\tc\n1\t2\t3\n4\t5\t6\n")); got != '\t' {
		t.Errorf("expected tab, got %q", got)
	}
	if got := DetectDelimiter(strings.NewReader("a,b,c\n1,2,3\n4,5,6\n")); got != ',' {
		t.Errorf("expected comma, got %q", got)
	}
	if got := DetectDelimiter(strings.NewReader("")); got != '\t' {
		t.Errorf("expected the tab fallback, got %q", got)
	}
}
