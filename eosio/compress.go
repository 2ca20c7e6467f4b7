package eosio

import (
	"bufio"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
)

//compression returns the compression format for a file name, from its extension:
//"zst", "gz" or "" for plain text.
func compression(name string) string {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".zst", ".zstd":
		return "zst"
	case ".gz":
		return "gz"
	}
	return ""
}

//zstdReadCloser makes a *zstd.Decoder an io.ReadCloser that also closes the file below it.
type zstdReadCloser struct {
	*zstd.Decoder
	f *os.File
}

func (z zstdReadCloser) Close() error {
	z.Decoder.Close()
	return z.f.Close()
}

type gzipReadCloser struct {
	*gzip.Reader
	f *os.File
}

func (g gzipReadCloser) Close() error {
	err := g.Reader.Close()
	if err2 := g.f.Close(); err == nil {
		err = err2
	}
	return err
}

//openSource opens the file name and returns a reader that decompresses it, if needed,
//according to its extension.
func openSource(name string) (io.ReadCloser, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	r := bufio.NewReader(f)
	switch compression(name) {
	case "zst":
		d, err := zstd.NewReader(r)
		if err != nil {
			f.Close()
			return nil, err
		}
		return zstdReadCloser{d, f}, nil
	case "gz":
		g, err := gzip.NewReader(r)
		if err != nil {
			f.Close()
			return nil, err
		}
		return gzipReadCloser{g, f}, nil
	}
	return f, nil
}

//compressedWriter closes the compressor and then the file.
type compressedWriter struct {
	io.WriteCloser
	f *os.File
}

func (c compressedWriter) Close() error {
	err := c.WriteCloser.Close()
	if err2 := c.f.Close(); err == nil {
		err = err2
	}
	return err
}

//createSink creates the file name and returns a writer that compresses the data, if needed,
//according to the extension.
func createSink(name string) (io.WriteCloser, error) {
	f, err := os.Create(name)
	if err != nil {
		return nil, err
	}
	var w io.WriteCloser
	switch compression(name) {
	case "zst":
		w, err = zstd.NewWriter(f, zstd.WithEncoderLevel(zstd.SpeedBestCompression))
	case "gz":
		w, err = gzip.NewWriterLevel(f, gzip.BestCompression)
	default:
		return f, nil
	}
	if err != nil {
		f.Close()
		return nil, err
	}
	return compressedWriter{w, f}, nil
}
