package internal

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"unicode/utf8"

	"github.com/mholt/archives"
	"github.com/sirupsen/logrus"
)

var errInvalidUTF8 = errors.New("stream did not contain valid UTF-8")

// FileReadError - the file could not be turned into text.
type FileReadError struct {
	Path string
	Err  error
}

func (e *FileReadError) Error() string {
	cause := e.Err
	var pe *fs.PathError
	if errors.As(cause, &pe) && pe.Path == e.Path {
		cause = pe.Err
	}
	return fmt.Sprintf("read %s: %v", e.Path, cause)
}

func (e *FileReadError) Unwrap() error { return e.Err }

// ReadContent loads the whole file into memory.
// A single compressed stream (gz, bz2, xz, zst, ...) is decompressed first;
// detection looks at the leading bytes only, never at the file name.
// Unlike os.ReadFile, a gzipped log is therefore searched as text.
func ReadContent(ctx context.Context, path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", &FileReadError{Path: path, Err: err}
	}
	defer f.Close()

	raw, err := io.ReadAll(f)
	if err != nil {
		return "", &FileReadError{Path: path, Err: err}
	}

	data := decompress(ctx, raw)
	if !utf8.Valid(data) {
		return "", &FileReadError{Path: path, Err: errInvalidUTF8}
	}
	return string(data), nil
}

// decompress returns raw unchanged unless it is a bare compression stream
// with a magic header. Archives (zip, tar, tar.gz...) are left alone, and so
// is brotli, which has no header and is sniffed by trial decoding. A stream
// that fails to decompress is treated as plain text.
func decompress(ctx context.Context, raw []byte) []byte {
	if len(raw) == 0 {
		return raw
	}
	format, _, err := archives.Identify(ctx, "", bytes.NewReader(raw))
	if err != nil {
		if !errors.Is(err, archives.NoMatch) {
			logrus.WithError(err).Debug("format detection failed, reading as plain text")
		}
		return raw
	}
	if _, isArchive := format.(archives.Extractor); isArchive {
		logrus.WithField("format", format.Extension()).Debug("archive input is not expanded")
		return raw
	}
	if _, isBrotli := format.(archives.Brotli); isBrotli {
		return raw
	}
	comp, ok := format.(archives.Compression)
	if !ok {
		return raw
	}

	data, err := inflate(comp, raw)
	if err != nil {
		logrus.WithError(err).WithField("format", comp.Extension()).Debug("not a valid stream, reading as plain text")
		return raw
	}
	logrus.WithFields(logrus.Fields{
		"format":     comp.Extension(),
		"compressed": len(raw),
		"size":       len(data),
	}).Debug("decompressed input")
	return data
}

func inflate(comp archives.Decompressor, raw []byte) ([]byte, error) {
	rc, err := comp.OpenReader(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("open stream: %w", err)
	}
	defer rc.Close()
	return io.ReadAll(rc)
}
