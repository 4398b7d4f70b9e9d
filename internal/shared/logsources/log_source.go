package logsources

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
)

var (
	ErrSourceNotFound = errors.New("log source not found")
	ErrSourceTooLarge = errors.New("log source too large")
	ErrInvalidKey     = errors.New("invalid log source key")
	ErrInvalidRootDir = errors.New("invalid root directory")
)

type Options struct {
	// MaxFileSizeBytes rejects files larger than this on disk, and fails reads of compressed files
	// once their decompressed content grows past it. Zero disables both checks.
	MaxFileSizeBytes int64
}

//go:generate mockgen -source=log_source.go -destination=./mocks/log_source_mock.go -package=mocks
type Source interface {
	// Open returns the decompressed content of the log file stored under key.
	// Keys ending in .gz or .zst are decompressed transparently.
	Open(ctx context.Context, key string) (io.ReadCloser, error)
}

type dirSource struct {
	dir  string
	opts Options
}

func NewDirSource(rootDir string, opts Options) (Source, error) {
	if rootDir == "" {
		return nil, fmt.Errorf("%w: root directory cannot be empty", ErrInvalidRootDir)
	}

	absRootDir, err := filepath.Abs(rootDir)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to resolve absolute path: %w", ErrInvalidRootDir, err)
	}

	return &dirSource{dir: absRootDir, opts: opts}, nil
}

func (s *dirSource) Open(ctx context.Context, key string) (io.ReadCloser, error) {
	if err := s.validateKey(key); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	fullPath := filepath.Join(s.dir, filepath.Clean(key))

	info, err := os.Stat(fullPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrSourceNotFound
		}
		return nil, err
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%w: %s is a directory", ErrInvalidKey, key)
	}
	if s.opts.MaxFileSizeBytes > 0 && info.Size() > s.opts.MaxFileSizeBytes {
		return nil, fmt.Errorf("%w: %d bytes exceeds limit of %d", ErrSourceTooLarge, info.Size(), s.opts.MaxFileSizeBytes)
	}

	file, err := os.Open(fullPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrSourceNotFound
		}
		return nil, err
	}

	switch strings.ToLower(filepath.Ext(fullPath)) {
	case ".gz":
		zr, err := gzip.NewReader(file)
		if err != nil {
			_ = file.Close()
			return nil, fmt.Errorf("open gzip stream: %w", err)
		}
		return &decompressingReader{Reader: s.limitDecoded(zr), closeFn: func() error {
			_ = zr.Close()
			return file.Close()
		}}, nil
	case ".zst":
		zr, err := zstd.NewReader(file)
		if err != nil {
			_ = file.Close()
			return nil, fmt.Errorf("open zstd stream: %w", err)
		}
		return &decompressingReader{Reader: s.limitDecoded(zr), closeFn: func() error {
			zr.Close()
			return file.Close()
		}}, nil
	default:
		return file, nil
	}
}

func (s *dirSource) validateKey(key string) error {
	if key == "" {
		return ErrInvalidKey
	}
	if filepath.IsAbs(key) {
		return ErrInvalidKey
	}
	cleanPath := filepath.Clean(key)
	if cleanPath == "." || leavesDir(cleanPath) {
		return ErrInvalidKey
	}
	// the resolved path must stay inside the root directory
	rel, err := filepath.Rel(s.dir, filepath.Join(s.dir, cleanPath))
	if err != nil || leavesDir(rel) {
		return ErrInvalidKey
	}
	return nil
}

// leavesDir reports whether the clean relative path p climbs out of its base directory. Names that
// merely start with dots, like "..old.log", stay inside.
func leavesDir(p string) bool {
	return p == ".." || strings.HasPrefix(p, ".."+string(filepath.Separator))
}

func (s *dirSource) limitDecoded(r io.Reader) io.Reader {
	if s.opts.MaxFileSizeBytes <= 0 {
		return r
	}
	return &decodedSizeLimiter{r: r, limit: s.opts.MaxFileSizeBytes}
}

// decodedSizeLimiter fails with ErrSourceTooLarge once more than limit bytes have been decoded.
type decodedSizeLimiter struct {
	r     io.Reader
	limit int64
	read  int64
}

func (l *decodedSizeLimiter) Read(p []byte) (int, error) {
	if l.read > l.limit {
		return 0, l.tooLarge()
	}
	// one byte past the limit is enough to tell it was exceeded
	if room := l.limit - l.read + 1; int64(len(p)) > room {
		p = p[:room]
	}
	n, err := l.r.Read(p)
	l.read += int64(n)
	if l.read > l.limit {
		return n - int(l.read-l.limit), l.tooLarge()
	}
	return n, err
}

func (l *decodedSizeLimiter) tooLarge() error {
	return fmt.Errorf("%w: decompressed content exceeds limit of %d bytes", ErrSourceTooLarge, l.limit)
}

// decompressingReader closes both the decoder and the underlying file.
type decompressingReader struct {
	io.Reader
	closeFn func() error
}

func (r *decompressingReader) Close() error {
	return r.closeFn()
}
