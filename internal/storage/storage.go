package storage

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// DefaultReadLimit matches the buffer the settings loader has always used.
const DefaultReadLimit = 512

var (
	ErrInvalidLimit = errors.New("read limit must be positive")
	ErrTooLarge     = errors.New("data exceeds read limit")
)

// File is a small document on disk that is always read through a bounded
// buffer and replaced atomically on write.
type File struct {
	path  string
	limit int
}

func New(path string, limit int) (*File, error) {
	if limit <= 0 {
		return nil, fmt.Errorf("%w, got: %d", ErrInvalidLimit, limit)
	}
	return &File{path: path, limit: limit}, nil
}

func (f *File) Path() string {
	return f.path
}

func (f *File) Limit() int {
	return f.limit
}

// EnsureDir creates the parent directory if it is missing.
func (f *File) EnsureDir() error {
	dir := filepath.Dir(f.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create directory %s: %w", dir, err)
	}
	return nil
}

// Exists reports whether the file is present.
func (f *File) Exists() bool {
	_, err := os.Stat(f.path)
	return err == nil
}

// Read returns at most Limit bytes from the start of the file. Longer files
// are silently truncated. A missing file yields an error matching
// fs.ErrNotExist.
func (f *File) Read() ([]byte, error) {
	file, err := os.Open(f.path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", f.path, err)
	}
	defer file.Close()

	buf := make([]byte, f.limit)
	n, err := io.ReadFull(file, buf)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("read %s: %w", f.path, err)
	}

	return buf[:n], nil
}

// Write replaces the file contents. Data goes to a uniquely named sibling
// first and is renamed over the target, so readers never see a partial
// document. Data longer than Limit is refused, since Read could never return
// it whole.
func (f *File) Write(data []byte) error {
	if len(data) > f.limit {
		return fmt.Errorf("write %s: %w: %d bytes, limit %d", f.path, ErrTooLarge, len(data), f.limit)
	}
	if err := f.EnsureDir(); err != nil {
		return err
	}

	tmp := filepath.Join(filepath.Dir(f.path), fmt.Sprintf(".%s.%s.tmp", filepath.Base(f.path), uuid.NewString()))
	if err := writeSynced(tmp, data); err != nil {
		_ = os.Remove(tmp)
		return err
	}

	if err := os.Rename(tmp, f.path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("replace %s: %w", f.path, err)
	}

	return nil
}

func writeSynced(path string, data []byte) error {
	file, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}

	if _, err := file.Write(data); err != nil {
		file.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err := file.Sync(); err != nil {
		file.Close()
		return fmt.Errorf("sync %s: %w", path, err)
	}
	return file.Close()
}

// IsNotExist reports whether err means the file is missing.
func IsNotExist(err error) bool {
	return errors.Is(err, fs.ErrNotExist)
}
