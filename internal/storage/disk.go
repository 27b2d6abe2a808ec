package storage

import (
	"context"
	"io"
	"os"
	"path/filepath"
)

// DiskStore keeps uploads in a single flat directory.
type DiskStore struct {
	baseDir string
}

// NewDiskStore creates the upload directory if needed.
func NewDiskStore(baseDir string) (*DiskStore, error) {
	if err := os.MkdirAll(baseDir, 0o755); err != nil {
		return nil, err
	}
	return &DiskStore{baseDir: baseDir}, nil
}

// Path returns the on-disk path for a stored name.
func (s *DiskStore) Path(name string) string {
	return filepath.Join(s.baseDir, filepath.Base(name))
}

// Put writes the stream to disk.
func (s *DiskStore) Put(ctx context.Context, name string, reader io.Reader, size int64) error {
	dst, err := os.Create(s.Path(name))
	if err != nil {
		return err
	}
	if _, err := io.Copy(dst, reader); err != nil {
		dst.Close()
		_ = os.Remove(s.Path(name))
		return err
	}
	return dst.Close()
}

// Open returns the stored file.
func (s *DiskStore) Open(ctx context.Context, name string) (io.ReadCloser, ObjectInfo, error) {
	f, err := os.Open(s.Path(name))
	if err != nil {
		return nil, ObjectInfo{}, err
	}
	stat, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, ObjectInfo{}, err
	}
	return f, ObjectInfo{Name: name, Size: stat.Size()}, nil
}

// Remove deletes the stored file.
func (s *DiskStore) Remove(ctx context.Context, name string) error {
	return os.Remove(s.Path(name))
}
