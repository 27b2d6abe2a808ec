package storage

import (
	"context"
	"io"
)

// ObjectInfo describes a stored object.
type ObjectInfo struct {
	Name string
	Size int64
}

// Store abstracts durable byte storage under a flat namespace of
// generated unique names.
type Store interface {
	// Put writes the full stream under name.
	Put(ctx context.Context, name string, reader io.Reader, size int64) error
	// Open returns the stored bytes for name.
	Open(ctx context.Context, name string) (io.ReadCloser, ObjectInfo, error)
	// Remove deletes the stored bytes for name.
	Remove(ctx context.Context, name string) error
}
