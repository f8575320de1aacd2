package blobstore

import (
	"context"
	"os"
	"path/filepath"
	"sync"

	"github.com/pkg/errors"
)

// File stores the blob in a single local file. Writes go to a temporary file
// in the same directory which is then renamed over the target, so readers
// see either the old or the new content.
type File struct {
	mu   sync.Mutex
	path string
}

func NewFile(path string) *File {
	return &File{path: path}
}

func (f *File) Path() string {
	return f.path
}

func (f *File) Read(ctx context.Context) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(f.path)
	if os.IsNotExist(err) {
		return nil, errors.Wrapf(ErrNotFound, "file %s", f.path)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "blobstore: read %s", f.path)
	}
	return data, nil
}

func (f *File) Write(ctx context.Context, data []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	f.mu.Lock()
	defer f.mu.Unlock()

	dir := filepath.Dir(f.path)
	tmp, err := os.CreateTemp(dir, filepath.Base(f.path)+".tmp-*")
	if err != nil {
		return errors.Wrapf(err, "blobstore: create temp file in %s", dir)
	}
	tmpName := tmp.Name()
	cleanup := func() { _ = os.Remove(tmpName) }

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		cleanup()
		return errors.Wrap(err, "blobstore: write temp file")
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		cleanup()
		return errors.Wrap(err, "blobstore: sync temp file")
	}
	if err := tmp.Close(); err != nil {
		cleanup()
		return errors.Wrap(err, "blobstore: close temp file")
	}
	if err := os.Rename(tmpName, f.path); err != nil {
		cleanup()
		return errors.Wrapf(err, "blobstore: replace %s", f.path)
	}
	return nil
}
