package storage

import (
	"bytes"
	"context"
	"io"
	"sync"

	"github.com/pkg/errors"
)

// Object is a stored file.
type Object struct {
	ContentType string
	Data        []byte
}

// MemoryStore keeps proofs in a map. Used in development and tests.
type MemoryStore struct {
	mu         sync.RWMutex
	objects    map[string]Object
	bucket     string
	publicBase string
}

func NewMemoryStore(publicBase, bucket string) *MemoryStore {
	return &MemoryStore{objects: map[string]Object{}, bucket: bucket, publicBase: publicBase}
}

func (m *MemoryStore) Put(ctx context.Context, path, contentType string, body io.Reader, _ int64) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	var buf bytes.Buffer
	if _, err := io.Copy(&buf, body); err != nil {
		return errors.Wrapf(err, "read %s", path)
	}
	m.mu.Lock()
	m.objects[path] = Object{ContentType: contentType, Data: buf.Bytes()}
	m.mu.Unlock()
	return nil
}

// Get returns the object stored at path.
func (m *MemoryStore) Get(path string) (Object, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	o, ok := m.objects[path]
	return o, ok
}

func (m *MemoryStore) URL(path string) string {
	return publicURL(m.publicBase, m.bucket, path)
}
