package storage

import (
	"context"
	"fmt"
	"io"
	"strings"

	"gocloud.dev/blob"
	_ "gocloud.dev/blob/fileblob"
	_ "gocloud.dev/blob/memblob"
)

// BlobStore writes uploaded images to a gocloud bucket (file://, mem://)
type BlobStore struct {
	bucket *blob.Bucket
}

// Open opens the bucket addressed by url, for example
// "file:///var/lib/showcase/uploads?create_dir=true" or "mem://"
func Open(ctx context.Context, url string) (*BlobStore, error) {
	if url == "" {
		return nil, fmt.Errorf("storage url is empty")
	}
	if strings.HasPrefix(url, "file://") && !strings.Contains(url, "create_dir") {
		sep := "?"
		if strings.Contains(url, "?") {
			sep = "&"
		}
		url += sep + "create_dir=true"
	}
	bucket, err := blob.OpenBucket(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("failed to open bucket: %w", err)
	}
	return &BlobStore{bucket: bucket}, nil
}

// Put stores data under key
func (s *BlobStore) Put(ctx context.Context, key string, data []byte, contentType string) error {
	key = sanitizeKey(key)
	w, err := s.bucket.NewWriter(ctx, key, &blob.WriterOptions{ContentType: contentType})
	if err != nil {
		return fmt.Errorf("failed to open writer for %s: %w", key, err)
	}
	if _, err := w.Write(data); err != nil {
		_ = w.Close()
		return fmt.Errorf("failed to write %s: %w", key, err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("failed to commit %s: %w", key, err)
	}
	return nil
}

// Open returns a reader for key along with its content type
func (s *BlobStore) Open(ctx context.Context, key string) (io.ReadCloser, string, error) {
	r, err := s.bucket.NewReader(ctx, sanitizeKey(key), nil)
	if err != nil {
		return nil, "", err
	}
	return r, r.ContentType(), nil
}

// Exists reports whether key is present
func (s *BlobStore) Exists(ctx context.Context, key string) (bool, error) {
	return s.bucket.Exists(ctx, sanitizeKey(key))
}

// Close releases the bucket
func (s *BlobStore) Close() error {
	return s.bucket.Close()
}

func sanitizeKey(key string) string {
	key = strings.TrimLeft(key, "/")
	parts := strings.Split(key, "/")
	clean := parts[:0]
	for _, p := range parts {
		if p == "" || p == "." || p == ".." {
			continue
		}
		clean = append(clean, p)
	}
	return strings.Join(clean, "/")
}
