package service

import (
	"archive/zip"
	"context"
	"fmt"
	"io"
	"path"
	"time"

	"s3gateway/internal/model"
	"s3gateway/internal/storage"
)

// ObjectService defines the gateway operations over the object storage
// backend. Keys produced by Upload are the sole identifier for every
// subsequent operation.
type ObjectService interface {
	// Upload streams the payload to the backend under a freshly built key
	// and returns that key.
	Upload(ctx context.Context, r io.Reader, orgCode, originalFilename, contentType string, size int64) (string, error)

	// Download opens a read stream for a key. The caller owns the returned
	// reader and must close it on every path.
	Download(ctx context.Context, key string) (io.ReadCloser, model.ObjectEntry, error)

	// DownloadZip writes a zip archive of the given keys to dst, one entry
	// per key named by the key's final path segment, in input order. The
	// first failing object aborts the whole archive.
	DownloadZip(ctx context.Context, keys []string, dst io.Writer) error

	// Presign requests a time-bounded signed retrieval URL from the backend.
	// Expiry is enforced by the backend, not tracked here.
	Presign(ctx context.Context, key string) (string, error)

	// Delete removes an object by key.
	Delete(ctx context.Context, key string) error

	// Info performs a head-only metadata query for a single key.
	Info(ctx context.Context, key string) (model.ObjectEntry, error)

	// List returns every object under the prefix derived from orgCode and
	// dateString, aggregated across all backend pages.
	List(ctx context.Context, orgCode, dateString string) ([]model.ObjectEntry, error)
}

// objectService is a concrete implementation of ObjectService.
type objectService struct {
	store         storage.Storage
	presignExpiry time.Duration
	listPageSize  int
}

// NewObjectService constructs a new ObjectService.
func NewObjectService(store storage.Storage, presignExpiry time.Duration, listPageSize int) ObjectService {
	return &objectService{
		store:         store,
		presignExpiry: presignExpiry,
		listPageSize:  listPageSize,
	}
}

func (s *objectService) Upload(ctx context.Context, r io.Reader, orgCode, originalFilename, contentType string, size int64) (string, error) {
	if r == nil {
		return "", fmt.Errorf("%w: payload is required", ErrInvalidRequest)
	}
	key, err := buildObjectKey(orgCode, originalFilename)
	if err != nil {
		return "", err
	}

	// Stream straight to the backend; no retry at this layer.
	if _, err := s.store.Put(ctx, key, r, storage.PutObjectOptions{
		Size:        size,
		ContentType: contentType,
	}); err != nil {
		return "", s.failure("upload", key, err)
	}
	return key, nil
}

func (s *objectService) Download(ctx context.Context, key string) (io.ReadCloser, model.ObjectEntry, error) {
	if key == "" {
		return nil, model.ObjectEntry{}, fmt.Errorf("%w: file key is required", ErrInvalidRequest)
	}
	rc, info, err := s.store.Get(ctx, key)
	if err != nil {
		return nil, model.ObjectEntry{}, s.failure("download", key, err)
	}
	return rc, entryFromInfo(info), nil
}

func (s *objectService) DownloadZip(ctx context.Context, keys []string, dst io.Writer) error {
	zw := zip.NewWriter(dst)
	for _, key := range keys {
		if err := s.writeZipEntry(ctx, zw, key); err != nil {
			// The stream already carries partial archive bytes; closing the
			// writer here would only append a misleading central directory.
			return err
		}
	}
	if err := zw.Close(); err != nil {
		return s.failure("download-zip", "", err)
	}
	return nil
}

// writeZipEntry copies one object into the archive. The backend reader is
// closed before the next key is processed, whether the copy succeeded or not.
func (s *objectService) writeZipEntry(ctx context.Context, zw *zip.Writer, key string) error {
	rc, _, err := s.store.Get(ctx, key)
	if err != nil {
		return s.failure("download-zip", key, err)
	}
	defer rc.Close()

	w, err := zw.Create(path.Base(key))
	if err != nil {
		return s.failure("download-zip", key, err)
	}
	if _, err := io.Copy(w, rc); err != nil {
		return s.failure("download-zip", key, err)
	}
	return nil
}

func (s *objectService) Presign(ctx context.Context, key string) (string, error) {
	if key == "" {
		return "", fmt.Errorf("%w: file key is required", ErrInvalidRequest)
	}
	u, err := s.store.PresignGet(ctx, key, s.presignExpiry)
	if err != nil {
		return "", s.failure("presign", key, err)
	}
	return u, nil
}

func (s *objectService) Delete(ctx context.Context, key string) error {
	if key == "" {
		return fmt.Errorf("%w: file key is required", ErrInvalidRequest)
	}
	if err := s.store.Delete(ctx, key); err != nil {
		return s.failure("delete", key, err)
	}
	return nil
}

func (s *objectService) Info(ctx context.Context, key string) (model.ObjectEntry, error) {
	if key == "" {
		return model.ObjectEntry{}, fmt.Errorf("%w: file key is required", ErrInvalidRequest)
	}
	info, err := s.store.Stat(ctx, key)
	if err != nil {
		return model.ObjectEntry{}, s.failure("info", key, err)
	}
	return entryFromInfo(info), nil
}

// List drives the backend's paginated enumeration to completion and returns
// one materialized slice in the backend's native key order. Any page error
// discards partial results and fails the whole call. The full result is held
// in memory; very large prefixes pay that cost.
func (s *objectService) List(ctx context.Context, orgCode, dateString string) ([]model.ObjectEntry, error) {
	prefix := buildListPrefix(orgCode, dateString)

	entries := make([]model.ObjectEntry, 0)
	token := ""
	for {
		page, err := s.store.ListPage(ctx, prefix, token, s.listPageSize)
		if err != nil {
			return nil, s.failure("list", prefix, err)
		}
		for _, it := range page.Items {
			entries = append(entries, entryFromInfo(it))
		}
		if !page.Truncated {
			return entries, nil
		}
		token = page.NextToken
	}
}

// failure logs the underlying backend error and wraps it as ErrStorageFailed.
func (s *objectService) failure(op, key string, err error) error {
	logFailure(op, key, err)
	return fmt.Errorf("%s %q: %w: %s", op, key, ErrStorageFailed, err)
}

func entryFromInfo(info storage.ObjectInfo) model.ObjectEntry {
	return model.ObjectEntry{
		FileKey:      info.Key,
		Size:         info.Size,
		ContentType:  info.ContentType,
		ETag:         info.ETag,
		LastModified: info.LastModified,
	}
}
