package service

import (
	"archive/zip"
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"s3gateway/internal/storage"
	storageMocks "s3gateway/internal/storage/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newObjectService(store storage.Storage) ObjectService {
	return NewObjectService(store, 10*time.Minute, 1000)
}

func TestObjectServiceUpload(t *testing.T) {
	t.Run("success returns generated key", func(t *testing.T) {
		store := new(storageMocks.MockStorage)
		svc := newObjectService(store)

		store.On("Put", mock.Anything, mock.MatchedBy(func(key string) bool {
			return strings.HasPrefix(key, "ORG1/") && strings.HasSuffix(key, "/data.bin")
		}), mock.Anything, storage.PutObjectOptions{Size: 3, ContentType: "application/octet-stream"}).
			Return(storage.ObjectInfo{}, nil)

		key, err := svc.Upload(context.Background(), strings.NewReader("abc"),
			"ORG1", "data.bin", "application/octet-stream", 3)
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(key, "ORG1/"))
		store.AssertExpectations(t)
	})

	t.Run("nil reader", func(t *testing.T) {
		store := new(storageMocks.MockStorage)
		svc := newObjectService(store)

		_, err := svc.Upload(context.Background(), nil, "ORG1", "a.txt", "", 0)
		assert.ErrorIs(t, err, ErrInvalidRequest)
		store.AssertNotCalled(t, "Put")
	})

	t.Run("blank org code", func(t *testing.T) {
		store := new(storageMocks.MockStorage)
		svc := newObjectService(store)

		_, err := svc.Upload(context.Background(), strings.NewReader("x"), "", "a.txt", "", 1)
		assert.ErrorIs(t, err, ErrInvalidRequest)
	})

	t.Run("backend failure wrapped", func(t *testing.T) {
		store := new(storageMocks.MockStorage)
		svc := newObjectService(store)

		store.On("Put", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
			Return(storage.ObjectInfo{}, errors.New("connection reset"))

		_, err := svc.Upload(context.Background(), strings.NewReader("x"), "ORG1", "a.txt", "", 1)
		assert.ErrorIs(t, err, ErrStorageFailed)
		assert.Contains(t, err.Error(), "connection reset")
	})
}

func TestObjectServiceDownload(t *testing.T) {
	t.Run("success returns stream and metadata", func(t *testing.T) {
		store := new(storageMocks.MockStorage)
		svc := newObjectService(store)

		info := storage.ObjectInfo{
			Key:         "ORG1/2025/09/01/u/a.txt",
			Size:        5,
			ContentType: "text/plain",
			ETag:        "e1",
		}
		store.On("Get", mock.Anything, info.Key).
			Return(io.NopCloser(strings.NewReader("hello")), info, nil)

		rc, entry, err := svc.Download(context.Background(), info.Key)
		require.NoError(t, err)
		defer rc.Close()

		assert.Equal(t, info.Key, entry.FileKey)
		assert.Equal(t, int64(5), entry.Size)
		assert.Equal(t, "text/plain", entry.ContentType)

		got, _ := io.ReadAll(rc)
		assert.Equal(t, "hello", string(got))
	})

	t.Run("blank key", func(t *testing.T) {
		store := new(storageMocks.MockStorage)
		svc := newObjectService(store)

		_, _, err := svc.Download(context.Background(), "")
		assert.ErrorIs(t, err, ErrInvalidRequest)
		store.AssertNotCalled(t, "Get")
	})

	t.Run("backend failure wrapped", func(t *testing.T) {
		store := new(storageMocks.MockStorage)
		svc := newObjectService(store)

		store.On("Get", mock.Anything, "missing").
			Return(nil, storage.ObjectInfo{}, errors.New("NoSuchKey"))

		_, _, err := svc.Download(context.Background(), "missing")
		assert.ErrorIs(t, err, ErrStorageFailed)
	})
}

func TestObjectServiceDownloadZip(t *testing.T) {
	t.Run("one entry per key with original bytes", func(t *testing.T) {
		store := new(storageMocks.MockStorage)
		svc := newObjectService(store)

		contents := map[string]string{
			"ORG1/2025/09/01/u1/first.txt":  "first content",
			"ORG1/2025/09/01/u2/second.txt": "second content",
			"ORG1/2025/09/01/u3/third.txt":  "third content",
		}
		keys := []string{
			"ORG1/2025/09/01/u1/first.txt",
			"ORG1/2025/09/01/u2/second.txt",
			"ORG1/2025/09/01/u3/third.txt",
		}
		for key, body := range contents {
			store.On("Get", mock.Anything, key).
				Return(io.NopCloser(strings.NewReader(body)), storage.ObjectInfo{Key: key}, nil).Once()
		}

		var buf bytes.Buffer
		require.NoError(t, svc.DownloadZip(context.Background(), keys, &buf))

		zr, err := zip.NewReader(bytes.NewReader(buf.Bytes()), int64(buf.Len()))
		require.NoError(t, err)
		require.Len(t, zr.File, 3)

		wantNames := []string{"first.txt", "second.txt", "third.txt"}
		wantBodies := []string{"first content", "second content", "third content"}
		for i, f := range zr.File {
			assert.Equal(t, wantNames[i], f.Name)
			rc, err := f.Open()
			require.NoError(t, err)
			got, _ := io.ReadAll(rc)
			rc.Close()
			assert.Equal(t, wantBodies[i], string(got))
		}
		store.AssertExpectations(t)
	})

	t.Run("first failing key aborts the archive", func(t *testing.T) {
		store := new(storageMocks.MockStorage)
		svc := newObjectService(store)

		store.On("Get", mock.Anything, "good").
			Return(io.NopCloser(strings.NewReader("ok")), storage.ObjectInfo{}, nil)
		store.On("Get", mock.Anything, "bad").
			Return(nil, storage.ObjectInfo{}, errors.New("NoSuchKey"))

		var buf bytes.Buffer
		err := svc.DownloadZip(context.Background(), []string{"good", "bad", "never"}, &buf)
		assert.ErrorIs(t, err, ErrStorageFailed)
		store.AssertNotCalled(t, "Get", mock.Anything, "never")
	})

	t.Run("empty key list yields valid empty archive", func(t *testing.T) {
		store := new(storageMocks.MockStorage)
		svc := newObjectService(store)

		var buf bytes.Buffer
		require.NoError(t, svc.DownloadZip(context.Background(), nil, &buf))

		zr, err := zip.NewReader(bytes.NewReader(buf.Bytes()), int64(buf.Len()))
		require.NoError(t, err)
		assert.Empty(t, zr.File)
	})
}

func TestObjectServicePresign(t *testing.T) {
	t.Run("passes configured expiry to backend", func(t *testing.T) {
		store := new(storageMocks.MockStorage)
		svc := NewObjectService(store, 10*time.Minute, 1000)

		store.On("PresignGet", mock.Anything, "k1", 10*time.Minute).
			Return("https://storage.example.com/k1?sig=abc", nil)

		u, err := svc.Presign(context.Background(), "k1")
		require.NoError(t, err)
		assert.Equal(t, "https://storage.example.com/k1?sig=abc", u)
		store.AssertExpectations(t)
	})

	t.Run("blank key", func(t *testing.T) {
		store := new(storageMocks.MockStorage)
		svc := newObjectService(store)

		_, err := svc.Presign(context.Background(), "")
		assert.ErrorIs(t, err, ErrInvalidRequest)
	})

	t.Run("backend failure wrapped", func(t *testing.T) {
		store := new(storageMocks.MockStorage)
		svc := newObjectService(store)

		store.On("PresignGet", mock.Anything, "k1", mock.Anything).
			Return("", errors.New("signing error"))

		_, err := svc.Presign(context.Background(), "k1")
		assert.ErrorIs(t, err, ErrStorageFailed)
	})
}

func TestObjectServiceDelete(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		store := new(storageMocks.MockStorage)
		svc := newObjectService(store)

		store.On("Delete", mock.Anything, "k1").Return(nil)
		assert.NoError(t, svc.Delete(context.Background(), "k1"))
	})

	t.Run("blank key", func(t *testing.T) {
		store := new(storageMocks.MockStorage)
		svc := newObjectService(store)

		assert.ErrorIs(t, svc.Delete(context.Background(), ""), ErrInvalidRequest)
	})

	t.Run("backend failure wrapped", func(t *testing.T) {
		store := new(storageMocks.MockStorage)
		svc := newObjectService(store)

		store.On("Delete", mock.Anything, "k1").Return(errors.New("timeout"))
		assert.ErrorIs(t, svc.Delete(context.Background(), "k1"), ErrStorageFailed)
	})
}

func TestObjectServiceInfo(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		store := new(storageMocks.MockStorage)
		svc := newObjectService(store)

		modified := time.Date(2025, 9, 1, 12, 0, 0, 0, time.UTC)
		store.On("Stat", mock.Anything, "k1").Return(storage.ObjectInfo{
			Key:          "k1",
			Size:         42,
			ContentType:  "application/pdf",
			ETag:         "e1",
			LastModified: modified,
		}, nil)

		entry, err := svc.Info(context.Background(), "k1")
		require.NoError(t, err)
		assert.Equal(t, "k1", entry.FileKey)
		assert.Equal(t, int64(42), entry.Size)
		assert.Equal(t, "application/pdf", entry.ContentType)
		assert.Equal(t, modified, entry.LastModified)
	})

	t.Run("blank key", func(t *testing.T) {
		store := new(storageMocks.MockStorage)
		svc := newObjectService(store)

		_, err := svc.Info(context.Background(), "")
		assert.ErrorIs(t, err, ErrInvalidRequest)
	})
}

func TestObjectServiceList(t *testing.T) {
	t.Run("aggregates all pages in order", func(t *testing.T) {
		store := new(storageMocks.MockStorage)
		svc := newObjectService(store)

		page := func(keys ...string) []storage.ObjectInfo {
			infos := make([]storage.ObjectInfo, 0, len(keys))
			for _, k := range keys {
				infos = append(infos, storage.ObjectInfo{Key: k, Size: 1})
			}
			return infos
		}

		store.On("ListPage", mock.Anything, "ORG1/2025/09/01/", "", 1000).
			Return(storage.ListPage{Items: page("a", "b"), NextToken: "b", Truncated: true}, nil).Once()
		store.On("ListPage", mock.Anything, "ORG1/2025/09/01/", "b", 1000).
			Return(storage.ListPage{Items: page("c", "d"), NextToken: "d", Truncated: true}, nil).Once()
		store.On("ListPage", mock.Anything, "ORG1/2025/09/01/", "d", 1000).
			Return(storage.ListPage{Items: page("e")}, nil).Once()

		entries, err := svc.List(context.Background(), "ORG1", "20250901")
		require.NoError(t, err)
		require.Len(t, entries, 5)
		for i, want := range []string{"a", "b", "c", "d", "e"} {
			assert.Equal(t, want, entries[i].FileKey)
		}
		store.AssertExpectations(t)
	})

	t.Run("empty prefix lists the whole bucket", func(t *testing.T) {
		store := new(storageMocks.MockStorage)
		svc := newObjectService(store)

		store.On("ListPage", mock.Anything, "", "", 1000).
			Return(storage.ListPage{}, nil)

		entries, err := svc.List(context.Background(), "", "20250901")
		require.NoError(t, err)
		assert.Empty(t, entries)
	})

	t.Run("mid-pagination failure discards partial results", func(t *testing.T) {
		store := new(storageMocks.MockStorage)
		svc := newObjectService(store)

		store.On("ListPage", mock.Anything, "ORG1/", "", 1000).
			Return(storage.ListPage{
				Items:     []storage.ObjectInfo{{Key: "a"}},
				NextToken: "a",
				Truncated: true,
			}, nil).Once()
		store.On("ListPage", mock.Anything, "ORG1/", "a", 1000).
			Return(storage.ListPage{}, errors.New("slow down")).Once()

		entries, err := svc.List(context.Background(), "ORG1", "")
		assert.ErrorIs(t, err, ErrStorageFailed)
		assert.Nil(t, entries)
	})
}
