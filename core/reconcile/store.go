package reconcile

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"

	"github.com/mvqn/ucrm-plugin-xero/core/storage"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/osfs"
	"github.com/go-git/go-billy/v5/util"
	"github.com/minio/minio-go/v7"
)

// MapStore persists the correlation map between runs.
type MapStore interface {
	// Load returns the persisted map, or an empty map if none exists yet.
	Load(ctx context.Context) (Map, error)
	// Save replaces the persisted map with m as a single unit.
	Save(ctx context.Context, m Map) error
	// Location identifies where the map lives. Used as the cache key.
	Location() string
}

// EncodeMap renders m the way it is persisted: pretty-printed JSON with a
// four-space indent and a trailing newline.
func EncodeMap(m Map) ([]byte, error) {
	if m == nil {
		m = Map{}
	}
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetIndent("", "    ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(m); err != nil {
		return nil, fmt.Errorf("encode correlation map: %w", err)
	}
	return buf.Bytes(), nil
}

// DecodeMap parses a persisted map. Numbers are kept as json.Number. Empty
// input yields an empty map, and so does an empty JSON array, which is how
// the PHP plugin wrote a map without entries.
func DecodeMap(data []byte) (Map, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return Map{}, nil
	}
	if trimmed[0] == '[' {
		var list []json.RawMessage
		if err := json.Unmarshal(trimmed, &list); err != nil {
			return nil, fmt.Errorf("decode correlation map: %w", err)
		}
		if len(list) > 0 {
			return nil, fmt.Errorf("decode correlation map: expected an object, got an array of %d elements", len(list))
		}
		return Map{}, nil
	}
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var m Map
	if err := dec.Decode(&m); err != nil {
		return nil, fmt.Errorf("decode correlation map: %w", err)
	}
	if m == nil {
		m = Map{}
	}
	for name, entry := range m {
		if entry == nil {
			m[name] = Entry{}
		}
	}
	return m, nil
}

// FileStore keeps the map as a JSON file on a billy filesystem.
type FileStore struct {
	fs       billy.Filesystem
	filename string
	location string
}

// NewFileStore creates a store for filename inside fs.
func NewFileStore(fs billy.Filesystem, filename string) *FileStore {
	return &FileStore{
		fs:       fs,
		filename: filename,
		location: fs.Join(fs.Root(), filename),
	}
}

// NewOSFileStore creates a store for a file on local disk.
func NewOSFileStore(filename string) (*FileStore, error) {
	abs, err := filepath.Abs(filename)
	if err != nil {
		return nil, fmt.Errorf("resolve map path %q: %w", filename, err)
	}
	store := NewFileStore(osfs.New(filepath.Dir(abs)), filepath.Base(abs))
	store.location = abs
	return store, nil
}

func (s *FileStore) Location() string {
	return s.location
}

func (s *FileStore) Load(_ context.Context) (Map, error) {
	data, err := util.ReadFile(s.fs, s.filename)
	if errors.Is(err, os.ErrNotExist) {
		return Map{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", s.location, err)
	}
	return DecodeMap(data)
}

// Save writes the map to a temporary file next to the target and renames it
// into place, so readers never observe a partial file.
func (s *FileStore) Save(_ context.Context, m Map) error {
	data, err := EncodeMap(m)
	if err != nil {
		return err
	}

	dir := path.Dir(s.filename)
	if err := s.fs.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create directory for %s: %w", s.location, err)
	}

	tmp, err := util.TempFile(s.fs, dir, ".map-")
	if err != nil {
		return fmt.Errorf("create temp file for %s: %w", s.location, err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = s.fs.Remove(tmpName)
		return fmt.Errorf("write %s: %w", s.location, err)
	}
	if err := tmp.Close(); err != nil {
		_ = s.fs.Remove(tmpName)
		return fmt.Errorf("write %s: %w", s.location, err)
	}
	if err := s.fs.Rename(tmpName, s.filename); err != nil {
		_ = s.fs.Remove(tmpName)
		return fmt.Errorf("replace %s: %w", s.location, err)
	}
	return nil
}

// ObjectStore keeps the map as a JSON object in a bucket.
type ObjectStore struct {
	client storage.Client
	bucket string
	key    string
}

// NewObjectStore creates a store for bucket/key.
func NewObjectStore(client storage.Client, bucket, key string) *ObjectStore {
	return &ObjectStore{client: client, bucket: bucket, key: key}
}

func (s *ObjectStore) Location() string {
	return "s3://" + s.bucket + "/" + s.key
}

func (s *ObjectStore) Load(ctx context.Context) (Map, error) {
	obj, err := s.client.GetObject(ctx, s.bucket, s.key, minio.GetObjectOptions{})
	if err != nil {
		if storage.IsNotFound(err) {
			return Map{}, nil
		}
		return nil, fmt.Errorf("get %s: %w", s.Location(), err)
	}
	defer obj.Close()

	// minio reports a missing object on first read, not on GetObject.
	data, err := io.ReadAll(obj)
	if err != nil {
		if storage.IsNotFound(err) {
			return Map{}, nil
		}
		return nil, fmt.Errorf("read %s: %w", s.Location(), err)
	}
	return DecodeMap(data)
}

func (s *ObjectStore) Save(ctx context.Context, m Map) error {
	data, err := EncodeMap(m)
	if err != nil {
		return err
	}

	exists, err := s.client.BucketExists(ctx, s.bucket)
	if err != nil {
		return fmt.Errorf("check bucket %s: %w", s.bucket, err)
	}
	if !exists {
		if err := s.client.MakeBucket(ctx, s.bucket, minio.MakeBucketOptions{}); err != nil {
			return fmt.Errorf("create bucket %s: %w", s.bucket, err)
		}
	}

	_, err = s.client.PutObject(ctx, s.bucket, s.key, bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{
		ContentType: "application/json",
	})
	if err != nil {
		return fmt.Errorf("put %s: %w", s.Location(), err)
	}
	return nil
}
