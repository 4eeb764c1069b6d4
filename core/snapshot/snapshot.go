package snapshot

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"path"
	"path/filepath"
	"strings"

	"github.com/mvqn/ucrm-plugin-xero/core/storage"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/osfs"
	"github.com/go-git/go-billy/v5/util"
	"github.com/minio/minio-go/v7"
	"gopkg.in/yaml.v3"
)

// ErrUnsupportedFormat is returned for snapshot files that are neither JSON nor YAML.
var ErrUnsupportedFormat = errors.New("unsupported snapshot format")

const objectScheme = "s3://"

// Loader reads record snapshots from a filesystem or an object store.
type Loader struct {
	fs     billy.Filesystem
	client storage.Client

	// absolute resolves relative paths against the working directory.
	absolute bool
}

// NewLoader creates a loader. client may be nil when no s3:// references are used.
func NewLoader(fs billy.Filesystem, client storage.Client) *Loader {
	return &Loader{fs: fs, client: client}
}

// NewOSLoader creates a loader rooted at the filesystem root, so absolute
// and working-directory relative paths both resolve.
func NewOSLoader(client storage.Client) *Loader {
	l := NewLoader(osfs.New("/"), client)
	l.absolute = true
	return l
}

// Read returns the raw bytes behind ref, either a path or s3://bucket/key.
func (l *Loader) Read(ctx context.Context, ref string) ([]byte, error) {
	if strings.HasPrefix(ref, objectScheme) {
		return l.readObject(ctx, ref)
	}
	if l.fs == nil {
		return nil, fmt.Errorf("no filesystem to read %s", ref)
	}
	name := ref
	if l.absolute {
		abs, err := filepath.Abs(ref)
		if err != nil {
			return nil, fmt.Errorf("resolve snapshot %s: %w", ref, err)
		}
		name = abs
	}
	data, err := util.ReadFile(l.fs, name)
	if err != nil {
		return nil, fmt.Errorf("read snapshot %s: %w", ref, err)
	}
	return data, nil
}

func (l *Loader) readObject(ctx context.Context, ref string) ([]byte, error) {
	if l.client == nil {
		return nil, fmt.Errorf("no storage client to read %s", ref)
	}
	bucket, key, ok := strings.Cut(strings.TrimPrefix(ref, objectScheme), "/")
	if !ok || bucket == "" || key == "" {
		return nil, fmt.Errorf("invalid object reference %q", ref)
	}

	obj, err := l.client.GetObject(ctx, bucket, key, minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("get snapshot %s: %w", ref, err)
	}
	defer obj.Close()

	data, err := io.ReadAll(obj)
	if err != nil {
		return nil, fmt.Errorf("read snapshot %s: %w", ref, err)
	}
	return data, nil
}

// Load reads ref and decodes it as a list of T. The format follows the file
// extension: .json, .yaml or .yml. YAML keys map onto T's json tags.
func Load[T any](ctx context.Context, l *Loader, ref string) ([]T, error) {
	data, err := l.Read(ctx, ref)
	if err != nil {
		return nil, err
	}
	return Decode[T](ref, data)
}

// Decode parses data according to the extension of name.
func Decode[T any](name string, data []byte) ([]T, error) {
	switch strings.ToLower(path.Ext(name)) {
	case ".json":
	case ".yaml", ".yml":
		var generic any
		if err := yaml.Unmarshal(data, &generic); err != nil {
			return nil, fmt.Errorf("decode %s: %w", name, err)
		}
		converted, err := json.Marshal(generic)
		if err != nil {
			return nil, fmt.Errorf("convert %s: %w", name, err)
		}
		data = converted
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, name)
	}

	records := []T{}
	if len(bytes.TrimSpace(data)) == 0 || bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		return records, nil
	}
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("decode %s: %w", name, err)
	}
	return records, nil
}
