package reconcile

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/mvqn/ucrm-plugin-xero/core/storage"
)

const (
	BackendFile = "file"
	BackendS3   = "s3"
)

// Config holds configuration for correlation map persistence.
type Config struct {
	// DataDir is the directory holding map files for the file backend.
	DataDir string `mapstructure:"data_dir" default:"data"`
	// Backend selects where maps are persisted (file, s3).
	Backend string `mapstructure:"backend" default:"file"`
	// Prefix is the object key prefix for the s3 backend.
	Prefix string `mapstructure:"prefix" default:"maps"`
	// CacheTTLSeconds is how long the HTTP read path may reuse a loaded map.
	CacheTTLSeconds int `mapstructure:"cache_ttl_seconds" default:"30"`
	// NameFormat orders residential client names (first_last, last_first).
	NameFormat string `mapstructure:"name_format" default:"first_last"`
}

// CacheTTL returns CacheTTLSeconds as a duration.
func (c Config) CacheTTL() time.Duration {
	if c.CacheTTLSeconds <= 0 {
		return 0
	}
	return time.Duration(c.CacheTTLSeconds) * time.Second
}

// OpenStore returns the map store for kind (e.g. "clients"). client and
// bucket are only used by the s3 backend.
func (c Config) OpenStore(kind string, client storage.Client, bucket string) (MapStore, error) {
	filename := kind + ".json"

	switch c.Backend {
	case BackendFile, "":
		return NewOSFileStore(filepath.Join(c.DataDir, filename))
	case BackendS3:
		if client == nil {
			return nil, fmt.Errorf("backend %q requires a storage client", c.Backend)
		}
		key := filename
		if c.Prefix != "" {
			key = c.Prefix + "/" + filename
		}
		return NewObjectStore(client, bucket, key), nil
	default:
		return nil, fmt.Errorf("unknown map backend %q", c.Backend)
	}
}
