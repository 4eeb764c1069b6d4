package reconcile

import (
	"context"
	"encoding/json"
	"io"
	"strings"
	"testing"

	"github.com/mvqn/ucrm-plugin-xero/core/storage/mocks"

	"github.com/go-git/go-billy/v5/memfs"
	"github.com/go-git/go-billy/v5/util"
	"github.com/minio/minio-go/v7"
	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func sampleMap() Map {
	return Map{
		"Acme Corp":  Entry{"ucrmId": json.Number("7"), "xeroId": "G-1"},
		"Jane & Doe": Entry{"ucrmId": json.Number("12")},
	}
}

func TestEncodeMap_Golden(t *testing.T) {
	data, err := EncodeMap(sampleMap())
	require.NoError(t, err)

	g := goldie.New(t)
	g.Assert(t, "map", data)
}

func TestDecodeMap(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		expect    Map
		expectErr bool
	}{
		{name: "empty input", input: "", expect: Map{}},
		{name: "null", input: "null", expect: Map{}},
		{name: "numbers stay numbers", input: `{"A":{"ucrmId":7}}`, expect: Map{"A": Entry{"ucrmId": json.Number("7")}}},
		{name: "null entry", input: `{"A":null}`, expect: Map{"A": Entry{}}},
		{name: "corrupt", input: `{"A":`, expectErr: true},
		{name: "wrong shape", input: `[1,2]`, expectErr: true},
		{name: "empty array", input: "[]\n", expect: Map{}},
		{name: "empty array with spaces", input: "[ ]", expect: Map{}},
		{name: "broken array", input: "[", expectErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := DecodeMap([]byte(tt.input))
			if tt.expectErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expect, m)
		})
	}
}

func TestFileStore(t *testing.T) {
	ctx := context.Background()

	t.Run("missing file loads empty", func(t *testing.T) {
		store := NewFileStore(memfs.New(), "clients.json")
		m, err := store.Load(ctx)
		require.NoError(t, err)
		assert.Empty(t, m)
		assert.NotNil(t, m)
	})

	t.Run("save creates directory and round trips", func(t *testing.T) {
		fs := memfs.New()
		store := NewFileStore(fs, "maps/clients.json")

		require.NoError(t, store.Save(ctx, sampleMap()))

		m, err := store.Load(ctx)
		require.NoError(t, err)
		assert.Equal(t, sampleMap(), m)

		entries, err := fs.ReadDir("maps")
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, "clients.json", entries[0].Name())
	})

	t.Run("save replaces previous content", func(t *testing.T) {
		fs := memfs.New()
		store := NewFileStore(fs, "clients.json")

		require.NoError(t, store.Save(ctx, sampleMap()))
		require.NoError(t, store.Save(ctx, Map{"Only": Entry{"xeroId": "x"}}))

		data, err := util.ReadFile(fs, "clients.json")
		require.NoError(t, err)
		assert.Equal(t, "{\n    \"Only\": {\n        \"xeroId\": \"x\"\n    }\n}\n", string(data))
	})

	t.Run("location", func(t *testing.T) {
		store := NewFileStore(memfs.New(), "maps/clients.json")
		assert.True(t, strings.HasSuffix(store.Location(), "maps/clients.json"))
	})
}

func TestNewOSFileStore(t *testing.T) {
	dir := t.TempDir()
	store, err := NewOSFileStore(dir + "/nested/clients.json")
	require.NoError(t, err)
	assert.Equal(t, dir+"/nested/clients.json", store.Location())

	require.NoError(t, store.Save(context.Background(), sampleMap()))

	m, err := store.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, sampleMap(), m)
}

func TestObjectStore_Load(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name      string
		setup     func(*mocks.Client)
		expect    Map
		expectErr bool
	}{
		{
			name: "missing object",
			setup: func(c *mocks.Client) {
				c.On("GetObject", ctx, "bucket", "maps/clients.json", mock.Anything).
					Return(nil, minio.ErrorResponse{Code: "NoSuchKey"})
			},
			expect: Map{},
		},
		{
			name: "missing on read",
			setup: func(c *mocks.Client) {
				c.On("GetObject", ctx, "bucket", "maps/clients.json", mock.Anything).
					Return(io.NopCloser(errReader{minio.ErrorResponse{Code: "NoSuchKey"}}), nil)
			},
			expect: Map{},
		},
		{
			name: "existing object",
			setup: func(c *mocks.Client) {
				c.On("GetObject", ctx, "bucket", "maps/clients.json", mock.Anything).
					Return(io.NopCloser(strings.NewReader(`{"A":{"ucrmId":1}}`)), nil)
			},
			expect: Map{"A": Entry{"ucrmId": json.Number("1")}},
		},
		{
			name: "access denied",
			setup: func(c *mocks.Client) {
				c.On("GetObject", ctx, "bucket", "maps/clients.json", mock.Anything).
					Return(nil, minio.ErrorResponse{Code: "AccessDenied"})
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := new(mocks.Client)
			tt.setup(client)
			store := NewObjectStore(client, "bucket", "maps/clients.json")

			m, err := store.Load(ctx)
			if tt.expectErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expect, m)
			client.AssertExpectations(t)
		})
	}
}

func TestObjectStore_Save(t *testing.T) {
	ctx := context.Background()

	t.Run("creates missing bucket", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("BucketExists", ctx, "bucket").Return(false, nil)
		client.On("MakeBucket", ctx, "bucket", mock.Anything).Return(nil)
		client.On("PutObject", ctx, "bucket", "clients.json", mock.Anything, mock.MatchedBy(func(opts minio.PutObjectOptions) bool {
			return opts.ContentType == "application/json"
		})).Return(minio.UploadInfo{}, nil)

		store := NewObjectStore(client, "bucket", "clients.json")
		require.NoError(t, store.Save(ctx, sampleMap()))

		expected, err := EncodeMap(sampleMap())
		require.NoError(t, err)
		require.Len(t, client.Uploaded, 1)
		assert.Equal(t, expected, client.Uploaded[0])
		client.AssertExpectations(t)
	})

	t.Run("put failure", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("BucketExists", ctx, "bucket").Return(true, nil)
		client.On("PutObject", ctx, "bucket", "clients.json", mock.Anything, mock.Anything).Return(minio.UploadInfo{}, errBoom)

		store := NewObjectStore(client, "bucket", "clients.json")
		err := store.Save(ctx, sampleMap())
		assert.ErrorIs(t, err, errBoom)
		client.AssertNotCalled(t, "MakeBucket", mock.Anything, mock.Anything, mock.Anything)
	})

	assert.Equal(t, "s3://bucket/clients.json", NewObjectStore(nil, "bucket", "clients.json").Location())
}

type errReader struct{ err error }

func (r errReader) Read([]byte) (int, error) { return 0, r.err }
