package checks

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/mvqn/ucrm-plugin-xero/core/reconcile"

	"github.com/go-git/go-billy/v5/memfs"
	"github.com/go-git/go-billy/v5/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func target(t *testing.T, m reconcile.Map) MapTarget {
	t.Helper()
	store := reconcile.NewFileStore(memfs.New(), "clients.json")
	if m != nil {
		require.NoError(t, store.Save(context.Background(), m))
	}
	return MapTarget{Kind: "clients", Store: store, SourceField: "ucrmId", DestinationField: "xeroId"}
}

func TestCheckMap(t *testing.T) {
	t.Run("Healthy", func(t *testing.T) {
		report := CheckMap(context.Background(), target(t, reconcile.Map{
			"Acme Corp": {"ucrmId": json.Number("7"), "xeroId": "C-7"},
			"Jane Doe":  {"ucrmId": json.Number("1")},
			"Old Co":    {"xeroId": "C-9"},
		}))

		assert.Equal(t, "ok", report.Status)
		assert.Equal(t, 3, report.Entries)
		assert.Equal(t, 1, report.MissingSource)
		assert.Equal(t, 1, report.MissingDestination)
		assert.Empty(t, report.Empty)
		assert.Empty(t, report.Shared)
	})

	t.Run("Hand edited", func(t *testing.T) {
		report := CheckMap(context.Background(), target(t, reconcile.Map{
			"Acme Corp":      {"ucrmId": json.Number("7")},
			"Acme Corp Ltd.": {"ucrmId": json.Number("7")},
			"Blank":          {},
		}))

		assert.Equal(t, "warning", report.Status)
		assert.Equal(t, []string{"Blank"}, report.Empty)
		assert.Equal(t, []SharedIdentifier{
			{Field: "ucrmId", Value: "7", Names: []string{"Acme Corp", "Acme Corp Ltd."}},
		}, report.Shared)
	})

	t.Run("Unreadable", func(t *testing.T) {
		fs := memfs.New()
		require.NoError(t, util.WriteFile(fs, "clients.json", []byte("{broken"), 0o644))
		tgt := MapTarget{Kind: "clients", Store: reconcile.NewFileStore(fs, "clients.json"), SourceField: "ucrmId", DestinationField: "xeroId"}

		report := CheckMap(context.Background(), tgt)
		assert.Equal(t, "error", report.Status)
		assert.Contains(t, report.Error, "decode correlation map")
	})

	t.Run("Not yet created", func(t *testing.T) {
		report := CheckMap(context.Background(), target(t, nil))
		assert.Equal(t, "ok", report.Status)
		assert.Zero(t, report.Entries)
	})
}
