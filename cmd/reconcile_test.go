package cmd

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/mvqn/ucrm-plugin-xero/core/reconcile"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	// Flag variables outlive a single Execute.
	sourceRef, destinationRef, noPersist, pendingSourceRef = "", "", false, ""

	var out bytes.Buffer
	RootCmd.SetOut(&out)
	RootCmd.SetArgs(args)
	err := RootCmd.Execute()
	return out.String(), err
}

func TestReconcileAndPendingClients(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv("RECONCILE_DATA_DIR", filepath.Join(dir, "maps"))
	t.Setenv("LOG_LEVEL", "error")

	require.NoError(t, os.WriteFile("ucrm.json", []byte(`[
		{"id": 1, "clientType": 1, "firstName": "Jane", "lastName": "Doe"},
		{"id": 7, "clientType": 2, "companyName": "Acme Corp"}
	]`), 0o644))
	require.NoError(t, os.WriteFile("xero.yaml", []byte("- ContactID: C-7\n  Name: Acme Corp\n"), 0o644))

	out, err := execute(t, "reconcile", "clients", "--source", "ucrm.json", "--destination", "xero.yaml")
	require.NoError(t, err)

	var rep struct {
		Source      reconcile.ChangeSet `json:"source"`
		Destination reconcile.ChangeSet `json:"destination"`
		Entries     int                 `json:"entries"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &rep))
	assert.Equal(t, 2, rep.Entries)
	assert.Equal(t, []string{"Jane Doe", "Acme Corp"}, rep.Source.Created)
	assert.Equal(t, []string{"Acme Corp"}, rep.Destination.Created)
	assert.Equal(t, []string{"Jane Doe"}, rep.Destination.Missing)

	persisted, err := os.ReadFile(filepath.Join(dir, "maps", "clients.json"))
	require.NoError(t, err)
	m, err := reconcile.DecodeMap(persisted)
	require.NoError(t, err)
	assert.Equal(t, "C-7", m["Acme Corp"]["xeroId"])

	out, err = execute(t, "pending", "clients")
	require.NoError(t, err)
	assert.JSONEq(t, `["Jane Doe"]`, out)
}

func TestReconcileMissingSnapshot(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("LOG_LEVEL", "error")

	_, err := execute(t, "reconcile", "invoices", "--source", "nope.json", "--destination", "nope.json", "--no-persist")
	assert.ErrorContains(t, err, "failed to load source snapshot")
}
