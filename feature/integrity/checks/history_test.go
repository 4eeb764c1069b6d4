package checks

import (
	"context"
	"testing"

	"github.com/mvqn/ucrm-plugin-xero/core/database"
	"github.com/mvqn/ucrm-plugin-xero/core/history"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckHistory(t *testing.T) {
	t.Run("Disabled", func(t *testing.T) {
		report := CheckHistory(context.Background(), nil)
		assert.False(t, report.Enabled)
		assert.Equal(t, "disabled", report.Status)
	})

	t.Run("Migrated", func(t *testing.T) {
		db, err := database.Connect(database.Config{Driver: database.DriverSQLite, Name: ":memory:"})
		require.NoError(t, err)
		recorder := history.NewRecorder(db, nil)
		require.NoError(t, recorder.Migrate(context.Background()))

		report := CheckHistory(context.Background(), recorder)
		assert.Equal(t, "ok", report.Status)
		assert.Empty(t, report.MissingColumns)
	})

	t.Run("Table missing", func(t *testing.T) {
		db, err := database.Connect(database.Config{Driver: database.DriverSQLite, Name: ":memory:"})
		require.NoError(t, err)

		report := CheckHistory(context.Background(), history.NewRecorder(db, nil))
		assert.Equal(t, "error", report.Status)
		assert.NotEmpty(t, report.MissingColumns)
	})
}
