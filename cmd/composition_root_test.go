package cmd_test

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"orderbot/cmd"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompositionRoot_WiresChatFromFiles(t *testing.T) {
	dir := t.TempDir()
	catalogFile := filepath.Join(dir, "item_catalog.csv")
	customerFile := filepath.Join(dir, "customer.csv")
	newCustomerFile := filepath.Join(dir, "new_customers.csv")

	require.NoError(t, os.WriteFile(catalogFile,
		[]byte("code,name,price_1_0,price_0_5,price_0_25\nS755,Blue Dream,300,160,90\n"), 0o600))
	require.NoError(t, os.WriteFile(customerFile,
		[]byte("name,shipping_name,address,usps\nJane Doe,Jane D.,1 Main St,1\n"), 0o600))

	config := cmd.Config{
		CatalogFile:          catalogFile,
		CustomerFile:         customerFile,
		NewCustomerFile:      newCustomerFile,
		NewCustomerSink:      cmd.NewCustomerSinkCSV,
		SessionIdleTTL:       cmd.DefaultSessionIdleTTL,
		SessionSweepSchedule: cmd.DefaultSessionSweepSchedule,
	}

	root, err := cmd.NewCompositionRoot(t.Context(), config, nil, slog.New(slog.DiscardHandler))
	require.NoError(t, err)

	controller := root.CreateChatController()
	assert.Same(t, controller, root.CreateChatController())
	for _, text := range []string{"/start", "bob smith", "S755 1"} {
		_, err = controller.Handle(t.Context(), "42", text)
		require.NoError(t, err)
	}

	summary, err := controller.Handle(t.Context(), "42", "done")
	require.NoError(t, err)
	assert.Contains(t, summary, "#S755 / 1.0 P Blue Dream = $300")
	assert.Contains(t, summary, "Total: $325")

	logged, err := os.ReadFile(newCustomerFile)
	require.NoError(t, err)
	assert.Equal(t, "Bob Smith\n", string(logged))

	jobManager := root.CreateJobManager()
	require.NoError(t, jobManager.StartAll())
	jobManager.StopAll()
}
