package main

import (
	"bytes"
	"context"
	"encoding/json"
	"maps"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/Veraticus/the-income-must-flow/internal/common"
	"github.com/Veraticus/the-income-must-flow/internal/service"
	"github.com/Veraticus/the-income-must-flow/internal/storage"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeBackend echoes each submitted income back with an id.
type fakeBackend struct {
	server   *httptest.Server
	mu       sync.Mutex
	requests []map[string]any
	auth     []string
}

func newFakeBackend(t *testing.T) *fakeBackend {
	t.Helper()
	b := &fakeBackend{}
	b.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body map[string]any
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			http.Error(w, `{"detail":"bad json"}`, http.StatusUnprocessableEntity)
			return
		}

		b.mu.Lock()
		b.requests = append(b.requests, body)
		b.auth = append(b.auth, r.Header.Get("Authorization"))
		id := len(b.requests)
		b.mu.Unlock()

		response := maps.Clone(body)
		response["id"] = id
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(response)
	}))
	t.Cleanup(b.server.Close)
	return b
}

func (b *fakeBackend) count() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.requests)
}

// setupEnv points every path and the backend at test-owned locations.
func setupEnv(t *testing.T, baseURL, token string) string {
	t.Helper()
	viper.Reset()
	t.Cleanup(viper.Reset)

	dir := t.TempDir()
	t.Setenv("XDG_DATA_HOME", dir)
	dbPath := filepath.Join(dir, "income.db")
	viper.Set("database.path", dbPath)
	viper.Set("api.base_url", baseURL)
	if token != "" {
		viper.Set("auth.token", token)
	}
	return dbPath
}

func execute(t *testing.T, cmd *cobra.Command, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetIn(bytes.NewReader(nil))
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func openStore(t *testing.T, dbPath string) *storage.SQLiteStorage {
	t.Helper()
	store, err := storage.NewSQLiteStorage(dbPath)
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	require.NoError(t, store.Migrate(context.Background()))
	return store
}

func TestAddCommand_Scripted(t *testing.T) {
	backend := newFakeBackend(t)
	dbPath := setupEnv(t, backend.server.URL, "test-token-0123456789")

	out, err := execute(t, addCmd(),
		"--date", "2024-03-05", "--category", "2", "--description", "side gig", "--total", "150.75")
	require.NoError(t, err)

	assert.Contains(t, out, "Income Added")
	assert.Contains(t, out, "05/03/2024")
	assert.Contains(t, out, "Freelance")

	require.Equal(t, 1, backend.count())
	assert.Equal(t, "Bearer test-token-0123456789", backend.auth[0])
	assert.Equal(t, map[string]any{
		"date":            "2024-03-05",
		"income_category": "Freelance",
		"description":     "side gig",
		"total":           150.75,
	}, backend.requests[0])

	records, err := openStore(t, dbPath).ListIncomes(context.Background(), service.IncomeFilter{})
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "1", records[0].RemoteID)
	assert.Equal(t, "150.75", records[0].Total.String())
}

func TestFakeBackend_KeepsRequestsUnchanged(t *testing.T) {
	backend := newFakeBackend(t)

	resp, err := http.Post(backend.server.URL, "application/json", bytes.NewBufferString(`{"total":1}`))
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()

	var echoed map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&echoed))
	assert.Equal(t, float64(1), echoed["id"])
	assert.Equal(t, map[string]any{"total": float64(1)}, backend.requests[0])
}

func TestAddCommand_NoTUIUsesDefaults(t *testing.T) {
	backend := newFakeBackend(t)
	setupEnv(t, backend.server.URL, "test-token-0123456789")

	_, err := execute(t, addCmd(), "--no-tui")
	require.NoError(t, err)

	require.Equal(t, 1, backend.count())
	assert.Equal(t, "Salary", backend.requests[0]["income_category"])
	assert.Equal(t, "", backend.requests[0]["description"])
	assert.Nil(t, backend.requests[0]["total"], "empty total is sent as null")
}

func TestAddCommand_MissingToken(t *testing.T) {
	backend := newFakeBackend(t)
	dbPath := setupEnv(t, backend.server.URL, "")

	_, err := execute(t, addCmd(), "--total", "10")
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrMissingToken)
	assert.Zero(t, backend.count())

	records, err := openStore(t, dbPath).ListIncomes(context.Background(), service.IncomeFilter{})
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestAddCommand_InvalidDate(t *testing.T) {
	backend := newFakeBackend(t)
	setupEnv(t, backend.server.URL, "test-token-0123456789")

	_, err := execute(t, addCmd(), "--date", "yesterday")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid --date")
	assert.Zero(t, backend.count())
}

func TestListCommand(t *testing.T) {
	backend := newFakeBackend(t)
	setupEnv(t, backend.server.URL, "test-token-0123456789")

	out, err := execute(t, listCmd())
	require.NoError(t, err)
	assert.Contains(t, out, "No income recorded yet")

	for _, args := range [][]string{
		{"--date", "2024-03-05", "--category", "2", "--total", "150.75", "--description", "side gig"},
		{"--date", "2024-04-01", "--total", "3000"},
	} {
		_, err := execute(t, addCmd(), args...)
		require.NoError(t, err)
	}

	out, err = execute(t, listCmd())
	require.NoError(t, err)
	assert.Contains(t, out, "01/04/2024")
	assert.Contains(t, out, "3000.00")
	assert.Contains(t, out, "side gig")
	assert.Contains(t, out, "(1)")

	out, err = execute(t, listCmd(), "--category", "2")
	require.NoError(t, err)
	assert.Contains(t, out, "side gig")
	assert.NotContains(t, out, "01/04/2024")

	_, err = execute(t, listCmd(), "--from", "soon")
	assert.Error(t, err)
}

func TestImportCommand(t *testing.T) {
	backend := newFakeBackend(t)
	dbPath := setupEnv(t, backend.server.URL, "test-token-0123456789")

	csvPath := filepath.Join(t.TempDir(), "incomes.csv")
	require.NoError(t, os.WriteFile(csvPath, []byte(
		"date,category,description,total\n2024-03-05,2,side gig,150.75\n05/04/2024,3,dividends,12.34\n"), 0600))

	out, err := execute(t, importCmd(), "--dry-run", csvPath)
	require.NoError(t, err)
	assert.Contains(t, out, "2 incomes would be submitted")
	assert.Contains(t, out, "2024-04-05  Investment")
	assert.Zero(t, backend.count())

	out, err = execute(t, importCmd(), csvPath)
	require.NoError(t, err)
	assert.Contains(t, out, "Imported 2 of 2 incomes")
	assert.Equal(t, 2, backend.count())

	count, err := openStore(t, dbPath).CountIncomes(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestImportCommand_ReportsFailures(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"detail":"database offline"}`))
	}))
	t.Cleanup(server.Close)
	setupEnv(t, server.URL, "test-token-0123456789")

	csvPath := filepath.Join(t.TempDir(), "incomes.csv")
	require.NoError(t, os.WriteFile(csvPath, []byte("date,total\n2024-03-05,1\n2024-03-06,2\n"), 0600))

	out, err := execute(t, importCmd(), csvPath)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "2 of 2 incomes failed")
	assert.Contains(t, out, "Imported 0 of 2 incomes")
}

func TestImportCommand_BadFile(t *testing.T) {
	setupEnv(t, "http://localhost:8000", "")

	_, err := execute(t, importCmd(), filepath.Join(t.TempDir(), "missing.csv"))
	assert.Error(t, err)

	csvPath := filepath.Join(t.TempDir(), "bad.csv")
	require.NoError(t, os.WriteFile(csvPath, []byte("total\n1\n"), 0600))
	_, err = execute(t, importCmd(), csvPath)
	assert.Error(t, err)
}

func TestAuthCommands(t *testing.T) {
	setupEnv(t, "http://localhost:8000", "")

	out, err := execute(t, authCmd(), "status")
	require.NoError(t, err)
	assert.Contains(t, out, "Not logged in")

	out, err = execute(t, authCmd(), "login", "--token", "abcd-0123456789-wxyz")
	require.NoError(t, err)
	assert.Contains(t, out, "Token saved")

	tokens, err := newTokenProvider()
	require.NoError(t, err)
	tok, err := tokens.Token(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "abcd-0123456789-wxyz", tok)

	out, err = execute(t, authCmd(), "status")
	require.NoError(t, err)
	assert.Contains(t, out, "abcd...wxyz")

	viper.Set("auth.token", "config-token-0123456789")
	out, err = execute(t, authCmd(), "status")
	require.NoError(t, err)
	assert.Contains(t, out, "Using configured token conf...6789")
	viper.Set("auth.token", "")

	_, err = execute(t, authCmd(), "logout")
	require.NoError(t, err)
	out, err = execute(t, authCmd(), "status")
	require.NoError(t, err)
	assert.Contains(t, out, "Not logged in")
}

func TestAuthLogin_PromptsForToken(t *testing.T) {
	setupEnv(t, "http://localhost:8000", "")

	cmd := authCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetIn(bytes.NewBufferString("prompted-token-123456\n"))
	cmd.SetArgs([]string{"login"})
	require.NoError(t, cmd.ExecuteContext(context.Background()))

	assert.Contains(t, out.String(), "Access token: ")
	path, err := tokenPath()
	require.NoError(t, err)
	assert.FileExists(t, path)
}

func TestAuthLogin_EmptyToken(t *testing.T) {
	setupEnv(t, "http://localhost:8000", "")

	_, err := execute(t, authCmd(), "login")
	assert.ErrorIs(t, err, common.ErrMissingToken)
}

func TestMigrateCommand(t *testing.T) {
	setupEnv(t, "http://localhost:8000", "")

	out, err := execute(t, migrateCmd(), "--status")
	require.NoError(t, err)
	assert.Contains(t, out, "Current version: 0")

	out, err = execute(t, migrateCmd())
	require.NoError(t, err)
	assert.Contains(t, out, "schema version 2")

	out, err = execute(t, migrateCmd(), "--status")
	require.NoError(t, err)
	assert.Contains(t, out, "Current version: 2")
}

func TestCategoriesCommand(t *testing.T) {
	out, err := execute(t, categoriesCmd())
	require.NoError(t, err)
	assert.Contains(t, out, "Salary (default)")
	assert.Contains(t, out, "Freelance")
	assert.Contains(t, out, "Investment")
}

func TestVersionCommand(t *testing.T) {
	out, err := execute(t, versionCmd())
	require.NoError(t, err)
	assert.Contains(t, out, "income version dev")
}
