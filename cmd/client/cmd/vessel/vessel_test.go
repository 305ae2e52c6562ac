package vessel

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strconv"
	"sync"
	"testing"
	"time"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"

	"shipyard/cmd/client/cmd/types"
	"shipyard/internal/app/client"
	"shipyard/internal/app/client/config"
	"shipyard/internal/domain/vessel"
)

// fleetServer - минимальный REST сервер в памяти
type fleetServer struct {
	mu      sync.Mutex
	records []vessel.Vessel
	nextID  int
	writes  int
}

func newFleetServer(t *testing.T, records ...vessel.Vessel) *httptest.Server {
	fs := &fleetServer{records: records, nextID: len(records) + 1}

	mux := http.NewServeMux()
	mux.HandleFunc("GET "+client.ResourcePath, func(w http.ResponseWriter, _ *http.Request) {
		fs.mu.Lock()
		defer fs.mu.Unlock()
		_ = json.NewEncoder(w).Encode(fs.records)
	})
	mux.HandleFunc("POST "+client.ResourcePath, func(w http.ResponseWriter, r *http.Request) {
		var in vessel.Input
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		fs.mu.Lock()
		defer fs.mu.Unlock()
		fs.writes++
		v := in.Vessel(fs.nextID)
		fs.nextID++
		fs.records = append(fs.records, v)
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(v)
	})
	mux.HandleFunc("PUT "+client.ResourcePath+"/{id}", func(w http.ResponseWriter, r *http.Request) {
		id, _ := strconv.Atoi(r.PathValue("id"))
		var in vessel.Input
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		fs.mu.Lock()
		defer fs.mu.Unlock()
		fs.writes++
		for i := range fs.records {
			if fs.records[i].ID == id {
				fs.records[i] = in.Vessel(id)
				_ = json.NewEncoder(w).Encode(fs.records[i])
				return
			}
		}
		http.NotFound(w, r)
	})
	mux.HandleFunc("DELETE "+client.ResourcePath+"/{id}", func(w http.ResponseWriter, r *http.Request) {
		id, _ := strconv.Atoi(r.PathValue("id"))
		fs.mu.Lock()
		defer fs.mu.Unlock()
		fs.writes++
		for i := range fs.records {
			if fs.records[i].ID == id {
				fs.records = append(fs.records[:i], fs.records[i+1:]...)
				w.WriteHeader(http.StatusNoContent)
				return
			}
		}
		http.NotFound(w, r)
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func barcoA() vessel.Vessel {
	return vessel.Vessel{ID: 1, Name: "Barco A", Capacity: 10, Description: "x", ScheduledDate: vessel.NewDate(2024, 1, 1)}
}

func execute(t *testing.T, serverURL string, args ...string) (string, string, error) {
	t.Helper()

	cfg := &config.Config{Env: config.EnvProd, ServerAddress: serverURL, RequestTimeout: 5 * time.Second}
	app, err := client.New(cfg, slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)
	t.Cleanup(app.Close)

	root := &cobra.Command{Use: "shipyard", SilenceUsage: true, SilenceErrors: true}
	root.AddCommand(ListCmd, CreateCmd, EditCmd, DeleteCmd, ExportCmd)

	var out, errOut bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)

	ctx := context.WithValue(context.Background(), types.ClientAppKey, app)
	err = root.ExecuteContext(ctx)
	return out.String(), errOut.String(), err
}

func TestList_JSON(t *testing.T) {
	srv := newFleetServer(t, barcoA())

	out, _, err := execute(t, srv.URL, "list", "--format", "json")

	require.NoError(t, err)
	var got []vessel.Vessel
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, []vessel.Vessel{barcoA()}, got)
}

func TestList_Table(t *testing.T) {
	srv := newFleetServer(t, barcoA())

	out, _, err := execute(t, srv.URL, "list", "--format", "table")

	require.NoError(t, err)
	assert.Contains(t, out, "Barco A")
	assert.Contains(t, out, "10 T")
}

func TestCreate_InvalidPrintsFieldMessages(t *testing.T) {
	srv := newFleetServer(t)

	_, errOut, err := execute(t, srv.URL, "create",
		"--nombre", "Barco", "--capacidad", "-3", "--descripcion", "x", "--fecha", "2024-01-01")

	assert.ErrorIs(t, err, vessel.ErrInvalidData)
	assert.Contains(t, errOut, vessel.MsgCapacityNotPositive)
}

func TestCreateEditDelete(t *testing.T) {
	srv := newFleetServer(t, barcoA())

	out, _, err := execute(t, srv.URL, "create",
		"--nombre", "Barco B", "--capacidad", "7,5", "--descripcion", "y", "--fecha", "2024-03-01")
	require.NoError(t, err)
	assert.Contains(t, out, "#2 Barco B")

	out, _, err = execute(t, srv.URL, "edit", "2", "--descripcion", "z")
	require.NoError(t, err)
	assert.Contains(t, out, "#2")

	out, _, err = execute(t, srv.URL, "list", "--format", "json")
	require.NoError(t, err)
	var got []vessel.Vessel
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	require.Len(t, got, 2)
	assert.Equal(t, "Barco B", got[1].Name)
	assert.Equal(t, 7.5, got[1].Capacity)
	assert.Equal(t, "z", got[1].Description)

	_, _, err = execute(t, srv.URL, "delete", "1")
	require.NoError(t, err)

	_, _, err = execute(t, srv.URL, "delete", "1")
	assert.Error(t, err)
}

func TestEdit_Unknown(t *testing.T) {
	srv := newFleetServer(t, barcoA())

	_, _, err := execute(t, srv.URL, "edit", "9")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "#9")
}

func TestExport_CSVFile(t *testing.T) {
	srv := newFleetServer(t, barcoA())
	path := filepath.Join(t.TempDir(), "fleet.csv")

	_, _, err := execute(t, srv.URL, "export", "--format", "csv", "--out", path)
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "Barco A")
}

func TestParseID(t *testing.T) {
	id, err := parseID("12")
	require.NoError(t, err)
	assert.Equal(t, 12, id)

	_, err = parseID("abc")
	assert.Error(t, err)
	_, err = parseID("0")
	assert.Error(t, err)
}
