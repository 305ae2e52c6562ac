package screen

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"

	"shipyard/internal/app/client"
	"shipyard/internal/domain/vessel"
)

// memoryCollaborator - упрощённый сервер в памяти
type memoryCollaborator struct {
	mu      sync.Mutex
	nextID  int
	records []vessel.Vessel
	failDel bool
	posts   int
}

func (m *memoryCollaborator) List(context.Context) ([]vessel.Vessel, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]vessel.Vessel(nil), m.records...), nil
}

func (m *memoryCollaborator) Create(_ context.Context, in vessel.Input) (*vessel.Vessel, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.posts++
	m.nextID++
	v := in.Vessel(m.nextID)
	m.records = append(m.records, v)
	return &v, nil
}

func (m *memoryCollaborator) Update(_ context.Context, id int, in vessel.Input) (*vessel.Vessel, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.records {
		if m.records[i].ID == id {
			m.records[i] = in.Vessel(id)
			v := m.records[i]
			return &v, nil
		}
	}
	return nil, &client.StatusError{Code: 404}
}

func (m *memoryCollaborator) Delete(_ context.Context, id int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failDel {
		return errors.New("connection refused")
	}
	for i := range m.records {
		if m.records[i].ID == id {
			m.records = append(m.records[:i], m.records[i+1:]...)
			return nil
		}
	}
	return &client.StatusError{Code: 404}
}

func runScreen(t *testing.T, api client.Collaborator, input string) (string, *client.View) {
	t.Helper()

	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	view := client.NewView(api, log)

	runCtx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		defer close(done)
		_ = view.Run(runCtx)
	}()
	t.Cleanup(func() {
		cancel()
		<-done
	})

	ctx, cancelWait := context.WithTimeout(context.Background(), 5*time.Second)
	t.Cleanup(cancelWait)
	require.NoError(t, view.Load(ctx).Wait(ctx).Err)

	var out bytes.Buffer
	err := New(view, strings.NewReader(input), &out, false).Run(ctx)
	require.NoError(t, err)
	return out.String(), view
}

func TestScreen_AddEditDelete(t *testing.T) {
	api := &memoryCollaborator{}
	input := strings.Join([]string{
		"add", "Barco A", "10", "x", "2024-01-01",
		"edit 1", "Barco A2", "", "", "",
		"rm 1",
		"quit",
	}, "\n") + "\n"

	out, view := runScreen(t, api, input)

	assert.Contains(t, out, "Embarcación 1 añadida")
	assert.Contains(t, out, "Editar embarcación 1")
	assert.Contains(t, out, "[Barco A]")
	assert.Contains(t, out, "Embarcación 1 actualizada")
	assert.Contains(t, out, "Barco A2")
	assert.Contains(t, out, "Embarcación 1 eliminada")
	assert.Equal(t, 1, api.posts)

	st, err := view.Snapshot(context.Background())
	require.NoError(t, err)
	assert.Empty(t, st.Records)
}

func TestScreen_ValidationMessages(t *testing.T) {
	api := &memoryCollaborator{}
	input := strings.Join([]string{
		"add", strings.Repeat("a", 51), "10", "x", "2024-01-01",
		"quit",
	}, "\n") + "\n"

	out, view := runScreen(t, api, input)

	assert.Contains(t, out, vessel.FieldName+": "+vessel.MsgNameTooLong)
	assert.Equal(t, 0, api.posts)

	st, err := view.Snapshot(context.Background())
	require.NoError(t, err)
	assert.Equal(t, strings.Repeat("a", 51), st.Draft.Name)
}

func TestScreen_EditUnknownAndFailedDelete(t *testing.T) {
	api := &memoryCollaborator{
		nextID:  1,
		records: []vessel.Vessel{{ID: 1, Name: "Barco A", Capacity: 10, Description: "x", ScheduledDate: vessel.NewDate(2024, 1, 1)}},
		failDel: true,
	}
	input := "edit 7\nrm 1\nrm\nfoo\n"

	out, view := runScreen(t, api, input)

	assert.Contains(t, out, "embarcación 7 no encontrada")
	assert.Contains(t, out, "Error: connection refused")
	assert.Contains(t, out, "rm: falta el id")
	assert.Contains(t, out, "comando desconocido: foo")

	st, err := view.Snapshot(context.Background())
	require.NoError(t, err)
	assert.Len(t, st.Records, 1)
	assert.False(t, st.DialogOpen)
}

func TestScreen_CancelEdit(t *testing.T) {
	api := &memoryCollaborator{
		nextID:  1,
		records: []vessel.Vessel{{ID: 1, Name: "Barco A", Capacity: 10, Description: "x", ScheduledDate: vessel.NewDate(2024, 1, 1)}},
	}
	// нулевая вместимость не проходит валидацию, диалог остаётся открытым
	input := "edit 1\n\n0\n\n\ncancel\nquit\n"

	out, view := runScreen(t, api, input)

	assert.Contains(t, out, vessel.MsgCapacityNotPositive)
	assert.Contains(t, out, "[editando #1]")
	st, err := view.Snapshot(context.Background())
	require.NoError(t, err)
	assert.False(t, st.DialogOpen)
	assert.Equal(t, "Barco A", st.Records[0].Name)
}
