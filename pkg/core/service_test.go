package core_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/aretw0/notes/pkg/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// MockStorage implements core.Storage in memory.
type MockStorage struct {
	notes   []core.Note
	saves   int
	loadErr error
	saveErr error
}

func NewMockStorage() *MockStorage {
	return &MockStorage{}
}

func (m *MockStorage) Load(ctx context.Context) ([]core.Note, error) {
	if m.loadErr != nil {
		return nil, m.loadErr
	}
	return append([]core.Note(nil), m.notes...), nil
}

func (m *MockStorage) Save(ctx context.Context, notes []core.Note) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.saves++
	m.notes = append([]core.Note(nil), notes...)
	return nil
}

func newService(storage core.Storage, opts ...core.BookOption) *core.Service {
	return core.NewService(storage, slog.New(slog.NewTextHandler(io.Discard, nil)), opts...)
}

func TestService_CRUD(t *testing.T) {
	storage := NewMockStorage()
	service := newService(storage)
	ctx := context.TODO()
	require.NoError(t, service.Load(ctx))

	// 1. Add persists immediately
	require.NoError(t, service.Add(ctx, mustNote(t, "groceries", "milk eggs bread", "home")))
	require.NoError(t, service.Add(ctx, mustNote(t, "todo", "finish report", "")))
	assert.Equal(t, 2, storage.saves)
	assert.Len(t, storage.notes, 2)

	// 2. Failed add does not write
	err := service.Add(ctx, mustNote(t, "todo", "dup", ""))
	assert.ErrorIs(t, err, core.ErrDuplicateName)
	assert.Equal(t, 2, storage.saves)

	// 3. Edit
	require.NoError(t, service.EditText(ctx, "todo", "finish report and call client"))
	assert.Equal(t, []string{"todo"}, names(service.SearchByText("client")))
	require.NoError(t, service.EditTag(ctx, "todo", "work"))
	assert.Equal(t, []string{"todo"}, names(service.SearchByTag("work")))

	// 4. Rename
	require.NoError(t, service.Rename(ctx, "todo", "report"))
	got, err := service.Get("report")
	require.NoError(t, err)
	assert.Equal(t, "finish report and call client", got.Text)
	assert.Equal(t, "work", got.Tag)

	// 5. Delete
	removed, err := service.Delete(ctx, "report")
	require.NoError(t, err)
	assert.True(t, removed)
	saves := storage.saves

	removed, err = service.Delete(ctx, "report")
	require.NoError(t, err)
	assert.False(t, removed)
	assert.Equal(t, saves, storage.saves, "no write for a missing name")

	assert.Equal(t, []string{"groceries"}, names(service.List()))
	assert.Equal(t, []string{"home"}, service.Tags())
	assert.Equal(t, storage.notes, service.List())
}

func TestService_RollbackOnSaveFailure(t *testing.T) {
	storage := NewMockStorage()
	service := newService(storage)
	ctx := context.TODO()
	require.NoError(t, service.Add(ctx, mustNote(t, "keep", "me", "")))

	storage.saveErr = errors.New("disk full")

	err := service.Add(ctx, mustNote(t, "lost", "never stored", ""))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk full")
	assert.Equal(t, []string{"keep"}, names(service.List()))

	assert.Error(t, service.Rename(ctx, "keep", "renamed"))
	_, err = service.Get("keep")
	assert.NoError(t, err)

	removed, err := service.Delete(ctx, "keep")
	assert.Error(t, err)
	assert.False(t, removed)
	assert.Equal(t, []string{"keep"}, names(service.List()))
}

func TestService_CorruptLoadGuardsWrites(t *testing.T) {
	storage := NewMockStorage()
	storage.loadErr = errors.Join(core.ErrCorruptStorage, errors.New("unexpected token"))
	service := newService(storage)
	ctx := context.TODO()

	err := service.Load(ctx)
	require.ErrorIs(t, err, core.ErrCorruptStorage)
	assert.Empty(t, service.List())

	err = service.Add(ctx, mustNote(t, "a", "b", ""))
	assert.ErrorIs(t, err, core.ErrCorruptStorage)
	assert.Zero(t, storage.saves)

	removed, err := service.Delete(ctx, "missing")
	assert.NoError(t, err, "a missing name is not an error while guarded")
	assert.False(t, removed)
	assert.Zero(t, storage.saves)

	service.Unguard()
	require.NoError(t, service.Add(ctx, mustNote(t, "a", "b", "")))
	assert.Equal(t, 1, storage.saves)
}

func TestService_LoadMissingStorage(t *testing.T) {
	storage := NewMockStorage()
	service := newService(storage)
	require.NoError(t, service.Load(context.TODO()))
	assert.Empty(t, service.List())
}

func TestService_IgnoreCase(t *testing.T) {
	service := newService(NewMockStorage(), core.WithIgnoreCase(true))
	ctx := context.TODO()
	require.NoError(t, service.Add(ctx, mustNote(t, "Groceries", "Milk", "")))
	assert.Len(t, service.SearchByName("groc"), 1)
	assert.Len(t, service.SearchByText("milk"), 1)

	matched, err := service.Match("Groc*")
	require.NoError(t, err)
	assert.Len(t, matched, 1)
}

func TestService_State(t *testing.T) {
	storage := NewMockStorage()
	storage.notes = []core.Note{{Name: "a", Text: "b"}}
	service := newService(storage, core.WithIgnoreCase(true))
	require.NoError(t, service.Load(context.TODO()))

	state, ok := service.State().(core.ServiceState)
	require.True(t, ok)
	assert.Equal(t, 1, state.Notes)
	assert.True(t, state.IgnoreCase)
	assert.False(t, state.Guarded)
	assert.Equal(t, "unknown", state.StorageType)
	assert.Nil(t, state.Storage)
	assert.Equal(t, "service", service.ComponentType())

	storage.loadErr = core.ErrCorruptStorage
	require.Error(t, service.Load(context.TODO()))
	assert.True(t, service.State().(core.ServiceState).Guarded)
}
