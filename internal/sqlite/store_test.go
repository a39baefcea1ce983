package sqlite

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/lodge/pkg/types"
)

func newTestStore(t *testing.T, dir string) *Store {
	t.Helper()
	store, err := NewStore(dir)
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func TestNewStoreCreatesDatabase(t *testing.T) {
	dir := t.TempDir()

	store := newTestStore(t, dir)
	require.NoError(t, store.Save())

	assert.FileExists(t, filepath.Join(dir, DatabaseFileName))
}

func TestReloadEmptyDatabase(t *testing.T) {
	store := newTestStore(t, t.TempDir())

	require.NoError(t, store.Reload())

	assert.Empty(t, store.All())
}

func TestSaveThenReloadReconstructsRegistry(t *testing.T) {
	dir := t.TempDir()
	store := newTestStore(t, dir)

	u := types.NewUser()
	u.Email = "betty@example.com"
	p := types.NewPlace()
	p.Name = "Cozy Loft"
	p.PriceByNight = 120
	p.Longitude = -122.41
	p.AmenityIDs = []string{"a1"}
	store.New(u)
	store.New(p)

	want := map[string]map[string]any{}
	for k, r := range store.All() {
		want[k] = r.ToMap()
	}
	require.NoError(t, store.Save())
	require.NoError(t, store.Close())

	fresh := newTestStore(t, dir)
	require.NoError(t, fresh.Reload())

	require.Len(t, fresh.All(), 2)
	for k, r := range fresh.All() {
		assert.Equal(t, want[k], r.ToMap())
	}
}

func TestNewLastWriteWins(t *testing.T) {
	store := newTestStore(t, t.TempDir())
	a := types.NewAmenity()
	b := types.NewAmenity()
	b.ID = a.ID
	b.Name = "Pool"

	store.New(a)
	store.New(b)

	require.Len(t, store.All(), 1)
	assert.Same(t, b, store.All()[a.Key()].(*types.Amenity))
}

func TestDestroyedRecordStaysGone(t *testing.T) {
	dir := t.TempDir()
	store := newTestStore(t, dir)

	u := types.NewUser()
	store.New(u)
	require.NoError(t, store.Save())

	delete(store.All(), u.Key())
	require.NoError(t, store.Save())
	require.NoError(t, store.Close())

	fresh := newTestStore(t, dir)
	require.NoError(t, fresh.Reload())
	assert.Empty(t, fresh.All())
}

func TestSaveOverwritesAllRows(t *testing.T) {
	dir := t.TempDir()
	store := newTestStore(t, dir)

	st := types.NewState()
	store.New(st)
	require.NoError(t, store.Save())

	c := types.NewCity()
	c.StateID = st.ID
	store.New(c)
	delete(store.All(), st.Key())
	require.NoError(t, store.Save())
	require.NoError(t, store.Close())

	fresh := newTestStore(t, dir)
	require.NoError(t, fresh.Reload())

	require.Len(t, fresh.All(), 1)
	assert.Contains(t, fresh.All(), c.Key())
}

func TestReloadUnknownClassRejectsWholeLoad(t *testing.T) {
	dir := t.TempDir()
	store := newTestStore(t, dir)

	u := types.NewUser()
	store.New(u)
	require.NoError(t, store.Save())

	// Plant a row with a discriminator outside the dispatch table.
	_, err := store.db.Exec(
		`INSERT INTO records (key, class, payload) VALUES (?, ?, ?)`,
		"Ghost.1", "Ghost",
		`{"__class__":"Ghost","id":"1","created_at":"2023-01-01T00:00:00.000000","updated_at":"2023-01-01T00:00:00.000000"}`)
	require.NoError(t, err)

	before := map[string]types.Record{}
	for k, r := range store.All() {
		before[k] = r
	}

	err = store.Reload()

	assert.ErrorIs(t, err, types.ErrUnknownClass)
	assert.Equal(t, before, store.All())
}

func TestReloadMalformedPayload(t *testing.T) {
	dir := t.TempDir()
	store := newTestStore(t, dir)

	_, err := store.db.Exec(
		`INSERT INTO records (key, class, payload) VALUES (?, ?, ?)`,
		"User.1", "User", `{broken`)
	require.NoError(t, err)

	err = store.Reload()

	assert.ErrorIs(t, err, types.ErrBadSnapshot)
	assert.Empty(t, store.All())
}
