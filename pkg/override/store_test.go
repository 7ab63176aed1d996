package override

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingNotifier struct {
	calls []Map
}

func (r *recordingNotifier) OverridesChanged(m Map) {
	r.calls = append(r.calls, m)
}

func TestStore_NotifiesCompleteMap(t *testing.T) {
	rec := &recordingNotifier{}
	store := NewStore(NewState(Map{"keep": {Color: "#1"}}, 0), rec)

	require.True(t, store.SetOverride("a", StyleOverride{Color: "#2"}))
	require.Len(t, rec.calls, 1)
	assert.Equal(t, Map{"keep": {Color: "#1"}, "a": {Color: "#2"}}, rec.calls[0])

	require.True(t, store.ResetOverride("a"))
	require.True(t, store.Undo())
	require.True(t, store.Redo())
	assert.Len(t, rec.calls, 4)
	assert.Equal(t, Map{"keep": {Color: "#1"}}, rec.calls[3])
}

func TestStore_NoopsDoNotNotify(t *testing.T) {
	rec := &recordingNotifier{}
	store := NewStore(NewState(nil, 0), rec)

	assert.False(t, store.ResetOverride("absent"))
	assert.False(t, store.PasteStyle("x"))
	assert.False(t, store.Undo())
	assert.False(t, store.Redo())
	assert.False(t, store.CopyStyle("absent"))

	store.SetOverride("a", StyleOverride{Color: "#1"})
	assert.True(t, store.CopyStyle("a"))
	assert.Len(t, rec.calls, 1, "copy does not touch the overrides")
}

func TestStore_NotificationIsACopy(t *testing.T) {
	rec := &recordingNotifier{}
	store := NewStore(NewState(nil, 0), rec)
	store.SetOverride("a", StyleOverride{Color: "#1"})

	rec.calls[0]["a"] = StyleOverride{Color: "#mutated"}
	got, _ := store.Get("a")
	assert.Equal(t, "#1", got.Color)
}

func TestStore_NilNotifier(t *testing.T) {
	store := NewStore(State{}, nil)
	assert.True(t, store.SetOverride("a", StyleOverride{Color: "#1"}))
	assert.Equal(t, Map{"a": {Color: "#1"}}, store.Overrides())
}
