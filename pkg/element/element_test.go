package element

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseKind(t *testing.T) {
	tests := []struct {
		raw  string
		want Kind
	}{
		{raw: "title", want: KindTitle},
		{raw: "productCard", want: KindProductCard},
		{raw: "divider", want: KindDivider},
		{raw: "text", want: KindTitle},
		{raw: "section", want: KindContainer},
		{raw: "", want: KindContainer},
		{raw: "carousel", want: KindContainer},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseKind(tt.raw))
		})
	}
}

func TestDescriptor_Defaults(t *testing.T) {
	d := NewDescriptor("hero-title", "", "")
	assert.Equal(t, KindContainer, d.Type)
	assert.Equal(t, "hero-title", d.Label)

	attrs := NewDescriptor("cta", "button", "Main button").Attributes()
	assert.Equal(t, map[string]string{
		AttrID:    "cta",
		AttrKind:  "button",
		AttrLabel: "Main button",
	}, attrs)

	back, ok := FromAttributes(attrs)
	require.True(t, ok)
	assert.Equal(t, Descriptor{ID: "cta", Type: KindButton, Label: "Main button"}, back)

	_, ok = FromAttributes(map[string]string{AttrKind: "title"})
	assert.False(t, ok)
}

func TestRegistry_ClosestInnermostWins(t *testing.T) {
	r, err := NewRegistry([]Node{
		{ID: "root"},
		{ID: "b", ParentID: "root", Editable: &Descriptor{ID: "b", Type: "section"}},
		{ID: "a", ParentID: "b", Editable: &Descriptor{ID: "a", Type: "text", Label: "Inner"}},
		{ID: "span", ParentID: "a"},
		{ID: "plain", ParentID: "root"},
	})
	require.NoError(t, err)

	d, ok := r.Closest("span")
	require.True(t, ok)
	assert.Equal(t, Descriptor{ID: "a", Type: KindTitle, Label: "Inner"}, d)

	d, ok = r.Closest("b")
	require.True(t, ok)
	assert.Equal(t, "b", d.ID)
	assert.Equal(t, KindContainer, d.Type)

	_, ok = r.Closest("plain")
	assert.False(t, ok, "no editable ancestor")

	_, ok = r.Closest("missing")
	assert.False(t, ok)
}

func TestRegistry_EditablesOrderedById(t *testing.T) {
	r, err := NewRegistry([]Node{
		{ID: "root"},
		{ID: "z", ParentID: "root", Editable: &Descriptor{ID: "z", Type: "button"}},
		{ID: "m", ParentID: "root", Editable: &Descriptor{ID: "m", Type: "text"}},
		{ID: "a", ParentID: "m", Editable: &Descriptor{ID: "a", Type: "image"}},
		{ID: "span", ParentID: "a"},
	})
	require.NoError(t, err)

	got := r.Editables()
	require.Len(t, got, 3)
	assert.Equal(t, "a", got[0].ID)
	assert.Equal(t, "m", got[1].ID)
	assert.Equal(t, KindTitle, got[1].Type)
	assert.Equal(t, "z", got[2].ID)

	var empty *Registry
	assert.Empty(t, empty.Editables())
}

func TestRegistry_CycleTerminates(t *testing.T) {
	r, err := NewRegistry([]Node{
		{ID: "x", ParentID: "y"},
		{ID: "y", ParentID: "x"},
	})
	require.NoError(t, err)

	_, ok := r.Closest("x")
	assert.False(t, ok)
}

func TestRegistry_Duplicate(t *testing.T) {
	_, err := NewRegistry([]Node{{ID: "x"}, {ID: "x"}})
	assert.ErrorIs(t, err, ErrDuplicateNode)
}

func TestRegistry_NilSafe(t *testing.T) {
	var r *Registry
	_, ok := r.Closest("x")
	assert.False(t, ok)
	assert.Equal(t, 0, r.Len())
}
