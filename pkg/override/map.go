package override

import (
	"encoding/json"
)

// Map holds the override of every customised element, keyed by element
// id.
type Map map[string]StyleOverride

// Reader is read access to a set of overrides.
type Reader interface {
	Get(id string) (StyleOverride, bool)
}

// Get implements Reader.
func (m Map) Get(id string) (StyleOverride, bool) {
	s, ok := m[id]
	return s, ok
}

// Clone returns a copy. StyleOverride holds only strings, so a shallow
// copy of the map is a deep copy.
func (m Map) Clone() Map {
	out := make(Map, len(m))
	for id, s := range m {
		out[id] = s
	}
	return out
}

// Equal reports whether both maps hold the same entries.
func (m Map) Equal(other Map) bool {
	if len(m) != len(other) {
		return false
	}
	for id, s := range m {
		o, ok := other[id]
		if !ok || o != s {
			return false
		}
	}
	return true
}

// Prune drops empty entries in place and returns m.
func (m Map) Prune() Map {
	for id, s := range m {
		if s.IsEmpty() {
			delete(m, id)
		}
	}
	return m
}

// Tree converts m to the generic JSON shape stored in the theme
// document.
func (m Map) Tree() map[string]interface{} {
	out := make(map[string]interface{}, len(m))
	for id, s := range m {
		fields := make(map[string]interface{})
		for _, f := range s.fields() {
			if f.value != "" {
				fields[f.key] = f.value
			}
		}
		out[id] = fields
	}
	return out
}

// Decode lifts the persisted elementOverrides subtree into a Map.
// Unknown fields, non-string values and non-object entries are
// dropped, empty entries are pruned. Anything that is not an object
// yields an empty Map.
func Decode(v interface{}) Map {
	out := make(Map)
	obj, ok := v.(map[string]interface{})
	if !ok {
		return out
	}
	for id, raw := range obj {
		entry, ok := raw.(map[string]interface{})
		if !ok {
			continue
		}
		var s StyleOverride
		for _, f := range s.fields() {
			if value, ok := entry[f.key].(string); ok {
				*f.ptr = value
			}
		}
		if !s.IsEmpty() {
			out[id] = s
		}
	}
	return out
}

// UnmarshalJSON accepts the persisted layout and prunes empty entries.
func (m *Map) UnmarshalJSON(data []byte) error {
	var raw map[string]StyleOverride
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*m = Map(raw).Prune()
	return nil
}

type field struct {
	key   string
	value string
	ptr   *string
}

func (s *StyleOverride) fields() []field {
	return []field{
		{key: "color", value: s.Color, ptr: &s.Color},
		{key: "backgroundColor", value: s.BackgroundColor, ptr: &s.BackgroundColor},
		{key: "fontSize", value: s.FontSize, ptr: &s.FontSize},
		{key: "fontWeight", value: s.FontWeight, ptr: &s.FontWeight},
		{key: "fontFamily", value: s.FontFamily, ptr: &s.FontFamily},
		{key: "textAlign", value: s.TextAlign, ptr: &s.TextAlign},
	}
}
