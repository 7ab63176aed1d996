package theme

import (
	opts "github.com/goliatone/go-options/layering"
)

// Resolve merges a stored, possibly partial document over the defaults.
//
// Objects merge key-wise, recursively, wherever the defaults hold an
// object. Scalars and arrays take the stored value when it is present
// and not null; arrays are replaced wholesale, never merged element by
// element. Keys unknown to the defaults are preserved. Leaf types are
// not validated: a malformed leaf passes through as stored. A stored
// non-object where the defaults hold an object keeps the default, so
// every named section is always an object after resolution.
//
// The result shares no memory with stored or with the defaults.
func Resolve(stored Config) Config {
	defaults := defaultTree()
	// Clone normalises nested Config values to plain objects.
	merged := opts.MergeLayers(map[string]interface{}(stored.Clone()), defaults)
	return Config(restoreSections(merged, defaults))
}

// restoreSections puts the default object back wherever the merge left
// a non-object in a position the defaults define as an object.
func restoreSections(merged, defaults map[string]interface{}) map[string]interface{} {
	if merged == nil {
		merged = make(map[string]interface{}, len(defaults))
	}
	for key, def := range defaults {
		defObj, ok := asObject(def)
		if !ok {
			continue
		}
		if obj, ok := asObject(merged[key]); ok {
			merged[key] = restoreSections(obj, defObj)
			continue
		}
		merged[key] = cloneObject(defObj)
	}
	return merged
}

func asObject(v interface{}) (map[string]interface{}, bool) {
	switch t := v.(type) {
	case map[string]interface{}:
		return t, true
	case Config:
		return t, true
	default:
		return nil, false
	}
}
