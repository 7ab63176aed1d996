package theme

import (
	"encoding/json"
	"fmt"
)

// Config is a theme configuration document. Values are restricted to
// what encoding/json produces when decoding into interface{}: string,
// float64, bool, nil, []interface{} and map[string]interface{}.
type Config map[string]interface{}

// Keys of the top-level sections.
const (
	KeyVersion            = "version"
	KeyGlobal             = "global"
	KeyHomeContent        = "homeContent"
	KeyAboutPageContent   = "aboutPageContent"
	KeyContactPageContent = "contactPageContent"
	KeyFaqPageContent     = "faqPageContent"
	KeyElementOverrides   = "elementOverrides"
)

// Parse decodes a stored document. An empty payload is an empty
// (fully defaulted once resolved) document.
func Parse(data []byte) (Config, error) {
	if len(data) == 0 {
		return Config{}, nil
	}
	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to decode theme config: %w", err)
	}
	if cfg == nil {
		cfg = Config{}
	}
	return cfg, nil
}

// JSON encodes the document.
func (c Config) JSON() ([]byte, error) {
	return json.Marshal(c)
}

// Clone returns a deep copy.
func (c Config) Clone() Config {
	if c == nil {
		return nil
	}
	return Config(cloneObject(c))
}

// Get walks path and returns the value found there.
func (c Config) Get(path ...string) (interface{}, bool) {
	var current interface{} = map[string]interface{}(c)
	for _, key := range path {
		obj, ok := current.(map[string]interface{})
		if !ok {
			return nil, false
		}
		current, ok = obj[key]
		if !ok {
			return nil, false
		}
	}
	return current, true
}

// Object returns the object at path, or nil when the path does not
// lead to an object.
func (c Config) Object(path ...string) map[string]interface{} {
	v, ok := c.Get(path...)
	if !ok {
		return nil
	}
	obj, _ := v.(map[string]interface{})
	return obj
}

// String returns the string leaf at path. Non-string leaves yield "".
func (c Config) String(path ...string) string {
	v, ok := c.Get(path...)
	if !ok {
		return ""
	}
	s, _ := v.(string)
	return s
}

// Set stores value at path, creating intermediate objects. A
// non-object found on the way is replaced by an object.
func (c Config) Set(value interface{}, path ...string) {
	if len(path) == 0 {
		return
	}
	current := map[string]interface{}(c)
	for _, key := range path[:len(path)-1] {
		next, ok := current[key].(map[string]interface{})
		if !ok {
			next = make(map[string]interface{})
			current[key] = next
		}
		current = next
	}
	current[path[len(path)-1]] = value
}

func cloneObject(obj map[string]interface{}) map[string]interface{} {
	out := make(map[string]interface{}, len(obj))
	for k, v := range obj {
		out[k] = cloneValue(v)
	}
	return out
}

func cloneValue(v interface{}) interface{} {
	switch t := v.(type) {
	case map[string]interface{}:
		return cloneObject(t)
	case Config:
		return cloneObject(t)
	case []interface{}:
		out := make([]interface{}, len(t))
		for i, item := range t {
			out[i] = cloneValue(item)
		}
		return out
	default:
		return t
	}
}
