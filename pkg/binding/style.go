package binding

import (
	"sort"
	"strings"

	"github.com/YoussefAz2/elenashop-sub001/pkg/element"
	"github.com/YoussefAz2/elenashop-sub001/pkg/override"
	"github.com/YoussefAz2/elenashop-sub001/pkg/theme"
)

// Style maps CSS property names to values.
type Style map[string]string

// With returns a copy of s with every non-empty value of top applied.
func (s Style) With(top Style) Style {
	out := make(Style, len(s)+len(top))
	for k, v := range s {
		out[k] = v
	}
	for k, v := range top {
		if v != "" {
			out[k] = v
		}
	}
	return out
}

// WithOverride applies an override field by field.
func (s Style) WithOverride(o override.StyleOverride) Style {
	top := make(Style)
	for _, p := range o.Properties() {
		top[p.Name] = p.Value
	}
	return s.With(top)
}

// CSS renders s as an inline style attribute value, properties sorted.
func (s Style) CSS() string {
	keys := make([]string, 0, len(s))
	for k, v := range s {
		if v != "" {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)

	var b strings.Builder
	for i, k := range keys {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(k)
		b.WriteString(": ")
		b.WriteString(s[k])
		b.WriteByte(';')
	}
	return b.String()
}

type styleSource struct {
	property string
	path     []string
}

var implicitSources = map[element.Kind][]styleSource{
	element.KindTitle: {
		{"color", []string{"global", "colors", "text"}},
		{"font-family", []string{"global", "typography", "headingFont"}},
		{"font-weight", []string{"global", "typography", "headingWeight"}},
	},
	element.KindParagraph: {
		{"color", []string{"global", "colors", "text"}},
		{"font-family", []string{"global", "typography", "bodyFont"}},
		{"font-weight", []string{"global", "typography", "bodyWeight"}},
		{"line-height", []string{"global", "typography", "lineHeight"}},
	},
	element.KindButton: {
		{"background-color", []string{"global", "buttons", "backgroundColor"}},
		{"color", []string{"global", "buttons", "textColor"}},
		{"border-radius", []string{"global", "buttons", "radius"}},
		{"font-family", []string{"global", "typography", "bodyFont"}},
	},
	element.KindProductCard: {
		{"background-color", []string{"global", "cards", "backgroundColor"}},
		{"color", []string{"global", "cards", "textColor"}},
		{"border-color", []string{"global", "cards", "borderColor"}},
		{"border-radius", []string{"global", "spacing", "borderRadius"}},
	},
	element.KindContainer: {
		{"background-color", []string{"global", "colors", "background"}},
		{"color", []string{"global", "colors", "text"}},
	},
	element.KindImage: {
		{"border-radius", []string{"global", "spacing", "borderRadius"}},
	},
	element.KindIcon: {
		{"color", []string{"global", "colors", "primary"}},
	},
	element.KindDivider: {
		{"border-color", []string{"global", "colors", "secondary"}},
	},
}

// ImplicitStyle is the style an element of kind gets from the resolved
// theme alone. Leaves that are missing or not strings are skipped.
func ImplicitStyle(cfg theme.Config, kind element.Kind) Style {
	out := make(Style)
	for _, src := range implicitSources[element.ParseKind(string(kind))] {
		if v := cfg.String(src.path...); v != "" {
			out[src.property] = v
		}
	}
	return out
}
