package binding

import (
	"github.com/YoussefAz2/elenashop-sub001/pkg/element"
	"github.com/YoussefAz2/elenashop-sub001/pkg/override"
	"github.com/YoussefAz2/elenashop-sub001/pkg/selection"
	"github.com/YoussefAz2/elenashop-sub001/pkg/theme"
)

// Deps is what Bind reads. A nil Overrides behaves as an empty store.
type Deps struct {
	Theme     theme.Config
	Overrides override.Reader
	Selection selection.State
	Mode      selection.Mode
}

// Bound is the render contract of one editable element.
type Bound struct {
	Descriptor  element.Descriptor  `json:"descriptor"`
	Style       Style               `json:"style"`
	CSS         string              `json:"css"`
	Attributes  map[string]string   `json:"attributes"`
	Interactive bool                `json:"interactive"`
	Indicator   selection.Indicator `json:"indicator"`
}

// Bind computes the inline style of d and its editing affordances.
// Precedence, lowest first: the theme's implicit style for the kind,
// the authored style, the element's override. Overrides apply in every
// mode; rings and the customised badge only when the mode is
// interactive.
func Bind(d element.Descriptor, authored Style, deps Deps) Bound {
	d = d.Normalize()

	style := ImplicitStyle(deps.Theme, d.Type).With(authored)
	if deps.Overrides != nil {
		if o, ok := deps.Overrides.Get(d.ID); ok {
			style = style.WithOverride(o)
		}
	}

	b := Bound{
		Descriptor:  d,
		Style:       style,
		CSS:         style.CSS(),
		Attributes:  d.Attributes(),
		Interactive: deps.Mode.Interactive(),
	}
	if b.Interactive {
		b.Indicator = selection.Indicators(d.ID, deps.Selection, deps.Overrides)
	}
	return b
}
