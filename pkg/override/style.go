package override

// StyleOverride is a sparse set of visual properties attached to one
// element. Empty fields inherit from the resolved theme.
type StyleOverride struct {
	Color           string `json:"color,omitempty" validate:"omitempty,max=64"`
	BackgroundColor string `json:"backgroundColor,omitempty" validate:"omitempty,max=64"`
	FontSize        string `json:"fontSize,omitempty" validate:"omitempty,max=32"`
	FontWeight      string `json:"fontWeight,omitempty" validate:"omitempty,max=16"`
	FontFamily      string `json:"fontFamily,omitempty" validate:"omitempty,max=128"`
	TextAlign       string `json:"textAlign,omitempty" validate:"omitempty,oneof=left center right justify start end"`
}

// Property is one CSS declaration derived from an override.
type Property struct {
	Name  string
	Value string
}

// IsEmpty reports whether no field is set.
func (s StyleOverride) IsEmpty() bool {
	return s == StyleOverride{}
}

// Merge returns s with every non-empty field of next applied on top.
func (s StyleOverride) Merge(next StyleOverride) StyleOverride {
	if next.Color != "" {
		s.Color = next.Color
	}
	if next.BackgroundColor != "" {
		s.BackgroundColor = next.BackgroundColor
	}
	if next.FontSize != "" {
		s.FontSize = next.FontSize
	}
	if next.FontWeight != "" {
		s.FontWeight = next.FontWeight
	}
	if next.FontFamily != "" {
		s.FontFamily = next.FontFamily
	}
	if next.TextAlign != "" {
		s.TextAlign = next.TextAlign
	}
	return s
}

// Properties lists the set fields as CSS declarations, in a fixed
// order.
func (s StyleOverride) Properties() []Property {
	all := []Property{
		{Name: "color", Value: s.Color},
		{Name: "background-color", Value: s.BackgroundColor},
		{Name: "font-size", Value: s.FontSize},
		{Name: "font-weight", Value: s.FontWeight},
		{Name: "font-family", Value: s.FontFamily},
		{Name: "text-align", Value: s.TextAlign},
	}
	out := all[:0]
	for _, p := range all {
		if p.Value != "" {
			out = append(out, p)
		}
	}
	return out
}
