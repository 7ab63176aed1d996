package element

// Markup attribute names carrying a descriptor on rendered nodes.
const (
	AttrID    = "data-editable-id"
	AttrKind  = "data-editable"
	AttrLabel = "data-editable-label"
)

// Descriptor addresses one editable element. The ID is the key shared
// by the override store, the selection state and bridge messages.
type Descriptor struct {
	ID    string `json:"id" validate:"required,max=200"`
	Type  Kind   `json:"type"`
	Label string `json:"label"`
}

// NewDescriptor normalises the role and falls back to the id when no
// label is given.
func NewDescriptor(id, kind, label string) Descriptor {
	d := Descriptor{ID: id, Type: Kind(kind), Label: label}
	return d.Normalize()
}

// Normalize applies the kind aliases and the label fallback.
func (d Descriptor) Normalize() Descriptor {
	d.Type = ParseKind(string(d.Type))
	if d.Label == "" {
		d.Label = d.ID
	}
	return d
}

// Attributes returns the markup attributes for d.
func (d Descriptor) Attributes() map[string]string {
	n := d.Normalize()
	return map[string]string{
		AttrID:    n.ID,
		AttrKind:  string(n.Type),
		AttrLabel: n.Label,
	}
}

// FromAttributes reads a descriptor back from markup attributes. ok is
// false when the id attribute is missing.
func FromAttributes(attrs map[string]string) (Descriptor, bool) {
	id := attrs[AttrID]
	if id == "" {
		return Descriptor{}, false
	}
	return NewDescriptor(id, attrs[AttrKind], attrs[AttrLabel]), true
}
