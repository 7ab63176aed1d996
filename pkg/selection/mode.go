package selection

// Mode describes the hosting surface. Interaction handlers exist only
// when the surface is editing and not previewing.
type Mode struct {
	Editing bool `json:"editing"`
	Preview bool `json:"preview"`
}

var (
	ModeView    = Mode{}
	ModeEditing = Mode{Editing: true}
	ModePreview = Mode{Editing: true, Preview: true}
)

// Interactive is the gate for wiring hover and selection.
func (m Mode) Interactive() bool {
	return m.Editing && !m.Preview
}
