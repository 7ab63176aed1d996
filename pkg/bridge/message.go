package bridge

import (
	"github.com/YoussefAz2/elenashop-sub001/pkg/element"
)

// EditSection is the only message type the preview sends.
const EditSection = "ELENA_EDIT_SECTION"

// Message asks the editor to open the editing surface for one element.
type Message struct {
	Type         string       `json:"type"`
	SectionID    string       `json:"sectionId"`
	SectionType  element.Kind `json:"sectionType"`
	SectionLabel string       `json:"sectionLabel"`
}

func NewEditSection(d element.Descriptor) Message {
	d = d.Normalize()
	return Message{
		Type:         EditSection,
		SectionID:    d.ID,
		SectionType:  d.Type,
		SectionLabel: d.Label,
	}
}

// Descriptor converts the message back into the element it names.
func (m Message) Descriptor() element.Descriptor {
	return element.NewDescriptor(m.SectionID, string(m.SectionType), m.SectionLabel)
}

// Envelope carries a message together with the origin it was posted
// from and the editor it is addressed to.
type Envelope struct {
	Origin  string  `json:"origin"`
	Target  string  `json:"target"`
	Message Message `json:"message"`
}

// Poster delivers messages to the editor. Delivery is fire-and-forget.
type Poster interface {
	Post(m Message)
}

type PosterFunc func(m Message)

func (f PosterFunc) Post(m Message) { f(m) }
