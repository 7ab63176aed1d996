package element

import "strings"

// Kind is the semantic role of an editable element.
type Kind string

const (
	KindTitle       Kind = "title"
	KindParagraph   Kind = "paragraph"
	KindButton      Kind = "button"
	KindImage       Kind = "image"
	KindProductCard Kind = "productCard"
	KindContainer   Kind = "container"
	KindIcon        Kind = "icon"
	KindDivider     Kind = "divider"
)

// Kinds lists the closed set of roles.
var Kinds = []Kind{
	KindTitle,
	KindParagraph,
	KindButton,
	KindImage,
	KindProductCard,
	KindContainer,
	KindIcon,
	KindDivider,
}

var legacyAliases = map[string]Kind{
	"text":    KindTitle,
	"section": KindContainer,
}

// ParseKind maps a raw role name onto the closed set. Legacy aliases
// are translated; empty and unknown names become KindContainer.
func ParseKind(raw string) Kind {
	name := strings.TrimSpace(raw)
	if alias, ok := legacyAliases[name]; ok {
		return alias
	}
	for _, k := range Kinds {
		if string(k) == name {
			return k
		}
	}
	return KindContainer
}
