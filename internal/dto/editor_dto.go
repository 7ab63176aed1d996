package dto

import (
	"time"

	"github.com/YoussefAz2/elenashop-sub001/pkg/binding"
	"github.com/YoussefAz2/elenashop-sub001/pkg/editor"
	"github.com/YoussefAz2/elenashop-sub001/pkg/element"
	"github.com/YoussefAz2/elenashop-sub001/pkg/override"
)

type OpenSessionRequest struct {
	Preview bool `json:"preview"`
}

type SessionResponse struct {
	editor.Snapshot
	CreatedAt time.Time `json:"created_at"`
}

type SetOverrideRequest struct {
	ElementId string                 `validate:"required,max=200"`
	Style     override.StyleOverride `json:"style"`
}

type ElementRequest struct {
	ElementId string `validate:"required,max=200"`
}

type SelectElementRequest struct {
	Element element.Descriptor `json:"element" validate:"required"`
}

type BindElementsRequest struct {
	Elements []editor.Element `json:"elements" validate:"required,min=1,max=500,dive"`
}

type BindElementsResponse struct {
	Elements []binding.Bound `json:"elements"`
}
