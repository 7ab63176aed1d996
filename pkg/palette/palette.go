package palette

import (
	"errors"
	"fmt"

	"github.com/YoussefAz2/elenashop-sub001/pkg/theme"
)

var (
	ErrPaletteNotFound = errors.New("palette not found")
	ErrPresetNotFound  = errors.New("typography preset not found")
)

// Colors is the base colour set of a palette. It replaces
// global.colors wholesale.
type Colors struct {
	Background string `json:"background" yaml:"background" validate:"required"`
	Text       string `json:"text" yaml:"text" validate:"required"`
	Primary    string `json:"primary" yaml:"primary" validate:"required"`
	Secondary  string `json:"secondary" yaml:"secondary" validate:"required"`
	Accent     string `json:"accent" yaml:"accent" validate:"required"`
	Muted      string `json:"muted" yaml:"muted" validate:"required"`
}

type HeroColors struct {
	BackgroundColor string `json:"backgroundColor" yaml:"backgroundColor" validate:"required"`
	TextColor       string `json:"textColor" yaml:"textColor" validate:"required"`
	OverlayColor    string `json:"overlayColor" yaml:"overlayColor" validate:"required"`
}

type CardColors struct {
	BackgroundColor string `json:"backgroundColor" yaml:"backgroundColor" validate:"required"`
	TextColor       string `json:"textColor" yaml:"textColor" validate:"required"`
	BorderColor     string `json:"borderColor" yaml:"borderColor" validate:"required"`
}

type ButtonColors struct {
	BackgroundColor string `json:"backgroundColor" yaml:"backgroundColor" validate:"required"`
	TextColor       string `json:"textColor" yaml:"textColor" validate:"required"`
	HoverColor      string `json:"hoverColor" yaml:"hoverColor" validate:"required"`
}

type FooterColors struct {
	BackgroundColor string `json:"backgroundColor" yaml:"backgroundColor" validate:"required"`
	TextColor       string `json:"textColor" yaml:"textColor" validate:"required"`
	LinkColor       string `json:"linkColor" yaml:"linkColor" validate:"required"`
}

// Palette is a complete, static colour record. Applying it rewrites
// every colour of the theme in one step.
type Palette struct {
	ID      string       `json:"id" yaml:"id" validate:"required"`
	Name    string       `json:"name" yaml:"name" validate:"required"`
	Colors  Colors       `json:"colors" yaml:"colors"`
	Hero    HeroColors   `json:"hero" yaml:"hero"`
	Cards   CardColors   `json:"cards" yaml:"cards"`
	Buttons ButtonColors `json:"buttons" yaml:"buttons"`
	Footer  FooterColors `json:"footer" yaml:"footer"`
}

// ColorsTree returns the value written to global.colors.
func (p Palette) ColorsTree() map[string]interface{} {
	return map[string]interface{}{
		"background": p.Colors.Background,
		"text":       p.Colors.Text,
		"primary":    p.Colors.Primary,
		"secondary":  p.Colors.Secondary,
		"accent":     p.Colors.Accent,
		"muted":      p.Colors.Muted,
	}
}

func (p Palette) sectionColors() map[string]map[string]interface{} {
	return map[string]map[string]interface{}{
		"hero": {
			"backgroundColor": p.Hero.BackgroundColor,
			"textColor":       p.Hero.TextColor,
			"overlayColor":    p.Hero.OverlayColor,
		},
		"cards": {
			"backgroundColor": p.Cards.BackgroundColor,
			"textColor":       p.Cards.TextColor,
			"borderColor":     p.Cards.BorderColor,
		},
		"buttons": {
			"backgroundColor": p.Buttons.BackgroundColor,
			"textColor":       p.Buttons.TextColor,
			"hoverColor":      p.Buttons.HoverColor,
		},
		"footer": {
			"backgroundColor": p.Footer.BackgroundColor,
			"textColor":       p.Footer.TextColor,
			"linkColor":       p.Footer.LinkColor,
		},
	}
}

// ApplyTo returns a copy of cfg carrying p. global.colors is replaced
// wholesale; hero, cards, buttons and footer get every colour key
// rewritten while their non-colour keys (height, radius, ...) stay.
// Everything else is left untouched. cfg is not modified.
func (p Palette) ApplyTo(cfg theme.Config) theme.Config {
	out := cfg.Clone()
	if out == nil {
		out = theme.Config{}
	}

	out.Set(p.ColorsTree(), theme.KeyGlobal, "colors")
	for section, colors := range p.sectionColors() {
		existing := out.Object(theme.KeyGlobal, section)
		merged := make(map[string]interface{}, len(existing)+len(colors))
		for k, v := range existing {
			merged[k] = v
		}
		for k, v := range colors {
			merged[k] = v
		}
		out.Set(merged, theme.KeyGlobal, section)
	}
	return out
}

// Catalog indexes palettes and typography presets by id, keeping
// registration order for listing.
type Catalog struct {
	palettes     map[string]Palette
	paletteOrder []string
	presets      map[string]TypographyPreset
	presetOrder  []string
}

// NewCatalog returns a catalog holding the built-in records.
func NewCatalog() *Catalog {
	c := &Catalog{
		palettes: make(map[string]Palette),
		presets:  make(map[string]TypographyPreset),
	}
	for _, p := range BuiltinPalettes() {
		c.AddPalette(p)
	}
	for _, p := range BuiltinTypography() {
		c.AddTypography(p)
	}
	return c
}

// AddPalette registers p, replacing a palette with the same id.
func (c *Catalog) AddPalette(p Palette) {
	if _, exists := c.palettes[p.ID]; !exists {
		c.paletteOrder = append(c.paletteOrder, p.ID)
	}
	c.palettes[p.ID] = p
}

// AddTypography registers p, replacing a preset with the same id.
func (c *Catalog) AddTypography(p TypographyPreset) {
	if _, exists := c.presets[p.ID]; !exists {
		c.presetOrder = append(c.presetOrder, p.ID)
	}
	c.presets[p.ID] = p
}

func (c *Catalog) Palette(id string) (Palette, bool) {
	p, ok := c.palettes[id]
	return p, ok
}

func (c *Catalog) Typography(id string) (TypographyPreset, bool) {
	p, ok := c.presets[id]
	return p, ok
}

// Palettes lists palettes in registration order.
func (c *Catalog) Palettes() []Palette {
	out := make([]Palette, 0, len(c.paletteOrder))
	for _, id := range c.paletteOrder {
		out = append(out, c.palettes[id])
	}
	return out
}

// TypographyPresets lists presets in registration order.
func (c *Catalog) TypographyPresets() []TypographyPreset {
	out := make([]TypographyPreset, 0, len(c.presetOrder))
	for _, id := range c.presetOrder {
		out = append(out, c.presets[id])
	}
	return out
}

// Apply rewrites the colour sections of cfg with the palette id.
func (c *Catalog) Apply(id string, cfg theme.Config) (theme.Config, error) {
	p, ok := c.palettes[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrPaletteNotFound, id)
	}
	return p.ApplyTo(cfg), nil
}

// ApplyTypography replaces global.typography with the preset id.
func (c *Catalog) ApplyTypography(id string, cfg theme.Config) (theme.Config, error) {
	p, ok := c.presets[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrPresetNotFound, id)
	}
	return p.ApplyTo(cfg), nil
}

var defaultCatalog = NewCatalog()

// Apply uses the built-in catalog.
func Apply(id string, cfg theme.Config) (theme.Config, error) {
	return defaultCatalog.Apply(id, cfg)
}
