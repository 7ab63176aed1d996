package palette

import "github.com/YoussefAz2/elenashop-sub001/pkg/theme"

// TypographyPreset is a complete global.typography section.
type TypographyPreset struct {
	ID            string `json:"id" yaml:"id" validate:"required"`
	Name          string `json:"name" yaml:"name" validate:"required"`
	HeadingFont   string `json:"headingFont" yaml:"headingFont" validate:"required"`
	BodyFont      string `json:"bodyFont" yaml:"bodyFont" validate:"required"`
	BaseSize      string `json:"baseSize" yaml:"baseSize" validate:"required"`
	HeadingWeight string `json:"headingWeight" yaml:"headingWeight" validate:"required"`
	BodyWeight    string `json:"bodyWeight" yaml:"bodyWeight" validate:"required"`
	LineHeight    string `json:"lineHeight" yaml:"lineHeight" validate:"required"`
	LetterSpacing string `json:"letterSpacing" yaml:"letterSpacing" validate:"required"`
}

func (p TypographyPreset) Tree() map[string]interface{} {
	return map[string]interface{}{
		"headingFont":   p.HeadingFont,
		"bodyFont":      p.BodyFont,
		"baseSize":      p.BaseSize,
		"headingWeight": p.HeadingWeight,
		"bodyWeight":    p.BodyWeight,
		"lineHeight":    p.LineHeight,
		"letterSpacing": p.LetterSpacing,
	}
}

// ApplyTo returns a copy of cfg whose typography section is p.
func (p TypographyPreset) ApplyTo(cfg theme.Config) theme.Config {
	out := cfg.Clone()
	if out == nil {
		out = theme.Config{}
	}
	out.Set(p.Tree(), theme.KeyGlobal, "typography")
	return out
}
