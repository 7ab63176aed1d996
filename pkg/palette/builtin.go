package palette

// DefaultPaletteID names the palette whose colours equal the default
// theme.
const DefaultPaletteID = "rose"

// BuiltinPalettes returns the palettes shipped with the editor.
func BuiltinPalettes() []Palette {
	return []Palette{
		{
			ID:   DefaultPaletteID,
			Name: "Rose Boutique",
			Colors: Colors{
				Background: "#FFF9FB", Text: "#2D1B24", Primary: "#C2185B",
				Secondary: "#F8BBD0", Accent: "#FFD54F", Muted: "#8D6E7B",
			},
			Hero:    HeroColors{BackgroundColor: "#FCE4EC", TextColor: "#2D1B24", OverlayColor: "#000000"},
			Cards:   CardColors{BackgroundColor: "#FFFFFF", TextColor: "#2D1B24", BorderColor: "#F3D1DC"},
			Buttons: ButtonColors{BackgroundColor: "#C2185B", TextColor: "#FFFFFF", HoverColor: "#AD1457"},
			Footer:  FooterColors{BackgroundColor: "#2D1B24", TextColor: "#FCE4EC", LinkColor: "#F8BBD0"},
		},
		{
			ID:   "ocean",
			Name: "Ocean Breeze",
			Colors: Colors{
				Background: "#F5FBFF", Text: "#0D2436", Primary: "#0277BD",
				Secondary: "#B3E5FC", Accent: "#26C6DA", Muted: "#607D8B",
			},
			Hero:    HeroColors{BackgroundColor: "#E1F5FE", TextColor: "#0D2436", OverlayColor: "#01579B"},
			Cards:   CardColors{BackgroundColor: "#FFFFFF", TextColor: "#0D2436", BorderColor: "#CFE8F7"},
			Buttons: ButtonColors{BackgroundColor: "#0277BD", TextColor: "#FFFFFF", HoverColor: "#01579B"},
			Footer:  FooterColors{BackgroundColor: "#0D2436", TextColor: "#E1F5FE", LinkColor: "#81D4FA"},
		},
		{
			ID:   "forest",
			Name: "Forest Market",
			Colors: Colors{
				Background: "#F7FAF5", Text: "#1B2A1E", Primary: "#2E7D32",
				Secondary: "#C8E6C9", Accent: "#F9A825", Muted: "#6D7F6F",
			},
			Hero:    HeroColors{BackgroundColor: "#E8F5E9", TextColor: "#1B2A1E", OverlayColor: "#1B5E20"},
			Cards:   CardColors{BackgroundColor: "#FFFFFF", TextColor: "#1B2A1E", BorderColor: "#D7E8D5"},
			Buttons: ButtonColors{BackgroundColor: "#2E7D32", TextColor: "#FFFFFF", HoverColor: "#1B5E20"},
			Footer:  FooterColors{BackgroundColor: "#1B2A1E", TextColor: "#E8F5E9", LinkColor: "#A5D6A7"},
		},
		{
			ID:   "midnight",
			Name: "Midnight",
			Colors: Colors{
				Background: "#121212", Text: "#ECECEC", Primary: "#BB86FC",
				Secondary: "#3700B3", Accent: "#03DAC6", Muted: "#9E9E9E",
			},
			Hero:    HeroColors{BackgroundColor: "#1E1E1E", TextColor: "#FFFFFF", OverlayColor: "#000000"},
			Cards:   CardColors{BackgroundColor: "#1E1E1E", TextColor: "#ECECEC", BorderColor: "#2C2C2C"},
			Buttons: ButtonColors{BackgroundColor: "#BB86FC", TextColor: "#121212", HoverColor: "#9A67EA"},
			Footer:  FooterColors{BackgroundColor: "#000000", TextColor: "#BDBDBD", LinkColor: "#BB86FC"},
		},
		{
			ID:   "sand",
			Name: "Desert Sand",
			Colors: Colors{
				Background: "#FDF8F1", Text: "#3E2C1C", Primary: "#B5651D",
				Secondary: "#F1DEC2", Accent: "#E09F3E", Muted: "#8A7563",
			},
			Hero:    HeroColors{BackgroundColor: "#F6E8D3", TextColor: "#3E2C1C", OverlayColor: "#3E2C1C"},
			Cards:   CardColors{BackgroundColor: "#FFFFFF", TextColor: "#3E2C1C", BorderColor: "#EADAC3"},
			Buttons: ButtonColors{BackgroundColor: "#B5651D", TextColor: "#FFFFFF", HoverColor: "#8E4E15"},
			Footer:  FooterColors{BackgroundColor: "#3E2C1C", TextColor: "#F6E8D3", LinkColor: "#E09F3E"},
		},
		{
			ID:   "mono",
			Name: "Monochrome",
			Colors: Colors{
				Background: "#FFFFFF", Text: "#111111", Primary: "#111111",
				Secondary: "#E0E0E0", Accent: "#757575", Muted: "#9E9E9E",
			},
			Hero:    HeroColors{BackgroundColor: "#F5F5F5", TextColor: "#111111", OverlayColor: "#000000"},
			Cards:   CardColors{BackgroundColor: "#FFFFFF", TextColor: "#111111", BorderColor: "#E0E0E0"},
			Buttons: ButtonColors{BackgroundColor: "#111111", TextColor: "#FFFFFF", HoverColor: "#424242"},
			Footer:  FooterColors{BackgroundColor: "#111111", TextColor: "#F5F5F5", LinkColor: "#BDBDBD"},
		},
	}
}

// DefaultTypographyID names the preset matching the default theme.
const DefaultTypographyID = "classic"

// BuiltinTypography returns the typography presets shipped with the
// editor.
func BuiltinTypography() []TypographyPreset {
	return []TypographyPreset{
		{
			ID: DefaultTypographyID, Name: "Classic Elegance",
			HeadingFont: "Playfair Display", BodyFont: "Inter", BaseSize: "16px",
			HeadingWeight: "700", BodyWeight: "400", LineHeight: "1.6", LetterSpacing: "0",
		},
		{
			ID: "modern", Name: "Modern Clean",
			HeadingFont: "Montserrat", BodyFont: "Open Sans", BaseSize: "16px",
			HeadingWeight: "600", BodyWeight: "400", LineHeight: "1.5", LetterSpacing: "0.01em",
		},
		{
			ID: "editorial", Name: "Editorial",
			HeadingFont: "Cormorant Garamond", BodyFont: "Lora", BaseSize: "17px",
			HeadingWeight: "600", BodyWeight: "400", LineHeight: "1.7", LetterSpacing: "0",
		},
		{
			ID: "playful", Name: "Playful",
			HeadingFont: "Poppins", BodyFont: "Nunito", BaseSize: "16px",
			HeadingWeight: "800", BodyWeight: "400", LineHeight: "1.6", LetterSpacing: "0.02em",
		},
	}
}
