package palette

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// File is the on-disk catalog format.
type File struct {
	Palettes   []Palette          `yaml:"palettes" validate:"dive"`
	Typography []TypographyPreset `yaml:"typography" validate:"dive"`
}

var validate = validator.New()

// Decode parses a YAML catalog file body.
func Decode(data []byte) (*File, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse palette file: %w", err)
	}
	if err := validate.Struct(f); err != nil {
		return nil, fmt.Errorf("invalid palette file: %w", err)
	}
	return &f, nil
}

// LoadFile merges the catalog at path into c. Records with a built-in
// id replace the built-in one.
func (c *Catalog) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read palette file: %w", err)
	}
	f, err := Decode(data)
	if err != nil {
		return err
	}
	for _, p := range f.Palettes {
		c.AddPalette(p)
	}
	for _, p := range f.Typography {
		c.AddTypography(p)
	}
	return nil
}
