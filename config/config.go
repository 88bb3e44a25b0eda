package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/tsawler/folio/layout"
	"github.com/tsawler/folio/model"
)

// PageSetup is the on-disk description of page geometry and layout
// defaults. All dimension fields take unit strings ("8.5in", "2cm",
// "96px", "72pt", "720tw"); a bare number is pixels. Zero values leave
// the engine default in place.
type PageSetup struct {
	// Preset names a standard page size; see PagePresetNames. An
	// explicit Size overrides it.
	Preset string `yaml:"preset" toml:"preset" json:"preset,omitempty"`

	// Landscape swaps the page width and height after the size is
	// resolved.
	Landscape bool `yaml:"landscape" toml:"landscape" json:"landscape"`

	// Size is an explicit page extent.
	Size *SizeSetup `yaml:"size" toml:"size" json:"size,omitempty"`

	// MarginPreset names a margin scheme; see MarginPresetNames.
	// Explicit Margins fields override it one by one.
	MarginPreset string `yaml:"margin-preset" toml:"margin-preset" json:"margin_preset,omitempty"`

	// Margins bound the content box.
	Margins *MarginsSetup `yaml:"margins" toml:"margins" json:"margins,omitempty"`

	// Columns is the column arrangement of the content box.
	Columns *ColumnsSetup `yaml:"columns" toml:"columns" json:"columns,omitempty"`

	// PageGap is the vertical gap between pages in a continuous view.
	PageGap string `yaml:"page-gap" toml:"page-gap" json:"page_gap,omitempty"`

	// LineHeight is the height an empty paragraph advances the cursor by.
	LineHeight string `yaml:"line-height" toml:"line-height" json:"line_height,omitempty"`

	// TabInterval is the spacing of the implicit tab grid.
	TabInterval string `yaml:"tab-interval" toml:"tab-interval" json:"tab_interval,omitempty"`

	// TitlePage selects the First header/footer variant on the first
	// page of each section.
	TitlePage bool `yaml:"title-page" toml:"title-page" json:"title_page"`

	// EvenAndOddHeaders selects the Even header/footer variant on even
	// pages.
	EvenAndOddHeaders bool `yaml:"even-and-odd-headers" toml:"even-and-odd-headers" json:"even_and_odd_headers"`

	// Language is the BCP 47 tag used to format field values.
	Language string `yaml:"language" toml:"language" json:"language,omitempty"`
}

// SizeSetup is an explicit page extent.
type SizeSetup struct {
	Width  string `yaml:"width" toml:"width" json:"width"`
	Height string `yaml:"height" toml:"height" json:"height"`
}

// MarginsSetup holds the content box margins plus the header and footer
// band distances. Empty fields keep their preset or default value.
type MarginsSetup struct {
	Top    string `yaml:"top" toml:"top" json:"top,omitempty"`
	Right  string `yaml:"right" toml:"right" json:"right,omitempty"`
	Bottom string `yaml:"bottom" toml:"bottom" json:"bottom,omitempty"`
	Left   string `yaml:"left" toml:"left" json:"left,omitempty"`
	Header string `yaml:"header" toml:"header" json:"header,omitempty"`
	Footer string `yaml:"footer" toml:"footer" json:"footer,omitempty"`
}

// ColumnsSetup is the column arrangement of the content box.
type ColumnsSetup struct {
	Count int    `yaml:"count" toml:"count" json:"count"`
	Gap   string `yaml:"gap" toml:"gap" json:"gap,omitempty"`
}

// Load reads a page setup file and resolves it to engine options. The
// format is chosen by extension: .yaml or .yml for YAML, .toml for
// TOML.
func Load(filename string) (layout.Options, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return layout.Options{}, fmt.Errorf("config: read %s: %w", filename, err)
	}
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".yaml", ".yml":
		return ParseYAML(data)
	case ".toml":
		return ParseTOML(data)
	default:
		return layout.Options{}, fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(filename))
	}
}

// ParseYAML resolves a YAML page setup document to engine options.
func ParseYAML(data []byte) (layout.Options, error) {
	var setup PageSetup
	if err := yaml.Unmarshal(data, &setup); err != nil {
		return layout.Options{}, fmt.Errorf("config: parse yaml: %w", err)
	}
	return setup.Options()
}

// ParseTOML resolves a TOML page setup document to engine options.
func ParseTOML(data []byte) (layout.Options, error) {
	var setup PageSetup
	if err := toml.Unmarshal(data, &setup); err != nil {
		return layout.Options{}, fmt.Errorf("config: parse toml: %w", err)
	}
	return setup.Options()
}

// Options resolves the setup onto the engine defaults and validates the
// result. Resolution order is preset, then explicit size, then
// landscape; margins resolve preset first, then field overrides.
func (p *PageSetup) Options() (layout.Options, error) {
	opts := layout.DefaultOptions()

	if p.Preset != "" {
		size, ok := PagePreset(p.Preset)
		if !ok {
			return layout.Options{}, fmt.Errorf("%w: %q (known: %s)",
				ErrUnknownPreset, p.Preset, strings.Join(PagePresetNames(), ", "))
		}
		opts.PageSize = size
	}
	if p.Size != nil {
		w, err := dimensionField("size.width", p.Size.Width)
		if err != nil {
			return layout.Options{}, err
		}
		h, err := dimensionField("size.height", p.Size.Height)
		if err != nil {
			return layout.Options{}, err
		}
		opts.PageSize = model.Size{Width: w, Height: h}
	}
	if p.Landscape && opts.PageSize.Height > opts.PageSize.Width {
		opts.PageSize.Width, opts.PageSize.Height = opts.PageSize.Height, opts.PageSize.Width
	}

	if p.MarginPreset != "" {
		m, ok := MarginPreset(p.MarginPreset)
		if !ok {
			return layout.Options{}, fmt.Errorf("%w: %q (known: %s)",
				ErrUnknownMarginPreset, p.MarginPreset, strings.Join(MarginPresetNames(), ", "))
		}
		opts.Margins = m
	}
	if p.Margins != nil {
		if err := p.Margins.apply(&opts.Margins); err != nil {
			return layout.Options{}, err
		}
	}

	if p.Columns != nil {
		if p.Columns.Count > 0 {
			opts.Columns.Count = p.Columns.Count
		}
		if p.Columns.Gap != "" {
			gap, err := dimensionField("columns.gap", p.Columns.Gap)
			if err != nil {
				return layout.Options{}, err
			}
			opts.Columns.Gap = gap
		}
	}

	if p.PageGap != "" {
		v, err := dimensionField("page-gap", p.PageGap)
		if err != nil {
			return layout.Options{}, err
		}
		opts.PageGap = v
	}
	if p.LineHeight != "" {
		v, err := dimensionField("line-height", p.LineHeight)
		if err != nil {
			return layout.Options{}, err
		}
		opts.DefaultLineHeight = v
	}
	if p.TabInterval != "" {
		v, err := dimensionField("tab-interval", p.TabInterval)
		if err != nil {
			return layout.Options{}, err
		}
		opts.DefaultTabInterval = model.PixelsToTwips(v)
	}

	opts.TitlePage = p.TitlePage
	opts.EvenAndOddHeaders = p.EvenAndOddHeaders
	if p.Language != "" {
		opts.Language = p.Language
	}

	if err := opts.Validate(); err != nil {
		return layout.Options{}, err
	}
	return opts, nil
}

// apply overrides the non-empty fields onto m.
func (s *MarginsSetup) apply(m *model.Margins) error {
	fields := []struct {
		name  string
		value string
		dst   *float64
	}{
		{"margins.top", s.Top, &m.Top},
		{"margins.right", s.Right, &m.Right},
		{"margins.bottom", s.Bottom, &m.Bottom},
		{"margins.left", s.Left, &m.Left},
		{"margins.header", s.Header, &m.Header},
		{"margins.footer", s.Footer, &m.Footer},
	}
	for _, f := range fields {
		if f.value == "" {
			continue
		}
		v, err := dimensionField(f.name, f.value)
		if err != nil {
			return err
		}
		*f.dst = v
	}
	return nil
}
