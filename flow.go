package folio

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/tsawler/folio/config"
	"github.com/tsawler/folio/layout"
	"github.com/tsawler/folio/model"
	"github.com/tsawler/folio/snapshot"
)

// Pagination provides a fluent interface for laying out measured
// content. Each configuration method returns a new Pagination
// instance, making it safe for concurrent use and allowing method
// chaining.
type Pagination struct {
	// Input flow. Blocks and measures are parallel slices.
	blocks   []model.FlowBlock
	measures []model.Measure

	// Configuration
	config flowConfig

	// Accumulated error (fail-fast)
	err error
}

// clone creates a shallow copy of the Pagination with a copy of its
// configuration. Each chain method returns a new instance; the input
// slices are shared and never mutated.
func (p *Pagination) clone() *Pagination {
	return &Pagination{
		blocks:   p.blocks,
		measures: p.measures,
		config:   p.config.clone(),
		err:      p.err,
	}
}

// Options replaces the engine options wholesale. A page setup file
// named earlier in the chain is dropped.
func (p *Pagination) Options(opts layout.Options) *Pagination {
	np := p.clone()
	np.config.options = opts
	np.config.setupPath = ""
	return np
}

// PageSetup loads engine options from a YAML or TOML page setup file.
// The file is read when a terminal operation runs; overrides named
// later in the chain apply on top of it.
//
// Example:
//
//	result, _, err := folio.Flow(blocks, measures).
//	    PageSetup("setup.yaml").
//	    Paginate()
func (p *Pagination) PageSetup(filename string) *Pagination {
	np := p.clone()
	np.config.setupPath = filename
	return np
}

// Preset selects a standard page size by name; see
// config.PagePresetNames. An unknown name fails the chain.
func (p *Pagination) Preset(name string) *Pagination {
	np := p.clone()
	if _, ok := config.PagePreset(name); !ok && np.err == nil {
		np.err = fmt.Errorf("%w: %q", config.ErrUnknownPreset, name)
	}
	np.config.preset = name
	return np
}

// Landscape swaps the page width and height after the size resolves.
func (p *Pagination) Landscape() *Pagination {
	np := p.clone()
	np.config.landscape = true
	return np
}

// Columns sets the column count of the content box.
func (p *Pagination) Columns(count int) *Pagination {
	np := p.clone()
	np.config.columns = count
	return np
}

// Logger routes engine debug output to l.
func (p *Pagination) Logger(l *log.Logger) *Pagination {
	np := p.clone()
	np.config.logger = l
	return np
}

// resolveOptions folds the setup file and the chain overrides into
// final engine options.
func (p *Pagination) resolveOptions() (layout.Options, error) {
	opts := p.config.options
	if p.config.setupPath != "" {
		loaded, err := config.Load(p.config.setupPath)
		if err != nil {
			return layout.Options{}, err
		}
		opts = loaded
	}
	if p.config.preset != "" {
		if size, ok := config.PagePreset(p.config.preset); ok {
			opts.PageSize = size
		}
	}
	if p.config.landscape && opts.PageSize.Height > opts.PageSize.Width {
		opts.PageSize.Width, opts.PageSize.Height = opts.PageSize.Height, opts.PageSize.Width
	}
	if p.config.columns > 0 {
		opts.Columns.Count = p.config.columns
	}
	if p.config.logger != nil {
		opts.Logger = p.config.logger
	}
	return opts, nil
}

// Paginate lays the flow out and returns the resulting pages along
// with any warnings the pass produced. Warnings mark content that was
// placed degraded, such as a single line taller than a column; the
// returned layout is always complete.
func (p *Pagination) Paginate() (*model.Layout, []model.Warning, error) {
	if p.err != nil {
		return nil, nil, p.err
	}
	opts, err := p.resolveOptions()
	if err != nil {
		return nil, nil, err
	}
	engine, err := layout.NewEngine(opts)
	if err != nil {
		return nil, nil, err
	}
	result, err := engine.Layout(p.blocks, p.measures)
	if err != nil {
		return nil, nil, err
	}
	return result, result.Warnings, nil
}

// PageCount lays the flow out and returns the number of pages
// produced.
func (p *Pagination) PageCount() (int, error) {
	result, _, err := p.Paginate()
	if err != nil {
		return 0, err
	}
	return result.PageCount(), nil
}

// Snapshot lays the flow out and writes the result to w in the binary
// snapshot container, for callers that cache layouts between edits.
// Snapshot options pass through to snapshot.Encode.
//
// Example:
//
//	var buf bytes.Buffer
//	result, _, err := folio.Flow(blocks, measures).
//	    Snapshot(&buf, snapshot.WithCompression(snapshot.CompLZ4))
func (p *Pagination) Snapshot(w io.Writer, opts ...snapshot.WriteOption) (*model.Layout, []model.Warning, error) {
	result, warnings, err := p.Paginate()
	if err != nil {
		return nil, nil, err
	}
	if err := snapshot.Encode(w, &snapshot.Snapshot{Layout: result}, opts...); err != nil {
		return nil, nil, err
	}
	return result, warnings, nil
}
