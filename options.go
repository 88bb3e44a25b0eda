package folio

import (
	"github.com/charmbracelet/log"

	"github.com/tsawler/folio/layout"
)

// flowConfig holds the pending configuration of a Pagination chain.
// Engine options resolve lazily: a page setup file named in the chain
// is loaded when a terminal operation runs, then the explicit overrides
// apply on top.
type flowConfig struct {
	options   layout.Options
	setupPath string

	// Overrides applied after the setup file, recorded only when set.
	preset    string
	columns   int
	landscape bool
	logger    *log.Logger
}

// defaultConfig returns the default pagination configuration.
func defaultConfig() flowConfig {
	return flowConfig{
		options: layout.DefaultOptions(),
	}
}

// clone creates a copy of flowConfig. Engine options carry no
// reference fields apart from the logger, which chains share on
// purpose.
func (c flowConfig) clone() flowConfig {
	return flowConfig{
		options:   c.options,
		setupPath: c.setupPath,
		preset:    c.preset,
		columns:   c.columns,
		landscape: c.landscape,
		logger:    c.logger,
	}
}
