package layout

import (
	"math"
	"sort"
	"strings"

	"github.com/tsawler/folio/model"
)

// MeasureTextFunc returns the rendered pixel width of a string. The
// resolver calls it for text following a tab when resolving center,
// end, and decimal stops.
type MeasureTextFunc func(text string) float64

// TabContext carries the tab-relevant attributes of one paragraph.
// Positions are twips from the text start edge.
type TabContext struct {
	// Stops are the stops defined directly on the paragraph. Entries
	// with TabKindClear remove inherited stops at the same position
	// instead of defining one.
	Stops []model.TabStop

	// InheritedStops are stops inherited from the paragraph's style
	// chain. Direct stops at the same position override them.
	InheritedStops []model.TabStop

	// LeftIndent is the paragraph's left indent.
	LeftIndent model.Twips

	// HangingIndent marks a hanging-indent paragraph, which carries an
	// implicit stop at the left indent position.
	HangingIndent bool

	// DefaultInterval overrides the resolver's default grid interval
	// for this paragraph. Zero keeps the resolver's interval.
	DefaultInterval model.Twips
}

// TabResolution is the outcome of resolving one tab character
type TabResolution struct {
	// Width is the horizontal advance in pixels. Always at least one
	// pixel except for bar stops, which advance nothing.
	Width float64

	// Kind is the alignment of the stop that captured the tab, or
	// TabKindStart for the default grid.
	Kind model.TabKind

	// Leader is the fill style to paint across the advance.
	Leader model.TabLeader

	// StopPosition is the pixel position of the resolved stop from the
	// text start edge. Painting uses it for leaders and bar rules.
	StopPosition float64
}

// TabStopResolverConfig holds configuration options for tab resolution
type TabStopResolverConfig struct {
	// DefaultInterval is the spacing of the implicit tab grid in
	// twips.
	DefaultInterval model.Twips

	// DecimalSeparator is the character decimal stops align on.
	DecimalSeparator rune

	// MaxStopPosition caps how far out a stop can capture a tab.
	// Stops beyond it are ignored and the grid stops extending.
	MaxStopPosition model.Twips

	// PositionTolerance is the distance within which two stop
	// positions count as the same, for clears and overrides.
	PositionTolerance model.Twips
}

// DefaultTabStopResolverConfig returns a configuration with standard
// word-processing tab behavior: half-inch grid, period separator,
// ten-inch cap.
func DefaultTabStopResolverConfig() TabStopResolverConfig {
	return TabStopResolverConfig{
		DefaultInterval:   720,
		DecimalSeparator:  '.',
		MaxStopPosition:   14400,
		PositionTolerance: 20,
	}
}

// TabStopResolver resolves tab characters against a paragraph's
// effective tab stops. It merges direct and inherited stops, honors
// clear entries and hanging-indent stops, and falls back to the
// default grid when no explicit stop applies.
type TabStopResolver struct {
	config TabStopResolverConfig
}

// NewTabStopResolver creates a resolver with default configuration.
func NewTabStopResolver() *TabStopResolver {
	return NewTabStopResolverWithConfig(DefaultTabStopResolverConfig())
}

// NewTabStopResolverWithConfig creates a resolver with the specified
// configuration.
func NewTabStopResolverWithConfig(config TabStopResolverConfig) *TabStopResolver {
	if config.DefaultInterval <= 0 {
		config.DefaultInterval = 720
	}
	if config.DecimalSeparator == 0 {
		config.DecimalSeparator = '.'
	}
	if config.MaxStopPosition <= 0 {
		config.MaxStopPosition = 14400
	}
	return &TabStopResolver{config: config}
}

// Resolve computes the advance for one tab character. currentX is the
// pen position in pixels from the text start edge; following is the
// text between this tab and the next tab or line end; measure supplies
// text widths for alignment adjustment and may be nil when following
// is empty.
func (r *TabStopResolver) Resolve(currentX float64, ctx TabContext, following string, measure MeasureTextFunc) TabResolution {
	interval := r.interval(ctx)
	currentTw := model.PixelsToTwips(currentX)
	cleared := r.clearedPositions(ctx)

	for _, stop := range r.EffectiveStops(ctx) {
		if stop.Position <= currentTw {
			continue
		}
		if stop.Position > r.config.MaxStopPosition {
			break
		}

		stopX := stop.Position.Pixels()

		// Bar stops advance nothing; the stop position is where the
		// rule paints.
		if stop.Kind == model.TabKindBar {
			return TabResolution{
				Width:        0,
				Kind:         model.TabKindBar,
				Leader:       stop.Leader,
				StopPosition: stopX,
			}
		}

		width := stopX - currentX
		switch stop.Kind {
		case model.TabKindCenter:
			width -= r.measureWidth(following, measure) / 2
		case model.TabKindEnd:
			width -= r.measureWidth(following, measure)
		case model.TabKindDecimal:
			width -= r.measureWidth(r.decimalPrefix(following), measure)
		}

		// An adjusted advance below one pixel would be invisible;
		// the tab falls through to the default grid instead.
		if width < 1 {
			break
		}

		return TabResolution{
			Width:        width,
			Kind:         stop.Kind,
			Leader:       stop.Leader,
			StopPosition: stopX,
		}
	}

	return r.gridResolution(currentX, interval, cleared)
}

// EffectiveStops returns the sorted stops in force for a paragraph:
// inherited stops minus cleared ones, overridden by direct stops, plus
// the implicit hanging-indent stop. Stops left of the left indent are
// unreachable and dropped.
func (r *TabStopResolver) EffectiveStops(ctx TabContext) []model.TabStop {
	var stops []model.TabStop

	for _, inherited := range ctx.InheritedStops {
		if inherited.Kind == model.TabKindClear {
			continue
		}
		if inherited.Position < ctx.LeftIndent {
			continue
		}
		if r.hasStopNear(ctx.Stops, inherited.Position) {
			continue
		}
		stops = append(stops, inherited)
	}

	for _, direct := range ctx.Stops {
		if direct.Kind == model.TabKindClear {
			continue
		}
		if direct.Position < ctx.LeftIndent {
			continue
		}
		stops = append(stops, direct)
	}

	if ctx.HangingIndent && ctx.LeftIndent > 0 &&
		!r.nearAny(stops, ctx.LeftIndent) &&
		!r.clearedNear(r.clearedPositions(ctx), ctx.LeftIndent) {
		stops = append(stops, model.TabStop{
			Position: ctx.LeftIndent,
			Kind:     model.TabKindStart,
		})
	}

	sort.SliceStable(stops, func(i, j int) bool {
		return stops[i].Position < stops[j].Position
	})
	return stops
}

// clearedPositions collects the positions of clear entries from both
// stop lists. Cleared positions also suppress implicit grid stops.
func (r *TabStopResolver) clearedPositions(ctx TabContext) []model.Twips {
	var cleared []model.Twips
	for _, s := range ctx.Stops {
		if s.Kind == model.TabKindClear {
			cleared = append(cleared, s.Position)
		}
	}
	for _, s := range ctx.InheritedStops {
		if s.Kind == model.TabKindClear {
			cleared = append(cleared, s.Position)
		}
	}
	return cleared
}

// clearedNear reports whether a cleared position sits within tolerance
// of the position.
func (r *TabStopResolver) clearedNear(cleared []model.Twips, pos model.Twips) bool {
	for _, c := range cleared {
		if absTwips(c-pos) <= r.config.PositionTolerance {
			return true
		}
	}
	return false
}

// hasStopNear reports whether the list defines or clears a stop within
// tolerance of the position.
func (r *TabStopResolver) hasStopNear(stops []model.TabStop, pos model.Twips) bool {
	for _, s := range stops {
		if absTwips(s.Position-pos) <= r.config.PositionTolerance {
			return true
		}
	}
	return false
}

// nearAny reports whether any stop sits within tolerance of the
// position.
func (r *TabStopResolver) nearAny(stops []model.TabStop, pos model.Twips) bool {
	for _, s := range stops {
		if absTwips(s.Position-pos) <= r.config.PositionTolerance {
			return true
		}
	}
	return false
}

// gridResolution advances to the next default grid line, skipping grid
// lines suppressed by clear stops. The grid never produces a sub-pixel
// advance; within a pixel of a grid line the tab jumps to the
// following one.
func (r *TabStopResolver) gridResolution(currentX float64, interval model.Twips, cleared []model.Twips) TabResolution {
	step := interval.Pixels()
	width := step - math.Mod(currentX, step)
	if width < 1 {
		width += step
	}
	for r.clearedNear(cleared, model.PixelsToTwips(currentX+width)) &&
		model.PixelsToTwips(currentX+width) <= r.config.MaxStopPosition {
		width += step
	}
	return TabResolution{
		Width:        width,
		Kind:         model.TabKindStart,
		Leader:       model.TabLeaderNone,
		StopPosition: currentX + width,
	}
}

func (r *TabStopResolver) interval(ctx TabContext) model.Twips {
	if ctx.DefaultInterval > 0 {
		return ctx.DefaultInterval
	}
	return r.config.DefaultInterval
}

func (r *TabStopResolver) measureWidth(text string, measure MeasureTextFunc) float64 {
	if measure == nil || text == "" {
		return 0
	}
	return measure(text)
}

// decimalPrefix returns the part of the text before the decimal
// separator. Text without a separator aligns as a whole, matching end
// alignment.
func (r *TabStopResolver) decimalPrefix(text string) string {
	if i := strings.IndexRune(text, r.config.DecimalSeparator); i >= 0 {
		return text[:i]
	}
	return text
}

func absTwips(t model.Twips) model.Twips {
	if t < 0 {
		return -t
	}
	return t
}
