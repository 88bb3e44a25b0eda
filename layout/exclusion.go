package layout

import (
	"fmt"
	"math"

	"github.com/tsawler/folio/model"
)

// AvailableBand is the horizontal band left for text after floating
// objects claim their share of a line's vertical extent. OffsetX is
// relative to the content box left edge.
type AvailableBand struct {
	Width   float64
	OffsetX float64
}

// ExclusionZoneManager tracks floating-object zones per page and
// answers width queries for line bands. One manager serves one layout
// pass; Clear resets it for reuse.
type ExclusionZoneManager struct {
	contentWidth float64
	leftMargin   float64
	zones        map[int][]model.ExclusionZone
	registered   int
}

// NewExclusionZoneManager creates an empty manager. SetLayoutContext
// must be called before width queries.
func NewExclusionZoneManager() *ExclusionZoneManager {
	return &ExclusionZoneManager{
		zones: make(map[int][]model.ExclusionZone),
	}
}

// SetLayoutContext sets the content width and left margin used to
// translate page-absolute zone bounds into content-relative bands.
// Section geometry changes update it mid-pass.
func (m *ExclusionZoneManager) SetLayoutContext(contentWidth, leftMargin float64) {
	m.contentWidth = contentWidth
	m.leftMargin = leftMargin
}

// Clear removes all zones. Each layout pass starts from a cleared
// manager.
func (m *ExclusionZoneManager) Clear() {
	m.zones = make(map[int][]model.ExclusionZone)
	m.registered = 0
}

// RegisterFloatingObject records a zone for its page and returns the
// zone ID, assigning one when the zone arrives without it.
func (m *ExclusionZoneManager) RegisterFloatingObject(zone model.ExclusionZone) string {
	m.registered++
	if zone.ID == "" {
		zone.ID = fmt.Sprintf("float-p%d-%d", zone.Page, m.registered)
	}
	m.zones[zone.Page] = append(m.zones[zone.Page], zone)
	return zone.ID
}

// ZoneCount returns the number of registered zones across all pages
func (m *ExclusionZoneManager) ZoneCount() int {
	n := 0
	for _, zs := range m.zones {
		n += len(zs)
	}
	return n
}

// ExclusionsForPage returns the zones registered for a page, in
// registration order.
func (m *ExclusionZoneManager) ExclusionsForPage(pageNumber int) []model.ExclusionZone {
	return m.zones[pageNumber]
}

// ComputeAvailableWidth returns the horizontal band available to a
// line occupying [lineY, lineY+lineHeight) on the given page. lineY is
// page-absolute; the returned offset is relative to the content box
// left edge. Zones on other pages never participate. Before
// SetLayoutContext the content width is zero and so is every answer.
func (m *ExclusionZoneManager) ComputeAvailableWidth(lineY, lineHeight float64, pageNumber int) AvailableBand {
	leftBoundary := 0.0
	rightBoundary := m.contentWidth

	for _, zone := range m.zones[pageNumber] {
		if zone.WrapSide == model.WrapSideNone {
			continue
		}
		expanded := zone.ExpandedBounds()
		if !expanded.OverlapsVertically(lineY, lineY+lineHeight) {
			continue
		}

		// wrap on the right: the object occupies the left side and
		// pushes text rightward past its right edge plus clearance.
		if zone.WrapSide == model.WrapSideRight || zone.WrapSide == model.WrapSideBoth {
			edge := zone.Bounds.Right() + zone.Distances.Right - m.leftMargin
			leftBoundary = math.Max(leftBoundary, edge)
		}

		// wrap on the left: text stays left of the object's left edge
		// minus clearance.
		if zone.WrapSide == model.WrapSideLeft || zone.WrapSide == model.WrapSideBoth {
			edge := zone.Bounds.Left() - zone.Distances.Left - m.leftMargin
			rightBoundary = math.Min(rightBoundary, edge)
		}
	}

	return AvailableBand{
		Width:   math.Max(0, rightBoundary-leftBoundary),
		OffsetX: leftBoundary,
	}
}
