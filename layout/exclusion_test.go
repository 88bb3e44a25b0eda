package layout

import (
	"testing"

	"github.com/tsawler/folio/model"
)

// Helper to create a manager with US Letter content geometry:
// 624px content width, 96px left margin.
func makeZoneManager() *ExclusionZoneManager {
	m := NewExclusionZoneManager()
	m.SetLayoutContext(624, 96)
	return m
}

func TestExclusionZoneManager_NoZones(t *testing.T) {
	m := makeZoneManager()

	band := m.ComputeAvailableWidth(200, 18, 1)

	if band.Width != 624 {
		t.Errorf("expected full content width 624, got %v", band.Width)
	}
	if band.OffsetX != 0 {
		t.Errorf("expected zero offset, got %v", band.OffsetX)
	}
}

func TestExclusionZoneManager_WrapRight(t *testing.T) {
	m := makeZoneManager()
	m.RegisterFloatingObject(model.ExclusionZone{
		ID:        "img-1",
		Page:      1,
		Bounds:    model.NewBBox(96, 200, 100, 50),
		Distances: model.Distances{Right: 12},
		WrapSide:  model.WrapSideRight,
	})

	band := m.ComputeAvailableWidth(210, 18, 1)

	// the image occupies the left; text starts past its right edge
	// plus clearance: 196 + 12 - 96 = 112 from the content box
	if band.OffsetX != 112 {
		t.Errorf("expected offset 112, got %v", band.OffsetX)
	}
	if band.Width != 624-112 {
		t.Errorf("expected width 512, got %v", band.Width)
	}
}

func TestExclusionZoneManager_WrapLeft(t *testing.T) {
	m := makeZoneManager()
	m.RegisterFloatingObject(model.ExclusionZone{
		ID:        "img-1",
		Page:      1,
		Bounds:    model.NewBBox(400, 200, 150, 60),
		Distances: model.Distances{Left: 10},
		WrapSide:  model.WrapSideLeft,
	})

	band := m.ComputeAvailableWidth(220, 18, 1)

	// the image occupies the right; text stays left of 400 - 10 = 390
	// page-absolute, which is 294 from the content box
	if band.OffsetX != 0 {
		t.Errorf("expected zero offset, got %v", band.OffsetX)
	}
	if band.Width != 294 {
		t.Errorf("expected width 294, got %v", band.Width)
	}
}

func TestExclusionZoneManager_WrapBothMidColumn(t *testing.T) {
	m := makeZoneManager()
	m.RegisterFloatingObject(model.ExclusionZone{
		ID:       "img-1",
		Page:     1,
		Bounds:   model.NewBBox(300, 200, 100, 50),
		WrapSide: model.WrapSideBoth,
	})

	band := m.ComputeAvailableWidth(210, 18, 1)

	// a both-sides zone pushes the left boundary past its right edge
	// and pulls the right boundary to its left edge; a single band
	// cannot hold text on both sides, so the width collapses
	if band.Width != 0 {
		t.Errorf("expected zero width, got %v", band.Width)
	}
	if band.OffsetX != 400-96 {
		t.Errorf("expected offset 304, got %v", band.OffsetX)
	}
}

func TestExclusionZoneManager_WrapNoneNeverConstrains(t *testing.T) {
	m := makeZoneManager()
	m.RegisterFloatingObject(model.ExclusionZone{
		ID:       "img-1",
		Page:     1,
		Bounds:   model.NewBBox(96, 100, 624, 800),
		WrapSide: model.WrapSideNone,
	})

	band := m.ComputeAvailableWidth(200, 18, 1)

	if band.Width != 624 || band.OffsetX != 0 {
		t.Errorf("behind/in-front zone must not constrain text, got width %v offset %v",
			band.Width, band.OffsetX)
	}
}

func TestExclusionZoneManager_VerticalBand(t *testing.T) {
	m := makeZoneManager()
	m.RegisterFloatingObject(model.ExclusionZone{
		ID:        "img-1",
		Page:      1,
		Bounds:    model.NewBBox(96, 100, 100, 50),
		Distances: model.Distances{Top: 5, Bottom: 5, Right: 8},
		WrapSide:  model.WrapSideRight,
	})

	tests := []struct {
		name        string
		lineY       float64
		lineHeight  float64
		constrained bool
	}{
		{"line above the expanded zone", 60, 18, false},
		{"line ending exactly at the expanded top", 77, 18, false},
		{"line crossing the expanded top", 80, 18, true},
		{"line inside the zone", 110, 18, true},
		{"line crossing the expanded bottom", 150, 18, true},
		{"line starting exactly at the expanded bottom", 155, 18, false},
		{"line below the expanded zone", 200, 18, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			band := m.ComputeAvailableWidth(tt.lineY, tt.lineHeight, 1)
			constrained := band.Width < 624
			if constrained != tt.constrained {
				t.Errorf("constrained = %v, want %v (width %v)",
					constrained, tt.constrained, band.Width)
			}
		})
	}
}

func TestExclusionZoneManager_PageIsolation(t *testing.T) {
	m := makeZoneManager()
	m.RegisterFloatingObject(model.ExclusionZone{
		ID:       "img-1",
		Page:     2,
		Bounds:   model.NewBBox(96, 96, 624, 864),
		WrapSide: model.WrapSideRight,
	})

	// a zone on page 2 never affects page 1 or page 3
	for _, page := range []int{1, 3} {
		band := m.ComputeAvailableWidth(200, 18, page)
		if band.Width != 624 || band.OffsetX != 0 {
			t.Errorf("page %d: expected full width, got width %v offset %v",
				page, band.Width, band.OffsetX)
		}
	}

	band := m.ComputeAvailableWidth(200, 18, 2)
	if band.Width == 624 {
		t.Error("expected the zone to constrain its own page")
	}
}

func TestExclusionZoneManager_MultipleZonesCombine(t *testing.T) {
	m := makeZoneManager()
	m.RegisterFloatingObject(model.ExclusionZone{
		ID:       "left-img",
		Page:     1,
		Bounds:   model.NewBBox(96, 200, 80, 100),
		WrapSide: model.WrapSideRight,
	})
	m.RegisterFloatingObject(model.ExclusionZone{
		ID:       "right-img",
		Page:     1,
		Bounds:   model.NewBBox(600, 200, 80, 100),
		WrapSide: model.WrapSideLeft,
	})

	band := m.ComputeAvailableWidth(250, 18, 1)

	// text flows between the two images: from 176 to 600 page-absolute
	if band.OffsetX != 80 {
		t.Errorf("expected offset 80, got %v", band.OffsetX)
	}
	if band.Width != 504-80 {
		t.Errorf("expected width 424, got %v", band.Width)
	}
}

func TestExclusionZoneManager_OpposingZonesCollapseToZero(t *testing.T) {
	m := makeZoneManager()
	m.RegisterFloatingObject(model.ExclusionZone{
		ID:       "wide-left",
		Page:     1,
		Bounds:   model.NewBBox(96, 200, 400, 100),
		WrapSide: model.WrapSideRight,
	})
	m.RegisterFloatingObject(model.ExclusionZone{
		ID:       "wide-right",
		Page:     1,
		Bounds:   model.NewBBox(300, 200, 400, 100),
		WrapSide: model.WrapSideLeft,
	})

	band := m.ComputeAvailableWidth(250, 18, 1)

	if band.Width != 0 {
		t.Errorf("expected collapsed width 0, got %v", band.Width)
	}
}

func TestExclusionZoneManager_RegisterAssignsID(t *testing.T) {
	m := makeZoneManager()

	id := m.RegisterFloatingObject(model.ExclusionZone{
		Page:     1,
		Bounds:   model.NewBBox(96, 96, 50, 50),
		WrapSide: model.WrapSideRight,
	})
	if id != "float-p1-1" {
		t.Errorf("expected assigned id float-p1-1, got %q", id)
	}

	id = m.RegisterFloatingObject(model.ExclusionZone{
		ID:       "my-image",
		Page:     1,
		Bounds:   model.NewBBox(96, 300, 50, 50),
		WrapSide: model.WrapSideRight,
	})
	if id != "my-image" {
		t.Errorf("expected caller id preserved, got %q", id)
	}
}

func TestExclusionZoneManager_ExclusionsForPage(t *testing.T) {
	m := makeZoneManager()
	m.RegisterFloatingObject(model.ExclusionZone{ID: "a", Page: 1, Bounds: model.NewBBox(96, 96, 10, 10)})
	m.RegisterFloatingObject(model.ExclusionZone{ID: "b", Page: 2, Bounds: model.NewBBox(96, 96, 10, 10)})
	m.RegisterFloatingObject(model.ExclusionZone{ID: "c", Page: 1, Bounds: model.NewBBox(96, 200, 10, 10)})

	if m.ZoneCount() != 3 {
		t.Errorf("expected 3 zones, got %d", m.ZoneCount())
	}

	page1 := m.ExclusionsForPage(1)
	if len(page1) != 2 {
		t.Fatalf("expected 2 zones on page 1, got %d", len(page1))
	}
	if page1[0].ID != "a" || page1[1].ID != "c" {
		t.Errorf("expected registration order a, c; got %s, %s", page1[0].ID, page1[1].ID)
	}

	if len(m.ExclusionsForPage(3)) != 0 {
		t.Errorf("expected no zones on page 3")
	}
}

func TestExclusionZoneManager_Clear(t *testing.T) {
	m := makeZoneManager()
	m.RegisterFloatingObject(model.ExclusionZone{ID: "a", Page: 1, Bounds: model.NewBBox(96, 96, 10, 10)})

	m.Clear()

	if m.ZoneCount() != 0 {
		t.Errorf("expected no zones after Clear, got %d", m.ZoneCount())
	}
}
