package model

import "fmt"

// ContainmentTolerance is the slack applied to containment tests. It absorbs
// rasterization and rounding noise from the upstream detector. The value is
// fixed rather than configurable so that containment decisions are
// reproducible across runs.
const ContainmentTolerance = 0.01

// Box represents an axis-aligned bounding box in normalized page coordinates.
// All four values are in [0,1] with the origin at the top-left of the page,
// so Left <= Right and Top <= Bottom.
type Box struct {
	Left   float64 `json:"left"`
	Top    float64 `json:"top"`
	Right  float64 `json:"right"`
	Bottom float64 `json:"bottom"`
}

// NewBox creates a bounding box from its four edges.
func NewBox(left, top, right, bottom float64) Box {
	return Box{Left: left, Top: top, Right: right, Bottom: bottom}
}

// Width returns the horizontal extent of the box.
func (b Box) Width() float64 {
	return b.Right - b.Left
}

// Height returns the vertical extent of the box.
func (b Box) Height() float64 {
	return b.Bottom - b.Top
}

// Area returns the area of the box in normalized units. Because coordinates
// are normalized to [0,1], the result is only meaningful for relative-size
// comparisons between regions on the same page, never as a physical measure.
func (b Box) Area() float64 {
	return b.Width() * b.Height()
}

// IsValid returns true if the box has positive dimensions.
func (b Box) IsValid() bool {
	return b.Width() > 0 && b.Height() > 0
}

// Contains reports whether inner lies entirely within b, allowing each edge
// to exceed b by up to ContainmentTolerance. Contains(b, b) is always true.
func (b Box) Contains(inner Box) bool {
	return inner.Left >= b.Left-ContainmentTolerance &&
		inner.Right <= b.Right+ContainmentTolerance &&
		inner.Top >= b.Top-ContainmentTolerance &&
		inner.Bottom <= b.Bottom+ContainmentTolerance
}

// Intersects checks if two boxes overlap.
func (b Box) Intersects(other Box) bool {
	return !(b.Right < other.Left ||
		b.Left > other.Right ||
		b.Bottom < other.Top ||
		b.Top > other.Bottom)
}

// Intersection returns the overlapping region of two boxes, or the zero Box
// if they do not intersect.
func (b Box) Intersection(other Box) Box {
	if !b.Intersects(other) {
		return Box{}
	}
	return Box{
		Left:   max(b.Left, other.Left),
		Top:    max(b.Top, other.Top),
		Right:  min(b.Right, other.Right),
		Bottom: min(b.Bottom, other.Bottom),
	}
}

// Union returns the smallest box covering both boxes.
func (b Box) Union(other Box) Box {
	return Box{
		Left:   min(b.Left, other.Left),
		Top:    min(b.Top, other.Top),
		Right:  max(b.Right, other.Right),
		Bottom: max(b.Bottom, other.Bottom),
	}
}

// Region is a bounding box on a specific page. Geometry between regions is
// only defined when both lie on the same page.
type Region struct {
	Page int `json:"page"`
	Box  Box `json:"box"`
}

// InvalidComparisonError reports an attempt to compare regions on different
// pages. Cross-page geometry is undefined and always fails fast.
type InvalidComparisonError struct {
	PageA, PageB int
}

func (e *InvalidComparisonError) Error() string {
	return fmt.Sprintf("cannot compare regions on different pages (%d vs %d)", e.PageA, e.PageB)
}

// Contains reports whether inner lies entirely within r, with the standard
// containment tolerance. It fails with InvalidComparisonError when the two
// regions are on different pages.
func (r Region) Contains(inner Region) (bool, error) {
	if r.Page != inner.Page {
		return false, &InvalidComparisonError{PageA: r.Page, PageB: inner.Page}
	}
	return r.Box.Contains(inner.Box), nil
}

// Ordering describes the nesting relationship between two regions.
type Ordering int

const (
	// Neither means no containment holds in either direction.
	Neither Ordering = iota
	// AContainsB means the first region contains the second.
	AContainsB
	// BContainsA means the second region contains the first.
	BContainsA
)

func (o Ordering) String() string {
	switch o {
	case AContainsB:
		return "AContainsB"
	case BContainsA:
		return "BContainsA"
	default:
		return "Neither"
	}
}

// Nested determines whether one region is nested inside the other. Two
// records describing the same physical area (identical boxes, or boxes that
// contain each other within tolerance) are reported as Neither: duplicate
// detections are an upstream dedup problem, and guessing a containment
// direction would make nesting reports unstable.
func Nested(a, b Region) (Ordering, error) {
	if a.Page != b.Page {
		return Neither, &InvalidComparisonError{PageA: a.Page, PageB: b.Page}
	}

	ab := a.Box.Contains(b.Box)
	ba := b.Box.Contains(a.Box)

	switch {
	case ab && ba:
		return Neither, nil
	case ab:
		return AContainsB, nil
	case ba:
		return BContainsA, nil
	default:
		return Neither, nil
	}
}
