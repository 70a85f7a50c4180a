package domain

// Side names one of the two compared responses.
type Side string

const (
	SideNone   Side = ""
	SideFirst  Side = "first"
	SideSecond Side = "second"
)

// Other returns the opposite side.
func (s Side) Other() Side {
	switch s {
	case SideFirst:
		return SideSecond
	case SideSecond:
		return SideFirst
	default:
		return SideNone
	}
}

type ItineraryPair struct {
	Index  int
	First  Itinerary
	Second Itinerary
}

// Comparison holds itineraries of two responses paired by position.
type Comparison struct {
	Pairs       []ItineraryPair
	FirstCount  int
	SecondCount int
}

// Surplus returns the side holding itineraries without a counterpart and how
// many of them there are. It returns SideNone and 0 when both sides are equal.
func (c Comparison) Surplus() (Side, int) {
	switch {
	case c.SecondCount > c.FirstCount:
		return SideSecond, c.SecondCount - c.FirstCount
	case c.FirstCount > c.SecondCount:
		return SideFirst, c.FirstCount - c.SecondCount
	default:
		return SideNone, 0
	}
}
