package domain

// Flight is a single flight segment as listed in a search response.
// Every field holds the element text verbatim.
type Flight struct {
	Carrier       string
	Number        string
	Source        string
	Destination   string
	DepartureDate string
	ArrivalDate   string
	Class         string
	NumStops      string
}

// FlightPair returns the (source, destination) pair of the flight.
func (f Flight) FlightPair() FlightPair {
	return FlightPair{Source: f.Source, Destination: f.Destination}
}

type FlightPair struct {
	Source      string
	Destination string
}

func (p FlightPair) String() string {
	return p.Source + "-" + p.Destination
}

// Leg is either the onward or the return portion of an itinerary.
type Leg struct {
	Flights       []FlightPair
	DepartureDate string // departure of the first flight
	ArrivalDate   string // arrival of the last flight
}

// Itinerary is one priced travel option. Return is nil for one-way options.
type Itinerary struct {
	Onward        Leg
	Return        *Leg
	Price         string // "<amount> <currency>"
	NumPassengers int
}

func (i Itinerary) HasReturn() bool {
	return i.Return != nil
}
