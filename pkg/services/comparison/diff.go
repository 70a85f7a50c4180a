package comparison

import (
	"slices"

	"github.com/de-tools/itinerary-diff/pkg/models/domain"
)

// Field identifies one compared row of an itinerary pair.
type Field string

const (
	FieldOnwardFlights   Field = "onward_flights"
	FieldOnwardDeparture Field = "onward_departure"
	FieldOnwardArrival   Field = "onward_arrival"
	FieldReturnFlights   Field = "return_flights"
	FieldReturnDeparture Field = "return_departure"
	FieldReturnArrival   Field = "return_arrival"
	FieldPrice           Field = "price"
	FieldNumPassengers   Field = "num_passengers"
)

// Differences lists the fields whose values differ between the two sides.
func Differences(pair domain.ItineraryPair) []Field {
	a, b := pair.First, pair.Second
	var fields []Field

	if !slices.Equal(a.Onward.Flights, b.Onward.Flights) {
		fields = append(fields, FieldOnwardFlights)
	}
	if a.Onward.DepartureDate != b.Onward.DepartureDate {
		fields = append(fields, FieldOnwardDeparture)
	}
	if a.Onward.ArrivalDate != b.Onward.ArrivalDate {
		fields = append(fields, FieldOnwardArrival)
	}

	ra, rb := legOrEmpty(a.Return), legOrEmpty(b.Return)
	if a.HasReturn() != b.HasReturn() || !slices.Equal(ra.Flights, rb.Flights) {
		fields = append(fields, FieldReturnFlights)
	}
	if a.HasReturn() != b.HasReturn() || ra.DepartureDate != rb.DepartureDate {
		fields = append(fields, FieldReturnDeparture)
	}
	if a.HasReturn() != b.HasReturn() || ra.ArrivalDate != rb.ArrivalDate {
		fields = append(fields, FieldReturnArrival)
	}

	if a.Price != b.Price {
		fields = append(fields, FieldPrice)
	}
	if a.NumPassengers != b.NumPassengers {
		fields = append(fields, FieldNumPassengers)
	}
	return fields
}

// Identical reports whether the two itineraries of pair match on every field.
func Identical(pair domain.ItineraryPair) bool {
	return len(Differences(pair)) == 0
}

func legOrEmpty(l *domain.Leg) domain.Leg {
	if l == nil {
		return domain.Leg{}
	}
	return *l
}
