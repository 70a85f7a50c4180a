package export

import (
	"strconv"
	"strings"

	"github.com/de-tools/itinerary-diff/pkg/models/domain"
	"github.com/de-tools/itinerary-diff/pkg/services/comparison"
)

type field struct {
	field comparison.Field
	label string
	value string
}

// itineraryRows lists the report rows of a single itinerary. Blank rows
// separate the onward, return and pricing blocks; absent values stay empty.
func itineraryRows(it domain.Itinerary) []field {
	var ret domain.Leg
	if it.Return != nil {
		ret = *it.Return
	}

	return []field{
		{comparison.FieldOnwardFlights, "Onward Flights", formatPairs(it.Onward.Flights)},
		{comparison.FieldOnwardDeparture, "Departure", it.Onward.DepartureDate},
		{comparison.FieldOnwardArrival, "Arrival", it.Onward.ArrivalDate},
		{},
		{comparison.FieldReturnFlights, "Return Flights", formatPairs(ret.Flights)},
		{comparison.FieldReturnDeparture, "Departure", ret.DepartureDate},
		{comparison.FieldReturnArrival, "Arrival", ret.ArrivalDate},
		{},
		{comparison.FieldPrice, "Price", it.Price},
		{comparison.FieldNumPassengers, "Number of passengers", strconv.Itoa(it.NumPassengers)},
	}
}

func formatPairs(pairs []domain.FlightPair) string {
	parts := make([]string, 0, len(pairs))
	for _, p := range pairs {
		parts = append(parts, p.String())
	}
	return strings.Join(parts, ", ")
}
