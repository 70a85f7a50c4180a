package itinerary

import (
	"github.com/antchfx/xmlquery"
	"github.com/de-tools/itinerary-diff/pkg/models/domain"
	"github.com/de-tools/itinerary-diff/pkg/store/xmldoc"
)

const (
	fieldCarrier       = "Carrier"
	fieldFlightNumber  = "FlightNumber"
	fieldSource        = "Source"
	fieldDestination   = "Destination"
	fieldDepartureTime = "DepartureTimeStamp"
	fieldArrivalTime   = "ArrivalTimeStamp"
	fieldClass         = "Class"
	fieldNumberOfStops = "NumberOfStops"
)

// ParseFlight reads the flight fields from the child elements of a Flight node.
// Texts are taken verbatim.
func ParseFlight(n *xmlquery.Node) (domain.Flight, error) {
	var (
		f   domain.Flight
		err error
	)
	fields := []struct {
		name string
		dst  *string
	}{
		{fieldCarrier, &f.Carrier},
		{fieldFlightNumber, &f.Number},
		{fieldSource, &f.Source},
		{fieldDestination, &f.Destination},
		{fieldDepartureTime, &f.DepartureDate},
		{fieldArrivalTime, &f.ArrivalDate},
		{fieldClass, &f.Class},
		{fieldNumberOfStops, &f.NumStops},
	}
	for _, field := range fields {
		if *field.dst, err = childText(n, field.name); err != nil {
			return domain.Flight{}, err
		}
	}
	return f, nil
}

func childText(n *xmlquery.Node, name string) (string, error) {
	c, ok := xmldoc.Child(n, name)
	if !ok {
		return "", &domain.FieldMissingError{Field: name, Element: n.Data}
	}
	return c.InnerText(), nil
}
