package itinerary

import (
	"context"
	"fmt"
	"strings"

	"github.com/antchfx/xmlquery"
	"github.com/de-tools/itinerary-diff/pkg/models/domain"
	"github.com/de-tools/itinerary-diff/pkg/store/xmldoc"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

const (
	elemPricedItineraries = "PricedItineraries"
	elemRoute             = "Flights"
	elemOnward            = "OnwardPricedItinerary"
	elemReturn            = "ReturnPricedItinerary"
	elemFlights           = "Flights"
	elemFlight            = "Flight"
	elemPricing           = "Pricing"
	elemServiceCharges    = "ServiceCharges"

	attrCurrency   = "currency"
	attrChargeType = "ChargeType"

	chargeTypeTotalAmount = "TotalAmount"
)

// Extractor turns search response documents into itineraries.
type Extractor struct{}

func NewExtractor() *Extractor {
	return &Extractor{}
}

// ExtractFile loads the document at path and extracts its itineraries.
func (e *Extractor) ExtractFile(ctx context.Context, path string) ([]domain.Itinerary, error) {
	doc, err := xmldoc.Load(path)
	if err != nil {
		return nil, err
	}

	itineraries, err := e.ExtractDocument(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("failed to extract itineraries from %s: %w", path, err)
	}

	zerolog.Ctx(ctx).Debug().
		Str("path", path).
		Int("itineraries", len(itineraries)).
		Msg("extracted itineraries")
	return itineraries, nil
}

// ExtractDocument extracts one itinerary per route entry of doc, in document order.
func (e *Extractor) ExtractDocument(ctx context.Context, doc *xmlquery.Node) ([]domain.Itinerary, error) {
	routes, err := FindRoutes(doc)
	if err != nil {
		return nil, err
	}

	itineraries := make([]domain.Itinerary, 0, len(routes))
	for i, route := range routes {
		it, err := ParseRoute(route)
		if err != nil {
			return nil, fmt.Errorf("route %d: %w", i, err)
		}
		zerolog.Ctx(ctx).Trace().
			Int("route", i).
			Str("price", it.Price).
			Bool("return", it.HasReturn()).
			Msg("parsed route")
		itineraries = append(itineraries, it)
	}
	return itineraries, nil
}

// FindRoutes returns the route entries listed under the PricedItineraries
// container of the document element.
func FindRoutes(doc *xmlquery.Node) ([]*xmlquery.Node, error) {
	root := xmldoc.Root(doc)
	if root == nil {
		return nil, &domain.StructureError{Element: elemPricedItineraries, Parent: "document"}
	}

	container, ok := xmldoc.Child(root, elemPricedItineraries)
	if !ok {
		return nil, &domain.StructureError{Element: elemPricedItineraries, Parent: root.Data}
	}
	return xmldoc.Children(container, elemRoute), nil
}

// ParseRoute builds the itinerary described by a single route entry.
func ParseRoute(route *xmlquery.Node) (domain.Itinerary, error) {
	onward, ok := xmldoc.Child(route, elemOnward)
	if !ok {
		return domain.Itinerary{}, &domain.StructureError{Element: elemOnward, Parent: route.Data}
	}
	pricing, ok := xmldoc.Child(route, elemPricing)
	if !ok {
		return domain.Itinerary{}, &domain.StructureError{Element: elemPricing, Parent: route.Data}
	}

	flights, err := parseFlights(onward)
	if err != nil {
		return domain.Itinerary{}, err
	}
	if len(flights) == 0 {
		return domain.Itinerary{}, &domain.StructureError{Element: elemFlight, Parent: elemOnward}
	}

	// The return leg is signalled by the element itself. An element without a
	// flights list, or with an empty one, yields no return flights.
	var returnFlights []domain.Flight
	if returning, ok := xmldoc.Child(route, elemReturn); ok {
		if _, hasList := xmldoc.Child(returning, elemFlights); hasList {
			returnFlights, err = parseFlights(returning)
			if err != nil {
				return domain.Itinerary{}, err
			}
		}
	}

	return CreateItinerary(flights, returnFlights, pricing)
}

func parseFlights(itinerary *xmlquery.Node) ([]domain.Flight, error) {
	list, ok := xmldoc.Child(itinerary, elemFlights)
	if !ok {
		return nil, &domain.StructureError{Element: elemFlights, Parent: itinerary.Data}
	}

	nodes := xmldoc.Children(list, elemFlight)
	flights := make([]domain.Flight, 0, len(nodes))
	for _, n := range nodes {
		f, err := ParseFlight(n)
		if err != nil {
			return nil, err
		}
		flights = append(flights, f)
	}
	return flights, nil
}

// CreateItinerary derives the itinerary fields from its flights and pricing.
// flights must not be empty; an empty returnFlights means a one-way itinerary.
func CreateItinerary(flights, returnFlights []domain.Flight, pricing *xmlquery.Node) (domain.Itinerary, error) {
	if len(flights) == 0 {
		return domain.Itinerary{}, &domain.StructureError{Element: elemFlight, Parent: elemOnward}
	}

	price, numPassengers, err := CalculatePriceAndNumPassengers(pricing)
	if err != nil {
		return domain.Itinerary{}, err
	}

	it := domain.Itinerary{
		Onward:        newLeg(flights),
		Price:         price,
		NumPassengers: numPassengers,
	}
	if len(returnFlights) > 0 {
		ret := newLeg(returnFlights)
		it.Return = &ret
	}
	return it, nil
}

func newLeg(flights []domain.Flight) domain.Leg {
	pairs := make([]domain.FlightPair, 0, len(flights))
	for _, f := range flights {
		pairs = append(pairs, f.FlightPair())
	}
	return domain.Leg{
		Flights:       pairs,
		DepartureDate: flights[0].DepartureDate,
		ArrivalDate:   flights[len(flights)-1].ArrivalDate,
	}
}

// CalculatePriceAndNumPassengers sums the TotalAmount service charges of a
// pricing node. Each TotalAmount charge stands for one passenger; other charge
// types are ignored. The price is formatted as "<amount> <currency>".
func CalculatePriceAndNumPassengers(pricing *xmlquery.Node) (string, int, error) {
	currency, ok := xmldoc.Attr(pricing, attrCurrency)
	if !ok {
		return "", 0, &domain.FieldMissingError{Field: attrCurrency, Element: elemPricing}
	}

	total := decimal.Zero
	scale := int32(0)
	numPassengers := 0
	for _, charge := range xmldoc.Children(pricing, elemServiceCharges) {
		chargeType, ok := xmldoc.Attr(charge, attrChargeType)
		if !ok {
			return "", 0, &domain.FieldMissingError{Field: attrChargeType, Element: elemServiceCharges}
		}
		if chargeType != chargeTypeTotalAmount {
			continue
		}

		text := strings.TrimSpace(charge.InnerText())
		amount, err := decimal.NewFromString(text)
		if err != nil {
			return "", 0, &domain.InvalidAmountError{Value: text, Err: err}
		}
		if s := -amount.Exponent(); s > scale {
			scale = s
		}
		total = total.Add(amount)
		numPassengers++
	}

	return total.StringFixed(scale) + " " + currency, numPassengers, nil
}
