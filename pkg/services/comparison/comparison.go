package comparison

import (
	"context"
	"fmt"

	"github.com/de-tools/itinerary-diff/pkg/models/domain"
	"github.com/rs/zerolog"
)

// Extractor loads the itineraries of a single search response.
type Extractor interface {
	ExtractFile(ctx context.Context, path string) ([]domain.Itinerary, error)
}

// Compare pairs itineraries by position up to the length of the shorter slice.
func Compare(first, second []domain.Itinerary) domain.Comparison {
	n := min(len(first), len(second))
	pairs := make([]domain.ItineraryPair, 0, n)
	for i := 0; i < n; i++ {
		pairs = append(pairs, domain.ItineraryPair{
			Index:  i,
			First:  first[i],
			Second: second[i],
		})
	}
	return domain.Comparison{
		Pairs:       pairs,
		FirstCount:  len(first),
		SecondCount: len(second),
	}
}

type Service struct {
	extractor Extractor
}

func NewService(extractor Extractor) *Service {
	return &Service{extractor: extractor}
}

// CompareFiles extracts both responses in full before pairing them.
func (s *Service) CompareFiles(ctx context.Context, firstPath, secondPath string) (*domain.Comparison, error) {
	logger := zerolog.Ctx(ctx)

	first, err := s.extractor.ExtractFile(ctx, firstPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read first response: %w", err)
	}
	second, err := s.extractor.ExtractFile(ctx, secondPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read second response: %w", err)
	}

	cmp := Compare(first, second)
	side, extra := cmp.Surplus()
	logger.Info().
		Int("pairs", len(cmp.Pairs)).
		Str("surplus_side", string(side)).
		Int("surplus", extra).
		Msg("compared responses")
	return &cmp, nil
}
