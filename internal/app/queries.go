package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"

	"stayquery/internal/adapters/observability"
	"stayquery/internal/domain"
	"stayquery/internal/messages"
)

type QueryParser interface {
	Parse(text string) domain.ParsedQuery
}

// SearchOutcome is what a complete query produces.
type SearchOutcome struct {
	Params            domain.SearchParams
	Hotels            []domain.Accommodation
	Message           string
	PreferenceSummary string
}

// IncompleteQueryError carries the partial parse and a localized prompt
// asking for the missing fields.
type IncompleteQueryError struct {
	Query      domain.ParsedQuery
	Suggestion string
}

func (e *IncompleteQueryError) Error() string {
	return fmt.Sprintf("incomplete query: missing %v", e.Query.MissingFields)
}

func (e *IncompleteQueryError) Unwrap() error { return domain.ErrIncompleteQuery }

type QueryService struct {
	parser QueryParser
	search *SearchService
}

func NewQueryService(p QueryParser, s *SearchService) *QueryService {
	return &QueryService{parser: p, search: s}
}

func (s *QueryService) Parse(text string) domain.ParsedQuery { return s.parser.Parse(text) }

// Search runs text through parse, completeness check, search and summary.
// An incomplete query yields *IncompleteQueryError; any other error is
// unexpected.
func (s *QueryService) Search(ctx context.Context, text, lang string) (SearchOutcome, error) {
	lang = messages.Normalize(lang)

	q := s.parser.Parse(text)
	log.Debug().
		Str("city", q.City).
		Int("guests", q.Guests).
		Int("rooms", q.Rooms).
		Strs("missing", q.MissingFields).
		Msg("query parsed")
	observability.ObserveParse(q.MissingFields)

	params, err := domain.NewSearchParams(q)
	if errors.Is(err, domain.ErrIncompleteQuery) {
		return SearchOutcome{}, &IncompleteQueryError{
			Query:      q,
			Suggestion: messages.MissingFieldPrompt(q.MissingFields, lang),
		}
	}
	if err != nil {
		return SearchOutcome{}, err
	}

	hotels := s.search.Search(ctx, params)
	return SearchOutcome{
		Params:            params,
		Hotels:            hotels,
		Message:           messages.ResultSummary(params, len(hotels), lang),
		PreferenceSummary: messages.PreferenceSummary(params.Preferences, lang),
	}, nil
}
