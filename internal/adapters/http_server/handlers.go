package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/rs/zerolog/log"

	"stayquery/internal/app"
	"stayquery/internal/domain"
	"stayquery/internal/messages"
)

const maxBodyBytes = 64 << 10

type Handlers struct{ Q *app.QueryService }

type searchRequest struct {
	Query    string `json:"query"`
	Language string `json:"language,omitempty"`
}

type partialData struct {
	City        string             `json:"city,omitempty"`
	CheckIn     *domain.Date       `json:"checkIn,omitempty"`
	CheckOut    *domain.Date       `json:"checkOut,omitempty"`
	Preferences domain.Preferences `json:"preferences"`
}

type incompleteResponse struct {
	Success       bool        `json:"success"`
	Error         string      `json:"error"`
	MissingFields []string    `json:"missingFields"`
	Suggestion    string      `json:"suggestion"`
	PartialData   partialData `json:"partialData"`
}

type searchResponse struct {
	Success           bool                   `json:"success"`
	SearchParams      domain.SearchParams    `json:"searchParams"`
	Hotels            []domain.Accommodation `json:"hotels"`
	Count             int                    `json:"count"`
	Message           string                 `json:"message"`
	PreferenceSummary string                 `json:"preferenceSummary"`
}

type failureResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
	Details string `json:"details"`
}

func (s *Server) MountHandlers(h *Handlers) {
	s.mux.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200); _, _ = w.Write([]byte("ok")) })
	s.mux.Post("/v1/search", h.search)
	s.mux.Post("/v1/parse", h.parse)
}

// selectLang picks a supported language from an Accept-Language header.
func selectLang(al string) string {
	s := strings.ToLower(al)
	if strings.HasPrefix(s, "pt") {
		return "pt"
	}
	if strings.HasPrefix(s, "es") {
		return "es"
	}
	return messages.DefaultLanguage
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error().Err(err).Msg("write JSON response failed")
	}
}

func writeFailure(w http.ResponseWriter, err error) {
	log.Error().Err(err).Msg("search request failed")
	writeJSON(w, http.StatusInternalServerError, failureResponse{
		Success: false,
		Error:   "Failed to process search request",
		Details: err.Error(),
	})
}

func decodeRequest(w http.ResponseWriter, r *http.Request) (searchRequest, error) {
	var req searchRequest
	err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&req)
	if req.Language == "" {
		req.Language = selectLang(r.Header.Get("Accept-Language"))
	}
	return req, err
}

func (h *Handlers) search(w http.ResponseWriter, r *http.Request) {
	req, err := decodeRequest(w, r)
	if err != nil {
		writeFailure(w, err)
		return
	}

	out, err := h.Q.Search(r.Context(), req.Query, req.Language)
	var inc *app.IncompleteQueryError
	switch {
	case errors.As(err, &inc):
		writeJSON(w, http.StatusBadRequest, incompleteResponse{
			Success:       false,
			Error:         "Missing required information",
			MissingFields: inc.Query.MissingFields,
			Suggestion:    inc.Suggestion,
			PartialData: partialData{
				City:        inc.Query.City,
				CheckIn:     inc.Query.CheckIn,
				CheckOut:    inc.Query.CheckOut,
				Preferences: inc.Query.Preferences,
			},
		})
	case err != nil:
		writeFailure(w, err)
	default:
		writeJSON(w, http.StatusOK, searchResponse{
			Success:           true,
			SearchParams:      out.Params,
			Hotels:            out.Hotels,
			Count:             len(out.Hotels),
			Message:           out.Message,
			PreferenceSummary: out.PreferenceSummary,
		})
	}
}

// parse previews the interpretation without searching.
func (h *Handlers) parse(w http.ResponseWriter, r *http.Request) {
	req, err := decodeRequest(w, r)
	if err != nil {
		writeFailure(w, err)
		return
	}
	writeJSON(w, http.StatusOK, h.Q.Parse(req.Query))
}
