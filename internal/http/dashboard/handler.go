package dashboard

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/kcherng/ledgerkit/internal/dashboard"
	"github.com/kcherng/ledgerkit/internal/ledger"
)

type Handler struct {
	svc *dashboard.Service
}

func NewHandler(svc *dashboard.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.get)
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	query, err := queryParams(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	snap, err := h.svc.Refresh(r.Context(), query)
	if err != nil {
		// Serve the last good snapshot if one exists.
		snap = h.svc.Last()
		if snap == nil || snap.Query != query {
			http.Error(w, err.Error(), http.StatusBadGateway)
			return
		}

		slog.Warn("serving stale dashboard", "error", err, "fetched_at", snap.FetchedAt)
	}

	view := dashboard.Assemble(snap)

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponse(view)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func queryParams(r *http.Request) (dashboard.Query, error) {
	now := time.Now()

	query := dashboard.Query{
		Year:  now.Year(),
		Month: now.Month(),
		Type:  ledger.TypeExpense,
	}

	if s := r.URL.Query().Get("year"); s != "" {
		year, err := strconv.Atoi(s)
		if err != nil {
			return dashboard.Query{}, err
		}

		query.Year = year
	}

	if s := r.URL.Query().Get("month"); s != "" {
		month, err := strconv.Atoi(s)
		if err != nil {
			return dashboard.Query{}, err
		}

		query.Month = time.Month(month)
	}

	if s := r.URL.Query().Get("type"); s != "" {
		query.Type = ledger.Type(s)
	}

	return query, nil
}
