package category

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/kcherng/ledgerkit/internal/ledger"
	"github.com/kcherng/ledgerkit/internal/suggest"
)

type Handler struct {
	svc     *ledger.Service
	suggest *suggest.Service
}

func NewHandler(svc *ledger.Service, suggestSvc *suggest.Service) *Handler {
	return &Handler{svc: svc, suggest: suggestSvc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.list)
	r.Get("/suggest", h.suggestCategory)
	r.Post("/rules", h.createRule)
}

type categoryRecordResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Icon  string `json:"icon,omitempty"`
	Color string `json:"color,omitempty"`
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	records, err := h.svc.Categories(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	resp := make([]categoryRecordResponse, len(records))
	for i, rec := range records {
		resp[i] = categoryRecordResponse(rec)
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

type suggestResponse struct {
	CategoryID string `json:"category_id"`
}

func (h *Handler) suggestCategory(w http.ResponseWriter, r *http.Request) {
	name := r.URL.Query().Get("name")
	if name == "" {
		http.Error(w, "name is required", http.StatusBadRequest)
		return
	}

	categoryID, err := h.suggest.Categorize(r.Context(), name)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(suggestResponse{CategoryID: categoryID}); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

type createRuleRequest struct {
	Pattern    string `json:"pattern"`
	CategoryID string `json:"category_id"`
}

func (h *Handler) createRule(w http.ResponseWriter, r *http.Request) {
	var req createRuleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if req.Pattern == "" || req.CategoryID == "" {
		http.Error(w, "pattern and category_id are required", http.StatusBadRequest)
		return
	}

	if err := h.suggest.Learn(r.Context(), req.Pattern, req.CategoryID); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusCreated)
}
