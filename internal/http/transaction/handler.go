package transaction

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/kcherng/ledgerkit/internal/ledger"
	"github.com/kcherng/ledgerkit/internal/period"
	"github.com/kcherng/ledgerkit/internal/split"
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
	r.Post("/", h.create)
	r.Get("/", h.list)
}

type payerRequest struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

type itemRequest struct {
	Name       string         `json:"name"`
	Amount     float64        `json:"amount"`
	CategoryID string         `json:"category_id,omitempty"`
	Payers     []payerRequest `json:"payers,omitempty"`
}

type createTransactionRequest struct {
	Type         ledger.Type   `json:"type"`
	Note         string        `json:"note,omitempty"`
	Date         string        `json:"transaction_date,omitempty"`
	ReceiptURL   string        `json:"receipt_url,omitempty"`
	CreditCardID string        `json:"credit_card_id,omitempty"`
	Items        []itemRequest `json:"items"`
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var req createTransactionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	params := ledger.CreateParams{
		Type:         req.Type,
		Note:         req.Note,
		Date:         req.Date,
		ReceiptURL:   req.ReceiptURL,
		CreditCardID: req.CreditCardID,
	}

	for _, item := range req.Items {
		capture := ledger.CaptureItem{
			Name:       item.Name,
			Amount:     item.Amount,
			CategoryID: item.CategoryID,
		}

		// Uncategorized items fall back to learned name rules.
		if capture.CategoryID == "" && capture.Name != "" {
			if id, err := h.suggest.Categorize(r.Context(), capture.Name); err == nil {
				capture.CategoryID = id
			}
		}

		for _, p := range item.Payers {
			capture.Payers = append(capture.Payers, split.Payer{ID: p.ID, Name: p.Name})
		}

		params.Items = append(params.Items, capture)
	}

	tx, err := h.svc.Create(r.Context(), params)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	// Remember explicit categorizations for future suggestions.
	for _, item := range req.Items {
		if item.Name == "" || item.CategoryID == "" {
			continue
		}

		if err := h.suggest.Learn(r.Context(), item.Name, item.CategoryID); err != nil {
			slog.Warn("failed to learn category rule", "error", err)
		}
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)

	if err := json.NewEncoder(w).Encode(toResponse(tx)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	window, err := monthParam(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	txs, err := h.svc.List(r.Context(), window.Start, window.End)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponseList(txs)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

// monthParam reads year and month query parameters, defaulting to the
// current month.
func monthParam(r *http.Request) (period.Window, error) {
	now := time.Now()
	year, month := now.Year(), now.Month()

	if s := r.URL.Query().Get("year"); s != "" {
		y, err := strconv.Atoi(s)
		if err != nil {
			return period.Window{}, err
		}

		year = y
	}

	if s := r.URL.Query().Get("month"); s != "" {
		m, err := strconv.Atoi(s)
		if err != nil {
			return period.Window{}, err
		}

		month = time.Month(m)
	}

	return period.MonthWindow(year, month), nil
}
