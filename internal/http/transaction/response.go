package transaction

import (
	"github.com/google/uuid"

	"github.com/kcherng/ledgerkit/internal/ledger"
)

type lineItemResponse struct {
	ID         uuid.UUID `json:"id"`
	Name       string    `json:"name"`
	Amount     float64   `json:"amount"`
	CategoryID string    `json:"category_id,omitempty"`
	PayerName  string    `json:"payer_name,omitempty"`
}

type transactionResponse struct {
	ID           uuid.UUID          `json:"id"`
	Type         ledger.Type        `json:"type"`
	Amount       float64            `json:"amount"`
	Note         string             `json:"note,omitempty"`
	Date         string             `json:"transaction_date"`
	ReceiptURL   string             `json:"receipt_url,omitempty"`
	CreditCardID string             `json:"credit_card_id,omitempty"`
	LineItems    []lineItemResponse `json:"line_items,omitempty"`
}

func toResponse(tx *ledger.Transaction) transactionResponse {
	resp := transactionResponse{
		ID:           tx.ID,
		Type:         tx.Type,
		Amount:       tx.Amount,
		Note:         tx.Note,
		Date:         tx.Date,
		ReceiptURL:   tx.ReceiptURL,
		CreditCardID: tx.CreditCardID,
	}

	for _, item := range tx.LineItems {
		resp.LineItems = append(resp.LineItems, lineItemResponse{
			ID:         item.ID,
			Name:       item.Name,
			Amount:     item.Amount,
			CategoryID: item.CategoryID,
			PayerName:  item.PayerName,
		})
	}

	return resp
}

func toResponseList(txs []ledger.Transaction) []transactionResponse {
	resp := make([]transactionResponse, len(txs))
	for i := range txs {
		resp[i] = toResponse(&txs[i])
	}

	return resp
}
