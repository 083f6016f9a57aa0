package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/kcherng/ledgerkit/internal/ledger"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// scanner is satisfied by both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

// scanTransaction reads a transaction row from the scanner.
// Expected column order: id, type, amount, note, transaction_date, receipt_url, credit_card_id
func scanTransaction(s scanner) (*ledger.Transaction, error) {
	var tx ledger.Transaction

	var typeStr string

	var amount decimal.Decimal

	var note, receiptURL, cardID sql.NullString

	if err := s.Scan(
		&tx.ID, &typeStr, &amount, &note, &tx.Date, &receiptURL, &cardID,
	); err != nil {
		return nil, err
	}

	tx.Type = ledger.Type(typeStr)
	tx.Amount = amount.InexactFloat64()
	tx.Note = note.String
	tx.ReceiptURL = receiptURL.String
	tx.CreditCardID = cardID.String

	return &tx, nil
}

const selectTransactionColumns = `
	t.id, t.type, t.amount, t.note, t.transaction_date, t.receipt_url, t.credit_card_id
`

// ListTransactions returns transactions whose date falls in [start, end),
// with their line items attached. transaction_date is stored as text in a
// handful of ISO-8601 shapes, but every accepted shape starts with the
// YYYY-MM-DD day, so the window filter compares on that prefix.
func (s *Store) ListTransactions(ctx context.Context, start, end time.Time) ([]ledger.Transaction, error) {
	query := `SELECT ` + selectTransactionColumns + `
		FROM transactions t
		WHERE substr(t.transaction_date, 1, 10) >= $1
		  AND substr(t.transaction_date, 1, 10) < $2
		ORDER BY t.transaction_date DESC`

	rows, err := s.db.QueryContext(ctx, query,
		start.Format(time.DateOnly), end.Format(time.DateOnly))
	if err != nil {
		return nil, fmt.Errorf("listing transactions: %w", err)
	}
	defer rows.Close()

	var txs []ledger.Transaction

	byID := make(map[uuid.UUID]int)

	for rows.Next() {
		tx, err := scanTransaction(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning transaction: %w", err)
		}

		byID[tx.ID] = len(txs)
		txs = append(txs, *tx)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating transaction rows: %w", err)
	}

	if len(txs) == 0 {
		return nil, nil
	}

	if err := s.attachLineItems(ctx, txs, byID, start, end); err != nil {
		return nil, err
	}

	return txs, nil
}

func (s *Store) attachLineItems(ctx context.Context, txs []ledger.Transaction, byID map[uuid.UUID]int, start, end time.Time) error {
	query := `
		SELECT li.id, li.transaction_id, li.name, li.amount, li.category_id, li.payer_name
		FROM line_items li
		JOIN transactions t ON li.transaction_id = t.id
		WHERE substr(t.transaction_date, 1, 10) >= $1
		  AND substr(t.transaction_date, 1, 10) < $2
		ORDER BY li.id ASC
	`

	rows, err := s.db.QueryContext(ctx, query,
		start.Format(time.DateOnly), end.Format(time.DateOnly))
	if err != nil {
		return fmt.Errorf("listing line items: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var item ledger.LineItem

		var amount decimal.Decimal

		var categoryID, payerName sql.NullString

		if err := rows.Scan(
			&item.ID, &item.TransactionID, &item.Name, &amount, &categoryID, &payerName,
		); err != nil {
			return fmt.Errorf("scanning line item: %w", err)
		}

		item.Amount = amount.InexactFloat64()
		item.CategoryID = categoryID.String
		item.PayerName = payerName.String

		idx, ok := byID[item.TransactionID]
		if !ok {
			continue
		}

		txs[idx].LineItems = append(txs[idx].LineItems, item)
	}

	if err := rows.Err(); err != nil {
		return fmt.Errorf("iterating line item rows: %w", err)
	}

	return nil
}

// CreateTransaction inserts the transaction and its line items atomically.
func (s *Store) CreateTransaction(ctx context.Context, tx *ledger.Transaction) error {
	dbTx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer dbTx.Rollback()

	query := `
		INSERT INTO transactions (type, amount, note, transaction_date, receipt_url, credit_card_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW())
		RETURNING id
	`

	err = dbTx.QueryRowContext(ctx, query,
		tx.Type,
		tx.Amount,
		nullable(tx.Note),
		tx.Date,
		nullable(tx.ReceiptURL),
		nullable(tx.CreditCardID),
	).Scan(&tx.ID)
	if err != nil {
		return fmt.Errorf("creating transaction: %w", err)
	}

	itemQuery := `
		INSERT INTO line_items (transaction_id, name, amount, category_id, payer_name)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`

	for i := range tx.LineItems {
		item := &tx.LineItems[i]
		item.TransactionID = tx.ID

		err := dbTx.QueryRowContext(ctx, itemQuery,
			item.TransactionID,
			item.Name,
			item.Amount,
			nullable(item.CategoryID),
			nullable(item.PayerName),
		).Scan(&item.ID)
		if err != nil {
			return fmt.Errorf("creating line item: %w", err)
		}
	}

	if err := dbTx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}

	return nil
}

func (s *Store) ListCategories(ctx context.Context) ([]ledger.CategoryRecord, error) {
	query := `SELECT id, name, icon, color FROM categories ORDER BY name ASC`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing categories: %w", err)
	}
	defer rows.Close()

	var records []ledger.CategoryRecord

	for rows.Next() {
		var rec ledger.CategoryRecord

		var icon, color sql.NullString

		if err := rows.Scan(&rec.ID, &rec.Name, &icon, &color); err != nil {
			return nil, fmt.Errorf("scanning category: %w", err)
		}

		rec.Icon = icon.String
		rec.Color = color.String

		records = append(records, rec)
	}

	return records, rows.Err()
}

func (s *Store) ListCreditCards(ctx context.Context) ([]ledger.CreditCard, error) {
	query := `SELECT id, card_name, billing_day FROM credit_cards ORDER BY card_name ASC`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing credit cards: %w", err)
	}
	defer rows.Close()

	var cards []ledger.CreditCard

	for rows.Next() {
		var card ledger.CreditCard
		if err := rows.Scan(&card.ID, &card.Name, &card.BillingDay); err != nil {
			return nil, fmt.Errorf("scanning credit card: %w", err)
		}

		cards = append(cards, card)
	}

	return cards, rows.Err()
}

func (s *Store) CreateCreditCard(ctx context.Context, card *ledger.CreditCard) error {
	query := `
		INSERT INTO credit_cards (card_name, billing_day, created_at)
		VALUES ($1, $2, NOW())
		RETURNING id
	`

	if err := s.db.QueryRowContext(ctx, query, card.Name, card.BillingDay).Scan(&card.ID); err != nil {
		return fmt.Errorf("creating credit card: %w", err)
	}

	return nil
}

func (s *Store) DeleteCreditCard(ctx context.Context, id uuid.UUID) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM credit_cards WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("deleting credit card: %w", err)
	}

	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ledger.ErrNotFound
	}

	return nil
}

func (s *Store) ListFamilyMembers(ctx context.Context) ([]ledger.FamilyMember, error) {
	query := `SELECT id, name, is_default FROM family_members ORDER BY created_at ASC`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing family members: %w", err)
	}
	defer rows.Close()

	var members []ledger.FamilyMember

	for rows.Next() {
		var m ledger.FamilyMember
		if err := rows.Scan(&m.ID, &m.Name, &m.IsDefault); err != nil {
			return nil, fmt.Errorf("scanning family member: %w", err)
		}

		members = append(members, m)
	}

	return members, rows.Err()
}

// CreateFamilyMember inserts a member; the first member in an empty table
// becomes the default payer.
func (s *Store) CreateFamilyMember(ctx context.Context, member *ledger.FamilyMember) error {
	query := `
		INSERT INTO family_members (name, is_default, created_at)
		VALUES ($1, NOT EXISTS (SELECT 1 FROM family_members), NOW())
		RETURNING id, is_default
	`

	if err := s.db.QueryRowContext(ctx, query, member.Name).Scan(&member.ID, &member.IsDefault); err != nil {
		return fmt.Errorf("creating family member: %w", err)
	}

	return nil
}

func (s *Store) DeleteFamilyMember(ctx context.Context, id uuid.UUID) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM family_members WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("deleting family member: %w", err)
	}

	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ledger.ErrNotFound
	}

	return nil
}

func (s *Store) GetProfile(ctx context.Context) (*ledger.Profile, error) {
	query := `SELECT id, username, monthly_limit FROM profiles LIMIT 1`

	var p ledger.Profile

	var limit decimal.NullDecimal

	err := s.db.QueryRowContext(ctx, query).Scan(&p.ID, &p.Username, &limit)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ledger.ErrNotFound
		}

		return nil, fmt.Errorf("getting profile: %w", err)
	}

	if limit.Valid {
		p.MonthlyLimit = limit.Decimal.InexactFloat64()
	}

	return &p, nil
}

func nullable(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
