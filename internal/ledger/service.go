package ledger

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/kcherng/ledgerkit/internal/split"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=ledger
type Repository interface {
	ListTransactions(ctx context.Context, start, end time.Time) ([]Transaction, error)
	CreateTransaction(ctx context.Context, tx *Transaction) error

	ListCategories(ctx context.Context) ([]CategoryRecord, error)

	ListCreditCards(ctx context.Context) ([]CreditCard, error)
	CreateCreditCard(ctx context.Context, card *CreditCard) error
	DeleteCreditCard(ctx context.Context, id uuid.UUID) error

	ListFamilyMembers(ctx context.Context) ([]FamilyMember, error)
	CreateFamilyMember(ctx context.Context, member *FamilyMember) error
	DeleteFamilyMember(ctx context.Context, id uuid.UUID) error

	GetProfile(ctx context.Context) (*Profile, error)
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// CaptureItem is one priced entry as parsed from a receipt, a voice entry,
// or manual input, before payer splitting.
type CaptureItem struct {
	Name       string
	Amount     float64
	CategoryID string
	Payers     []split.Payer
}

// CreateParams describes one capture event. Date is optional; an empty date
// is stamped with the current time.
type CreateParams struct {
	Type         Type
	Note         string
	Date         string
	ReceiptURL   string
	CreditCardID string
	Items        []CaptureItem
}

// Create persists a transaction and its derived line-item records. Each
// captured item is split across its assigned payers; the transaction amount
// is the sum of the captured item amounts, which the shares preserve.
func (s *Service) Create(ctx context.Context, params CreateParams) (*Transaction, error) {
	if params.Type != TypeIncome && params.Type != TypeExpense {
		return nil, fmt.Errorf("invalid transaction type %q", params.Type)
	}

	if len(params.Items) == 0 {
		return nil, fmt.Errorf("transaction needs at least one item")
	}

	date := params.Date
	if strings.TrimSpace(date) == "" {
		date = time.Now().UTC().Format(time.RFC3339)
	}

	tx := &Transaction{
		Type:         params.Type,
		Note:         params.Note,
		Date:         date,
		ReceiptURL:   params.ReceiptURL,
		CreditCardID: params.CreditCardID,
	}

	for _, item := range params.Items {
		tx.Amount += item.Amount

		for _, share := range split.Split(split.Item{
			Name:       item.Name,
			Amount:     item.Amount,
			CategoryID: item.CategoryID,
		}, item.Payers) {
			tx.LineItems = append(tx.LineItems, LineItem{
				Name:       share.Name,
				Amount:     share.Amount,
				CategoryID: share.CategoryID,
				PayerName:  share.PayerName,
			})
		}
	}

	if err := s.repo.CreateTransaction(ctx, tx); err != nil {
		return nil, fmt.Errorf("creating transaction: %w", err)
	}

	return tx, nil
}

func (s *Service) List(ctx context.Context, start, end time.Time) ([]Transaction, error) {
	return s.repo.ListTransactions(ctx, start, end)
}

func (s *Service) Categories(ctx context.Context) ([]CategoryRecord, error) {
	return s.repo.ListCategories(ctx)
}

func (s *Service) CreditCards(ctx context.Context) ([]CreditCard, error) {
	return s.repo.ListCreditCards(ctx)
}

func (s *Service) AddCreditCard(ctx context.Context, name string, billingDay int) (*CreditCard, error) {
	if strings.TrimSpace(name) == "" {
		return nil, fmt.Errorf("card name cannot be empty")
	}

	if billingDay < 1 || billingDay > 31 {
		return nil, fmt.Errorf("billing day %d out of range 1..31", billingDay)
	}

	card := &CreditCard{Name: name, BillingDay: billingDay}
	if err := s.repo.CreateCreditCard(ctx, card); err != nil {
		return nil, fmt.Errorf("creating credit card: %w", err)
	}

	return card, nil
}

func (s *Service) RemoveCreditCard(ctx context.Context, id uuid.UUID) error {
	return s.repo.DeleteCreditCard(ctx, id)
}

func (s *Service) FamilyMembers(ctx context.Context) ([]FamilyMember, error) {
	return s.repo.ListFamilyMembers(ctx)
}

func (s *Service) AddFamilyMember(ctx context.Context, name string) (*FamilyMember, error) {
	if strings.TrimSpace(name) == "" {
		return nil, fmt.Errorf("member name cannot be empty")
	}

	member := &FamilyMember{Name: name}
	if err := s.repo.CreateFamilyMember(ctx, member); err != nil {
		return nil, fmt.Errorf("creating family member: %w", err)
	}

	return member, nil
}

func (s *Service) RemoveFamilyMember(ctx context.Context, id uuid.UUID) error {
	return s.repo.DeleteFamilyMember(ctx, id)
}

func (s *Service) Profile(ctx context.Context) (*Profile, error) {
	return s.repo.GetProfile(ctx)
}
