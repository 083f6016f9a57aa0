// Package dashboard assembles the monthly overview: the category report,
// per-payment-method billing totals, the grouped transaction timeline, and
// the remaining budget. Source data is fetched concurrently and the last
// successfully assembled snapshot is kept so a failed refresh never blanks
// the screen.
package dashboard

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/kcherng/ledgerkit/internal/ledger"
	"github.com/kcherng/ledgerkit/internal/period"
	"github.com/kcherng/ledgerkit/internal/report"
)

// Query selects the month under review and which transaction direction the
// category report aggregates.
type Query struct {
	Year  int
	Month time.Month
	Type  ledger.Type
}

// Snapshot is one fully fetched set of source data for a query.
type Snapshot struct {
	Query        Query
	Transactions []ledger.Transaction
	Previous     []ledger.Transaction
	Categories   []ledger.CategoryRecord
	Cards        []ledger.CreditCard
	Members      []ledger.FamilyMember
	Profile      *ledger.Profile
	FetchedAt    time.Time
}

// View is the assembled dashboard for one snapshot.
type View struct {
	Query          Query
	Report         report.Report
	TotalLabel     string
	RemainingLabel string
	Billing        []report.PaymentMethodStat
	Timeline       []report.DateGroup
}

type Service struct {
	ledger *ledger.Service

	// refreshMu serializes whole refresh cycles so an overlapping trigger
	// queues behind the in-flight one instead of racing it for s.last.
	refreshMu sync.Mutex

	mu   sync.Mutex
	last *Snapshot
}

func NewService(svc *ledger.Service) *Service {
	return &Service{ledger: svc}
}

// Refresh fetches all dashboard source data for the query concurrently.
// Overlapping calls run one at a time in arrival order. On any fetch error
// the previous snapshot is left in place and the error is returned. A
// missing profile is not an error; budget display is optional.
func (s *Service) Refresh(ctx context.Context, q Query) (*Snapshot, error) {
	s.refreshMu.Lock()
	defer s.refreshMu.Unlock()

	current := period.MonthWindow(q.Year, q.Month)
	previous := period.PreviousMonthWindow(q.Year, q.Month)

	snap := &Snapshot{Query: q}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		txs, err := s.ledger.List(gctx, current.Start, current.End)
		if err != nil {
			return fmt.Errorf("fetching transactions: %w", err)
		}

		snap.Transactions = txs

		return nil
	})

	g.Go(func() error {
		txs, err := s.ledger.List(gctx, previous.Start, previous.End)
		if err != nil {
			return fmt.Errorf("fetching previous transactions: %w", err)
		}

		snap.Previous = txs

		return nil
	})

	g.Go(func() error {
		records, err := s.ledger.Categories(gctx)
		if err != nil {
			return fmt.Errorf("fetching categories: %w", err)
		}

		snap.Categories = records

		return nil
	})

	g.Go(func() error {
		cards, err := s.ledger.CreditCards(gctx)
		if err != nil {
			return fmt.Errorf("fetching credit cards: %w", err)
		}

		snap.Cards = cards

		return nil
	})

	g.Go(func() error {
		members, err := s.ledger.FamilyMembers(gctx)
		if err != nil {
			return fmt.Errorf("fetching family members: %w", err)
		}

		snap.Members = members

		return nil
	})

	g.Go(func() error {
		profile, err := s.ledger.Profile(gctx)
		if err != nil {
			if errors.Is(err, ledger.ErrNotFound) {
				return nil
			}

			return fmt.Errorf("fetching profile: %w", err)
		}

		snap.Profile = profile

		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	snap.FetchedAt = time.Now()

	s.mu.Lock()
	s.last = snap
	s.mu.Unlock()

	return snap, nil
}

// Last returns the most recent successful snapshot, or nil before the first
// refresh.
func (s *Service) Last() *Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.last
}

// Assemble builds the dashboard view from a snapshot. It is pure; calling it
// twice on the same snapshot yields the same view.
func Assemble(snap *Snapshot) View {
	rep := report.Build(snap.Transactions, snap.Previous, snap.Categories, snap.Query.Type)

	// Billing cycles reach into the previous month whenever the billing day
	// is not the last day, so the cycle filter needs both fetched windows.
	billingTxs := make([]ledger.Transaction, 0, len(snap.Transactions)+len(snap.Previous))
	billingTxs = append(billingTxs, snap.Transactions...)
	billingTxs = append(billingTxs, snap.Previous...)

	view := View{
		Query:      snap.Query,
		Report:     rep,
		TotalLabel: report.Currency(rep.Total),
		Billing:    report.BillingTotals(snap.Cards, billingTxs, snap.Query.Year, snap.Query.Month),
		Timeline:   report.BuildTimeline(snap.Transactions, snap.Categories, snap.Cards),
	}

	if snap.Profile != nil && snap.Profile.MonthlyLimit > 0 && snap.Query.Type == ledger.TypeExpense {
		view.RemainingLabel = report.Currency(snap.Profile.MonthlyLimit - rep.Total)
	}

	return view
}
