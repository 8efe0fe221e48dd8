package mocks

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/treasury/internal/domain"
	"github.com/iho/treasury/internal/usecase"
)

// MockTransaction records transaction outcomes.
type MockTransaction struct {
	Committed  bool
	RolledBack bool

	CommitFunc func(ctx context.Context) error
}

func (t *MockTransaction) Commit(ctx context.Context) error {
	if t.CommitFunc != nil {
		return t.CommitFunc(ctx)
	}
	t.Committed = true
	return nil
}

func (t *MockTransaction) Rollback(ctx context.Context) error {
	if !t.Committed {
		t.RolledBack = true
	}
	return nil
}

// MockTransactionManager is a mock implementation of TransactionManager.
type MockTransactionManager struct {
	BeginFunc func(ctx context.Context) (usecase.Transaction, error)

	LastTx *MockTransaction
}

func NewMockTransactionManager() *MockTransactionManager {
	return &MockTransactionManager{}
}

func (m *MockTransactionManager) Begin(ctx context.Context) (usecase.Transaction, error) {
	if m.BeginFunc != nil {
		return m.BeginFunc(ctx)
	}
	m.LastTx = &MockTransaction{}
	return m.LastTx, nil
}

// MockIDGenerator generates sequential test IDs.
type MockIDGenerator struct {
	mu   sync.Mutex
	next int

	GenerateFunc func() string
}

func NewMockIDGenerator() *MockIDGenerator {
	return &MockIDGenerator{}
}

func (m *MockIDGenerator) Generate() string {
	if m.GenerateFunc != nil {
		return m.GenerateFunc()
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.next++
	return fmt.Sprintf("id-%03d", m.next)
}

// FixedClock is a Clock pinned to one instant.
type FixedClock struct {
	Time time.Time
}

func (c FixedClock) Now() time.Time { return c.Time }

// MockRunLocker is a mock implementation of RunLocker.
type MockRunLocker struct {
	mu   sync.Mutex
	held map[string]bool

	AcquireFunc func(ctx context.Context, key string, ttl time.Duration) (bool, error)
	ReleaseFunc func(ctx context.Context, key string) error
}

func NewMockRunLocker() *MockRunLocker {
	return &MockRunLocker{held: make(map[string]bool)}
}

func (m *MockRunLocker) Acquire(ctx context.Context, key string, ttl time.Duration) (bool, error) {
	if m.AcquireFunc != nil {
		return m.AcquireFunc(ctx, key, ttl)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.held[key] {
		return false, nil
	}
	m.held[key] = true
	return true, nil
}

func (m *MockRunLocker) Release(ctx context.Context, key string) error {
	if m.ReleaseFunc != nil {
		return m.ReleaseFunc(ctx, key)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.held, key)
	return nil
}

// MockAdvanceRepository is an in-memory mock of AdvanceRepository.
type MockAdvanceRepository struct {
	mu       sync.RWMutex
	advances map[string]*domain.Advance

	GetByIDFunc            func(ctx context.Context, id string) (*domain.Advance, error)
	ListAccruableFunc      func(ctx context.Context, tx usecase.Transaction, date time.Time) ([]*domain.Advance, error)
	ListForCSSInPeriodFunc func(ctx context.Context, cssID string, periodStart, periodEnd time.Time) ([]*domain.Advance, error)
	UpdateAccrualFunc      func(ctx context.Context, tx usecase.Transaction, id string, accrued decimal.Decimal, lastAccrual, updatedAt time.Time) error
}

func NewMockAdvanceRepository() *MockAdvanceRepository {
	return &MockAdvanceRepository{advances: make(map[string]*domain.Advance)}
}

func (m *MockAdvanceRepository) Add(a *domain.Advance) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.advances[a.ID] = a
}

func (m *MockAdvanceRepository) GetByID(ctx context.Context, id string) (*domain.Advance, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if a, ok := m.advances[id]; ok {
		return a, nil
	}
	return nil, domain.ErrAdvanceNotFound
}

func (m *MockAdvanceRepository) ListAccruable(ctx context.Context, tx usecase.Transaction, date time.Time) ([]*domain.Advance, error) {
	if m.ListAccruableFunc != nil {
		return m.ListAccruableFunc(ctx, tx, date)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	var out []*domain.Advance
	for _, a := range m.advances {
		if a.AccruesOn(date) {
			out = append(out, a)
		}
	}
	return out, nil
}

func (m *MockAdvanceRepository) ListForCSSInPeriod(ctx context.Context, cssID string, periodStart, periodEnd time.Time) ([]*domain.Advance, error) {
	if m.ListForCSSInPeriodFunc != nil {
		return m.ListForCSSInPeriodFunc(ctx, cssID, periodStart, periodEnd)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	var out []*domain.Advance
	for _, a := range m.advances {
		if a.CSSID != cssID || domain.Day(a.StartDate).After(domain.Day(periodEnd)) {
			continue
		}
		switch {
		case a.ActualEndDate != nil:
			if !domain.Day(*a.ActualEndDate).Before(domain.Day(periodStart)) {
				out = append(out, a)
			}
		case a.Status == domain.InstrumentActive:
			out = append(out, a)
		}
	}
	return out, nil
}

func (m *MockAdvanceRepository) UpdateAccrual(ctx context.Context, tx usecase.Transaction, id string, accrued decimal.Decimal, lastAccrual, updatedAt time.Time) error {
	if m.UpdateAccrualFunc != nil {
		return m.UpdateAccrualFunc(ctx, tx, id, accrued, lastAccrual, updatedAt)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if a, ok := m.advances[id]; ok {
		a.AccruedInterest = accrued
		la := lastAccrual
		a.LastAccrualDate = &la
		a.UpdatedAt = updatedAt
	}
	return nil
}

// MockLoanRepository is an in-memory mock of LoanRepository.
type MockLoanRepository struct {
	mu    sync.RWMutex
	loans map[string]*domain.Loan

	ListAccruableFunc   func(ctx context.Context, tx usecase.Transaction, date time.Time) ([]*domain.Loan, error)
	ListOverlappingFunc func(ctx context.Context, periodStart, periodEnd time.Time) ([]*domain.Loan, error)
	UpdateAccrualFunc   func(ctx context.Context, tx usecase.Transaction, id string, accrued decimal.Decimal, updatedAt time.Time) error
}

func NewMockLoanRepository() *MockLoanRepository {
	return &MockLoanRepository{loans: make(map[string]*domain.Loan)}
}

func (m *MockLoanRepository) Add(l *domain.Loan) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.loans[l.ID] = l
}

func (m *MockLoanRepository) ListAccruable(ctx context.Context, tx usecase.Transaction, date time.Time) ([]*domain.Loan, error) {
	if m.ListAccruableFunc != nil {
		return m.ListAccruableFunc(ctx, tx, date)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	var out []*domain.Loan
	for _, l := range m.loans {
		if l.AccruesOn(date) {
			out = append(out, l)
		}
	}
	return out, nil
}

func (m *MockLoanRepository) ListOverlapping(ctx context.Context, periodStart, periodEnd time.Time) ([]*domain.Loan, error) {
	if m.ListOverlappingFunc != nil {
		return m.ListOverlappingFunc(ctx, periodStart, periodEnd)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	var out []*domain.Loan
	for _, l := range m.loans {
		if l.Status != domain.InstrumentActive {
			continue
		}
		if domain.Day(l.StartDate).After(domain.Day(periodEnd)) || domain.Day(l.MaturityDate).Before(domain.Day(periodStart)) {
			continue
		}
		out = append(out, l)
	}
	return out, nil
}

func (m *MockLoanRepository) UpdateAccrual(ctx context.Context, tx usecase.Transaction, id string, accrued decimal.Decimal, updatedAt time.Time) error {
	if m.UpdateAccrualFunc != nil {
		return m.UpdateAccrualFunc(ctx, tx, id, accrued, updatedAt)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if l, ok := m.loans[id]; ok {
		l.AccruedInterest = accrued
		l.UpdatedAt = updatedAt
	}
	return nil
}

type entryKey struct {
	kind         domain.InstrumentKind
	instrumentID string
	date         time.Time
}

// MockInterestEntryRepository is an in-memory mock of InterestEntryRepository.
type MockInterestEntryRepository struct {
	mu      sync.RWMutex
	entries map[entryKey]*domain.InterestEntry

	CreateFunc       func(ctx context.Context, tx usecase.Transaction, entry *domain.InterestEntry) error
	ExistsOnFunc     func(ctx context.Context, tx usecase.Transaction, kind domain.InstrumentKind, instrumentID string, date time.Time) (bool, error)
	LatestBeforeFunc func(ctx context.Context, tx usecase.Transaction, kind domain.InstrumentKind, instrumentID string, date time.Time) (*domain.InterestEntry, error)
	SumInterestFunc  func(ctx context.Context, kind domain.InstrumentKind, instrumentIDs []string, from, to time.Time) (decimal.Decimal, error)
}

func NewMockInterestEntryRepository() *MockInterestEntryRepository {
	return &MockInterestEntryRepository{entries: make(map[entryKey]*domain.InterestEntry)}
}

// Entries returns all stored entries for one instrument, unordered.
func (m *MockInterestEntryRepository) Entries(kind domain.InstrumentKind, instrumentID string) []*domain.InterestEntry {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var out []*domain.InterestEntry
	for k, e := range m.entries {
		if k.kind == kind && k.instrumentID == instrumentID {
			out = append(out, e)
		}
	}
	return out
}

func (m *MockInterestEntryRepository) Create(ctx context.Context, tx usecase.Transaction, entry *domain.InterestEntry) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, tx, entry)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	key := entryKey{kind: entry.Kind, instrumentID: entry.InstrumentID, date: domain.Day(entry.EntryDate)}
	if _, ok := m.entries[key]; ok {
		return domain.ErrDuplicateInterestEntry
	}
	m.entries[key] = entry
	return nil
}

func (m *MockInterestEntryRepository) ExistsOn(ctx context.Context, tx usecase.Transaction, kind domain.InstrumentKind, instrumentID string, date time.Time) (bool, error) {
	if m.ExistsOnFunc != nil {
		return m.ExistsOnFunc(ctx, tx, kind, instrumentID, date)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, ok := m.entries[entryKey{kind: kind, instrumentID: instrumentID, date: domain.Day(date)}]
	return ok, nil
}

func (m *MockInterestEntryRepository) LatestBefore(ctx context.Context, tx usecase.Transaction, kind domain.InstrumentKind, instrumentID string, date time.Time) (*domain.InterestEntry, error) {
	if m.LatestBeforeFunc != nil {
		return m.LatestBeforeFunc(ctx, tx, kind, instrumentID, date)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	var latest *domain.InterestEntry
	for k, e := range m.entries {
		if k.kind != kind || k.instrumentID != instrumentID || !k.date.Before(domain.Day(date)) {
			continue
		}
		if latest == nil || k.date.After(domain.Day(latest.EntryDate)) {
			latest = e
		}
	}
	return latest, nil
}

func (m *MockInterestEntryRepository) ListByInstrument(ctx context.Context, kind domain.InstrumentKind, instrumentID string, limit, offset int) ([]*domain.InterestEntry, error) {
	entries := m.Entries(kind, instrumentID)
	if offset >= len(entries) {
		return nil, nil
	}
	entries = entries[offset:]
	if limit < len(entries) {
		entries = entries[:limit]
	}
	return entries, nil
}

func (m *MockInterestEntryRepository) SumInterest(ctx context.Context, kind domain.InstrumentKind, instrumentIDs []string, from, to time.Time) (decimal.Decimal, error) {
	if m.SumInterestFunc != nil {
		return m.SumInterestFunc(ctx, kind, instrumentIDs, from, to)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	ids := make(map[string]bool, len(instrumentIDs))
	for _, id := range instrumentIDs {
		ids[id] = true
	}
	sum := decimal.Zero
	for k, e := range m.entries {
		if k.kind != kind || !ids[k.instrumentID] {
			continue
		}
		if k.date.Before(domain.Day(from)) || k.date.After(domain.Day(to)) {
			continue
		}
		sum = sum.Add(e.Interest)
	}
	return sum, nil
}
