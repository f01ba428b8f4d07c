package mocks

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/gestora/anticipos/internal/domain"
	"github.com/gestora/anticipos/internal/usecase"
)

// MockPartnerRepository is a mock implementation of PartnerRepository.
// Default behavior stores partners in memory; set the Func fields to
// override individual methods.
type MockPartnerRepository struct {
	mu       sync.RWMutex
	partners map[string]*domain.Partner

	CreateFunc    func(ctx context.Context, partner *domain.Partner) error
	GetByIDFunc   func(ctx context.Context, kind domain.PartnerKind, id string) (*domain.Partner, error)
	GetByIDTxFunc func(ctx context.Context, tx usecase.Transaction, kind domain.PartnerKind, id string) (*domain.Partner, error)
	ListFunc      func(ctx context.Context, kind domain.PartnerKind, limit, offset int) ([]*domain.Partner, error)
}

func NewMockPartnerRepository() *MockPartnerRepository {
	return &MockPartnerRepository{
		partners: make(map[string]*domain.Partner),
	}
}

func partnerKey(kind domain.PartnerKind, id string) string {
	return string(kind) + ":" + id
}

func (m *MockPartnerRepository) Create(ctx context.Context, partner *domain.Partner) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, partner)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.partners[partnerKey(partner.Kind, partner.ID)] = partner
	return nil
}

func (m *MockPartnerRepository) GetByID(ctx context.Context, kind domain.PartnerKind, id string) (*domain.Partner, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, kind, id)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if p, ok := m.partners[partnerKey(kind, id)]; ok {
		return p, nil
	}
	return nil, domain.ErrPartnerNotFound
}

func (m *MockPartnerRepository) GetByIDTx(ctx context.Context, tx usecase.Transaction, kind domain.PartnerKind, id string) (*domain.Partner, error) {
	if m.GetByIDTxFunc != nil {
		return m.GetByIDTxFunc(ctx, tx, kind, id)
	}
	return m.GetByID(ctx, kind, id)
}

func (m *MockPartnerRepository) List(ctx context.Context, kind domain.PartnerKind, limit, offset int) ([]*domain.Partner, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, kind, limit, offset)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	var result []*domain.Partner
	for _, p := range m.partners {
		if p.Kind == kind {
			result = append(result, p)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

// MockEntryRepository is a mock implementation of EntryRepository. Default
// behavior stores entries in memory and computes aggregates from the stored
// set, so lifecycle scenarios can be exercised without a database.
type MockEntryRepository struct {
	mu      sync.RWMutex
	entries map[string]*domain.AdvanceEntry

	CreateFunc              func(ctx context.Context, entry *domain.AdvanceEntry) error
	CreateTxFunc            func(ctx context.Context, tx usecase.Transaction, entry *domain.AdvanceEntry) error
	GetByIDFunc             func(ctx context.Context, id string) (*domain.AdvanceEntry, error)
	UpdateFunc              func(ctx context.Context, entry *domain.AdvanceEntry) error
	DeleteFunc              func(ctx context.Context, id string) error
	ListByPartnerFunc       func(ctx context.Context, kind domain.PartnerKind, partnerID string) ([]*domain.AdvanceEntry, error)
	AggregatesByPartnerFunc func(ctx context.Context, kind domain.PartnerKind, partnerID string) (decimal.Decimal, decimal.Decimal, error)
}

func NewMockEntryRepository() *MockEntryRepository {
	return &MockEntryRepository{
		entries: make(map[string]*domain.AdvanceEntry),
	}
}

func (m *MockEntryRepository) Create(ctx context.Context, entry *domain.AdvanceEntry) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, entry)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	stored := *entry
	m.entries[entry.ID] = &stored
	return nil
}

func (m *MockEntryRepository) CreateTx(ctx context.Context, tx usecase.Transaction, entry *domain.AdvanceEntry) error {
	if m.CreateTxFunc != nil {
		return m.CreateTxFunc(ctx, tx, entry)
	}
	return m.Create(ctx, entry)
}

func (m *MockEntryRepository) GetByID(ctx context.Context, id string) (*domain.AdvanceEntry, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if e, ok := m.entries[id]; ok {
		copied := *e
		return &copied, nil
	}
	return nil, domain.ErrEntryNotFound
}

func (m *MockEntryRepository) Update(ctx context.Context, entry *domain.AdvanceEntry) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, entry)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.entries[entry.ID]; !ok {
		return domain.ErrEntryNotFound
	}
	stored := *entry
	m.entries[entry.ID] = &stored
	return nil
}

func (m *MockEntryRepository) Delete(ctx context.Context, id string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.entries[id]; !ok {
		return domain.ErrEntryNotFound
	}
	delete(m.entries, id)
	return nil
}

func (m *MockEntryRepository) ListByPartner(ctx context.Context, kind domain.PartnerKind, partnerID string) ([]*domain.AdvanceEntry, error) {
	if m.ListByPartnerFunc != nil {
		return m.ListByPartnerFunc(ctx, kind, partnerID)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	var result []*domain.AdvanceEntry
	for _, e := range m.entries {
		if e.BelongsTo(kind, partnerID) {
			copied := *e
			result = append(result, &copied)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].CreatedAt.After(result[j].CreatedAt) })
	return result, nil
}

func (m *MockEntryRepository) AggregatesByPartner(ctx context.Context, kind domain.PartnerKind, partnerID string) (decimal.Decimal, decimal.Decimal, error) {
	if m.AggregatesByPartnerFunc != nil {
		return m.AggregatesByPartnerFunc(ctx, kind, partnerID)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	credits, debits := decimal.Zero, decimal.Zero
	for _, e := range m.entries {
		if !e.BelongsTo(kind, partnerID) {
			continue
		}
		switch e.Kind {
		case domain.EntryKindCredit:
			credits = credits.Add(e.Amount)
		case domain.EntryKindDebit:
			debits = debits.Add(e.Amount)
		}
	}
	return credits, debits, nil
}

// MockSummaryCache is a mock implementation of SummaryCache. Default
// behavior is a pass-through miss; it records invalidations.
type MockSummaryCache struct {
	mu            sync.Mutex
	Invalidations []string

	GetFunc        func(ctx context.Context, kind domain.PartnerKind, partnerID string) (*domain.LedgerSummary, error)
	SetFunc        func(ctx context.Context, kind domain.PartnerKind, partnerID string, summary *domain.LedgerSummary, ttl time.Duration) error
	InvalidateFunc func(ctx context.Context, kind domain.PartnerKind, partnerID string) error
}

func NewMockSummaryCache() *MockSummaryCache {
	return &MockSummaryCache{}
}

func (m *MockSummaryCache) Get(ctx context.Context, kind domain.PartnerKind, partnerID string) (*domain.LedgerSummary, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, kind, partnerID)
	}
	return nil, nil
}

func (m *MockSummaryCache) Set(ctx context.Context, kind domain.PartnerKind, partnerID string, summary *domain.LedgerSummary, ttl time.Duration) error {
	if m.SetFunc != nil {
		return m.SetFunc(ctx, kind, partnerID, summary, ttl)
	}
	return nil
}

func (m *MockSummaryCache) Invalidate(ctx context.Context, kind domain.PartnerKind, partnerID string) error {
	if m.InvalidateFunc != nil {
		return m.InvalidateFunc(ctx, kind, partnerID)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Invalidations = append(m.Invalidations, partnerKey(kind, partnerID))
	return nil
}

// MockTransaction is a no-op transaction.
type MockTransaction struct {
	Committed  bool
	RolledBack bool
}

func (t *MockTransaction) Commit(ctx context.Context) error {
	t.Committed = true
	return nil
}

func (t *MockTransaction) Rollback(ctx context.Context) error {
	if !t.Committed {
		t.RolledBack = true
	}
	return nil
}

// MockTransactionManager hands out MockTransactions.
type MockTransactionManager struct {
	BeginFunc func(ctx context.Context) (usecase.Transaction, error)

	mu           sync.Mutex
	Transactions []*MockTransaction
}

func NewMockTransactionManager() *MockTransactionManager {
	return &MockTransactionManager{}
}

func (m *MockTransactionManager) Begin(ctx context.Context) (usecase.Transaction, error) {
	if m.BeginFunc != nil {
		return m.BeginFunc(ctx)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	tx := &MockTransaction{}
	m.Transactions = append(m.Transactions, tx)
	return tx, nil
}

// MockRetrier runs operations without backoff. Default behavior executes
// the operation once; set MaxAttempts above 1 to re-run failed operations.
type MockRetrier struct {
	mu          sync.Mutex
	Calls       int
	MaxAttempts int

	RetryFunc func(ctx context.Context, operation func() error) error
}

func NewMockRetrier() *MockRetrier {
	return &MockRetrier{MaxAttempts: 1}
}

func (m *MockRetrier) Retry(ctx context.Context, operation func() error) error {
	if m.RetryFunc != nil {
		return m.RetryFunc(ctx, operation)
	}
	m.mu.Lock()
	m.Calls++
	attempts := m.MaxAttempts
	m.mu.Unlock()

	var err error
	for i := 0; i < attempts; i++ {
		if err = operation(); err == nil {
			return nil
		}
	}
	return err
}

// MockIDGenerator returns sequential IDs.
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
	return fmt.Sprintf("id-%d", m.next)
}

// MockMetricsRecorder counts recorded operations.
type MockMetricsRecorder struct {
	mu       sync.Mutex
	Created  int
	Updated  int
	Deleted  int
	Fetches  int
	CacheHit int
}

func NewMockMetricsRecorder() *MockMetricsRecorder {
	return &MockMetricsRecorder{}
}

func (m *MockMetricsRecorder) EntryCreated() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Created++
}

func (m *MockMetricsRecorder) EntryUpdated() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Updated++
}

func (m *MockMetricsRecorder) EntryDeleted() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Deleted++
}

func (m *MockMetricsRecorder) LedgerFetched(cacheHit bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Fetches++
	if cacheHit {
		m.CacheHit++
	}
}
