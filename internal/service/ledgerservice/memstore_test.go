package ledgerservice

import (
	"context"
	"sync"
	"time"

	"github.com/GlebRadaev/loyalty/internal/domain"
	"github.com/GlebRadaev/loyalty/internal/pg"
)

// memStore is an in-memory stand-in for Postgres. Transactions are
// serialized and restored from a snapshot on error, which is the behaviour
// the FOR UPDATE locks give the real repositories.
type memStore struct {
	txMu   sync.Mutex
	dataMu sync.Mutex

	nextID     int
	users      map[int]domain.User
	businesses map[int]domain.Business
	programs   map[int]domain.LoyaltyProgram
	clients    map[int]domain.Client
	progress   map[[2]int]domain.ClientProgress
	purchases  map[string]domain.Purchase
	tickets    map[string]domain.RedemptionTicket

	failMarkRedeemed error
}

func newMemStore() *memStore {
	return &memStore{
		nextID:     100,
		users:      map[int]domain.User{},
		businesses: map[int]domain.Business{},
		programs:   map[int]domain.LoyaltyProgram{},
		clients:    map[int]domain.Client{},
		progress:   map[[2]int]domain.ClientProgress{},
		purchases:  map[string]domain.Purchase{},
		tickets:    map[string]domain.RedemptionTicket{},
	}
}

func (m *memStore) repos() Repos {
	return Repos{
		Users:      memUsers{m},
		Businesses: memBusinesses{m},
		Programs:   memPrograms{m},
		Clients:    memClients{m},
		Progress:   memProgress{m},
		Purchases:  memPurchases{m},
		Tickets:    memTickets{m},
	}
}

func (m *memStore) id() int {
	m.nextID++
	return m.nextID
}

type snapshot struct {
	progress  map[[2]int]domain.ClientProgress
	purchases map[string]domain.Purchase
	tickets   map[string]domain.RedemptionTicket
}

func (m *memStore) snapshot() snapshot {
	m.dataMu.Lock()
	defer m.dataMu.Unlock()
	s := snapshot{
		progress:  make(map[[2]int]domain.ClientProgress, len(m.progress)),
		purchases: make(map[string]domain.Purchase, len(m.purchases)),
		tickets:   make(map[string]domain.RedemptionTicket, len(m.tickets)),
	}
	for k, v := range m.progress {
		s.progress[k] = v
	}
	for k, v := range m.purchases {
		s.purchases[k] = v
	}
	for k, v := range m.tickets {
		s.tickets[k] = v
	}
	return s
}

func (m *memStore) restore(s snapshot) {
	m.dataMu.Lock()
	defer m.dataMu.Unlock()
	m.progress, m.purchases, m.tickets = s.progress, s.purchases, s.tickets
}

func (m *memStore) Begin(ctx context.Context, fn pg.TransactionalFn) error {
	m.txMu.Lock()
	defer m.txMu.Unlock()
	before := m.snapshot()
	if err := fn(ctx); err != nil {
		m.restore(before)
		return err
	}
	return nil
}

func (m *memStore) balance(clientID, programID int) (int, bool) {
	m.dataMu.Lock()
	defer m.dataMu.Unlock()
	p, ok := m.progress[[2]int{clientID, programID}]
	return p.PointsAccumulated, ok
}

func (m *memStore) setBalance(clientID, programID, points int) {
	m.dataMu.Lock()
	defer m.dataMu.Unlock()
	key := [2]int{clientID, programID}
	p, ok := m.progress[key]
	if !ok {
		p = domain.ClientProgress{ID: m.id(), ClientID: clientID, ProgramID: programID}
	}
	p.PointsAccumulated = points
	m.progress[key] = p
}

type memUsers struct{ *memStore }

func (r memUsers) FindByID(_ context.Context, id int) (*domain.User, error) {
	r.dataMu.Lock()
	defer r.dataMu.Unlock()
	if u, ok := r.users[id]; ok {
		return &u, nil
	}
	return nil, nil
}

type memBusinesses struct{ *memStore }

func (r memBusinesses) FindByID(_ context.Context, id int) (*domain.Business, error) {
	r.dataMu.Lock()
	defer r.dataMu.Unlock()
	if b, ok := r.businesses[id]; ok {
		return &b, nil
	}
	return nil, nil
}

func (r memBusinesses) FindByOwnerID(_ context.Context, ownerID int) (*domain.Business, error) {
	r.dataMu.Lock()
	defer r.dataMu.Unlock()
	for _, b := range r.businesses {
		if b.OwnerID == ownerID {
			return &b, nil
		}
	}
	return nil, nil
}

type memPrograms struct{ *memStore }

func (r memPrograms) FindByID(_ context.Context, id int) (*domain.LoyaltyProgram, error) {
	r.dataMu.Lock()
	defer r.dataMu.Unlock()
	if p, ok := r.programs[id]; ok {
		return &p, nil
	}
	return nil, nil
}

func (r memPrograms) FindFirstActive(_ context.Context, businessID int) (*domain.LoyaltyProgram, error) {
	r.dataMu.Lock()
	defer r.dataMu.Unlock()
	var first *domain.LoyaltyProgram
	for _, p := range r.programs {
		if p.BusinessID != businessID || !p.Active {
			continue
		}
		if first == nil || p.CreatedAt.Before(first.CreatedAt) || (p.CreatedAt.Equal(first.CreatedAt) && p.ID < first.ID) {
			p := p
			first = &p
		}
	}
	return first, nil
}

type memClients struct{ *memStore }

func (r memClients) FindByID(_ context.Context, id int) (*domain.Client, error) {
	r.dataMu.Lock()
	defer r.dataMu.Unlock()
	if c, ok := r.clients[id]; ok {
		return &c, nil
	}
	return nil, nil
}

func (r memClients) FindByUserID(_ context.Context, userID int) (*domain.Client, error) {
	r.dataMu.Lock()
	defer r.dataMu.Unlock()
	for _, c := range r.clients {
		if c.UserID == userID {
			return &c, nil
		}
	}
	return nil, nil
}

type memProgress struct{ *memStore }

func (r memProgress) FindForUpdate(_ context.Context, clientID, programID int) (*domain.ClientProgress, error) {
	r.dataMu.Lock()
	defer r.dataMu.Unlock()
	if p, ok := r.progress[[2]int{clientID, programID}]; ok {
		return &p, nil
	}
	return nil, nil
}

func (r memProgress) Credit(_ context.Context, clientID, programID, points int) (*domain.ClientProgress, error) {
	r.dataMu.Lock()
	defer r.dataMu.Unlock()
	key := [2]int{clientID, programID}
	p, ok := r.progress[key]
	if !ok {
		p = domain.ClientProgress{ID: r.id(), ClientID: clientID, ProgramID: programID}
	}
	p.PointsAccumulated += points
	p.UpdatedAt = time.Now()
	r.progress[key] = p
	return &p, nil
}

func (r memProgress) Debit(_ context.Context, id, points int) (bool, error) {
	r.dataMu.Lock()
	defer r.dataMu.Unlock()
	for key, p := range r.progress {
		if p.ID != id {
			continue
		}
		if p.PointsAccumulated < points {
			return false, nil
		}
		p.PointsAccumulated -= points
		r.progress[key] = p
		return true, nil
	}
	return false, nil
}

func (r memProgress) ListByClient(_ context.Context, clientID int) ([]domain.ProgressView, error) {
	r.dataMu.Lock()
	defer r.dataMu.Unlock()
	var views []domain.ProgressView
	for _, p := range r.progress {
		if p.ClientID != clientID {
			continue
		}
		program := r.programs[p.ProgramID]
		views = append(views, domain.ProgressView{
			ProgramID:         program.ID,
			ProgramName:       program.Name,
			BusinessID:        program.BusinessID,
			BusinessName:      r.businesses[program.BusinessID].Name,
			PointsThreshold:   program.PointsThreshold,
			PointsAccumulated: p.PointsAccumulated,
		})
	}
	return views, nil
}

type memPurchases struct{ *memStore }

func (r memPurchases) Create(_ context.Context, purchase *domain.Purchase) (*domain.Purchase, error) {
	r.dataMu.Lock()
	defer r.dataMu.Unlock()
	purchase.CreatedAt = time.Now()
	r.purchases[purchase.ID] = *purchase
	return purchase, nil
}

func (r memPurchases) FindByIDForUpdate(_ context.Context, id string) (*domain.Purchase, error) {
	r.dataMu.Lock()
	defer r.dataMu.Unlock()
	if p, ok := r.purchases[id]; ok {
		return &p, nil
	}
	return nil, nil
}

func (r memPurchases) MarkRedeemed(_ context.Context, id string, clientID int) (bool, error) {
	if r.failMarkRedeemed != nil {
		return false, r.failMarkRedeemed
	}
	r.dataMu.Lock()
	defer r.dataMu.Unlock()
	p, ok := r.purchases[id]
	if !ok || p.Redeemed {
		return false, nil
	}
	p.Redeemed = true
	p.ClientID = &clientID
	r.purchases[id] = p
	return true, nil
}

type memTickets struct{ *memStore }

func (r memTickets) Create(_ context.Context, ticket *domain.RedemptionTicket) (*domain.RedemptionTicket, error) {
	r.dataMu.Lock()
	defer r.dataMu.Unlock()
	ticket.CreatedAt = time.Now()
	r.tickets[ticket.ID] = *ticket
	return ticket, nil
}

func (r memTickets) FindByID(_ context.Context, id string) (*domain.RedemptionTicket, error) {
	r.dataMu.Lock()
	defer r.dataMu.Unlock()
	if t, ok := r.tickets[id]; ok {
		return &t, nil
	}
	return nil, nil
}

func (r memTickets) FindByIDForUpdate(ctx context.Context, id string) (*domain.RedemptionTicket, error) {
	return r.FindByID(ctx, id)
}

func (r memTickets) MarkUsed(_ context.Context, id string, at time.Time) (bool, error) {
	r.dataMu.Lock()
	defer r.dataMu.Unlock()
	t, ok := r.tickets[id]
	if !ok || t.Used {
		return false, nil
	}
	t.Used = true
	t.UsedAt = &at
	r.tickets[id] = t
	return true, nil
}

type auditEntry struct {
	level   domain.LogLevel
	message string
}

type auditSpy struct {
	mu      sync.Mutex
	entries []auditEntry
}

func (a *auditSpy) Write(_ context.Context, level domain.LogLevel, message string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.entries = append(a.entries, auditEntry{level: level, message: message})
}

func (a *auditSpy) count(level domain.LogLevel) int {
	a.mu.Lock()
	defer a.mu.Unlock()
	n := 0
	for _, e := range a.entries {
		if e.level == level {
			n++
		}
	}
	return n
}

type eventSpy struct {
	mu     sync.Mutex
	events []domain.LedgerEvent
}

func (e *eventSpy) Publish(_ context.Context, event domain.LedgerEvent) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.events = append(e.events, event)
	return nil
}

type memCache struct {
	mu   sync.Mutex
	used map[string]int
}

func (c *memCache) MarkUsed(_ context.Context, ticketID string, clientID int) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.used == nil {
		c.used = map[string]int{}
	}
	c.used[ticketID] = clientID
	return nil
}

func (c *memCache) UsedBy(_ context.Context, ticketID string) (int, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	id, ok := c.used[ticketID]
	return id, ok, nil
}
