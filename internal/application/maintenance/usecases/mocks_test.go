package usecases

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"

	auditapp "github.com/gearguard/gearguard/internal/application/audit"
	notificationapp "github.com/gearguard/gearguard/internal/application/notification"
	"github.com/gearguard/gearguard/internal/domain/equipment"
	"github.com/gearguard/gearguard/internal/domain/maintenance"
	vo "github.com/gearguard/gearguard/internal/domain/maintenance/valueobjects"
	"github.com/gearguard/gearguard/internal/domain/team"
	"github.com/gearguard/gearguard/internal/domain/user"
	"github.com/gearguard/gearguard/internal/infrastructure/email"
	"github.com/gearguard/gearguard/internal/shared/errors"
	"github.com/gearguard/gearguard/internal/shared/logger"
)

// mockRequestRepository stores copies so concurrent commands never share a Request.
type mockRequestRepository struct {
	mu     sync.Mutex
	items  map[uint]*maintenance.Request
	nextID uint

	ListFunc   func(ctx context.Context, filter maintenance.Filter) ([]*maintenance.Request, error)
	UpdateFunc func(ctx context.Context, r *maintenance.Request) error
	updates    int
}

func newMockRequestRepository() *mockRequestRepository {
	return &mockRequestRepository{items: make(map[uint]*maintenance.Request), nextID: 1}
}

func (m *mockRequestRepository) Create(ctx context.Context, r *maintenance.Request) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := r.SetID(m.nextID); err != nil {
		return err
	}
	m.nextID++
	m.items[r.ID()] = cloneRequest(r)
	return nil
}

func (m *mockRequestRepository) GetByID(ctx context.Context, id uint) (*maintenance.Request, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	r, ok := m.items[id]
	if !ok {
		return nil, nil
	}
	return cloneRequest(r), nil
}

func (m *mockRequestRepository) Update(ctx context.Context, r *maintenance.Request) error {
	if m.UpdateFunc != nil {
		if err := m.UpdateFunc(ctx, r); err != nil {
			return err
		}
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	stored, ok := m.items[r.ID()]
	if !ok {
		return errors.NewNotFoundError("request not found")
	}
	if stored.Version() != r.Version()-1 {
		return errors.NewConflictError("request was modified concurrently")
	}
	m.items[r.ID()] = cloneRequest(r)
	m.updates++
	return nil
}

func (m *mockRequestRepository) Delete(ctx context.Context, id uint) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.items[id]; !ok {
		return errors.NewNotFoundError("request not found")
	}
	delete(m.items, id)
	return nil
}

func (m *mockRequestRepository) List(ctx context.Context, filter maintenance.Filter) ([]*maintenance.Request, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []*maintenance.Request
	for _, r := range m.items {
		if len(filter.Stages) > 0 && !containsStage(filter.Stages, r.Stage()) {
			continue
		}
		out = append(out, cloneRequest(r))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID() < out[j].ID() })
	return out, nil
}

func (m *mockRequestRepository) CountByStage(ctx context.Context) (map[vo.Stage]int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	counts := make(map[vo.Stage]int64)
	for _, r := range m.items {
		counts[r.Stage()]++
	}
	return counts, nil
}

func (m *mockRequestRepository) CountOverdue(ctx context.Context) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var n int64
	for _, r := range m.items {
		if r.IsOverdue() {
			n++
		}
	}
	return n, nil
}

func (m *mockRequestRepository) CountCompletedBetween(ctx context.Context, from, to time.Time) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var n int64
	for _, r := range m.items {
		if c := r.CompletedAt(); c != nil && !c.Before(from) && !c.After(to) {
			n++
		}
	}
	return n, nil
}

func (m *mockRequestRepository) get(id uint) *maintenance.Request {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.items[id]
}

func containsStage(stages []vo.Stage, s vo.Stage) bool {
	for _, stage := range stages {
		if stage == s {
			return true
		}
	}
	return false
}

func cloneRequest(r *maintenance.Request) *maintenance.Request {
	if r.ID() == 0 {
		return r
	}
	c, err := maintenance.ReconstructRequest(maintenance.ReconstructParams{
		ID:                r.ID(),
		Subject:           r.Subject(),
		Description:       r.Description(),
		Type:              r.Type(),
		Priority:          r.Priority(),
		Stage:             r.Stage(),
		EquipmentID:       r.EquipmentID(),
		RequesterID:       r.RequesterID(),
		AssignedTeamID:    r.AssignedTeamID(),
		AssignedToID:      r.AssignedToID(),
		ScheduledDate:     r.ScheduledDate(),
		EstimatedDuration: r.EstimatedDuration(),
		Notes:             r.Notes(),
		IsOverdue:         r.IsOverdue(),
		CompletedAt:       r.CompletedAt(),
		Version:           r.Version(),
		CreatedAt:         r.CreatedAt(),
		UpdatedAt:         r.UpdatedAt(),
	})
	if err != nil {
		panic(err)
	}
	return c
}

// mockEquipmentRepository hands out copies, so read-modify-write races lose
// updates here the same way they would against a database. GetByIDForUpdate
// holds a per-row lock until the mock transaction in ctx finishes.
type mockEquipmentRepository struct {
	mu       sync.Mutex
	items    map[uint]*equipment.Equipment
	rowLocks map[uint]*sync.Mutex
	updates  int
}

func newMockEquipmentRepository(items ...*equipment.Equipment) *mockEquipmentRepository {
	m := &mockEquipmentRepository{
		items:    make(map[uint]*equipment.Equipment),
		rowLocks: make(map[uint]*sync.Mutex),
	}
	for _, e := range items {
		m.items[e.ID()] = e
	}
	return m
}

func (m *mockEquipmentRepository) GetByID(ctx context.Context, id uint) (*equipment.Equipment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	e, ok := m.items[id]
	if !ok {
		return nil, nil
	}
	return cloneEquipment(e), nil
}

func (m *mockEquipmentRepository) GetByIDForUpdate(ctx context.Context, id uint) (*equipment.Equipment, error) {
	m.mu.Lock()
	row, ok := m.rowLocks[id]
	if !ok {
		row = &sync.Mutex{}
		m.rowLocks[id] = row
	}
	m.mu.Unlock()

	row.Lock()
	if tx, ok := ctx.Value(mockTxKey{}).(*mockTx); ok {
		tx.onEnd(row.Unlock)
	} else {
		row.Unlock()
	}
	return m.GetByID(ctx, id)
}

func (m *mockEquipmentRepository) GetByIDs(ctx context.Context, ids []uint) (map[uint]*equipment.Equipment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make(map[uint]*equipment.Equipment)
	for _, id := range ids {
		if e, ok := m.items[id]; ok {
			out[id] = cloneEquipment(e)
		}
	}
	return out, nil
}

func (m *mockEquipmentRepository) Create(ctx context.Context, e *equipment.Equipment) error {
	return nil
}

func (m *mockEquipmentRepository) Update(ctx context.Context, e *equipment.Equipment) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.items[e.ID()] = cloneEquipment(e)
	m.updates++
	return nil
}

func (m *mockEquipmentRepository) get(id uint) *equipment.Equipment {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.items[id]
}

func cloneEquipment(e *equipment.Equipment) *equipment.Equipment {
	c, err := equipment.ReconstructEquipment(e.ID(), e.Name(), e.SerialNumber(), e.Category(), e.Location(),
		e.Status(), e.HealthScore(), e.Notes(), e.CreatedAt(), e.UpdatedAt())
	if err != nil {
		panic(err)
	}
	return c
}

type mockUserRepository struct {
	items map[uint]*user.User
}

func newMockUserRepository(items ...*user.User) *mockUserRepository {
	m := &mockUserRepository{items: make(map[uint]*user.User)}
	for _, u := range items {
		m.items[u.ID()] = u
	}
	return m
}

func (m *mockUserRepository) GetByID(ctx context.Context, id uint) (*user.User, error) {
	return m.items[id], nil
}

func (m *mockUserRepository) GetByIDs(ctx context.Context, ids []uint) (map[uint]*user.User, error) {
	out := make(map[uint]*user.User)
	for _, id := range ids {
		if u, ok := m.items[id]; ok {
			out[id] = u
		}
	}
	return out, nil
}

func (m *mockUserRepository) ListActiveByRoles(ctx context.Context, roles ...user.Role) ([]*user.User, error) {
	return nil, nil
}

func (m *mockUserRepository) Create(ctx context.Context, u *user.User) error {
	return nil
}

type mockTeamRepository struct {
	items map[uint]*team.Team
}

func newMockTeamRepository(items ...*team.Team) *mockTeamRepository {
	m := &mockTeamRepository{items: make(map[uint]*team.Team)}
	for _, t := range items {
		m.items[t.ID()] = t
	}
	return m
}

func (m *mockTeamRepository) GetByID(ctx context.Context, id uint) (*team.Team, error) {
	return m.items[id], nil
}

func (m *mockTeamRepository) GetByIDs(ctx context.Context, ids []uint) (map[uint]*team.Team, error) {
	out := make(map[uint]*team.Team)
	for _, id := range ids {
		if t, ok := m.items[id]; ok {
			out[id] = t
		}
	}
	return out, nil
}

func (m *mockTeamRepository) Create(ctx context.Context, t *team.Team) error {
	return nil
}

type mockTxKey struct{}

// mockTx collects the row locks taken inside one mock transaction.
type mockTx struct {
	mu      sync.Mutex
	release []func()
}

func (tx *mockTx) onEnd(fn func()) {
	tx.mu.Lock()
	defer tx.mu.Unlock()
	tx.release = append(tx.release, fn)
}

func (tx *mockTx) end() {
	tx.mu.Lock()
	defer tx.mu.Unlock()
	for _, fn := range tx.release {
		fn()
	}
	tx.release = nil
}

type mockTransactionRunner struct {
	mu        sync.Mutex
	commits   int
	rollbacks int
}

func (m *mockTransactionRunner) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	if _, ok := ctx.Value(mockTxKey{}).(*mockTx); ok {
		return fn(ctx)
	}
	tx := &mockTx{}
	err := fn(context.WithValue(ctx, mockTxKey{}, tx))
	tx.end()
	m.mu.Lock()
	defer m.mu.Unlock()
	if err != nil {
		m.rollbacks++
		return err
	}
	m.commits++
	return nil
}

type mockAuditLogger struct {
	mu      sync.Mutex
	entries []auditapp.Entry
}

func (m *mockAuditLogger) Log(ctx context.Context, e auditapp.Entry) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries = append(m.entries, e)
}

func (m *mockAuditLogger) all() []auditapp.Entry {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]auditapp.Entry(nil), m.entries...)
}

type notifyCall struct {
	kind   string
	userID uint
	ref    notificationapp.RequestRef
	stage  string
	view   email.AssignmentView
}

type mockNotifier struct {
	mu    sync.Mutex
	calls []notifyCall
	err   error
}

func (m *mockNotifier) record(c notifyCall) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls = append(m.calls, c)
	return m.err
}

func (m *mockNotifier) NotifyRequestAssigned(ctx context.Context, userID uint, req notificationapp.RequestRef, view email.AssignmentView) error {
	return m.record(notifyCall{kind: "assigned", userID: userID, ref: req, view: view})
}

func (m *mockNotifier) NotifyRequestUpdated(ctx context.Context, userID uint, req notificationapp.RequestRef, stage string) error {
	return m.record(notifyCall{kind: "updated", userID: userID, ref: req, stage: stage})
}

func (m *mockNotifier) NotifyRequestCompleted(ctx context.Context, userID uint, req notificationapp.RequestRef) error {
	return m.record(notifyCall{kind: "completed", userID: userID, ref: req})
}

func (m *mockNotifier) all() []notifyCall {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]notifyCall(nil), m.calls...)
}

var testNow = time.Date(2026, 4, 15, 9, 0, 0, 0, time.UTC)

const (
	pressID      uint = 10
	requesterID  uint = 1
	technicianID uint = 2
	otherTechID  uint = 3
	mechanicsID  uint = 7
)

// harness wires every use case against in-memory fakes.
type harness struct {
	clock     *clockwork.FakeClock
	requests  *mockRequestRepository
	equipment *mockEquipmentRepository
	tx        *mockTransactionRunner
	audit     *mockAuditLogger
	notifier  *mockNotifier
	locker    *RequestLocker

	create     *CreateRequestUseCase
	update     *UpdateRequestUseCase
	transition *TransitionStageUseCase
	delete     *DeleteRequestUseCase
	get        *GetRequestUseCase
	list       *ListRequestsUseCase
	stats      *GetStatsUseCase
	refresh    *RefreshOverdueUseCase
}

func newHarness() *harness {
	press, err := equipment.ReconstructEquipment(pressID, "Hydraulic Press", "HP-001", "Presses", "Plant A",
		equipment.StatusActive, 90, "", testNow, testNow)
	if err != nil {
		panic(err)
	}

	h := &harness{
		clock:     clockwork.NewFakeClockAt(testNow),
		requests:  newMockRequestRepository(),
		equipment: newMockEquipmentRepository(press),
		tx:        &mockTransactionRunner{},
		audit:     &mockAuditLogger{},
		notifier:  &mockNotifier{},
		locker:    NewRequestLocker(),
	}
	users := newMockUserRepository(
		user.ReconstructUser(requesterID, "Rita Requester", "rita@example.com", user.RoleUser, true, testNow),
		user.ReconstructUser(technicianID, "Tom Tech", "tom@example.com", user.RoleTechnician, true, testNow),
		user.ReconstructUser(otherTechID, "Tara Tech", "tara@example.com", user.RoleTechnician, true, testNow),
	)
	teams := newMockTeamRepository(team.ReconstructTeam(mechanicsID, "Mechanics", "#3b82f6", testNow))

	log := logger.NewNopLogger()
	resolver := NewRequestResolver(h.equipment, users, teams, log)
	effects := NewEffectRunner(h.equipment, h.audit, h.notifier, resolver, log)
	executor := NewCommandExecutor(h.locker, h.tx, effects)

	h.create = NewCreateRequestUseCase(h.requests, h.equipment, users, teams, h.tx, effects, resolver, h.clock, log)
	h.update = NewUpdateRequestUseCase(h.requests, h.equipment, users, teams, executor, effects, resolver, h.clock, log)
	h.transition = NewTransitionStageUseCase(h.requests, executor, effects, resolver, h.clock, log)
	h.delete = NewDeleteRequestUseCase(h.requests, executor, log)
	h.get = NewGetRequestUseCase(h.requests, resolver, log)
	h.list = NewListRequestsUseCase(h.requests, resolver, log)
	h.stats = NewGetStatsUseCase(h.requests, h.clock, log)
	h.refresh = NewRefreshOverdueUseCase(h.requests, h.locker, h.tx, h.clock, log)
	return h
}

func uintPtr(v uint) *uint { return &v }

func datePtr(y int, m time.Month, d int) *time.Time {
	t := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return &t
}
